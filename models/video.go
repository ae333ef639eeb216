package models

// Video represents an encoded video file in the database using GORM.
// It corresponds to the 'videos' table.
type Video struct {
	ID         uint   `gorm:"column:video_id;primaryKey;autoIncrement" json:"id"`
	Basename   string `gorm:"not null;uniqueIndex" json:"basename"`
	Filename   string `gorm:"not null" json:"filename"`
	Path       string `gorm:"not null" json:"path"`
	Size       *int64 `gorm:"" json:"size,omitempty"`       // Nullable, bytes
	Resolution *int   `gorm:"" json:"resolution,omitempty"` // Nullable, vertical pixels
	NC         bool   `gorm:"column:nc;not null;default:false" json:"nc"`
	Subbed     bool   `gorm:"not null;default:false" json:"subbed"`
	Lyrics     bool   `gorm:"not null;default:false" json:"lyrics"`
	Uncen      bool   `gorm:"not null;default:false" json:"uncen"`
	Source     *int   `gorm:"" json:"source,omitempty"`         // Nullable, enums.VideoSource
	Overlap    int    `gorm:"not null;default:0" json:"overlap"` // enums.VideoOverlap
}

// TableName explicitly sets the table name for GORM.
func (Video) TableName() string {
	return "videos"
}
