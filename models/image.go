package models

// Image represents a cover image in the database using GORM.
// It corresponds to the 'images' table.
type Image struct {
	ID    uint   `gorm:"column:image_id;primaryKey;autoIncrement" json:"id"`
	Path  string `gorm:"not null" json:"path"`
	Facet *int   `gorm:"" json:"facet,omitempty"` // Nullable, enums.ImageFacet
}

// TableName explicitly sets the table name for GORM.
func (Image) TableName() string {
	return "images"
}
