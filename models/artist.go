package models

// Artist represents a performer in the database using GORM.
// It corresponds to the 'artists' table.
type Artist struct {
	ID   uint   `gorm:"column:artist_id;primaryKey;autoIncrement" json:"id"`
	Slug string `gorm:"not null;uniqueIndex" json:"slug"`
	Name string `gorm:"not null" json:"name"`
}

// TableName explicitly sets the table name for GORM.
func (Artist) TableName() string {
	return "artists"
}

type ArtistResource struct {
	ArtistID   uint    `gorm:"primaryKey;autoIncrement:false"`
	ResourceID uint    `gorm:"primaryKey;autoIncrement:false"`
	As         *string `gorm:"column:as"`
}

func (ArtistResource) TableName() string {
	return "artist_resource"
}

type ArtistImage struct {
	ArtistID uint `gorm:"primaryKey;autoIncrement:false"`
	ImageID  uint `gorm:"primaryKey;autoIncrement:false"`
}

func (ArtistImage) TableName() string {
	return "artist_image"
}
