package models

// Series groups related anime (sequels, spin-offs).
type Series struct {
	ID   uint   `gorm:"column:series_id;primaryKey;autoIncrement" json:"id"`
	Slug string `gorm:"not null;uniqueIndex" json:"slug"`
	Name string `gorm:"not null" json:"name"`
}

func (Series) TableName() string {
	return "series"
}

// Studio is an animation studio.
type Studio struct {
	ID   uint   `gorm:"column:studio_id;primaryKey;autoIncrement" json:"id"`
	Slug string `gorm:"not null;uniqueIndex" json:"slug"`
	Name string `gorm:"not null" json:"name"`
}

func (Studio) TableName() string {
	return "studios"
}

type StudioResource struct {
	StudioID   uint `gorm:"primaryKey;autoIncrement:false"`
	ResourceID uint `gorm:"primaryKey;autoIncrement:false"`
}

func (StudioResource) TableName() string {
	return "studio_resource"
}
