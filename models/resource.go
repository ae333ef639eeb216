package models

// Resource is a link to an external catalog site.
type Resource struct {
	ID         uint    `gorm:"column:resource_id;primaryKey;autoIncrement" json:"id"`
	Link       *string `gorm:"" json:"link,omitempty"`
	ExternalID *int64  `gorm:"" json:"external_id,omitempty"`
	Site       *int    `gorm:"" json:"site,omitempty"` // Nullable, enums.ResourceSite
}

func (Resource) TableName() string {
	return "resources"
}
