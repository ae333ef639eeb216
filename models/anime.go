package models

// Anime represents an anime title in the database using GORM.
// It corresponds to the 'anime' table.
type Anime struct {
	ID       uint    `gorm:"column:anime_id;primaryKey;autoIncrement" json:"id"`
	Slug     string  `gorm:"not null;uniqueIndex" json:"slug"`
	Name     string  `gorm:"not null" json:"name"`
	Year     *int    `gorm:"index" json:"year,omitempty"`   // Nullable
	Season   *int    `gorm:"index" json:"season,omitempty"` // Nullable, enums.AnimeSeason
	Synopsis *string `gorm:"type:text" json:"synopsis,omitempty"`
}

// TableName explicitly sets the table name for GORM.
func (Anime) TableName() string {
	return "anime"
}

// Synonym is an alternative title of an anime.
type Synonym struct {
	ID      uint    `gorm:"column:synonym_id;primaryKey;autoIncrement" json:"id"`
	Text    *string `gorm:"" json:"text,omitempty"`
	AnimeID uint    `gorm:"not null;index" json:"anime_id"`
}

func (Synonym) TableName() string {
	return "anime_synonyms"
}

// AnimeSeries links anime to series.
type AnimeSeries struct {
	AnimeID  uint `gorm:"primaryKey;autoIncrement:false"`
	SeriesID uint `gorm:"primaryKey;autoIncrement:false"`
}

func (AnimeSeries) TableName() string {
	return "anime_series"
}

// AnimeStudio links anime to studios.
type AnimeStudio struct {
	AnimeID  uint `gorm:"primaryKey;autoIncrement:false"`
	StudioID uint `gorm:"primaryKey;autoIncrement:false"`
}

func (AnimeStudio) TableName() string {
	return "anime_studio"
}

// AnimeResource links anime to external resources. As is a pivot label
// (e.g. "Season 2") and never leaves the join table.
type AnimeResource struct {
	AnimeID    uint    `gorm:"primaryKey;autoIncrement:false"`
	ResourceID uint    `gorm:"primaryKey;autoIncrement:false"`
	As         *string `gorm:"column:as"`
}

func (AnimeResource) TableName() string {
	return "anime_resource"
}

// AnimeImage links anime to images.
type AnimeImage struct {
	AnimeID uint `gorm:"primaryKey;autoIncrement:false"`
	ImageID uint `gorm:"primaryKey;autoIncrement:false"`
}

func (AnimeImage) TableName() string {
	return "anime_image"
}
