package models

// Theme represents an opening or ending of an anime.
// It corresponds to the 'anime_themes' table.
type Theme struct {
	ID       uint   `gorm:"column:theme_id;primaryKey;autoIncrement" json:"id"`
	Type     *int   `gorm:"" json:"type,omitempty"`     // Nullable, enums.ThemeType
	Sequence *int   `gorm:"" json:"sequence,omitempty"` // Nullable, absent means 1
	Slug     string `gorm:"not null" json:"slug"`
	AnimeID  uint   `gorm:"not null;index" json:"anime_id"`
	SongID   *uint  `gorm:"index" json:"song_id,omitempty"` // Nullable
}

// TableName explicitly sets the table name for GORM.
func (Theme) TableName() string {
	return "anime_themes"
}

// Entry is a versioned cut of a theme.
// It corresponds to the 'anime_theme_entries' table.
type Entry struct {
	ID       uint    `gorm:"column:entry_id;primaryKey;autoIncrement" json:"id"`
	Version  *int    `gorm:"" json:"version,omitempty"` // Nullable, absent means 1
	Episodes *string `gorm:"" json:"episodes,omitempty"`
	NSFW     bool    `gorm:"column:nsfw;not null;default:false" json:"nsfw"`
	Spoiler  bool    `gorm:"not null;default:false" json:"spoiler"`
	Notes    *string `gorm:"" json:"notes,omitempty"`
	ThemeID  uint    `gorm:"not null;index" json:"theme_id"`
}

func (Entry) TableName() string {
	return "anime_theme_entries"
}

// EntryVideo links entries to videos.
type EntryVideo struct {
	EntryID uint `gorm:"primaryKey;autoIncrement:false"`
	VideoID uint `gorm:"primaryKey;autoIncrement:false"`
}

func (EntryVideo) TableName() string {
	return "anime_theme_entry_video"
}
