package models

// Song is the music behind one or more themes.
type Song struct {
	ID    uint    `gorm:"column:song_id;primaryKey;autoIncrement" json:"id"`
	Title *string `gorm:"" json:"title,omitempty"`
}

func (Song) TableName() string {
	return "songs"
}

// Performance credits an artist on a song.
// It corresponds to the 'artist_song' table.
type Performance struct {
	ArtistID uint    `gorm:"primaryKey;autoIncrement:false" json:"artist_id"`
	SongID   uint    `gorm:"primaryKey;autoIncrement:false" json:"song_id"`
	As       *string `gorm:"column:as" json:"as,omitempty"` // Nullable, character name
}

func (Performance) TableName() string {
	return "artist_song"
}
