package database

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/MonCaptain/animethemes-web/models"
)

var artistColumns = qualify("artists", []string{"artist_id", "slug", "name"})

var songColumns = qualify("songs", []string{"song_id", "title"})

// `as` is reserved in both mysql and sqlite
var performanceColumns = qualify("artist_song", []string{"artist_id", "song_id", "`as`"})

func scanArtist(s rowScanner) (models.Artist, error) {
	var a models.Artist
	err := s.Scan(&a.ID, &a.Slug, &a.Name)
	return a, err
}

func scanSong(s rowScanner) (models.Song, error) {
	var song models.Song
	err := s.Scan(&song.ID, &song.Title)
	return song, err
}

func scanPerformance(s rowScanner) (models.Performance, error) {
	var p models.Performance
	err := s.Scan(&p.ArtistID, &p.SongID, &p.As)
	return p, err
}

func (s *Store) Artist(ctx context.Context, key Key) (*models.Artist, error) {
	b := withKey(psql.Select(artistColumns...).From("artists"), "artists", "artist_id", key)
	return selectOne(ctx, s.db, b, scanArtist)
}

func (s *Store) ArtistByID(ctx context.Context, id uint) (*models.Artist, error) {
	return s.Artist(ctx, Key{ID: &id})
}

func (s *Store) ListArtists(ctx context.Context, limit int) ([]models.Artist, error) {
	b := psql.Select(artistColumns...).From("artists")
	return selectMany(ctx, s.db, withLimit(b, limit), scanArtist)
}

func (s *Store) SongByID(ctx context.Context, id uint) (*models.Song, error) {
	b := psql.Select(songColumns...).From("songs").Where(sq.Eq{"songs.song_id": id})
	return selectOne(ctx, s.db, b, scanSong)
}

func (s *Store) PerformancesBySong(ctx context.Context, songID uint) ([]models.Performance, error) {
	b := psql.Select(performanceColumns...).
		From("artist_song").
		Where(sq.Eq{"artist_song.song_id": songID})
	return selectMany(ctx, s.db, b, scanPerformance)
}

func (s *Store) PerformancesByArtist(ctx context.Context, artistID uint) ([]models.Performance, error) {
	b := psql.Select(performanceColumns...).
		From("artist_song").
		Where(sq.Eq{"artist_song.artist_id": artistID})
	return selectMany(ctx, s.db, b, scanPerformance)
}
