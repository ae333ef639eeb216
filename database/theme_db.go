package database

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/MonCaptain/animethemes-web/models"
)

var themeColumns = qualify("anime_themes", []string{"theme_id", "type", "sequence", "slug", "anime_id", "song_id"})

var entryColumns = qualify("anime_theme_entries", []string{"entry_id", "version", "episodes", "nsfw", "spoiler", "notes", "theme_id"})

var videoColumns = qualify("videos", []string{
	"video_id", "basename", "filename", "path", "size", "resolution",
	"nc", "subbed", "lyrics", "uncen", "source", "overlap",
})

// ThemeFilter orders and limits themeAll. An empty OrderBy keeps store order.
type ThemeFilter struct {
	OrderBy   string
	OrderDesc bool
	Limit     int
}

func scanTheme(s rowScanner) (models.Theme, error) {
	var t models.Theme
	err := s.Scan(&t.ID, &t.Type, &t.Sequence, &t.Slug, &t.AnimeID, &t.SongID)
	return t, err
}

func scanEntry(s rowScanner) (models.Entry, error) {
	var e models.Entry
	err := s.Scan(&e.ID, &e.Version, &e.Episodes, &e.NSFW, &e.Spoiler, &e.Notes, &e.ThemeID)
	return e, err
}

func scanVideo(s rowScanner) (models.Video, error) {
	var v models.Video
	err := s.Scan(&v.ID, &v.Basename, &v.Filename, &v.Path, &v.Size, &v.Resolution,
		&v.NC, &v.Subbed, &v.Lyrics, &v.Uncen, &v.Source, &v.Overlap)
	return v, err
}

// Theme returns the theme with the given id, or the first theme when id is nil.
func (s *Store) Theme(ctx context.Context, id *uint) (*models.Theme, error) {
	b := withKey(psql.Select(themeColumns...).From("anime_themes"), "anime_themes", "theme_id", Key{ID: id})
	return selectOne(ctx, s.db, b, scanTheme)
}

func (s *Store) ThemeByID(ctx context.Context, id uint) (*models.Theme, error) {
	return s.Theme(ctx, &id)
}

// ListThemes returns ErrUnknownOrderColumn when f.OrderBy is not sortable.
func (s *Store) ListThemes(ctx context.Context, f ThemeFilter) ([]models.Theme, error) {
	b := psql.Select(themeColumns...).From("anime_themes")
	if f.OrderBy != "" {
		column, err := ThemeOrderColumn(f.OrderBy)
		if err != nil {
			return nil, err
		}
		b = b.OrderBy(orderClause(column, f.OrderDesc))
	}
	return selectMany(ctx, s.db, withLimit(b, f.Limit), scanTheme)
}

func (s *Store) ThemesByAnime(ctx context.Context, animeID uint) ([]models.Theme, error) {
	b := psql.Select(themeColumns...).
		From("anime_themes").
		Where(sq.Eq{"anime_themes.anime_id": animeID})
	return selectMany(ctx, s.db, b, scanTheme)
}

func (s *Store) ThemesBySong(ctx context.Context, songID uint) ([]models.Theme, error) {
	b := psql.Select(themeColumns...).
		From("anime_themes").
		Where(sq.Eq{"anime_themes.song_id": songID})
	return selectMany(ctx, s.db, b, scanTheme)
}

func (s *Store) EntriesByTheme(ctx context.Context, themeID uint) ([]models.Entry, error) {
	b := psql.Select(entryColumns...).
		From("anime_theme_entries").
		Where(sq.Eq{"anime_theme_entries.theme_id": themeID})
	return selectMany(ctx, s.db, b, scanEntry)
}

func (s *Store) VideosByEntry(ctx context.Context, entryID uint) ([]models.Video, error) {
	b := psql.Select(videoColumns...).
		From("videos").
		InnerJoin("anime_theme_entry_video ON anime_theme_entry_video.video_id = videos.video_id").
		Where(sq.Eq{"anime_theme_entry_video.entry_id": entryID})
	return selectMany(ctx, s.db, b, scanVideo)
}
