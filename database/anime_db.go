package database

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/MonCaptain/animethemes-web/enums"
	"github.com/MonCaptain/animethemes-web/models"
)

var animeColumns = qualify("anime", []string{"anime_id", "slug", "name", "year", "season", "synopsis"})

var synonymColumns = qualify("anime_synonyms", []string{"synonym_id", "text", "anime_id"})

// AnimeFilter narrows animeAll. Zero values mean no restriction.
type AnimeFilter struct {
	Year   *int
	Season *enums.AnimeSeason
	Limit  int
}

func scanAnime(s rowScanner) (models.Anime, error) {
	var a models.Anime
	err := s.Scan(&a.ID, &a.Slug, &a.Name, &a.Year, &a.Season, &a.Synopsis)
	return a, err
}

func scanSynonym(s rowScanner) (models.Synonym, error) {
	var syn models.Synonym
	err := s.Scan(&syn.ID, &syn.Text, &syn.AnimeID)
	return syn, err
}

// seasonEq matches a stored season code. Codes missing from the registry,
// enums.NoMatch included, produce a predicate that matches no rows.
func seasonEq(code enums.AnimeSeason) sq.Sqlizer {
	if _, ok := enums.AnimeSeasons.Decode(code); !ok {
		return matchNothing
	}
	return sq.Eq{"anime.season": int(code)}
}

func (s *Store) Anime(ctx context.Context, key Key) (*models.Anime, error) {
	b := withKey(psql.Select(animeColumns...).From("anime"), "anime", "anime_id", key)
	return selectOne(ctx, s.db, b, scanAnime)
}

func (s *Store) AnimeByID(ctx context.Context, id uint) (*models.Anime, error) {
	return s.Anime(ctx, Key{ID: &id})
}

// ListAnime applies the filters first and the limit last.
func (s *Store) ListAnime(ctx context.Context, f AnimeFilter) ([]models.Anime, error) {
	b := psql.Select(animeColumns...).From("anime")
	if f.Year != nil {
		b = b.Where(sq.Eq{"anime.year": *f.Year})
	}
	if f.Season != nil {
		b = b.Where(seasonEq(*f.Season))
	}
	return selectMany(ctx, s.db, withLimit(b, f.Limit), scanAnime)
}

// AnimeBySeason lists anime aired in season, restricted to year when given.
func (s *Store) AnimeBySeason(ctx context.Context, season enums.AnimeSeason, year *int) ([]models.Anime, error) {
	b := psql.Select(animeColumns...).From("anime").Where(seasonEq(season))
	if year != nil {
		b = b.Where(sq.Eq{"anime.year": *year})
	}
	return selectMany(ctx, s.db, b, scanAnime)
}

func (s *Store) AnimeBySeries(ctx context.Context, seriesID uint) ([]models.Anime, error) {
	b := psql.Select(animeColumns...).
		From("anime").
		InnerJoin("anime_series ON anime_series.anime_id = anime.anime_id").
		Where(sq.Eq{"anime_series.series_id": seriesID})
	return selectMany(ctx, s.db, b, scanAnime)
}

func (s *Store) AnimeByStudio(ctx context.Context, studioID uint) ([]models.Anime, error) {
	b := psql.Select(animeColumns...).
		From("anime").
		InnerJoin("anime_studio ON anime_studio.anime_id = anime.anime_id").
		Where(sq.Eq{"anime_studio.studio_id": studioID})
	return selectMany(ctx, s.db, b, scanAnime)
}

func (s *Store) SynonymsByAnime(ctx context.Context, animeID uint) ([]models.Synonym, error) {
	b := psql.Select(synonymColumns...).
		From("anime_synonyms").
		Where(sq.Eq{"anime_synonyms.anime_id": animeID})
	return selectMany(ctx, s.db, b, scanSynonym)
}
