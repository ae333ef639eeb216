package database

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/MonCaptain/animethemes-web/enums"
)

// SeasonGroup is one distinct (season, year) pair found in the anime table.
type SeasonGroup struct {
	Season enums.AnimeSeason
	Year   *int
}

// Years returns every distinct non-null anime year in ascending order.
func (s *Store) Years(ctx context.Context) ([]int, error) {
	b := psql.Select("anime.year").
		From("anime").
		Where(sq.NotEq{"anime.year": nil}).
		GroupBy("anime.year").
		OrderBy("anime.year ASC")
	return selectMany(ctx, s.db, b, func(r rowScanner) (int, error) {
		var year int
		err := r.Scan(&year)
		return year, err
	})
}

// Seasons groups anime by (season, year), restricted to year when given.
// Each group carries its own year, never the filter argument.
func (s *Store) Seasons(ctx context.Context, year *int) ([]SeasonGroup, error) {
	b := psql.Select("anime.season", "anime.year").
		From("anime").
		Where(sq.NotEq{"anime.season": nil})
	if year != nil {
		b = b.Where(sq.Eq{"anime.year": *year})
	}
	b = b.GroupBy("anime.season", "anime.year").
		OrderBy("anime.year ASC", "anime.season ASC")

	return selectMany(ctx, s.db, b, func(r rowScanner) (SeasonGroup, error) {
		var (
			g    SeasonGroup
			code int
		)
		err := r.Scan(&code, &g.Year)
		g.Season = enums.AnimeSeason(code)
		return g, err
	})
}
