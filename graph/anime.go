package graph

import (
	"context"

	"github.com/MonCaptain/animethemes-web/enums"
	"github.com/MonCaptain/animethemes-web/models"
)

type animeResolver struct {
	r *Resolver
	a models.Anime
}

func (r *Resolver) anime(a models.Anime) *animeResolver {
	return &animeResolver{r: r, a: a}
}

func (ar *animeResolver) ID() (int32, error)    { return toInt32(ar.a.ID) }
func (ar *animeResolver) Slug() string          { return ar.a.Slug }
func (ar *animeResolver) Name() string          { return ar.a.Name }
func (ar *animeResolver) Year() (*int32, error) { return toInt32Ptr(ar.a.Year) }
func (ar *animeResolver) Synopsis() *string     { return ar.a.Synopsis }

func (ar *animeResolver) Season() *string {
	return enums.DecodePtr(enums.AnimeSeasons, ar.a.Season)
}

func (ar *animeResolver) Synonyms(ctx context.Context) ([]*synonymResolver, error) {
	rows, err := ar.r.store.SynonymsByAnime(ctx, ar.a.ID)
	if err != nil {
		return nil, err
	}
	return wrapAll(rows, func(s models.Synonym) *synonymResolver { return &synonymResolver{s: s} }), nil
}

func (ar *animeResolver) Themes(ctx context.Context) ([]*themeResolver, error) {
	rows, err := ar.r.store.ThemesByAnime(ctx, ar.a.ID)
	if err != nil {
		return nil, err
	}
	return wrapAll(rows, ar.r.theme), nil
}

func (ar *animeResolver) Series(ctx context.Context) ([]*seriesResolver, error) {
	rows, err := ar.r.store.SeriesByAnime(ctx, ar.a.ID)
	if err != nil {
		return nil, err
	}
	return wrapAll(rows, ar.r.series), nil
}

func (ar *animeResolver) Studios(ctx context.Context) ([]*studioResolver, error) {
	rows, err := ar.r.store.StudiosByAnime(ctx, ar.a.ID)
	if err != nil {
		return nil, err
	}
	return wrapAll(rows, ar.r.studio), nil
}

func (ar *animeResolver) Resources(ctx context.Context) ([]*resourceResolver, error) {
	rows, err := ar.r.store.ResourcesByAnime(ctx, ar.a.ID)
	if err != nil {
		return nil, err
	}
	return wrapAll(rows, resource), nil
}

func (ar *animeResolver) Images(ctx context.Context) ([]*imageResolver, error) {
	rows, err := ar.r.store.ImagesByAnime(ctx, ar.a.ID)
	if err != nil {
		return nil, err
	}
	return wrapAll(rows, ar.r.image), nil
}

type synonymResolver struct {
	s models.Synonym
}

func (sr *synonymResolver) ID() (int32, error) { return toInt32(sr.s.ID) }
func (sr *synonymResolver) Text() *string      { return sr.s.Text }

// yearResolver is a virtual entity: a year some anime aired in.
type yearResolver struct {
	r     *Resolver
	value int
}

func (r *Resolver) year(value int) *yearResolver {
	return &yearResolver{r: r, value: value}
}

func (yr *yearResolver) Value() (int32, error) { return toInt32(yr.value) }

// Seasons lists the seasons of this year that have anime.
func (yr *yearResolver) Seasons(ctx context.Context) ([]*seasonResolver, error) {
	year := yr.value
	groups, err := yr.r.store.Seasons(ctx, &year)
	if err != nil {
		return nil, err
	}
	out := make([]*seasonResolver, len(groups))
	for i, g := range groups {
		out[i] = &seasonResolver{r: yr.r, code: g.Season, year: yr}
	}
	return out, nil
}

// seasonResolver is a virtual entity: a season code, optionally within a year.
type seasonResolver struct {
	r    *Resolver
	code enums.AnimeSeason
	year *yearResolver
}

func (r *Resolver) season(code enums.AnimeSeason, year *int) *seasonResolver {
	s := &seasonResolver{r: r, code: code}
	if year != nil {
		s.year = r.year(*year)
	}
	return s
}

func (sr *seasonResolver) Value() *string {
	name, ok := enums.AnimeSeasons.Decode(sr.code)
	if !ok {
		return nil
	}
	return &name
}

func (sr *seasonResolver) Year() *yearResolver { return sr.year }

func (sr *seasonResolver) Anime(ctx context.Context) ([]*animeResolver, error) {
	var year *int
	if sr.year != nil {
		year = &sr.year.value
	}
	rows, err := sr.r.store.AnimeBySeason(ctx, sr.code, year)
	if err != nil {
		return nil, err
	}
	return wrapAll(rows, sr.r.anime), nil
}
