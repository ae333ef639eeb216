package graph

import (
	"context"

	"github.com/MonCaptain/animethemes-web/database"
	"github.com/MonCaptain/animethemes-web/enums"
)

type keyArgs struct {
	ID   *int32
	Slug *string
}

type limitArgs struct {
	Limit *int32
}

// key converts id/slug arguments. A zero id or an empty slug is the same as
// leaving the argument out. ok is false when the id cannot match any row.
func (a keyArgs) key() (key database.Key, ok bool) {
	if a.Slug != nil && *a.Slug != "" {
		key.Slug = a.Slug
	}
	if a.ID != nil && *a.ID != 0 {
		if *a.ID < 0 {
			return key, false
		}
		id := uint(*a.ID)
		key.ID = &id
	}
	return key, true
}

// filterArg drops a year filter of 0, which means "any year".
func filterArg(v *int32) *int {
	if v == nil || *v == 0 {
		return nil
	}
	return intArg(v)
}

func (r *Resolver) Anime(ctx context.Context, args keyArgs) (*animeResolver, error) {
	key, ok := args.key()
	if !ok {
		return nil, nil
	}
	a, err := r.store.Anime(ctx, key)
	if err != nil || a == nil {
		return nil, err
	}
	return r.anime(*a), nil
}

func (r *Resolver) AnimeAll(ctx context.Context, args struct {
	Limit  *int32
	Year   *int32
	Season *string
}) ([]*animeResolver, error) {
	filter := database.AnimeFilter{
		Year:  filterArg(args.Year),
		Limit: limitArg(args.Limit),
	}
	if args.Season != nil && *args.Season != "" {
		// an unknown name encodes to NoMatch, which the store turns into an empty result
		code, _ := enums.AnimeSeasons.Encode(*args.Season)
		filter.Season = &code
	}

	rows, err := r.store.ListAnime(ctx, filter)
	if err != nil {
		return nil, err
	}
	return wrapAll(rows, r.anime), nil
}

func (r *Resolver) Theme(ctx context.Context, args struct{ ID *int32 }) (*themeResolver, error) {
	key, ok := keyArgs{ID: args.ID}.key()
	if !ok {
		return nil, nil
	}
	t, err := r.store.Theme(ctx, key.ID)
	if err != nil || t == nil {
		return nil, err
	}
	return r.theme(*t), nil
}

func (r *Resolver) ThemeAll(ctx context.Context, args struct {
	Limit     *int32
	OrderBy   *string
	OrderDesc *bool
}) ([]*themeResolver, error) {
	filter := database.ThemeFilter{Limit: limitArg(args.Limit)}
	if args.OrderBy != nil {
		filter.OrderBy = *args.OrderBy
	}
	if args.OrderDesc != nil {
		filter.OrderDesc = *args.OrderDesc
	}

	rows, err := r.store.ListThemes(ctx, filter)
	if err != nil {
		return nil, err
	}
	return wrapAll(rows, r.theme), nil
}

func (r *Resolver) Artist(ctx context.Context, args keyArgs) (*artistResolver, error) {
	key, ok := args.key()
	if !ok {
		return nil, nil
	}
	a, err := r.store.Artist(ctx, key)
	if err != nil || a == nil {
		return nil, err
	}
	return r.artist(*a), nil
}

func (r *Resolver) ArtistAll(ctx context.Context, args limitArgs) ([]*artistResolver, error) {
	rows, err := r.store.ListArtists(ctx, limitArg(args.Limit))
	if err != nil {
		return nil, err
	}
	return wrapAll(rows, r.artist), nil
}

func (r *Resolver) Series(ctx context.Context, args keyArgs) (*seriesResolver, error) {
	key, ok := args.key()
	if !ok {
		return nil, nil
	}
	s, err := r.store.Series(ctx, key)
	if err != nil || s == nil {
		return nil, err
	}
	return r.series(*s), nil
}

func (r *Resolver) SeriesAll(ctx context.Context, args limitArgs) ([]*seriesResolver, error) {
	rows, err := r.store.ListSeries(ctx, limitArg(args.Limit))
	if err != nil {
		return nil, err
	}
	return wrapAll(rows, r.series), nil
}

func (r *Resolver) Studio(ctx context.Context, args keyArgs) (*studioResolver, error) {
	key, ok := args.key()
	if !ok {
		return nil, nil
	}
	s, err := r.store.Studio(ctx, key)
	if err != nil || s == nil {
		return nil, err
	}
	return r.studio(*s), nil
}

func (r *Resolver) StudioAll(ctx context.Context, args limitArgs) ([]*studioResolver, error) {
	rows, err := r.store.ListStudios(ctx, limitArg(args.Limit))
	if err != nil {
		return nil, err
	}
	return wrapAll(rows, r.studio), nil
}

// Year is synthesized from its argument; it does not touch the store.
func (r *Resolver) Year(args struct{ Value int32 }) *yearResolver {
	return r.year(int(args.Value))
}

func (r *Resolver) YearAll(ctx context.Context) ([]*yearResolver, error) {
	years, err := r.store.Years(ctx)
	if err != nil {
		return nil, err
	}
	return wrapAll(years, r.year), nil
}

// Season is synthesized from its arguments. An unknown name yields a season
// whose value is null and whose anime list is empty.
func (r *Resolver) Season(args struct {
	Value string
	Year  *int32
}) *seasonResolver {
	code, _ := enums.AnimeSeasons.Encode(args.Value)
	return r.season(code, intArg(args.Year))
}

// SeasonAll returns one season per distinct (season, year) pair. Each season
// reports the year of its group, also when no year filter is given.
func (r *Resolver) SeasonAll(ctx context.Context, args struct{ Year *int32 }) ([]*seasonResolver, error) {
	groups, err := r.store.Seasons(ctx, filterArg(args.Year))
	if err != nil {
		return nil, err
	}
	return wrapAll(groups, func(g database.SeasonGroup) *seasonResolver {
		return r.season(g.Season, g.Year)
	}), nil
}

func (r *Resolver) BracketCharacter(args struct{ Theme int32 }) *bracketCharacterResolver {
	return &bracketCharacterResolver{r: r, themeID: args.Theme}
}
