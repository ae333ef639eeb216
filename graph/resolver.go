// Package graph provides the GraphQL resolvers for the animethemes API.
// Every object type in schema.graphql has a resolver type with one method
// per field; relationship fields read through the injected Store.
package graph

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/MonCaptain/animethemes-web/database"
	"github.com/MonCaptain/animethemes-web/enums"
	"github.com/MonCaptain/animethemes-web/models"
)

// Store is the read surface the resolvers need. *database.Store implements it.
type Store interface {
	Anime(ctx context.Context, key database.Key) (*models.Anime, error)
	AnimeByID(ctx context.Context, id uint) (*models.Anime, error)
	ListAnime(ctx context.Context, f database.AnimeFilter) ([]models.Anime, error)
	AnimeBySeason(ctx context.Context, season enums.AnimeSeason, year *int) ([]models.Anime, error)
	AnimeBySeries(ctx context.Context, seriesID uint) ([]models.Anime, error)
	AnimeByStudio(ctx context.Context, studioID uint) ([]models.Anime, error)
	SynonymsByAnime(ctx context.Context, animeID uint) ([]models.Synonym, error)

	Years(ctx context.Context) ([]int, error)
	Seasons(ctx context.Context, year *int) ([]database.SeasonGroup, error)

	Theme(ctx context.Context, id *uint) (*models.Theme, error)
	ThemeByID(ctx context.Context, id uint) (*models.Theme, error)
	ListThemes(ctx context.Context, f database.ThemeFilter) ([]models.Theme, error)
	ThemesByAnime(ctx context.Context, animeID uint) ([]models.Theme, error)
	ThemesBySong(ctx context.Context, songID uint) ([]models.Theme, error)
	EntriesByTheme(ctx context.Context, themeID uint) ([]models.Entry, error)
	VideosByEntry(ctx context.Context, entryID uint) ([]models.Video, error)

	Artist(ctx context.Context, key database.Key) (*models.Artist, error)
	ArtistByID(ctx context.Context, id uint) (*models.Artist, error)
	ListArtists(ctx context.Context, limit int) ([]models.Artist, error)
	SongByID(ctx context.Context, id uint) (*models.Song, error)
	PerformancesBySong(ctx context.Context, songID uint) ([]models.Performance, error)
	PerformancesByArtist(ctx context.Context, artistID uint) ([]models.Performance, error)

	Series(ctx context.Context, key database.Key) (*models.Series, error)
	ListSeries(ctx context.Context, limit int) ([]models.Series, error)
	SeriesByAnime(ctx context.Context, animeID uint) ([]models.Series, error)
	Studio(ctx context.Context, key database.Key) (*models.Studio, error)
	ListStudios(ctx context.Context, limit int) ([]models.Studio, error)
	StudiosByAnime(ctx context.Context, animeID uint) ([]models.Studio, error)

	ResourcesByAnime(ctx context.Context, animeID uint) ([]models.Resource, error)
	ResourcesByArtist(ctx context.Context, artistID uint) ([]models.Resource, error)
	ResourcesByStudio(ctx context.Context, studioID uint) ([]models.Resource, error)
	ImagesByAnime(ctx context.Context, animeID uint) ([]models.Image, error)
	ImagesByArtist(ctx context.Context, artistID uint) ([]models.Image, error)
}

// Resolver is the root resolver. It answers the Query fields and hands its
// dependencies down to every nested resolver.
type Resolver struct {
	store   Store
	baseURL string
}

// NewResolver creates a resolver reading from store. baseURL is the public
// host used to build image and video links.
func NewResolver(store Store, baseURL string) *Resolver {
	return &Resolver{
		store:   store,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

func wrapAll[T any, R any](rows []T, wrap func(T) R) []R {
	out := make([]R, len(rows))
	for i, row := range rows {
		out[i] = wrap(row)
	}
	return out
}

// ErrOutOfRange is reported as a field error when a stored number does not
// fit the 32-bit GraphQL Int.
var ErrOutOfRange = errors.New("value out of range for Int")

type integer interface {
	~int | ~int64 | ~uint
}

func toInt32[T integer](v T) (int32, error) {
	if v < 0 {
		if int64(v) < math.MinInt32 {
			return 0, fmt.Errorf("%w: %d", ErrOutOfRange, v)
		}
	} else if uint64(v) > math.MaxInt32 {
		return 0, fmt.Errorf("%w: %d", ErrOutOfRange, v)
	}
	return int32(v), nil
}

func toInt32Ptr[T integer](v *T) (*int32, error) {
	if v == nil {
		return nil, nil
	}
	i, err := toInt32(*v)
	if err != nil {
		return nil, err
	}
	return &i, nil
}

func intArg(v *int32) *int {
	if v == nil {
		return nil
	}
	i := int(*v)
	return &i
}

func limitArg(v *int32) int {
	if v == nil {
		return 0
	}
	return int(*v)
}
