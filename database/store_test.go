package database_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MonCaptain/animethemes-web/database"
	"github.com/MonCaptain/animethemes-web/database/dbtest"
	"github.com/MonCaptain/animethemes-web/enums"
	"github.com/MonCaptain/animethemes-web/models"
)

func newStore(t *testing.T) *database.Store {
	t.Helper()
	_, sqlDB := dbtest.OpenSeeded(t)
	return database.NewStore(sqlDB)
}

func uintPtr(v uint) *uint    { return &v }
func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

func animeIDs(rows []models.Anime) []uint {
	ids := make([]uint, len(rows))
	for i, a := range rows {
		ids[i] = a.ID
	}
	return ids
}

func TestAnimeLookup(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	byID, err := store.Anime(ctx, database.Key{ID: uintPtr(1)})
	require.NoError(t, err)
	require.NotNil(t, byID)
	assert.Equal(t, "bakemonogatari", byID.Slug)
	assert.Equal(t, 2009, *byID.Year)
	assert.Equal(t, 2, *byID.Season)

	bySlug, err := store.Anime(ctx, database.Key{Slug: strPtr("kizumonogatari")})
	require.NoError(t, err)
	require.NotNil(t, bySlug)
	assert.Equal(t, uint(3), bySlug.ID)

	// both filters apply
	mismatch, err := store.Anime(ctx, database.Key{ID: uintPtr(1), Slug: strPtr("kizumonogatari")})
	require.NoError(t, err)
	assert.Nil(t, mismatch)

	missing, err := store.Anime(ctx, database.Key{ID: uintPtr(404)})
	require.NoError(t, err)
	assert.Nil(t, missing)

	first, err := store.Anime(ctx, database.Key{})
	require.NoError(t, err)
	assert.NotNil(t, first)

	unscheduled, err := store.AnimeByID(ctx, 5)
	require.NoError(t, err)
	require.NotNil(t, unscheduled)
	assert.Nil(t, unscheduled.Year)
	assert.Nil(t, unscheduled.Season)
}

func TestAnimeLookupIsIdempotent(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	a, err := store.AnimeByID(ctx, 1)
	require.NoError(t, err)
	b, err := store.AnimeByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestListAnime(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	all, err := store.ListAnime(ctx, database.AnimeFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 5)

	limited, err := store.ListAnime(ctx, database.AnimeFilter{Limit: 2})
	require.NoError(t, err)
	assert.Len(t, limited, 2)

	summer := enums.SeasonSummer
	bySeason, err := store.ListAnime(ctx, database.AnimeFilter{Season: &summer})
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint{1, 2}, animeIDs(bySeason))

	byBoth, err := store.ListAnime(ctx, database.AnimeFilter{Season: &summer, Year: intPtr(2013)})
	require.NoError(t, err)
	assert.Equal(t, []uint{2}, animeIDs(byBoth))

	// limit applies after filters
	limitedSeason, err := store.ListAnime(ctx, database.AnimeFilter{Season: &summer, Limit: 1})
	require.NoError(t, err)
	require.Len(t, limitedSeason, 1)
	assert.Contains(t, []uint{1, 2}, limitedSeason[0].ID)
}

func TestListAnimeUnknownSeasonMatchesNothing(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	noMatch := enums.AnimeSeason(enums.NoMatch)
	rows, err := store.ListAnime(ctx, database.AnimeFilter{Season: &noMatch})
	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)

	rows, err = store.AnimeBySeason(ctx, noMatch, nil)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestYearsAndSeasons(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	years, err := store.Years(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int{1998, 2009, 2013, 2016}, years)

	seasons, err := store.Seasons(ctx, nil)
	require.NoError(t, err)
	require.Len(t, seasons, 4)
	for _, g := range seasons {
		// without a filter every group still reports its own year
		require.NotNil(t, g.Year)
	}
	assert.Equal(t, database.SeasonGroup{Season: enums.SeasonSpring, Year: intPtr(1998)}, seasons[0])

	filtered, err := store.Seasons(ctx, intPtr(2009))
	require.NoError(t, err)
	assert.Equal(t, []database.SeasonGroup{{Season: enums.SeasonSummer, Year: intPtr(2009)}}, filtered)

	none, err := store.Seasons(ctx, intPtr(1900))
	require.NoError(t, err)
	assert.Empty(t, none)

	summer2013, err := store.AnimeBySeason(ctx, enums.SeasonSummer, intPtr(2013))
	require.NoError(t, err)
	assert.Equal(t, []uint{2}, animeIDs(summer2013))

	anySummer, err := store.AnimeBySeason(ctx, enums.SeasonSummer, nil)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint{1, 2}, animeIDs(anySummer))
}

func TestAnimeRelations(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	synonyms, err := store.SynonymsByAnime(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, synonyms, 2)

	series, err := store.SeriesByAnime(ctx, 2)
	require.NoError(t, err)
	require.Len(t, series, 1)
	assert.Equal(t, models.Series{ID: 1, Slug: "monogatari", Name: "Monogatari"}, series[0])

	studios, err := store.StudiosByAnime(ctx, 4)
	require.NoError(t, err)
	require.Len(t, studios, 1)
	assert.Equal(t, "sunrise", studios[0].Slug)

	resources, err := store.ResourcesByAnime(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, resources, 2)

	images, err := store.ImagesByAnime(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, images, 2)

	inSeries, err := store.AnimeBySeries(ctx, 1)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint{1, 2, 3}, animeIDs(inSeries))

	byStudio, err := store.AnimeByStudio(ctx, 1)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint{1, 2, 3}, animeIDs(byStudio))
}

func TestRelationsWithoutRowsAreEmpty(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	synonyms, err := store.SynonymsByAnime(ctx, 5)
	require.NoError(t, err)
	assert.NotNil(t, synonyms)
	assert.Empty(t, synonyms)

	anime, err := store.AnimeBySeries(ctx, 2)
	require.NoError(t, err)
	assert.NotNil(t, anime)
	assert.Empty(t, anime)

	performances, err := store.PerformancesByArtist(ctx, 3)
	require.NoError(t, err)
	assert.Empty(t, performances)

	resources, err := store.ResourcesByArtist(ctx, 3)
	require.NoError(t, err)
	assert.Empty(t, resources)

	videos, err := store.VideosByEntry(ctx, 3)
	require.NoError(t, err)
	assert.Empty(t, videos)
}

func TestThemes(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	theme, err := store.Theme(ctx, uintPtr(2))
	require.NoError(t, err)
	require.NotNil(t, theme)
	assert.Equal(t, "ED", theme.Slug)
	assert.Nil(t, theme.Sequence)
	require.NotNil(t, theme.SongID)
	assert.Equal(t, uint(2), *theme.SongID)

	songless, err := store.ThemeByID(ctx, 3)
	require.NoError(t, err)
	require.NotNil(t, songless)
	assert.Nil(t, songless.SongID)

	byAnime, err := store.ThemesByAnime(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, byAnime, 2)

	bySong, err := store.ThemesBySong(ctx, 1)
	require.NoError(t, err)
	require.Len(t, bySong, 1)
	assert.Equal(t, uint(1), bySong[0].ID)
}

func TestListThemesOrdering(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	desc, err := store.ListThemes(ctx, database.ThemeFilter{OrderBy: "id", OrderDesc: true})
	require.NoError(t, err)
	require.Len(t, desc, 4)
	assert.Equal(t, uint(4), desc[0].ID)
	assert.Equal(t, uint(1), desc[3].ID)

	asc, err := store.ListThemes(ctx, database.ThemeFilter{OrderBy: "slug", Limit: 2})
	require.NoError(t, err)
	require.Len(t, asc, 2)
	assert.Equal(t, "ED", asc[0].Slug)
	assert.Equal(t, "OP", asc[1].Slug)

	_, err = store.ListThemes(ctx, database.ThemeFilter{OrderBy: "slug; DROP TABLE anime_themes"})
	assert.True(t, errors.Is(err, database.ErrUnknownOrderColumn))
}

func TestEntriesAndVideos(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	entries, err := store.EntriesByTheme(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, entries, 2)

	videos, err := store.VideosByEntry(ctx, 1)
	require.NoError(t, err)
	require.Len(t, videos, 2)
	for _, v := range videos {
		assert.NotEmpty(t, v.Basename)
	}
}

func TestArtistsAndSongs(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	artist, err := store.Artist(ctx, database.Key{Slug: strPtr("supercell")})
	require.NoError(t, err)
	require.NotNil(t, artist)
	assert.Equal(t, uint(2), artist.ID)

	artists, err := store.ListArtists(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, artists, 2)

	song, err := store.SongByID(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, song)
	assert.Equal(t, "staple stable", *song.Title)

	missing, err := store.SongByID(ctx, 99)
	require.NoError(t, err)
	assert.Nil(t, missing)

	performances, err := store.PerformancesBySong(ctx, 1)
	require.NoError(t, err)
	require.Len(t, performances, 1)
	assert.Equal(t, "Hitagi Senjougahara", *performances[0].As)

	images, err := store.ImagesByArtist(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, images, 1)
}

func TestSeriesAndStudios(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	series, err := store.Series(ctx, database.Key{ID: uintPtr(1), Slug: strPtr("monogatari")})
	require.NoError(t, err)
	require.NotNil(t, series)

	allSeries, err := store.ListSeries(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, allSeries, 2)

	studio, err := store.Studio(ctx, database.Key{Slug: strPtr("shaft")})
	require.NoError(t, err)
	require.NotNil(t, studio)
	assert.Equal(t, "SHAFT", studio.Name)

	studios, err := store.ListStudios(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, studios, 1)

	resources, err := store.ResourcesByStudio(ctx, 1)
	require.NoError(t, err)
	require.Len(t, resources, 1)
	assert.Equal(t, 0, *resources[0].Site)
}

func TestStoreFaultIsReturned(t *testing.T) {
	_, sqlDB := dbtest.Open(t)
	store := database.NewStore(sqlDB)
	require.NoError(t, sqlDB.Close())

	_, err := store.ListAnime(context.Background(), database.AnimeFilter{})
	assert.Error(t, err)

	_, err = store.AnimeByID(context.Background(), 1)
	assert.Error(t, err)
}
