// Package dbtest provides an in-memory SQLite animethemes database for tests.
package dbtest

import (
	"database/sql"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/MonCaptain/animethemes-web/database"
	"github.com/MonCaptain/animethemes-web/models"
)

// Open returns a migrated, empty database. Each call gets its own named
// shared-cache memory database, closed when the test ends.
func Open(t testing.TB) (*gorm.DB, *sql.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	gdb, err := database.InitGormDB(dsn, logger.Silent)
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	// the memory database lives as long as this single connection
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, database.AutoMigrateModels(gdb))
	return gdb, sqlDB
}

// OpenSeeded returns a database holding the Fixture rows.
func OpenSeeded(t testing.TB) (*gorm.DB, *sql.DB) {
	t.Helper()
	gdb, sqlDB := Open(t)
	Seed(t, gdb)
	return gdb, sqlDB
}

// Seed inserts Fixture into gdb.
func Seed(t testing.TB, gdb *gorm.DB) {
	t.Helper()
	for _, rows := range Fixture() {
		require.NoError(t, gdb.Create(rows).Error)
	}
}

func intPtr(v int) *int       { return &v }
func int64Ptr(v int64) *int64 { return &v }
func uintPtr(v uint) *uint    { return &v }
func strPtr(v string) *string { return &v }

// Fixture is a small slice of the monogatari catalog plus a few edge cases:
// anime 5 has no year or season, theme 3 and 4 have no song, series 2 and
// artist 3 have no related rows.
func Fixture() []interface{} {
	return []interface{}{
		&[]models.Anime{
			{ID: 1, Slug: "bakemonogatari", Name: "Bakemonogatari", Year: intPtr(2009), Season: intPtr(2), Synopsis: strPtr("Koyomi Araragi meets Hitagi Senjougahara.")},
			{ID: 2, Slug: "monogatari_series_second_season", Name: "Monogatari Series: Second Season", Year: intPtr(2013), Season: intPtr(2)},
			{ID: 3, Slug: "kizumonogatari", Name: "Kizumonogatari", Year: intPtr(2016), Season: intPtr(0)},
			{ID: 4, Slug: "cowboy_bebop", Name: "Cowboy Bebop", Year: intPtr(1998), Season: intPtr(1)},
			{ID: 5, Slug: "unscheduled", Name: "Unscheduled"},
		},
		&[]models.Synonym{
			{ID: 1, Text: strPtr("Bakemono"), AnimeID: 1},
			{ID: 2, Text: strPtr("Ghostory"), AnimeID: 1},
		},
		&[]models.Series{
			{ID: 1, Slug: "monogatari", Name: "Monogatari"},
			{ID: 2, Slug: "empty", Name: "Empty"},
		},
		&[]models.Studio{
			{ID: 1, Slug: "shaft", Name: "SHAFT"},
			{ID: 2, Slug: "sunrise", Name: "Sunrise"},
		},
		&[]models.Resource{
			{ID: 1, Link: strPtr("https://myanimelist.net/anime/5081/"), ExternalID: int64Ptr(5081), Site: intPtr(7)},
			{ID: 2, Link: strPtr("https://anidb.net/anime/6327"), ExternalID: int64Ptr(6327), Site: intPtr(2)},
			{ID: 3, Link: strPtr("https://www.animenewsnetwork.com/encyclopedia/people.php?id=4505"), Site: intPtr(5)},
			{ID: 4, Link: strPtr("https://www.shaft-web.co.jp/"), Site: intPtr(0)},
		},
		&[]models.Image{
			{ID: 1, Path: "anime/bakemonogatari_small.jpg", Facet: intPtr(0)},
			{ID: 2, Path: "anime/bakemonogatari_large.jpg", Facet: intPtr(1)},
			{ID: 3, Path: "artist/chiwa_saito.jpg", Facet: intPtr(0)},
		},
		&[]models.Song{
			{ID: 1, Title: strPtr("staple stable")},
			{ID: 2, Title: strPtr("Kimi no Shiranai Monogatari")},
		},
		&[]models.Artist{
			{ID: 1, Slug: "chiwa_saito", Name: "Chiwa Saito"},
			{ID: 2, Slug: "supercell", Name: "supercell"},
			{ID: 3, Slug: "nobody", Name: "Nobody"},
		},
		&[]models.Theme{
			{ID: 1, Type: intPtr(0), Sequence: intPtr(1), Slug: "OP1", AnimeID: 1, SongID: uintPtr(1)},
			{ID: 2, Type: intPtr(1), Slug: "ED", AnimeID: 1, SongID: uintPtr(2)},
			{ID: 3, Type: intPtr(0), Sequence: intPtr(2), Slug: "OP2", AnimeID: 2},
			{ID: 4, Type: intPtr(0), Sequence: intPtr(0), Slug: "OP", AnimeID: 4},
		},
		&[]models.Entry{
			{ID: 1, Episodes: strPtr("2-15"), ThemeID: 1},
			{ID: 2, Version: intPtr(2), Episodes: strPtr("3"), Spoiler: true, ThemeID: 1},
			{ID: 3, Version: intPtr(0), NSFW: true, Notes: strPtr("Uncut"), ThemeID: 2},
		},
		&[]models.Video{
			{ID: 1, Basename: "Bakemonogatari-OP1.webm", Filename: "Bakemonogatari-OP1", Path: "2009/Summer/Bakemonogatari-OP1.webm", Size: int64Ptr(41294322), Resolution: intPtr(1080), NC: true, Source: intPtr(2)},
			{ID: 2, Basename: "Bakemonogatari-OP1-Lyrics.webm", Filename: "Bakemonogatari-OP1-Lyrics", Path: "2009/Summer/Bakemonogatari-OP1-Lyrics.webm", Resolution: intPtr(720), Lyrics: true, Source: intPtr(0)},
			{ID: 3, Basename: "Bakemonogatari-OP1v2.webm", Filename: "Bakemonogatari-OP1v2", Path: "2009/Summer/Bakemonogatari-OP1v2.webm", Subbed: true, Lyrics: true, Overlap: 1},
		},
		&[]models.Performance{
			{ArtistID: 1, SongID: 1, As: strPtr("Hitagi Senjougahara")},
			{ArtistID: 2, SongID: 2},
		},
		&[]models.AnimeSeries{
			{AnimeID: 1, SeriesID: 1},
			{AnimeID: 2, SeriesID: 1},
			{AnimeID: 3, SeriesID: 1},
		},
		&[]models.AnimeStudio{
			{AnimeID: 1, StudioID: 1},
			{AnimeID: 2, StudioID: 1},
			{AnimeID: 3, StudioID: 1},
			{AnimeID: 4, StudioID: 2},
		},
		&[]models.AnimeResource{
			{AnimeID: 1, ResourceID: 1, As: strPtr("Season 1")},
			{AnimeID: 1, ResourceID: 2},
		},
		&[]models.AnimeImage{
			{AnimeID: 1, ImageID: 1},
			{AnimeID: 1, ImageID: 2},
		},
		&[]models.ArtistResource{
			{ArtistID: 1, ResourceID: 3},
		},
		&[]models.ArtistImage{
			{ArtistID: 1, ImageID: 3},
		},
		&[]models.StudioResource{
			{StudioID: 1, ResourceID: 4},
		},
		&[]models.EntryVideo{
			{EntryID: 1, VideoID: 1},
			{EntryID: 1, VideoID: 2},
			{EntryID: 2, VideoID: 3},
		},
	}
}
