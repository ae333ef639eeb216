package database

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/MonCaptain/animethemes-web/models"
)

var (
	seriesColumns   = qualify("series", []string{"series_id", "slug", "name"})
	studioColumns   = qualify("studios", []string{"studio_id", "slug", "name"})
	resourceColumns = qualify("resources", []string{"resource_id", "link", "external_id", "site"})
	imageColumns    = qualify("images", []string{"image_id", "path", "facet"})
)

func scanSeries(s rowScanner) (models.Series, error) {
	var series models.Series
	err := s.Scan(&series.ID, &series.Slug, &series.Name)
	return series, err
}

func scanStudio(s rowScanner) (models.Studio, error) {
	var studio models.Studio
	err := s.Scan(&studio.ID, &studio.Slug, &studio.Name)
	return studio, err
}

func scanResource(s rowScanner) (models.Resource, error) {
	var r models.Resource
	err := s.Scan(&r.ID, &r.Link, &r.ExternalID, &r.Site)
	return r, err
}

func scanImage(s rowScanner) (models.Image, error) {
	var img models.Image
	err := s.Scan(&img.ID, &img.Path, &img.Facet)
	return img, err
}

func (s *Store) Series(ctx context.Context, key Key) (*models.Series, error) {
	b := withKey(psql.Select(seriesColumns...).From("series"), "series", "series_id", key)
	return selectOne(ctx, s.db, b, scanSeries)
}

func (s *Store) ListSeries(ctx context.Context, limit int) ([]models.Series, error) {
	b := psql.Select(seriesColumns...).From("series")
	return selectMany(ctx, s.db, withLimit(b, limit), scanSeries)
}

func (s *Store) SeriesByAnime(ctx context.Context, animeID uint) ([]models.Series, error) {
	b := psql.Select(seriesColumns...).
		From("series").
		InnerJoin("anime_series ON anime_series.series_id = series.series_id").
		Where(sq.Eq{"anime_series.anime_id": animeID})
	return selectMany(ctx, s.db, b, scanSeries)
}

func (s *Store) Studio(ctx context.Context, key Key) (*models.Studio, error) {
	b := withKey(psql.Select(studioColumns...).From("studios"), "studios", "studio_id", key)
	return selectOne(ctx, s.db, b, scanStudio)
}

func (s *Store) ListStudios(ctx context.Context, limit int) ([]models.Studio, error) {
	b := psql.Select(studioColumns...).From("studios")
	return selectMany(ctx, s.db, withLimit(b, limit), scanStudio)
}

func (s *Store) StudiosByAnime(ctx context.Context, animeID uint) ([]models.Studio, error) {
	b := psql.Select(studioColumns...).
		From("studios").
		InnerJoin("anime_studio ON anime_studio.studio_id = studios.studio_id").
		Where(sq.Eq{"anime_studio.anime_id": animeID})
	return selectMany(ctx, s.db, b, scanStudio)
}

func (s *Store) ResourcesByAnime(ctx context.Context, animeID uint) ([]models.Resource, error) {
	return s.resourcesVia(ctx, "anime_resource", "anime_id", animeID)
}

func (s *Store) ResourcesByArtist(ctx context.Context, artistID uint) ([]models.Resource, error) {
	return s.resourcesVia(ctx, "artist_resource", "artist_id", artistID)
}

func (s *Store) ResourcesByStudio(ctx context.Context, studioID uint) ([]models.Resource, error) {
	return s.resourcesVia(ctx, "studio_resource", "studio_id", studioID)
}

func (s *Store) ImagesByAnime(ctx context.Context, animeID uint) ([]models.Image, error) {
	return s.imagesVia(ctx, "anime_image", "anime_id", animeID)
}

func (s *Store) ImagesByArtist(ctx context.Context, artistID uint) ([]models.Image, error) {
	return s.imagesVia(ctx, "artist_image", "artist_id", artistID)
}

// resourcesVia joins a <owner>_resource pivot table. Only resources columns
// are selected; pivot columns such as `as` stay behind.
func (s *Store) resourcesVia(ctx context.Context, pivot, ownerColumn string, ownerID uint) ([]models.Resource, error) {
	b := psql.Select(resourceColumns...).
		From("resources").
		InnerJoin(pivot + " ON " + pivot + ".resource_id = resources.resource_id").
		Where(sq.Eq{pivot + "." + ownerColumn: ownerID})
	return selectMany(ctx, s.db, b, scanResource)
}

func (s *Store) imagesVia(ctx context.Context, pivot, ownerColumn string, ownerID uint) ([]models.Image, error) {
	b := psql.Select(imageColumns...).
		From("images").
		InnerJoin(pivot + " ON " + pivot + ".image_id = images.image_id").
		Where(sq.Eq{pivot + "." + ownerColumn: ownerID})
	return selectMany(ctx, s.db, b, scanImage)
}
