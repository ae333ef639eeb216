package graph

import (
	"context"
	"strconv"

	"github.com/MonCaptain/animethemes-web/enums"
	"github.com/MonCaptain/animethemes-web/models"
)

type seriesResolver struct {
	r *Resolver
	s models.Series
}

func (r *Resolver) series(s models.Series) *seriesResolver {
	return &seriesResolver{r: r, s: s}
}

func (sr *seriesResolver) ID() (int32, error) { return toInt32(sr.s.ID) }
func (sr *seriesResolver) Slug() string       { return sr.s.Slug }
func (sr *seriesResolver) Name() string       { return sr.s.Name }

func (sr *seriesResolver) Anime(ctx context.Context) ([]*animeResolver, error) {
	rows, err := sr.r.store.AnimeBySeries(ctx, sr.s.ID)
	if err != nil {
		return nil, err
	}
	return wrapAll(rows, sr.r.anime), nil
}

type studioResolver struct {
	r *Resolver
	s models.Studio
}

func (r *Resolver) studio(s models.Studio) *studioResolver {
	return &studioResolver{r: r, s: s}
}

func (sr *studioResolver) ID() (int32, error) { return toInt32(sr.s.ID) }
func (sr *studioResolver) Slug() string       { return sr.s.Slug }
func (sr *studioResolver) Name() string       { return sr.s.Name }

func (sr *studioResolver) Anime(ctx context.Context) ([]*animeResolver, error) {
	rows, err := sr.r.store.AnimeByStudio(ctx, sr.s.ID)
	if err != nil {
		return nil, err
	}
	return wrapAll(rows, sr.r.anime), nil
}

func (sr *studioResolver) Resources(ctx context.Context) ([]*resourceResolver, error) {
	rows, err := sr.r.store.ResourcesByStudio(ctx, sr.s.ID)
	if err != nil {
		return nil, err
	}
	return wrapAll(rows, resource), nil
}

type resourceResolver struct {
	res models.Resource
}

func resource(res models.Resource) *resourceResolver {
	return &resourceResolver{res: res}
}

func (rr *resourceResolver) ID() (int32, error) { return toInt32(rr.res.ID) }
func (rr *resourceResolver) Link() *string      { return rr.res.Link }

func (rr *resourceResolver) ExternalID() (*int32, error) {
	return toInt32Ptr(rr.res.ExternalID)
}

func (rr *resourceResolver) Site() *string {
	return enums.DecodePtr(enums.ResourceSites, rr.res.Site)
}

type imageResolver struct {
	img     models.Image
	baseURL string
}

func (r *Resolver) image(img models.Image) *imageResolver {
	return &imageResolver{img: img, baseURL: r.baseURL}
}

func (ir *imageResolver) ID() (int32, error) { return toInt32(ir.img.ID) }
func (ir *imageResolver) Path() string       { return ir.img.Path }
func (ir *imageResolver) Link() string       { return ImageLink(ir.baseURL, ir.img.ID) }

func (ir *imageResolver) Facet() *string {
	return enums.DecodePtr(enums.ImageFacets, ir.img.Facet)
}

// ImageLink is the public URL of an image: {baseURL}/image/{id}.
func ImageLink(baseURL string, id uint) string {
	return baseURL + "/image/" + strconv.FormatUint(uint64(id), 10)
}

// bracketCharacterResolver wraps a theme id and loads the theme on demand.
type bracketCharacterResolver struct {
	r       *Resolver
	themeID int32
}

func (br *bracketCharacterResolver) Theme(ctx context.Context) (*themeResolver, error) {
	if br.themeID < 0 {
		return nil, nil
	}
	t, err := br.r.store.ThemeByID(ctx, uint(br.themeID))
	if err != nil || t == nil {
		return nil, err
	}
	return br.r.theme(*t), nil
}
