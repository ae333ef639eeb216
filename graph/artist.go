package graph

import (
	"context"

	"github.com/MonCaptain/animethemes-web/models"
)

type artistResolver struct {
	r *Resolver
	a models.Artist
}

func (r *Resolver) artist(a models.Artist) *artistResolver {
	return &artistResolver{r: r, a: a}
}

func (ar *artistResolver) ID() (int32, error) { return toInt32(ar.a.ID) }
func (ar *artistResolver) Slug() string       { return ar.a.Slug }
func (ar *artistResolver) Name() string       { return ar.a.Name }

func (ar *artistResolver) Performances(ctx context.Context) ([]*performanceResolver, error) {
	rows, err := ar.r.store.PerformancesByArtist(ctx, ar.a.ID)
	if err != nil {
		return nil, err
	}
	return wrapAll(rows, ar.r.performance), nil
}

func (ar *artistResolver) Resources(ctx context.Context) ([]*resourceResolver, error) {
	rows, err := ar.r.store.ResourcesByArtist(ctx, ar.a.ID)
	if err != nil {
		return nil, err
	}
	return wrapAll(rows, resource), nil
}

func (ar *artistResolver) Images(ctx context.Context) ([]*imageResolver, error) {
	rows, err := ar.r.store.ImagesByArtist(ctx, ar.a.ID)
	if err != nil {
		return nil, err
	}
	return wrapAll(rows, ar.r.image), nil
}

type songResolver struct {
	r *Resolver
	s models.Song
}

func (r *Resolver) song(s models.Song) *songResolver {
	return &songResolver{r: r, s: s}
}

func (sr *songResolver) ID() (int32, error) { return toInt32(sr.s.ID) }
func (sr *songResolver) Title() *string     { return sr.s.Title }

func (sr *songResolver) Themes(ctx context.Context) ([]*themeResolver, error) {
	rows, err := sr.r.store.ThemesBySong(ctx, sr.s.ID)
	if err != nil {
		return nil, err
	}
	return wrapAll(rows, sr.r.theme), nil
}

func (sr *songResolver) Performances(ctx context.Context) ([]*performanceResolver, error) {
	rows, err := sr.r.store.PerformancesBySong(ctx, sr.s.ID)
	if err != nil {
		return nil, err
	}
	return wrapAll(rows, sr.r.performance), nil
}

// performanceResolver credits one artist on one song.
type performanceResolver struct {
	r *Resolver
	p models.Performance
}

func (r *Resolver) performance(p models.Performance) *performanceResolver {
	return &performanceResolver{r: r, p: p}
}

func (pr *performanceResolver) As() *string { return pr.p.As }

func (pr *performanceResolver) Artist(ctx context.Context) (*artistResolver, error) {
	if pr.p.ArtistID == 0 {
		return nil, nil
	}
	a, err := pr.r.store.ArtistByID(ctx, pr.p.ArtistID)
	if err != nil || a == nil {
		return nil, err
	}
	return pr.r.artist(*a), nil
}

func (pr *performanceResolver) Song(ctx context.Context) (*songResolver, error) {
	if pr.p.SongID == 0 {
		return nil, nil
	}
	s, err := pr.r.store.SongByID(ctx, pr.p.SongID)
	if err != nil || s == nil {
		return nil, err
	}
	return pr.r.song(*s), nil
}
