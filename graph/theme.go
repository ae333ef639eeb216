package graph

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"github.com/MonCaptain/animethemes-web/enums"
	"github.com/MonCaptain/animethemes-web/models"
)

// resolutions other than this are called out in video tags
const defaultResolution = 720

type themeResolver struct {
	r *Resolver
	t models.Theme
}

func (r *Resolver) theme(t models.Theme) *themeResolver {
	return &themeResolver{r: r, t: t}
}

func (tr *themeResolver) ID() (int32, error) { return toInt32(tr.t.ID) }
func (tr *themeResolver) Slug() string       { return tr.t.Slug }

func (tr *themeResolver) Type() *string {
	return enums.DecodePtr(enums.ThemeTypes, tr.t.Type)
}

// Sequence defaults to 1 when absent or zero.
func (tr *themeResolver) Sequence() (int32, error) {
	if tr.t.Sequence == nil || *tr.t.Sequence == 0 {
		return 1, nil
	}
	return toInt32(*tr.t.Sequence)
}

func (tr *themeResolver) Song(ctx context.Context) (*songResolver, error) {
	if tr.t.SongID == nil {
		return nil, nil
	}
	song, err := tr.r.store.SongByID(ctx, *tr.t.SongID)
	if err != nil || song == nil {
		return nil, err
	}
	return tr.r.song(*song), nil
}

func (tr *themeResolver) Anime(ctx context.Context) (*animeResolver, error) {
	if tr.t.AnimeID == 0 {
		return nil, nil
	}
	a, err := tr.r.store.AnimeByID(ctx, tr.t.AnimeID)
	if err != nil || a == nil {
		return nil, err
	}
	return tr.r.anime(*a), nil
}

func (tr *themeResolver) Entries(ctx context.Context) ([]*entryResolver, error) {
	rows, err := tr.r.store.EntriesByTheme(ctx, tr.t.ID)
	if err != nil {
		return nil, err
	}
	return wrapAll(rows, func(e models.Entry) *entryResolver { return &entryResolver{r: tr.r, e: e} }), nil
}

type entryResolver struct {
	r *Resolver
	e models.Entry
}

func (er *entryResolver) ID() (int32, error) { return toInt32(er.e.ID) }
func (er *entryResolver) Episodes() *string  { return er.e.Episodes }
func (er *entryResolver) NSFW() bool         { return er.e.NSFW }
func (er *entryResolver) Spoiler() bool      { return er.e.Spoiler }
func (er *entryResolver) Notes() *string     { return er.e.Notes }

// Version defaults to 1 when absent or zero.
func (er *entryResolver) Version() (int32, error) {
	if er.e.Version == nil || *er.e.Version == 0 {
		return 1, nil
	}
	return toInt32(*er.e.Version)
}

func (er *entryResolver) Videos(ctx context.Context) ([]*videoResolver, error) {
	rows, err := er.r.store.VideosByEntry(ctx, er.e.ID)
	if err != nil {
		return nil, err
	}
	return wrapAll(rows, func(v models.Video) *videoResolver { return &videoResolver{r: er.r, v: v} }), nil
}

type videoResolver struct {
	r *Resolver
	v models.Video
}

func (vr *videoResolver) ID() (int32, error)          { return toInt32(vr.v.ID) }
func (vr *videoResolver) Basename() string            { return vr.v.Basename }
func (vr *videoResolver) Filename() string            { return vr.v.Filename }
func (vr *videoResolver) Path() string                { return vr.v.Path }
func (vr *videoResolver) Resolution() (*int32, error) { return toInt32Ptr(vr.v.Resolution) }
func (vr *videoResolver) NC() bool                    { return vr.v.NC }
func (vr *videoResolver) Subbed() bool                { return vr.v.Subbed }
func (vr *videoResolver) Lyrics() bool                { return vr.v.Lyrics }
func (vr *videoResolver) Uncen() bool                 { return vr.v.Uncen }
func (vr *videoResolver) Tags() string                { return VideoTags(vr.v) }

// Size is the file size in bytes. It is a Float because files of 2 GiB and
// more overflow Int; float64 holds every size below 2^53 exactly.
func (vr *videoResolver) Size() *float64 {
	if vr.v.Size == nil {
		return nil
	}
	size := float64(*vr.v.Size)
	return &size
}

func (vr *videoResolver) Source() *string {
	return enums.DecodePtr(enums.VideoSources, vr.v.Source)
}

func (vr *videoResolver) Overlap() *string {
	overlap := vr.v.Overlap
	return enums.DecodePtr(enums.VideoOverlaps, &overlap)
}

func (vr *videoResolver) Link() string {
	return vr.r.baseURL + "/video/" + url.PathEscape(vr.v.Basename)
}

// VideoTags summarizes a video for display: "NC", the source when it is BD or
// DVD, the resolution when it is not 720, then "Subbed" or else "Lyrics".
// Tags are joined without a separator, e.g. "NCBD1080".
func VideoTags(v models.Video) string {
	var tags strings.Builder

	if v.NC {
		tags.WriteString("NC")
	}
	if v.Source != nil {
		switch source := enums.VideoSource(*v.Source); source {
		case enums.SourceBD, enums.SourceDVD:
			name, _ := enums.VideoSources.Decode(source)
			tags.WriteString(name)
		}
	}
	if v.Resolution != nil && *v.Resolution != 0 && *v.Resolution != defaultResolution {
		tags.WriteString(strconv.Itoa(*v.Resolution))
	}

	if v.Subbed {
		tags.WriteString("Subbed")
	} else if v.Lyrics {
		tags.WriteString("Lyrics")
	}

	return tags.String()
}
