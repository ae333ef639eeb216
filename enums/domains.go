package enums

type (
	VideoSource  int
	ImageFacet   int
	AnimeSeason  int
	ResourceSite int
	ThemeType    int
	VideoOverlap int
)

const (
	SourceWEB VideoSource = 0
	SourceRAW VideoSource = 1
	SourceBD  VideoSource = 2
	SourceDVD VideoSource = 3
	SourceVHS VideoSource = 4
	SourceLD  VideoSource = 5
)

const (
	FacetSmallCover ImageFacet = 0
	FacetLargeCover ImageFacet = 1
)

const (
	SeasonWinter AnimeSeason = 0
	SeasonSpring AnimeSeason = 1
	SeasonSummer AnimeSeason = 2
	SeasonFall   AnimeSeason = 3
)

const (
	SiteOfficial    ResourceSite = 0
	SiteTwitter     ResourceSite = 1
	SiteAniDB       ResourceSite = 2
	SiteAnilist     ResourceSite = 3
	SiteAnimePlanet ResourceSite = 4
	SiteANN         ResourceSite = 5
	SiteKitsu       ResourceSite = 6
	SiteMAL         ResourceSite = 7
	SiteWiki        ResourceSite = 8
)

const (
	ThemeOpening ThemeType = 0
	ThemeEnding  ThemeType = 1
)

const (
	OverlapNone       VideoOverlap = 0
	OverlapTransition VideoOverlap = 1
	OverlapOver       VideoOverlap = 2
)

// The code tables below are persisted in the database. Never renumber.
var (
	VideoSources = newDomain("video source", map[VideoSource]string{
		SourceWEB: "WEB",
		SourceRAW: "RAW",
		SourceBD:  "BD",
		SourceDVD: "DVD",
		SourceVHS: "VHS",
		SourceLD:  "LD",
	})

	ImageFacets = newDomain("image facet", map[ImageFacet]string{
		FacetSmallCover: "Small Cover",
		FacetLargeCover: "Large Cover",
	})

	AnimeSeasons = newDomain("anime season", map[AnimeSeason]string{
		SeasonWinter: "Winter",
		SeasonSpring: "Spring",
		SeasonSummer: "Summer",
		SeasonFall:   "Fall",
	})

	ResourceSites = newDomain("resource site", map[ResourceSite]string{
		SiteOfficial:    "Official Website",
		SiteTwitter:     "Twitter",
		SiteAniDB:       "AniDB",
		SiteAnilist:     "Anilist",
		SiteAnimePlanet: "Anime-Planet",
		SiteANN:         "Anime News Network",
		SiteKitsu:       "Kitsu",
		SiteMAL:         "MyAnimeList",
		SiteWiki:        "Wiki",
	})

	ThemeTypes = newDomain("theme type", map[ThemeType]string{
		ThemeOpening: "OP",
		ThemeEnding:  "ED",
	})

	VideoOverlaps = newDomain("video overlap", map[VideoOverlap]string{
		OverlapNone:       "None",
		OverlapTransition: "Transition",
		OverlapOver:       "Over",
	})
)
