package models

// All lists every table model, in an order that satisfies foreign keys.
func All() []interface{} {
	return []interface{}{
		&Anime{},
		&Synonym{},
		&Series{},
		&Studio{},
		&Resource{},
		&Image{},
		&Song{},
		&Artist{},
		&Theme{},
		&Entry{},
		&Video{},
		&Performance{},
		&AnimeSeries{},
		&AnimeStudio{},
		&AnimeResource{},
		&AnimeImage{},
		&ArtistResource{},
		&ArtistImage{},
		&StudioResource{},
		&EntryVideo{},
	}
}
