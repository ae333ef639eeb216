package database

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownOrderColumn is returned when themeAll is asked to sort by a
// column that is not in themeOrderColumns.
var ErrUnknownOrderColumn = errors.New("unknown order column")

// themeOrderColumns maps accepted orderBy values to anime_themes columns.
// Column names are never taken from user input directly.
var themeOrderColumns = map[string]string{
	"id":       "theme_id",
	"theme_id": "theme_id",
	"type":     "type",
	"sequence": "sequence",
	"slug":     "slug",
	"anime_id": "anime_id",
	"song_id":  "song_id",
}

// ThemeOrderColumn resolves an orderBy argument to a column name.
func ThemeOrderColumn(orderBy string) (string, error) {
	column, ok := themeOrderColumns[strings.ToLower(strings.TrimSpace(orderBy))]
	if !ok {
		return "", fmt.Errorf("%w %q", ErrUnknownOrderColumn, orderBy)
	}
	return column, nil
}

func orderClause(column string, desc bool) string {
	if desc {
		return "anime_themes." + column + " DESC"
	}
	return "anime_themes." + column + " ASC"
}
