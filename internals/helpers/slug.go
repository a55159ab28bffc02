package helper

import (
	"fmt"
	"regexp"
	"strings"

	"gorm.io/gorm"
)

var (
	slugInvalid = regexp.MustCompile(`[^a-z0-9]+`)
	slugDashes  = regexp.MustCompile(`-{2,}`)
)

// GenerateSlug turns a title into a URL-safe slug: lowercase, alphanumerics
// and single dashes only.
func GenerateSlug(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = slugInvalid.ReplaceAllString(s, "-")
	s = slugDashes.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if len(s) > 160 {
		s = strings.Trim(s[:160], "-")
	}
	return s
}

// EnsureUniqueSlug probes table.column for base, base-2, base-3, ... and
// returns the first free value. Soft-deleted rows keep their slug reserved.
func EnsureUniqueSlug(db *gorm.DB, table, column, base string) (string, error) {
	if base == "" {
		base = "untitled"
	}
	candidate := base
	for i := 1; i <= 50; i++ {
		var count int64
		if err := db.Table(table).
			Where(column+" = ?", candidate).
			Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, i+1)
	}
	return "", fmt.Errorf("could not find a free slug for %q", base)
}
