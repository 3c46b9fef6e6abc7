package pages

import (
	"fmt"
	"os"
	"sort"
	"strings"
)

// IndexSlug is the template that renders the site root. The root is emitted
// separately, so it is never returned as a page.
const IndexSlug = "index"

// Discover lists dir and returns the page slugs it contains, sorted.
// A slug is the part of the file name before the first occurrence of ext.
func Discover(dir, ext string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list pages directory: %w", err)
	}

	slugs := make([]string, 0, len(entries))
	for _, entry := range entries {
		slug := Slug(entry.Name(), ext)
		if slug == IndexSlug {
			continue
		}
		slugs = append(slugs, slug)
	}

	sort.Strings(slugs)
	return slugs, nil
}

// Slug strips ext and everything after it from name.
func Slug(name, ext string) string {
	if ext == "" {
		return name
	}
	slug, _, _ := strings.Cut(name, ext)
	return slug
}
