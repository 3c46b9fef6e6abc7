package pages

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePages(t *testing.T, names ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("export default () => null\n"), 0o644))
	}
	return dir
}

func TestDiscover_ExcludesIndex(t *testing.T) {
	dir := writePages(t, "about.tsx", "index.tsx")

	slugs, err := Discover(dir, ".tsx")
	require.NoError(t, err)
	assert.Equal(t, []string{"about"}, slugs)
}

func TestDiscover_SortsSlugs(t *testing.T) {
	dir := writePages(t, "pricing.tsx", "about.tsx", "contact.tsx", "index.tsx")

	slugs, err := Discover(dir, ".tsx")
	require.NoError(t, err)
	assert.Equal(t, []string{"about", "contact", "pricing"}, slugs)
}

func TestDiscover_EmptyDirectory(t *testing.T) {
	slugs, err := Discover(t.TempDir(), ".tsx")
	require.NoError(t, err)
	assert.Empty(t, slugs)
}

func TestDiscover_MissingDirectory(t *testing.T) {
	_, err := Discover(filepath.Join(t.TempDir(), "nope"), ".tsx")
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSlug(t *testing.T) {
	cases := []struct {
		name string
		ext  string
		want string
	}{
		{"about.tsx", ".tsx", "about"},
		{"index.tsx", ".tsx", "index"},
		{"blog", ".tsx", "blog"},
		{"faq.tsx.bak", ".tsx", "faq"},
		{"terms.tsx", "", "terms.tsx"},
	}

	for _, tc := range cases {
		if got := Slug(tc.name, tc.ext); got != tc.want {
			t.Fatalf("Slug(%q, %q) = %q, want %q", tc.name, tc.ext, got, tc.want)
		}
	}
}
