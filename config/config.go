package config

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/viper"
	"golang.org/x/text/language"
)

// FileName is the project metadata file the generator reads.
const FileName = "package.json"

type Config struct {
	Website       string
	Localizations []string
	Sitemap       struct {
		PagesDir   string
		Output     string
		Extension  string
		ChangeFreq string
		Priority   string
		Server     struct {
			Port int
		}
	}
}

// ConfigurationError reports a missing or malformed required field.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: %s %s in %s", e.Field, e.Reason, FileName)
}

// LoadConfig reads package.json from the working directory.
func LoadConfig() (*Config, error) {
	return Load(".")
}

// Load reads dir/package.json. Relative paths in the sitemap section are
// resolved against dir.
func Load(dir string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(filepath.Join(dir, FileName))
	v.SetConfigType("json")

	// Default values
	v.SetDefault("sitemap.pagesdir", filepath.Join("pages", "[lang]"))
	v.SetDefault("sitemap.output", filepath.Join("public", "sitemap.xml"))
	v.SetDefault("sitemap.extension", ".tsx")
	v.SetDefault("sitemap.changefreq", "daily")
	v.SetDefault("sitemap.priority", "0.7")
	v.SetDefault("sitemap.server.port", 8080)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
	}

	var config Config

	website, ok := v.Get("website").(string)
	if !ok || website == "" {
		return nil, &ConfigurationError{Field: "website", Reason: "is missing"}
	}
	config.Website = website

	locales, err := readLocales(v.Get("localizations"))
	if err != nil {
		return nil, err
	}
	config.Localizations = locales

	config.Sitemap.PagesDir = resolve(dir, v.GetString("sitemap.pagesdir"))
	config.Sitemap.Output = resolve(dir, v.GetString("sitemap.output"))
	config.Sitemap.Extension = v.GetString("sitemap.extension")
	config.Sitemap.ChangeFreq = v.GetString("sitemap.changefreq")
	config.Sitemap.Priority = v.GetString("sitemap.priority")
	config.Sitemap.Server.Port = v.GetInt("sitemap.server.port")

	return &config, nil
}

func readLocales(raw interface{}) ([]string, error) {
	if raw == nil {
		return nil, &ConfigurationError{Field: "localizations", Reason: "is missing"}
	}
	items, ok := raw.([]interface{})
	if !ok {
		return nil, &ConfigurationError{Field: "localizations", Reason: "is not a list"}
	}
	if len(items) == 0 {
		return nil, &ConfigurationError{Field: "localizations", Reason: "is empty"}
	}

	locales := make([]string, 0, len(items))
	for i, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, &ConfigurationError{
				Field:  "localizations",
				Reason: fmt.Sprintf("has a non-string item at index %d", i),
			}
		}
		locales = append(locales, s)
	}
	return locales, nil
}

func resolve(dir, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}

// DefaultLocale is the first configured locale. It never appears as a path
// segment of the root page.
func (c *Config) DefaultLocale() string {
	return c.Localizations[0]
}

// UnrecognizedLocales returns the configured codes that do not parse as
// BCP 47 language tags. They are still emitted as-is.
func (c *Config) UnrecognizedLocales() []string {
	var bad []string
	for _, code := range c.Localizations {
		if _, err := language.Parse(code); err != nil {
			bad = append(bad, code)
		}
	}
	return bad
}
