package generator

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/romangod6/sitemap-gen/config"
	"github.com/romangod6/sitemap-gen/internal/models"
	"github.com/romangod6/sitemap-gen/internal/pages"
	"github.com/romangod6/sitemap-gen/internal/sitemap"
	"github.com/romangod6/sitemap-gen/internal/utils"
)

type Generator struct {
	config *config.Config
	logger *utils.Logger
}

// Result is the outcome of one generation pass.
type Result struct {
	RunID    uuid.UUID
	Slugs    []string
	Entries  []models.URL
	Document *sitemap.Element
	Output   string
}

func New(cfg *config.Config, logger *utils.Logger) *Generator {
	return &Generator{config: cfg, logger: logger}
}

// Build discovers pages and constructs the sitemap document in memory.
// now is stamped on every entry.
func (g *Generator) Build(ctx context.Context, now time.Time) (*Result, error) {
	runID := uuid.New()
	logger := g.logger.With("run", runID)

	logger.LogDebug("Configuration details:")
	logger.LogDebug("  Website: %s", g.config.Website)
	logger.LogDebug("  Localizations: %v", g.config.Localizations)
	logger.LogDebug("  Pages directory: %s", g.config.Sitemap.PagesDir)
	logger.LogDebug("  Output: %s", g.config.Sitemap.Output)

	for _, code := range g.config.UnrecognizedLocales() {
		logger.LogWarn("Locale %q is not a valid BCP 47 tag; emitting it unchanged", code)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	slugs, err := pages.Discover(g.config.Sitemap.PagesDir, g.config.Sitemap.Extension)
	if err != nil {
		return nil, err
	}
	logger.LogInfo("Discovered %d pages in %s", len(slugs), g.config.Sitemap.PagesDir)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	builder := sitemap.NewBuilder(g.config.Website, g.config.Localizations, now)
	if g.config.Sitemap.ChangeFreq != "" {
		builder.ChangeFreq = g.config.Sitemap.ChangeFreq
	}
	if g.config.Sitemap.Priority != "" {
		builder.Priority = g.config.Sitemap.Priority
	}

	entries := builder.Entries(slugs)
	logger.LogInfo("Built %d entries for %d locales", len(entries), len(g.config.Localizations))

	return &Result{
		RunID:    runID,
		Slugs:    slugs,
		Entries:  entries,
		Document: sitemap.Document(entries),
		Output:   g.config.Sitemap.Output,
	}, nil
}

// Run builds the sitemap and writes it to the configured output path.
func (g *Generator) Run(ctx context.Context, now time.Time) (*Result, error) {
	result, err := g.Build(ctx, now)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := sitemap.WriteFile(result.Output, result.Document); err != nil {
		return nil, fmt.Errorf("run %s: %w", result.RunID, err)
	}
	g.logger.With("run", result.RunID).LogInfo("Wrote %s", result.Output)

	return result, nil
}
