package api

import (
	"bytes"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/romangod6/sitemap-gen/internal/generator"
	"github.com/romangod6/sitemap-gen/internal/models"
	"github.com/romangod6/sitemap-gen/internal/sitemap"
)

type Handler struct {
	gen *generator.Generator
	now func() time.Time
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type EntriesResponse struct {
	RunID string       `json:"run_id"`
	Pages []string     `json:"pages"`
	Count int          `json:"count"`
	Data  []models.URL `json:"data"`
}

func NewHandler(gen *generator.Generator) *Handler {
	return &Handler{gen: gen, now: time.Now}
}

// Sitemap regenerates the document on every request without touching the
// output file.
func (h *Handler) Sitemap(c *gin.Context) {
	result, err := h.gen.Build(c.Request.Context(), h.now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to build sitemap: " + err.Error()})
		return
	}

	var buf bytes.Buffer
	if err := sitemap.Encode(&buf, result.Document); err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to encode sitemap"})
		return
	}

	c.Data(http.StatusOK, "application/xml; charset=utf-8", buf.Bytes())
}

func (h *Handler) ListEntries(c *gin.Context) {
	result, err := h.gen.Build(c.Request.Context(), h.now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to build sitemap: " + err.Error()})
		return
	}

	entries := result.Entries
	if lang := c.Query("hreflang"); lang != "" {
		entries = filterByLocale(entries, lang)
	}

	c.JSON(http.StatusOK, EntriesResponse{
		RunID: result.RunID.String(),
		Pages: result.Slugs,
		Count: len(entries),
		Data:  entries,
	})
}

// filterByLocale keeps the entries whose own alternate (the one pointing at
// loc) carries the given hreflang.
func filterByLocale(entries []models.URL, lang string) []models.URL {
	filtered := make([]models.URL, 0, len(entries))
	for _, e := range entries {
		for _, l := range e.Links {
			if l.Hreflang == lang && l.Href == e.Loc {
				filtered = append(filtered, e)
				break
			}
		}
	}
	return filtered
}
