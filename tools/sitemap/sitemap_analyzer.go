package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"sort"

	"github.com/romangod6/sitemap-gen/internal/models"
	"github.com/romangod6/sitemap-gen/internal/sitemap"
)

func main() {
	path := "public/sitemap.xml"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	sm, err := sitemap.ParseFile(path)
	if err != nil {
		log.Fatalf("Error reading sitemap: %v", err)
	}

	analyze(os.Stdout, sm)
}

func analyze(w io.Writer, sm *models.Sitemap) {
	fmt.Fprintf(w, "Total URLs found: %d\n", len(sm.URLs))

	perLocale := make(map[string]int)
	lastMods := make(map[string]struct{})
	for _, u := range sm.URLs {
		lastMods[u.LastMod] = struct{}{}
		for _, l := range u.Links {
			if l.Href == u.Loc {
				perLocale[l.Hreflang]++
			}
		}
	}

	langs := make([]string, 0, len(perLocale))
	for lang := range perLocale {
		langs = append(langs, lang)
	}
	sort.Strings(langs)

	fmt.Fprintln(w, "\n--- Entries per locale ---")
	for _, lang := range langs {
		fmt.Fprintf(w, "  %s: %d\n", lang, perLocale[lang])
	}
	fmt.Fprintf(w, "Distinct lastmod values: %d\n", len(lastMods))

	fmt.Fprintln(w, "\n--- Entries ---")
	for _, u := range sm.URLs {
		fmt.Fprintf(w, "%s (changefreq=%s priority=%s)\n", u.Loc, u.ChangeFreq, u.Priority)
		for _, l := range u.Links {
			fmt.Fprintf(w, "  %s -> %s\n", l.Hreflang, l.Href)
		}
	}
}
