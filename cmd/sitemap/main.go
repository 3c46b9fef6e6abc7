package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/romangod6/sitemap-gen/config"
	"github.com/romangod6/sitemap-gen/internal/generator"
	"github.com/romangod6/sitemap-gen/internal/utils"
)

func main() {
	// Captured once; every entry shares it.
	now := time.Now()

	if err := run(context.Background(), ".", now, os.Stdout, utils.NewStderrLogger()); err != nil {
		log.Fatalf("Sitemap generation failed: %v", err)
	}
}

func run(ctx context.Context, dir string, now time.Time, stdout io.Writer, logger *utils.Logger) error {
	cfg, err := config.Load(dir)
	if err != nil {
		return err
	}

	result, err := generator.New(cfg, logger).Run(ctx, now)
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Sitemap successfully generated: %s (%d entries)\n", result.Output, len(result.Entries))
	return nil
}
