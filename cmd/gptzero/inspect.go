package main

import (
	"context"
	"fmt"
	"os"

	"github.com/RichardKnop/gptzero/adapter/pdf"
)

type InspectCommand struct {
	Path string `arg:"" type:"existingfile" help:"PDF report to read."`
}

func (c *InspectCommand) Run(ctx context.Context, g *Globals) error {
	level := g.LogLevel
	if level == "" {
		level = "warn"
	}
	logger, err := newLogger(level)
	if err != nil {
		return err
	}
	defer logger.Sync()

	f, err := os.Open(c.Path)
	if err != nil {
		return err
	}
	defer f.Close()

	pages, err := pdf.New(pdf.WithLogger(logger)).ExtractText(f)
	if err != nil {
		return fmt.Errorf("reading %s: %w", c.Path, err)
	}

	for i, page := range pages {
		fmt.Printf("--- page %d of %d ---\n%s\n", i+1, len(pages), page)
	}
	return nil
}
