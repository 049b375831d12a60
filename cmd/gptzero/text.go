package main

import (
	"context"
	"fmt"
	"os"

	"github.com/RichardKnop/gptzero/client"
)

type TextCommand struct {
	Text         string `arg:"" optional:"" help:"Text to check, read from --file or stdin when omitted."`
	File         string `short:"f" type:"existingfile" help:"Read the text from a file."`
	Out          string `short:"o" help:"Name of the report file, relative to report.dir."`
	Raw          bool   `help:"Print the API response instead of writing a report."`
	Format       string `enum:"json,yaml" default:"json" help:"Format of the printed response (json, yaml)."`
	ReportFormat string `help:"Report format (pdf, html), overrides report.format."`
}

func (c *TextCommand) Run(ctx context.Context, g *Globals) error {
	text, err := readText(c.Text, c.File, os.Stdin)
	if err != nil {
		return err
	}

	cfg, logger, err := setup(g, c.ReportFormat)
	if err != nil {
		return err
	}
	defer logger.Sync()

	options, err := cfg.clientOptions(logger)
	if err != nil {
		return err
	}
	textClient := client.NewTextClient(cfg.APIKey, options...)

	if c.Raw {
		resp, err := textClient.GetRaw(ctx, text)
		if err != nil {
			return err
		}
		return printResponse(os.Stdout, resp, c.Format)
	}

	resp, err := textClient.GetPDFResult(ctx, text, c.Out)
	if err != nil {
		return err
	}

	for _, doc := range resp.Documents {
		fmt.Printf("Overall generated probability: %v\n", doc.AverageGeneratedProb)
	}
	return nil
}
