package main

import (
	"context"
	"fmt"
	"os"

	"github.com/RichardKnop/gptzero/client"
)

type FilesCommand struct {
	Paths        []string `arg:"" help:"Files to check."`
	Out          []string `short:"o" sep:"none" help:"Report file names, matched to the files in order. Repeat for each file."`
	Raw          bool     `help:"Print the API response instead of writing reports."`
	Format       string   `enum:"json,yaml" default:"json" help:"Format of the printed response (json, yaml)."`
	ReportFormat string   `help:"Report format (pdf, html), overrides report.format."`
}

func (c *FilesCommand) Run(ctx context.Context, g *Globals) error {
	cfg, logger, err := setup(g, c.ReportFormat)
	if err != nil {
		return err
	}
	defer logger.Sync()

	options, err := cfg.clientOptions(logger)
	if err != nil {
		return err
	}
	fileClient := client.NewFileClient(cfg.APIKey, options...)

	if c.Raw {
		resp, err := fileClient.GetRaw(ctx, c.Paths)
		if err != nil {
			return err
		}
		return printResponse(os.Stdout, resp, c.Format)
	}

	resp, err := fileClient.GetPDFResult(ctx, c.Paths, c.Out)
	if err != nil {
		return err
	}

	for i, doc := range resp.Documents {
		fmt.Printf("%s: overall generated probability: %v\n", c.Paths[i], doc.AverageGeneratedProb)
	}
	return nil
}
