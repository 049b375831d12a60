package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
)

type Globals struct {
	Config   string `help:"Path to a YAML config file, ./config.yaml is used when present." type:"path"`
	LogLevel string `help:"Log level, overrides log.level from the config."`
}

type CLI struct {
	Globals

	Text    TextCommand    `cmd:"text" help:"Check a text and write a report."`
	Files   FilesCommand   `cmd:"files" help:"Check files and write one report per file."`
	Inspect InspectCommand `cmd:"inspect" help:"Print the text of a PDF report."`
	Version VersionCommand `cmd:"version" help:"Print the version."`
}

func main() {
	// A missing .env file is fine, the environment is used as is.
	_ = godotenv.Load()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("gptzero"),
		kong.Description("Detect AI generated text with GPTZero and render annotated reports."),
		kong.UsageOnError(),
		kong.BindTo(ctx, (*context.Context)(nil)),
	)
	if err := kctx.Run(&cli.Globals); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
