package main

import (
	"fmt"
)

// Version is set at build time with -ldflags "-X main.Version=...".
var Version = "dev"

type VersionCommand struct{}

func (c *VersionCommand) Run() error {
	fmt.Println(Version)
	return nil
}
