package main

import (
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/allisson/formrelay/internal/app"
	"github.com/allisson/formrelay/internal/config"
)

func getCommands(version string) []*cli.Command {
	cmds := []*cli.Command{}
	cmds = append(cmds, getSystemCommands(version)...)
	cmds = append(cmds, getCryptoCommands()...)
	cmds = append(cmds, getLogCommands()...)
	return cmds
}

// newContainer loads and validates configuration and builds the DI container.
func newContainer() (*app.Container, error) {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return app.NewContainer(cfg), nil
}
