package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/formrelay/cmd/app/commands"
	authService "github.com/allisson/formrelay/internal/auth/service"
)

func getSystemCommands(version string) []*cli.Command {
	return []*cli.Command{
		{
			Name:  "server",
			Usage: "Start the contact form relay and the metrics server",
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return commands.RunServer(ctx, version)
			},
		},
		{
			Name:      "hash-admin-token",
			Usage:     "Print an Argon2id hash of an admin token for ADMIN_TOKEN_HASH",
			ArgsUsage: "<token>",
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return commands.RunHashAdminToken(
					authService.NewTokenHasher(),
					commands.DefaultOutput(),
					cmd.Args().First(),
				)
			},
		},
	}
}
