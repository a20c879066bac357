package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/formrelay/cmd/app/commands"
	"github.com/allisson/formrelay/internal/app"
	auditlogDomain "github.com/allisson/formrelay/internal/auditlog/domain"
)

func getLogCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "read-logs",
			Usage: "Decrypt and print the audit log",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:    "limit",
					Aliases: []string{"l"},
					Value:   auditlogDomain.DefaultReadLimit,
					Usage:   "Print at most this many of the most recent entries",
				},
				&cli.StringFlag{
					Name:    "format",
					Aliases: []string{"f"},
					Value:   commands.FormatText,
					Usage:   "Output format: 'text' or 'json'",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				container, err := newContainer()
				if err != nil {
					return err
				}
				defer func() { _ = container.Shutdown(ctx) }()

				passphrase, err := container.EncryptionPassphrase(ctx)
				if err != nil {
					return err
				}

				auditLogUseCase, err := container.AuditLogUseCase()
				if err != nil {
					return err
				}

				return commands.RunReadLogs(
					ctx,
					auditLogUseCase,
					container.Logger(),
					commands.DefaultOutput(),
					passphrase,
					int(cmd.Int("limit")),
					cmd.String("format"),
				)
			},
		},
		{
			Name:  "rotate-log",
			Usage: "Re-encrypt the audit log from OLD_ENCRYPTION_PASSWORD to ENCRYPTION_PASSWORD",
			Action: func(ctx context.Context, cmd *cli.Command) error {
				container, oldPassphrase, newPassphrase, err := rotationSetup(ctx)
				if err != nil {
					return err
				}
				defer func() { _ = container.Shutdown(ctx) }()

				rotationUseCase, err := container.RotationUseCase()
				if err != nil {
					return err
				}

				return commands.RunRotateLog(
					ctx,
					rotationUseCase,
					container.Logger(),
					commands.DefaultOutput(),
					oldPassphrase,
					newPassphrase,
				)
			},
		},
		{
			Name:  "rotate-credential",
			Usage: "Re-encrypt the credential from OLD_ENCRYPTION_PASSWORD to ENCRYPTION_PASSWORD",
			Action: func(ctx context.Context, cmd *cli.Command) error {
				container, oldPassphrase, newPassphrase, err := rotationSetup(ctx)
				if err != nil {
					return err
				}
				defer func() { _ = container.Shutdown(ctx) }()

				rotationUseCase, err := container.RotationUseCase()
				if err != nil {
					return err
				}

				return commands.RunRotateCredential(
					ctx,
					rotationUseCase,
					container.Logger(),
					commands.DefaultOutput(),
					oldPassphrase,
					newPassphrase,
				)
			},
		},
	}
}

// rotationSetup builds the container and resolves both rotation passphrases.
func rotationSetup(ctx context.Context) (*app.Container, string, string, error) {
	container, err := newContainer()
	if err != nil {
		return nil, "", "", err
	}

	oldPassphrase, err := container.OldEncryptionPassphrase(ctx)
	if err != nil {
		_ = container.Shutdown(ctx)
		return nil, "", "", err
	}

	newPassphrase, err := container.EncryptionPassphrase(ctx)
	if err != nil {
		_ = container.Shutdown(ctx)
		return nil, "", "", err
	}

	return container, oldPassphrase, newPassphrase, nil
}
