package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/formrelay/cmd/app/commands"
	"github.com/allisson/formrelay/internal/config"
	cryptoService "github.com/allisson/formrelay/internal/crypto/service"
)

func getCryptoCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:      "encrypt",
			Usage:     "Encrypt a value with ENCRYPTION_PASSWORD and print the token",
			ArgsUsage: "<plaintext>",
			Flags: []cli.Flag{
				&cli.BoolFlag{
					Name:    "write",
					Aliases: []string{"w"},
					Value:   false,
					Usage:   "Also store the token in the credential file (CREDENTIAL_FILE_PATH)",
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

				credentialUseCase, err := container.CredentialUseCase()
				if err != nil {
					return err
				}

				return commands.RunEncrypt(
					ctx,
					container.TextCipher(),
					credentialUseCase,
					container.Logger(),
					commands.DefaultOutput(),
					passphrase,
					cmd.Args().First(),
					cmd.Bool("write"),
					container.Config().CredentialFilePath,
				)
			},
		},
		{
			Name:      "decrypt",
			Usage:     "Decrypt a token with ENCRYPTION_PASSWORD and print the plaintext",
			ArgsUsage: "<token>",
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

				return commands.RunDecrypt(
					container.TextCipher(),
					commands.DefaultOutput(),
					passphrase,
					cmd.Args().First(),
				)
			},
		},
		{
			Name:      "wrap-passphrase",
			Usage:     "Wrap a passphrase with a KMS key for use with KMS_KEY_URI",
			ArgsUsage: "<passphrase>",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "key-uri",
					Usage: "KMS key URI (defaults to KMS_KEY_URI)",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				keyURI := cmd.String("key-uri")
				if keyURI == "" {
					keyURI = config.Load().KMSKeyURI
				}

				return commands.RunWrapPassphrase(
					ctx,
					cryptoService.NewKMSService(),
					commands.DefaultOutput(),
					keyURI,
					cmd.Args().First(),
				)
			},
		},
	}
}
