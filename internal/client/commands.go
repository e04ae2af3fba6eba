package client

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-wallet-keeper/internal/config"
	"github.com/MKhiriev/go-wallet-keeper/internal/service"
	"github.com/MKhiriev/go-wallet-keeper/internal/session"
	"github.com/MKhiriev/go-wallet-keeper/models"
)

const destroyConfirmation = "destroy"

var errNoSignKey = errors.New("token sign key is not configured (APP_TOKEN_SIGN_KEY)")

func (a *App) tokenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token <identifier>",
		Short: "Mint a bearer token for a wallet owner",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.cfg.App.TokenSignKey == "" {
				return errNoSignKey
			}

			auth := service.NewAuthService(config.App{
				TokenSignKey:  a.cfg.App.TokenSignKey,
				TokenIssuer:   a.cfg.App.TokenIssuer,
				TokenDuration: a.cfg.App.TokenDuration,
			}, a.logger)

			token, err := auth.IssueToken(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(a.out, token.SignedString)
			return nil
		},
	}
	return cmd
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the server version and network",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			srv, err := a.server()
			if err != nil {
				return err
			}
			resp, err := srv.Version(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "version: %s\nnetwork: %s\n", resp.Version, resp.Network)
			return nil
		},
	}
}

func (a *App) createCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new wallet and open it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			srv, err := a.server()
			if err != nil {
				return err
			}
			secret, err := a.secretFlag(cmd, "New secret: ")
			if err != nil {
				return err
			}

			resp, err := srv.Create(cmd.Context(), models.CreateRequest{Secret: secret})
			if err != nil {
				return err
			}

			fmt.Fprintln(a.out, "Write down the recovery phrase. It is shown only once.")
			for i, word := range resp.Mnemonic {
				fmt.Fprintf(a.out, "%2d. %s\n", i+1, word)
			}
			fmt.Fprintf(a.out, "receive address: %s\n", resp.ReceiveAddress)
			return nil
		},
	}
	cmd.Flags().String("secret", "", "wallet secret (prompted when empty)")
	return cmd
}

func (a *App) openCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "open",
		Short: "Open the stored wallet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			srv, err := a.server()
			if err != nil {
				return err
			}
			secret, err := a.secretFlag(cmd, "Secret: ")
			if err != nil {
				return err
			}

			resp, err := srv.Open(cmd.Context(), models.OpenRequest{Secret: secret})
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "wallet opened\nreceive address: %s\n", resp.ReceiveAddress)
			return nil
		},
	}
	cmd.Flags().String("secret", "", "wallet secret (prompted when empty)")
	return cmd
}

func (a *App) restoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "restore",
		Short: "Restore a wallet from its recovery phrase under a new secret",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			srv, err := a.server()
			if err != nil {
				return err
			}

			mnemonic, _ := cmd.Flags().GetString("mnemonic")
			if mnemonic == "" {
				if mnemonic, err = a.promptSecret("Recovery phrase: "); err != nil {
					return err
				}
			}
			secret, err := a.secretFlag(cmd, "New secret: ")
			if err != nil {
				return err
			}

			resp, err := srv.Restore(cmd.Context(), models.RestoreRequest{Mnemonic: mnemonic, Secret: secret})
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "wallet restored\nreceive address: %s\n", resp.ReceiveAddress)
			return nil
		},
	}
	cmd.Flags().String("mnemonic", "", "recovery phrase (prompted when empty)")
	cmd.Flags().String("secret", "", "new wallet secret (prompted when empty)")
	return cmd
}

func (a *App) closeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "close",
		Short: "Close the open wallet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			srv, err := a.server()
			if err != nil {
				return err
			}
			resp, err := srv.Close(cmd.Context())
			if err != nil {
				return err
			}
			if resp.Closed {
				fmt.Fprintln(a.out, "wallet closed")
			} else {
				fmt.Fprintln(a.out, "wallet was not open")
			}
			return nil
		},
	}
}

func (a *App) destroyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "destroy",
		Short: "Close the wallet and delete it from the server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			srv, err := a.server()
			if err != nil {
				return err
			}

			confirmation, _ := cmd.Flags().GetString("confirm")
			if confirmation == "" {
				fmt.Fprintln(a.out, "This deletes the wallet. Without the recovery phrase the funds are lost.")
				if confirmation, err = a.prompt(fmt.Sprintf("Type %q to confirm: ", destroyConfirmation)); err != nil {
					return err
				}
			}

			resp, err := srv.Destroy(cmd.Context(), models.DestroyRequest{Confirmation: strings.TrimSpace(confirmation)})
			if err != nil {
				return err
			}
			if !resp.Destroyed {
				fmt.Fprintf(a.out, "destroy aborted: %s\n", resp.Message)
				return nil
			}
			fmt.Fprintln(a.out, "wallet destroyed")
			return nil
		},
	}
	cmd.Flags().String("confirm", "", `confirmation word, must be "destroy" (prompted when empty)`)
	return cmd
}

func (a *App) sendCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "send <recipient> <amount>",
		Short: "Pay an address or another wallet owner from the open wallet",
		Long: "Recipient is an address or the identifier of another wallet owner.\n" +
			"Amount is in whole coins, e.g. 0.015.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			srv, err := a.server()
			if err != nil {
				return err
			}
			secret, err := a.secretFlag(cmd, "Secret: ")
			if err != nil {
				return err
			}

			resp, err := srv.Send(cmd.Context(), models.SendRequest{
				Recipient: args[0],
				Amount:    args[1],
				Secret:    secret,
			})
			if err != nil {
				return err
			}

			s := resp.Summary
			fmt.Fprintf(a.out, "sent %s to %s (fee %s, change %s, inputs %d, %s)\n",
				session.FormatAmount(s.Amount), s.Recipient, session.FormatAmount(s.Fee),
				session.FormatAmount(s.Change), s.Inputs, s.Network)
			for _, id := range resp.TxIDs {
				fmt.Fprintf(a.out, "txid: %s\n", id)
			}
			return nil
		},
	}
	cmd.Flags().String("secret", "", "wallet secret (prompted when empty)")
	return cmd
}

func (a *App) statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show whether the wallet exists and is open",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			srv, err := a.server()
			if err != nil {
				return err
			}
			resp, err := srv.Status(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "initiated: %t\nopened: %t\n", resp.IsInitiated, resp.IsOpened)
			return nil
		},
	}
}

func (a *App) accountsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "accounts",
		Short: "List the accounts of the open wallet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			srv, err := a.server()
			if err != nil {
				return err
			}
			resp, err := srv.Accounts(cmd.Context())
			if err != nil {
				return err
			}
			for _, acc := range resp.Accounts {
				fmt.Fprintf(a.out, "#%d %s %s balance=%s (%s)\n",
					acc.Index, acc.DerivationPath, acc.ReceiveAddress, session.FormatAmount(acc.Balance), acc.Network)
			}
			return nil
		},
	}
}
