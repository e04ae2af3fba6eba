package client

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/MKhiriev/go-wallet-keeper/internal/adapter"
	"github.com/MKhiriev/go-wallet-keeper/internal/config"
	"github.com/MKhiriev/go-wallet-keeper/internal/logger"
)

var errNoAdapter = errors.New("server adapter is not initialised")

// App is the cobra application of the client.
type App struct {
	cfg        *config.ClientConfig
	newAdapter AdapterFactory
	adapter    adapter.ServerAdapter

	in  *bufio.Reader
	raw io.Reader
	out io.Writer

	logger *logger.Logger
}

var _ Client = (*App)(nil)

// NewApp returns a client reading prompts from in and printing to out.
func NewApp(cfg *config.ClientConfig, newAdapter AdapterFactory, in io.Reader, out io.Writer, log *logger.Logger) *App {
	return &App{
		cfg:        cfg,
		newAdapter: newAdapter,
		in:         bufio.NewReader(in),
		raw:        in,
		out:        out,
		logger:     log,
	}
}

func (a *App) Run(ctx context.Context, args []string) error {
	root := a.Command()
	root.SetArgs(args)
	root.SetIn(a.raw)
	root.SetOut(a.out)
	root.SetErr(a.out)

	err := root.ExecuteContext(ctx)
	if a.adapter != nil {
		err = errors.Join(err, a.adapter.Shutdown())
		a.adapter = nil
	}
	return err
}

// Command builds the root command with all subcommands.
func (a *App) Command() *cobra.Command {
	root := &cobra.Command{
		Use:           "wallet-client",
		Short:         "Command-line client of the wallet keeper",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := root.PersistentFlags()
	flags.String("transport", config.TransportHTTP, "transport: http or grpc")
	flags.String("address", "", "HTTP address of the server")
	flags.String("grpc-address", "", "gRPC address of the server")
	flags.String("token", "", "bearer token (see the token command)")
	flags.Duration("timeout", 0, "request timeout")

	root.AddCommand(
		a.tokenCmd(),
		a.remote(a.versionCmd()),
		a.remote(a.createCmd()),
		a.remote(a.openCmd()),
		a.remote(a.restoreCmd()),
		a.remote(a.closeCmd()),
		a.remote(a.destroyCmd()),
		a.remote(a.sendCmd()),
		a.remote(a.statusCmd()),
		a.remote(a.accountsCmd()),
	)
	return root
}

// remote connects the adapter before cmd runs. Run releases it.
func (a *App) remote(cmd *cobra.Command) *cobra.Command {
	cmd.PreRunE = func(cmd *cobra.Command, _ []string) error {
		if err := a.applyFlags(cmd); err != nil {
			return err
		}
		if err := a.cfg.Validate(); err != nil {
			return err
		}

		ad, err := a.newAdapter(a.cfg.Adapter)
		if err != nil {
			return fmt.Errorf("create server adapter: %w", err)
		}
		a.adapter = ad
		return nil
	}
	return cmd
}

func (a *App) applyFlags(cmd *cobra.Command) error {
	flags := cmd.Flags()
	set := func(name string, dst *string) error {
		if !flags.Changed(name) {
			return nil
		}
		v, err := flags.GetString(name)
		if err != nil {
			return err
		}
		*dst = v
		return nil
	}

	for name, dst := range map[string]*string{
		"transport":    &a.cfg.Adapter.Transport,
		"address":      &a.cfg.Adapter.HTTPAddress,
		"grpc-address": &a.cfg.Adapter.GRPCAddress,
		"token":        &a.cfg.Adapter.Token,
	} {
		if err := set(name, dst); err != nil {
			return err
		}
	}

	if flags.Changed("timeout") {
		d, err := flags.GetDuration("timeout")
		if err != nil {
			return err
		}
		a.cfg.Adapter.RequestTimeout = d
	}
	return nil
}

func (a *App) server() (adapter.ServerAdapter, error) {
	if a.adapter == nil {
		return nil, errNoAdapter
	}
	return a.adapter, nil
}

// prompt prints label and reads one line.
func (a *App) prompt(label string) (string, error) {
	fmt.Fprint(a.out, label)
	line, err := a.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", fmt.Errorf("read %q: %w", strings.TrimSpace(label), err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// promptSecret reads a secret without echo when stdin is a terminal.
func (a *App) promptSecret(label string) (string, error) {
	f, ok := a.raw.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return a.prompt(label)
	}

	fmt.Fprint(a.out, label)
	b, err := term.ReadPassword(int(f.Fd()))
	fmt.Fprintln(a.out)
	if err != nil {
		return "", fmt.Errorf("read secret: %w", err)
	}
	return string(b), nil
}

// secretFlag returns the --secret value or prompts for it.
func (a *App) secretFlag(cmd *cobra.Command, label string) (string, error) {
	if v, _ := cmd.Flags().GetString("secret"); v != "" {
		return v, nil
	}
	return a.promptSecret(label)
}
