package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/letsssgooo/botapi/internal/client"
	"github.com/letsssgooo/botapi/internal/config"
	"github.com/letsssgooo/botapi/internal/lib/slogcustom"
	"github.com/letsssgooo/botapi/internal/tracing"
	"github.com/letsssgooo/botapi/internal/wire"
)

var (
	version = "dev"
	commit  = "unknown"
)

// app хранит состояние, общее для всех подкоманд.
type app struct {
	configPath string
	token      string
	baseURL    string
	logLevel   string

	cfg      *config.Config
	log      *slog.Logger
	registry *prometheus.Registry
	shutdown func(context.Context) error
}

// NewRootCmd собирает дерево команд botapi.
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "botapi",
		Short:         "Telegram Bot API client and payload decoder",
		Version:       fmt.Sprintf("%s (commit: %s)", version, commit),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			if a.shutdown == nil {
				return nil
			}
			return a.shutdown(context.WithoutCancel(cmd.Context()))
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true

	flags := root.PersistentFlags()
	flags.StringVarP(&a.configPath, "config", "c", "", "path to YAML config file")
	flags.StringVar(&a.token, "token", "", "bot token (overrides BOTAPI_TOKEN)")
	flags.StringVar(&a.baseURL, "base-url", "", "Bot API base URL")
	flags.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")

	root.AddCommand(
		newMeCmd(a),
		newUpdatesCmd(a),
		newSendCmd(a),
		newDecodeCmd(a),
	)

	return root
}

// Execute запускает CLI и завершает процесс с кодом 1 при ошибке.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("token") {
		cfg.Token = a.token
	}
	if flags.Changed("base-url") {
		cfg.BaseURL = a.baseURL
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}

	level, err := slogcustom.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.log = slog.New(slogcustom.NewCustomHandler(cmd.ErrOrStderr(), level))
	a.registry = prometheus.NewRegistry()

	shutdown, err := tracing.Init(cmd.Context(), cfg.Tracing)
	if err != nil {
		return err
	}
	a.shutdown = shutdown

	return nil
}

// newClient создаёт клиента по текущей конфигурации; без токена возвращает ошибку.
func (a *app) newClient() (*client.HTTPClient, error) {
	if err := a.cfg.Validate(); err != nil {
		return nil, err
	}

	return client.New(a.cfg.Token,
		client.WithBaseURL(a.cfg.BaseURL),
		client.WithTimeout(a.cfg.Timeout),
		client.WithRateLimit(a.cfg.RPS, a.cfg.Burst),
		client.WithRetries(a.cfg.Retries),
		client.WithRegisterer(a.registry),
		client.WithLogger(a.log),
	), nil
}

// printJSON пишет v одной строкой JSON.
func printJSON(w io.Writer, v any) error {
	data, err := wire.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}

	_, err = fmt.Fprintln(w, string(data))

	return err
}

// describe дополняет ошибку API подсказками из parameters.
func describe(err error) error {
	var apiErr *client.APIError
	if !errors.As(err, &apiErr) {
		return err
	}

	if chatID, ok := apiErr.MigrateToChatID(); ok {
		return fmt.Errorf("%w (chat migrated to %d)", err, chatID)
	}
	if retryAfter := apiErr.RetryAfter(); retryAfter > 0 {
		return fmt.Errorf("%w (retry after %s)", err, retryAfter)
	}

	return err
}
