package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/letsssgooo/botapi/internal/client"
	"github.com/letsssgooo/botapi/internal/events/fetcher"
	"github.com/letsssgooo/botapi/internal/wire"
)

const defaultPollTimeout = 30 * time.Second

func newUpdatesCmd(a *app) *cobra.Command {
	var (
		timeout        time.Duration
		once           bool
		allowedUpdates []string
		metricsAddr    string
	)

	cmd := &cobra.Command{
		Use:   "updates",
		Short: "Long-poll getUpdates and print every update as a JSON line",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := a.newClient()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if metricsAddr != "" {
				stopMetrics := serveMetrics(a.log, metricsAddr, a.registry)
				defer stopMetrics()
			}

			f := fetcher.NewTelegramFetcher(c, allowedUpdates...)

			return poll(ctx, a.log, f, backoff.NewExponentialBackOff(), cmd.OutOrStdout(), timeout, once)
		},
	}

	flags := cmd.Flags()
	flags.DurationVar(&timeout, "timeout", defaultPollTimeout, "long polling timeout")
	flags.BoolVar(&once, "once", false, "stop after the first getUpdates call")
	flags.StringSliceVar(&allowedUpdates, "allowed", nil, "update kinds to receive, e.g. message,callback_query")
	flags.StringVar(&metricsAddr, "metrics-addr", "", "serve prometheus metrics on this address, e.g. :9090")

	return cmd
}

// poll читает обновления, пока не отменён ctx. После временной ошибки цикл ждёт
// очередной интервал pause и продолжается; при once возвращается результат первого вызова.
func poll(
	ctx context.Context,
	log *slog.Logger,
	f fetcher.Fetcher,
	pause backoff.BackOff,
	out io.Writer,
	timeout time.Duration,
	once bool,
) error {
	log = log.With("operation", "poll")

	for {
		updates, err := f.GetUpdates(ctx, timeout)
		switch {
		case ctx.Err() != nil:
			return nil
		case err != nil && (once || !recoverable(err)):
			return describe(err)
		case err != nil:
			wait := pause.NextBackOff()
			if wait == backoff.Stop {
				return describe(err)
			}
			log.Error("get updates failed", "error", err, "next", wait)

			timer := time.NewTimer(wait)
			select {
			case <-ctx.Done():
				timer.Stop()
				return nil
			case <-timer.C:
			}
			continue
		}
		pause.Reset()

		for i := range updates {
			log.Debug("update received", "update_id", updates[i].UpdateID, "kind", updates[i].Kind())

			if err := printJSON(out, &updates[i]); err != nil {
				return err
			}
		}

		if once {
			return nil
		}
	}
}

// recoverable сообщает, имеет ли смысл повторить getUpdates с тем же offset.
// Ошибки декодирования и постоянные ошибки API повторятся снова.
func recoverable(err error) bool {
	var decodeErr *wire.DecodeError
	if errors.As(err, &decodeErr) {
		return false
	}

	var apiErr *client.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Temporary()
	}

	return true
}

func serveMetrics(log *slog.Logger, addr string, reg *prometheus.Registry) func() {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("metrics server started", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("metrics server failed", "error", fmt.Errorf("listen %s: %w", addr, err))
		}
	}()

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		_ = srv.Shutdown(ctx)
	}
}
