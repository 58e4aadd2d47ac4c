package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

var (
	// CommandsDispatched counts commands handed to a handler, by handler name
	CommandsDispatched = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quip_commands_dispatched_total",
			Help: "Number of commands dispatched to a handler",
		},
		[]string{"command"},
	)

	// HelpFallbacks counts unmatched commands retried as "help"
	HelpFallbacks = promauto.NewCounter(prometheus.CounterOpts{
		Name: "quip_help_fallbacks_total",
		Help: "Number of unmatched commands retried as help",
	})

	// UnhandledCommands counts commands dropped without a reply
	UnhandledCommands = promauto.NewCounter(prometheus.CounterOpts{
		Name: "quip_unhandled_commands_total",
		Help: "Number of commands that matched nothing, including the help fallback",
	})

	// Mentions counts channel messages that named the bot without addressing it
	Mentions = promauto.NewCounter(prometheus.CounterOpts{
		Name: "quip_mentions_total",
		Help: "Number of unaddressed mentions of the bot",
	})

	// TransportErrors counts errors reported by the chat transport
	TransportErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "quip_transport_errors_total",
		Help: "Number of errors reported by the chat transport",
	})

	// RestartsRejected counts Start calls on an already running bot
	RestartsRejected = promauto.NewCounter(prometheus.CounterOpts{
		Name: "quip_restarts_rejected_total",
		Help: "Number of rejected attempts to start a running bot",
	})
)

// Handler exposes the default registry
func Handler() http.Handler {
	return promhttp.Handler()
}

// Serve exposes /metrics on addr until ctx is cancelled
func Serve(ctx context.Context, addr string, logger *zap.SugaredLogger) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	logger.Infow("Serving metrics", "addr", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
