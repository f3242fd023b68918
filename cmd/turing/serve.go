package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aretw0/turing/internal/config"
	httpAdapter "github.com/aretw0/turing/pkg/adapters/http"
	"github.com/aretw0/turing/pkg/adapters/machinefile"
	"github.com/aretw0/turing/pkg/observability"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the stateless HTTP server",
	Long: `Starts the engine in stateless server mode, exposing a JSON API over HTTP
(POST /encode, /decode, /describe, /graph, /run) and Prometheus metrics on
GET /metrics. Every request carries its own machine, or names one loaded
from --machines.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, _ := cmd.Flags().GetString("machines")

		catalog := machinefile.NewCatalog()
		if dir != "" {
			var err error
			if catalog, err = machinefile.LoadDir(dir); err != nil {
				return err
			}
		}

		boundSteps()

		metrics := observability.NewMetrics()
		engine, logger, closeLog, err := newEngine(metrics.Hooks())
		if err != nil {
			return err
		}
		defer closeLog()

		handler := httpAdapter.NewHandler(engine,
			httpAdapter.WithCatalog(catalog),
			httpAdapter.WithMetrics(metrics.Handler()),
			httpAdapter.WithLogger(logger),
		)

		srv := &http.Server{
			Addr:              cfg.Server.Addr,
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)

		go func() {
			fmt.Printf("Starting Turing Server on %s\n", srv.Addr)
			if dir != "" {
				fmt.Printf("Serving %d machines from: %s\n", len(catalog.List()), dir)
			}
			serverErrors <- srv.ListenAndServe()
		}()

		// Channel to listen for interrupt or terminate signals.
		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		// Blocking main and waiting for shutdown.
		select {
		case err := <-serverErrors:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return fmt.Errorf("server error: %w", err)

		case sig := <-shutdown:
			fmt.Printf("\nStart shutdown... Signal: %v\n", sig)

			// Give outstanding requests a deadline for completion.
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			// Asking listener to shut down and shed load.
			if err := srv.Shutdown(ctx); err != nil {
				fmt.Printf("Graceful shutdown did not complete in %v: %v\n", 5*time.Second, err)
				if err := srv.Close(); err != nil {
					return fmt.Errorf("error killing server: %w", err)
				}
			}
			fmt.Println("Turing Server stopped gracefully")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("addr", "a", ":8080", "Address to listen on")
	serveCmd.Flags().String("machines", "", "Directory of machine files served by name")
	bind(v, config.KeyServerAddr, serveCmd.Flags().Lookup("addr"))
}
