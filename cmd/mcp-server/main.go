package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/flightwx/aviation-weather-mcp/internal/config"
	"github.com/flightwx/aviation-weather-mcp/internal/mcp"
)

func main() {
	root := &cobra.Command{
		Use:   "mcp-server",
		Short: "Aviation weather MCP server (METARs, TAFs, PIREPs, SIGMETs/AIRMETs from aviationweather.gov)",
		RunE:  run,
	}

	root.PersistentFlags().String("host", "0.0.0.0", "HTTP host")
	root.PersistentFlags().Int("port", 8000, "HTTP port")
	root.PersistentFlags().String("upstream-url", "", "aviationweather.gov data API base URL")
	root.PersistentFlags().Int("upstream-timeout", 15, "Upstream request timeout in seconds")
	root.PersistentFlags().String("log-level", "", "Log level (info or debug)")

	config.Init(root)

	if err := root.Execute(); err != nil {
		log.Fatalf("command failed: %v", err)
	}
}

func run(cmd *cobra.Command, args []string) error {
	srv := mcp.New(mcp.DefaultConfig())

	addr := config.Host() + ":" + strconv.Itoa(config.Port())

	httpServer := &http.Server{
		Addr:    addr,
		Handler: srv.Handler,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("aviation weather MCP server listening on %s", addr)
		errCh <- httpServer.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return httpServer.Shutdown(ctx)
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	}
}
