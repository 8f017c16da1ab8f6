package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/theirongolddev/taxdiff/internal/logger"
	"github.com/theirongolddev/taxdiff/internal/server"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	flagAddr     string
	flagJSONLogs bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the regime comparison as a JSON HTTP API",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagAddr, "addr", "", "Listen address (default from config)")
	serveCmd.Flags().BoolVar(&flagJSONLogs, "json-logs", false, "Emit JSON structured logs")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	addr := loadedConfig.Server.Addr
	if flagAddr != "" {
		addr = flagAddr
	}

	log, err := logger.New(logger.Config{
		Level: loadedConfig.Server.LogLevel,
		JSON:  flagJSONLogs,
	})
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	gin.SetMode(gin.ReleaseMode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if !flagQuiet {
		fmt.Fprintf(os.Stderr, "  Serving on http://%s (Ctrl+C to stop)\n", addr)
	}

	svc := server.New(server.Config{Addr: addr}, log)
	if err := svc.Run(ctx); err != nil {
		log.Error("server stopped", zap.Error(err))
		return err
	}
	return nil
}
