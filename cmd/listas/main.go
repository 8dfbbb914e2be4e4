// Comando listas: ingesta y publicación de listas de precios desde la terminal,
// con la misma configuración y base de datos que la API.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jhoicas/listas-precios/pkg/config"
	"github.com/jhoicas/listas-precios/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "listas",
		Short:        "Ingesta y publicación de listas de precios de proveedores",
		SilenceUsage: true,
	}
	root.AddCommand(newIngestCmd(), newPublishCmd())
	return root
}

// loadEnv carga configuración y logger compartidos por los subcomandos.
func loadEnv() (*config.Config, *logger.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("cargar configuración: %w", err)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Out: os.Stderr})
	return cfg, log, nil
}
