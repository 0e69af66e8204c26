// Package cli implementa inventoryctl: migraciones, carga de datos y limpieza
// contra el backend configurado.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/jhoicas/retail-stock-api/internal/infrastructure/backend"
	"github.com/jhoicas/retail-stock-api/pkg/config"
	"github.com/jhoicas/retail-stock-api/pkg/logger"
)

// RootOptions opciones compartidas por todos los subcomandos.
type RootOptions struct {
	LogLevel string
	// LoadConfig permite inyectar configuración en tests; por defecto config.Load.
	LoadConfig func() (*config.Config, error)
}

// NewRootCommand crea el comando raíz de inventoryctl.
func NewRootCommand(opts *RootOptions) *cobra.Command {
	if opts.LoadConfig == nil {
		opts.LoadConfig = config.Load
	}

	cmd := &cobra.Command{
		Use:           "inventoryctl",
		Short:         "Herramientas de operación para retail-stock-api",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "info", "nivel de log (debug|info|warn|error)")

	cmd.AddCommand(NewMigrateCommand(opts))
	cmd.AddCommand(NewSeedCommand(opts))
	cmd.AddCommand(NewClearCommand(opts))
	return cmd
}

// open carga la configuración y abre el backend. El llamador cierra el Backend.
func (o *RootOptions) open(ctx context.Context, cmd *cobra.Command, migrate bool) (*backend.Backend, *config.Config, *logger.Logger, error) {
	cfg, err := o.LoadConfig()
	if err != nil {
		return nil, nil, nil, err
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: o.LogLevel, Output: cmd.ErrOrStderr()})
	b, err := backend.Open(ctx, cfg, log, backend.Options{Migrate: migrate})
	if err != nil {
		return nil, nil, nil, err
	}
	if b.Kind == config.BackendMemory {
		log.Warn().Msg("backend en memoria: los cambios se pierden al terminar el comando")
	}
	return b, cfg, log, nil
}
