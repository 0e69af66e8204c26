package cli

import (
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"

	"github.com/jhoicas/retail-stock-api/internal/infrastructure/migrate"
)

var errNoSQLBackend = errors.New("las migraciones requieren INVENTORY_BACKEND=postgres o sqlite")

// NewMigrateCommand crea `migrate up|down|status`.
func NewMigrateCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Aplica o revierte el esquema embebido (goose)",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Aplica todas las migraciones pendientes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withProvider(cmd, opts, func(p *goose.Provider) error {
				results, err := p.Up(cmd.Context())
				if err != nil {
					return fmt.Errorf("goose up: %w", err)
				}
				for _, r := range results {
					fmt.Fprintf(cmd.OutOrStdout(), "OK   %s (%s)\n", r.Source.Path, r.Duration)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%d migraciones aplicadas\n", len(results))
				return nil
			})
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "down",
		Short: "Revierte la última migración aplicada",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withProvider(cmd, opts, func(p *goose.Provider) error {
				r, err := p.Down(cmd.Context())
				if err != nil {
					return fmt.Errorf("goose down: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "revertida %s\n", r.Source.Path)
				return nil
			})
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Muestra el estado de cada migración",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withProvider(cmd, opts, func(p *goose.Provider) error {
				statuses, err := p.Status(cmd.Context())
				if err != nil {
					return fmt.Errorf("goose status: %w", err)
				}
				for _, s := range statuses {
					fmt.Fprintf(cmd.OutOrStdout(), "%-8s %05d %s\n", s.State, s.Source.Version, s.Source.Path)
				}
				return nil
			})
		},
	})
	return cmd
}

func withProvider(cmd *cobra.Command, opts *RootOptions, fn func(*goose.Provider) error) error {
	b, _, _, err := opts.open(cmd.Context(), cmd, false)
	if err != nil {
		return err
	}
	defer b.Close()
	if b.SQL == nil {
		return errNoSQLBackend
	}
	p, err := migrate.NewProvider(b.SQL, b.Dialect)
	if err != nil {
		return err
	}
	return fn(p)
}
