package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/retail-stock-api/internal/application/usecase"
)

// NewClearCommand crea `clear`: vacía todo y reinicia los IDs.
func NewClearCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Borra tiendas, productos y stock (reinicia IDs)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			b, _, log, err := opts.open(cmd.Context(), cmd, false)
			if err != nil {
				return err
			}
			defer b.Close()
			if err := usecase.NewMaintenanceUseCase(b.TxRunner).ClearAll(log.WithContext(cmd.Context())); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "All data cleared")
			return nil
		},
	}
}
