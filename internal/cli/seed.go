package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/jhoicas/retail-stock-api/internal/application/inventory"
	"github.com/jhoicas/retail-stock-api/internal/application/usecase"
)

// SeedFile formato de `seed --file`. En stock, store y product son posiciones
// (desde 1) dentro de las listas del mismo archivo.
type SeedFile struct {
	Stores []struct {
		Name string `yaml:"name"`
		City string `yaml:"city"`
	} `yaml:"stores"`
	Products []struct {
		Name string `yaml:"name"`
		SKU  string `yaml:"sku"`
	} `yaml:"products"`
	Stock []struct {
		Store    int   `yaml:"store"`
		Product  int   `yaml:"product"`
		Quantity int64 `yaml:"quantity"`
	} `yaml:"stock"`
}

// ParseSeed decodifica y valida las referencias posicionales.
func ParseSeed(r io.Reader) (*SeedFile, error) {
	var f SeedFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && err != io.EOF {
		return nil, fmt.Errorf("leer seed: %w", err)
	}
	for i, s := range f.Stock {
		if s.Store < 1 || s.Store > len(f.Stores) {
			return nil, fmt.Errorf("stock[%d]: store %d fuera de rango (1..%d)", i, s.Store, len(f.Stores))
		}
		if s.Product < 1 || s.Product > len(f.Products) {
			return nil, fmt.Errorf("stock[%d]: product %d fuera de rango (1..%d)", i, s.Product, len(f.Products))
		}
	}
	return &f, nil
}

// SeedSummary cuántos registros creó Apply.
type SeedSummary struct {
	Stores, Products, Stock int
}

// Apply crea los registros con los mismos casos de uso que la API, así que
// rigen las mismas validaciones (SKU único). No es atómico: cada alta es su propia
// transacción y un error deja lo creado hasta ese punto.
func (f *SeedFile) Apply(ctx context.Context, stores *usecase.StoreUseCase, products *usecase.ProductUseCase, ledger *inventory.StockLedger) (SeedSummary, error) {
	var sum SeedSummary
	storeIDs := make([]int64, 0, len(f.Stores))
	for i, s := range f.Stores {
		out, err := stores.Create(ctx, s.Name, s.City)
		if err != nil {
			return sum, fmt.Errorf("stores[%d]: %w", i, err)
		}
		storeIDs = append(storeIDs, out.ID)
		sum.Stores++
	}
	productIDs := make([]int64, 0, len(f.Products))
	for i, p := range f.Products {
		out, err := products.Create(ctx, p.Name, p.SKU)
		if err != nil {
			return sum, fmt.Errorf("products[%d]: %w", i, err)
		}
		productIDs = append(productIDs, out.ID)
		sum.Products++
	}
	for i, s := range f.Stock {
		_, err := ledger.Upsert(ctx, inventory.UpsertInput{
			StoreID:   storeIDs[s.Store-1],
			ProductID: productIDs[s.Product-1],
			Quantity:  s.Quantity,
		})
		if err != nil {
			return sum, fmt.Errorf("stock[%d]: %w", i, err)
		}
		sum.Stock++
	}
	return sum, nil
}

// NewSeedCommand crea `seed --file seed.yaml`.
func NewSeedCommand(opts *RootOptions) *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Carga tiendas, productos y stock desde un archivo YAML",
		Long: `Carga tiendas, productos y stock desde un archivo YAML usando los mismos
casos de uso que la API (mismas validaciones).

Cada registro se crea en su propia transacción: si el seed falla a mitad
(por ejemplo por un SKU repetido), lo creado antes del error se conserva.
Use "inventoryctl clear" para volver a empezar.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fh, err := os.Open(path)
			if err != nil {
				return err
			}
			defer fh.Close()
			seed, err := ParseSeed(fh)
			if err != nil {
				return err
			}

			b, cfg, log, err := opts.open(cmd.Context(), cmd, true)
			if err != nil {
				return err
			}
			defer b.Close()

			ledger := inventory.NewStockLedger(b.TxRunner)
			ctx := log.WithContext(cmd.Context())
			sum, err := seed.Apply(ctx,
				usecase.NewStoreUseCase(b.TxRunner, ledger),
				usecase.NewProductUseCase(b.TxRunner, ledger, cfg.Inventory.EnforceUniqueSKU),
				ledger,
			)
			if err != nil {
				return err
			}
			log.Info().Str("file", path).Int("stores", sum.Stores).Int("products", sum.Products).Int("stock", sum.Stock).Msg("seed aplicado")
			fmt.Fprintf(cmd.OutOrStdout(), "%d tiendas, %d productos, %d registros de stock\n", sum.Stores, sum.Products, sum.Stock)
			return nil
		},
	}
	cmd.Flags().StringVarP(&path, "file", "f", "seed.yaml", "archivo YAML a cargar")
	return cmd
}
