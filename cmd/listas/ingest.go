package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/jhoicas/listas-precios/internal/application/pricelist"
	"github.com/jhoicas/listas-precios/internal/infrastructure/postgres"
	"github.com/jhoicas/listas-precios/internal/infrastructure/spreadsheet"
)

type ingestOptions struct {
	file         string
	supplier     string
	cutoff       string
	taxInclusive bool
	iva          float64 // porcentaje, ej. 13
	currency     string
}

func newIngestCmd() *cobra.Command {
	var opts ingestOptions

	cmd := &cobra.Command{
		Use:   "ingest",
		Short: "Ingresar un archivo de lista de precios (xlsx o csv)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIngest(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.file, "file", "", "Archivo de la lista (requerido)")
	cmd.Flags().StringVar(&opts.supplier, "supplier", "", "Proveedor (por defecto se deriva del nombre del archivo)")
	cmd.Flags().StringVar(&opts.cutoff, "cutoff", "", "Fecha de corte YYYY-MM-DD")
	cmd.Flags().BoolVar(&opts.taxInclusive, "tax-inclusive", false, "Los costos incluyen IVA")
	cmd.Flags().Float64Var(&opts.iva, "iva", 0, "IVA en porcentaje, ej. 13")
	cmd.Flags().StringVar(&opts.currency, "currency", "", "Moneda, ej. BOB")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func runIngest(cmd *cobra.Command, opts ingestOptions) error {
	ctx := cmd.Context()
	cfg, log, err := loadEnv()
	if err != nil {
		return err
	}

	data, err := os.ReadFile(opts.file)
	if err != nil {
		return fmt.Errorf("leer %s: %w", opts.file, err)
	}

	base := pricelist.ListDefaults{
		Currency:     cfg.PriceList.Currency,
		TaxInclusive: cfg.PriceList.TaxInclusive,
		TaxRate:      decimal.NewFromFloat(cfg.PriceList.TaxRate),
	}
	in, err := opts.input(base, cmd.Flags().Changed)
	if err != nil {
		return err
	}
	in.Data = data

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return err
	}
	defer pool.Close()

	uc := pricelist.NewIngestUseCase(
		postgres.NewPriceListRepository(pool),
		spreadsheet.NewReader(),
		cfg.PriceList.BatchSize,
		log.Component("ingesta"),
	)
	out, err := uc.Ingest(ctx, in)
	if err != nil {
		return err
	}
	if out.ListID == "" {
		fmt.Fprintln(cmd.OutOrStdout(), "hoja sin filas: no se creó la lista")
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "lista %s (%s): %d filas, %d aceptadas, %d descartadas\n",
		out.ListID, out.SupplierID, out.Rows, out.Accepted, out.Rejected)
	return nil
}

// input arma la entrada de la ingesta. Solo las banderas indicadas en la línea de
// comandos reemplazan los valores por defecto de la configuración.
func (o ingestOptions) input(base pricelist.ListDefaults, changed func(name string) bool) (pricelist.IngestInput, error) {
	in := pricelist.IngestInput{
		SourceName: filepath.Base(o.file),
		SourceRef:  o.file,
		SupplierID: strings.TrimSpace(o.supplier),
		Defaults:   base,
	}
	if v := strings.TrimSpace(o.cutoff); v != "" {
		d, err := time.Parse("2006-01-02", v)
		if err != nil {
			return in, fmt.Errorf("--cutoff debe ser YYYY-MM-DD: %w", err)
		}
		in.CutoffDate = &d
	}
	if changed("tax-inclusive") {
		in.Defaults.TaxInclusive = o.taxInclusive
	}
	if changed("iva") {
		if o.iva < 0 {
			return in, fmt.Errorf("--iva no puede ser negativo")
		}
		in.Defaults.TaxRate = decimal.NewFromFloat(o.iva).Div(decimal.NewFromInt(100))
	}
	if v := strings.TrimSpace(o.currency); v != "" {
		in.Defaults.Currency = v
	}
	return in, nil
}
