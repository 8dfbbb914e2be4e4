package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jhoicas/listas-precios/internal/application/pricelist"
	"github.com/jhoicas/listas-precios/internal/infrastructure/postgres"
)

func newPublishCmd() *cobra.Command {
	var caller string

	cmd := &cobra.Command{
		Use:   "publish ID",
		Short: "Publicar una lista procesada como ofertas de proveedor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, log, err := loadEnv()
			if err != nil {
				return err
			}
			pool, err := postgres.NewPool(ctx, cfg.DB)
			if err != nil {
				return err
			}
			defer pool.Close()

			uc := pricelist.NewPublishUseCase(
				postgres.NewPriceListRepository(pool),
				postgres.NewSupplierOfferRepository(pool),
				cfg.PriceList.BatchSize,
				log.Component("publicacion"),
			)
			out, err := uc.Publish(ctx, caller, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "lista %s publicada: %d ofertas\n", args[0], out.Items)
			return nil
		},
	}

	cmd.Flags().StringVar(&caller, "caller", os.Getenv("USER"), "Identidad de quien publica (por defecto $USER)")

	return cmd
}
