package main

import (
	"os"

	"github.com/DRSN-tech/storefront-seeder/internal/app"
	config "github.com/DRSN-tech/storefront-seeder/internal/cfg"
	"github.com/DRSN-tech/storefront-seeder/pkg/logger"
	"github.com/spf13/cobra"
)

//	@title			Storefront Seeder API
//	@version		1.0
//	@description	Импорт демонстрационного каталога и настройка магазина
//	@BasePath		/api/v1

func main() {
	log := logger.NewSlogLogger()

	if err := newRootCmd(log).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(log logger.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "seeder",
		Short:         "Demo storefront catalog importer",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newServeCmd(log), newImportCmd(log), newBootstrapCmd(log))

	return cmd
}

func newServeCmd(log logger.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run HTTP and gRPC servers with the progress page",
		RunE: func(cmd *cobra.Command, _ []string) error {
			application, err := newApplication(log)
			if err != nil {
				return err
			}

			return application.Run()
		},
	}
}

func newImportCmd(log logger.Logger) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import the catalog dataset once and exit",
		RunE: func(cmd *cobra.Command, _ []string) error {
			application, err := newApplication(log)
			if err != nil {
				return err
			}
			defer application.Close()

			res, err := application.RunImport(cmd.Context(), file)
			if err != nil {
				log.Errorf(err, "catalog import failed")
				return err
			}

			log.Infof(
				"catalog imported: products=%d variations=%d skipped=%d dropped_variations=%d site=%s",
				res.Products, res.Variations, res.Skipped, res.DroppedVariations, res.SiteURL,
			)
			return nil
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "path to a dataset file (defaults to IMPORT_DATASET_PATH or the embedded sample)")

	return cmd
}

func newBootstrapCmd(log logger.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "bootstrap",
		Short: "Apply store settings: permalinks, flat rate shipping, cash on delivery",
		RunE: func(cmd *cobra.Command, _ []string) error {
			application, err := newApplication(log)
			if err != nil {
				return err
			}
			defer application.Close()

			_, err = application.RunBootstrap(cmd.Context())
			if err != nil {
				log.Errorf(err, "store bootstrap failed")
			}
			return err
		},
	}
}

func newApplication(log logger.Logger) (*app.App, error) {
	cfg, err := config.Load(log)
	if err != nil {
		log.Errorf(err, "failed to load config")
		return nil, err
	}

	application, err := app.NewApp(cfg, log)
	if err != nil {
		log.Errorf(err, "failed to initialize app")
		return nil, err
	}

	return application, nil
}
