package serve

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"sonata-vnfd/internal/command/flags"
	"sonata-vnfd/internal/config"
	"sonata-vnfd/pkg/api"
	"sonata-vnfd/pkg/catalogue"
	"sonata-vnfd/pkg/log"
	"sonata-vnfd/pkg/ports"
)

// catalogueFile is the shape of the optional catalogue.toml.
type catalogueFile struct {
	Catalogue struct {
		HTTPEndpoint string `toml:"http_endpoint"`
		StateDir     string `toml:"state_dir"`
	} `toml:"catalogue"`
}

// NewCommand creates the serve cobra command.
func NewCommand(cfg *config.Config) (*cobra.Command, error) {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the descriptor catalogue HTTP API",
		PreRunE: func(c *cobra.Command, _ []string) error {
			flags.BindCommandToViper(c)

			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), cfg)
		},
	}

	flags.AddCatalogueServerFlagsToCommand(cmd, cfg)

	return cmd, nil
}

func run(ctx context.Context, cfg *config.Config) error {
	logger := log.GetLogger(ctx)

	if cfg.ConfigFile != "" {
		if err := applyConfigFile(cfg); err != nil {
			return err
		}
	}

	repo := catalogue.NewRepository(&catalogue.Config{StateRootDir: cfg.StateRootDir}, afero.NewOsFs())
	catalogueSvc := catalogue.New(&ports.Collection{
		Repo:  repo,
		Clock: catalogue.DefaultClock,
	})

	server := api.NewServer(&api.Config{HTTPAPIEndpoint: cfg.HTTPAPIEndpoint}, catalogueSvc)

	ctx, cancel := signal.NotifyContext(log.WithLogger(ctx, logger), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	logger.Infof("serving catalogue from %s", cfg.StateRootDir)

	return server.Run(ctx)
}

func applyConfigFile(cfg *config.Config) error {
	contents, err := os.ReadFile(cfg.ConfigFile)
	if err != nil {
		return fmt.Errorf("reading config file %s: %w", cfg.ConfigFile, err)
	}

	fileCfg := catalogueFile{}
	if err := toml.Unmarshal(contents, &fileCfg); err != nil {
		return fmt.Errorf("unmarshalling config file %s: %w", cfg.ConfigFile, err)
	}

	if fileCfg.Catalogue.HTTPEndpoint != "" {
		cfg.HTTPAPIEndpoint = fileCfg.Catalogue.HTTPEndpoint
	}

	if fileCfg.Catalogue.StateDir != "" {
		cfg.StateRootDir = fileCfg.Catalogue.StateDir
	}

	return nil
}
