package command

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"sonata-vnfd/internal/command/flags"
	"sonata-vnfd/internal/command/serve"
	"sonata-vnfd/internal/command/show"
	"sonata-vnfd/internal/command/validate"
	"sonata-vnfd/internal/config"
	"sonata-vnfd/internal/version"
	"sonata-vnfd/pkg/log"
)

func NewRootCommand() (*cobra.Command, error) {
	cfg := &config.Config{}

	cmd := &cobra.Command{
		Use:   "vnfd",
		Short: "vnfd - SONATA VNF descriptor toolkit",
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			flags.BindCommandToViper(cmd)

			if err := log.Configure(&cfg.Logging); err != nil {
				return fmt.Errorf("configuring logging: %w", err)
			}

			return nil
		},
		RunE: func(c *cobra.Command, _ []string) error {
			return c.Help()
		},
	}

	log.AddFlagsToCommand(cmd, &cfg.Logging)

	if err := addRootSubCommands(cmd, cfg); err != nil {
		return nil, fmt.Errorf("adding subcommands: %w", err)
	}

	cobra.OnInitialize(initCobra)

	return cmd, nil
}

func initCobra() {
	viper.SetEnvPrefix("VNFD")
	viper.AutomaticEnv()
	viper.SetConfigType("yaml")
	viper.SetConfigName("config")

	viper.AddConfigPath("$HOME/.config/vnfd/")

	_ = viper.ReadInConfig()
}

func addRootSubCommands(cmd *cobra.Command, cfg *config.Config) error {
	validateCmd, err := validate.NewCommand(cfg)
	if err != nil {
		return fmt.Errorf("creating validate command: %w", err)
	}

	showCmd, err := show.NewCommand(cfg)
	if err != nil {
		return fmt.Errorf("creating show command: %w", err)
	}

	serveCmd, err := serve.NewCommand(cfg)
	if err != nil {
		return fmt.Errorf("creating serve command: %w", err)
	}

	cmd.AddCommand(validateCmd)
	cmd.AddCommand(showCmd)
	cmd.AddCommand(serveCmd)
	cmd.AddCommand(versionCommand())

	return nil
}

func versionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version number of vnfd",
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				long, short bool
				err         error
			)

			if long, err = cmd.Flags().GetBool("long"); err != nil {
				return err
			}

			if short, err = cmd.Flags().GetBool("short"); err != nil {
				return err
			}

			if short {
				fmt.Fprintln(cmd.OutOrStdout(), version.Version)

				return nil
			}

			if long {
				fmt.Fprintf(
					cmd.OutOrStdout(),
					"%s\n  Version:    %s\n  CommitHash: %s\n  BuildDate:  %s\n",
					version.PackageName,
					version.Version,
					version.CommitHash,
					version.BuildDate,
				)

				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", version.PackageName, version.Version)

			return nil
		},
	}

	_ = cmd.Flags().Bool("long", false, "Print long version information")
	_ = cmd.Flags().Bool("short", false, "Print short version information")

	return cmd
}
