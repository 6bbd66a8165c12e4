package flags

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"sonata-vnfd/internal/config"
	"sonata-vnfd/pkg/defaults"
)

const (
	httpEndpointFlag = "http-endpoint"
	stateDirFlag     = "state-dir"
	configFileFlag   = "config"
)

// AddCatalogueServerFlagsToCommand will add the catalogue server flags to
// the supplied command.
func AddCatalogueServerFlagsToCommand(cmd *cobra.Command, cfg *config.Config) {
	cmd.Flags().StringVar(&cfg.HTTPAPIEndpoint,
		httpEndpointFlag,
		defaults.HTTPAPIEndpoint,
		"The endpoint for the catalogue HTTP API to listen on.")

	cmd.Flags().StringVar(&cfg.StateRootDir,
		stateDirFlag,
		defaults.StateRootDir,
		"The directory to use as the root for boarded descriptor packages.")

	cmd.Flags().StringVar(&cfg.ConfigFile,
		configFileFlag,
		"",
		fmt.Sprintf("Path to a %s file with catalogue settings. Values in the file override flags.", defaults.ConfigFile))
}

// BindCommandToViper binds the command's flags to viper so they can also
// be supplied via environment variables or a config file.
func BindCommandToViper(cmd *cobra.Command) {
	bindFlagsToViper(cmd.PersistentFlags())
	bindFlagsToViper(cmd.Flags())
}

func bindFlagsToViper(fs *pflag.FlagSet) {
	fs.VisitAll(func(flag *pflag.Flag) {
		_ = viper.BindPFlag(flag.Name, flag)
		_ = viper.BindEnv(flag.Name)

		if !flag.Changed && viper.IsSet(flag.Name) {
			val := viper.Get(flag.Name)
			_ = fs.Set(flag.Name, fmt.Sprintf("%v", val))
		}
	})
}
