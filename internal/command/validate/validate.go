package validate

import (
	"fmt"

	"github.com/spf13/cobra"

	"sonata-vnfd/internal/command/flags"
	"sonata-vnfd/internal/config"
	"sonata-vnfd/pkg/descriptor"
	"sonata-vnfd/pkg/log"
)

// NewCommand creates the validate cobra command.
func NewCommand(cfg *config.Config) (*cobra.Command, error) {
	cmd := &cobra.Command{
		Use:   "validate <descriptor>...",
		Short: "Parse descriptor documents and check their structural consistency",
		Args:  cobra.MinimumNArgs(1),
		PreRunE: func(c *cobra.Command, _ []string) error {
			flags.BindCommandToViper(c)

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return validate(cmd, args)
		},
	}

	return cmd, nil
}

func validate(cmd *cobra.Command, paths []string) error {
	logger := log.GetLogger(cmd.Context())

	failed := 0

	for _, path := range paths {
		vnfd, err := descriptor.ParseFile(path)
		if err != nil {
			logger.WithError(err).Errorf("%s: parse failed", path)
			failed++

			continue
		}

		if err := descriptor.Validate(vnfd); err != nil {
			logger.Errorf("%s: %s is not consistent:\n%v", path, vnfd.FQName(), err)
			failed++

			continue
		}

		logger.Infof("%s: %s is valid", path, vnfd.FQName())
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d descriptors failed validation", failed, len(paths))
	}

	return nil
}
