package show

import (
	"fmt"
	"strings"

	units "github.com/docker/go-units"
	"github.com/spf13/cobra"

	"sonata-vnfd/internal/command/flags"
	"sonata-vnfd/internal/config"
	"sonata-vnfd/pkg/descriptor"
	"sonata-vnfd/pkg/models"
)

// NewCommand creates the show cobra command.
func NewCommand(cfg *config.Config) (*cobra.Command, error) {
	cmd := &cobra.Command{
		Use:   "show <descriptor>",
		Short: "Print a summary of a descriptor document",
		Args:  cobra.ExactArgs(1),
		PreRunE: func(c *cobra.Command, _ []string) error {
			flags.BindCommandToViper(c)

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			vnfd, err := descriptor.ParseFile(args[0])
			if err != nil {
				return err
			}

			printSummary(cmd, vnfd)

			return nil
		},
	}

	return cmd, nil
}

func printSummary(cmd *cobra.Command, vnfd *models.Vnfd) {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "%s (%s)\n", vnfd.FQName(), vnfd.DescriptorVersion)

	if vnfd.Description != "" {
		fmt.Fprintf(out, "  %s\n", vnfd.Description)
	}

	if vnfd.Author != "" {
		fmt.Fprintf(out, "  author: %s\n", vnfd.Author)
	}

	fmt.Fprintf(out, "virtual deployment units:\n")

	for _, vdu := range vnfd.VirtualDeploymentUnits {
		fmt.Fprintf(out, "  %s: image %s (%s), %d vcpu, memory %s, storage %s\n",
			vdu.ID,
			vdu.VMImage,
			vdu.VMImageFormat,
			vdu.ResourceRequirements.CPU.VCPUs,
			humanSize(vdu.ResourceRequirements.Memory),
			humanSize(vdu.ResourceRequirements.Storage))

		for _, cp := range vdu.ConnectionPoints {
			fmt.Fprintf(out, "    connection point %s (%s)\n", cp.ID, cp.Type)
		}
	}

	if len(vnfd.VirtualLinks) > 0 {
		fmt.Fprintf(out, "virtual links:\n")

		for _, link := range vnfd.VirtualLinks {
			fmt.Fprintf(out, "  %s (%s): %s\n", link.ID, link.ConnectivityType,
				strings.Join(link.ConnectionPointsReference, " <-> "))
		}
	}

	if len(vnfd.ConnectionPoints) > 0 {
		fmt.Fprintf(out, "connection points:\n")

		for _, cp := range vnfd.ConnectionPoints {
			fmt.Fprintf(out, "  %s (%s)\n", cp.ID, cp.Type)
		}
	}
}

func humanSize(size models.SizeRequirements) string {
	resolved, err := size.Bytes()
	if err != nil {
		return fmt.Sprintf("%d %s (unrecognized unit)", size.Size, size.SizeUnit)
	}

	return units.HumanSize(float64(resolved))
}
