package app

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"markerscan/cmd/markerscan/app/config"
	"markerscan/cmd/markerscan/app/options"
	"markerscan/pkg/klog"
	"markerscan/pkg/scanner"
)

func NewMarkerScanCommand() *cobra.Command {
	opts := options.NewMarkerScanOptions()
	cmd := &cobra.Command{
		Use:   "markerscan [input]",
		Short: "Find the first window of distinct bytes in a stream",
		Long: "markerscan reads a byte stream once per window size and reports the 1-based\n" +
			"position of the byte that completes the first window holding no repeated byte.",
		Example:      "markerscan input.txt\nmarkerscan -s 4 -s 14 -o table input.txt\ncat input.txt | markerscan -",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			resolved, err := opts.Resolve(cmd.Flags())
			if err != nil {
				return err
			}
			if len(args) == 1 {
				resolved.Input = args[0]
			}
			c, err := resolved.Config(cmd.InOrStdin())
			if err != nil {
				return err
			}
			return Run(cmd, c.Complete())
		},
	}
	opts.AddFlags(cmd.Flags())
	return cmd
}

func Run(cmd *cobra.Command, c *config.CompletedConfig) error {
	if err := klog.Init(c.Log); err != nil {
		return err
	}
	defer klog.Close()

	klog.Debugf("scanning %s for sizes %v with %s detector\n", c.Source.Name(), c.Sizes, c.Detector)
	results, err := scanner.Run(c.Source, c.Sizes, c.Detector)
	if err != nil {
		klog.Errorf("scan %s failed: %v\n", c.Source.Name(), err)
		return errors.Wrapf(err, "scan %s", c.Source.Name())
	}
	return PrintResults(cmd.OutOrStdout(), c.Output, results)
}
