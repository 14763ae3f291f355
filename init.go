package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"findbar/internal/config"
)

// newInitCmd writes a default config file
func newInitCmd(opts *rootOptions) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := writeDefaultConfig(opts.configPath, force)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config file")
	return cmd
}

func writeDefaultConfig(path string, force bool) (string, error) {
	svc := config.NewConfigService(path)
	if _, err := os.Stat(svc.Path()); err == nil && !force {
		return "", fmt.Errorf("config file %s already exists (use --force to overwrite)", svc.Path())
	}
	if err := svc.Save(config.DefaultConfig()); err != nil {
		return "", err
	}
	return svc.Path(), nil
}
