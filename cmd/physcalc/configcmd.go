package main

import (
	"fmt"
	"io"
	"os"

	"github.com/san-kum/physcalc/internal/config"
	"github.com/spf13/cobra"
)

func newConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "manage configuration files",
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init <path>",
		Short: "write the default configuration (format from the extension)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeDefaultConfig(cmd.OutOrStdout(), args[0], force)
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")

	configCmd.AddCommand(initCmd)
	return configCmd
}

func writeDefaultConfig(w io.Writer, path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists, use --force to overwrite", path)
		}
	}
	if err := config.Save(path, config.DefaultConfig()); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	fmt.Fprintf(w, "wrote %s\n", path)
	return nil
}
