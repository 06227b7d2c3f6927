// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"pngstash-cli/internal/config"

	"github.com/spf13/cobra"
)

// configCmd is the `pngstash config` command tree.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage pngstash configuration",
	Long: `Manage pngstash configuration.

Configuration is stored in:
  - Linux: ~/.config/pngstash/config.toml
  - macOS: ~/Library/Application Support/pngstash/config.toml
  - Windows: %APPDATA%\pngstash\config.toml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func init() {
	configCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfig()
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create default configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return initConfig()
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfigPath()
		},
	})
}

func showConfig() error {
	loaded, err := config.Load()
	if err != nil {
		return err
	}

	content, err := config.GenerateTOML(loaded)
	if err != nil {
		return err
	}
	fmt.Print(content)
	return nil
}

func initConfig() error {
	if err := config.CreateDefaultConfig(); err != nil {
		return err
	}
	path, err := config.ConfigFilePath()
	if err != nil {
		return err
	}
	fmt.Printf("%s Configuration ready at %s\n", SuccessStyle.Render("✓"), path)
	return nil
}

func showConfigPath() error {
	path, err := config.ConfigFilePath()
	if err != nil {
		return err
	}
	fmt.Println(path)
	return nil
}
