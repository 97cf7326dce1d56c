package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/ember-story/internal/assets"
	"github.com/vovakirdan/ember-story/internal/config"
)

var assetsCmd = &cobra.Command{
	Use:   "assets",
	Short: "Inspect resources and default configs",
}

var assetsCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "List resource files the game needs but cannot find",
	Long: `Check the resource directory against the config.

Examples:
  ember assets check
  ember assets check --resources ~/games/ember/resources`,
	Args: cobra.NoArgs,
	RunE: runAssetsCheck,
}

var assetsConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default game config YAML",
	Args:  cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		os.Stdout.Write(config.DefaultGameYAML())
	},
}

var assetsManifestCmd = &cobra.Command{
	Use:   "manifest",
	Short: "Print the default animation manifest YAML",
	Args:  cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		os.Stdout.Write(config.DefaultManifestYAML())
	},
}

func init() {
	assetsCmd.AddCommand(assetsCheckCmd)
	assetsCmd.AddCommand(assetsConfigCmd)
	assetsCmd.AddCommand(assetsManifestCmd)
}

func runAssetsCheck(_ *cobra.Command, _ []string) error {
	cfg, err := loadGameConfig()
	if err != nil {
		return err
	}

	missing := assets.Missing(flagResources, cfg)
	if len(missing) == 0 {
		fmt.Printf("All resources present in %s\n", flagResources)
		return nil
	}

	fmt.Printf("Missing from %s:\n", flagResources)
	for _, rel := range missing {
		fmt.Printf("  %s\n", rel)
	}
	return fmt.Errorf("%d resource files missing", len(missing))
}
