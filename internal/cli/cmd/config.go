package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/favicache/internal/cli/styles"
	"github.com/bnema/favicache/internal/infrastructure/config"
)

var configShowFormat string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Long:  `Print the configuration after merging defaults, the config file and FAVICACHE_* environment variables.`,
	RunE:  runConfigShow,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the config file and XDG directories",
	RunE:  runConfigPath,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the config file",
	RunE:  runConfigSchema,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configSchemaCmd)
	configShowCmd.Flags().StringVar(&configShowFormat, "format", "toml", "output format (toml, yaml)")
}

func runConfigShow(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	var (
		data []byte
		err  error
	)
	switch configShowFormat {
	case "toml":
		data, err = app.ConfigMgr.EffectiveTOML()
	case "yaml":
		data, err = app.ConfigMgr.EffectiveYAML()
	default:
		return fmt.Errorf("unknown format %q", configShowFormat)
	}
	if err != nil {
		fmt.Println(styles.NewConfigRenderer(app.Theme).RenderError(err))
		return nil
	}
	fmt.Print(string(data))
	return nil
}

func runConfigPath(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	renderer := styles.NewConfigRenderer(app.Theme)
	path := app.ConfigMgr.GetConfigFile()
	_, statErr := os.Stat(path)
	fmt.Println(renderer.RenderConfigPath(path, statErr == nil))

	dirs, err := app.LocatePathsUC.Execute()
	if err != nil {
		fmt.Println(renderer.RenderError(err))
		return nil
	}
	fmt.Println(renderer.RenderDirs(dirs))
	return nil
}

func runConfigSchema(_ *cobra.Command, _ []string) error {
	data, err := config.GenerateSchema()
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
