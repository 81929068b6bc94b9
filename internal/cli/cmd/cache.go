package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/favicache/internal/cli/styles"
)

var clearCmd = &cobra.Command{
	Use:   "clear [url-or-host...]",
	Short: "Empty the memory and disk caches",
	Long: `Without arguments, empty both cache tiers.

With identifiers, drop only their icons so the next fetch goes back to the network.`,
	RunE: runClear,
}

var pathCmd = &cobra.Command{
	Use:   "path [url-or-host]",
	Short: "Print where icons are cached",
	Long: `Without arguments, print the disk cache directory.

With an identifier, print the path of its cached PNG. Nothing is printed,
and the exit status is non-zero, when the icon is not on disk.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPath,
}

func init() {
	rootCmd.AddCommand(clearCmd)
	rootCmd.AddCommand(pathCmd)
}

func runClear(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	renderer := styles.NewFaviconRenderer(app.Theme)
	if len(args) == 0 {
		app.FaviconService.ClearCache(app.Ctx())
		fmt.Println(renderer.RenderCleared(app.Config.Cache.Dir))
		return nil
	}

	for _, id := range args {
		if !app.FaviconService.Forget(app.Ctx(), id) {
			return fmt.Errorf("%q has no host", id)
		}
		fmt.Println(renderer.RenderForgotten(id))
	}
	return nil
}

func runPath(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	if len(args) == 0 {
		renderer := styles.NewFaviconRenderer(app.Theme)
		fmt.Println(renderer.RenderCacheInfo(app.Config.Cache.Dir, app.FaviconService.Stats()))
		return nil
	}

	path := app.FaviconService.DiskPath(args[0])
	if path == "" {
		return fmt.Errorf("%s is not cached", args[0])
	}
	fmt.Println(path)
	return nil
}
