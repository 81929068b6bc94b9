package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/favicache/internal/application/usecase"
	"github.com/bnema/favicache/internal/cli/styles"
)

const outputFilePerm = 0o644

var (
	fetchOutput     string
	fetchCachedOnly bool
)

var fetchCmd = &cobra.Command{
	Use:   "fetch <url-or-host>",
	Short: "Fetch a favicon into the cache",
	Long: `Look up the favicon for a URL or bare host name.

The icon is served from memory or disk when cached; otherwise each network
source is tried in order until one returns a decodable image. The normalized
PNG can be written to a file with --output.`,
	Args: cobra.ExactArgs(1),
	RunE: runFetch,
}

func init() {
	rootCmd.AddCommand(fetchCmd)
	fetchCmd.Flags().StringVarP(&fetchOutput, "output", "o", "", "write the PNG to this file")
	fetchCmd.Flags().BoolVar(&fetchCachedOnly, "cached", false, "only consult the cache, never the network")
}

func runFetch(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	identifier := args[0]
	result, err := app.ResolveIconUC.Execute(app.Ctx(), usecase.ResolveIconInput{
		Identifier: identifier,
		CachedOnly: fetchCachedOnly,
	})
	if err != nil {
		return err
	}

	renderer := styles.NewFaviconRenderer(app.Theme)
	fmt.Println(renderer.RenderResult(identifier, result))

	if !result.Found {
		return fmt.Errorf("no favicon for %s", identifier)
	}

	if fetchOutput != "" {
		if err := os.WriteFile(fetchOutput, result.Icon, outputFilePerm); err != nil {
			return fmt.Errorf("write %s: %w", fetchOutput, err)
		}
	}
	return nil
}
