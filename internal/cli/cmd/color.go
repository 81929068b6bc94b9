package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/favicache/internal/application/usecase"
	"github.com/bnema/favicache/internal/cli/styles"
)

var colorHexOnly bool

var colorCmd = &cobra.Command{
	Use:   "color <url-or-host>",
	Short: "Print the dominant color of a site's favicon",
	Long: `Fetch (or reuse) the favicon and print its dominant color.

Transparent, near-black and near-white pixels are ignored. When no icon is
available, or no pixel qualifies, a neutral gray is printed.`,
	Args: cobra.ExactArgs(1),
	RunE: runColor,
}

func init() {
	rootCmd.AddCommand(colorCmd)
	colorCmd.Flags().BoolVar(&colorHexOnly, "hex", false, "print only the #rrggbb value")
}

func runColor(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	result, err := app.ResolveIconUC.Execute(app.Ctx(), usecase.ResolveIconInput{Identifier: args[0]})
	if err != nil {
		return err
	}

	if colorHexOnly {
		fmt.Println(result.Color.Hex())
		return nil
	}

	renderer := styles.NewFaviconRenderer(app.Theme)
	fmt.Println(renderer.RenderColor(result.Color))
	return nil
}
