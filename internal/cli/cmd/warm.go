package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/bnema/favicache/internal/application/usecase"
	"github.com/bnema/favicache/internal/cli/styles"
	"github.com/bnema/favicache/internal/logging"
	"github.com/bnema/favicache/internal/metrics"
)

var (
	warmFile        string
	warmConcurrency int
)

var warmCmd = &cobra.Command{
	Use:   "warm [url-or-host...]",
	Short: "Pre-fetch favicons for many sites",
	Long: `Fetch favicons for every identifier given as an argument or listed in a file.

Files contain one URL or host per line; blank lines and lines starting with #
are skipped. Use -f - to read from standard input.`,
	RunE: runWarm,
}

func init() {
	rootCmd.AddCommand(warmCmd)
	warmCmd.Flags().StringVarP(&warmFile, "file", "f", "", "read identifiers from file (- for stdin)")
	warmCmd.Flags().IntVarP(&warmConcurrency, "jobs", "j", usecase.DefaultWarmConcurrency, "number of concurrent fetches")
}

func runWarm(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	identifiers := append([]string(nil), args...)
	if warmFile != "" {
		fromFile, err := readIdentifiers(warmFile)
		if err != nil {
			return err
		}
		identifiers = append(identifiers, fromFile...)
	}
	if len(identifiers) == 0 {
		return fmt.Errorf("no identifiers given")
	}

	result, err := app.WarmIconsUC.Execute(app.Ctx(), usecase.WarmIconsInput{
		Identifiers: identifiers,
		Concurrency: warmConcurrency,
	})
	if err != nil {
		return err
	}

	samples, err := metrics.Snapshot(prometheus.DefaultGatherer)
	if err != nil {
		logging.FromContext(app.Ctx()).Debug().Err(err).Msg("failed to gather metrics")
	}

	renderer := styles.NewFaviconRenderer(app.Theme)
	fmt.Println(renderer.RenderWarmSummary(result, samples))
	return nil
}

func readIdentifiers(path string) ([]string, error) {
	var r io.Reader
	if path == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", path, err)
		}
		defer f.Close()
		r = f
	}
	return parseIdentifiers(r)
}

func parseIdentifiers(r io.Reader) ([]string, error) {
	var ids []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		ids = append(ids, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read identifiers: %w", err)
	}
	return ids, nil
}
