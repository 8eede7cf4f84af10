package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"wordgen/internal/app"
	"wordgen/internal/domain"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func generateCmd(load func() (*app.Services, *zap.Logger, error)) *cobra.Command {
	var count string
	var asJSON bool

	c := &cobra.Command{
		Use:   "generate",
		Short: "Generate a list of random words (1 to 1000)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			// Reject a bad count before any connection is opened
			n, err := domain.ParseCount(count)
			if err != nil {
				return err
			}

			services, logger, err := load()
			if err != nil {
				return err
			}
			defer logger.Sync()
			defer services.Close()

			words, err := services.Generator.Generate(cmd.Context(), n)
			if err != nil {
				return err
			}

			return printWords(cmd.OutOrStdout(), words, asJSON)
		},
	}

	c.Flags().StringVarP(&count, "count", "n", "", "Number of words to generate (required)")
	c.Flags().BoolVar(&asJSON, "json", false, "Print the list as a JSON array")

	_ = c.MarkFlagRequired("count")
	return c
}

func printWords(w io.Writer, words []string, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(words)
	}
	_, err := fmt.Fprintln(w, strings.Join(words, "\n"))
	return err
}
