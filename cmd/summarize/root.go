package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var inputPath string

var rootCmd = &cobra.Command{
	Use:   "summarize",
	Short: "Summarize text from the terminal",
	Long: `summarize - run the summarization pipeline without the HTTP server

Reads text from --file, from the arguments, or from stdin.

Examples:
  summarize text --length short < article.txt
  summarize text --max-words 40 --style formal "Some long text..."
  summarize refine --max-words 25 < summary.txt`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&inputPath, "file", "f", "", "Read input text from this file")
}

// readInput picks the text source: --file, then args, then stdin.
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if inputPath != "" {
		data, err := os.ReadFile(inputPath)
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", inputPath, err)
		}
		return string(data), nil
	}
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(data), nil
}
