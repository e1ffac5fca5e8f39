package main

import (
	"fmt"

	"summarizer/backend/internal/refiner"

	"github.com/spf13/cobra"
)

var (
	refineMaxWords int
	refineScores   bool
)

var refineCmd = &cobra.Command{
	Use:   "refine [text]",
	Short: "Keep the most salient sentences within a word budget",
	Long: `Rank sentences by TF-IDF salience and keep the top ones that fit
within --max-words. No model is called.`,
	RunE: runRefine,
}

func init() {
	rootCmd.AddCommand(refineCmd)

	refineCmd.Flags().IntVarP(&refineMaxWords, "max-words", "w", 50, "Word budget")
	refineCmd.Flags().BoolVar(&refineScores, "scores", false, "Print every sentence with its score instead")
}

func runRefine(cmd *cobra.Command, args []string) error {
	text, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if refineScores {
		for _, s := range refiner.Rank(text) {
			fmt.Fprintf(out, "%.4f\t#%d\t%dw\t%s\n", s.Score, s.Position, s.Words, s.Text)
		}
		return nil
	}

	fmt.Fprintln(out, refiner.Refine(text, refineMaxWords))
	return nil
}
