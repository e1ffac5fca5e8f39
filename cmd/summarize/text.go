package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"summarizer/backend/internal/config"
	"summarizer/backend/internal/model"
	"summarizer/backend/internal/oracle"
	"summarizer/backend/internal/summarize"

	"github.com/spf13/cobra"
	"golang.org/x/text/unicode/norm"
)

var (
	textMaxWords    int
	textLength      string
	textStyle       string
	textTemperature float64
)

var textCmd = &cobra.Command{
	Use:   "text [text]",
	Short: "Summarize text with the configured model",
	Long: `Run the full pipeline: validation, the model configured through
MODEL_PROVIDER / MODEL_NAME, then optional refinement to --max-words.`,
	RunE: runText,
}

func init() {
	rootCmd.AddCommand(textCmd)

	textCmd.Flags().IntVarP(&textMaxWords, "max-words", "w", 0, "Word budget for the summary (0 = unbounded)")
	textCmd.Flags().StringVarP(&textLength, "length", "l", string(model.DefaultLength), "Length tier: short, medium or long")
	textCmd.Flags().StringVarP(&textStyle, "style", "s", string(model.StyleNeutral), "Summary style: neutral, bullet, formal, casual or technical")
	textCmd.Flags().Float64VarP(&textTemperature, "temperature", "t", model.DefaultTemperature, "Sampling temperature in [0, 2]; 0 is deterministic")
}

func runText(cmd *cobra.Command, args []string) error {
	text, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	o, err := oracle.New(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize model: %w", err)
	}

	var sampler *summarize.Sampler
	if cfg.Sampling.Enabled {
		sampler = summarize.NewSampler(nil, cfg.Sampling)
	}
	svc := summarize.NewService(o, summarize.Options{
		MaxTextChars: cfg.MaxTextChars,
		Sampler:      sampler,
		Timeout:      cfg.GenerationTimeout,
	})

	result, err := svc.Summarize(ctx, &model.SummarizationRequest{
		Text:         norm.NFC.String(text),
		MaxWords:     &textMaxWords,
		Length:       textLength,
		SummaryStyle: textStyle,
		Temperature:  &textTemperature,
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), result.Summary)
	return nil
}
