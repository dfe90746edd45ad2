package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/pkoval/provenly/internal/model"
	"github.com/pkoval/provenly/internal/pipeline"
)

var (
	keypointCount   int
	keypointTimeout time.Duration
	llmEnabled      bool
	llmProvider     string
	llmModel        string
)

// keypointsCmd represents the keypoints command
var keypointsCmd = &cobra.Command{
	Use:   "keypoints <transcript-file>",
	Short: "Extract the most salient points from a transcript",
	Long: `Keypoints ranks a transcript's sentences and prints the strongest
ones. With --llm a generative backend writes the keypoints instead; if
the backend is unavailable or fails, the heuristic ranking is used.

Example:
  provenly keypoints interview.txt -n 5
  provenly keypoints interview.txt -n 5 --llm --llm-provider openai`,
	Args: cobra.ExactArgs(1),
	RunE: runKeypoints,
}

func init() {
	rootCmd.AddCommand(keypointsCmd)

	keypointsCmd.Flags().IntVarP(&keypointCount, "count", "n", 5, "number of keypoints to extract")
	keypointsCmd.Flags().DurationVar(&keypointTimeout, "timeout", 2*time.Minute, "overall timeout")

	// LLM flags
	keypointsCmd.Flags().BoolVar(&llmEnabled, "llm", false, "enable generative keypoint extraction")
	keypointsCmd.Flags().StringVar(&llmProvider, "llm-provider", "openai", "LLM provider (openai, anthropic, ollama)")
	keypointsCmd.Flags().StringVar(&llmModel, "llm-model", "", "LLM model name (provider default if empty)")
}

func runKeypoints(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), keypointTimeout)
	defer cancel()

	transcript, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read transcript: %w", err)
	}

	cfg := loadConfig()
	if llmEnabled {
		if err := configureLLM(cfg, llmProvider, llmModel); err != nil {
			return err
		}
	} else {
		cfg.LLM.Provider = ""
	}

	p := pipeline.NewPipeline(cfg, nil)

	keypoints, origin := p.Keypoints(ctx, string(transcript), keypointCount)

	if cfg.Output.Verbose {
		if origin == model.OriginGenerative {
			fmt.Fprintf(os.Stderr, "✓ Generated %d keypoints using %s\n", len(keypoints), p.GeneratorName())
		} else {
			fmt.Fprintf(os.Stderr, "✓ Extracted %d keypoints heuristically\n", len(keypoints))
		}
		fmt.Fprintln(os.Stderr)
	}

	for i, kp := range keypoints {
		fmt.Printf("%d. %s\n", i+1, kp.Text)
	}
	return nil
}
