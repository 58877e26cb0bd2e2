package cmd

import (
	"fmt"
	"io"
	"sync"

	"github.com/julienpequegnot/tfclass/internal/classifier"
	"github.com/julienpequegnot/tfclass/internal/config"
	"github.com/julienpequegnot/tfclass/internal/corpus"
	"github.com/julienpequegnot/tfclass/internal/tokenizer"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var classifyCmd = &cobra.Command{
	Use:   "classify [file...]",
	Short: "Rank categories for documents",
	Long: `Classifies each file (or --text, or standard input when neither is given)
and prints the best matching categories.`,
	RunE: runClassify,
}

var (
	classifyText        string
	classifyTop         int
	classifyFormula     string
	classifyConcurrency int
)

func init() {
	rootCmd.AddCommand(classifyCmd)
	classifyCmd.Flags().StringVarP(&classifyText, "text", "t", "", "Classify this text instead of files")
	classifyCmd.Flags().IntVarP(&classifyTop, "top", "n", 0, "Number of categories to show (0 = config)")
	classifyCmd.Flags().StringVarP(&classifyFormula, "formula", "f", "", "TF-IDF formula: standard, frequency or threshold")
	classifyCmd.Flags().IntVarP(&classifyConcurrency, "concurrency", "c", 0, "Files classified in parallel (0 = config)")
}

type classified struct {
	name    string
	results []classifier.Result
	err     error
}

func runClassify(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	c, err := newClassifier(cfg, classifyFormula)
	if err != nil {
		return err
	}

	top := classifyTop
	if top <= 0 {
		top = cfg.Scoring.Top
	}
	tok := tokenizer.New(cfg.Tokenizer)

	if classifyText != "" || len(args) == 0 {
		text := classifyText
		if text == "" {
			data, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("failed to read stdin: %w", err)
			}
			text = string(data)
		}
		printRanking(c.Rank(tok.Tokenize(text), top))
		return nil
	}

	concurrency := classifyConcurrency
	if concurrency <= 0 {
		concurrency = cfg.Scoring.Concurrency
	}
	if concurrency <= 0 {
		concurrency = 1
	}

	out := make([]classified, len(args))
	var wg sync.WaitGroup
	sem := make(chan struct{}, concurrency)

	for i, path := range args {
		wg.Add(1)
		go func(i int, path string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			out[i].name = path
			text, err := corpus.ReadDocument(path)
			if err != nil {
				out[i].err = err
				return
			}
			tokens := tok.Tokenize(text)
			logger.Debug("classifying", zap.String("path", path), zap.Int("tokens", len(tokens)))
			out[i].results = c.Rank(tokens, top)
		}(i, path)
	}

	wg.Wait()

	failed := 0
	for _, o := range out {
		fmt.Println(headerStyle.Render(o.name))
		if o.err != nil {
			fmt.Printf("  Error: %v\n", o.err)
			failed++
			continue
		}
		printRanking(o.results)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d documents failed", failed, len(args))
	}
	return nil
}
