package cmd

import (
	"fmt"
	"strings"

	"github.com/julienpequegnot/tfclass/internal/config"
	"github.com/julienpequegnot/tfclass/internal/corpus"
	"github.com/julienpequegnot/tfclass/internal/tokenizer"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var evalCmd = &cobra.Command{
	Use:   "eval <corpus-dir>",
	Short: "Measure accuracy on a labeled corpus",
	Long:  `Classifies every document of a labeled corpus and reports top-1 accuracy with per-category precision and recall.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runEval,
}

var evalFormula string

func init() {
	rootCmd.AddCommand(evalCmd)
	evalCmd.Flags().StringVarP(&evalFormula, "formula", "f", "", "TF-IDF formula: standard, frequency or threshold")
}

type evalCounts struct {
	docs      int
	predicted int
	correct   int
}

func runEval(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	c, err := newClassifier(cfg, evalFormula)
	if err != nil {
		return err
	}

	docs, err := corpus.Load(args[0])
	if err != nil {
		return err
	}

	tok := tokenizer.New(cfg.Tokenizer)
	counts := make(map[string]*evalCounts)
	get := func(name string) *evalCounts {
		if counts[name] == nil {
			counts[name] = &evalCounts{}
		}
		return counts[name]
	}

	correct := 0
	for _, d := range docs {
		best, ok := c.Best(tok.Tokenize(d.Text))
		get(d.Category).docs++
		if !ok {
			continue
		}
		get(best.Category).predicted++
		if best.Category == d.Category {
			get(d.Category).correct++
			correct++
		} else {
			logger.Debug("misclassified",
				zap.String("path", d.Path),
				zap.String("expected", d.Category),
				zap.String("got", best.Category),
				zap.Float64("score", best.Score))
		}
	}

	fmt.Println(headerStyle.Render(fmt.Sprintf(" %-20s  %6s  %9s  %6s", "CATEGORY", "DOCS", "PRECISION", "RECALL")))
	fmt.Println(strings.Repeat("─", 50))
	for _, name := range corpus.Categories(docs) {
		cnt := get(name)
		fmt.Printf(" %s  %6d  %9s  %6s\n",
			categoryStyle.Render(fmt.Sprintf("%-20s", name)),
			cnt.docs,
			ratio(cnt.correct, cnt.predicted),
			ratio(cnt.correct, cnt.docs))
	}

	fmt.Printf("\nAccuracy: %s (%d/%d)\n", scoreStyle.Render(ratio(correct, len(docs))), correct, len(docs))
	return nil
}

func ratio(num, den int) string {
	if den == 0 {
		return "-"
	}
	return fmt.Sprintf("%.1f%%", float64(num)/float64(den)*100)
}
