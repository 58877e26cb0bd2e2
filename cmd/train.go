package cmd

import (
	"fmt"

	"github.com/julienpequegnot/tfclass/internal/config"
	"github.com/julienpequegnot/tfclass/internal/corpus"
	"github.com/julienpequegnot/tfclass/internal/database"
	"github.com/julienpequegnot/tfclass/internal/model"
	"github.com/julienpequegnot/tfclass/internal/tokenizer"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var trainCmd = &cobra.Command{
	Use:   "train <corpus-dir>",
	Short: "Build the model from a labeled corpus",
	Long: `Reads every document under <corpus-dir>/<category>/ and rebuilds the model:
one token profile per category plus corpus-wide document frequencies.
The previous model is replaced.`,
	Args: cobra.ExactArgs(1),
	RunE: runTrain,
}

var trainPrune bool

func init() {
	rootCmd.AddCommand(trainCmd)
	trainCmd.Flags().BoolVar(&trainPrune, "prune", false, "Apply the configured quantile range after training")
}

func runTrain(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	docs, err := corpus.Load(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("Training on %d documents\n", len(docs))

	tok := tokenizer.New(cfg.Tokenizer)
	builder := model.NewBuilder[string]()
	perCategory := make(map[string]int)

	for _, d := range docs {
		tokens := tok.Tokenize(d.Text)
		if len(tokens) == 0 {
			logger.Debug("document has no tokens", zap.String("path", d.Path))
		}
		builder.Add(d.Category, tokens)
		perCategory[d.Category]++
	}

	m := builder.Build()
	if trainPrune {
		before := m.VocabularySize()
		m = pruneByQuantile(m, cfg.Prune.MinQuantile, cfg.Prune.MaxQuantile)
		fmt.Printf("Pruned vocabulary: %d -> %d tokens\n", before, m.VocabularySize())
	}

	db, err := database.New(config.DBPath())
	if err != nil {
		return err
	}
	defer db.Close()

	if err := model.NewRepository(db).Save(m); err != nil {
		return fmt.Errorf("failed to save model: %w", err)
	}

	fmt.Println()
	for _, name := range m.Categories() {
		p := m.Profile(name)
		fmt.Printf("  %s %d docs, %d tokens, %d distinct\n",
			categoryStyle.Render(fmt.Sprintf("%-20s", name)),
			perCategory[name], p.TokenCount(), p.Distinct())
	}
	fmt.Printf("\nModel saved: %d categories, %d samples, vocabulary %d\n",
		len(m.Categories()), m.SampleCount(), m.VocabularySize())
	return nil
}
