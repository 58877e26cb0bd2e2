package cmd

import (
	"fmt"

	"github.com/julienpequegnot/tfclass/internal/config"
	"github.com/julienpequegnot/tfclass/internal/database"
	"github.com/julienpequegnot/tfclass/internal/model"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var pruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Trim the vocabulary by document frequency",
	Long: `Keeps only tokens whose document frequency lies between two quantiles of
the corpus document-frequency distribution, removing them from every category.`,
	RunE: runPrune,
}

var (
	pruneMinQuantile float64
	pruneMaxQuantile float64
	pruneDryRun      bool
)

func init() {
	rootCmd.AddCommand(pruneCmd)
	pruneCmd.Flags().Float64Var(&pruneMinQuantile, "min-quantile", -1, "Lowest quantile to keep (default from config)")
	pruneCmd.Flags().Float64Var(&pruneMaxQuantile, "max-quantile", -1, "Highest quantile to keep (default from config)")
	pruneCmd.Flags().BoolVar(&pruneDryRun, "dry-run", false, "Report the result without saving")
}

// pruneByQuantile keeps tokens with a document frequency between the lo and
// hi quantiles, both inclusive.
func pruneByQuantile(m *model.Model[string], lo, hi float64) *model.Model[string] {
	bounds := m.Quantiles([]float64{lo, hi})
	logger.Debug("prune bounds",
		zap.Float64("min_quantile", lo), zap.Float64("max_quantile", hi),
		zap.Int64("min_freq", bounds[0]), zap.Int64("max_freq", bounds[1]))
	return m.KeepFrequencyRange(bounds[0], bounds[1]+1)
}

func runPrune(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	lo, hi := cfg.Prune.MinQuantile, cfg.Prune.MaxQuantile
	if pruneMinQuantile >= 0 {
		lo = pruneMinQuantile
	}
	if pruneMaxQuantile >= 0 {
		hi = pruneMaxQuantile
	}
	if lo > hi {
		return fmt.Errorf("min quantile %.2f is above max quantile %.2f", lo, hi)
	}

	m, err := loadModel()
	if err != nil {
		return err
	}

	pruned := pruneByQuantile(m, lo, hi)
	fmt.Printf("Vocabulary: %d -> %d tokens (quantiles %.2f-%.2f)\n",
		m.VocabularySize(), pruned.VocabularySize(), lo, hi)

	if pruneDryRun {
		fmt.Println("Dry run, model not saved.")
		return nil
	}

	db, err := database.New(config.DBPath())
	if err != nil {
		return err
	}
	defer db.Close()

	if err := model.NewRepository(db).Save(pruned); err != nil {
		return fmt.Errorf("failed to save model: %w", err)
	}
	fmt.Println("Model saved.")
	return nil
}
