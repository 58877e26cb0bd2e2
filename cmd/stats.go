package cmd

import (
	"fmt"
	"strings"

	"github.com/julienpequegnot/tfclass/internal/config"
	"github.com/julienpequegnot/tfclass/internal/database"
	"github.com/julienpequegnot/tfclass/internal/model"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show model statistics",
	Long:  `Summarizes the trained model: categories, sample count and the document-frequency distribution.`,
	RunE:  runStats,
}

var statsSteps int

func init() {
	rootCmd.AddCommand(statsCmd)
	statsCmd.Flags().IntVar(&statsSteps, "steps", 10, "Number of quantile steps to show")
}

func runStats(cmd *cobra.Command, args []string) error {
	m, err := loadModel()
	if err != nil {
		return err
	}

	db, err := database.New(config.DBPath())
	if err != nil {
		return err
	}
	defer db.Close()

	meta, err := model.NewRepository(db).Meta()
	if err != nil {
		return err
	}

	fmt.Printf("\n%s\n\n", titleStyle.Render("MODEL"))
	fmt.Printf("  Samples:     %d\n", m.SampleCount())
	fmt.Printf("  Categories:  %d\n", len(m.Categories()))
	fmt.Printf("  Vocabulary:  %d\n", m.VocabularySize())
	if !meta.TrainedAt.IsZero() {
		fmt.Printf("  Trained:     %s\n", meta.TrainedAt.Local().Format("2006-01-02 15:04"))
	}

	fmt.Printf("\n%s\n\n", titleStyle.Render("CATEGORIES"))
	fmt.Println(headerStyle.Render(fmt.Sprintf(" %-20s  %10s  %10s", "NAME", "TOKENS", "DISTINCT")))
	fmt.Println(strings.Repeat("─", 46))
	for _, name := range m.Categories() {
		p := m.Profile(name)
		fmt.Printf(" %s  %10d  %10d\n", categoryStyle.Render(fmt.Sprintf("%-20s", name)), p.TokenCount(), p.Distinct())
	}

	steps := statsSteps
	if steps < 1 {
		steps = 1
	}
	qs := make([]float64, steps+1)
	for i := range qs {
		qs[i] = float64(i) / float64(steps)
	}
	quantiles := m.Quantiles(qs)

	fmt.Printf("\n%s\n\n", titleStyle.Render("DOCUMENT FREQUENCY QUANTILES"))
	peak := float64(quantiles[len(quantiles)-1])
	for i, q := range qs {
		fmt.Printf("  %s %6d %s\n",
			dimStyle.Render(fmt.Sprintf("%5.1f%%", q*100)),
			quantiles[i],
			renderBar(float64(quantiles[i]), peak, 30))
	}
	fmt.Println()
	return nil
}
