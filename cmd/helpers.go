package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/julienpequegnot/tfclass/internal/classifier"
	"github.com/julienpequegnot/tfclass/internal/config"
	"github.com/julienpequegnot/tfclass/internal/database"
	"github.com/julienpequegnot/tfclass/internal/model"
	"github.com/julienpequegnot/tfclass/internal/tfidf"
	"go.uber.org/zap"
)

var (
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	categoryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	scoreStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	barStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
)

func loadModel() (*model.Model[string], error) {
	db, err := database.New(config.DBPath())
	if err != nil {
		return nil, err
	}
	defer db.Close()

	m, err := model.NewRepository(db).Load()
	if errors.Is(err, model.ErrNoModel) {
		return nil, fmt.Errorf("%w: run 'tfclass train <dir>' first", err)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load model: %w", err)
	}

	logger.Debug("model loaded",
		zap.String("path", config.DBPath()),
		zap.Int("categories", len(m.Categories())),
		zap.Int("vocabulary", m.VocabularySize()),
		zap.Int64("samples", m.SampleCount()))
	return m, nil
}

// newClassifier builds a classifier from the stored model. An empty formula
// name falls back to the configured one.
func newClassifier(cfg *config.Config, formulaName string) (*classifier.Classifier[string], error) {
	if formulaName == "" {
		formulaName = cfg.Scoring.Formula
	}
	formula, err := tfidf.Lookup(formulaName)
	if err != nil {
		return nil, err
	}

	m, err := loadModel()
	if err != nil {
		return nil, err
	}

	var opts []classifier.Option
	if cfg.Scoring.CompatibleProduct {
		opts = append(opts, classifier.WithCompatibleProduct())
	}
	return classifier.New(m, formula, opts...), nil
}

func renderBar(value, peak float64, width int) string {
	if peak <= 0 || value <= 0 {
		return ""
	}
	n := int(value / peak * float64(width))
	if n < 1 {
		n = 1
	}
	return barStyle.Render(strings.Repeat("█", n))
}

func printRanking(results []classifier.Result) {
	if len(results) == 0 {
		fmt.Println(dimStyle.Render("  (no categories)"))
		return
	}
	top := results[0].Score
	for i, r := range results {
		fmt.Printf("  %d. %s %s %s\n",
			i+1,
			categoryStyle.Render(fmt.Sprintf("%-20s", r.Category)),
			scoreStyle.Render(fmt.Sprintf("%.4f", r.Score)),
			renderBar(r.Score, top, 20))
	}
}
