package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/julienpequegnot/tfclass/internal/config"
	"github.com/julienpequegnot/tfclass/internal/feed"
	"github.com/julienpequegnot/tfclass/internal/tokenizer"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var feedCmd = &cobra.Command{
	Use:   "feed <url>",
	Short: "Classify the items of an RSS or Atom feed",
	Long:  `Fetches a feed (or discovers it from a site URL with --discover) and classifies every item by its title and content.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runFeed,
}

var (
	feedDiscover bool
	feedTop      int
	feedFormula  string
)

func init() {
	rootCmd.AddCommand(feedCmd)
	feedCmd.Flags().BoolVarP(&feedDiscover, "discover", "d", false, "Treat the URL as a site and discover its feed")
	feedCmd.Flags().IntVarP(&feedTop, "top", "n", 1, "Number of categories to show per item")
	feedCmd.Flags().StringVarP(&feedFormula, "formula", "f", "", "TF-IDF formula: standard, frequency or threshold")
}

func runFeed(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	c, err := newClassifier(cfg, feedFormula)
	if err != nil {
		return err
	}

	fetcher := feed.NewFetcher(time.Duration(cfg.Fetch.TimeoutSeconds)*time.Second, cfg.Fetch.UserAgent)
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	feedURL := args[0]
	if feedDiscover {
		feedURL, err = fetcher.DiscoverFeed(ctx, args[0])
		if err != nil {
			return err
		}
		fmt.Printf("Discovered feed: %s\n", feedURL)
	}

	items, err := fetcher.FetchFeed(ctx, feedURL)
	if err != nil {
		return err
	}
	logger.Debug("feed fetched", zap.String("url", feedURL), zap.Int("items", len(items)))

	if len(items) == 0 {
		fmt.Println("Feed has no items.")
		return nil
	}

	tok := tokenizer.New(cfg.Tokenizer)
	for _, item := range items {
		title := item.Title
		if title == "" {
			title = item.URL
		}
		fmt.Println(headerStyle.Render(title))
		if !item.PublishedAt.IsZero() {
			fmt.Println(dimStyle.Render("  " + item.PublishedAt.Format("2006-01-02") + "  " + item.URL))
		}
		printRanking(c.Rank(tok.Tokenize(item.Text()), feedTop))
	}
	return nil
}
