package cmd

import (
	"fmt"
	"os"

	"github.com/julienpequegnot/tfclass/internal/config"
	"github.com/julienpequegnot/tfclass/internal/database"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize tfclass configuration and model store",
	Long:  `Creates the ~/.tfclass directory (or $TFCLASS_HOME) with config.yaml and the SQLite model store.`,
	RunE:  runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	dir := config.Dir()

	// Create directory
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	// Keep an existing config, only write defaults the first time
	if _, err := os.Stat(config.Path()); os.IsNotExist(err) {
		if err := config.Save(config.Default()); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}
		fmt.Printf("Created config at %s\n", config.Path())
	} else {
		fmt.Printf("Config already exists at %s\n", config.Path())
	}

	// Create database
	db, err := database.New(config.DBPath())
	if err != nil {
		return fmt.Errorf("failed to create database: %w", err)
	}
	db.Close()
	fmt.Printf("Created model store at %s\n", config.DBPath())

	fmt.Println("\nTfclass initialized! Next steps:")
	fmt.Println("  tfclass train <corpus-dir>     Learn categories from <corpus-dir>/<category>/<file>")
	fmt.Println("  tfclass classify <file>        Rank categories for a document")

	return nil
}
