package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/flashcards/zhdeck/app"
)

var (
	buildFormat     string
	buildWordList   string
	buildTag        string
	buildGUIDPrefix string
	buildMySQL      bool
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build notes for every word of a word list",
	Long: `Build loads the dictionaries, ingests the word list and writes one JSON
object per note to stdout. With --mysql the notes are stored in the notes
table instead; notes whose GUID is already stored are skipped.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()
		if flags.Changed("format") {
			cfg.WordList.Format = buildFormat
		}
		if flags.Changed("wordlist") {
			cfg.WordList.Path = buildWordList
		}
		if flags.Changed("tag") {
			cfg.WordList.Tag = buildTag
		}
		if flags.Changed("guid-prefix") {
			cfg.GUIDPrefix = buildGUIDPrefix
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("config: validate: %w", err)
		}

		pipeline := app.NewPipeline(logger, cfg)
		notes, err := pipeline.Notes()
		if err != nil {
			return err
		}
		cards := pipeline.Cards(notes)

		if !buildMySQL {
			return app.WriteJSONLines(os.Stdout, cards)
		}

		ctx := cmd.Context()
		dbc, err := connect(ctx)
		if err != nil {
			return err
		}
		defer dbc.Close()

		inserted, err := app.Export(ctx, logger, dbc, cfg.MySQL.Table, cards)
		if err != nil {
			return err
		}
		fmt.Printf("Stored %d new notes (%d already present)\n", inserted, len(cards)-inserted)
		return nil
	},
}

func init() {
	buildCmd.Flags().StringVarP(&buildFormat, "format", "f", "", "Word list format: hsk, integrated or hanping")
	buildCmd.Flags().StringVarP(&buildWordList, "wordlist", "w", "", "Word list file")
	buildCmd.Flags().StringVar(&buildTag, "tag", "", "Tag for every Hanping note")
	buildCmd.Flags().StringVar(&buildGUIDPrefix, "guid-prefix", "", "Namespace for note GUIDs")
	buildCmd.Flags().BoolVar(&buildMySQL, "mysql", false, "Store notes in MySQL instead of printing them")
	rootCmd.AddCommand(buildCmd)
}
