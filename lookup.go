package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/flashcards/zhdeck/app"
	"github.com/flashcards/zhdeck/dict"
)

var (
	lookupTraditional string
	lookupPinyin      string
	lookupCategory    string
)

var lookupCmd = &cobra.Command{
	Use:   "lookup [simplified]",
	Short: "Search the dictionary and show the preferred entry",
	Long: `Lookup prints every entry matching the given filters in dictionary order.
When a simplified headword is given, the entry a word list would use for it
is printed last.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		params := dict.SearchParams{Traditional: lookupTraditional, Pinyin: lookupPinyin}
		if len(args) == 1 {
			params.Simplified = args[0]
		}
		if params == (dict.SearchParams{}) {
			return errors.New("nothing to look up: give a headword, --trad or --pinyin")
		}
		if len(cfg.Dictionary.Paths) == 0 {
			return errors.New("no dictionary configured")
		}

		pipeline := app.NewPipeline(logger, cfg)
		if err := pipeline.Load(); err != nil {
			return err
		}

		entries := pipeline.Dict().Search(params)
		if len(entries) == 0 {
			fmt.Println("No matching entries.")
			return nil
		}
		for _, e := range entries {
			fmt.Println(e)
		}

		if params.Simplified == "" {
			return nil
		}
		preferred, err := pipeline.Resolver().Resolve(params.Simplified, lookupCategory)
		if err != nil {
			return err
		}
		fmt.Printf("\nPreferred: %s\n", preferred)
		return nil
	},
}

func init() {
	lookupCmd.Flags().StringVarP(&lookupTraditional, "trad", "t", "", "Traditional form")
	lookupCmd.Flags().StringVarP(&lookupPinyin, "pinyin", "p", "", "Tone-numbered pinyin, e.g. \"gan1\"")
	lookupCmd.Flags().StringVar(&lookupCategory, "category", "", "Grammatical category used to pick an override")
	rootCmd.AddCommand(lookupCmd)
}
