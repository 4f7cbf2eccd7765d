package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/flashcards/zhdeck/pinyin"
)

var (
	convertMarkup bool
	convertTones  bool
)

var pinyinCmd = &cobra.Command{
	Use:   "pinyin [syllables...]",
	Short: "Convert between tone-marked and tone-numbered pinyin",
	Long: `Pinyin converts tone-marked pinyin such as "hē diǎn lǜ chá" to tone
numbers. With --markup it renders tone-numbered pinyin as note markup.
With --tones only the tone digits of the result are printed.`,
	Example: `  zhdeck pinyin hē diǎn lǜ chá
  zhdeck pinyin --markup "he1 dian3 lu:4 cha2"`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		input := strings.Join(args, " ")
		if convertMarkup {
			markup := pinyin.ToDisplayMarkup(input)
			if convertTones {
				fmt.Fprintln(cmd.OutOrStdout(), formatTones(pinyin.Tones(markup)))
				return
			}
			fmt.Fprintln(cmd.OutOrStdout(), markup)
			return
		}
		ascii := pinyin.ToTonedASCII(input)
		if convertTones {
			fmt.Fprintln(cmd.OutOrStdout(), formatTones(pinyin.ToneDigits(ascii)))
			return
		}
		fmt.Fprintln(cmd.OutOrStdout(), ascii)
	},
}

func init() {
	pinyinCmd.Flags().BoolVarP(&convertMarkup, "markup", "m", false, "Render tone-numbered pinyin as HTML spans")
	pinyinCmd.Flags().BoolVar(&convertTones, "tones", false, "Print only the tone digits")
	rootCmd.AddCommand(pinyinCmd)
}

func formatTones(tones []int) string {
	parts := make([]string, 0, len(tones))
	for _, t := range tones {
		parts = append(parts, strconv.Itoa(t))
	}
	return strings.Join(parts, " ")
}
