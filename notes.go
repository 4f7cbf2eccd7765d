package main

import (
	"fmt"
	"io"
	"slices"

	"github.com/spf13/cobra"

	"github.com/flashcards/zhdeck/card"
	"github.com/flashcards/zhdeck/dbinterface"
)

var notesCmd = &cobra.Command{
	Use:   "notes",
	Short: "Inspect the notes stored in MySQL",
}

var notesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all stored notes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dbc, err := connect(cmd.Context())
		if err != nil {
			return err
		}
		defer dbc.Close()

		notes, err := dbinterface.List(cmd.Context(), dbc)
		if err != nil {
			return err
		}
		if len(notes) == 0 {
			fmt.Println("No notes in flashcards database.")
			return nil
		}
		printNotes(cmd.OutOrStdout(), notes)
		return nil
	},
}

var notesFindCmd = &cobra.Command{
	Use:   "find [term]",
	Short: "Find notes whose headword contains term",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dbc, err := connect(cmd.Context())
		if err != nil {
			return err
		}
		defer dbc.Close()

		notes, err := dbinterface.Find(cmd.Context(), dbc, args[0])
		if err != nil {
			return err
		}
		printNotes(cmd.OutOrStdout(), notes)
		return nil
	},
}

var notesDeleteCmd = &cobra.Command{
	Use:   "delete [guid]",
	Short: "Delete the note with the given GUID",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dbc, err := connect(cmd.Context())
		if err != nil {
			return err
		}
		defer dbc.Close()

		if err := dbinterface.Delete(cmd.Context(), dbc, args[0]); err != nil {
			return err
		}
		fmt.Printf("Note deleted: %s\n", args[0])
		return nil
	},
}

func printNotes(w io.Writer, notes map[int64]card.Card) {
	ids := make([]int64, 0, len(notes))
	for id := range notes {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	for _, id := range ids {
		n := notes[id]
		fmt.Fprintf(w, "%d: %s %s %s %v\n", id, n.GUID, n.Simplified, n.Traditional, n.Tags)
	}
}

func init() {
	notesCmd.AddCommand(notesListCmd, notesFindCmd, notesDeleteCmd)
	rootCmd.AddCommand(notesCmd)
}
