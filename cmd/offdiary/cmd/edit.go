package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tail1887/offline-diary/internal/diary"
	"github.com/tail1887/offline-diary/internal/store"
)

var (
	editTitle      string
	editContent    string
	editDate       string
	editTags       []string
	editCategories []string
	editMood       string
	editWeather    string
	editBookmark   bool
	editEncrypt    bool
)

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Update fields of a diary entry",
	Long: `Update fields of a diary entry.

Only the flags you pass are changed; everything else keeps its stored
value. The entry ID and creation time never change. With --encrypt the
new --content is sealed before it is stored.

Examples:
  offdiary edit 3b1f... -t "Better title"
  offdiary edit 3b1f... --bookmark
  offdiary edit 3b1f... --content "rewritten" --encrypt`,
	Args: cobra.ExactArgs(1),
	RunE: runEdit,
}

func init() {
	editCmd.Flags().StringVarP(&editTitle, "title", "t", "", "new title")
	editCmd.Flags().StringVar(&editContent, "content", "", "new content")
	editCmd.Flags().StringVarP(&editDate, "date", "d", "", "new subject date, YYYY-MM-DD")
	editCmd.Flags().StringSliceVar(&editTags, "tags", nil, "replace tags")
	editCmd.Flags().StringSliceVar(&editCategories, "categories", nil, "replace categories")
	editCmd.Flags().StringVar(&editMood, "mood", "", "new mood")
	editCmd.Flags().StringVar(&editWeather, "weather", "", "new weather")
	editCmd.Flags().BoolVar(&editBookmark, "bookmark", false, "set or clear the bookmark")
	editCmd.Flags().BoolVarP(&editEncrypt, "encrypt", "e", false, "encrypt the new content")
	rootCmd.AddCommand(editCmd)
}

func runEdit(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	if _, err := requireUser(a); err != nil {
		return err
	}

	patch := &store.EntryPatch{}
	changed := false

	flags := cmd.Flags()
	if flags.Changed("title") {
		patch.Title = &editTitle
		changed = true
	}
	if flags.Changed("content") {
		content := editContent
		if editEncrypt {
			password, err := promptPassword("Password to seal with: ")
			if err != nil {
				return err
			}
			if password == "" {
				return fmt.Errorf("password cannot be empty")
			}
			content, err = diary.SealContent(content, password)
			if err != nil {
				return err
			}
		}
		patch.Content = &content
		patch.IsEncrypted = &editEncrypt
		changed = true
	}
	if flags.Changed("date") {
		patch.Date = &editDate
		changed = true
	}
	if flags.Changed("tags") {
		patch.Tags = &editTags
		changed = true
	}
	if flags.Changed("categories") {
		patch.Categories = &editCategories
		changed = true
	}
	if flags.Changed("mood") {
		patch.Mood = &editMood
		changed = true
	}
	if flags.Changed("weather") {
		patch.Weather = &editWeather
		changed = true
	}
	if flags.Changed("bookmark") {
		patch.IsBookmarked = &editBookmark
		changed = true
	}

	if !changed {
		return fmt.Errorf("nothing to update, pass at least one field flag")
	}

	entry, err := a.Diary.Update(args[0], patch)
	if errors.Is(err, store.ErrEntryNotFound) {
		return fmt.Errorf("entry %q not found", args[0])
	}
	if err != nil {
		return err
	}

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(entry)
	}

	Success("Entry %s updated", Bold(entry.ID))
	return nil
}
