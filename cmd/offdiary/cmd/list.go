package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tail1887/offline-diary/internal/diary"
	"github.com/tail1887/offline-diary/internal/store"
)

var (
	listSearch     string
	listTag        string
	listCategory   string
	listSort       string
	listBookmarked bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List diary entries",
	Long: `List diary entries, with optional filtering and sorting.

Filtering happens in memory over the full list; encrypted content is
matched only by title and tags since the store never sees plaintext.

Examples:
  offdiary list
  offdiary list --search coding
  offdiary list --category personal --sort oldest
  offdiary list --bookmarked`,
	Aliases: []string{"ls"},
	Args:    cobra.NoArgs,
	RunE:    runList,
}

func init() {
	listCmd.Flags().StringVarP(&listSearch, "search", "s", "", "keyword in title, content, or tags")
	listCmd.Flags().StringVar(&listTag, "tag", "", "filter by exact tag")
	listCmd.Flags().StringVar(&listCategory, "category", "", "filter by exact category")
	listCmd.Flags().StringVar(&listSort, "sort", string(diary.SortLatest), "sort order: latest, oldest, title")
	listCmd.Flags().BoolVar(&listBookmarked, "bookmarked", false, "only bookmarked entries")
	rootCmd.AddCommand(listCmd)
}

func runList(_ *cobra.Command, _ []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	if _, err := requireUser(a); err != nil {
		return err
	}

	entries, err := a.Diary.List()
	if err != nil {
		return err
	}

	entries = diary.Search(entries, listSearch)
	entries = diary.FilterByTag(entries, listTag)
	entries = diary.FilterByCategory(entries, listCategory)
	if listBookmarked {
		entries = onlyBookmarked(entries)
	}
	entries = diary.Sort(entries, diary.SortOrder(listSort))

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	if len(entries) == 0 {
		fmt.Fprintln(os.Stderr, "No entries found.")
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Write one with: offdiary new -t TITLE")
		return nil
	}

	for _, e := range entries {
		marks := ""
		if e.IsBookmarked {
			marks += " ★"
		}
		if e.IsEncrypted {
			marks += " 🔒"
		}
		fmt.Printf("%s  %s  %s%s\n", Dim(e.ID), e.Date, Bold(e.Title), marks)
		if len(e.Tags) > 0 {
			fmt.Printf("    %s\n", Dim(strings.Join(e.Tags, ", ")))
		}
	}
	return nil
}

func onlyBookmarked(entries []*store.Entry) []*store.Entry {
	var out []*store.Entry
	for _, e := range entries {
		if e.IsBookmarked {
			out = append(out, e)
		}
	}
	return out
}
