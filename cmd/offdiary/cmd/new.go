package cmd

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/tail1887/offline-diary/internal/diary"
	"github.com/tail1887/offline-diary/internal/store"
)

var (
	newTitle      string
	newDate       string
	newTags       []string
	newCategories []string
	newMood       string
	newWeather    string
	newBookmark   bool
	newEncrypt    bool
)

var newCmd = &cobra.Command{
	Use:   "new [content]",
	Short: "Write a new diary entry",
	Long: `Write a new diary entry.

If content is not provided as an argument, it is read from stdin. With
--encrypt, the content is sealed with your password before it is stored;
reading it back later requires the same password.

Examples:
  offdiary new -t "First day" "Today I started my diary."
  cat draft.md | offdiary new -t "Long day" --tags life,work
  offdiary new -t "Secret" --encrypt`,
	Args: cobra.MaximumNArgs(1),
	RunE: runNew,
}

func init() {
	newCmd.Flags().StringVarP(&newTitle, "title", "t", "", "entry title")
	newCmd.Flags().StringVarP(&newDate, "date", "d", "", "subject date, YYYY-MM-DD (default today)")
	newCmd.Flags().StringSliceVar(&newTags, "tags", nil, "comma-separated tags")
	newCmd.Flags().StringSliceVar(&newCategories, "categories", nil, "comma-separated categories")
	newCmd.Flags().StringVar(&newMood, "mood", "", "mood")
	newCmd.Flags().StringVar(&newWeather, "weather", "", "weather")
	newCmd.Flags().BoolVar(&newBookmark, "bookmark", false, "bookmark this entry")
	newCmd.Flags().BoolVarP(&newEncrypt, "encrypt", "e", false, "encrypt the content")
	newCmd.MarkFlagRequired("title")
	rootCmd.AddCommand(newCmd)
}

func runNew(_ *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	if _, err := requireUser(a); err != nil {
		return err
	}

	content, err := readContent(args)
	if err != nil {
		return err
	}

	if newEncrypt {
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

	date := newDate
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	entry, err := a.Diary.Create(&store.Entry{
		Title:        newTitle,
		Content:      content,
		Date:         date,
		Tags:         newTags,
		Categories:   newCategories,
		Mood:         newMood,
		Weather:      newWeather,
		IsBookmarked: newBookmark,
		IsEncrypted:  newEncrypt,
	})
	if err != nil {
		return err
	}

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(entry)
	}

	Success("Entry %s created", Bold(entry.ID))
	return nil
}

// readContent takes the entry content from the argument, a pipe, or an
// interactive prompt, in that order of preference.
func readContent(args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}

	stat, _ := os.Stdin.Stat()
	if (stat.Mode() & os.ModeCharDevice) != 0 {
		fmt.Fprintln(os.Stderr, "Enter content (end with Ctrl-D):")
		data, err := io.ReadAll(bufio.NewReader(os.Stdin))
		if err != nil {
			return "", fmt.Errorf("read content: %w", err)
		}
		return strings.TrimSuffix(string(data), "\n"), nil
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return strings.TrimSuffix(string(data), "\n"), nil
}
