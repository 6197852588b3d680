package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tail1887/offline-diary/internal/crypto"
	"github.com/tail1887/offline-diary/internal/diary"
)

var showDecrypt bool

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a diary entry",
	Long: `Show a diary entry by ID.

For encrypted entries, pass --decrypt to be prompted for the password.
A wrong password is reported as such; no garbled content is ever shown.

Examples:
  offdiary show 3b1f...
  offdiary show 3b1f... --decrypt`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	showCmd.Flags().BoolVar(&showDecrypt, "decrypt", false, "decrypt the content")
	rootCmd.AddCommand(showCmd)
}

func runShow(_ *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	if _, err := requireUser(a); err != nil {
		return err
	}

	entry, err := a.Diary.Read(args[0])
	if err != nil {
		return err
	}
	if entry == nil {
		return fmt.Errorf("entry %q not found", args[0])
	}

	content := entry.Content
	if entry.IsEncrypted && showDecrypt {
		password, err := promptPassword("Password: ")
		if err != nil {
			return err
		}
		content, err = diary.OpenContent(entry.Content, password)
		if errors.Is(err, crypto.ErrDecryptionFailed) {
			return fmt.Errorf("decryption failed: wrong password or corrupted entry")
		}
		if err != nil {
			return err
		}
	}

	if jsonOutput {
		out := *entry
		out.Content = content
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(&out)
	}

	PrintKeyValue("ID", entry.ID)
	PrintKeyValue("Title", entry.Title)
	PrintKeyValue("Date", entry.Date)
	if len(entry.Tags) > 0 {
		PrintKeyValue("Tags", strings.Join(entry.Tags, ", "))
	}
	if len(entry.Categories) > 0 {
		PrintKeyValue("Categories", strings.Join(entry.Categories, ", "))
	}
	if entry.Mood != "" {
		PrintKeyValue("Mood", entry.Mood)
	}
	if entry.Weather != "" {
		PrintKeyValue("Weather", entry.Weather)
	}
	if entry.IsBookmarked {
		PrintKeyValue("Bookmarked", "yes")
	}
	PrintKeyValue("Created", entry.CreatedAt.Local().Format("2006-01-02 15:04"))
	PrintKeyValue("Updated", entry.UpdatedAt.Local().Format("2006-01-02 15:04"))

	fmt.Println()
	if entry.IsEncrypted && !showDecrypt {
		Warning("Content is encrypted; use --decrypt to read it")
	} else {
		fmt.Println(content)
	}
	return nil
}
