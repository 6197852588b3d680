package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var rmForce bool

var rmCmd = &cobra.Command{
	Use:     "rm <id>",
	Short:   "Delete a diary entry",
	Aliases: []string{"delete"},
	Args:    cobra.ExactArgs(1),
	RunE:    runRm,
}

func init() {
	rmCmd.Flags().BoolVarP(&rmForce, "force", "f", false, "skip the confirmation prompt")
	rootCmd.AddCommand(rmCmd)
}

func runRm(_ *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	if _, err := requireUser(a); err != nil {
		return err
	}

	if !rmForce && !PromptConfirm(fmt.Sprintf("Delete entry %s?", args[0])) {
		fmt.Println("Cancelled")
		return nil
	}

	removed, err := a.Diary.Delete(args[0])
	if err != nil {
		return err
	}
	if !removed {
		Warning("No entry with ID %s", args[0])
		return nil
	}

	Success("Entry %s deleted", Bold(args[0]))
	return nil
}
