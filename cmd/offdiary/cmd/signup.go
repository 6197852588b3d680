package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tail1887/offline-diary/internal/store"
)

var signupCmd = &cobra.Command{
	Use:   "signup <username>",
	Short: "Create a new diary account",
	Long: `Create a new diary account.

You will be prompted for a password. The password also protects any
entries you choose to encrypt, so pick one you can remember: encrypted
content cannot be recovered without it.

Examples:
  offdiary signup alice`,
	Args: cobra.ExactArgs(1),
	RunE: runSignup,
}

func init() {
	rootCmd.AddCommand(signupCmd)
}

func runSignup(_ *cobra.Command, args []string) error {
	username := args[0]

	password, err := promptPasswordConfirm()
	if err != nil {
		return err
	}

	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	if _, err := a.Auth.CreateAccount(username, password); err != nil {
		if errors.Is(err, store.ErrDuplicateAccount) {
			return fmt.Errorf("username %q already exists", username)
		}
		return err
	}

	Success("Account %s created", Bold(username))
	fmt.Println("Log in with: offdiary login", username)
	return nil
}
