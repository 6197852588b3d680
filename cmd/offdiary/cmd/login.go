package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tail1887/offline-diary/internal/auth"
	"github.com/tail1887/offline-diary/internal/store"
)

var loginCmd = &cobra.Command{
	Use:   "login <username>",
	Short: "Log in to your diary",
	Args:  cobra.ExactArgs(1),
	RunE:  runLogin,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out of your diary",
	Args:  cobra.NoArgs,
	RunE:  runLogout,
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the logged-in username",
	Args:  cobra.NoArgs,
	RunE:  runWhoami,
}

func init() {
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
}

func runLogin(_ *cobra.Command, args []string) error {
	username := args[0]

	password, err := promptPassword("Enter password: ")
	if err != nil {
		return err
	}

	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	if _, err := a.Auth.Login(username, password); err != nil {
		switch {
		case errors.Is(err, store.ErrAccountNotFound):
			return fmt.Errorf("user %q not found", username)
		case errors.Is(err, auth.ErrInvalidCredential):
			return fmt.Errorf("incorrect password")
		default:
			return err
		}
	}

	if err := rememberLogin(a, username); err != nil {
		return err
	}

	Success("Logged in as %s", Bold(username))
	return nil
}

func runLogout(_ *cobra.Command, _ []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	a.Auth.Logout()
	if err := forgetLogin(a); err != nil {
		return err
	}

	Success("Logged out")
	return nil
}

func runWhoami(_ *cobra.Command, _ []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	username, err := requireUser(a)
	if err != nil {
		return err
	}

	fmt.Println(username)
	return nil
}
