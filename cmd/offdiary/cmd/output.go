package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

var (
	successColor = color.New(color.FgGreen)
	warningColor = color.New(color.FgYellow)
	boldColor    = color.New(color.Bold)
	dimColor     = color.New(color.Faint)
)

// Success prints a success message in green.
func Success(format string, a ...any) {
	successColor.Fprintf(os.Stdout, "✓ "+format+"\n", a...)
}

// Warning prints a warning message in yellow.
func Warning(format string, a ...any) {
	warningColor.Fprintf(os.Stdout, "⚠ "+format+"\n", a...)
}

// Bold prints text in bold.
func Bold(format string, a ...any) string {
	return boldColor.Sprintf(format, a...)
}

// Dim prints text in dim/faint style.
func Dim(format string, a ...any) string {
	return dimColor.Sprintf(format, a...)
}

// PromptConfirm asks for user confirmation and returns true if confirmed.
func PromptConfirm(message string) bool {
	fmt.Printf("%s [y/N]: ", message)

	var response string
	if _, err := fmt.Scanln(&response); err != nil {
		return false
	}
	return response == "y" || response == "Y" || response == "yes" || response == "Yes"
}

// PrintKeyValue prints a key-value pair with the key highlighted.
func PrintKeyValue(key, value string) {
	fmt.Printf("%s: %s\n", boldColor.Sprint(key), value)
}
