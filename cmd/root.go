package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/marcus/popup/internal/workdir"
)

var (
	version string
	baseDir string
)

// SetVersion sets the version string
func SetVersion(v string) {
	version = v
}

var rootCmd = &cobra.Command{
	Use:   "popup",
	Short: "Modal dialogs for Bubble Tea programs",
	Long: `popup - alert, confirm, prompt and remove dialogs for terminal UIs.

Run 'popup demo' for an interactive item list that exercises every dialog.`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if name := firstNonFlagArg(os.Args[1:]); name != "" && !isCommand(name) {
			fmt.Fprintf(os.Stderr, "Run 'popup --help' for the list of commands.\n")
		}
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initBaseDir)
}

func initBaseDir() {
	cwd, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot determine working directory: %v\n", err)
		os.Exit(1)
	}
	baseDir = workdir.ResolveBaseDir(cwd)
}

// getBaseDir returns the project root holding .popup/
func getBaseDir() string {
	return baseDir
}

// firstNonFlagArg returns the first argument that is not a flag.
func firstNonFlagArg(args []string) string {
	for _, a := range args {
		if !strings.HasPrefix(a, "-") {
			return a
		}
	}
	return ""
}

func isCommand(name string) bool {
	for _, c := range rootCmd.Commands() {
		if c.Name() == name || c.HasAlias(name) {
			return true
		}
	}
	return false
}
