package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"conflictview/internal/git"
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Start an interactive conflictview shell",
	Long:  "Launch an interactive shell for running conflictview commands without repeating the 'conflictview' prefix",
	Run: func(cmd *cobra.Command, args []string) {
		runInteractiveShell()
	},
}

func init() {
	rootCmd.AddCommand(shellCmd)
}

func runInteractiveShell() {
	line := liner.NewLiner()
	defer line.Close()

	line.SetCtrlCAborts(true)

	// Load command history
	historyFile := getHistoryFilePath()
	if f, err := os.Open(historyFile); err == nil {
		line.ReadHistory(f)
		f.Close()
	}

	// Setup tab completion for command names
	line.SetCompleter(func(line string) (c []string) {
		commands := getCommandNames()
		for _, cmd := range commands {
			if strings.HasPrefix(cmd, strings.ToLower(line)) {
				c = append(c, cmd)
			}
		}
		return
	})

	fmt.Println("conflictview interactive shell. Type 'exit' or press Ctrl+D to quit.")
	fmt.Println("Type 'help' to see available commands.")

	for {
		// Show how many conflicted files remain in the prompt
		prompt := "conflictview> "
		repo := git.New(".")
		if repo.IsRepo() {
			if files, err := repo.ConflictedFiles(); err == nil {
				prompt = fmt.Sprintf("[%d conflicted]> ", len(files))
			}
		}

		input, err := line.Prompt(prompt)

		if err != nil {
			// EOF or error (Ctrl+D)
			fmt.Println()
			break
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		// Add to history
		line.AppendHistory(input)

		// Handle special shell commands
		if handleSpecialCommand(input) {
			continue
		}

		// Handle help command separately to avoid initialization cycle
		if strings.ToLower(input) == "help" {
			rootCmd.Help()
			continue
		}

		// Execute the command through Cobra
		executeCommand(input)
	}

	// Save history on exit
	if f, err := os.Create(historyFile); err == nil {
		line.WriteHistory(f)
		f.Close()
	}
}

func handleSpecialCommand(input string) bool {
	switch strings.ToLower(input) {
	case "exit", "quit":
		fmt.Println("Goodbye!")
		os.Exit(0)
		return true
	case "clear", "cls":
		fmt.Print("\033[H\033[2J")
		return true
	}
	return false
}

func executeCommand(input string) {
	// Parse input into command and args
	parts := parseCommandLine(input)
	if len(parts) == 0 {
		return
	}

	// Reset rootCmd args and execute
	rootCmd.SetArgs(parts)

	// Errors must not exit the shell
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}

	// Reset args for next command
	rootCmd.SetArgs([]string{})
}

func parseCommandLine(input string) []string {
	// Simple parsing - split on spaces but respect quotes
	var parts []string
	var current strings.Builder
	inQuotes := false
	quoteChar := rune(0)

	for _, char := range input {
		switch {
		case (char == '"' || char == '\'') && !inQuotes:
			inQuotes = true
			quoteChar = char
		case char == quoteChar && inQuotes:
			inQuotes = false
			quoteChar = 0
		case char == ' ' && !inQuotes:
			if current.Len() > 0 {
				parts = append(parts, current.String())
				current.Reset()
			}
		default:
			current.WriteRune(char)
		}
	}

	if current.Len() > 0 {
		parts = append(parts, current.String())
	}

	return parts
}

func getCommandNames() []string {
	var names []string
	for _, cmd := range rootCmd.Commands() {
		if cmd.Name() == "shell" {
			continue
		}
		names = append(names, cmd.Name())
	}
	return names
}

func getHistoryFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".conflictview_history"
	}
	return filepath.Join(homeDir, ".conflictview_history")
}
