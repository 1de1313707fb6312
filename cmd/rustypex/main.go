// Package main provides the CLI entrypoint for rustypex.
package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/d3vboi/rustypex/internal/config"
	"github.com/d3vboi/rustypex/internal/model"
	"github.com/d3vboi/rustypex/internal/tui"
	"github.com/d3vboi/rustypex/internal/wordsource"
)

const (
	defaultWords    = 30
	defaultWordlist = "common"
)

var (
	testWords    int
	testFile     string
	testText     string
	testWordlist string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "rustypex",
		Short:         "Terminal typing speed test",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runTestCmd,
	}

	// Persistent so the word subcommand shares the source flags.
	rootCmd.PersistentFlags().IntVarP(&testWords, "words", "n", defaultWords, "words per test")
	rootCmd.PersistentFlags().StringVarP(&testFile, "file", "f", "", "path to a whitespace-delimited word file")
	rootCmd.PersistentFlags().StringVarP(&testText, "text", "t", "", "literal whitespace-delimited word string")
	rootCmd.PersistentFlags().StringVarP(&testWordlist, "wordlist", "w", defaultWordlist, "built-in word list (common, os)")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newWordCmd())

	return rootCmd
}

func runTestCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := mergedConfig(cmd)
	if err != nil {
		return err
	}
	if err := validateConfig(cfg); err != nil {
		return err
	}

	src, sourceName, err := buildSource(cfg)
	if err != nil {
		return err
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("rustypex requires an interactive terminal")
	}

	m, err := tui.NewModel(cfg, src, sourceName)
	if err != nil {
		return err
	}
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return m.Err()
}

func mergedConfig(cmd *cobra.Command) (model.Config, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return model.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	applyIntConfig(cmd, "words", &testWords, fileCfg.Test.Words)
	applyStringConfig(cmd, "file", &testFile, fileCfg.Test.File)
	applyStringConfig(cmd, "text", &testText, fileCfg.Test.Text)
	applyStringConfig(cmd, "wordlist", &testWordlist, fileCfg.Test.Wordlist)

	return model.Config{
		Words:    testWords,
		File:     testFile,
		Text:     testText,
		Wordlist: testWordlist,
	}, nil
}

func validateConfig(cfg model.Config) error {
	if cfg.Words <= 0 {
		return fmt.Errorf("--words must be > 0")
	}
	if cfg.File == "" && cfg.Text == "" {
		switch cfg.Wordlist {
		case "common", "os":
		default:
			return fmt.Errorf("unknown word list %q (available: common, os)", cfg.Wordlist)
		}
	}
	return nil
}

// buildSource selects the word origin: a file path wins over a literal
// string, which wins over a named built-in list.
func buildSource(cfg model.Config) (wordsource.Source, string, error) {
	switch {
	case cfg.File != "":
		src, err := wordsource.FromPath(cfg.File)
		return src, filepath.Base(cfg.File), err
	case cfg.Text != "":
		src, err := wordsource.FromString(cfg.Text)
		return src, "custom words", err
	case cfg.Wordlist == "os":
		src, err := wordsource.FromPath(wordsource.OSWordListPath)
		return src, "the OS word list", err
	default:
		src, err := wordsource.Builtin()
		return src, "common words", err
	}
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func newWordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "word",
		Short: "Print one random word from the configured source",
		Args:  cobra.NoArgs,
		RunE:  runWordCmd,
	}
}

func runWordCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := mergedConfig(cmd)
	if err != nil {
		return err
	}
	if err := validateConfig(cfg); err != nil {
		return err
	}
	src, _, err := buildSource(cfg)
	if err != nil {
		return err
	}
	word, err := src.NextWord()
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintln(cmd.OutOrStdout(), word); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# rustypex configuration
# Uncomment a value to enable it. CLI flags override config values.

[test]
# words = %d             # Words per test
# file = ""              # Path to a whitespace-delimited word file
# text = ""              # Literal whitespace-delimited word string
# wordlist = %q          # Built-in word list: common or os
`,
		defaultWords,
		defaultWordlist,
	)
}
