package app

import (
	"errors"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/hokaccha/go-prettyjson"
	"github.com/mattn/go-colorable"
	"github.com/spf13/cobra"

	"github.com/birdayz/bs58/pkg/base58"
	"github.com/birdayz/bs58/pkg/config"
)

// ErrBS58 is what the CLI reports for any codec failure. The detailed cause
// is only shown with --verbose.
var ErrBS58 = errors.New("bs58 error")

// App holds all shared mutable state for the CLI. It is created once per
// invocation and threaded into every command package.
type App struct {
	// I/O
	OutWriter    io.Writer
	ErrWriter    io.Writer
	InReader     io.Reader
	ColorableOut io.Writer

	// Config state
	Cfg              config.Config
	CfgFile          string
	AlphabetOverride string
	Alphabet         *base58.Alphabet

	// Display
	JSONFmt      *prettyjson.Formatter
	NoHeaderFlag bool
	Verbose      bool

	// Root command reference (for completion generation)
	Root *cobra.Command
}

// New creates an App with sane defaults.
func New() *App {
	return &App{
		OutWriter:    os.Stdout,
		ErrWriter:    os.Stderr,
		InReader:     os.Stdin,
		ColorableOut: colorable.NewColorableStdout(),
		JSONFmt:      prettyjson.NewFormatter(),
		Alphabet:     base58.BTC,
	}
}

// SetIO points the writers at the command's streams. Called by
// PersistentPreRunE so tests can capture output with SetOut/SetErr.
func (a *App) SetIO(cmd *cobra.Command) {
	a.OutWriter = cmd.OutOrStdout()
	a.ErrWriter = cmd.ErrOrStderr()
	a.InReader = cmd.InOrStdin()

	if a.OutWriter != os.Stdout {
		a.ColorableOut = a.OutWriter
		a.JSONFmt.DisabledColor = true
	}
}

// InitConfig reads the config file.
func (a *App) InitConfig() error {
	var err error
	a.Cfg, err = config.ReadConfig(a.CfgFile)
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	a.Cfg.AlphabetOverride = a.AlphabetOverride
	return nil
}

// ResolveAlphabet picks the alphabet used by encode and decode.
func (a *App) ResolveAlphabet() error {
	var err error
	a.Alphabet, err = a.Cfg.ActiveAlphabet()
	if err != nil {
		return err
	}
	a.Debugf("using alphabet %q (%s)\n", a.Cfg.Current(), a.Alphabet)
	return nil
}

// Debugf writes to ErrWriter when --verbose is set.
func (a *App) Debugf(format string, args ...any) {
	if !a.Verbose {
		return
	}
	fmt.Fprintf(a.ErrWriter, format, args...)
}

// AddNoHeadersFlag installs --no-headers on cmd.
func (a *App) AddNoHeadersFlag(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&a.NoHeaderFlag, "no-headers", false, "Hide table headers")
}

// ValidConfigArgs provides shell completion for alphabet names.
func (a *App) ValidConfigArgs(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return a.Cfg.Names(), cobra.ShellCompDirectiveNoFileComp
}

// ValidCustomAlphabetArgs completes only alphabets stored in the config file.
func (a *App) ValidCustomAlphabetArgs(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	names := make([]string, 0, len(a.Cfg.Alphabets))
	for _, alphabet := range a.Cfg.Alphabets {
		names = append(names, alphabet.Name)
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}

const (
	TabwriterMinWidth = 6
	TabwriterWidth    = 4
	TabwriterPadding  = 3
	TabwriterPadChar  = ' '
	TabwriterFlags    = 0
)

// NewTabWriter creates a standard tabwriter for CLI output.
func NewTabWriter(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, TabwriterMinWidth, TabwriterWidth, TabwriterPadding, TabwriterPadChar, TabwriterFlags)
}
