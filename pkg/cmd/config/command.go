package config

import (
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/birdayz/bs58/pkg/app"
	"github.com/birdayz/bs58/pkg/config"
)

// NewCommand returns the "bs58 config" command with subcommands.
func NewCommand(a *app.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Handle bs58 configuration",
		// Skip alphabet resolution so a broken selection can still be fixed.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a.SetIO(cmd)
			return a.InitConfig()
		},
	}

	cmd.AddCommand(
		newCurrentAlphabetCommand(a),
		newUseAlphabetCommand(a),
		newGetAlphabetsCommand(a),
		newAddAlphabetCommand(a),
		newRemoveAlphabetCommand(a),
		newSelectAlphabetCommand(a),
		newImportCommand(a),
	)

	return cmd
}

func newCurrentAlphabetCommand(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "current-alphabet",
		Short: "Displays the current alphabet",
		Args:  cobra.ExactArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(a.OutWriter, a.Cfg.Current())
		},
	}
}

func newUseAlphabetCommand(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:               "use-alphabet [NAME]",
		Short:             "Sets the current alphabet in the configuration",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: a.ValidConfigArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			if err := a.Cfg.SetCurrentAlphabet(name); err != nil {
				return fmt.Errorf("unable to switch to alphabet %v: %w", name, err)
			}
			fmt.Fprintf(a.OutWriter, "Switched to alphabet \"%v\".\n", name)
			return nil
		},
	}
}

func newGetAlphabetsCommand(a *app.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get-alphabets",
		Short: "Display built-in and configured alphabets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := app.NewTabWriter(a.OutWriter)
			if !a.NoHeaderFlag {
				fmt.Fprintf(w, "  NAME\tSYMBOLS\t\n")
			}
			current := a.Cfg.Current()
			for _, name := range a.Cfg.Names() {
				marker := "  "
				if name == current {
					marker = "* "
				}
				symbols := "<invalid>"
				if alphabet, err := alphabetByName(a, name); err == nil {
					symbols = alphabet
				}
				fmt.Fprintf(w, "%s%s\t%s\t\n", marker, name, symbols)
			}
			return w.Flush()
		},
	}
	a.AddNoHeadersFlag(cmd)
	return cmd
}

func alphabetByName(a *app.App, name string) (string, error) {
	cfg := a.Cfg
	cfg.AlphabetOverride = name
	alphabet, err := cfg.ActiveAlphabet()
	if err != nil {
		return "", err
	}
	return alphabet.String(), nil
}

func newAddAlphabetCommand(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:     "add-alphabet [NAME] [SYMBOLS]",
		Short:   "Add a custom alphabet of 58 distinct ASCII symbols",
		Example: "bs58 config add-alphabet reversed zyxwvutsrqponmkjihgfedcbaZYXWVUTSRQPNMLKJHGFEDCBA987654321",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.Cfg.AddAlphabet(args[0], args[1]); err != nil {
				return fmt.Errorf("could not add alphabet: %w", err)
			}
			if err := a.Cfg.Write(); err != nil {
				return fmt.Errorf("unable to write config: %w", err)
			}
			fmt.Fprintln(a.OutWriter, "Added alphabet.")
			return nil
		},
	}
}

func newRemoveAlphabetCommand(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:               "remove-alphabet [NAME]",
		Short:             "remove alphabet",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: a.ValidCustomAlphabetArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.Cfg.RemoveAlphabet(args[0]); err != nil {
				return fmt.Errorf("could not delete alphabet: %w", err)
			}
			if err := a.Cfg.Write(); err != nil {
				return fmt.Errorf("unable to write config: %w", err)
			}
			fmt.Fprintln(a.OutWriter, "Removed alphabet.")
			return nil
		},
	}
}

func newSelectAlphabetCommand(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "select-alphabet",
		Short: "Interactively select an alphabet",
		RunE: func(cmd *cobra.Command, args []string) error {
			names := a.Cfg.Names()
			pos := 0
			for k, name := range names {
				if name == a.Cfg.Current() {
					pos = k
				}
			}

			searcher := func(input string, index int) bool {
				name := strings.ReplaceAll(strings.ToLower(names[index]), " ", "")
				input = strings.ReplaceAll(strings.ToLower(input), " ", "")
				return strings.Contains(name, input)
			}

			p := promptui.Select{
				Label:     "Select alphabet",
				Items:     names,
				Searcher:  searcher,
				Size:      10,
				CursorPos: pos,
			}

			_, selected, err := p.Run()
			if err != nil {
				// User cancelled (e.g. Ctrl-C). Not an error.
				return nil
			}

			if err := a.Cfg.SetCurrentAlphabet(selected); err != nil {
				return fmt.Errorf("unable to switch to alphabet %v: %w", selected, err)
			}
			fmt.Fprintf(a.OutWriter, "Switched to alphabet \"%v\".\n", selected)
			return nil
		},
	}
}

func newImportCommand(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "import [FILE]",
		Short: "Import alphabets from a properties file into the $HOME/.bs58/config file",
		Long: `Import alphabets from a Java style properties file. Every key of the form
alphabet.<name> defines an alphabet. Without FILE, $HOME/.bs58/alphabets.properties is used.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var path string
			if len(args) == 1 {
				path = args[0]
			} else {
				var err error
				path, err = config.TryFindPropertiesFile()
				if err != nil {
					return fmt.Errorf("could not find alphabets file: %w", err)
				}
				fmt.Fprintf(a.OutWriter, "Detected alphabets in file %v\n", path)
			}

			alphabets, err := config.ParseAlphabetProperties(path)
			if err != nil {
				return fmt.Errorf("failed to parse alphabets file: %w", err)
			}

			added, err := a.Cfg.Import(alphabets)
			if err != nil {
				return fmt.Errorf("failed to import alphabets: %w", err)
			}
			if err = a.Cfg.Write(); err != nil {
				return fmt.Errorf("failed to write config: %w", err)
			}
			fmt.Fprintf(a.OutWriter, "Imported %d alphabets (%d new).\n", len(alphabets), added)
			return nil
		},
	}
}
