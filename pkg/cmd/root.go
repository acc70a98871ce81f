package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/birdayz/bs58/pkg/app"
	"github.com/birdayz/bs58/pkg/cmd/completion"
	bs58config "github.com/birdayz/bs58/pkg/cmd/config"
	"github.com/birdayz/bs58/pkg/cmd/decode"
	"github.com/birdayz/bs58/pkg/cmd/encode"
)

// Execute is the single entry point for the CLI.
func Execute(version, commit string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return NewRootCommand(app.New(), version, commit).ExecuteContext(ctx)
}

// NewRootCommand builds the command tree around a.
func NewRootCommand(a *app.App, version, commit string) *cobra.Command {
	root := &cobra.Command{
		Use:          "bs58",
		Short:        "Encode and decode base58 strings",
		Version:      fmt.Sprintf("%s (%s)", version, commit),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a.SetIO(cmd)
			if err := a.InitConfig(); err != nil {
				return err
			}
			return a.ResolveAlphabet()
		},
	}

	root.PersistentFlags().StringVar(&a.CfgFile, "config", "", "config file (default is $HOME/.bs58/config)")
	root.PersistentFlags().StringVarP(&a.AlphabetOverride, "alphabet", "a", "", "set a temporary alphabet (bitcoin, ripple, flickr or a configured name)")
	root.PersistentFlags().BoolVarP(&a.Verbose, "verbose", "v", false, "Print details about what is happening to stderr")

	if err := root.RegisterFlagCompletionFunc("alphabet", a.ValidConfigArgs); err != nil {
		panic(fmt.Sprintf("Failed to register flag completion: %v", err))
	}

	root.AddCommand(
		encode.NewCommand(a),
		decode.NewCommand(a),
		bs58config.NewCommand(a),
		completion.NewCommand(root, a),
	)

	a.Root = root
	return root
}
