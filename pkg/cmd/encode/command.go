package encode

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/birdayz/bs58/pkg/app"
)

// NewCommand returns the "bs58 encode" command.
func NewCommand(a *app.App) *cobra.Command {
	var (
		inputFormat  = app.InputFormatDefault
		outputFormat = app.OutputFormatDefault
		templateFlag bool
	)

	cmd := &cobra.Command{
		Use:   "encode [INPUT]",
		Short: "Encode input as base58",
		Long:  "Encode the bytes of INPUT as base58. INPUT is taken from the argument, the INPUT environment variable, or stdin when it is \"-\".",
		Example: `  bs58 encode "Hello World"
  bs58 encode --input hex 000001
  INPUT="Hello World" bs58 encode
  cat key.bin | bs58 encode - --output raw
  bs58 encode --template '{{ "user-" | repeat 2 }}{{ add 40 2 }}'`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := a.ReadInput(args, false)
			if err != nil {
				return err
			}

			if templateFlag {
				in, err = app.RenderTemplate(in)
				if err != nil {
					return err
				}
			}

			data, err := app.ParseInput(inputFormat, in)
			if err != nil {
				return err
			}
			a.Debugf("encoding %d bytes\n", len(data))

			return a.PrintEncoded(outputFormat, in, a.Alphabet.Encode(data))
		},
	}

	cmd.Flags().Var(&inputFormat, "input", "Set input format: default (text), hex")
	cmd.Flags().Var(&outputFormat, "output", "Set output format: default, raw (encoded string only), json")
	cmd.Flags().BoolVar(&templateFlag, "template", false, "run input through go template engine")

	if err := cmd.RegisterFlagCompletionFunc("input", app.CompleteInputFormat); err != nil {
		panic(fmt.Sprintf("Failed to register flag completion: %v", err))
	}
	if err := cmd.RegisterFlagCompletionFunc("output", app.CompleteOutputFormat); err != nil {
		panic(fmt.Sprintf("Failed to register flag completion: %v", err))
	}

	return cmd
}
