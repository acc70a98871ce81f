package decode

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/birdayz/bs58/pkg/app"
)

// NewCommand returns the "bs58 decode" command.
func NewCommand(a *app.App) *cobra.Command {
	var (
		outputFormat  = app.OutputFormatDefault
		decodeMsgPack bool
	)

	cmd := &cobra.Command{
		Use:   "decode [INPUT]",
		Short: "Decode a base58 string",
		Long:  "Decode the base58 string INPUT into bytes. INPUT is taken from the argument, the INPUT environment variable, or stdin when it is \"-\".",
		Example: `  bs58 decode JxF12TrwUP45BMd
  bs58 decode --output hex 112
  echo JxF12TrwUP45BMd | bs58 decode - --output raw
  bs58 decode --decode-msgpack --output json "$PACKED"`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := a.ReadInput(args, true)
			if err != nil {
				return err
			}

			decoded, err := a.Alphabet.Decode(in)
			if err != nil {
				a.Debugf("%v\n", err)
				return app.ErrBS58
			}

			var value any
			if decodeMsgPack {
				if outputFormat != app.OutputFormatDefault && outputFormat != app.OutputFormatJSON {
					return fmt.Errorf("--decode-msgpack only works with --output default or json")
				}
				value, err = app.DecodeMsgPack(decoded)
				if err != nil {
					return err
				}
			}

			return a.PrintDecoded(outputFormat, in, decoded, value)
		},
	}

	cmd.Flags().Var(&outputFormat, "output", "Set output format: default, raw (decoded bytes only), hex, json")
	cmd.Flags().BoolVar(&decodeMsgPack, "decode-msgpack", false, "Enable deserializing msgpack")

	if err := cmd.RegisterFlagCompletionFunc("output", app.CompleteOutputFormat); err != nil {
		panic(fmt.Sprintf("Failed to register flag completion: %v", err))
	}

	return cmd
}
