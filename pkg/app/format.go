package app

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

// OutputFormat controls how results are printed.
type OutputFormat string

const (
	OutputFormatDefault OutputFormat = "default"
	OutputFormatRaw     OutputFormat = "raw"
	OutputFormatHex     OutputFormat = "hex"
	OutputFormatJSON    OutputFormat = "json"
)

func (e *OutputFormat) String() string {
	return string(*e)
}

func (e *OutputFormat) Set(v string) error {
	switch v {
	case "default", "raw", "hex", "json":
		*e = OutputFormat(v)
		return nil
	default:
		return fmt.Errorf("must be one of: default, raw, hex, json")
	}
}

func (e *OutputFormat) Type() string {
	return "OutputFormat"
}

// CompleteOutputFormat provides shell completion for --output.
func CompleteOutputFormat(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return []string{"default", "raw", "hex", "json"}, cobra.ShellCompDirectiveNoFileComp
}

// InputFormat controls how the encode input is turned into bytes.
type InputFormat string

const (
	InputFormatDefault InputFormat = "default"
	InputFormatHex     InputFormat = "hex"
)

func (e *InputFormat) String() string {
	return string(*e)
}

func (e *InputFormat) Set(v string) error {
	switch v {
	case "default", "hex":
		*e = InputFormat(v)
		return nil
	default:
		return fmt.Errorf("must be one of: default, hex")
	}
}

func (e *InputFormat) Type() string {
	return "InputFormat"
}

// CompleteInputFormat provides shell completion for --input.
func CompleteInputFormat(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return []string{"default", "hex"}, cobra.ShellCompDirectiveNoFileComp
}

// FormatBytes renders b as a bracketed list of decimal values, e.g. [0, 0, 1].
func FormatBytes(b []byte) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range b {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.Itoa(int(v)))
	}
	sb.WriteByte(']')
	return sb.String()
}
