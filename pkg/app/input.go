package app

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

// InputEnv is consulted when no positional input is given.
const InputEnv = "INPUT"

// StdinArg makes the commands read their input from stdin.
const StdinArg = "-"

var ErrNoInput = errors.New("no input given: pass it as an argument or set " + InputEnv)

// ReadInput resolves the command input from args, the INPUT environment
// variable or stdin, in that order. Stdin is only read for "-". With trim set,
// surrounding whitespace of stdin input is dropped.
func (a *App) ReadInput(args []string, trim bool) (string, error) {
	var in string
	if len(args) > 0 {
		in = args[0]
	} else {
		v, ok := os.LookupEnv(InputEnv)
		if !ok {
			return "", ErrNoInput
		}
		a.Debugf("read input from $%s\n", InputEnv)
		in = v
	}

	if in != StdinArg {
		return in, nil
	}

	b, err := io.ReadAll(a.InReader)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	a.Debugf("read %d bytes from stdin\n", len(b))
	if trim {
		return strings.TrimSpace(string(b)), nil
	}
	return string(b), nil
}

// RenderTemplate executes in as a Go template with the sprig functions.
func RenderTemplate(in string) (string, error) {
	tpl, err := template.New("bs58").Funcs(sprig.HermeticTxtFuncMap()).Parse(in)
	if err != nil {
		return "", fmt.Errorf("failed to parse go template: %v", err)
	}

	buf := bytes.NewBuffer(nil)
	if err := tpl.Execute(buf, nil); err != nil {
		return "", fmt.Errorf("failed to execute go template: %v", err)
	}
	return buf.String(), nil
}

// ParseInput converts the textual input into the bytes to encode.
func ParseInput(format InputFormat, in string) ([]byte, error) {
	switch format {
	case InputFormatHex:
		b, err := hex.DecodeString(strings.TrimSpace(in))
		if err != nil {
			return nil, fmt.Errorf("invalid hex input: %w", err)
		}
		return b, nil
	default:
		return []byte(in), nil
	}
}
