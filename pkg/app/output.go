package app

import (
	"encoding/hex"
	"fmt"
	"strconv"

	"github.com/vmihailenco/msgpack/v5"
)

// EncodeResult is printed for encode --output json.
type EncodeResult struct {
	Input   string `json:"input"`
	Encoded string `json:"encoded"`
}

// DecodeResult is printed for decode --output json.
type DecodeResult struct {
	Input   string `json:"input"`
	Decoded []int  `json:"decoded"`
	Hex     string `json:"hex"`
	MsgPack any    `json:"msgpack,omitempty"`
}

// PrintEncoded writes the result of an encode.
func (a *App) PrintEncoded(format OutputFormat, input, encoded string) error {
	switch format {
	case OutputFormatRaw:
		fmt.Fprintln(a.OutWriter, encoded)
	case OutputFormatJSON:
		return a.writeJSON(EncodeResult{Input: input, Encoded: encoded})
	case OutputFormatHex:
		return fmt.Errorf("output format %v is not supported by encode", format)
	default:
		fmt.Fprintf(a.OutWriter, "%s encoded to %s\n", encoded, strconv.Quote(input))
	}
	return nil
}

// PrintDecoded writes the result of a decode. msgpackValue is only set when
// --decode-msgpack was given.
func (a *App) PrintDecoded(format OutputFormat, input string, decoded []byte, msgpackValue any) error {
	switch format {
	case OutputFormatRaw:
		_, err := a.OutWriter.Write(decoded)
		return err
	case OutputFormatHex:
		fmt.Fprintln(a.OutWriter, hex.EncodeToString(decoded))
	case OutputFormatJSON:
		ints := make([]int, len(decoded))
		for i, b := range decoded {
			ints[i] = int(b)
		}
		return a.writeJSON(DecodeResult{
			Input:   input,
			Decoded: ints,
			Hex:     hex.EncodeToString(decoded),
			MsgPack: msgpackValue,
		})
	default:
		if msgpackValue != nil {
			b, err := a.JSONFmt.Marshal(msgpackValue)
			if err != nil {
				return fmt.Errorf("could not format msgpack data: %w", err)
			}
			fmt.Fprintf(a.OutWriter, "%s decoded to %s\n", input, b)
			return nil
		}
		fmt.Fprintf(a.OutWriter, "%s decoded to %s\n", input, FormatBytes(decoded))
	}
	return nil
}

// DecodeMsgPack unpacks data as a single MessagePack value.
func DecodeMsgPack(data []byte) (any, error) {
	var obj any
	if err := msgpack.Unmarshal(data, &obj); err != nil {
		return nil, fmt.Errorf("could not decode msgpack data: %w", err)
	}
	return obj, nil
}

func (a *App) writeJSON(v any) error {
	b, err := a.JSONFmt.Marshal(v)
	if err != nil {
		return fmt.Errorf("could not encode JSON data: %w", err)
	}
	_, _ = a.ColorableOut.Write(b)
	fmt.Fprintln(a.ColorableOut)
	return nil
}
