// Package base58 converts between byte slices and base58 strings.
package base58

import "unicode/utf8"

// Encode encodes input with the BTC alphabet.
func Encode(input []byte) string {
	return BTC.Encode(input)
}

// Decode decodes input with the BTC alphabet.
func Decode(input string) ([]byte, error) {
	return BTC.Decode(input)
}

// Encode treats input as a big-endian number and writes it in base 58. Each
// leading zero byte becomes one zero-symbol.
func (a *Alphabet) Encode(input []byte) string {
	zeros := 0
	for zeros < len(input) && input[zeros] == 0 {
		zeros++
	}

	// Little-endian base 58 digits. log(256)/log(58) is just under 1.38.
	digits := make([]byte, 0, (len(input)-zeros)*138/100+1)
	for _, b := range input[zeros:] {
		carry := uint32(b)
		for i := range digits {
			carry += uint32(digits[i]) << 8
			digits[i] = byte(carry % 58)
			carry /= 58
		}
		for carry > 0 {
			digits = append(digits, byte(carry%58))
			carry /= 58
		}
	}

	out := make([]byte, zeros+len(digits))
	for i := 0; i < zeros; i++ {
		out[i] = a.encode[0]
	}
	for i, d := range digits {
		out[len(out)-1-i] = a.encode[d]
	}
	return string(out)
}

// Decode is the inverse of Encode. It fails with an *InvalidCharacterError
// on the first symbol not in the alphabet and returns no partial result.
func (a *Alphabet) Decode(input string) ([]byte, error) {
	zeros := 0
	for zeros < len(input) && input[zeros] == a.encode[0] {
		zeros++
	}

	// Little-endian base 256 bytes. log(58)/log(256) is just under 0.733.
	buf := make([]byte, 0, (len(input)-zeros)*733/1000+1)
	for i := zeros; i < len(input); i++ {
		d := a.decode[input[i]]
		if d < 0 {
			r, _ := utf8.DecodeRuneInString(input[i:])
			return nil, &InvalidCharacterError{Character: r, Index: i}
		}
		carry := uint32(d)
		for j := range buf {
			carry += uint32(buf[j]) * 58
			buf[j] = byte(carry)
			carry >>= 8
		}
		for carry > 0 {
			buf = append(buf, byte(carry))
			carry >>= 8
		}
	}

	out := make([]byte, zeros+len(buf))
	for i, b := range buf {
		out[len(out)-1-i] = b
	}
	return out, nil
}
