package base58

import (
	"errors"
	"fmt"
	"sort"
)

var (
	ErrAlphabetLength    = errors.New("base58 alphabets must be 58 bytes long")
	ErrAlphabetNonASCII  = errors.New("base58 alphabets must be ASCII")
	ErrAlphabetDuplicate = errors.New("base58 alphabets must not repeat a symbol")
)

// Alphabet maps digit values 0-57 to symbols and back. The first symbol is
// the zero-symbol used for leading zero bytes.
type Alphabet struct {
	encode [58]byte
	decode [256]int8
}

// NewAlphabet creates an alphabet from a string of exactly 58 distinct ASCII
// characters.
func NewAlphabet(s string) (*Alphabet, error) {
	if len(s) != 58 {
		return nil, fmt.Errorf("%w: got %d", ErrAlphabetLength, len(s))
	}
	a := new(Alphabet)
	for i := range a.decode {
		a.decode[i] = -1
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 0x80 {
			return nil, fmt.Errorf("%w: byte 0x%02x at index %d", ErrAlphabetNonASCII, c, i)
		}
		if a.decode[c] != -1 {
			return nil, fmt.Errorf("%w: %q", ErrAlphabetDuplicate, c)
		}
		a.encode[i] = c
		a.decode[c] = int8(i)
	}
	return a, nil
}

func mustAlphabet(s string) *Alphabet {
	a, err := NewAlphabet(s)
	if err != nil {
		panic(err)
	}
	return a
}

// String returns the 58 symbols in digit order.
func (a *Alphabet) String() string {
	return string(a.encode[:])
}

var (
	// BTC is the alphabet used by Bitcoin addresses, IPFS and Solana keys.
	BTC = mustAlphabet("123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz")
	// Ripple is the alphabet used by Ripple addresses.
	Ripple = mustAlphabet("rpshnaf39wBUDNEGHJKLM4PQRST7VWXYZ2bcdeCg65jkm8oFqi1tuvAxyz")
	// Flickr is the alphabet used by Flickr short URLs.
	Flickr = mustAlphabet("123456789abcdefghijkmnopqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ")
)

var builtin = map[string]*Alphabet{
	"bitcoin": BTC,
	"ripple":  Ripple,
	"flickr":  Flickr,
}

// DefaultAlphabetName names the alphabet used when nothing else is selected.
const DefaultAlphabetName = "bitcoin"

// AlphabetByName looks up a built-in alphabet.
func AlphabetByName(name string) (*Alphabet, bool) {
	a, ok := builtin[name]
	return a, ok
}

// AlphabetNames returns the names of the built-in alphabets, sorted.
func AlphabetNames() []string {
	names := make([]string, 0, len(builtin))
	for name := range builtin {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
