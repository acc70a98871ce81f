package base58

import (
	"errors"
	"fmt"
)

// ErrInvalidCharacter is matched by every error Decode returns for input
// containing a symbol outside the alphabet.
var ErrInvalidCharacter = errors.New("invalid base58 character")

// InvalidCharacterError reports the first character that is not part of the
// alphabet. Index is the byte offset into the input.
type InvalidCharacterError struct {
	Character rune
	Index     int
}

func (e *InvalidCharacterError) Error() string {
	return fmt.Sprintf("provided string contained invalid character %q at byte %d", e.Character, e.Index)
}

func (e *InvalidCharacterError) Is(target error) bool {
	return target == ErrInvalidCharacter
}
