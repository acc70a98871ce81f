package config

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/magiconair/properties"
	homedir "github.com/mitchellh/go-homedir"
)

const alphabetKeyPrefix = "alphabet."

// Default location probed by "config import" when no file is given.
var defaultPropertiesSubpath = filepath.Join(".bs58", "alphabets.properties")

func TryFindPropertiesFile() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", err
	}

	absoluteDefaultPath := filepath.Join(home, defaultPropertiesSubpath)

	_, err = os.Stat(absoluteDefaultPath)
	if err == nil {
		return absoluteDefaultPath, nil
	}
	return "", os.ErrNotExist
}

// ParseAlphabetProperties reads "alphabet.<name>=<symbols>" entries from a
// Java style properties file. Other keys are ignored. Entries are returned
// sorted by name.
func ParseAlphabetProperties(path string) ([]*Alphabet, error) {
	p, err := properties.LoadFile(path, properties.UTF8)
	if err != nil {
		return nil, err
	}

	var alphabets []*Alphabet
	for _, key := range p.Keys() {
		if !strings.HasPrefix(key, alphabetKeyPrefix) {
			continue
		}
		name := strings.TrimPrefix(key, alphabetKeyPrefix)
		if name == "" {
			continue
		}
		alphabets = append(alphabets, &Alphabet{
			Name:    name,
			Symbols: strings.TrimSpace(p.GetString(key, "")),
		})
	}
	if len(alphabets) == 0 {
		return nil, errors.New("no alphabet entries found")
	}
	sort.Slice(alphabets, func(i, j int) bool {
		return alphabets[i].Name < alphabets[j].Name
	})
	return alphabets, nil
}

// Import merges alphabets into the config. Existing custom entries with the
// same name are replaced; entries shadowing a built-in name are rejected.
// It returns the number of new entries.
func (c *Config) Import(alphabets []*Alphabet) (added int, err error) {
	for _, a := range alphabets {
		if existing := c.custom(a.Name); existing != nil {
			if err := validateSymbols(a.Symbols); err != nil {
				return added, err
			}
			existing.Symbols = a.Symbols
			continue
		}
		if err := c.AddAlphabet(a.Name, a.Symbols); err != nil {
			return added, err
		}
		added++
	}
	return added, nil
}
