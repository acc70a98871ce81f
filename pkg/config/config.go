package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	homedir "github.com/mitchellh/go-homedir"
	yaml "gopkg.in/yaml.v3"

	"github.com/birdayz/bs58/pkg/base58"
)

// Alphabet is a user-defined set of 58 symbols stored in the config file.
type Alphabet struct {
	Name    string `yaml:"name"`
	Symbols string `yaml:"symbols"`
}

type Config struct {
	CurrentAlphabet  string      `yaml:"current-alphabet"`
	AlphabetOverride string      `yaml:"-"`
	Alphabets        []*Alphabet `yaml:"alphabets"`
	// configPath is the file path used for reading and writing this config.
	configPath string `yaml:"-"`
}

// HasAlphabet reports whether name refers to a built-in or configured alphabet.
func (c *Config) HasAlphabet(name string) bool {
	if _, ok := base58.AlphabetByName(name); ok {
		return true
	}
	return c.custom(name) != nil
}

func (c *Config) custom(name string) *Alphabet {
	for _, a := range c.Alphabets {
		if a.Name == name {
			return a
		}
	}
	return nil
}

// Names lists built-in alphabets followed by configured ones.
func (c *Config) Names() []string {
	names := base58.AlphabetNames()
	for _, a := range c.Alphabets {
		names = append(names, a.Name)
	}
	return names
}

// Current returns the name of the alphabet in use, honoring the override.
func (c *Config) Current() string {
	if c.AlphabetOverride != "" {
		return c.AlphabetOverride
	}
	if c.CurrentAlphabet != "" {
		return c.CurrentAlphabet
	}
	return base58.DefaultAlphabetName
}

func (c *Config) SetCurrentAlphabet(name string) error {
	if !c.HasAlphabet(name) {
		return fmt.Errorf("could not find alphabet with name %v", name)
	}
	old := c.CurrentAlphabet
	c.CurrentAlphabet = name
	if err := c.Write(); err != nil {
		// "Revert" change to the config struct, either
		// everything is successful or nothing.
		c.CurrentAlphabet = old
		return err
	}
	return nil
}

// ActiveAlphabet resolves Current to a usable alphabet.
func (c *Config) ActiveAlphabet() (*base58.Alphabet, error) {
	name := c.Current()
	if a, ok := base58.AlphabetByName(name); ok {
		return a, nil
	}
	custom := c.custom(name)
	if custom == nil {
		return nil, fmt.Errorf("could not find alphabet with name %v", name)
	}
	a, err := base58.NewAlphabet(custom.Symbols)
	if err != nil {
		return nil, fmt.Errorf("alphabet %v: %w", name, err)
	}
	return a, nil
}

// AddAlphabet validates symbols and appends a new entry. It does not write
// the config.
func (c *Config) AddAlphabet(name, symbols string) error {
	if name == "" {
		return fmt.Errorf("alphabet name must not be empty")
	}
	if c.HasAlphabet(name) {
		return fmt.Errorf("alphabet with name '%v' exists already", name)
	}
	if err := validateSymbols(symbols); err != nil {
		return err
	}
	c.Alphabets = append(c.Alphabets, &Alphabet{Name: name, Symbols: symbols})
	return nil
}

// RemoveAlphabet deletes a configured alphabet. Built-ins can't be removed.
// If the removed alphabet was current, the selection is cleared.
func (c *Config) RemoveAlphabet(name string) error {
	pos := -1
	for i, a := range c.Alphabets {
		if a.Name == name {
			pos = i
			break
		}
	}
	if pos == -1 {
		return fmt.Errorf("alphabet with name '%v' does not exist", name)
	}
	c.Alphabets = append(c.Alphabets[:pos], c.Alphabets[pos+1:]...)
	if c.CurrentAlphabet == name {
		c.CurrentAlphabet = ""
	}
	return nil
}

func validateSymbols(symbols string) error {
	_, err := base58.NewAlphabet(symbols)
	return err
}

func (c *Config) Write() error {
	configPath := c.configPath
	if configPath == "" {
		var err error
		configPath, err = getDefaultConfigPath()
		if err != nil {
			return err
		}
	}
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	tmpFile, err := os.CreateTemp(configDir, "config.*.tmp")
	if err != nil {
		return fmt.Errorf("create temp config file: %w", err)
	}
	tmpPath := tmpFile.Name()

	encoder := yaml.NewEncoder(tmpFile)
	if err := encoder.Encode(c); err != nil {
		tmpFile.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("encode config: %w", err)
	}
	if err := encoder.Close(); err != nil {
		tmpFile.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("encode config: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("close temp config file: %w", err)
	}
	if err := os.Chmod(tmpPath, 0600); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("chmod temp config file: %w", err)
	}
	if err := os.Rename(tmpPath, configPath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("rename temp config file: %w", err)
	}
	return nil
}

// Path returns the file this config is read from and written to.
func (c *Config) Path() string {
	return c.configPath
}

func ReadConfig(cfgPath string) (c Config, err error) {
	resolvedPath, err := resolveConfigPath(cfgPath)
	if err != nil {
		return Config{}, err
	}

	file, err := os.OpenFile(resolvedPath, os.O_RDONLY, 0644)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{configPath: resolvedPath}, nil
		}
		return Config{}, fmt.Errorf("open config file: %w", err)
	}
	defer file.Close()
	decoder := yaml.NewDecoder(file)
	err = decoder.Decode(&c)
	if err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	c.configPath = resolvedPath
	return c, nil
}

func fileExists(filename string) bool {
	info, err := os.Stat(filename)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

func resolveConfigPath(cfgPath string) (string, error) {
	if cfgPath == "" {
		return getDefaultConfigPath()
	}
	if !fileExists(cfgPath) {
		return "", fmt.Errorf("config file %q does not exist", cfgPath)
	}
	return cfgPath, nil
}

func getDefaultConfigPath() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}

	return filepath.Join(home, ".bs58", "config"), nil
}
