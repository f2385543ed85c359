package input

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"github.com/pelletier/go-toml"
)

var (
	ErrUnknownAction = errors.New("keymap: unknown action")
	ErrUnknownKey    = errors.New("keymap: unknown key name")
)

// Rune aliases for keys that can't be bare single-char TOML keys
var runeAliases = map[string]rune{
	"space": ' ',
}

// keyByName indexes tcell's key names case-insensitively
var keyByName = func() map[string]tcell.Key {
	m := make(map[string]tcell.Key, len(tcell.KeyNames))
	for k, name := range tcell.KeyNames {
		m[strings.ToLower(name)] = k
	}
	return m
}()

// LoadKeyConfig parses TOML keymap data into a sparse override KeyTable.
//
//	[runes]
//	j = "steer_left"
//	[keys]
//	Up = "restart"
func LoadKeyConfig(data []byte) (*KeyTable, error) {
	tree, err := toml.LoadBytes(data)
	if err != nil {
		return nil, fmt.Errorf("keymap parse: %w", err)
	}

	kt := &KeyTable{
		SpecialKeys: make(map[tcell.Key]IntentType),
		Runes:       make(map[rune]IntentType),
	}

	if runes, ok := tree.Get("runes").(*toml.Tree); ok {
		for _, name := range runes.Keys() {
			it, err := actionOf(runes, name)
			if err != nil {
				return nil, err
			}
			r, ok := runeAliases[name]
			if !ok {
				if utf8.RuneCountInString(name) != 1 {
					return nil, fmt.Errorf("runes.%s: %w", name, ErrUnknownKey)
				}
				r, _ = utf8.DecodeRuneInString(name)
			}
			kt.Runes[r] = it
		}
	}

	if keys, ok := tree.Get("keys").(*toml.Tree); ok {
		for _, name := range keys.Keys() {
			it, err := actionOf(keys, name)
			if err != nil {
				return nil, err
			}
			k, ok := keyByName[strings.ToLower(name)]
			if !ok {
				return nil, fmt.Errorf("keys.%s: %w", name, ErrUnknownKey)
			}
			kt.SpecialKeys[k] = it
		}
	}

	return kt, nil
}

// LoadKeyFile reads a keymap file and merges it over the defaults
func LoadKeyFile(path string) (*KeyTable, error) {
	kt := DefaultKeyTable()
	if path == "" {
		return kt, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read keymap %s: %w", path, err)
	}
	override, err := LoadKeyConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	kt.Merge(override)
	return kt, nil
}

func actionOf(section *toml.Tree, key string) (IntentType, error) {
	name, ok := section.GetPath([]string{key}).(string)
	if !ok {
		return IntentNone, fmt.Errorf("%s: action must be a string: %w", key, ErrUnknownAction)
	}
	it, ok := ActionByName(name)
	if !ok {
		return IntentNone, fmt.Errorf("%s = %q: %w", key, name, ErrUnknownAction)
	}
	return it, nil
}
