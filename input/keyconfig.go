package input

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/fishgrid/config"
)

// Rune aliases for keys that can't be written as a bare character
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
}

// keyNames maps lower-cased tcell key names ("up", "esc", "ctrl-c") to keys
var keyNames = func() map[string]tcell.Key {
	m := make(map[string]tcell.Key, len(tcell.KeyNames))
	for k, name := range tcell.KeyNames {
		m[strings.ToLower(name)] = k
	}
	m["escape"] = tcell.KeyEscape
	for c := 'a'; c <= 'z'; c++ {
		m["ctrl-"+string(c)] = tcell.KeyCtrlA + tcell.Key(c-'a')
	}
	return m
}()

// KeyTable resolves key presses to intents
type KeyTable struct {
	Runes       map[rune]IntentType
	SpecialKeys map[tcell.Key]IntentType
}

// LoadKeyTable builds a table from configured bindings
// Returns error on an unknown key name or a key bound to two intents
func LoadKeyTable(keys config.Keys) (*KeyTable, error) {
	kt := &KeyTable{
		Runes:       make(map[rune]IntentType),
		SpecialKeys: make(map[tcell.Key]IntentType),
	}

	sections := []struct {
		name   string
		intent IntentType
		keys   []string
	}{
		{"up", IntentUp, keys.Up},
		{"down", IntentDown, keys.Down},
		{"left", IntentLeft, keys.Left},
		{"right", IntentRight, keys.Right},
		{"wait", IntentWait, keys.Wait},
		{"restart", IntentRestart, keys.Restart},
		{"quit", IntentQuit, keys.Quit},
	}

	for _, sec := range sections {
		for _, keyStr := range sec.keys {
			if err := kt.bind(keyStr, sec.intent); err != nil {
				return nil, fmt.Errorf("[keys] %s: %w", sec.name, err)
			}
		}
	}
	return kt, nil
}

func (kt *KeyTable) bind(keyStr string, intent IntentType) error {
	if r, ok := resolveRune(keyStr); ok {
		if prev, dup := kt.Runes[r]; dup && prev != intent {
			return fmt.Errorf("key %q already bound to %s", keyStr, prev)
		}
		kt.Runes[r] = intent
		return nil
	}

	k, ok := keyNames[strings.ToLower(keyStr)]
	if !ok {
		return fmt.Errorf("unknown key name: %q", keyStr)
	}
	if prev, dup := kt.SpecialKeys[k]; dup && prev != intent {
		return fmt.Errorf("key %q already bound to %s", keyStr, prev)
	}
	kt.SpecialKeys[k] = intent
	return nil
}

// resolveRune accepts single characters and named aliases
func resolveRune(s string) (rune, bool) {
	if r, ok := runeAliases[strings.ToLower(s)]; ok {
		return r, true
	}
	runes := []rune(s)
	if len(runes) == 1 {
		return runes[0], true
	}
	return 0, false
}
