package input

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
)

// ErrUnknownKey is returned for a key name tcell does not define
var ErrUnknownKey = errors.New("input: unknown key name")

// Bindings lists key names per action, as written in the config file
type Bindings map[Action][]string

// DefaultBindings returns the stock layout
func DefaultBindings() Bindings {
	return Bindings{
		ActionLeft:    {"a", "Left"},
		ActionRight:   {"d", "Right"},
		ActionJetpack: {"w", "Up", " "},
		ActionFire:    {"f", "j", "Enter"},
		ActionPause:   {"p"},
		ActionDebug:   {"F1"},
		ActionMute:    {"m"},
		ActionQuit:    {"Esc", "Ctrl-C", "q"},
	}
}

// keysByName reverses tcell.KeyNames, lower-cased
var keysByName = func() map[string]tcell.Key {
	m := make(map[string]tcell.Key, len(tcell.KeyNames))
	for k, name := range tcell.KeyNames {
		m[strings.ToLower(name)] = k
	}
	m["space"] = tcell.KeyRune
	return m
}()

// KeyMap resolves tcell key events to actions
type KeyMap struct {
	keys  map[tcell.Key]Action
	runes map[rune]Action
}

// NewKeyMap builds a map from bindings, select actions are always on 1..3
func NewKeyMap(b Bindings) (*KeyMap, error) {
	km := &KeyMap{
		keys: make(map[tcell.Key]Action),
		runes: map[rune]Action{
			'1': ActionSelect1,
			'2': ActionSelect2,
			'3': ActionSelect3,
		},
	}
	for action, names := range b {
		for _, name := range names {
			if err := km.bind(action, name); err != nil {
				return nil, fmt.Errorf("%s: %w", action, err)
			}
		}
	}
	return km, nil
}

func (km *KeyMap) bind(a Action, name string) error {
	if utf8.RuneCountInString(name) == 1 {
		r, _ := utf8.DecodeRuneInString(name)
		km.runes[unicode.ToLower(r)] = a
		return nil
	}
	k, ok := keysByName[strings.ToLower(name)]
	if !ok {
		return fmt.Errorf("%w %q", ErrUnknownKey, name)
	}
	if k == tcell.KeyRune {
		km.runes[' '] = a
		return nil
	}
	km.keys[k] = a
	return nil
}

// Lookup returns the action bound to ev
func (km *KeyMap) Lookup(ev *tcell.EventKey) (Action, bool) {
	if ev.Key() == tcell.KeyRune {
		a, ok := km.runes[unicode.ToLower(ev.Rune())]
		return a, ok
	}
	a, ok := km.keys[ev.Key()]
	return a, ok
}
