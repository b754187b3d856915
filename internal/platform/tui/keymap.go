package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
)

// KeyMapper translates Bubble Tea key messages to gameplay actions
// using the configured bindings. Platform keys (quit, mute) are
// matched separately through MatchKeyMap.
type KeyMapper struct {
	byKey map[string]core.Action
}

// NewKeyMapper builds a key mapper from the configured bindings.
func NewKeyMapper(b config.BindingsConfig) *KeyMapper {
	km := &KeyMapper{byKey: make(map[string]core.Action)}
	km.bind(b.LeftUp, core.ActionLeftUp)
	km.bind(b.LeftDown, core.ActionLeftDown)
	km.bind(b.RightUp, core.ActionRightUp)
	km.bind(b.RightDown, core.ActionRightDown)
	km.bind(b.Pause, core.ActionPause)
	km.bind(b.Restart, core.ActionRestart)
	return km
}

func (km *KeyMapper) bind(keys []string, action core.Action) {
	for _, k := range keys {
		km.byKey[normalizeKey(k)] = action
	}
}

// MapKey translates a key message to a gameplay action.
// Returns ActionNone for unbound keys.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) core.Action {
	if action, ok := km.byKey[msg.String()]; ok {
		return action
	}
	return core.ActionNone
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns the mapped action.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) core.Action {
	action := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return action
}

// normalizeKey converts config aliases to Bubble Tea key strings.
func normalizeKey(k string) string {
	if k == "space" {
		return " "
	}
	return k
}

// helpLabel renders a binding list for the help bar.
func helpLabel(keys []string) string {
	return strings.Join(keys, "/")
}

// MatchKeyMap defines the key bindings shown in the help bar and the
// platform-level keys matched outside the gameplay input frame.
type MatchKeyMap struct {
	LeftUp    key.Binding
	LeftDown  key.Binding
	RightUp   key.Binding
	RightDown key.Binding
	Pause     key.Binding
	Restart   key.Binding
	Mute      key.Binding
	Quit      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k MatchKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.LeftUp, k.LeftDown, k.RightUp, k.RightDown, k.Pause, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k MatchKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.LeftUp, k.LeftDown, k.RightUp, k.RightDown},
		{k.Pause, k.Restart, k.Mute, k.Quit},
	}
}

// NewMatchKeyMap builds the key map from the configured bindings.
func NewMatchKeyMap(b config.BindingsConfig) MatchKeyMap {
	return MatchKeyMap{
		LeftUp: key.NewBinding(
			key.WithKeys(normalizeKeys(b.LeftUp)...),
			key.WithHelp(helpLabel(b.LeftUp), "left up"),
		),
		LeftDown: key.NewBinding(
			key.WithKeys(normalizeKeys(b.LeftDown)...),
			key.WithHelp(helpLabel(b.LeftDown), "left down"),
		),
		RightUp: key.NewBinding(
			key.WithKeys(normalizeKeys(b.RightUp)...),
			key.WithHelp(helpLabel(b.RightUp), "right up"),
		),
		RightDown: key.NewBinding(
			key.WithKeys(normalizeKeys(b.RightDown)...),
			key.WithHelp(helpLabel(b.RightDown), "right down"),
		),
		Pause: key.NewBinding(
			key.WithKeys(normalizeKeys(b.Pause)...),
			key.WithHelp(helpLabel(b.Pause), "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys(normalizeKeys(b.Restart)...),
			key.WithHelp(helpLabel(b.Restart), "restart"),
		),
		Mute: key.NewBinding(
			key.WithKeys(normalizeKeys(b.Mute)...),
			key.WithHelp(helpLabel(b.Mute), "mute"),
		),
		Quit: key.NewBinding(
			key.WithKeys(normalizeKeys(b.Quit)...),
			key.WithHelp(helpLabel(b.Quit), "quit"),
		),
	}
}

func normalizeKeys(keys []string) []string {
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = normalizeKey(k)
	}
	return out
}
