package presenter

import (
	"strings"

	"github.com/soocke/patch-cropper-go/domain/session"
)

// Keymap resolves Tk keysyms to session commands.
type Keymap map[string]session.Command

// NewKeymap builds a keymap from per-command keysym lists. Later lists win on conflicts.
func NewKeymap(next, prev, save, quit []string) Keymap {
	k := make(Keymap)
	add := func(keys []string, cmd session.Command) {
		for _, key := range keys {
			if key = strings.TrimSpace(key); key != "" {
				k[key] = cmd
			}
		}
	}
	add(next, session.CmdNext)
	add(prev, session.CmdPrev)
	add(save, session.CmdSave)
	add(quit, session.CmdQuit)
	return k
}

// Lookup returns the command bound to keysym, falling back to its lower-case
// form so Caps Lock does not disable single-letter bindings.
func (k Keymap) Lookup(keysym string) session.Command {
	if cmd, ok := k[keysym]; ok {
		return cmd
	}
	if cmd, ok := k[strings.ToLower(keysym)]; ok {
		return cmd
	}
	return session.CmdNone
}
