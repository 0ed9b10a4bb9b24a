package ssh

import (
	"os"
	"strings"
	"sync"
)

// DefaultTerm is used when the client sends no TERM or an unknown one.
const DefaultTerm = "xterm-256color"

// allowedTerms lists the client terminal types passed through to terminfo.
// Anything else falls back to DefaultTerm.
var allowedTerms = map[string]bool{
	"xterm":                 true,
	"xterm-256color":        true,
	"screen":                true,
	"screen-256color":       true,
	"tmux":                  true,
	"tmux-256color":         true,
	"linux":                 true,
	"vt100":                 true,
	"rxvt-unicode":          true,
	"rxvt-unicode-256color": true,
	"alacritty":             true,
}

// TermFromEnviron picks the terminal type from a session environment.
func TermFromEnviron(environ []string) string {
	for _, kv := range environ {
		if v, ok := strings.CutPrefix(kv, "TERM="); ok {
			if allowedTerms[v] {
				return v
			}
			return DefaultTerm
		}
	}
	return DefaultTerm
}

// termMu serialises the $TERM swap around screen construction, since many
// sessions may connect at once.
var termMu sync.Mutex

func lookupTerm() (string, bool) { return os.LookupEnv("TERM") }

func setTerm(term string) { _ = os.Setenv("TERM", term) }

func restoreTerm(prev string, had bool) {
	if had {
		_ = os.Setenv("TERM", prev)
		return
	}
	_ = os.Unsetenv("TERM")
}
