package complete

import (
	"strings"

	"github.com/lcolorado/bresenham/internal/core"
)

// Shell formats completions for, and registers them with, a single shell.
type Shell interface {
	Name() string
	Register() string
	Complete([]core.KeyVal) string
}

var shells = map[string]Shell{
	"bash": Bash{},
	"fish": Fish{},
	"zsh":  Zsh{},
}

// GetShell returns the shell matching the provided name, or nil.
func GetShell(name string) Shell {
	return shells[name]
}

// Bash completes one candidate per line. Candidates that are a complete
// word get a trailing space, as the script disables automatic spaces so
// that directories and "--flag=" can be extended.
type Bash struct{}

func (Bash) Name() string { return "bash" }

func (Bash) Register() string {
	return `_bresenham() {
  local IFS=$'\n'
  COMPREPLY=($(bresenham --complete=bash -- "${COMP_WORDS[@]:0:COMP_CWORD+1}"))
}
complete -o nosort -o nospace -F _bresenham bresenham`
}

func (Bash) Complete(vals []core.KeyVal) string {
	var sb strings.Builder
	for _, kv := range vals {
		sb.WriteString(kv.Key)
		if !strings.HasSuffix(kv.Key, "/") && !strings.HasSuffix(kv.Key, "=") {
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Fish completes "candidate<TAB>description" lines. File completion is off
// since radii are never files; config paths are listed by bresenham.
type Fish struct{}

func (Fish) Name() string { return "fish" }

func (Fish) Register() string {
	return `function __bresenham_complete
    bresenham --complete=fish -- (commandline --current-process --tokens-expanded --cut-at-cursor) (commandline --cut-at-cursor --current-token)
end
complete --command bresenham --no-files --keep-order --arguments '(__bresenham_complete)'`
}

func (Fish) Complete(vals []core.KeyVal) string {
	var sb strings.Builder
	for _, kv := range vals {
		sb.WriteString(kv.Key)
		if kv.Val != "" {
			sb.WriteByte('\t')
			sb.WriteString(kv.Val)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Zsh completes "candidate:description" lines for _describe, with colons
// in the candidate escaped.
type Zsh struct{}

func (Zsh) Name() string { return "zsh" }

func (Zsh) Register() string {
	return `_bresenham() {
  local out
  local -a candidates
  out=$(bresenham --complete=zsh -- "${words[@]:0:$CURRENT}")
  [[ -n $out ]] || return 1
  candidates=("${(@f)out}")
  _describe -t bresenham 'bresenham' candidates -S ''
}
compdef _bresenham bresenham`
}

func (Zsh) Complete(vals []core.KeyVal) string {
	lines := make([]string, 0, len(vals))
	for _, kv := range vals {
		line := strings.ReplaceAll(kv.Key, ":", `\:`)
		if kv.Val != "" {
			line += ":" + kv.Val
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
