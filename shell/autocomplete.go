package shell

import (
	"strings"

	"github.com/kballard/go-shellquote"
)

// ShellCompleter provides context-aware autocomplete for shell commands
type ShellCompleter struct{}

func NewShellCompleter() *ShellCompleter {
	return &ShellCompleter{}
}

// CommandMetadata holds autocomplete information for a command
type CommandMetadata struct {
	Options []string // Available options for this command (e.g., "-player")
	Args    []string // Possible argument values (for non-option arguments)
	// ArgPos is the argument slot Args apply to; the slots before it take
	// coordinates, which are not completed.
	ArgPos int
}

var playerValues = []string{"x", "o"}

var commandMetadata = map[string]CommandMetadata{
	"set":   {Args: []string{"x", "o", "empty"}, ArgPos: 1},
	"legal": {Args: playerValues, ArgPos: 1},
	"ray": {Args: []string{
		"up", "upright", "right", "downright", "down", "downleft", "left", "upleft",
	}, ArgPos: 1},
	"hash": {Options: []string{"-player"}},
	"help": {Args: []string{"coords", "discs", "directions"}},
}

// Common command names for command completion
var commandNames = []string{
	"help", "new", "empty", "show", "get", "set", "legal", "neighbours",
	"ray", "hash", "exit",
}

// Do implements the readline.AutoComplete interface
func (c *ShellCompleter) Do(line []rune, pos int) ([][]rune, int) {
	text := string(line[:pos])

	fields, err := shellquote.Split(text)
	if err != nil {
		// If we can't parse, fall back to simple space splitting
		fields = strings.Fields(text)
	}
	endsWithSpace := len(text) > 0 && text[len(text)-1] == ' '

	var prefix string
	var completions []string

	if len(fields) == 0 || (len(fields) == 1 && !endsWithSpace) {
		if len(fields) == 1 {
			prefix = fields[0]
		}
		completions = commandNames
	} else {
		cmdName := fields[0]
		if !endsWithSpace {
			prefix = fields[len(fields)-1]
		}

		var lastCompleteField string
		if endsWithSpace {
			lastCompleteField = fields[len(fields)-1]
		} else if len(fields) > 1 {
			lastCompleteField = fields[len(fields)-2]
		}

		if lastCompleteField == "-player" {
			completions = playerValues
		} else if metadata, exists := commandMetadata[cmdName]; exists {
			// complete arguments typed before the one being completed
			argIdx := len(fields) - 1
			if !endsWithSpace {
				argIdx--
			}
			if strings.HasPrefix(prefix, "-") || len(metadata.Args) == 0 {
				completions = metadata.Options
			} else if argIdx == metadata.ArgPos {
				completions = metadata.Args
			}
		}
	}

	var matches [][]rune
	for _, completion := range completions {
		if strings.HasPrefix(completion, prefix) {
			// Return only the part that needs to be added
			suffix := completion[len(prefix):]
			matches = append(matches, []rune(suffix))
		}
	}

	return matches, len(prefix)
}
