// Package shell is an interactive shell over the board's query surface.
// It reads and writes single cells and answers neighbour, ray and legality
// questions. It does not run a game: turns and flips belong to whatever
// drives the board.
package shell

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"syscall"

	"github.com/chzyer/readline"
	"github.com/kballard/go-shellquote"
	"github.com/rs/zerolog/log"

	"github.com/domino14/othello/board"
	"github.com/domino14/othello/config"
	"github.com/domino14/othello/zobrist"
)

var (
	errNoData            = errors.New("no data in this line")
	errWrongOptionSyntax = errors.New("wrong format; all options need arguments")
	errExit              = errors.New("exit requested")
)

type ShellController struct {
	l   *readline.Instance
	cfg *config.Config

	board   board.Board
	zobrist *zobrist.Zobrist
}

type shellcmd struct {
	cmd     string
	args    []string
	options CmdOptions
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

// NewShellController builds a shell with the default board loaded.
func NewShellController(cfg *config.Config) (*ShellController, error) {
	sc, err := newController(cfg)
	if err != nil {
		return nil, err
	}
	prompt := "othello> "
	if cfg.GetBool(config.ConfigColor) {
		prompt = "\033[32mothello>\033[0m "
	}
	l, err := readline.NewEx(&readline.Config{
		Prompt:          prompt,
		HistoryFile:     cfg.GetString(config.ConfigHistoryFile),
		AutoComplete:    NewShellCompleter(),
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		return nil, err
	}
	sc.l = l
	return sc, nil
}

// newController sets up everything except the terminal.
func newController(cfg *config.Config) (*ShellController, error) {
	z := &zobrist.Zobrist{}
	seed, ok, err := cfg.ZobristSeed()
	if err != nil {
		return nil, err
	}
	if ok {
		z.InitializeWithSeed(seed)
	} else {
		z.Initialize()
	}
	return &ShellController{cfg: cfg, board: board.Default(), zobrist: z}, nil
}

func extractFields(line string) (*shellcmd, error) {
	fields, err := shellquote.Split(line)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, errNoData
	}
	cmd := fields[0]
	var args []string
	options := CmdOptions{}
	for idx := 1; idx < len(fields); idx++ {
		if strings.HasPrefix(fields[idx], "-") {
			if idx == len(fields)-1 {
				return nil, errWrongOptionSyntax
			}
			key := fields[idx][1:]
			options[key] = append(options[key], fields[idx+1])
			idx++
			continue
		}
		args = append(args, fields[idx])
	}
	return &shellcmd{cmd: cmd, args: args, options: options}, nil
}

func (sc *ShellController) showMessage(w io.Writer, msg string) {
	io.WriteString(w, msg)
	io.WriteString(w, "\n")
}

func (sc *ShellController) showError(w io.Writer, err error) {
	sc.showMessage(w, "Error: "+err.Error())
}

// ProcessCommand runs one line and returns its response.
func (sc *ShellController) ProcessCommand(line string) (*Response, error) {
	cmd, err := extractFields(line)
	if err != nil {
		return nil, err
	}
	handler, ok := commands[cmd.cmd]
	if !ok {
		return nil, fmt.Errorf("command %v not found", cmd.cmd)
	}
	log.Debug().Str("cmd", cmd.cmd).Strs("args", cmd.args).Msg("processing command")
	return handler(sc, cmd)
}

// Execute runs a single line of commands, as given on the command line,
// then signals for shutdown.
func (sc *ShellController) Execute(sig chan os.Signal, line string) {
	sc.executeLine(os.Stdout, os.Stderr, sig, line)
}

// executeLine reports whether the shell should keep reading.
func (sc *ShellController) executeLine(out, errOut io.Writer, sig chan os.Signal, line string) bool {
	resp, err := sc.ProcessCommand(line)
	switch {
	case errors.Is(err, errExit):
		sig <- syscall.SIGINT
		return false
	case errors.Is(err, errNoData):
	case err != nil:
		sc.showError(errOut, err)
	case resp != nil && resp.message != "":
		sc.showMessage(out, resp.message)
	}
	return true
}

// Loop reads commands until the user exits.
func (sc *ShellController) Loop(sig chan os.Signal) {
	defer sc.l.Close()

	for {
		line, err := sc.l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				sig <- syscall.SIGINT
				break
			}
			continue
		} else if err == io.EOF {
			sig <- syscall.SIGINT
			break
		}
		if !sc.executeLine(sc.l.Stdout(), sc.l.Stderr(), sig, strings.TrimSpace(line)) {
			break
		}
	}
	log.Debug().Msgf("Exiting readline loop...")
}

func (sc *ShellController) Cleanup() {
	log.Debug().Msg("cleaning up shell")
}
