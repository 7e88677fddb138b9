package shell

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/domino14/othello/board"
)

type Response struct {
	message string
}

type CmdOptions map[string][]string

func (c CmdOptions) String(key string) string {
	v := c[key]
	if len(v) > 0 {
		return v[0]
	}
	return ""
}

func msg(message string) *Response {
	return &Response{message: message}
}

type handlerFunc func(sc *ShellController, cmd *shellcmd) (*Response, error)

var commands map[string]handlerFunc

func init() {
	commands = map[string]handlerFunc{
		"help":       (*ShellController).help,
		"new":        (*ShellController).newBoard,
		"empty":      (*ShellController).emptyBoard,
		"show":       (*ShellController).show,
		"get":        (*ShellController).get,
		"set":        (*ShellController).set,
		"legal":      (*ShellController).legal,
		"neighbours": (*ShellController).neighbours,
		"ray":        (*ShellController).ray,
		"hash":       (*ShellController).hash,
		"exit":       (*ShellController).exit,
	}
}

func positionArg(cmd *shellcmd, idx int) (board.Position, error) {
	if len(cmd.args) <= idx {
		return 0, fmt.Errorf("%s: missing coordinates", cmd.cmd)
	}
	return board.ParsePosition(cmd.args[idx])
}

func (sc *ShellController) help(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) == 0 {
		return msg(usage()), nil
	}
	return msg(usageTopic(cmd.args[0])), nil
}

func (sc *ShellController) newBoard(cmd *shellcmd) (*Response, error) {
	sc.board = board.Default()
	return msg(sc.board.ToDisplayText()), nil
}

func (sc *ShellController) emptyBoard(cmd *shellcmd) (*Response, error) {
	sc.board = board.EmptyBoard()
	return msg(sc.board.ToDisplayText()), nil
}

func (sc *ShellController) show(cmd *shellcmd) (*Response, error) {
	return msg(sc.board.ToDisplayText()), nil
}

func (sc *ShellController) get(cmd *shellcmd) (*Response, error) {
	p, err := positionArg(cmd, 0)
	if err != nil {
		return nil, err
	}
	return msg(fmt.Sprintf("%v: %v", p, sc.board.GetPiece(p))), nil
}

func (sc *ShellController) set(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) != 2 {
		return nil, errors.New("usage: set <coords> <disc>")
	}
	p, err := positionArg(cmd, 0)
	if err != nil {
		return nil, err
	}
	d, err := board.ParseDisc(cmd.args[1])
	if err != nil {
		return nil, err
	}
	old := sc.board.GetPiece(p)
	sc.board.SetPiece(p, d)
	log.Debug().Stringer("pos", p).Stringer("old", old).Stringer("new", d).Msg("set piece")
	return msg(sc.board.ToDisplayText()), nil
}

func (sc *ShellController) legal(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) != 2 {
		return nil, errors.New("usage: legal <coords> <player>")
	}
	p, err := positionArg(cmd, 0)
	if err != nil {
		return nil, err
	}
	player, err := board.ParsePlayer(cmd.args[1])
	if err != nil {
		return nil, err
	}
	if sc.board.IsLegalMove(p, player) {
		return msg(fmt.Sprintf("%v is legal for %v", p, player)), nil
	}
	return msg(fmt.Sprintf("%v is not legal for %v", p, player)), nil
}

func (sc *ShellController) neighbours(cmd *shellcmd) (*Response, error) {
	p, err := positionArg(cmd, 0)
	if err != nil {
		return nil, err
	}
	n := board.NewNeighbours(&sc.board, p)
	var nbs []board.Neighbour
	for nb := range n.All() {
		nbs = append(nbs, nb)
	}
	lines := lo.Map(nbs, func(nb board.Neighbour, _ int) string {
		return fmt.Sprintf("  %-3v %-10v %v", nb.Pos, nb.Dir, nb.Disc)
	})
	return msg(fmt.Sprintf("%v (%v), %d neighbours:\n%s",
		p, n.Placement(), len(nbs), strings.Join(lines, "\n"))), nil
}

func (sc *ShellController) ray(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) != 2 {
		return nil, errors.New("usage: ray <coords> <direction>")
	}
	p, err := positionArg(cmd, 0)
	if err != nil {
		return nil, err
	}
	dir, err := board.ParseDirection(cmd.args[1])
	if err != nil {
		return nil, err
	}
	var cells []string
	for rp, d := range board.NewStrider(&sc.board, p, dir).All() {
		cells = append(cells, fmt.Sprintf("%v=%c", rp, d.DisplayRune()))
	}
	if len(cells) == 0 {
		return msg(fmt.Sprintf("%v %v: at the edge", p, dir)), nil
	}
	return msg(fmt.Sprintf("%v %v: %s", p, dir, strings.Join(cells, " "))), nil
}

func (sc *ShellController) hash(cmd *shellcmd) (*Response, error) {
	toMove := board.Player1
	if s := cmd.options.String("player"); s != "" {
		p, err := board.ParsePlayer(s)
		if err != nil {
			return nil, err
		}
		toMove = p
	}
	h := sc.zobrist.Hash(&sc.board, toMove)
	return msg(strconv.FormatUint(h, 16)), nil
}

func (sc *ShellController) exit(cmd *shellcmd) (*Response, error) {
	return nil, errExit
}
