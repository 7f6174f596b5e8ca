package shell

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"syscall"
	"unicode"

	"github.com/chzyer/readline"
	"github.com/kballard/go-shellquote"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/domino14/checkers/ai/player"
	"github.com/domino14/checkers/alphabeta"
	"github.com/domino14/checkers/automatic"
	"github.com/domino14/checkers/board"
	"github.com/domino14/checkers/cdp"
	"github.com/domino14/checkers/config"
	"github.com/domino14/checkers/equity"
	"github.com/domino14/checkers/game"
	"github.com/domino14/checkers/movegen"
)

//go:embed usage.txt
var usageText string

const histogramWidth = 50

var (
	errNoData            = errors.New("no data in line")
	errWrongOptionSyntax = errors.New("wrong format; all options need arguments")
)

type shellcmd struct {
	cmd     string
	args    []string
	options map[string]string
}

// extractFields splits a line into a command, its positional arguments and
// its -name value options. Quoting follows the shell.
func extractFields(line string) (*shellcmd, error) {
	fields, err := shellquote.Split(line)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, errNoData
	}
	var args []string
	options := map[string]string{}
	for i := 1; i < len(fields); i++ {
		f := fields[i]
		// -1,1,0,0,0 is a weight list, not an option.
		if len(f) > 1 && f[0] == '-' && unicode.IsLetter(rune(f[1])) {
			if i == len(fields)-1 {
				return nil, errWrongOptionSyntax
			}
			options[f[1:]] = fields[i+1]
			i++
			continue
		}
		args = append(args, f)
	}
	return &shellcmd{cmd: fields[0], args: args, options: options}, nil
}

type Response struct {
	message string
}

func Msg(message string) *Response {
	return &Response{message: message}
}

type ShellController struct {
	l      *readline.Instance
	out    io.Writer
	config *config.Config

	game   *game.Game
	engine *player.EnginePlayer
	autoAI bool
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func writeln(msg string, w io.Writer) {
	io.WriteString(w, msg)
	io.WriteString(w, "\n")
}

func (sc *ShellController) showMessage(msg string) {
	writeln(msg, sc.out)
}

func (sc *ShellController) showError(err error) {
	sc.showMessage("Error: " + err.Error())
}

func NewShellController(cfg *config.Config) (*ShellController, error) {
	l, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[31mcheckers>\033[0m ",
		HistoryFile:     cfg.GetString(config.ConfigHistoryFile),
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		return nil, err
	}
	sc, err := newController(cfg, l.Stderr())
	if err != nil {
		l.Close()
		return nil, err
	}
	sc.l = l
	return sc, nil
}

// newController builds everything but the readline instance.
func newController(cfg *config.Config, out io.Writer) (*ShellController, error) {
	w, err := cfg.Weights()
	if err != nil {
		return nil, err
	}
	sc := &ShellController{
		out:    out,
		config: cfg,
		engine: player.NewEnginePlayer(cfg.SearchDepth(), w, cfg.GetInt(config.ConfigThreads)),
	}
	sc.newGame(board.NewBoard(), board.Player1)
	return sc, nil
}

func (sc *ShellController) newGame(b board.Board, onturn board.Color) {
	g := game.NewFromBoard(b, onturn)
	g.SetMaxQuietPlies(sc.config.GetInt(config.ConfigMaxPliesWithoutProgress))
	sc.game = g
}

func (sc *ShellController) gameText() string {
	s := sc.game.ToDisplayText()
	switch sc.game.Status() {
	case game.Won:
		winner, _ := sc.game.Winner()
		s += fmt.Sprintf("Game over: %v wins\n", winner)
	case game.Drawn:
		s += "Game over: draw\n"
	}
	return s
}

func parseSide(s string) (board.Color, error) {
	switch s {
	case "1":
		return board.Player1, nil
	case "2":
		return board.Player2, nil
	}
	return board.NoColor, fmt.Errorf("side must be 1 or 2, got %q", s)
}

func sortedNames(layouts map[string]board.Layout) string {
	names := lo.Keys(layouts)
	sort.Strings(names)
	return strings.Join(names, ", ")
}

func (sc *ShellController) load(args []string) (*Response, error) {
	if len(args) == 0 {
		return nil, errors.New("load <cdp>")
	}
	pos, err := cdp.ParseCDP(strings.Join(args, " "))
	if err != nil {
		return nil, err
	}
	sc.newGame(pos.Board, pos.OnTurn)
	return Msg(sc.gameText()), nil
}

func (sc *ShellController) sample(args []string) (*Response, error) {
	if len(args) < 1 || len(args) > 2 {
		return nil, errors.New("sample <name> [1|2]")
	}
	l, ok := board.SampleLayouts[args[0]]
	if !ok {
		return nil, fmt.Errorf("no sample named %q; choose one of %s",
			args[0], sortedNames(board.SampleLayouts))
	}
	onturn := board.Player1
	if len(args) == 2 {
		var err error
		if onturn, err = parseSide(args[1]); err != nil {
			return nil, err
		}
	}
	sc.newGame(board.MustFromLayout(l), onturn)
	return Msg(sc.gameText()), nil
}

func (sc *ShellController) positions(args []string) (*Response, error) {
	var path, name string
	switch len(args) {
	case 1:
		path, name = sc.config.GetString(config.ConfigPositionsFile), args[0]
	case 2:
		path, name = args[0], args[1]
	default:
		return nil, errors.New("positions [file] <name>")
	}
	if path == "" {
		return nil, fmt.Errorf("no file given and %s is not set", config.ConfigPositionsFile)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	layouts, err := board.LoadLayouts(f)
	if err != nil {
		return nil, err
	}
	l, ok := layouts[name]
	if !ok {
		return nil, fmt.Errorf("%s has no position named %q; choose one of %s",
			path, name, sortedNames(layouts))
	}
	b, err := board.FromLayout(l)
	if err != nil {
		return nil, err
	}
	sc.newGame(b, board.Player1)
	return Msg(sc.gameText()), nil
}

func (sc *ShellController) selectSquare(ctx context.Context, args []string) (*Response, error) {
	if len(args) != 2 {
		return nil, errors.New("select <row> <col>")
	}
	row, err := strconv.Atoi(args[0])
	if err != nil {
		return nil, err
	}
	col, err := strconv.Atoi(args[1])
	if err != nil {
		return nil, err
	}
	if sc.game.Status() != game.Playing {
		return nil, game.ErrGameOver
	}
	turn := sc.game.Turn()
	selected := sc.game.Select(row, col)
	if sc.game.Turn() == turn {
		if !selected {
			return nil, fmt.Errorf("nothing for %v to select or move to at (%d,%d)",
				sc.game.PlayerOnTurn(), row, col)
		}
		return Msg(sc.gameText()), nil
	}

	var sb strings.Builder
	sb.WriteString(sc.gameText())
	if sc.autoAI && sc.game.Status() == game.Playing && sc.game.PlayerOnTurn() == board.Player2 {
		if err := sc.aiMove(ctx, sc.engine); err != nil {
			return nil, err
		}
		sb.WriteString("\nplayer2 replies:\n")
		sb.WriteString(sc.gameText())
	}
	return Msg(sb.String()), nil
}

func (sc *ShellController) aiMove(ctx context.Context, p player.Player) error {
	bd := sc.game.Board()
	onturn := sc.game.PlayerOnTurn()
	next, err := p.ChooseBoard(ctx, &bd, onturn)
	if err != nil {
		return err
	}
	log.Debug().Str("player", p.Name()).Str("onturn", onturn.String()).Msg("shell-ai-move")
	return sc.game.ApplyBoard(next)
}

func (sc *ShellController) aiplay(ctx context.Context, args []string) (*Response, error) {
	if sc.game.Status() != game.Playing {
		return nil, game.ErrGameOver
	}
	p := sc.engine
	if len(args) == 1 {
		depth, err := strconv.Atoi(args[0])
		if err != nil {
			return nil, err
		}
		p = player.NewEnginePlayer(depth, sc.engine.Solver().Weights(),
			sc.config.GetInt(config.ConfigThreads))
	} else if len(args) > 1 {
		return nil, errors.New("ai [depth]")
	}
	if err := sc.aiMove(ctx, p); err != nil {
		return nil, err
	}
	return Msg(sc.gameText()), nil
}

func (sc *ShellController) moves() (*Response, error) {
	bd := sc.game.Board()
	onturn := sc.game.PlayerOnTurn()
	moves := movegen.GenerateMoves(&bd, onturn)
	if len(moves) == 0 {
		return Msg(fmt.Sprintf("%v has no legal moves", onturn)), nil
	}
	w := sc.engine.Solver().Weights()
	var sb strings.Builder
	fmt.Fprintf(&sb, "%-4s%-20s%-28s%s\n", "#", "Piece", "Destination", "Eval")
	for i := range moves {
		m := &moves[i]
		fmt.Fprintf(&sb, "%-4d%-20v%-28v%.2f\n", i+1, m.Piece, m.Destination,
			equity.Evaluate(&m.Result, w))
	}
	return Msg(sb.String()), nil
}

func (sc *ShellController) eval() (*Response, error) {
	bd := sc.game.Board()
	w := sc.engine.Solver().Weights()
	f1 := equity.Count(&bd, board.Player1)
	f2 := equity.Count(&bd, board.Player2)
	var sb strings.Builder
	fmt.Fprintf(&sb, "%-15s%9s%9s%9s\n", "Feature", "player1", "player2", "weight")
	for _, row := range []struct {
		name   string
		p1, p2 int
		weight float64
	}{
		{"pieces", f1.Pieces, f2.Pieces, w.Pieces},
		{"kings", f1.Kings, f2.Kings, w.Kings},
		{"moves", f1.Moves, f2.Moves, w.Moves},
		{"opportunities", f1.Opportunities, f2.Opportunities, w.Opportunities},
		{"king-hopefuls", f1.KingHopefuls, f2.KingHopefuls, w.KingHopefuls},
	} {
		fmt.Fprintf(&sb, "%-15s%9d%9d%9.2f\n", row.name, row.p1, row.p2, row.weight)
	}
	fmt.Fprintf(&sb, "Evaluation (player 2 perspective): %.2f\n", equity.Evaluate(&bd, w))
	return Msg(sb.String()), nil
}

func parseOnOff(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "on":
		return true, nil
	case "off":
		return false, nil
	}
	return strconv.ParseBool(s)
}

func (sc *ShellController) set(args []string) (*Response, error) {
	if len(args) != 2 {
		return nil, errors.New("set depth|weights|autoai <value>")
	}
	switch args[0] {
	case "depth":
		depth, err := strconv.Atoi(args[1])
		if err != nil {
			return nil, err
		}
		if depth < 0 {
			return nil, alphabeta.ErrBadDepth
		}
		sc.engine.Solver().SetDepth(depth)
		sc.config.Set(config.ConfigSearchDepth, depth)
	case "weights":
		w, err := equity.ParseWeights(args[1])
		if err != nil {
			return nil, err
		}
		sc.engine.Solver().SetWeights(w)
		sc.config.Set(config.ConfigWeights, w.String())
	case "autoai":
		on, err := parseOnOff(args[1])
		if err != nil {
			return nil, err
		}
		sc.autoAI = on
	default:
		return nil, fmt.Errorf("cannot set %q", args[0])
	}
	return Msg(fmt.Sprintf("%s set to %s", args[0], args[1])), nil
}

func (sc *ShellController) playerByName(name string) (player.Player, error) {
	s := sc.engine.Solver()
	switch name {
	case "engine":
		return player.NewEnginePlayer(s.Depth(), s.Weights(), sc.config.GetInt(config.ConfigThreads)), nil
	case "greedy":
		return &player.GreedyPlayer{Weights: s.Weights()}, nil
	case "random":
		return &player.RandomPlayer{}, nil
	}
	return nil, fmt.Errorf("unknown player %q; choose engine, greedy or random", name)
}

func (sc *ShellController) autoplay(ctx context.Context, cmd *shellcmd) (*Response, error) {
	numGames := sc.config.GetInt(config.ConfigAutoplayGames)
	if len(cmd.args) > 0 {
		var err error
		if numGames, err = strconv.Atoi(cmd.args[0]); err != nil {
			return nil, err
		}
	}
	if numGames < 1 {
		return nil, errors.New("autoplay needs at least one game")
	}
	var players [2]player.Player
	for i, key := range []string{"p1", "p2"} {
		name := lo.ValueOr(cmd.options, key, "engine")
		p, err := sc.playerByName(name)
		if err != nil {
			return nil, err
		}
		players[i] = p
	}
	logfile := lo.ValueOr(cmd.options, "file", sc.config.GetString(config.ConfigAutoplayLogfile))
	f, err := os.Create(logfile)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := automatic.NewGameRunner(players[0], players[1])
	r.SetOpeningRandomPlies(sc.config.GetInt(config.ConfigOpeningRandomPlies))
	r.SetMaxQuietPlies(sc.config.GetInt(config.ConfigMaxPliesWithoutProgress))
	log.Info().Int("games", numGames).Str("p1", players[0].Name()).
		Str("p2", players[1].Name()).Str("logfile", logfile).Msg("autoplay-start")

	summary, err := automatic.CompVsComp(ctx, r, numGames, f)
	if err != nil {
		return nil, err
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s vs %s\n", players[0].Name(), players[1].Name())
	sb.WriteString(summary.String())
	if err := summary.Histogram(&sb, histogramWidth); err != nil {
		return nil, err
	}
	fmt.Fprintf(&sb, "Game log written to %s\n", logfile)
	return Msg(sb.String()), nil
}

func (sc *ShellController) handle(ctx context.Context, line string) (*Response, error) {
	cmd, err := extractFields(line)
	if err == errNoData {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	switch cmd.cmd {
	case "new", "n":
		sc.newGame(board.NewBoard(), board.Player1)
		return Msg(sc.gameText()), nil
	case "load":
		return sc.load(cmd.args)
	case "sample":
		return sc.sample(cmd.args)
	case "positions":
		return sc.positions(cmd.args)
	case "show", "s":
		return Msg(sc.gameText()), nil
	case "select", "sel":
		return sc.selectSquare(ctx, cmd.args)
	case "moves", "gen":
		return sc.moves()
	case "ai":
		return sc.aiplay(ctx, cmd.args)
	case "eval":
		return sc.eval()
	case "set":
		return sc.set(cmd.args)
	case "cdp":
		bd := sc.game.Board()
		return Msg(cdp.ToCDP(&bd, sc.game.PlayerOnTurn())), nil
	case "autoplay":
		return sc.autoplay(ctx, cmd)
	case "help":
		return Msg(usageText), nil
	default:
		msg := fmt.Sprintf("command %v not found", strconv.Quote(cmd.cmd))
		log.Info().Msg(msg)
		return nil, errors.New(msg)
	}
}

func (sc *ShellController) Loop(sig chan os.Signal) {

	defer sc.l.Close()
	ctx := context.Background()
	sc.showMessage(sc.gameText())

	for {
		line, err := sc.l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				sig <- syscall.SIGINT
				break
			} else {
				continue
			}
		} else if err == io.EOF {
			sig <- syscall.SIGINT
			break
		}
		line = strings.TrimSpace(line)

		if line == "exit" || line == "bye" {
			sig <- syscall.SIGINT
			break
		}
		resp, err := sc.handle(ctx, line)
		if err != nil {
			sc.showError(err)
		} else if resp != nil {
			sc.showMessage(resp.message)
		}
	}
	log.Debug().Msgf("Exiting readline loop...")
}
