package cli

import (
	"bufio"
	"errors"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/message"

	"github.com/mcoot/linea/internal/dependencies/clock"
	"github.com/mcoot/linea/internal/i18n"
	"github.com/mcoot/linea/internal/model"
	"github.com/mcoot/linea/internal/services/game"
)

func newPlayCmd() *cobra.Command {
	var moves []int

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a game, reading columns from --moves or stdin",
		Long: `Play a game between Red and Blue. Red moves first and colors alternate.

Each move is a column index. Moves are taken from --moves when given,
otherwise one column per line is read from standard input until the game
ends or the input is exhausted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			gameCfg, err := cfg.GameConfig()
			if err != nil {
				return err
			}

			g, err := game.New(gameCfg, clock.New(), logger)
			if err != nil {
				return err
			}

			logger.Debug("game created",
				slog.Int("columns", gameCfg.Columns),
				slog.Int("rows", gameCfg.Rows),
				slog.String("variant", gameCfg.Variant.String()),
			)

			s := newSession(g,
				i18n.Printer(i18n.ResolveTag(cfg.Lang)),
				NewOutput(cfg.Output, cmd.OutOrStdout(), cmd.ErrOrStderr()),
			)

			if cmd.Flags().Changed("moves") {
				s.playAll(moves)
			} else if err := s.playFrom(cmd.InOrStdin()); err != nil {
				return err
			}

			s.finish()
			return nil
		},
	}

	cmd.Flags().IntVarP(&cfg.Columns, "columns", "c", cfg.Columns, "Board width (env: LINEA_COLUMNS)")
	cmd.Flags().IntVarP(&cfg.Rows, "rows", "r", cfg.Rows, "Board height (env: LINEA_ROWS)")
	cmd.Flags().StringVar(&cfg.Variant, "variant", cfg.Variant, "Win variant: A, B or C (env: LINEA_VARIANT)")
	cmd.Flags().IntSliceVar(&moves, "moves", nil, "Comma separated columns to play in order")

	return cmd
}

// session drives one game from a sequence of column requests
type session struct {
	game    *game.Game
	printer *message.Printer
	out     *Output
}

func newSession(g *game.Game, printer *message.Printer, out *Output) *session {
	s := &session{game: g, printer: printer, out: out}
	if !out.IsJSON() {
		g.Subscribe(s.onEvent)
	}
	return s
}

func (s *session) onEvent(e model.Event) {
	switch p := e.Payload.(type) {
	case model.MovePlayedPayload:
		s.out.PrintMessage(s.printer.Sprintf(i18n.KeyMovePlayed, s.colorName(p.Move.Color), p.Move.Column))
	case model.MoveRejectedPayload:
		s.out.PrintMessage(s.printer.Sprintf(i18n.ErrorKey(p.Reason)))
	}
}

// move plays a column for the color whose turn it is. Rejected moves are
// reported and leave the turn with the same color.
func (s *session) move(column int) {
	color := s.game.Turn().Color()
	var accepted bool
	switch color {
	case model.Red:
		accepted = s.game.PlayRed(column)
	case model.Blue:
		accepted = s.game.PlayBlue(column)
	default:
		return
	}
	if accepted {
		s.game.EvaluateOutcome()
	}
}

func (s *session) playAll(columns []int) {
	for _, col := range columns {
		if s.game.IsFinished() {
			return
		}
		s.move(col)
	}
}

func (s *session) playFrom(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for !s.game.IsFinished() {
		s.prompt()
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		col, err := strconv.Atoi(line)
		if err != nil {
			s.out.PrintError(errors.New(s.printer.Sprintf(i18n.KeyInvalidInput, line)))
			continue
		}
		s.move(col)
	}
	return scanner.Err()
}

func (s *session) prompt() {
	color := s.game.Turn().Color()
	last := s.game.Columns() - 1
	s.out.Prompt(s.printer.Sprintf(i18n.KeyPrompt, s.colorName(color), last))
}

// finish prints the final board with the localized outcome
func (s *session) finish() {
	s.game.EvaluateOutcome()
	if !s.out.IsJSON() {
		s.out.PrintMessage("")
	}
	msg := s.printer.Sprintf(i18n.OutcomeKey(s.game.Outcome()))
	s.out.Print(NewGameState(s.game, msg))
}

func (s *session) colorName(c model.Color) string {
	return s.printer.Sprintf(i18n.ColorKey(c))
}
