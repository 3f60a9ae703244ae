package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/mcoot/linea/internal/services/game"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
	errW   io.Writer
}

// NewOutput creates a new Output formatter
func NewOutput(format string, w, errW io.Writer) *Output {
	return &Output{format: format, w: w, errW: errW}
}

// IsJSON returns true when output is machine readable
func (o *Output) IsJSON() bool {
	return o.format == "json"
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.IsJSON() {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.IsJSON() {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(o.errW, string(data))
	} else {
		fmt.Fprintf(o.errW, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.IsJSON() {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Fprintln(o.w, string(data))
	} else {
		fmt.Fprintln(o.w, msg)
	}
}

// Prompt writes an inline prompt; prompts are never part of json output
func (o *Output) Prompt(msg string) {
	if !o.IsJSON() {
		fmt.Fprint(o.w, msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case GameState:
		o.printGameState(v)
	case []VariantInfo:
		o.printVariants(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// GameState is a snapshot of a game for display
type GameState struct {
	Columns int        `json:"columns"`
	Rows    int        `json:"rows"`
	Variant string     `json:"variant"`
	Turn    string     `json:"turn"`
	Outcome string     `json:"outcome"`
	Winner  string     `json:"winner,omitempty"`
	Message string     `json:"message,omitempty"`
	Cells   [][]string `json:"cells"`
	Moves   []Move     `json:"moves"`

	render string
}

// Move is a played move for display
type Move struct {
	Number int    `json:"number"`
	Color  string `json:"color"`
	Column int    `json:"column"`
	Row    int    `json:"row"`
}

// VariantInfo describes a win variant
type VariantInfo struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// NewGameState builds a snapshot of the game with an optional message
func NewGameState(g *game.Game, msg string) GameState {
	cells := make([][]string, g.Rows())
	for row, colors := range g.Cells() {
		cells[row] = make([]string, len(colors))
		for col, c := range colors {
			cells[row][col] = string(c)
		}
	}

	moves := []Move{}
	for _, m := range g.Moves() {
		moves = append(moves, Move{
			Number: m.Number,
			Color:  string(m.Color),
			Column: m.Column,
			Row:    m.Row,
		})
	}

	return GameState{
		Columns: g.Columns(),
		Rows:    g.Rows(),
		Variant: g.Variant().String(),
		Turn:    string(g.Turn()),
		Outcome: string(g.Outcome()),
		Winner:  string(g.Outcome().Winner()),
		Message: msg,
		Cells:   cells,
		Moves:   moves,
		render:  g.Render(),
	}
}

func (o *Output) printGameState(g GameState) {
	o.printBoard(g.render, g.Columns)
	if g.Message != "" {
		fmt.Fprintln(o.w, g.Message)
	}
}

// printBoard frames the plain board render with column headers
func (o *Output) printBoard(render string, columns int) {
	if render == "" {
		return
	}

	// Print column headers
	fmt.Fprint(o.w, "  ")
	for col := 0; col < columns; col++ {
		fmt.Fprintf(o.w, "%d ", col)
	}
	fmt.Fprintln(o.w)

	border := "+" + strings.Repeat("-", 2*columns+1) + "+"
	fmt.Fprintln(o.w, border)
	for _, line := range strings.Split(strings.TrimSuffix(render, "\n"), "\n") {
		fmt.Fprintf(o.w, "| %s|\n", line)
	}
	fmt.Fprintln(o.w, border)
}

func (o *Output) printVariants(variants []VariantInfo) {
	for _, v := range variants {
		fmt.Fprintf(o.w, "%s  %s\n", v.Code, v.Description)
	}
}
