package i18n

import (
	"errors"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/mcoot/linea/internal/model"
)

// Message keys
const (
	KeyRedWins       = "outcome.red_wins"
	KeyBlueWins      = "outcome.blue_wins"
	KeyDraw          = "outcome.draw"
	KeyUnfinished    = "outcome.unfinished"
	KeyPrompt        = "play.prompt"
	KeyMovePlayed    = "play.move_played"
	KeyInvalidInput  = "play.invalid_input"
	KeyInvalidColumn = "error.invalid_column"
	KeyInvalidColor  = "error.invalid_color"
	KeyMoveRejected  = "error.move_rejected"
	KeyColumnFull    = "error.column_full"
	KeyNotYourTurn   = "error.not_your_turn"
	KeyGameFinished  = "error.game_finished"
	KeyColorRed      = "color.red"
	KeyColorBlue     = "color.blue"
)

var spanish = language.Spanish

var supportedTags = []language.Tag{
	language.English,
	spanish,
}

var tagMatcher = language.NewMatcher(supportedTags)

// Default returns the default language tag
func Default() language.Tag {
	return language.English
}

// Printer returns a message printer for the supplied tag
func Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag)
}

// ResolveTag picks the closest supported language for a user supplied value
// such as "es", "es-AR" or "en_US". Unparseable values fall back to English.
func ResolveTag(value string) language.Tag {
	value = strings.TrimSpace(strings.ReplaceAll(value, "_", "-"))
	if value == "" {
		return Default()
	}
	// POSIX locales such as es_AR.UTF-8
	if idx := strings.IndexByte(value, '.'); idx > 0 {
		value = value[:idx]
	}
	parsed, err := language.Parse(value)
	if err != nil {
		return Default()
	}
	_, idx, conf := tagMatcher.Match(parsed)
	if conf == language.No {
		return Default()
	}
	return supportedTags[idx]
}

// OutcomeKey returns the message key announcing an outcome
func OutcomeKey(o model.Outcome) string {
	switch o {
	case model.OutcomeRedWins:
		return KeyRedWins
	case model.OutcomeBlueWins:
		return KeyBlueWins
	case model.OutcomeDraw:
		return KeyDraw
	default:
		return KeyUnfinished
	}
}

// ColorKey returns the message key naming a color
func ColorKey(c model.Color) string {
	if c == model.Blue {
		return KeyColorBlue
	}
	return KeyColorRed
}

// ErrorKey returns the message key explaining a rejected move
func ErrorKey(err error) string {
	switch {
	case errors.Is(err, model.ErrColumnFull):
		return KeyColumnFull
	case errors.Is(err, model.ErrNotColorsTurn):
		return KeyNotYourTurn
	case errors.Is(err, model.ErrGameFinished):
		return KeyGameFinished
	case errors.Is(err, model.ErrInvalidColumn):
		return KeyInvalidColumn
	case errors.Is(err, model.ErrInvalidColor):
		return KeyInvalidColor
	default:
		return KeyMoveRejected
	}
}
