package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	en := language.English

	message.SetString(en, KeyRedWins, "Red wins!")
	message.SetString(en, KeyBlueWins, "Blue wins!")
	message.SetString(en, KeyDraw, "It's a draw!")
	message.SetString(en, KeyUnfinished, "The game is not finished.")
	message.SetString(en, KeyPrompt, "%s to move, pick a column (0-%d): ")
	message.SetString(en, KeyMovePlayed, "%s dropped into column %d")
	message.SetString(en, KeyInvalidInput, "%q is not a column number")
	message.SetString(en, KeyInvalidColumn, "That column does not exist.")
	message.SetString(en, KeyInvalidColor, "That is not a playing color.")
	message.SetString(en, KeyMoveRejected, "That move is not allowed.")
	message.SetString(en, KeyColumnFull, "That column is full.")
	message.SetString(en, KeyNotYourTurn, "It is not your turn.")
	message.SetString(en, KeyGameFinished, "The game is already over.")
	message.SetString(en, KeyColorRed, "Red")
	message.SetString(en, KeyColorBlue, "Blue")

	es := spanish

	message.SetString(es, KeyRedWins, "¡Las fichas rojas ganaron!")
	message.SetString(es, KeyBlueWins, "¡Las fichas azules ganaron!")
	message.SetString(es, KeyDraw, "¡Es un empate!")
	message.SetString(es, KeyUnfinished, "La partida no terminó.")
	message.SetString(es, KeyPrompt, "Juegan las %s, elegí una columna (0-%d): ")
	message.SetString(es, KeyMovePlayed, "Las %s jugaron en la columna %d")
	message.SetString(es, KeyInvalidInput, "%q no es un número de columna")
	message.SetString(es, KeyInvalidColumn, "Esa columna no existe.")
	message.SetString(es, KeyInvalidColor, "Ese no es un color de juego.")
	message.SetString(es, KeyMoveRejected, "Esa jugada no está permitida.")
	message.SetString(es, KeyColumnFull, "Esa columna está llena.")
	message.SetString(es, KeyNotYourTurn, "No es tu turno.")
	message.SetString(es, KeyGameFinished, "La partida ya terminó.")
	message.SetString(es, KeyColorRed, "rojas")
	message.SetString(es, KeyColorBlue, "azules")
}
