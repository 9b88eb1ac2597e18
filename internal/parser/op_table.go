package parser

import "codecleanup/internal/token"

// Таблица приоритетов для бинарных операторов
// Чем больше число, тем выше приоритет
const (
	precXor            = 1  // Xor
	precOr             = 2  // Or OrElse
	precAnd            = 3  // And AndAlso
	precNot            = 4  // Not (унарный)
	precComparison     = 5  // = <> < > <= >= Is IsNot Like
	precShift          = 6  // << >>
	precConcat         = 7  // &
	precAdditive       = 8  // + -
	precMod            = 9  // Mod
	precIntDiv         = 10 // \
	precMultiplicative = 11 // * /
	precUnary          = 12 // унарные + -
	precPower          = 13 // ^
)

// binaryPrec возвращает приоритет бинарного оператора или -1.
// Все бинарные операторы левоассоциативны, включая ^.
func binaryPrec(kind token.Kind) int {
	switch kind {
	case token.KwXor:
		return precXor
	case token.KwOr, token.KwOrElse:
		return precOr
	case token.KwAnd, token.KwAndAlso:
		return precAnd
	case token.Assign, token.NotEq, token.Lt, token.LtEq, token.Gt, token.GtEq,
		token.KwIs, token.KwIsNot, token.KwLike:
		return precComparison
	case token.Shl, token.Shr:
		return precShift
	case token.Amp:
		return precConcat
	case token.Plus, token.Minus:
		return precAdditive
	case token.KwMod:
		return precMod
	case token.Backslash:
		return precIntDiv
	case token.Star, token.Slash:
		return precMultiplicative
	case token.Caret:
		return precPower
	default:
		return -1 // не бинарный оператор
	}
}

// isAssignOp reports whether k starts the value of an assignment statement.
func isAssignOp(k token.Kind) bool {
	return k == token.Assign || k.IsCompoundAssign()
}

// queryClauseWords — контекстные слова, начинающие предложение запроса.
var queryClauseWords = []string{
	"Where", "Order", "Group", "Join", "Let", "Distinct", "Skip", "Take", "Aggregate", "From", "Into",
}

// isQueryClause reports whether tok begins a query clause.
func isQueryClause(tok token.Token) bool {
	if tok.Kind == token.KwSelect {
		return true
	}
	for _, w := range queryClauseWords {
		if tok.IsWord(w) {
			return true
		}
	}
	return false
}
