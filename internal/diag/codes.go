package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Лексические
	LexInfo               Code = 1000
	LexUnknownChar        Code = 1001
	LexUnterminatedString Code = 1002
	LexUnterminatedDate   Code = 1003
	LexBadNumber          Code = 1004
	LexTokenTooLong       Code = 1005

	// Синтаксические
	SynInfo              Code = 2000
	SynUnexpectedToken   Code = 2001
	SynUnclosedParen     Code = 2002
	SynUnclosedBrace     Code = 2003
	SynExpectIdentifier  Code = 2004
	SynExpectExpression  Code = 2005
	SynExpectType        Code = 2006
	SynUnterminatedBlock Code = 2007
	SynMismatchedEnd     Code = 2008
	SynStrayEnd          Code = 2009
	SynExpectThen        Code = 2010
	SynExpectEndOfLine   Code = 2011

	// Ввод-вывод
	IOLoadFileError Code = 4001
	IOReadDirError  Code = 4002

	// Чужой язык
	AlnLanguageMismatch Code = 8001
)

var codeDescription = map[Code]string{
	UnknownCode:           "Unknown error",
	LexInfo:               "Lexical information",
	LexUnknownChar:        "Unknown character",
	LexUnterminatedString: "Unterminated string literal",
	LexUnterminatedDate:   "Unterminated date literal",
	LexBadNumber:          "Malformed numeric literal",
	LexTokenTooLong:       "Token too long",
	SynInfo:               "Syntax information",
	SynUnexpectedToken:    "Unexpected token",
	SynUnclosedParen:      "Unclosed parenthesis",
	SynUnclosedBrace:      "Unclosed brace",
	SynExpectIdentifier:   "Expected identifier",
	SynExpectExpression:   "Expected expression",
	SynExpectType:         "Expected type name",
	SynUnterminatedBlock:  "Block is not terminated",
	SynMismatchedEnd:      "Mismatched End statement",
	SynStrayEnd:           "End statement without a block",
	SynExpectThen:         "Expected 'Then'",
	SynExpectEndOfLine:    "Expected end of statement",
	IOLoadFileError:       "Failed to load file",
	IOReadDirError:        "Failed to read directory",
	AlnLanguageMismatch:   "Source does not look like Visual Basic",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	case ic >= 8000 && ic < 9000:
		return fmt.Sprintf("ALN%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
