package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF
	// EOL terminates a logical line.
	EOL

	// Ident represents an identifier, including bracketed identifiers like [Select].
	Ident

	kwBegin
	KwAddHandler
	KwAddressOf
	KwAlias
	KwAnd
	KwAndAlso
	KwAs
	KwByRef
	KwByVal
	KwCall
	KwCase
	KwCatch
	KwClass
	KwConst
	KwContinue
	KwCType
	KwDeclare
	KwDefault
	KwDelegate
	KwDim
	KwDirectCast
	KwDo
	KwEach
	KwElse
	KwElseIf
	KwEnd
	KwEnum
	KwErase
	KwEvent
	KwExit
	KwFalse
	KwFinally
	KwFor
	KwFriend
	KwFunction
	KwGet
	KwGetType
	KwGlobal
	KwGoTo
	KwHandles
	KwIf
	KwImplements
	KwImports
	KwIn
	KwInherits
	KwInterface
	KwIs
	KwIsNot
	KwLib
	KwLike
	KwLoop
	KwMe
	KwMod
	KwModule
	KwMustInherit
	KwMustOverride
	KwMyBase
	KwMyClass
	KwNameOf
	KwNamespace
	KwNarrowing
	KwNew
	KwNext
	KwNot
	KwNothing
	KwNotInheritable
	KwNotOverridable
	KwOf
	KwOperator
	KwOption
	KwOptional
	KwOr
	KwOrElse
	KwOverloads
	KwOverridable
	KwOverrides
	KwParamArray
	KwPartial
	KwPrivate
	KwProperty
	KwProtected
	KwPublic
	KwRaiseEvent
	KwReadOnly
	KwReDim
	KwRemoveHandler
	KwResume
	KwReturn
	KwSelect
	KwSet
	KwShadows
	KwShared
	KwStatic
	KwStep
	KwStop
	KwStructure
	KwSub
	KwSyncLock
	KwThen
	KwThrow
	KwTo
	KwTrue
	KwTry
	KwTryCast
	KwTypeOf
	KwUsing
	KwWhen
	KwWhile
	KwWidening
	KwWith
	KwWithEvents
	KwWriteOnly
	KwXor
	kwEnd

	// IntLit represents an integer literal, including &H/&O/&B forms.
	IntLit
	// FloatLit represents a floating point or Decimal literal.
	FloatLit
	// StringLit represents a "..." literal with "" escapes.
	StringLit
	// CharLit represents a "x"c literal.
	CharLit
	// DateLit represents a #...# literal.
	DateLit
	// InterpStringLit represents a $"..." literal.
	InterpStringLit

	Plus            // +
	Minus           // -
	Star            // *
	Slash           // /
	Backslash       // \
	Caret           // ^
	Amp             // &
	Assign          // =
	NotEq           // <>
	Lt              // <
	LtEq            // <=
	Gt              // >
	GtEq            // >=
	Shl             // <<
	Shr             // >>
	PlusAssign      // +=
	MinusAssign     // -=
	StarAssign      // *=
	SlashAssign     // /=
	BackslashAssign // \=
	CaretAssign     // ^=
	AmpAssign       // &=
	ShlAssign       // <<=
	ShrAssign       // >>=
	ColonAssign     // :=
	LParen          // (
	RParen          // )
	LBrace          // {
	RBrace          // }
	Comma           // ,
	Dot             // .
	Colon           // :
	Bang            // !
	Question        // ?
	QuestionDot     // ?.
	At              // @
)

var kindNames = map[Kind]string{
	Invalid: "Invalid", EOF: "EOF", EOL: "EOL", Ident: "Ident",
	IntLit: "IntLit", FloatLit: "FloatLit", StringLit: "StringLit", CharLit: "CharLit",
	DateLit: "DateLit", InterpStringLit: "InterpStringLit",
	Plus: "+", Minus: "-", Star: "*", Slash: "/", Backslash: "\\", Caret: "^", Amp: "&",
	Assign: "=", NotEq: "<>", Lt: "<", LtEq: "<=", Gt: ">", GtEq: ">=", Shl: "<<", Shr: ">>",
	PlusAssign: "+=", MinusAssign: "-=", StarAssign: "*=", SlashAssign: "/=",
	BackslashAssign: "\\=", CaretAssign: "^=", AmpAssign: "&=", ShlAssign: "<<=", ShrAssign: ">>=",
	ColonAssign: ":=", LParen: "(", RParen: ")", LBrace: "{", RBrace: "}", Comma: ",", Dot: ".",
	Colon: ":", Bang: "!", Question: "?", QuestionDot: "?.", At: "@",
}

// String returns the canonical spelling for keywords and operators and the kind name otherwise.
func (k Kind) String() string {
	if k.IsKeyword() {
		if s, ok := keywordSpelling[k]; ok {
			return s
		}
	}
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "Kind(?)"
}

// IsKeyword reports whether k is a reserved word.
func (k Kind) IsKeyword() bool {
	return k > kwBegin && k < kwEnd
}

// IsCompoundAssign reports whether k is one of the op= assignment operators.
func (k Kind) IsCompoundAssign() bool {
	switch k {
	case PlusAssign, MinusAssign, StarAssign, SlashAssign, BackslashAssign,
		CaretAssign, AmpAssign, ShlAssign, ShrAssign:
		return true
	default:
		return false
	}
}
