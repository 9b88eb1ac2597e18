package token

import (
	"strings"
	"sync"

	"golang.org/x/text/cases"
)

var keywordSpelling = map[Kind]string{
	KwAddHandler: "AddHandler", KwAddressOf: "AddressOf", KwAlias: "Alias", KwAnd: "And",
	KwAndAlso: "AndAlso", KwAs: "As", KwByRef: "ByRef", KwByVal: "ByVal", KwCall: "Call",
	KwCase: "Case", KwCatch: "Catch", KwClass: "Class", KwConst: "Const", KwContinue: "Continue",
	KwCType: "CType", KwDeclare: "Declare", KwDefault: "Default", KwDelegate: "Delegate",
	KwDim: "Dim", KwDirectCast: "DirectCast", KwDo: "Do", KwEach: "Each", KwElse: "Else",
	KwElseIf: "ElseIf", KwEnd: "End", KwEnum: "Enum", KwErase: "Erase", KwEvent: "Event",
	KwExit: "Exit", KwFalse: "False", KwFinally: "Finally", KwFor: "For", KwFriend: "Friend",
	KwFunction: "Function", KwGet: "Get", KwGetType: "GetType", KwGlobal: "Global",
	KwGoTo: "GoTo", KwHandles: "Handles", KwIf: "If", KwImplements: "Implements",
	KwImports: "Imports", KwIn: "In", KwInherits: "Inherits", KwInterface: "Interface",
	KwIs: "Is", KwIsNot: "IsNot", KwLib: "Lib", KwLike: "Like", KwLoop: "Loop", KwMe: "Me",
	KwMod: "Mod", KwModule: "Module", KwMustInherit: "MustInherit", KwMustOverride: "MustOverride",
	KwMyBase: "MyBase", KwMyClass: "MyClass", KwNameOf: "NameOf", KwNamespace: "Namespace",
	KwNarrowing: "Narrowing", KwNew: "New", KwNext: "Next", KwNot: "Not", KwNothing: "Nothing",
	KwNotInheritable: "NotInheritable", KwNotOverridable: "NotOverridable", KwOf: "Of",
	KwOperator: "Operator", KwOption: "Option", KwOptional: "Optional", KwOr: "Or",
	KwOrElse: "OrElse", KwOverloads: "Overloads", KwOverridable: "Overridable",
	KwOverrides: "Overrides", KwParamArray: "ParamArray", KwPartial: "Partial",
	KwPrivate: "Private", KwProperty: "Property", KwProtected: "Protected", KwPublic: "Public",
	KwRaiseEvent: "RaiseEvent", KwReadOnly: "ReadOnly", KwReDim: "ReDim",
	KwRemoveHandler: "RemoveHandler", KwResume: "Resume", KwReturn: "Return", KwSelect: "Select",
	KwSet: "Set", KwShadows: "Shadows", KwShared: "Shared", KwStatic: "Static", KwStep: "Step",
	KwStop: "Stop", KwStructure: "Structure", KwSub: "Sub", KwSyncLock: "SyncLock",
	KwThen: "Then", KwThrow: "Throw", KwTo: "To", KwTrue: "True", KwTry: "Try",
	KwTryCast: "TryCast", KwTypeOf: "TypeOf", KwUsing: "Using", KwWhen: "When",
	KwWhile: "While", KwWidening: "Widening", KwWith: "With", KwWithEvents: "WithEvents",
	KwWriteOnly: "WriteOnly", KwXor: "Xor",
}

var keywords = func() map[string]Kind {
	m := make(map[string]Kind, len(keywordSpelling))
	for k, s := range keywordSpelling {
		m[strings.ToLower(s)] = k
	}
	return m
}()

// cases.Caser keeps internal state, so each goroutine borrows its own.
var folders = sync.Pool{
	New: func() any {
		c := cases.Fold()
		return &c
	},
}

// Fold returns the case-folded form of s, used for every case-insensitive
// comparison of identifiers and keywords.
func Fold(s string) string {
	c, ok := folders.Get().(*cases.Caser)
	if !ok {
		fresh := cases.Fold()
		c = &fresh
	}
	out := c.String(s)
	folders.Put(c)
	return out
}

// LookupKeyword returns the keyword kind for ident regardless of its casing.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[Fold(ident)]
	return k, ok
}

// EqualFold reports whether a and b name the same identifier.
func EqualFold(a, b string) bool {
	return Fold(Unbracket(a)) == Fold(Unbracket(b))
}

// HasPrefixFold reports whether s starts with prefix, ignoring case.
func HasPrefixFold(s, prefix string) bool {
	return strings.HasPrefix(Fold(s), Fold(prefix))
}

// Unbracket strips the escaping brackets from identifiers such as [Select].
func Unbracket(name string) string {
	if len(name) >= 2 && name[0] == '[' && name[len(name)-1] == ']' {
		return name[1 : len(name)-1]
	}
	return name
}
