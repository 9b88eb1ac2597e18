package ast

// Kind tags a node.
type Kind uint8

const (
	KindInvalid Kind = iota

	CompilationUnit
	OptionStatement
	ImportsStatement
	AttributeList
	Attribute
	NamespaceBlock
	TypeBlock
	MethodBlock
	MethodStatement
	ConstructorBlock
	OperatorBlock
	PropertyBlock
	PropertyStatement
	Accessor
	EnumBlock
	EnumMember
	FieldDeclaration
	OtherDeclaration
	ParameterList
	Parameter
	AsClause
	AsNewClause
	VariableDeclarator
	DeclaredName

	Block
	LocalDeclaration
	IfBlock
	SingleLineIf
	ElseIfClause
	ElseClause
	TryBlock
	CatchClause
	FinallyClause
	ForBlock
	ForEachBlock
	WhileBlock
	DoLoopBlock
	SelectBlock
	CaseBlock
	WithBlock
	UsingBlock
	SyncLockBlock
	Assignment
	ExpressionStatement
	ReturnStatement
	ThrowStatement
	ExitStatement
	ContinueStatement
	OtherStatement

	BinaryExpression
	UnaryExpression
	Parenthesized
	Identifier
	MemberAccess
	ConditionalAccess
	Invocation
	ArgumentList
	NamedArgument
	OmittedArgument
	ObjectCreation
	ArrayCreation
	CollectionInitializer
	FieldInitializer
	Literal
	InterpolatedString
	CastExpression
	TernaryIf
	TypeOfExpression
	GetTypeExpression
	NameOfExpression
	Lambda
	QueryExpression
	BadExpression
)

var kindNames = [...]string{
	KindInvalid: "Invalid", CompilationUnit: "CompilationUnit", OptionStatement: "OptionStatement",
	ImportsStatement: "ImportsStatement", AttributeList: "AttributeList", Attribute: "Attribute",
	NamespaceBlock: "NamespaceBlock", TypeBlock: "TypeBlock", MethodBlock: "MethodBlock",
	MethodStatement: "MethodStatement", ConstructorBlock: "ConstructorBlock", OperatorBlock: "OperatorBlock",
	PropertyBlock: "PropertyBlock", PropertyStatement: "PropertyStatement", Accessor: "Accessor",
	EnumBlock: "EnumBlock", EnumMember: "EnumMember", FieldDeclaration: "FieldDeclaration",
	OtherDeclaration: "OtherDeclaration", ParameterList: "ParameterList", Parameter: "Parameter",
	AsClause: "AsClause", AsNewClause: "AsNewClause", VariableDeclarator: "VariableDeclarator",
	DeclaredName: "DeclaredName", Block: "Block", LocalDeclaration: "LocalDeclaration",
	IfBlock: "IfBlock", SingleLineIf: "SingleLineIf", ElseIfClause: "ElseIfClause",
	ElseClause: "ElseClause", TryBlock: "TryBlock", CatchClause: "CatchClause",
	FinallyClause: "FinallyClause", ForBlock: "ForBlock", ForEachBlock: "ForEachBlock",
	WhileBlock: "WhileBlock", DoLoopBlock: "DoLoopBlock", SelectBlock: "SelectBlock",
	CaseBlock: "CaseBlock", WithBlock: "WithBlock", UsingBlock: "UsingBlock",
	SyncLockBlock: "SyncLockBlock", Assignment: "Assignment", ExpressionStatement: "ExpressionStatement",
	ReturnStatement: "ReturnStatement", ThrowStatement: "ThrowStatement", ExitStatement: "ExitStatement",
	ContinueStatement: "ContinueStatement", OtherStatement: "OtherStatement",
	BinaryExpression: "BinaryExpression", UnaryExpression: "UnaryExpression", Parenthesized: "Parenthesized",
	Identifier: "Identifier", MemberAccess: "MemberAccess", ConditionalAccess: "ConditionalAccess",
	Invocation: "Invocation", ArgumentList: "ArgumentList", NamedArgument: "NamedArgument",
	OmittedArgument: "OmittedArgument", ObjectCreation: "ObjectCreation", ArrayCreation: "ArrayCreation",
	CollectionInitializer: "CollectionInitializer", FieldInitializer: "FieldInitializer",
	Literal: "Literal", InterpolatedString: "InterpolatedString", CastExpression: "CastExpression",
	TernaryIf: "TernaryIf", TypeOfExpression: "TypeOfExpression", GetTypeExpression: "GetTypeExpression",
	NameOfExpression: "NameOfExpression", Lambda: "Lambda", QueryExpression: "QueryExpression",
	BadExpression: "BadExpression",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Kind(?)"
}
