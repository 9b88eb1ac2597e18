// Package ast holds the syntax tree produced by the parser.
//
// Nodes live in an arena and refer to each other by NodeID. Every node has a
// Kind, a Span that starts at its first token (leading trivia excluded), a
// Parent and ordered Children. The tree is immutable once the parser returns,
// so any number of goroutines may read it.
//
// Child layout per kind:
//
//	CompilationUnit   top-level statements and declarations
//	OptionStatement   Name = Strict|Explicit|Infer|Compare, Value = On|Off|Binary|Text
//	NamespaceBlock    members
//	TypeBlock         AttributeList*, members; Op = Class|Module|Structure|Interface
//	MethodBlock       AttributeList*, ParameterList, AsClause?, Block; Op = Sub|Function
//	MethodStatement   same as MethodBlock without Block (interface, MustOverride, Declare)
//	ConstructorBlock  ParameterList, Block
//	OperatorBlock     ParameterList, AsClause?, Block
//	PropertyBlock     AttributeList*, ParameterList?, AsClause?, Accessor+
//	PropertyStatement AttributeList*, ParameterList?, AsClause?, initializer?
//	Accessor          ParameterList?, Block; Op = Get|Set|AddHandler|RemoveHandler|RaiseEvent
//	EnumBlock         AttributeList*, EnumMember*
//	EnumMember        initializer?
//	FieldDeclaration  AttributeList*, VariableDeclarator+
//	LocalDeclaration  VariableDeclarator+; Op = Dim|Static|Const
//	VariableDeclarator DeclaredName+, AsClause|AsNewClause?, initializer?
//	Parameter         AttributeList*, DeclaredName, AsClause?, default?
//	IfBlock           condition, Block, ElseIfClause*, ElseClause?
//	SingleLineIf      condition, Block, ElseClause?
//	ElseIfClause      condition, Block
//	ElseClause        Block
//	TryBlock          Block, CatchClause*, FinallyClause?
//	CatchClause       DeclaredName?, AsClause?, filter?, Block
//	FinallyClause     Block
//	ForBlock          control, from, to, step?, Block
//	ForEachBlock      control (Identifier or VariableDeclarator), collection, Block
//	WhileBlock        condition, Block
//	DoLoopBlock       condition?, Block, condition? (Do While x / Loop Until y)
//	SelectBlock       selector, CaseBlock*
//	CaseBlock         case clauses, Block; Op = Else for Case Else. Ranges are
//	                  Binary with Op = To, "Case Is > x" is Unary with Name = Is
//	WithBlock         receiver, Block
//	UsingBlock        resources, Block
//	SyncLockBlock     lock expression, Block
//	Assignment        target, value; Op = the assignment operator
//	BinaryExpression  left, right; Op = operator
//	UnaryExpression   operand; Op = operator
//	MemberAccess      receiver? (absent inside With); Name = member
//	Invocation        callee, ArgumentList
//	ObjectCreation    ArgumentList?, initializer?; Value = type text
//	CastExpression    operand; Op = CType|DirectCast|TryCast, Value = type text
//	TernaryIf         condition, whenTrue, whenFalse (two arguments for If(a, b))
//	Lambda            ParameterList?, AsClause?, expression or Block; Op = Sub|Function
//	QueryExpression   one child per clause expression; range variables are Identifiers
//	Attribute         ArgumentList?; Name = dotted attribute name
package ast
