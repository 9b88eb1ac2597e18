package parser

import (
	"strings"
	"testing"

	"codecleanup/internal/ast"
	"codecleanup/internal/token"
)

func TestMethodBlockCarriesDocComment(t *testing.T) {
	input := `Public Class Calculator
    ''' <summary>Adds numbers.</summary>
    Public Function Add(a As Integer, b As Integer) As Integer
        Return a + b
    End Function
End Class
`
	tree := parseClean(t, input)
	typ := only(t, tree, ast.TypeBlock)
	if n := tree.Node(typ); n.Name != "Calculator" || n.Op != token.KwClass {
		t.Fatalf("unexpected type block %q %v", n.Name, n.Op)
	}

	m := only(t, tree, ast.MethodBlock)
	n := tree.Node(m)
	if n.Name != "Add" || n.Op != token.KwFunction {
		t.Fatalf("unexpected method %q %v", n.Name, n.Op)
	}
	if line, ok := tree.Line(m); !ok || line != 3 {
		t.Fatalf("expected method on line 3, got %d (%v)", line, ok)
	}
	if !strings.Contains(tree.LeadingText(m), "<summary>") {
		t.Fatalf("leading trivia lost the doc comment: %q", tree.LeadingText(m))
	}
	want := []ast.Kind{ast.ParameterList, ast.AsClause, ast.Block}
	if got := childKinds(tree, m); !sameKinds(got, want) {
		t.Fatalf("method children: expected %v, got %v", want, got)
	}
	params := tree.ChildrenOf(tree.Child(m, ast.ParameterList), ast.Parameter)
	if len(params) != 2 || tree.Node(params[0]).Name != "a" || tree.Node(params[1]).Name != "b" {
		t.Fatalf("unexpected parameters\n%s", dump(tree))
	}
	if v := tree.Node(tree.Child(m, ast.AsClause)).Value; v != "Integer" {
		t.Fatalf("expected return type Integer, got %q", v)
	}
}

func TestConstructorOperatorAndInterfaceMembers(t *testing.T) {
	input := `Public Interface IShape
    Function Area() As Double
    Property Name As String
End Interface

Public Structure Money
    Public Sub New(amount As Decimal)
        Me.Amount = amount
    End Sub
    Public Shared Operator +(a As Money, b As Money) As Money
        Return New Money(a.Amount + b.Amount)
    End Operator
    Public MustOverride Sub Draw()
End Structure
`
	tree := parseClean(t, input)
	if got := len(tree.All(ast.MethodBlock)); got != 0 {
		t.Fatalf("expected no method blocks, got %d\n%s", got, dump(tree))
	}
	stmts := tree.All(ast.MethodStatement)
	if len(stmts) != 2 {
		t.Fatalf("expected 2 bodiless methods, got %d\n%s", len(stmts), dump(tree))
	}
	only(t, tree, ast.ConstructorBlock)
	op := only(t, tree, ast.OperatorBlock)
	if tree.Node(op).Name != "+" {
		t.Fatalf("expected operator +, got %q", tree.Node(op).Name)
	}
	only(t, tree, ast.PropertyStatement)
}

func TestPropertyBlockAndAutoProperty(t *testing.T) {
	input := `Public Class Person
    Private _name As String
    Public Property Name As String
        Get
            Return _name
        End Get
        Set(value As String)
            _name = value
        End Set
    End Property
    Public Property Age As Integer
End Class
`
	tree := parseClean(t, input)
	prop := only(t, tree, ast.PropertyBlock)
	accessors := tree.ChildrenOf(prop, ast.Accessor)
	if len(accessors) != 2 {
		t.Fatalf("expected 2 accessors, got %d\n%s", len(accessors), dump(tree))
	}
	if tree.Node(accessors[0]).Op != token.KwGet || tree.Node(accessors[1]).Op != token.KwSet {
		t.Fatalf("unexpected accessor kinds\n%s", dump(tree))
	}
	auto := only(t, tree, ast.PropertyStatement)
	if tree.Node(auto).Name != "Age" {
		t.Fatalf("expected auto property Age, got %q", tree.Node(auto).Name)
	}
	field := only(t, tree, ast.FieldDeclaration)
	if names := tree.Descendants(field, ast.DeclaredName); len(names) != 1 || tree.Node(names[0]).Name != "_name" {
		t.Fatalf("unexpected field declarators\n%s", dump(tree))
	}
}

func TestEnumWithFlagsAttribute(t *testing.T) {
	input := `<Flags>
Public Enum Permissions
    Read = 1
    Write = 2
    All = Read Or Write
End Enum
`
	tree := parseClean(t, input)
	enum := only(t, tree, ast.EnumBlock)
	attr := only(t, tree, ast.Attribute)
	if tree.Node(attr).Name != "Flags" {
		t.Fatalf("expected Flags attribute, got %q", tree.Node(attr).Name)
	}
	if tree.Ancestor(attr, ast.EnumBlock) != enum {
		t.Fatal("attribute is not attached to the enum")
	}
	members := tree.ChildrenOf(enum, ast.EnumMember)
	if len(members) != 3 {
		t.Fatalf("expected 3 members, got %d", len(members))
	}
	or := tree.Descendants(members[2], ast.BinaryExpression)
	if len(or) != 1 || tree.Node(or[0]).Op != token.KwOr {
		t.Fatalf("expected Or initializer\n%s", dump(tree))
	}
	if line, _ := tree.Line(enum); line != 1 {
		t.Fatalf("enum should start at its attribute line, got %d", line)
	}
}

func TestOptionAndImports(t *testing.T) {
	input := `Option Strict On
Option Explicit Off
Imports System.Text
`
	tree := parseClean(t, input)
	opts := tree.All(ast.OptionStatement)
	if len(opts) != 2 {
		t.Fatalf("expected 2 options, got %d", len(opts))
	}
	if n := tree.Node(opts[0]); n.Name != "Strict" || n.Value != "On" {
		t.Fatalf("unexpected first option %q=%q", n.Name, n.Value)
	}
	if n := tree.Node(opts[1]); n.Name != "Explicit" || n.Value != "Off" {
		t.Fatalf("unexpected second option %q=%q", n.Name, n.Value)
	}
	imp := only(t, tree, ast.ImportsStatement)
	if v := tree.Node(imp).Value; v != "System.Text" {
		t.Fatalf("unexpected imports value %q", v)
	}
}

func TestNamespaceAndModule(t *testing.T) {
	input := `Namespace Acme.Tools
    Module Program
        Sub Main()
        End Sub
    End Module
End Namespace
`
	tree := parseClean(t, input)
	ns := only(t, tree, ast.NamespaceBlock)
	if tree.Node(ns).Name != "Acme.Tools" {
		t.Fatalf("unexpected namespace name %q", tree.Node(ns).Name)
	}
	m := only(t, tree, ast.MethodBlock)
	if tree.Ancestor(m, ast.NamespaceBlock) != ns {
		t.Fatal("method is not nested in the namespace")
	}
}

func TestCustomEventAndDeclare(t *testing.T) {
	input := `Public Class Clock
    Declare Function GetTickCount Lib "kernel32" () As Integer
    Public Custom Event Tick As EventHandler
        AddHandler(value As EventHandler)
        End AddHandler
        RemoveHandler(value As EventHandler)
        End RemoveHandler
        RaiseEvent(sender As Object, e As EventArgs)
        End RaiseEvent
    End Event
End Class
`
	tree := parseClean(t, input)
	decl := only(t, tree, ast.MethodStatement)
	if tree.Node(decl).Name != "GetTickCount" {
		t.Fatalf("unexpected declare name %q", tree.Node(decl).Name)
	}
	if got := len(tree.All(ast.Accessor)); got != 3 {
		t.Fatalf("expected 3 event accessors, got %d\n%s", got, dump(tree))
	}
}
