package rules_test

import (
	"strings"
	"testing"

	"codecleanup/internal/rules"
)

func TestRuleLines(t *testing.T) {
	tests := []struct {
		name  string
		rule  rules.Rule
		input string
		want  []int
	}{
		{
			name: "missing try-catch",
			rule: rules.NewMissingTryCatch(),
			input: `Class C
    Sub Bare()
    End Sub
    Sub Guarded()
        Try
            Work()
        Catch
            Log()
        End Try
    End Sub
    Sub CleanupOnly()
        Try
            Work()
        Finally
            Close()
        End Try
    End Sub
End Class
`,
			want: []int{2, 11},
		},
		{
			name: "typed catch is not generic",
			rule: rules.NewUnloggedGenericCatch(),
			input: `Try
    Work()
Catch ex As IOException
Catch ex As System.Exception
    Console.WriteLine(ex.Message)
Catch ex As Exception
    Retry()
End Try
`,
			want: []int{6},
		},
		{
			name:  "ternary needs both branches",
			rule:  rules.NewTernaryCandidate(),
			input: "If a Then x = 1\nIf a Then Go() Else Halt()\nIf a Then Return 1 Else Return 2\n",
			want:  []int{3},
		},
		{
			name:  "late bound variable",
			rule:  rules.NewLateBoundVariable(),
			input: "Dim o As Object\nDim s As String\nDim p As System.Object\n",
			want:  []int{1, 3},
		},
		{
			name:  "create object",
			rule:  rules.NewDynamicObjectCreation(),
			input: "x = CreateObject(\"Excel.Application\")\ny = createobject(\"Word.Application\")\nz = New Object()\n",
			want:  []int{1, 2},
		},
		{
			name: "hungarian notation on locals and parameters",
			rule: rules.NewHungarianNotation(),
			input: `Sub F(strName As String)
    Dim intCount As Integer
    Dim Strategy As Integer
End Sub
`,
			want: []int{1, 2},
		},
		{
			name:  "reserved My prefix",
			rule:  rules.NewReservedPrefix(),
			input: "Dim myValue As Integer\nDim MyOther = 1\nDim enemy = 2\n",
			want:  []int{1, 2},
		},
		{
			name: "missing doc comment",
			rule: rules.NewMissingMethodDoc(),
			input: `Class C
    ''' <summary>Documented.</summary>
    Sub A()
    End Sub
    ' plain comment
    Sub B()
    End Sub
    Sub D()
    End Sub
End Class
`,
			want: []int{6, 8},
		},
		{
			name: "missing any comment",
			rule: rules.NewMissingMethodComment(),
			input: `Class C
    ''' <summary>Documented.</summary>
    Sub A()
    End Sub
    ' plain comment
    Sub B()
    End Sub
    Sub D()
    End Sub
End Class
`,
			want: []int{8},
		},
		{
			name: "loop to Where",
			rule: rules.NewLoopToLinqFilter(),
			input: `For i = 0 To n
    If items(i) > 0 Then Keep(i)
Next
For i = 0 To n
    Dim q = items.Where(Function(x) x > 0)
    If q.Any() Then Keep(i)
Next
`,
			want: []int{1},
		},
		{
			name: "loop to Select",
			rule: rules.NewLoopToLinqProjection(),
			input: `For i = 0 To n
    result.Add(items(i))
Next
For i = 0 To n
    arr(i) = New Point(i, i)
Next
For i = 0 To n
    Show(i)
Next
`,
			want: []int{1, 4},
		},
		{
			name:  "string concatenation",
			rule:  rules.NewStringConcatenation(),
			input: "s = \"Hello \" & name\nt = $\"Hello {name}\"\n",
			want:  []int{1},
		},
		{
			name: "nested for each",
			rule: rules.NewNestedForEach(),
			input: `For Each a In xs
    For Each b In ys
        Use(a, b)
    Next
Next
For Each c In zs
    Use(c)
Next
`,
			want: []int{1},
		},
		{
			name: "length queried in loop",
			rule: rules.NewLengthInLoop(),
			input: `For i = 0 To 10
    n = arr.GetLength(0)
Next
For i = 0 To 10
    Use(i)
Next
`,
			want: []int{1},
		},
		{
			name: "collection changed while iterating",
			rule: rules.NewMutateDuringIteration(),
			input: `For Each x In items
    items.Remove(x)
Next
For Each x In items
    Use(x)
Next
`,
			want: []int{1},
		},
		{
			name: "upper-case local",
			rule: rules.NewLocalNamingCase(),
			input: `Module M
    Dim Counter As Integer
    Sub F()
        Dim Total As Integer
        Dim count As Integer
        If count > 0 Then
            Dim Inner As Integer
        End If
    End Sub
End Module
`,
			want: []int{4},
		},
		{
			name: "local hungarian with obj",
			rule: rules.NewLocalHungarian(),
			input: `Sub F()
    Dim objConn As Object
    Dim strName As String
    Dim name As String
End Sub
`,
			want: []int{2, 3},
		},
		{
			name: "And and Or",
			rule: rules.NewNonShortCircuitLogic(),
			input: "If a And b Then x = 1\nIf a Or b Then x = 2\nIf a AndAlso b OrElse c Then x = 3\n",
			want:  []int{1, 2},
		},
		{
			name:  "CType",
			rule:  rules.NewExplicitCastStyle(),
			input: "x = CType(o, String)\ny = DirectCast(o, String)\nz = TryCast(o, String)\n",
			want:  []int{1},
		},
		{
			name:  "Is comparison",
			rule:  rules.NewNegatedIsComparison(),
			input: "If Not o Is Nothing Then x = 1\nIf o IsNot Nothing Then x = 2\n",
			want:  []int{1},
		},
		{
			name: "repeated receiver",
			rule: rules.NewRepeatedMemberAccess(rules.DefaultThresholds()),
			input: `Sub F()
    Console.WriteLine(1)
    Console.WriteLine(2)
    Console.Write(3)
    other.Go()
    other.Halt()
End Sub
`,
			want: []int{2},
		},
		{
			name:  "IIf",
			rule:  rules.NewTernaryOperatorPreferred(),
			input: "x = IIf(a, 1, 2)\ny = If(a, 1, 2)\n",
			want:  []int{1},
		},
		{
			name: "enum without Flags",
			rule: rules.NewEnumMissingFlags(),
			input: `Enum Perm
    Read = 1
    All = Read Or 2
End Enum
<Flags>
Enum Marked
    A = 1
    B = A Or 2
End Enum
<System.FlagsAttribute>
Enum Qualified
    A = 1
    B = A Or 2
End Enum
Enum Plain
    A = 1
    B = 2
End Enum
`,
			want: []int{1},
		},
		{
			name:  "empty string literal",
			rule:  rules.NewEmptyStringLiteral(),
			input: "s = \"\"\nt = \"x\"\n",
			want:  []int{1},
		},
		{
			name: "short select case",
			rule: rules.NewShortSelectCase(rules.DefaultThresholds()),
			input: `Select Case code
    Case 1
        A()
    Case Else
        B()
End Select
`,
			want: []int{1},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := tt.rule.Check(parse(t, tt.input))
			if got := lines(fs); !sameLines(got, tt.want) {
				t.Fatalf("expected lines %v, got %v\n%s", tt.want, got, primaries(fs))
			}
		})
	}
}

func TestStringConcatenationRewrite(t *testing.T) {
	fs := rules.NewStringConcatenation().Check(parse(t, "s = \"Hello \" & name\n"))
	if len(fs) != 1 {
		t.Fatalf("expected 1 finding, got %d", len(fs))
	}
	want := []string{`Original: "Hello " & name`, `Suggested: $""Hello "name"`}
	if len(fs[0].Extra) != 2 || fs[0].Extra[0] != want[0] || fs[0].Extra[1] != want[1] {
		t.Fatalf("expected extras %q, got %q", want, fs[0].Extra)
	}
}

func TestAutoPropertyCandidate(t *testing.T) {
	input := `Public Class Person
    Private _name As String
    Private _age As Integer
    Public Property Name As String
        Get
            Return _name
        End Get
        Set(value As String)
            _name = value
        End Set
    End Property
    Public Property Age As Integer
        Get
            Return _age
        End Get
        Set(value As Integer)
            If value >= 0 Then _age = value
        End Set
    End Property
End Class
`
	fs := rules.NewAutoPropertyCandidate().Check(parse(t, input))
	if len(fs) != 1 || fs[0].Line != 4 {
		t.Fatalf("expected one finding on line 4, got\n%s", primaries(fs))
	}
	if want := "Example: Public Property Name As String { Get; Set; }"; len(fs[0].Extra) != 1 || fs[0].Extra[0] != want {
		t.Fatalf("expected %q, got %q", want, fs[0].Extra)
	}
}

func TestNonShortCircuitMessages(t *testing.T) {
	fs := rules.NewNonShortCircuitLogic().Check(parse(t, "If a And b Or c Then x = 1\n"))
	if len(fs) != 2 {
		t.Fatalf("expected 2 findings, got\n%s", primaries(fs))
	}
	var and, or bool
	for _, f := range fs {
		and = and || strings.Contains(f.Message, "'AndAlso'")
		or = or || strings.Contains(f.Message, "'OrElse'")
	}
	if !and || !or {
		t.Fatalf("expected both AndAlso and OrElse advice, got\n%s", primaries(fs))
	}
}

func TestRepeatedMemberAccessThreshold(t *testing.T) {
	input := `Sub F()
    cfg.A = 1
    cfg.B = 2
End Sub
`
	tree := parse(t, input)
	if fs := rules.NewRepeatedMemberAccess(rules.DefaultThresholds()).Check(tree); len(fs) != 0 {
		t.Fatalf("two accesses are below the default threshold\n%s", primaries(fs))
	}
	fs := rules.NewRepeatedMemberAccess(rules.Thresholds{MemberAccessRepeat: 2}).Check(tree)
	if len(fs) != 1 || fs[0].Message != "Consider using 'With' block for multiple accesses to 'cfg'" {
		t.Fatalf("unexpected findings\n%s", primaries(fs))
	}
}

func TestShortSelectCaseMessage(t *testing.T) {
	input := `Select Case code
    Case 1
        A()
    Case Else
        B()
End Select
`
	tree := parse(t, input)
	fs := rules.NewShortSelectCase(rules.DefaultThresholds()).Check(tree)
	if len(fs) != 1 {
		t.Fatalf("expected 1 finding, got %d", len(fs))
	}
	want := "Line: 1, Suggestion: Select Case for 'code' has only 2 conditions. Consider using If/ElseIf instead for better readability"
	if got := fs[0].Primary(); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
	if len(fs[0].Extra) != 1 || fs[0].Extra[0] != "Hint: Select Case is more efficient with 5 or more conditions" {
		t.Fatalf("unexpected hint %q", fs[0].Extra)
	}
	if fs := rules.NewShortSelectCase(rules.Thresholds{SelectCaseMinBranches: 2}).Check(tree); len(fs) != 0 {
		t.Fatalf("two branches meet a minimum of two\n%s", primaries(fs))
	}
	fs = rules.NewShortSelectCase(rules.Thresholds{SelectCaseMinBranches: 3}).Check(tree)
	if len(fs) != 1 {
		t.Fatalf("expected 1 finding with a minimum of three, got %d", len(fs))
	}
	if want := "Hint: Select Case is more efficient with 3 or more conditions"; len(fs[0].Extra) != 1 || fs[0].Extra[0] != want {
		t.Fatalf("hint must follow the threshold: got %q, want %q", fs[0].Extra, want)
	}
}
