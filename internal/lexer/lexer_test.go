package lexer_test

import (
	"strings"
	"testing"

	"codecleanup/internal/diag"
	"codecleanup/internal/lexer"
	"codecleanup/internal/source"
	"codecleanup/internal/token"
)

func makeTestLexer(input string) (*lexer.Lexer, *diag.Bag) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.vb", []byte(input))
	bag := diag.NewBag(0)
	return lexer.New(fs.Get(fileID), lexer.Options{Reporter: diag.BagReporter{Bag: bag}}), bag
}

func kindsOf(toks []token.Token) []token.Kind {
	out := make([]token.Kind, 0, len(toks))
	for _, tok := range toks {
		out = append(out, tok.Kind)
	}
	return out
}

// expectTokens compares kinds up to (not including) EOF.
func expectTokens(t *testing.T, input string, expected []token.Kind) []token.Token {
	t.Helper()
	lx, bag := makeTestLexer(input)
	toks := lx.All()
	toks = toks[:len(toks)-1]
	if len(toks) != len(expected) {
		t.Fatalf("input %q: expected %v, got %v (diags %v)", input, expected, kindsOf(toks), bag.Items())
	}
	for i, tok := range toks {
		if tok.Kind != expected[i] {
			t.Errorf("input %q token %d: expected %v, got %v (%q)", input, i, expected[i], tok.Kind, tok.Text)
		}
	}
	return toks
}

func TestKeywordsAnyCase(t *testing.T) {
	expectTokens(t, "PUBLIC sub Main()", []token.Kind{
		token.KwPublic, token.KwSub, token.Ident, token.LParen, token.RParen, token.EOL,
	})
}

func TestStatementLines(t *testing.T) {
	expectTokens(t, "Dim x As Integer = 5\nx += 1\n", []token.Kind{
		token.KwDim, token.Ident, token.KwAs, token.Ident, token.Assign, token.IntLit, token.EOL,
		token.Ident, token.PlusAssign, token.IntLit, token.EOL,
	})
}

func TestBlankAndCommentLinesAreTrivia(t *testing.T) {
	toks := expectTokens(t, "\n\n' note\n''' <summary>doc</summary>\nSub A()\n", []token.Kind{
		token.KwSub, token.Ident, token.LParen, token.RParen, token.EOL,
	})
	var kinds []token.TriviaKind
	for _, tv := range toks[0].Leading {
		kinds = append(kinds, tv.Kind)
	}
	want := []token.TriviaKind{
		token.TriviaNewline, token.TriviaLineComment, token.TriviaNewline,
		token.TriviaDocLine, token.TriviaNewline,
	}
	if len(kinds) != len(want) {
		t.Fatalf("trivia kinds = %v, want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Fatalf("trivia kinds = %v, want %v", kinds, want)
		}
	}
}

func TestTrailingCommentLeadsEOL(t *testing.T) {
	toks := expectTokens(t, "x = 1 ' set x\n", []token.Kind{
		token.Ident, token.Assign, token.IntLit, token.EOL,
	})
	eol := toks[3]
	found := false
	for _, tv := range eol.Leading {
		if tv.Kind == token.TriviaLineComment && tv.Text == "' set x" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected comment trivia on EOL, got %+v", eol.Leading)
	}
}

func TestREMComment(t *testing.T) {
	toks := expectTokens(t, "REM old style\nremark = 1\n", []token.Kind{
		token.Ident, token.Assign, token.IntLit, token.EOL,
	})
	if toks[0].Text != "remark" {
		t.Fatalf("REM must not swallow identifiers starting with rem: %q", toks[0].Text)
	}
	if toks[0].Leading[0].Kind != token.TriviaLineComment {
		t.Fatalf("expected REM comment trivia, got %+v", toks[0].Leading)
	}
}

func TestExplicitContinuation(t *testing.T) {
	toks := expectTokens(t, "x = a & _\n    b\n", []token.Kind{
		token.Ident, token.Assign, token.Ident, token.Amp, token.Ident, token.EOL,
	})
	hasCont := false
	for _, tv := range toks[4].Leading {
		hasCont = hasCont || tv.Kind == token.TriviaContinuation
	}
	if !hasCont {
		t.Fatalf("expected continuation trivia before b, got %+v", toks[4].Leading)
	}
}

func TestUnderscoreIdentifier(t *testing.T) {
	expectTokens(t, "_count = 1", []token.Kind{token.Ident, token.Assign, token.IntLit, token.EOL})
}

func TestDirectiveTrivia(t *testing.T) {
	toks := expectTokens(t, "#Region \"Helpers\"\nSub A()\nEnd Sub\n#End Region\n", []token.Kind{
		token.KwSub, token.Ident, token.LParen, token.RParen, token.EOL,
		token.KwEnd, token.KwSub, token.EOL,
	})
	dir := toks[0].Leading[0]
	if dir.Kind != token.TriviaDirective || dir.Directive == nil || dir.Directive.Name != "Region" || dir.Directive.Payload != `"Helpers"` {
		t.Fatalf("unexpected directive %+v", dir)
	}
}

func TestStrings(t *testing.T) {
	tests := []struct {
		in   string
		kind token.Kind
	}{
		{`"plain"`, token.StringLit},
		{`"say ""hi"""`, token.StringLit},
		{`""`, token.StringLit},
		{`"a"c`, token.CharLit},
		{`$"Hello {name}!"`, token.InterpStringLit},
		{`$"{If(x, "a", "b")} {{literal}}"`, token.InterpStringLit},
		{`#1/2/2024#`, token.DateLit},
	}
	for _, tt := range tests {
		toks := expectTokens(t, tt.in, []token.Kind{tt.kind, token.EOL})
		if toks[0].Text != tt.in {
			t.Errorf("text = %q, want %q", toks[0].Text, tt.in)
		}
	}
}

func TestUnterminatedString(t *testing.T) {
	lx, bag := makeTestLexer(`x = "open`)
	lx.All()
	if !bag.HasErrors() || bag.Items()[0].Code != diag.LexUnterminatedString {
		t.Fatalf("expected unterminated string error, got %v", bag.Items())
	}
}

func TestNumbers(t *testing.T) {
	tests := []struct {
		in   string
		kind token.Kind
	}{
		{"42", token.IntLit},
		{"1_000", token.IntLit},
		{"&HFF", token.IntLit},
		{"&o17", token.IntLit},
		{"&B1010", token.IntLit},
		{"10L", token.IntLit},
		{"7UI", token.IntLit},
		{"3.14", token.FloatLit},
		{".5", token.FloatLit},
		{"1.5E+3", token.FloatLit},
		{"9.99D", token.FloatLit},
		{"2#", token.FloatLit},
	}
	for _, tt := range tests {
		toks := expectTokens(t, tt.in, []token.Kind{tt.kind, token.EOL})
		if toks[0].Text != tt.in {
			t.Errorf("text = %q, want %q", toks[0].Text, tt.in)
		}
	}
}

func TestConcatenationIsNotLongSuffix(t *testing.T) {
	expectTokens(t, `s = 10 & "x"`, []token.Kind{
		token.Ident, token.Assign, token.IntLit, token.Amp, token.StringLit, token.EOL,
	})
}

func TestOperators(t *testing.T) {
	expectTokens(t, "a <> b <= c >= d << 1 >>= 2 := e?.f!g", []token.Kind{
		token.Ident, token.NotEq, token.Ident, token.LtEq, token.Ident, token.GtEq, token.Ident,
		token.Shl, token.IntLit, token.ShrAssign, token.IntLit, token.ColonAssign, token.Ident,
		token.QuestionDot, token.Ident, token.Bang, token.Ident, token.EOL,
	})
}

func TestBracketedIdentifier(t *testing.T) {
	toks := expectTokens(t, "Dim [Select] = 1", []token.Kind{
		token.KwDim, token.Ident, token.Assign, token.IntLit, token.EOL,
	})
	if toks[1].Name() != "Select" {
		t.Fatalf("Name() = %q", toks[1].Name())
	}
}

func TestTypeCharacterSuffix(t *testing.T) {
	toks := expectTokens(t, `s = Left$(x, 1)`, []token.Kind{
		token.Ident, token.Assign, token.Ident, token.LParen, token.Ident, token.Comma, token.IntLit, token.RParen, token.EOL,
	})
	if toks[2].Text != "Left$" {
		t.Fatalf("expected Left$, got %q", toks[2].Text)
	}
}

func TestUnknownCharacter(t *testing.T) {
	lx, bag := makeTestLexer("x = 1;")
	toks := lx.All()
	if toks[3].Kind != token.Invalid || toks[3].Text != ";" {
		t.Fatalf("expected invalid ';', got %v %q", toks[3].Kind, toks[3].Text)
	}
	if bag.Items()[0].Code != diag.LexUnknownChar {
		t.Fatalf("expected LexUnknownChar, got %v", bag.Items())
	}
}

func TestPeekDoesNotConsume(t *testing.T) {
	lx, _ := makeTestLexer("Return x")
	p := lx.Peek()
	n := lx.Next()
	if p.Kind != token.KwReturn || n.Kind != token.KwReturn || p.Span != n.Span {
		t.Fatalf("Peek/Next mismatch: %v %v", p, n)
	}
}

func TestEmptyInput(t *testing.T) {
	lx, _ := makeTestLexer("")
	if tok := lx.Next(); tok.Kind != token.EOF {
		t.Fatalf("expected EOF, got %v", tok.Kind)
	}
	if tok := lx.Next(); tok.Kind != token.EOF {
		t.Fatalf("EOF must repeat, got %v", tok.Kind)
	}
}

func TestTextIsSourceSlice(t *testing.T) {
	src := "Public Function Add(a As Integer) As Integer\n    Return a + 1\nEnd Function\n"
	lx, bag := makeTestLexer(src)
	for _, tok := range lx.All() {
		if tok.Kind == token.EOF {
			break
		}
		if got := src[tok.Span.Start:tok.Span.End]; got != tok.Text {
			t.Fatalf("span text %q != token text %q", got, tok.Text)
		}
	}
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics %v", bag.Items())
	}
	if strings.Count(src, "\n") != 3 {
		t.Fatal("fixture changed")
	}
}
