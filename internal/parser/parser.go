package parser

import (
	"context"
	"slices"
	"strconv"

	"codecleanup/internal/ast"
	"codecleanup/internal/diag"
	"codecleanup/internal/lexer"
	"codecleanup/internal/source"
	"codecleanup/internal/token"
	"codecleanup/internal/trace"
)

type Options struct {
	MaxErrors     uint
	CurrentErrors uint
	Reporter      diag.Reporter
}

// Enough - проверить, достигли ли мы максимального количества ошибок
func (o *Options) Enough() bool {
	if o.MaxErrors == 0 {
		return false
	}
	return o.CurrentErrors >= o.MaxErrors
}

type Result struct {
	Tree *ast.Tree
	Bag  *diag.Bag
	// Errors counts structural errors; a tree with errors is not analysed.
	Errors uint
}

// Parser — состояние парсера на один файл
type Parser struct {
	toks     []token.Token // весь поток токенов файла, последний всегда EOF
	pos      int
	b        *ast.Builder
	file     *source.File
	opts     Options
	lastSpan source.Span // span последнего съеденного токена для лучшей диагностики

	// open holds the closer of every block being parsed, innermost last.
	open []token.Kind
	// pendingNext counts loops already closed by a "Next j, i" line.
	pendingNext int
}

// ParseFile — входная точка для разбора одного файла.
// Лексер читается до конца сразу: грамматике нужен просмотр вперёд больше чем на один токен.
func ParseFile(ctx context.Context, file *source.File, lx *lexer.Lexer, opts Options) Result {
	span := trace.Begin(trace.FromContext(ctx), trace.ScopePass, "parse", trace.CurrentSpan(ctx).SpanID)

	toks := lx.All()
	p := Parser{
		toks: toks,
		b:    ast.NewBuilder(uint(len(toks)/2 + 1)),
		file: file,
		opts: opts,
	}

	root := p.parseCompilationUnit()
	tree := p.b.Finish(file, root)

	var bag *diag.Bag
	if br, ok := opts.Reporter.(diag.BagReporter); ok {
		bag = br.Bag
	} else if br, ok := opts.Reporter.(*diag.BagReporter); ok {
		bag = br.Bag
	}
	span.WithExtra("nodes", strconv.Itoa(tree.Len())).End("")
	return Result{Tree: tree, Bag: bag, Errors: p.opts.CurrentErrors}
}

func (p *Parser) peek() token.Token {
	return p.toks[p.pos]
}

// peekAt смотрит на n токенов вперёд, не выходя за EOF.
func (p *Parser) peekAt(n int) token.Token {
	i := p.pos + n
	if i >= len(p.toks) {
		return p.toks[len(p.toks)-1]
	}
	return p.toks[i]
}

func (p *Parser) at(k token.Kind) bool {
	return p.peek().Kind == k
}

func (p *Parser) at_or(kinds ...token.Kind) bool {
	return slices.Contains(kinds, p.peek().Kind)
}

// peekIs reports whether the token n ahead has one of kinds.
func (p *Parser) peekIs(n int, kinds ...token.Kind) bool {
	return slices.Contains(kinds, p.peekAt(n).Kind)
}

// atWord reports whether the next token is the contextual word w.
func (p *Parser) atWord(w string) bool {
	return p.peek().IsWord(w)
}

// parseCompilationUnit — верхний уровень: пока не EOF, разбираем члены.
func (p *Parser) parseCompilationUnit() ast.NodeID {
	root := p.b.New(ast.CompilationUnit, source.Span{File: p.file.ID, Start: 0, End: uint32(len(p.file.Content))})
	p.parseMembers(root, memberContext{})
	return root
}
