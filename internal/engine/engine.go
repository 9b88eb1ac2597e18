package engine

import (
	"context"
	"fmt"
	"runtime"
	"strconv"

	"golang.org/x/sync/errgroup"

	"codecleanup/internal/ast"
	"codecleanup/internal/diag"
	"codecleanup/internal/parser"
	"codecleanup/internal/rules"
	"codecleanup/internal/trace"
)

// Engine runs a registry of rules over syntax trees. One Engine may serve
// any number of concurrent runs: it holds no per-run state.
type Engine struct {
	registry *rules.Registry
	jobs     int
}

// New returns an engine over reg. jobs <= 0 means GOMAXPROCS.
func New(reg *rules.Registry, jobs int) *Engine {
	if reg == nil {
		// набор по умолчанию без opt-in правил
		reg, _ = rules.DefaultRegistry().Filter(rules.Selection{})
	}
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	return &Engine{registry: reg, jobs: jobs}
}

func (e *Engine) Registry() *rules.Registry { return e.registry }

// Analyze checks the parse result first: with any error diagnostic, or
// structural errors counted by the parser, the tree is not analysed and the
// report comes back empty with StatusParseFailed.
func (e *Engine) Analyze(ctx context.Context, res parser.Result) (*Report, error) {
	var diags []diag.Diagnostic
	if res.Bag != nil {
		diags = append(diags, res.Bag.Items()...)
	}
	if res.Tree == nil || res.Errors > 0 || res.Bag.HasErrors() {
		return &Report{Path: treePath(res.Tree), Status: StatusParseFailed, Diagnostics: diags}, nil
	}
	rep, err := e.Run(ctx, res.Tree)
	if err != nil {
		return nil, err
	}
	rep.Diagnostics = diags
	return rep, nil
}

// Unsupported is the report for input in another language.
func Unsupported(path string, diags []diag.Diagnostic) *Report {
	return &Report{Path: path, Status: StatusUnsupported, Diagnostics: diags}
}

// Run executes every rule over tree. Rules run in parallel; each result
// lands in the slot of its rule, so the layout follows registration order
// whatever the scheduling.
func (e *Engine) Run(ctx context.Context, tree *ast.Tree) (*Report, error) {
	tracer := trace.FromContext(ctx)
	span := trace.Begin(tracer, trace.ScopePass, "analyze", trace.CurrentSpan(ctx).SpanID)
	ctx = span.Context(ctx)

	cats := e.registry.Categories()
	type slot struct{ cat, rule int }
	var slots []slot
	for ci, c := range cats {
		for ri := range c.Rules {
			slots = append(slots, slot{ci, ri})
		}
	}
	results := make([][]rules.Finding, len(slots))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, min(e.jobs, len(slots))))
	for i, s := range slots {
		rule := cats[s.cat].Rules[s.rule]
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = runRule(gctx, rule, tree)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		span.End("cancelled")
		return nil, fmt.Errorf("analysis interrupted: %w", err)
	}

	rep := &Report{Path: treePath(tree), Status: StatusOK, Sections: make([]Section, len(cats))}
	for ci, c := range cats {
		rep.Sections[ci].Name = c.Name
	}
	for i, s := range slots {
		sec := &rep.Sections[s.cat]
		sec.Findings = append(sec.Findings, results[i]...)
	}
	span.WithExtra("findings", strconv.Itoa(rep.Count())).End("")
	return rep, nil
}

// runRule shields the run from a failing rule: a panic drops that rule's
// findings and is recorded in the trace.
func runRule(ctx context.Context, rule rules.Rule, tree *ast.Tree) (out []rules.Finding) {
	span := trace.Begin(trace.FromContext(ctx), trace.ScopeRule, "rule:"+rule.ID(), trace.CurrentSpan(ctx).SpanID)
	defer func() {
		if r := recover(); r != nil {
			out = nil
			span.End(fmt.Sprintf("panic: %v", r))
			return
		}
		span.WithExtra("findings", strconv.Itoa(len(out))).End("")
	}()
	return rule.Check(tree)
}

func treePath(tree *ast.Tree) string {
	if tree == nil || tree.File == nil {
		return ""
	}
	return tree.File.Path
}
