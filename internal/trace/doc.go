// Package trace records what the analyzer is doing: command, phase, file
// and rule spans, streamed as text or NDJSON or kept in a ring buffer for a
// dump when a run fails.
//
// Tracers travel through the pipeline in the context:
//
//	ctx = trace.WithTracer(ctx, tracer)
//	span := trace.Begin(trace.FromContext(ctx), trace.ScopePass, "parse", trace.CurrentSpan(ctx).SpanID)
//	defer span.End("")
//	ctx = span.Context(ctx) // children pick span up as parent
//
// Levels: phase shows driver and pass spans, detail adds per-file and
// per-rule spans, debug adds point events.
package trace
