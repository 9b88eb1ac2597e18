package driver

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"codecleanup/internal/diag"
	"codecleanup/internal/engine"
	"codecleanup/internal/observ"
	"codecleanup/internal/source"
	"codecleanup/internal/trace"
)

// Options configure a batch run.
type Options struct {
	MaxDiagnostics int
	// Jobs bounds how many files are analysed at once; <= 0 means GOMAXPROCS.
	Jobs int
	// Cache is optional; nil disables it.
	Cache *DiskCache
	// CacheSalt is mixed into cache keys (thresholds and other settings
	// that change findings without changing the rule set).
	CacheSalt string
	Timer     *observ.Timer
	Progress  ProgressSink
	Stdin     io.Reader
}

// FileResult is the outcome for one input.
type FileResult struct {
	Path   string
	FileID source.FileID
	Report *engine.Report
	Cached bool
}

// Session holds every loaded file and the per-file results in input order.
type Session struct {
	FileSet *source.FileSet
	Results []FileResult
}

// Reports returns the reports in input order.
func (s *Session) Reports() []*engine.Report {
	out := make([]*engine.Report, 0, len(s.Results))
	for _, r := range s.Results {
		out = append(out, r.Report)
	}
	return out
}

// Diagnostics collects front-end diagnostics of every file, in input order.
func (s *Session) Diagnostics() []diag.Diagnostic {
	var out []diag.Diagnostic
	for _, r := range s.Results {
		out = append(out, r.Report.Diagnostics...)
	}
	return out
}

// Failed reports whether any input was not analysed because it did not parse.
func (s *Session) Failed() bool {
	for _, r := range s.Results {
		if r.Report.Status == engine.StatusParseFailed {
			return true
		}
	}
	return false
}

// Analyze loads every path (files as given, "-" for stdin) and runs the
// engine over each. Files are processed in parallel; results keep the input
// order. A file that cannot be read becomes a parse-failed report carrying
// an IO diagnostic rather than aborting the batch.
func Analyze(ctx context.Context, eng *engine.Engine, paths []string, opts Options) (*Session, error) {
	tracer := trace.FromContext(ctx)
	span := trace.Begin(tracer, trace.ScopeDriver, "analyze-batch", trace.CurrentSpan(ctx).SpanID)
	ctx = span.Context(ctx)
	defer span.End("")

	// FileSet не потокобезопасен: всё загружаем до запуска горутин.
	fs := source.NewFileSetWithBase("")
	ids := make([]source.FileID, len(paths))
	loadErrs := make([]error, len(paths))
	loadStart := time.Now()
	for i, path := range paths {
		emit(opts.Progress, Event{File: path, Stage: StageLoad, Status: StatusQueued})
		ids[i], loadErrs[i] = Load(fs, path, opts.Stdin)
		if loadErrs[i] != nil {
			// пустой файл-заглушка, чтобы у диагностики был свой FileID
			ids[i] = fs.AddVirtual(path, nil)
		}
	}
	if opts.Timer != nil {
		opts.Timer.Add("load", time.Since(loadStart))
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	// Результаты (индексы уникальны для каждой горутины, мьютекс не нужен)
	results := make([]FileResult, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, min(jobs, len(paths))))
	for i, path := range paths {
		g.Go(func() error {
			// Проверка отмены
			if err := gctx.Err(); err != nil {
				return err
			}
			if loadErrs[i] != nil {
				results[i] = FileResult{Path: path, FileID: ids[i], Report: loadFailure(path, ids[i], loadErrs[i])}
				emit(opts.Progress, Event{File: path, Stage: StageLoad, Status: StatusError, Err: loadErrs[i]})
				return nil
			}
			rep, cached, err := analyzeFile(gctx, eng, fs.Get(ids[i]), path, opts)
			if err != nil {
				emit(opts.Progress, Event{File: path, Stage: StageAnalyze, Status: StatusError, Err: err})
				return err
			}
			results[i] = FileResult{Path: path, FileID: ids[i], Report: rep, Cached: cached}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	span.WithExtra("files", strconv.Itoa(len(paths)))
	return &Session{FileSet: fs, Results: results}, nil
}

// analyzeFile runs one file: cache lookup, dialect gate, parse, rules.
func analyzeFile(ctx context.Context, eng *engine.Engine, file *source.File, path string, opts Options) (*engine.Report, bool, error) {
	span := trace.Begin(trace.FromContext(ctx), trace.ScopeFile, path, trace.CurrentSpan(ctx).SpanID)
	ctx = span.Context(ctx)
	started := time.Now()

	if foreignByExtension(path) {
		span.End("unsupported")
		emit(opts.Progress, Event{File: path, Stage: StageParse, Status: StatusDone, Elapsed: time.Since(started)})
		return engine.Unsupported(file.Path, []diag.Diagnostic{unsupportedDiagnostic(file, dialectCSharp())}), false, nil
	}

	var key Digest
	if opts.Cache != nil {
		key = CacheKey(file.Hash, eng.Registry(), fmt.Sprintf("%s|max=%d", opts.CacheSalt, opts.MaxDiagnostics))
		var payload DiskPayload
		// битый кэш — не ошибка, просто пересчитываем
		if ok, err := opts.Cache.Get(key, &payload); err == nil && ok {
			span.End("cached")
			emit(opts.Progress, Event{File: path, Stage: StageAnalyze, Status: StatusCached, Elapsed: time.Since(started)})
			return payloadToReport(&payload, file), true, nil
		}
	}

	emit(opts.Progress, Event{File: path, Stage: StageParse, Status: StatusWorking})
	parseStart := time.Now()
	res, ev, err := parseFile(ctx, file, opts.MaxDiagnostics)
	if err != nil {
		span.End("error")
		return nil, false, err
	}
	if opts.Timer != nil {
		opts.Timer.Add("parse", time.Since(parseStart))
	}

	if c, foreign := foreignByContent(path, ev); foreign {
		span.End("unsupported")
		emit(opts.Progress, Event{File: path, Stage: StageParse, Status: StatusDone, Elapsed: time.Since(started)})
		return engine.Unsupported(file.Path, []diag.Diagnostic{unsupportedDiagnostic(file, c)}), false, nil
	}

	emit(opts.Progress, Event{File: path, Stage: StageAnalyze, Status: StatusWorking})
	analyzeStart := time.Now()
	rep, err := eng.Analyze(ctx, res)
	if err != nil {
		span.End("error")
		return nil, false, err
	}
	if opts.Timer != nil {
		opts.Timer.Add("analyze", time.Since(analyzeStart))
	}
	rep.Path = file.Path

	if opts.Cache != nil {
		if err := opts.Cache.Put(key, reportToPayload(rep)); err != nil {
			trace.Point(ctx, trace.ScopeFile, "cache-put-failed", err.Error())
		}
	}
	span.WithExtra("status", rep.Status.String()).End("")
	emit(opts.Progress, Event{File: path, Stage: StageAnalyze, Status: StatusDone, Elapsed: time.Since(started)})
	return rep, false, nil
}

func loadFailure(path string, id source.FileID, err error) *engine.Report {
	return &engine.Report{
		Path:   path,
		Status: engine.StatusParseFailed,
		Diagnostics: []diag.Diagnostic{{
			Severity: diag.SevError,
			Code:     diag.IOLoadFileError,
			Message:  err.Error(),
			Primary:  source.Span{File: id},
		}},
	}
}
