package driver

import (
	"context"
	"time"

	"cglogic/internal/trace"
)

// runPhase выполняет fn как одну фазу: span трассировки, запись в таймер,
// события наблюдателя и прогресса. fn возвращает false при ошибках фазы.
func runPhase(ctx context.Context, opts *Options, path string, stage Stage, fn func(context.Context) bool) bool {
	name := string(stage)
	ctx, span := trace.BeginCtx(ctx, trace.ScopePhase, name)
	if opts.Observer != nil {
		opts.Observer(PhaseEvent{Path: path, Name: name, Status: PhaseStart})
	}
	emit(opts.Progress, Event{File: path, Stage: stage, Status: StatusWorking})

	start := time.Now()
	ok := fn(ctx)
	elapsed := time.Since(start)

	if !ok {
		span.Fail()
	}
	span.End("")
	if opts.Timer != nil {
		opts.Timer.Add(name, elapsed)
	}
	if opts.Observer != nil {
		opts.Observer(PhaseEvent{Path: path, Name: name, Status: PhaseEnd, Elapsed: elapsed, Failed: !ok})
	}
	return ok
}
