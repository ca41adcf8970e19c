// Package trace records what the cglogic pipeline is doing.
//
// It is the structured log of the tool: commands, files and phases emit
// span events (begin/end with duration and key/values) to a Tracer carried in
// context.Context. The default tracer is Nop.
//
// Enable it from the command line:
//
//	cglogic check --trace=- --trace-level=detail examples/
//
// # Levels
//
//   - LevelOff: nothing
//   - LevelError: failures only (Point events with Failure set)
//   - LevelPhase: commands and files
//   - LevelDetail: plus tokenize/parse/validate/translate phases
//   - LevelDebug: everything
//
// # Usage
//
//	ctx = trace.WithTracer(ctx, tracer)
//	span := trace.Begin(trace.FromContext(ctx), trace.ScopePhase, "parse", parentID)
//	defer span.End("")
package trace
