package diag

import "cglogic/internal/source"

// reportKey: одинаковый код, span и текст означают одну и ту же проблему.
type reportKey struct {
	code Code
	span source.Span
	msg  string
}

// DedupReporter forwards each distinct diagnostic once. The lexer and the
// parser of one file share it, so a problem seen by both phases at the same
// span is reported a single time.
type DedupReporter struct {
	next       Reporter
	seen       map[reportKey]struct{}
	suppressed int
}

func NewDedupReporter(next Reporter) *DedupReporter {
	return &DedupReporter{next: next, seen: make(map[reportKey]struct{})}
}

func (r *DedupReporter) Report(code Code, sev Severity, primary source.Span, msg string, suggestions []string) {
	if r == nil {
		return
	}
	key := reportKey{code: code, span: primary, msg: msg}
	if _, dup := r.seen[key]; dup {
		r.suppressed++
		return
	}
	r.seen[key] = struct{}{}
	if r.next != nil {
		r.next.Report(code, sev, primary, msg, suggestions)
	}
}

// Suppressed returns how many repeats were dropped.
func (r *DedupReporter) Suppressed() int {
	if r == nil {
		return 0
	}
	return r.suppressed
}
