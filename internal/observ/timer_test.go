package observ

import (
	"strings"
	"sync"
	"testing"
	"time"
)

func TestTimerAddSums(t *testing.T) {
	tm := NewTimer()
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tm.Add("parse", time.Millisecond)
		}()
	}
	wg.Wait()

	rep := tm.Report()
	if len(rep.Phases) != 1 {
		t.Fatalf("phases = %d, want 1", len(rep.Phases))
	}
	p := rep.Phases[0]
	if p.Count != 8 || p.DurationMS != 8 {
		t.Errorf("got count=%d dur=%v", p.Count, p.DurationMS)
	}
	if rep.TotalMS != 8 {
		t.Errorf("total = %v", rep.TotalMS)
	}
}

func TestTimerBeginEnd(t *testing.T) {
	tm := NewTimer()
	i := tm.Begin("tokenize")
	tm.End(i, "12 tokens")
	tm.End(42, "ignored")

	s := tm.Summary()
	if !strings.Contains(s, "tokenize") || !strings.Contains(s, "// 12 tokens") || !strings.Contains(s, "total") {
		t.Errorf("unexpected summary:\n%s", s)
	}
}

func TestEmptyReport(t *testing.T) {
	if rep := NewTimer().Report(); rep.TotalMS != 0 || len(rep.Phases) != 0 {
		t.Errorf("unexpected %+v", rep)
	}
}
