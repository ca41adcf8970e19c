package diag

import (
	"fmt"
	"math"
	"sort"

	"cglogic/internal/source"
)

// DefaultLimit is the Bag capacity used when the caller does not configure one.
const DefaultLimit = 100

// NoLimit makes a Bag keep every diagnostic.
const NoLimit = math.MaxInt

type Bag struct {
	items   []Diagnostic
	max     int
	dropped int
}

// NewBag creates a bag holding at most max diagnostics; max <= 0 means DefaultLimit.
func NewBag(max int) *Bag {
	if max <= 0 {
		max = DefaultLimit
	}
	return &Bag{
		items: make([]Diagnostic, 0, min(max, 16)),
		max:   max,
	}
}

// Add добавляет диагностику, учитывая лимит.
// При первом переполнении добавляется одна заметка TooManyDiagnostics,
// остальные только считаются. Возвращает false, если диагностика не добавлена.
func (b *Bag) Add(d Diagnostic) bool {
	if len(b.items) >= b.max {
		if b.dropped == 0 {
			b.items = append(b.items, Diagnostic{
				Severity: SevInfo,
				Code:     TooManyDiagnostics,
				Message:  fmt.Sprintf("too many diagnostics (limit %d); further ones suppressed", b.max),
				Primary:  d.Primary.ZeroAt(),
				Pos:      d.Pos,
			})
		}
		b.dropped++
		return false
	}
	b.items = append(b.items, d)
	return true
}

func (b *Bag) Cap() int {
	return b.max
}

// Dropped returns how many diagnostics were suppressed by the limit.
func (b *Bag) Dropped() int {
	return b.dropped
}

// HasErrors возвращает true, если есть хотя бы одна диагностика с Severity >= Error
func (b *Bag) HasErrors() bool {
	for i := range b.items {
		if b.items[i].Severity >= SevError {
			return true
		}
	}
	return false
}

// длина
func (b *Bag) Len() int {
	return len(b.items)
}

// Items возвращает read-only slice диагностик.
// ВАЖНО: не модифицируйте возвращаемый срез! (он указывает на внутренний массив Bag)
func (b *Bag) Items() []Diagnostic {
	return b.items
}

// Merge объединяет диагностики из другого Bag, расширяя лимит при необходимости.
func (b *Bag) Merge(other *Bag) {
	if other == nil {
		return
	}
	if n := len(b.items) + len(other.items); n > b.max {
		b.max = n
	}
	b.items = append(b.items, other.items...)
	b.dropped += other.dropped
}

// Resolve fills Pos for every diagnostic located in file.
func (b *Bag) Resolve(file *source.File) {
	if file == nil {
		return
	}
	for i := range b.items {
		if b.items[i].Primary.File == file.ID && !b.items[i].Pos.IsValid() {
			b.items[i].Pos = file.Position(b.items[i].Primary.Start)
		}
	}
}

// Sort сортирует диагностики по: file, start, end, severity (desc), code (asc).
// Заметка TooManyDiagnostics всегда остаётся последней.
// Стабильная сортировка сохраняет порядок обнаружения для равных ключей.
func (b *Bag) Sort() {
	sort.SliceStable(b.items, func(i, j int) bool {
		di, dj := b.items[i], b.items[j]
		if li, lj := di.Code == TooManyDiagnostics, dj.Code == TooManyDiagnostics; li != lj {
			return lj
		}
		if di.Primary.File != dj.Primary.File {
			return di.Primary.File < dj.Primary.File
		}
		if di.Primary.Start != dj.Primary.Start {
			return di.Primary.Start < dj.Primary.Start
		}
		if di.Primary.End != dj.Primary.End {
			return di.Primary.End < dj.Primary.End
		}
		if di.Severity != dj.Severity {
			return di.Severity > dj.Severity
		}
		return di.Code < dj.Code
	})
}
