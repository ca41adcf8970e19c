package directive

import (
	"sync"

	"cglogic/internal/source"
	"cglogic/internal/token"
)

// Registry collects directive scenarios from checked files.
// It is safe for concurrent use.
type Registry struct {
	mu          sync.Mutex
	scenarios   []Scenario
	byNamespace map[string][]int // namespace -> indices into scenarios slice
}

// NewRegistry creates an empty directive registry.
func NewRegistry() *Registry {
	return &Registry{
		scenarios:   make([]Scenario, 0),
		byNamespace: make(map[string][]int),
	}
}

// Add registers a new directive scenario.
func (r *Registry) Add(scenario *Scenario) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := len(r.scenarios)
	r.scenarios = append(r.scenarios, *scenario)
	r.byNamespace[scenario.Namespace] = append(r.byNamespace[scenario.Namespace], idx)
}

// All returns all registered scenarios.
func (r *Registry) All() []Scenario {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Scenario(nil), r.scenarios...)
}

// FilterByNamespace returns scenarios matching any of the given namespaces.
// If namespaces is empty, returns all scenarios.
func (r *Registry) FilterByNamespace(namespaces []string) []Scenario {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(namespaces) == 0 {
		return append([]Scenario(nil), r.scenarios...)
	}
	var result []Scenario
	for _, ns := range namespaces {
		for _, idx := range r.byNamespace[ns] {
			result = append(result, r.scenarios[idx])
		}
	}
	return result
}

// Len returns the total number of scenarios.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.scenarios)
}

// CollectFromTokens extracts directive scenarios from the comment trivia
// of a token stream. The directive applies to the line its comment starts on.
func (r *Registry) CollectFromTokens(file *source.File, tokens []token.Token) {
	if file == nil {
		return
	}
	// Индекс по namespace внутри файла
	namespaceIndex := make(map[string]int)

	for _, tok := range tokens {
		for _, tr := range tok.Leading {
			if tr.Kind != token.TriviaLineComment && tr.Kind != token.TriviaBlockComment {
				continue
			}
			namespace, codes, ok := ParseComment(tr.Text)
			if !ok {
				continue
			}
			idx := namespaceIndex[namespace]
			namespaceIndex[namespace]++

			r.Add(&Scenario{
				Namespace:  namespace,
				Index:      idx,
				SourceFile: file.Path,
				Span:       tr.Span,
				Line:       file.Position(tr.Span.Start).Line,
				Codes:      codes,
			})
		}
	}
}
