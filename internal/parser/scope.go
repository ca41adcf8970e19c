package parser

import "strconv"

// scopeStack: стек множеств переменных, по одному на тело квантора.
type scopeStack struct {
	frames []map[string]struct{}
}

func (s *scopeStack) push(names []string) {
	f := make(map[string]struct{}, len(names))
	for _, n := range names {
		f[n] = struct{}{}
	}
	s.frames = append(s.frames, f)
}

func (s *scopeStack) pop() {
	if len(s.frames) > 0 {
		s.frames = s.frames[:len(s.frames)-1]
	}
}

func (s *scopeStack) has(name string) bool {
	for i := len(s.frames) - 1; i >= 0; i-- {
		if _, ok := s.frames[i][name]; ok {
			return true
		}
	}
	return false
}

func itoa(n int) string { return strconv.Itoa(n) }

func plural(n int) string {
	if n == 1 {
		return "1 operand"
	}
	return itoa(n) + " operands"
}
