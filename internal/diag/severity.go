package diag

// Severity ranks a diagnostic. Every problem in a CGIF or CL source is an
// error; the only informational entry is the TooManyDiagnostics note that
// closes a truncated list.
type Severity uint8

const (
	SevInfo Severity = iota
	SevError
)

func (s Severity) String() string {
	switch s {
	case SevInfo:
		return "INFO"
	case SevError:
		return "ERROR"
	}
	return "UNKNOWN"
}
