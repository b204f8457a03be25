// Package status defines the fixed attendance status vocabulary: six tags
// with a display symbol and a Chinese display name each, plus the derived
// abnormal and leave classifications. The mappings are immutable after init.
package status

const (
	Present       = "present"
	Absent        = "absent"
	PersonalLeave = "personal_leave"
	SickLeave     = "sick_leave"
	Late          = "late"
	EarlyLeave    = "early_leave"
)

var all = []string{Present, Absent, PersonalLeave, SickLeave, Late, EarlyLeave}

var symbols = map[string]string{
	Present:       "√",
	Absent:        "X",
	PersonalLeave: "△",
	SickLeave:     "○",
	Late:          "+",
	EarlyLeave:    "–",
}

var names = map[string]string{
	Present:       "出勤",
	Absent:        "旷课",
	PersonalLeave: "事假",
	SickLeave:     "病假",
	Late:          "迟到",
	EarlyLeave:    "早退",
}

var fromSymbol = func() map[string]string {
	m := make(map[string]string, len(symbols))
	for s, sym := range symbols {
		m[sym] = s
	}
	return m
}()

// All returns the six valid statuses in their canonical order.
func All() []string {
	out := make([]string, len(all))
	copy(out, all)
	return out
}

// IsValid reports whether s is one of the six vocabulary values. Matching is
// exact; case variants are invalid.
func IsValid(s string) bool {
	_, ok := symbols[s]
	return ok
}

// Symbol returns the display symbol for a status, or "" if s is not in the
// vocabulary.
func Symbol(s string) string {
	return symbols[s]
}

// FromSymbol is the inverse of Symbol; unknown symbols map to "".
func FromSymbol(sym string) string {
	return fromSymbol[sym]
}

// DisplayName returns the Chinese display name, or "" for unknown statuses.
func DisplayName(s string) string {
	return names[s]
}

// IsAbnormal reports whether s belongs to the abnormal classification
// (absent, late, early_leave).
func IsAbnormal(s string) bool {
	return s == Absent || s == Late || s == EarlyLeave
}

// IsLeave reports whether s belongs to the leave classification
// (personal_leave, sick_leave).
func IsLeave(s string) bool {
	return s == PersonalLeave || s == SickLeave
}
