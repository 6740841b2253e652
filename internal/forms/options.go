package forms

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// Option is a selectable reference record (category, period, income type).
type Option struct {
	ID   int64
	Name string
}

// Options are the reference lists a form can pick from, taken from the
// current cache.
type Options struct {
	Periods     []Option
	Categories  []Option
	IncomeTypes []Option
}

func firstName(opts []Option) string {
	if len(opts) == 0 {
		return ""
	}
	return opts[0].Name
}

func indexByName(opts []Option, name string) int {
	for i, o := range opts {
		if o.Name == name {
			return i
		}
	}
	return -1
}

func indexByID(opts []Option, id int64) int {
	for i, o := range opts {
		if o.ID == id {
			return i
		}
	}
	return -1
}

// step moves idx by dir with wraparound. A negative idx (no match) is
// returned unchanged.
func step(idx, dir, n int) int {
	if idx < 0 || n == 0 {
		return idx
	}
	return ((idx+dir)%n + n) % n
}

func cycleName(opts []Option, current string, dir int) string {
	i := step(indexByName(opts, current), dir, len(opts))
	if i < 0 {
		return current
	}
	return opts[i].Name
}

const maxMatchDistance = 2

// MatchOption picks the option best matching query: a case-insensitive
// prefix wins, then a substring, then the closest name by edit distance
// within maxMatchDistance and shorter than the query itself.
func MatchOption(query string, opts []Option) (int, bool) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" || len(opts) == 0 {
		return -1, false
	}
	for i, o := range opts {
		if strings.HasPrefix(strings.ToLower(o.Name), q) {
			return i, true
		}
	}
	for i, o := range opts {
		if strings.Contains(strings.ToLower(o.Name), q) {
			return i, true
		}
	}
	n := len([]rune(q))
	best, bestDist := -1, min(maxMatchDistance+1, n)
	for i, o := range opts {
		name := []rune(strings.ToLower(o.Name))
		if len(name) > n {
			name = name[:n]
		}
		if d := levenshtein.ComputeDistance(q, string(name)); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best, best >= 0
}

// seeker accumulates type-ahead input for an enumerable field.
type seeker struct {
	query string
}

func (s *seeker) push(r rune, opts []Option) (Option, bool) {
	s.query += string(r)
	i, ok := MatchOption(s.query, opts)
	if !ok {
		return Option{}, false
	}
	return opts[i], true
}

func (s *seeker) reset() { s.query = "" }
