package simplot

import (
	"fmt"
	"io"
	"iter"
	"strings"
)

// Field is a named value for NewState.
type Field struct {
	Name  string
	Value any
}

// F returns a Field.
func F(name string, value any) Field { return Field{Name: name, Value: value} }

// State is a free-form container of named simulation variables.
// Fields keep the order in which they were first set.
type State struct {
	names  []string
	values map[string]any
}

// NewState creates a State holding fields. If a name repeats, the later
// value wins and the field keeps its first position.
//
// Example:
//
//	bikes := simplot.NewState(simplot.F("olin", 10), simplot.F("wellesley", 2))
//	bikes.Set("olin", bikes.Int("olin")-1)
func NewState(fields ...Field) *State {
	s := &State{values: make(map[string]any, len(fields))}
	for _, f := range fields {
		s.Set(f.Name, f.Value)
	}
	return s
}

// Set stores value under name. New names are appended to the order.
func (s *State) Set(name string, value any) {
	if _, ok := s.values[name]; !ok {
		s.names = append(s.names, name)
	}
	s.values[name] = value
}

// Get returns the value stored under name.
func (s *State) Get(name string) (any, bool) {
	v, ok := s.values[name]
	return v, ok
}

// Has reports whether name is set.
func (s *State) Has(name string) bool {
	_, ok := s.values[name]
	return ok
}

// Float returns the value under name as a float64. Integer values are
// converted; a missing or non-numeric value yields 0.
func (s *State) Float(name string) float64 {
	switch v := s.values[name].(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case int32:
		return float64(v)
	case uint:
		return float64(v)
	case uint64:
		return float64(v)
	}
	return 0
}

// Int returns the value under name as an int. Float values are
// truncated; a missing or non-numeric value yields 0.
func (s *State) Int(name string) int {
	switch v := s.values[name].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case int32:
		return int(v)
	case uint:
		return int(v)
	case uint64:
		return int(v)
	case float64:
		return int(v)
	case float32:
		return int(v)
	}
	return 0
}

// Names returns the field names in order.
func (s *State) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// Len returns the number of fields.
func (s *State) Len() int { return len(s.names) }

// All iterates over the fields in order.
func (s *State) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		for _, name := range s.names {
			if !yield(name, s.values[name]) {
				return
			}
		}
	}
}

// String returns the PrintState rendering of s.
func (s *State) String() string {
	var b strings.Builder
	_ = PrintState(&b, s)
	return b.String()
}

// PrintState writes each field of s as "name = value" on its own line,
// in field order.
func PrintState(w io.Writer, s *State) error {
	for name, value := range s.All() {
		if _, err := fmt.Fprintf(w, "%s = %v\n", name, value); err != nil {
			return err
		}
	}
	return nil
}
