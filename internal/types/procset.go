package types

import "sort"

// ProcedureSet is a set of stored procedure names. Names are compared
// exactly, so "GetUser" and "getuser" are distinct.
type ProcedureSet map[string]struct{}

// NewProcedureSet returns a set holding names.
func NewProcedureSet(names ...string) ProcedureSet {
	s := make(ProcedureSet, len(names))
	for _, n := range names {
		s.Add(n)
	}
	return s
}

// Add inserts name into the set.
func (s ProcedureSet) Add(name string) {
	s[name] = struct{}{}
}

// Contains reports whether name is in the set.
func (s ProcedureSet) Contains(name string) bool {
	_, ok := s[name]
	return ok
}

// Len returns the number of names.
func (s ProcedureSet) Len() int {
	return len(s)
}

// Merge adds every name of other to s.
func (s ProcedureSet) Merge(other ProcedureSet) {
	for n := range other {
		s[n] = struct{}{}
	}
}

// Sorted returns the names in lexical order.
func (s ProcedureSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for n := range s {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}
