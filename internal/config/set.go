package config

// Set is a string set built once at load time for constant-time membership tests
type Set map[string]struct{}

// NewSet builds a set from items, ignoring empty strings
func NewSet(items ...string) Set {
	s := make(Set, len(items))
	for _, item := range items {
		if item == "" {
			continue
		}
		s[item] = struct{}{}
	}
	return s
}

// Has reports whether item is in the set. A nil set contains nothing.
func (s Set) Has(item string) bool {
	_, ok := s[item]
	return ok
}
