package compare

// OrderedSet holds unique keys and iterates them in first-insertion order.
type OrderedSet struct {
	keys  []string
	index map[string]struct{}
}

// NewOrderedSet builds a set from keys, dropping repeats after the first.
func NewOrderedSet(keys ...string) *OrderedSet {
	s := &OrderedSet{index: make(map[string]struct{}, len(keys))}
	for _, k := range keys {
		s.Add(k)
	}
	return s
}

// Add inserts key and reports whether it was new.
func (s *OrderedSet) Add(key string) bool {
	if _, ok := s.index[key]; ok {
		return false
	}
	s.index[key] = struct{}{}
	s.keys = append(s.keys, key)
	return true
}

func (s *OrderedSet) Contains(key string) bool {
	_, ok := s.index[key]
	return ok
}

func (s *OrderedSet) Len() int {
	return len(s.keys)
}

// Keys returns a copy of the keys in insertion order.
func (s *OrderedSet) Keys() []string {
	out := make([]string, len(s.keys))
	copy(out, s.keys)
	return out
}
