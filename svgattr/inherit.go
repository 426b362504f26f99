package svgattr

// Inherit looks up `key` in `self`, then in `ancestors`, ordered
// from the nearest (the parent) to the root.
// It returns the first value found.
// Nil stores are skipped.
func Inherit(key string, self *Store, ancestors []*Store) (Value, bool) {
	if self != nil {
		if v, ok := self.Get(key); ok {
			return v, true
		}
	}
	for _, s := range ancestors {
		if s == nil {
			continue
		}
		if v, ok := s.Get(key); ok {
			return v, true
		}
	}
	return nil, false
}

// Resolved returns a store holding `key` resolved through Inherit,
// so that the typed accessors may be used on the result.
// The returned store is empty when no value is found.
func Resolved(key string, self *Store, ancestors []*Store) *Store {
	var out Store
	if v, ok := Inherit(key, self, ancestors); ok {
		out.Set(key, v)
	}
	return &out
}
