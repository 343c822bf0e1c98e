package relationship

// Store exposes the category catalogue to handlers and the classifier.
type Store interface {
	List() []Type
	FindByKey(key string) (Type, bool)
}

// MemoryStore implements Store over a fixed slice.
type MemoryStore struct {
	items []Type
}

// NewMemoryStore returns a MemoryStore preloaded with the supplied types.
func NewMemoryStore(items []Type) *MemoryStore {
	return &MemoryStore{items: append([]Type(nil), items...)}
}

// List returns the categories in matrix order, egg last.
func (s *MemoryStore) List() []Type {
	return append([]Type(nil), s.items...)
}

// FindByKey looks up a category by key.
func (s *MemoryStore) FindByKey(key string) (Type, bool) {
	for _, item := range s.items {
		if item.Key == key {
			return item, true
		}
	}
	return Type{}, false
}
