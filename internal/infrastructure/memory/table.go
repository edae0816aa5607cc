package memory

// table is one record kind. Writes of an open transaction go to dirty and
// reach base only on commit.
type table[K comparable, V any] struct {
	base  map[K]V
	dirty map[K]V
	clone func(V) V
}

func newTable[K comparable, V any](clone func(V) V) *table[K, V] {
	return &table[K, V]{base: make(map[K]V), clone: clone}
}

func (t *table[K, V]) begin() *table[K, V] {
	return &table[K, V]{base: t.base, dirty: make(map[K]V), clone: t.clone}
}

func (t *table[K, V]) get(k K) (V, bool) {
	if v, ok := t.dirty[k]; ok {
		return t.clone(v), true
	}
	v, ok := t.base[k]
	if !ok {
		return v, false
	}
	return t.clone(v), true
}

func (t *table[K, V]) put(k K, v V) {
	t.dirty[k] = t.clone(v)
}

func (t *table[K, V]) each(fn func(V)) {
	for _, v := range t.dirty {
		fn(t.clone(v))
	}
	for k, v := range t.base {
		if _, shadowed := t.dirty[k]; shadowed {
			continue
		}
		fn(t.clone(v))
	}
}

func (t *table[K, V]) commit() {
	for k, v := range t.dirty {
		t.base[k] = v
	}
	t.dirty = nil
}

func same[V any](v V) V { return v }
