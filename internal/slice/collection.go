package slice

type identifiable interface {
	GetID() string
}

func indexByID[T identifiable](items []T, id string) int {
	for i, item := range items {
		if item.GetID() == id {
			return i
		}
	}
	return -1
}

// replaceByID swaps in item where its id matches and reports whether it did.
func replaceByID[T identifiable](items []T, item T) bool {
	i := indexByID(items, item.GetID())
	if i < 0 {
		return false
	}
	items[i] = item
	return true
}

// removeByID returns items without id and whether id was present.
func removeByID[T identifiable](items []T, id string) ([]T, bool) {
	i := indexByID(items, id)
	if i < 0 {
		return items, false
	}
	out := make([]T, 0, len(items)-1)
	out = append(out, items[:i]...)
	return append(out, items[i+1:]...), true
}

func prepend[T any](items []T, item T) []T {
	out := make([]T, 0, len(items)+1)
	out = append(out, item)
	return append(out, items...)
}

func copyItems[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return append([]T(nil), items...)
}

func copyPtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func decrement(total int) int {
	if total > 0 {
		return total - 1
	}
	return 0
}
