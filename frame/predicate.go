package frame

// Predicate selects frames.
type Predicate func(Frame) bool

// Exact matches f only.
func Exact(f Frame) Predicate {
	return func(g Frame) bool { return g == f }
}

// OfKind matches every frame of kind k, realized or not.
func OfKind(k Kind) Predicate {
	return func(g Frame) bool { return g.Kind == k }
}

// Realization matches the realization of kind k labelled with year.
func Realization(k Kind, year int) Predicate {
	return func(g Frame) bool { return g.Kind == k && g.Realization == year }
}

// Any matches when at least one of preds does. Any() matches nothing.
func Any(preds ...Predicate) Predicate {
	return func(g Frame) bool {
		for _, p := range preds {
			if p(g) {
				return true
			}
		}

		return false
	}
}
