package domain

// FirstSet returns the first of vals that is not T's zero value.
func FirstSet[T comparable](vals ...T) T {
	var zero T
	for _, v := range vals {
		if v != zero {
			return v
		}
	}
	return zero
}

// ValueOr dereferences p, or returns fallback when p is nil.
func ValueOr[T any](p *T, fallback T) T {
	if p == nil {
		return fallback
	}
	return *p
}

// GradeOr is the recorded grade, or fallback for activities without one.
func (a Activity) GradeOr(fallback float64) float64 {
	return ValueOr(a.Grade, fallback)
}
