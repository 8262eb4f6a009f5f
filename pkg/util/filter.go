package util

// InPlaceFilter keeps the elements matching p, preserving their relative
// order and reusing the backing array.
func InPlaceFilter[T any](s *[]T, p func(T) bool) {
	i := 0
	for _, e := range *s {
		if p(e) {
			(*s)[i] = e
			i++
		}
	}
	*s = (*s)[:i]
}
