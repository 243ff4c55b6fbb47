package util

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

// Filter returns the elements of s matching p, leaving s untouched
func Filter[T any](s []T, p func(T) bool) []T {
	filtered := []T{}
	for _, e := range s {
		if p(e) {
			filtered = append(filtered, e)
		}
	}
	return filtered
}
