package slicesx

// ContainsAny reports whether any element of needle appears in haystack.
func ContainsAny[T comparable](haystack []T, needle []T) bool {
	for _, n := range needle {
		for _, h := range haystack {
			if h == n {
				return true
			}
		}
	}
	return false
}

// Distinct returns the number of distinct elements in s.
func Distinct[T comparable](s []T) int {
	seen := make(map[T]struct{}, len(s))
	for _, v := range s {
		seen[v] = struct{}{}
	}
	return len(seen)
}
