package utils

func FindIndex[T comparable](slice []T, item T) int {
	for i, v := range slice {
		if v == item {
			return i
		}
	}
	return -1
}

// Remove deletes the first occurrence of item, keeping the order of the rest.
// It reports whether item was found.
func Remove[T comparable](slice []T, item T) ([]T, bool) {
	i := FindIndex(slice, item)
	if i < 0 {
		return slice, false
	}
	return append(slice[:i], slice[i+1:]...), true
}

// Replace swaps the first occurrence of old for new in place.
func Replace[T comparable](slice []T, old, new T) bool {
	i := FindIndex(slice, old)
	if i < 0 {
		return false
	}
	slice[i] = new
	return true
}
