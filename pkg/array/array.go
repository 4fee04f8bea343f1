package array

// Returns the index of the first element that is true on the condition.
// Otherwise, returns -1.
func Some[T any](arr []T, cond func(T) bool) int {
	return SomeFrom(arr, 0, cond)
}

// Returns the index of the first element at or after start that is true on
// the condition. Otherwise, returns -1.
func SomeFrom[T any](arr []T, start int, cond func(T) bool) int {
	for i := max(start, 0); i < len(arr); i++ {
		if cond(arr[i]) {
			return i
		}
	}
	return -1
}

// Returns true if the array contains the given value.
func Contains[T comparable](arr []T, value T) bool {
	index := Some(arr, func(elem T) bool {
		return elem == value
	})
	return index > -1
}

// Returns a new array holding fn applied to every element.
func Map[T, U any](arr []T, fn func(T) U) []U {
	mapped := make([]U, 0, len(arr))
	for _, elem := range arr {
		mapped = append(mapped, fn(elem))
	}
	return mapped
}
