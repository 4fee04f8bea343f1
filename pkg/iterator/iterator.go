package iterator

import "iter"

// CollectUntilErr drains a fallible sequence, stopping at the first error.
// Values gathered before the failure are discarded.
func CollectUntilErr[T any](it iter.Seq2[T, error]) ([]T, error) {
	p := []T{}
	for value, err := range it {
		if err != nil {
			return nil, err
		}
		p = append(p, value)
	}
	return p, nil
}
