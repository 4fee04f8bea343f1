package iterator_test

import (
	"errors"
	"iter"
	"testing"

	"github.com/ian-shakespeare/gmplus/pkg/iterator"
	"github.com/stretchr/testify/assert"
)

func sequence(values []int, failAt int) iter.Seq2[int, error] {
	return func(yield func(int, error) bool) {
		for i, value := range values {
			var err error
			if i == failAt {
				err = errors.New("failed")
			}
			if !yield(value, err) {
				return
			}
		}
	}
}

func TestCollectUntilErr(t *testing.T) {
	t.Parallel()

	t.Run("all", func(t *testing.T) {
		t.Parallel()

		values, err := iterator.CollectUntilErr(sequence([]int{1, 2, 3}, -1))
		assert.NoError(t, err)
		assert.Equal(t, []int{1, 2, 3}, values)
	})

	t.Run("stopsAtError", func(t *testing.T) {
		t.Parallel()

		pulled := 0
		var seq iter.Seq2[int, error] = func(yield func(int, error) bool) {
			for value, err := range sequence([]int{1, 2, 3}, 1) {
				pulled++
				if !yield(value, err) {
					return
				}
			}
		}

		values, err := iterator.CollectUntilErr(seq)
		assert.EqualError(t, err, "failed")
		assert.Nil(t, values)
		assert.Equal(t, 2, pulled)
	})
}
