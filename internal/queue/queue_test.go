package queue

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPushPopOrder(t *testing.T) {
	q := New[int]()
	assert.True(t, q.Empty())

	q.Push(1)
	q.Push(2, 3)
	assert.Equal(t, 3, q.Len())

	for want := 1; want <= 3; want++ {
		got, ok := q.Pop()
		assert.True(t, ok)
		assert.Equal(t, want, got)
	}

	_, ok := q.Pop()
	assert.False(t, ok)
}

func TestClear(t *testing.T) {
	q := New[string]()
	q.Push("a", "b")
	q.Clear()
	assert.True(t, q.Empty())

	_, ok := q.Pop()
	assert.False(t, ok)
}

func TestConcurrentPushPop(t *testing.T) {
	q := New[int]()
	const items = 1000

	var wg sync.WaitGroup
	for w := 0; w < 4; w++ {
		wg.Add(1)
		go func(base int) {
			defer wg.Done()
			for i := 0; i < items; i++ {
				q.Push(base + i)
			}
		}(w * items)
	}
	wg.Wait()

	assert.Equal(t, 4*items, q.Len())

	seen := 0
	for {
		if _, ok := q.Pop(); !ok {
			break
		}
		seen++
	}
	assert.Equal(t, 4*items, seen)
}
