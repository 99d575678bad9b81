package snowflake

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNodeRange(t *testing.T) {
	_, err := NewNode(-1)
	assert.Error(t, err)

	_, err = NewNode(1024)
	assert.Error(t, err)

	_, err = NewNode(0)
	assert.NoError(t, err)

	_, err = NewNode(1023)
	assert.NoError(t, err)
}

func TestGenerateMonotonic(t *testing.T) {
	node, err := NewNode(1)
	require.NoError(t, err)

	prev := node.Generate()
	for i := 0; i < 10000; i++ {
		id := node.Generate()
		require.Greater(t, id, prev, "ids must be strictly increasing")
		prev = id
	}
}

func TestGenerateUniqueUnderConcurrency(t *testing.T) {
	node, err := NewNode(2)
	require.NoError(t, err)

	const workers = 8
	const perWorker = 2000

	var mu sync.Mutex
	seen := make(map[int64]bool, workers*perWorker)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ids := make([]int64, 0, perWorker)
			for i := 0; i < perWorker; i++ {
				ids = append(ids, node.Generate())
			}
			mu.Lock()
			defer mu.Unlock()
			for _, id := range ids {
				seen[id] = true
			}
		}()
	}
	wg.Wait()

	assert.Len(t, seen, workers*perWorker)
}
