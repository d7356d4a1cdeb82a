package ids

import (
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestULIDGenerator_NewID(t *testing.T) {
	t.Run("format", func(t *testing.T) {
		g := NewULIDGenerator()
		now := time.Date(2026, 3, 1, 18, 0, 0, 0, time.UTC)

		id, err := g.NewID(now)
		require.NoError(t, err)
		require.Len(t, id, ulid.EncodedSize)

		parsed, err := ulid.ParseStrict(id)
		require.NoError(t, err)
		assert.True(t, now.Equal(ulid.Time(parsed.Time())))
	})

	t.Run("monotonic within the same instant", func(t *testing.T) {
		g := NewULIDGenerator()
		now := time.Now()

		prev := ""
		for i := 0; i < 1000; i++ {
			id, err := g.NewID(now)
			require.NoError(t, err)
			require.Greater(t, id, prev)
			prev = id
		}
	})

	t.Run("later instant sorts after", func(t *testing.T) {
		g := NewULIDGenerator()
		base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

		earlier, err := g.NewID(base)
		require.NoError(t, err)
		later, err := g.NewID(base.Add(time.Second))
		require.NoError(t, err)
		assert.Less(t, earlier, later)
	})

	t.Run("concurrent calls are unique", func(t *testing.T) {
		g := NewULIDGenerator()
		const workers, perWorker = 8, 200

		var mu sync.Mutex
		all := make([]string, 0, workers*perWorker)
		var wg sync.WaitGroup
		for w := 0; w < workers; w++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				local := make([]string, 0, perWorker)
				for i := 0; i < perWorker; i++ {
					id, err := g.NewID(time.Now())
					if err != nil {
						t.Error(err)
						return
					}
					local = append(local, id)
				}
				mu.Lock()
				all = append(all, local...)
				mu.Unlock()
			}()
		}
		wg.Wait()

		sort.Strings(all)
		for i := 1; i < len(all); i++ {
			require.NotEqual(t, all[i-1], all[i])
		}
		assert.Len(t, all, workers*perWorker)
	})
}

