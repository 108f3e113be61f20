package metrics

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	t.Run("accumulates counters between start and complete", func(t *testing.T) {
		c := NewCollector()
		c.Start(4, 25)
		c.AddEpisode()
		c.AddEpisode()
		c.AddFullPlayout()

		m := c.Complete()
		require.Equal(t, 4, m.Goroutines)
		require.Equal(t, 25, m.Cutoff)
		require.Equal(t, 2, m.Episodes)
		require.Equal(t, 1, m.FullPlayouts)
		require.Positive(t, m.Duration)
	})

	t.Run("start resets the counters", func(t *testing.T) {
		c := NewCollector()
		c.Start(1, 1)
		c.AddEpisode()
		c.Start(2, 2)

		m := c.Complete()
		require.Zero(t, m.Episodes)
		require.Equal(t, 2, m.Goroutines)
	})

	t.Run("counts concurrent increments exactly", func(t *testing.T) {
		c := NewCollector()
		c.Start(8, 1)

		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for j := 0; j < 1000; j++ {
					c.AddEpisode()
				}
			}()
		}
		wg.Wait()

		require.Equal(t, 8000, c.Complete().Episodes)
	})
}

func TestDummyCollector(t *testing.T) {
	c := NewDummyCollector()
	c.Start(4, 25)
	c.AddEpisode()
	c.AddFullPlayout()
	require.Equal(t, SearchMetric{}, c.Complete(), "Dummy collector should record nothing")
}
