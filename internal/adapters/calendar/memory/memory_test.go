package memory

import (
	"context"
	"errors"
	"sync"
	"testing"

	"bazi-chart/internal/ports/calendar"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var millennium = calendar.Resolution{
	Lunar: calendar.LunarDate{Year: 1999, Month: 11, Day: 25},
	Year:  calendar.Pair{Stem: 5, Branch: 3},
	Month: calendar.Pair{Stem: 2, Branch: 0},
	Day:   calendar.Pair{Stem: 4, Branch: 6},
}

func TestStatic_HitAndMiss(t *testing.T) {
	s := NewStatic(map[Date]calendar.Resolution{{2000, 1, 1}: millennium})

	res, err := s.Resolve(context.Background(), 2000, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, millennium, res)

	_, err = s.Resolve(context.Background(), 2000, 1, 2)
	require.ErrorIs(t, err, calendar.ErrUnsupportedDate)

	assert.EqualValues(t, 2, s.Calls())
}

func TestStatic_CanceledContext(t *testing.T) {
	s := NewStatic(nil)
	s.Put(Date{2000, 1, 1}, millennium)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Resolve(ctx, 2000, 1, 1)
	require.ErrorIs(t, err, calendar.ErrUnavailable)
	require.ErrorIs(t, err, context.Canceled)
}

func TestCache_MemoizesSuccessOnly(t *testing.T) {
	s := NewStatic(map[Date]calendar.Resolution{{2000, 1, 1}: millennium})
	c := NewCache(s)

	for i := 0; i < 3; i++ {
		res, err := c.Resolve(context.Background(), 2000, 1, 1)
		require.NoError(t, err)
		assert.Equal(t, millennium, res)
	}
	assert.EqualValues(t, 1, s.Calls())
	assert.Equal(t, 1, c.Len())

	for i := 0; i < 2; i++ {
		_, err := c.Resolve(context.Background(), 1800, 1, 1)
		require.True(t, errors.Is(err, calendar.ErrUnsupportedDate))
	}
	assert.EqualValues(t, 3, s.Calls())
	assert.Equal(t, 1, c.Len())
}

func TestCache_Concurrent(t *testing.T) {
	c := NewCache(NewStatic(map[Date]calendar.Resolution{{2000, 1, 1}: millennium}))

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := c.Resolve(context.Background(), 2000, 1, 1)
			assert.NoError(t, err)
			assert.Equal(t, millennium, res)
		}()
	}
	wg.Wait()
}

func TestCache_BoundedSize(t *testing.T) {
	s := NewStatic(nil)
	for d := 1; d <= 10; d++ {
		s.Put(Date{2000, 1, d}, millennium)
	}
	c := NewCacheWithSize(s, 3)

	for d := 1; d <= 10; d++ {
		_, err := c.Resolve(context.Background(), 2000, 1, d)
		require.NoError(t, err)
		assert.LessOrEqual(t, c.Len(), 3)
	}
	assert.Equal(t, 3, c.Len())

	// 2000-01-10 es de las más recientes: sigue en caché.
	_, err := c.Resolve(context.Background(), 2000, 1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 10, s.Calls())

	// 2000-01-01 fue desalojada: vuelve a la fuente.
	_, err = c.Resolve(context.Background(), 2000, 1, 1)
	require.NoError(t, err)
	assert.EqualValues(t, 11, s.Calls())
	assert.Equal(t, 3, c.Len())
}

func TestCache_NonPositiveSizeUsesDefault(t *testing.T) {
	c := NewCacheWithSize(NewStatic(map[Date]calendar.Resolution{{2000, 1, 1}: millennium}), 0)

	_, err := c.Resolve(context.Background(), 2000, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, c.Len())
}
