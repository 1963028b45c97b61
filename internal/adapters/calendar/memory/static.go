package memory

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"bazi-chart/internal/ports/calendar"
)

// Static responde desde una tabla fija. Sirve para dev y para tests que
// necesitan saber si el calendario fue consultado.
type Static struct {
	mu     sync.RWMutex
	byDate map[Date]calendar.Resolution

	calls atomic.Int64
}

func NewStatic(entries map[Date]calendar.Resolution) *Static {
	byDate := make(map[Date]calendar.Resolution, len(entries))
	for k, v := range entries {
		byDate[k] = v
	}
	return &Static{byDate: byDate}
}

func (s *Static) Put(d Date, res calendar.Resolution) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byDate[d] = res
}

func (s *Static) Resolve(ctx context.Context, year, month, day int) (calendar.Resolution, error) {
	s.calls.Add(1)

	if err := ctx.Err(); err != nil {
		return calendar.Resolution{}, fmt.Errorf("%w: %w", calendar.ErrUnavailable, err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	res, ok := s.byDate[Date{Year: year, Month: month, Day: day}]
	if !ok {
		return calendar.Resolution{}, fmt.Errorf("%w: %04d-%02d-%02d", calendar.ErrUnsupportedDate, year, month, day)
	}
	return res, nil
}

// Calls cuenta cuántas veces se llamó Resolve.
func (s *Static) Calls() int64 {
	return s.calls.Load()
}
