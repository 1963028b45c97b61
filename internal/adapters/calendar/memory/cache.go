package memory

import (
	"context"

	"bazi-chart/internal/ports/calendar"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCacheSize cubre ~11 años de fechas distintas.
const DefaultCacheSize = 4096

// Date es la clave gregoriana de una resolución.
type Date struct {
	Year  int
	Month int
	Day   int
}

// Cache memoiza resoluciones exitosas en un LRU acotado. Es válido porque
// Resolve es función pura de la fecha; los errores no se guardan.
type Cache struct {
	next    calendar.Authority
	entries *lru.Cache[Date, calendar.Resolution]
}

func NewCache(next calendar.Authority) *Cache {
	return NewCacheWithSize(next, DefaultCacheSize)
}

// NewCacheWithSize acota la caché a size entradas (size <= 0 usa el default).
func NewCacheWithSize(next calendar.Authority, size int) *Cache {
	if size <= 0 {
		size = DefaultCacheSize
	}
	// lru.New solo falla con size <= 0.
	entries, _ := lru.New[Date, calendar.Resolution](size)
	return &Cache{
		next:    next,
		entries: entries,
	}
}

func (c *Cache) Resolve(ctx context.Context, year, month, day int) (calendar.Resolution, error) {
	key := Date{Year: year, Month: month, Day: day}

	if res, ok := c.entries.Get(key); ok {
		return res, nil
	}

	res, err := c.next.Resolve(ctx, year, month, day)
	if err != nil {
		return calendar.Resolution{}, err
	}

	c.entries.Add(key, res)
	return res, nil
}

func (c *Cache) Len() int {
	return c.entries.Len()
}
