package calendar

import (
	"context"
	"errors"
)

var (
	// ErrUnsupportedDate: la fuente no tiene datos para esa fecha (fuera de tabla/rango).
	ErrUnsupportedDate = errors.New("calendar: unsupported date")
	// ErrUnavailable: la fuente no respondió (red, DB caída, timeout).
	ErrUnavailable = errors.New("calendar: authority unavailable")
)

// Authority resuelve una fecha gregoriana a fecha lunar + pilares de año, mes y día.
// Debe ser función pura de (year, month, day): sin estado de sesión.
// Los índices siguen la convención 0-9 (tallos) / 0-11 (ramas), 0 = 甲 / 子.
type Authority interface {
	Resolve(ctx context.Context, year, month, day int) (Resolution, error)
}

// Pair es un par tallo/rama tal como lo entrega la fuente.
type Pair struct {
	Stem   int `json:"stem"`
	Branch int `json:"branch"`
}

// LunarDate se reenvía tal cual; el motor no lo interpreta.
type LunarDate struct {
	Year        int  `json:"lunarYear"`
	Month       int  `json:"lunarMonth"`
	Day         int  `json:"lunarDay"`
	IsLeapMonth bool `json:"isLeapMonth"`
}

type Resolution struct {
	Lunar LunarDate `json:"lunar"`
	Year  Pair      `json:"year"`
	Month Pair      `json:"month"`
	Day   Pair      `json:"day"`
}

// AuthorityFunc adapta una función al contrato Authority (útil en tests).
type AuthorityFunc func(ctx context.Context, year, month, day int) (Resolution, error)

func (f AuthorityFunc) Resolve(ctx context.Context, year, month, day int) (Resolution, error) {
	return f(ctx, year, month, day)
}
