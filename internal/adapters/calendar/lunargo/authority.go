// Package lunargo resuelve fechas con github.com/6tail/lunar-go.
//
// Convenciones: pilar de año con corte en 立春, pilar de mes con corte en los
// 節 (términos solares), pilar de día por la cuenta sexagenaria civil.
package lunargo

import (
	"context"
	"fmt"

	"bazi-chart/internal/ports/calendar"

	lunar "github.com/6tail/lunar-go/calendar"
)

const (
	MinYear = 1
	MaxYear = 9999
)

type Authority struct{}

func New() *Authority {
	return &Authority{}
}

func (a *Authority) Resolve(ctx context.Context, year, month, day int) (res calendar.Resolution, err error) {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return calendar.Resolution{}, fmt.Errorf("%w: %w", calendar.ErrUnavailable, ctxErr)
	}
	if year < MinYear || year > MaxYear {
		return calendar.Resolution{}, fmt.Errorf("%w: year %d outside %d..%d", calendar.ErrUnsupportedDate, year, MinYear, MaxYear)
	}

	// lunar-go hace panic con fechas que no sabe convertir.
	defer func() {
		if r := recover(); r != nil {
			res = calendar.Resolution{}
			err = fmt.Errorf("%w: %04d-%02d-%02d: %v", calendar.ErrUnsupportedDate, year, month, day, r)
		}
	}()

	l := lunar.NewSolarFromYmd(year, month, day).GetLunar()

	// Mes negativo = mes intercalar (閏月).
	lm := l.GetMonth()
	leap := lm < 0
	if leap {
		lm = -lm
	}

	return calendar.Resolution{
		Lunar: calendar.LunarDate{
			Year:        l.GetYear(),
			Month:       lm,
			Day:         l.GetDay(),
			IsLeapMonth: leap,
		},
		Year:  calendar.Pair{Stem: l.GetYearGanIndexByLiChun(), Branch: l.GetYearZhiIndexByLiChun()},
		Month: calendar.Pair{Stem: l.GetMonthGanIndex(), Branch: l.GetMonthZhiIndex()},
		Day:   calendar.Pair{Stem: l.GetDayGanIndex(), Branch: l.GetDayZhiIndex()},
	}, nil
}
