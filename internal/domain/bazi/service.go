package bazi

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bazi-chart/internal/ports/calendar"
)

const DefaultCalendarTimeout = 2 * time.Second

type Service struct {
	authority calendar.Authority
	timeout   time.Duration
}

func NewService(authority calendar.Authority, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = DefaultCalendarTimeout
	}
	return &Service{
		authority: authority,
		timeout:   timeout,
	}
}

// Chart valida la entrada y calcula la carta. Con InvalidInput no se llama al calendario.
func (s *Service) Chart(ctx context.Context, birthdate, birthtime string) (FourPillars, error) {
	m, err := Parse(birthdate, birthtime)
	if err != nil {
		return FourPillars{}, err
	}
	return s.ChartMoment(ctx, m)
}

// ChartMoment calcula la carta para un momento ya validado.
func (s *Service) ChartMoment(ctx context.Context, m BirthMoment) (fp FourPillars, err error) {
	const op = "bazi.ChartMoment"

	if s == nil || s.authority == nil {
		return FourPillars{}, internalFault(op, errors.New("calendar authority not configured"))
	}

	res, err := s.resolve(ctx, m)
	if err != nil {
		return FourPillars{}, err
	}

	checks := []struct {
		name string
		pair calendar.Pair
	}{
		{"year", res.Year},
		{"month", res.Month},
		{"day", res.Day},
	}
	for _, c := range checks {
		if !pairFrom(c.pair).valid() {
			return FourPillars{}, calendarFailure(op, fmt.Errorf("%s pair out of range: stem=%d branch=%d", c.name, c.pair.Stem, c.pair.Branch))
		}
	}

	defer func() {
		if r := recover(); r != nil {
			fp = FourPillars{}
			err = internalFault(op, fmt.Errorf("panic: %v", r))
		}
	}()

	return Derive(m, res), nil
}

type resolveResult struct {
	res      calendar.Resolution
	err      error
	panicked any
}

// resolve acota la llamada al calendario con s.timeout aunque la fuente ignore ctx:
// la respuesta tardía se descarta.
func (s *Service) resolve(ctx context.Context, m BirthMoment) (calendar.Resolution, error) {
	const op = "calendar.Resolve"

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	done := make(chan resolveResult, 1)
	go func() {
		var out resolveResult
		defer func() {
			if r := recover(); r != nil {
				out = resolveResult{panicked: r}
			}
			done <- out
		}()
		out.res, out.err = s.authority.Resolve(ctx, m.Year, m.Month, m.Day)
	}()

	select {
	case <-ctx.Done():
		return calendar.Resolution{}, calendarFailure(op, fmt.Errorf("%w: %w", calendar.ErrUnavailable, ctx.Err()))
	case out := <-done:
		if out.panicked != nil {
			return calendar.Resolution{}, internalFault(op, fmt.Errorf("panic: %v", out.panicked))
		}
		if out.err != nil {
			return calendar.Resolution{}, calendarFailure(op, out.err)
		}
		return out.res, nil
	}
}
