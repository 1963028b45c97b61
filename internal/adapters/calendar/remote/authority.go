// Package remote consulta un servicio de calendario externo por HTTP.
package remote

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"bazi-chart/internal/platform/httpclient"
	"bazi-chart/internal/ports/calendar"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

const resolvePath = "/v1/resolve"

type Config struct {
	BaseURL string
	APIKey  string

	APIKeyHeader string
	Timeout      time.Duration
}

type Authority struct {
	client       *httpclient.Client
	apiKey       string
	apiKeyHeader string
}

func New(cfg Config) (*Authority, error) {
	c, err := httpclient.New(cfg.BaseURL, cfg.Timeout)
	if err != nil {
		return nil, err
	}

	h := strings.TrimSpace(cfg.APIKeyHeader)
	if h == "" {
		h = "X-Api-Key"
	}

	return &Authority{
		client:       c,
		apiKey:       strings.TrimSpace(cfg.APIKey),
		apiKeyHeader: h,
	}, nil
}

// Resolve hace GET /v1/resolve?date=YYYY-MM-DD. La respuesta es un calendar.Resolution en JSON.
// 404/422 => ErrUnsupportedDate; cualquier otro fallo, incluida una respuesta
// vacía o incompleta, => ErrUnavailable.
func (a *Authority) Resolve(ctx context.Context, year, month, day int) (calendar.Resolution, error) {
	// Mismo request id que el request entrante, para correlacionar logs.
	reqID := chimw.GetReqID(ctx)
	if reqID == "" {
		reqID = uuid.NewString()
	}

	headers := map[string]string{
		chimw.RequestIDHeader: reqID,
		a.apiKeyHeader:        a.apiKey,
	}
	q := url.Values{"date": {fmt.Sprintf("%04d-%02d-%02d", year, month, day)}}

	var out calendar.Resolution
	err := a.client.GetJSON(ctx, resolvePath, q, headers, &out)
	if err == nil {
		if verr := validResolution(out); verr != nil {
			return calendar.Resolution{}, fmt.Errorf("%w: %w", calendar.ErrUnavailable, verr)
		}
		return out, nil
	}

	switch httpclient.StatusCode(err) {
	case http.StatusNotFound, http.StatusUnprocessableEntity:
		return calendar.Resolution{}, fmt.Errorf("%w: %w", calendar.ErrUnsupportedDate, err)
	}
	return calendar.Resolution{}, fmt.Errorf("%w: %w", calendar.ErrUnavailable, err)
}

// validResolution rechaza respuestas que decodifican pero no describen una fecha:
// un `{}` deja todo en cero y los pares (0,0) serían un 甲子 inventado.
func validResolution(res calendar.Resolution) error {
	l := res.Lunar
	if l.Year == 0 || l.Month < 1 || l.Month > 12 || l.Day < 1 || l.Day > 30 {
		return fmt.Errorf("remote calendar: invalid lunar date %d/%d/%d", l.Year, l.Month, l.Day)
	}

	pairs := []struct {
		name string
		pair calendar.Pair
	}{
		{"year", res.Year},
		{"month", res.Month},
		{"day", res.Day},
	}
	for _, p := range pairs {
		if p.pair.Stem < 0 || p.pair.Stem > 9 || p.pair.Branch < 0 || p.pair.Branch > 11 {
			return fmt.Errorf("remote calendar: %s pair out of range: stem=%d branch=%d", p.name, p.pair.Stem, p.pair.Branch)
		}
	}
	return nil
}
