package bazi

import (
	"encoding/json"
	"errors"
	"net/http"

	"bazi-chart/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger, devMode bool) {
	r.Route("/api/bazi", func(br chi.Router) {
		br.Post("/", createChartHandler(svc, log, devMode))

		// Variante GET para enlaces/compartir: ?birthdate=...&birthtime=...
		br.Get("/", getChartHandler(svc, log, devMode))
	})
}

// chartRequest es el cuerpo de POST /api/bazi.
type chartRequest struct {
	Birthdate string `json:"birthdate" example:"2000-01-01"` // YYYY-MM-DD
	Birthtime string `json:"birthtime" example:"12:00"`      // HH:MM
}

// createChartHandler godoc
// @Summary Calcular los cuatro pilares
// @Description Convierte fecha y hora gregorianas en los cuatro pilares (año, mes, día, hora) y la fecha lunar.
// @Tags bazi
// @Accept json
// @Produce json
// @Param payload body chartRequest true "birthdate YYYY-MM-DD, birthtime HH:MM"
// @Success 200 {object} ChartResponse
// @Failure 400 {object} ErrorResponse "entrada inválida"
// @Failure 502 {object} ErrorResponse "el calendario no pudo resolver la fecha"
// @Failure 500 {object} ErrorResponse "error interno"
// @Router /api/bazi [post]
func createChartHandler(svc *Service, log logger.Logger, devMode bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req chartRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, r, log, invalidInput("bazi.decode", errors.New("invalid json")), devMode)
			return
		}

		fp, err := svc.Chart(r.Context(), req.Birthdate, req.Birthtime)
		if err != nil {
			writeError(w, r, log, err, devMode)
			return
		}

		writeJSON(w, http.StatusOK, FormatResponse(fp))
	}
}

// getChartHandler godoc
// @Summary Calcular los cuatro pilares (query string)
// @Tags bazi
// @Produce json
// @Param birthdate query string true "YYYY-MM-DD"
// @Param birthtime query string true "HH:MM"
// @Success 200 {object} ChartResponse
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/bazi [get]
func getChartHandler(svc *Service, log logger.Logger, devMode bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		fp, err := svc.Chart(r.Context(), q.Get("birthdate"), q.Get("birthtime"))
		if err != nil {
			writeError(w, r, log, err, devMode)
			return
		}

		writeJSON(w, http.StatusOK, FormatResponse(fp))
	}
}

func statusFor(kind Kind) int {
	switch kind {
	case KindInvalidInput:
		return http.StatusBadRequest
	case KindCalendarResolution:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, r *http.Request, log logger.Logger, err error, devMode bool) {
	kind := KindOf(err)
	fields := map[string]any{
		"request_id": chimw.GetReqID(r.Context()),
		"kind":       kind.String(),
		"error":      err.Error(),
	}

	switch kind {
	case KindInvalidInput:
		log.Debug("rejected chart request", fields)
	case KindCalendarResolution:
		log.Warn("calendar resolution failed", fields)
	default:
		fields["path"] = r.URL.Path
		log.Error("chart computation fault", fields)
	}

	writeJSON(w, statusFor(kind), formatError(err, devMode))
}

// writeJSON: mismo helper que en middleware; se mantiene local al módulo.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
