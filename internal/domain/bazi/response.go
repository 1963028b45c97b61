package bazi

import (
	"errors"
	"fmt"
)

// ChartResponse es el payload de salida de /api/bazi.
type ChartResponse struct {
	Bazi  PillarsResponse `json:"bazi"`
	Lunar LunarResponse   `json:"lunar"`
}

type PillarsResponse struct {
	Year  string `json:"year" example:"己卯"`
	Month string `json:"month" example:"丙子"`
	Day   string `json:"day" example:"戊午"`
	Time  string `json:"time" example:"戊午"`
}

type LunarResponse struct {
	LunarYear   int    `json:"lunarYear" example:"1999"`
	LunarMonth  int    `json:"lunarMonth" example:"11"`
	LunarDay    int    `json:"lunarDay" example:"25"`
	IsLeapMonth bool   `json:"isLeapMonth"`
	Label       string `json:"label" example:"農曆1999年11月25日"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_input"`
	Message string `json:"message" example:"birthdate must be a valid YYYY-MM-DD date"`
}

// FormatResponse arma el payload a partir de la carta. Sin cálculo: solo estructura.
func FormatResponse(fp FourPillars) ChartResponse {
	return ChartResponse{
		Bazi: PillarsResponse{
			Year:  fp.Year.Label,
			Month: fp.Month.Label,
			Day:   fp.Day.Label,
			Time:  fp.Hour.Label,
		},
		Lunar: LunarResponse{
			LunarYear:   fp.Lunar.Year,
			LunarMonth:  fp.Lunar.Month,
			LunarDay:    fp.Lunar.Day,
			IsLeapMonth: fp.Lunar.IsLeapMonth,
			Label:       LunarLabel(fp.Lunar.Year, fp.Lunar.Month, fp.Lunar.Day, fp.Lunar.IsLeapMonth),
		},
	}
}

// LunarLabel: "農曆1999年11月25日", con 閏 delante del mes intercalar.
func LunarLabel(year, month, day int, leap bool) string {
	leapMark := ""
	if leap {
		leapMark = "閏"
	}
	return fmt.Sprintf("農曆%d年%s%d月%d日", year, leapMark, month, day)
}

// formatError decide el mensaje público. Los fallos internos solo muestran
// detalle en modo dev.
func formatError(err error, devMode bool) ErrorResponse {
	kind := KindOf(err)
	out := ErrorResponse{Error: kind.String()}

	switch kind {
	case KindInvalidInput:
		var e *Error
		if errors.As(err, &e) && e.Err != nil {
			out.Message = e.Err.Error()
		} else {
			out.Message = ErrInvalidInput.Error()
		}
	case KindCalendarResolution:
		out.Message = "calendar authority could not resolve the date"
		if devMode {
			out.Message = err.Error()
		}
	default:
		out.Message = "internal server error"
		if devMode {
			out.Message = err.Error()
		}
	}
	return out
}
