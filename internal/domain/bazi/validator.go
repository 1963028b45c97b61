package bazi

import (
	"errors"
	"strings"
	"time"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// Parse valida birthdate ("YYYY-MM-DD") y birthtime ("HH:MM").
//
// Además del formato se valida la plausibilidad gregoriana (día dentro del mes,
// 29 de febrero solo en bisiesto): una fecha imposible es InvalidInput y nunca
// llega al calendario.
func Parse(birthdateText, birthtimeText string) (BirthMoment, error) {
	const op = "bazi.Parse"

	ds := strings.TrimSpace(birthdateText)
	ts := strings.TrimSpace(birthtimeText)
	if ds == "" {
		return BirthMoment{}, invalidInput(op, errors.New("birthdate is required"))
	}
	if ts == "" {
		return BirthMoment{}, invalidInput(op, errors.New("birthtime is required"))
	}

	d, err := time.Parse(dateLayout, ds)
	if err != nil {
		return BirthMoment{}, invalidInput(op, errors.New("birthdate must be a valid YYYY-MM-DD date"))
	}
	if d.Year() < 1 {
		return BirthMoment{}, invalidInput(op, errors.New("birthdate year must be positive"))
	}

	// "15" acepta una sola cifra al parsear; se exige HH:MM exacto.
	t, err := time.Parse(timeLayout, ts)
	if err != nil || len(ts) != len(timeLayout) {
		return BirthMoment{}, invalidInput(op, errors.New("birthtime must be a valid HH:MM time"))
	}

	return BirthMoment{
		Year:   d.Year(),
		Month:  int(d.Month()),
		Day:    d.Day(),
		Hour:   t.Hour(),
		Minute: t.Minute(),
	}, nil
}
