package bazi

import "bazi-chart/internal/ports/calendar"

// ComputeShichenIndex mapea una hora (0-23) a su shichen.
// El +1 hace que las 23:00 caigan en 12, y el mod 12 lo devuelve a 子 (0).
func ComputeShichenIndex(hour int) ShichenIndex {
	return ShichenIndex(((hour + 1) / 2) % BranchCount)
}

// ComputeHourStemIndex aplica la regla de "cinco ratas" (五鼠遁):
// el tallo del periodo 子 depende del tallo del día con periodo 5,
// y avanza un tallo por cada shichen.
//
// Forma canónica: ((dayStem mod 5) * 2 + shichen) mod 10, con una sola
// reducción final. Validada contra la tabla tradicional en engine_test.go.
func ComputeHourStemIndex(dayStemIndex int, shichen ShichenIndex) int {
	offset := (mod(dayStemIndex, StemCount) % 5) * 2
	return (offset + int(shichen)) % StemCount
}

// DeriveHourPillar calcula el pilar de la hora a partir del tallo del día.
func DeriveHourPillar(dayStemIndex, hour int) StemBranchPair {
	sh := ComputeShichenIndex(hour)
	return StemBranchPair{
		Stem:   ComputeHourStemIndex(dayStemIndex, sh),
		Branch: int(sh),
	}
}

// Assemble combina los cuatro pares en una carta. Los pares deben venir en rango;
// un índice fuera de rango es un error del llamador.
func Assemble(year, month, day, hour StemBranchPair, lunar calendar.LunarDate) FourPillars {
	return FourPillars{
		Year:  newPillar(year),
		Month: newPillar(month),
		Day:   newPillar(day),
		Hour:  newPillar(hour),
		Lunar: lunar,
	}
}

// Derive arma la carta completa a partir del momento y la respuesta del calendario.
func Derive(m BirthMoment, res calendar.Resolution) FourPillars {
	day := pairFrom(res.Day)
	return Assemble(
		pairFrom(res.Year),
		pairFrom(res.Month),
		day,
		DeriveHourPillar(day.Stem, m.Hour),
		res.Lunar,
	)
}
