package bazi

import "bazi-chart/internal/ports/calendar"

const (
	StemCount   = 10
	BranchCount = 12
)

// Tablas fijas de símbolos. No se exportan: la única vía de lectura es
// StemSymbol/BranchSymbol, que reducen el índice antes de indexar.
var (
	stemSymbols   = [StemCount]string{"甲", "乙", "丙", "丁", "戊", "己", "庚", "辛", "壬", "癸"}
	branchSymbols = [BranchCount]string{"子", "丑", "寅", "卯", "辰", "巳", "午", "未", "申", "酉", "戌", "亥"}
)

func StemSymbol(i int) string   { return stemSymbols[mod(i, StemCount)] }
func BranchSymbol(i int) string { return branchSymbols[mod(i, BranchCount)] }

// StemBranchPair identifica un pilar: tallo (0-9) + rama (0-11).
type StemBranchPair struct {
	Stem   int
	Branch int
}

func (p StemBranchPair) Label() string {
	return StemSymbol(p.Stem) + BranchSymbol(p.Branch)
}

func (p StemBranchPair) valid() bool {
	return p.Stem >= 0 && p.Stem < StemCount && p.Branch >= 0 && p.Branch < BranchCount
}

func pairFrom(p calendar.Pair) StemBranchPair {
	return StemBranchPair{Stem: p.Stem, Branch: p.Branch}
}

// BirthMoment es el instante de nacimiento ya validado. Se construye una vez por request.
type BirthMoment struct {
	Year   int
	Month  int
	Day    int
	Hour   int
	Minute int
}

// ShichenIndex es uno de los doce periodos de dos horas (0 = 子, 23:00-00:59).
type ShichenIndex int

// Pillar es un par más su etiqueta renderizada (dos caracteres).
type Pillar struct {
	Pair  StemBranchPair
	Label string
}

func newPillar(p StemBranchPair) Pillar {
	return Pillar{Pair: p, Label: p.Label()}
}

// FourPillars es el resultado de una carta. Cada request produce su propia instancia.
type FourPillars struct {
	Year  Pillar
	Month Pillar
	Day   Pillar
	Hour  Pillar

	Lunar calendar.LunarDate
}

func mod(i, n int) int {
	r := i % n
	if r < 0 {
		r += n
	}
	return r
}
