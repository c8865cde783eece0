package selection

import (
	"math/rand"

	"github.com/paperpress/paperpress/internal/question"
)

// lcg is the historical linear-congruential generator carried over from
// earlier releases so that a given seed keeps producing the same paper.
// Constants: s = (s*9301 + 49297) mod 233280.
type lcg struct {
	s int64
}

func newLCG(seed int64) *lcg {
	return &lcg{s: seed}
}

// Float64 returns the next value in [0, 1).
func (l *lcg) Float64() float64 {
	l.s = (l.s*9301 + 49297) % 233280
	if l.s < 0 {
		l.s += 233280
	}
	return float64(l.s) / 233280
}

// Intn returns a value in [0, n). n must be > 0.
func (l *lcg) Intn(n int) int {
	return int(l.Float64() * float64(n))
}

type intnSource interface {
	Intn(n int) int
}

// shuffle permutes qs in place with a Fisher-Yates pass. Seeded runs use
// the LCG as the entropy source; unseeded runs use math/rand.
func shuffle(qs []question.Question, seed int64) {
	var src intnSource
	if seed != 0 {
		src = newLCG(seed)
	} else {
		src = rand.New(rand.NewSource(rand.Int63()))
	}
	for i := len(qs) - 1; i > 0; i-- {
		j := src.Intn(i + 1)
		qs[i], qs[j] = qs[j], qs[i]
	}
}
