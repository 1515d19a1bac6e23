package sheetfill

import (
	"log/slog"
	"math"
)

const (
	// oneDay and oneHour are date/time serial increments.
	oneDay  = 1.0
	oneHour = 1.0 / 24

	// continuousTolerance is the relative tolerance used when comparing
	// consecutive deltas of floating point runs.
	continuousTolerance = 1e-9
)

// Interval is a detected repeating pattern: Step source cells form one
// block and Deltas[s] is the change of offset s from one block to the
// next.
type Interval struct {
	Step   int
	Deltas []DeltaSequence
	// Continuous is set when the interval came from a run of floats,
	// dates or times. Fills from such intervals also copy the format type.
	Continuous bool
}

// FindInterval searches seqs for the shortest repeating pattern.
func FindInterval(seqs []Sequence) (Interval, bool) {
	return detector{log: slog.New(slog.DiscardHandler)}.find(seqs)
}

type detector struct {
	log *slog.Logger
}

func (d detector) find(seqs []Sequence) (Interval, bool) {
	n := len(seqs)
	d.log.Debug("searching interval", "length", n)
	if n == 0 {
		return Interval{}, false
	}

	if n == 1 {
		return d.single(seqs[0])
	}

	if values, ok := continuousRun(seqs); ok {
		return d.continuous(values)
	}

	return d.structural(seqs)
}

// single handles a lone date or time, which advances by a day or an hour.
func (d detector) single(seq Sequence) (Interval, bool) {
	if len(seq) != 1 {
		return Interval{}, false
	}
	switch seq[0].Kind {
	case KindDate:
		return Interval{Step: 1, Deltas: []DeltaSequence{NewDeltaSequence(oneDay)}, Continuous: true}, true
	case KindTime:
		return Interval{Step: 1, Deltas: []DeltaSequence{NewDeltaSequence(oneHour)}, Continuous: true}, true
	}
	return Interval{}, false
}

// continuousRun returns the values of a run of single numbers that holds
// at least one float, date or time. Pure integer runs are searched
// structurally.
func continuousRun(seqs []Sequence) ([]float64, bool) {
	values := make([]float64, len(seqs))
	continuous := false
	for i, s := range seqs {
		v, ok := s.numericValue()
		if !ok {
			return nil, false
		}
		values[i] = v
		continuous = continuous || s[0].Kind.continuous()
	}
	return values, continuous
}

// continuous finds the shortest group of consecutive deltas that repeats
// over the whole run. The block delta of such a group is its sum.
func (d detector) continuous(values []float64) (Interval, bool) {
	steps := make([]float64, len(values)-1)
	for i := range steps {
		steps[i] = values[i+1] - values[i]
	}
	d.log.Debug("consecutive deltas", "deltas", steps)

	for p := 1; p <= len(steps); p++ {
		if p > 1 && p >= len(steps) {
			break
		}
		if !periodic(steps, p) {
			continue
		}
		sum := 0.0
		for _, s := range steps[:p] {
			sum += s
		}
		deltas := make([]DeltaSequence, p)
		for i := range deltas {
			deltas[i] = NewDeltaSequence(sum)
		}
		d.log.Debug("continuous interval found", "step", p, "delta", sum)
		return Interval{Step: p, Deltas: deltas, Continuous: true}, true
	}

	d.log.Debug("no continuous interval")
	return Interval{}, false
}

func periodic(steps []float64, p int) bool {
	for i := p; i < len(steps); i++ {
		if !approxEqual(steps[i], steps[i-p]) {
			return false
		}
	}
	return true
}

func approxEqual(a, b float64) bool {
	scale := math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
	return math.Abs(a-b) <= continuousTolerance*scale
}

// structural tries every period length that divides the run, shortest
// first. A period of the full length is left to the copy fallback.
func (d detector) structural(seqs []Sequence) (Interval, bool) {
	n := len(seqs)
	numeric := numericRun(seqs)
	for step := 1; step <= n/2; step++ {
		if n%step != 0 {
			continue
		}
		d.log.Debug("checking interval", "step", step)

		// Guess the deltas from the first two blocks.
		deltas := make([]DeltaSequence, step)
		ok := true
		for off := 0; off < step; off++ {
			deltas[off] = ComputeDelta(seqs[off], seqs[off+step])
			if !deltas[off].Valid() {
				ok = false
				break
			}
		}
		if !ok {
			continue
		}
		// Two blocks of plain numbers leave the deltas unverified; only
		// accept them when the blocks are identical.
		if step > 1 && n/step == 2 && numeric && !zeroDeltas(deltas) {
			d.log.Debug("interval not confirmed", "step", step)
			continue
		}

		// Verify them against every pair of neighbouring blocks.
		for t := 1; ok && t < n/step; t++ {
			for off := 0; ok && off < step; off++ {
				if !seqs[(t-1)*step+off].Matches(seqs[t*step+off], deltas[off]) {
					d.log.Debug("interval does not match", "step", step, "block", t, "offset", off)
					ok = false
				}
			}
		}
		if ok {
			d.log.Debug("interval found", "step", step)
			return Interval{Step: step, Deltas: deltas}, true
		}
	}

	d.log.Debug("no interval")
	return Interval{}, false
}

func numericRun(seqs []Sequence) bool {
	for _, s := range seqs {
		if _, ok := s.numericValue(); !ok {
			return false
		}
	}
	return true
}

func zeroDeltas(deltas []DeltaSequence) bool {
	for _, d := range deltas {
		if !d.Zero() {
			return false
		}
	}
	return true
}
