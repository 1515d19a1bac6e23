package sheetfill

import (
	"fmt"
	"log/slog"

	"github.com/ukaji3/sheetfill-go/pkg/sheetfill/lists"
	"github.com/ukaji3/sheetfill-go/pkg/sheetfill/models"
)

// linePlan lists the coordinates of one row or column of a fill.
type linePlan struct {
	index   int
	sources []cellPos
	dests   []cellPos
}

// fillPlan is every line to fill in one direction.
type fillPlan struct {
	dir   models.Direction
	lines []linePlan
}

// Autofill continues the pattern found in the src range into dest. dest is
// either the range enclosing src (src at one end of it) or the block
// adjacent to src on the side being filled.
func Autofill(g Grid, src, dest models.Rect, opts Options) (*models.FillReport, error) {
	src, dest = src.Normalize(), dest.Normalize()
	report := &models.FillReport{Source: src, Target: dest}
	if n, ok := g.(interface{ Name() string }); ok {
		report.Sheet = n.Name()
	}

	log := opts.logger()
	if src == dest || src.Contains(dest) {
		log.Debug("nothing to fill", "source", FormatRange(src), "target", FormatRange(dest))
		return report, nil
	}

	f := filler{
		grid:  g,
		lists: opts.referenceLists(),
		log:   log,
	}
	for _, p := range planFills(src, dest) {
		dr, err := f.run(p)
		if err != nil {
			return report, err
		}
		if len(dr.Lines) > 0 {
			report.Directions = append(report.Directions, dr)
		}
	}

	if r, ok := g.(Recalculator); ok {
		if err := r.Recalculate(); err != nil {
			return report, fmt.Errorf("recalculate: %w", err)
		}
	}
	return report, nil
}

type filler struct {
	grid  Grid
	lists *lists.ReferenceLists
	log   *slog.Logger
}

func (f filler) run(p fillPlan) (models.DirectionReport, error) {
	dr := models.DirectionReport{Direction: p.dir}
	for _, lp := range p.lines {
		if len(lp.dests) == 0 || len(lp.sources) == 0 {
			continue
		}
		lr, err := f.fillLine(p.dir, lp)
		if err != nil {
			return dr, NewFillError(p.dir, lp.index, err)
		}
		dr.Lines = append(dr.Lines, lr)
	}
	return dr, nil
}

func (f filler) fillLine(dir models.Direction, lp linePlan) (models.LineReport, error) {
	l := line{
		sources: make([]models.Cell, len(lp.sources)),
		seqs:    make([]Sequence, len(lp.sources)),
		dests:   lp.dests,
		forward: dir.Forward(),
	}
	for i, pos := range lp.sources {
		cell, err := f.grid.Cell(pos.col, pos.row)
		if err != nil {
			return models.LineReport{}, err
		}
		l.sources[i] = cell
		l.seqs[i] = Classify(cell, f.lists)
	}

	log := f.log.With("direction", string(dir), "line", lp.index)
	lr := models.LineReport{Index: lp.index, Cells: len(lp.dests)}

	iv, ok := detector{log: log}.find(l.seqs)
	if ok {
		lr.Method = models.MethodInterval
		lr.Step = iv.Step
		for _, d := range iv.Deltas {
			lr.Deltas = append(lr.Deltas, d.At(0))
		}
		return lr, fillInterval(f.grid, l, iv)
	}

	log.Debug("falling back to copy")
	lr.Method = models.MethodCopy
	return lr, fillCopy(f.grid, l, f.lists)
}

// planFills determines which directions apply and the cells of each line.
func planFills(src, dest models.Rect) []fillPlan {
	var plans []fillPlan

	// Fill from left to right
	if (src.C1 == dest.C1 || dest.C1 == src.C2+1) && src.C2 < dest.C2 {
		p := fillPlan{dir: models.DirectionRight}
		for y := src.R1; y <= src.R2; y++ {
			lp := linePlan{index: y}
			for x := src.C1; x <= src.C2; x++ {
				lp.sources = append(lp.sources, cellPos{x, y})
			}
			for x := src.C2 + 1; x <= dest.C2; x++ {
				lp.dests = append(lp.dests, cellPos{x, y})
			}
			p.lines = append(p.lines, lp)
		}
		plans = append(plans, p)
	}

	// Fill from top to bottom
	if (src.R1 == dest.R1 || dest.R1 == src.R2+1) && src.R2 < dest.R2 {
		p := fillPlan{dir: models.DirectionDown}
		for x := src.C1; x <= dest.C2; x++ {
			lp := linePlan{index: x}
			for y := src.R1; y <= src.R2; y++ {
				lp.sources = append(lp.sources, cellPos{x, y})
			}
			for y := src.R2 + 1; y <= dest.R2; y++ {
				lp.dests = append(lp.dests, cellPos{x, y})
			}
			p.lines = append(p.lines, lp)
		}
		plans = append(plans, p)
	}

	// Fill from right to left
	if (src.C1 == dest.C2 || src.C1 == dest.C2+1) && src.C2 >= dest.C2 ||
		dest.C2 == src.C2 && dest.C1 < src.C1 {
		p := fillPlan{dir: models.DirectionLeft}
		for y := dest.R1; y <= dest.R2; y++ {
			lp := linePlan{index: y}
			for x := src.C1; x <= src.C2; x++ {
				lp.sources = append(lp.sources, cellPos{x, y})
			}
			for x := src.C1 - 1; x >= dest.C1; x-- {
				lp.dests = append(lp.dests, cellPos{x, y})
			}
			p.lines = append(p.lines, lp)
		}
		plans = append(plans, p)
	}

	// Fill from bottom to top
	if (src.R1 == dest.R2 || src.R1 == dest.R2+1) && src.R2 >= dest.R2 ||
		dest.R2 == src.R2 && dest.R1 < src.R1 {
		p := fillPlan{dir: models.DirectionUp}
		for x := min(src.C1, dest.C1); x <= max(src.C2, dest.C2); x++ {
			lp := linePlan{index: x}
			for y := src.R1; y <= src.R2; y++ {
				lp.sources = append(lp.sources, cellPos{x, y})
			}
			for y := src.R1 - 1; y >= dest.R1; y-- {
				lp.dests = append(lp.dests, cellPos{x, y})
			}
			p.lines = append(p.lines, lp)
		}
		plans = append(plans, p)
	}

	return plans
}
