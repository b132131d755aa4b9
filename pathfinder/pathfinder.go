// Package pathfinder implements a bounded A* search over a hexgrid.TileGrid,
// with pluggable tile cost/blocking and an optional turn-penalty mode.
package pathfinder

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/turnforge/hexcore/hexgrid"
)

// TileState is the caller-supplied verdict for a tile: either Blocked,
// or Passable with a non-negative movement cost added to the search.
type TileState struct {
	blocked bool
	cost    uint32
}

// Blocked marks a tile as impassable.
func Blocked() TileState { return TileState{blocked: true} }

// Passable marks a tile as traversable at the given movement cost.
func Passable(cost uint32) TileState { return TileState{cost: cost} }

// TileStateFunc is queried once per (pos, direction) neighbour
// evaluation within a single Find call. It must be total over every
// in-bounds point that could be visited.
type TileStateFunc func(hexgrid.Point) TileState

// smoothPenalty is the extra cost charged when a turn-penalty search
// changes direction from its parent step.
const smoothPenalty = 10

// stepBaseCost is the fixed per-edge cost added on top of the
// caller-supplied tile cost.
const stepBaseCost = 50

// step is one node in the search, doubling as both an open-set entry
// and a predecessor-arena slot. Index 0 is always the start step and
// is its own predecessor, a sentinel that terminates path
// reconstruction.
type step struct {
	pos       hexgrid.Point
	cameFrom  int
	direction hexgrid.Direction
	cost      uint32
	estimate  uint32
}

func (s step) totalCost() uint32 {
	return s.cost + s.estimate
}

// PathFinder owns a TileGrid and a reusable search workspace. A
// PathFinder is created once per long-lived owner and reused: each
// Find call clears the workspace before searching. Concurrent queries
// require distinct PathFinder instances.
type PathFinder struct {
	grid     hexgrid.TileGrid
	steps    []step
	closed   *bitset.BitSet
	maxDepth int
}

// New builds a PathFinder over grid, bounding any single Find call to
// at most maxDepth expanded steps.
func New(grid hexgrid.TileGrid, maxDepth int) *PathFinder {
	return &PathFinder{
		grid:     grid,
		closed:   bitset.New(uint(grid.Len())),
		maxDepth: maxDepth,
	}
}

// Len reports how many steps are currently in the search workspace.
// It is mainly useful for observing that a Find call that returned no
// path ran all the way to maxDepth.
func (pf *PathFinder) Len() int {
	return len(pf.steps)
}

// Find searches for a path from "from" to "to". It returns the
// ordered sequence of directions that walk from -> to inclusive of
// every intermediate step, an empty (non-nil) slice if from == to, or
// nil if no path exists within maxDepth expansions, or if "to" itself
// is Blocked. The three "no path" cases are not distinguishable from
// the return value alone; callers needing that must inspect tile
// states themselves.
func (pf *PathFinder) Find(from, to hexgrid.Point, smooth bool, tileState TileStateFunc) []hexgrid.Direction {
	if from == to {
		return []hexgrid.Direction{}
	}
	if tileState(to).blocked {
		return nil
	}

	pf.steps = pf.steps[:0]
	pf.closed.ClearAll()

	pf.steps = append(pf.steps, step{
		pos:       from,
		cameFrom:  0,
		direction: hexgrid.NE,
		cost:      0,
		estimate:  pf.estimate(from, to),
	})

	for {
		idx, ok := pf.selectOpen()
		if !ok {
			return nil
		}
		current := pf.steps[idx]

		if current.pos == to {
			return pf.reconstruct(idx)
		}

		pf.markClosed(current.pos)

		for _, dir := range hexgrid.Directions {
			next, ok := pf.grid.Go(current.pos, dir, 1)
			if !ok || pf.isClosed(next) {
				continue
			}

			state := tileState(next)
			if state.blocked {
				continue
			}

			cost := state.cost + current.cost + stepBaseCost
			if smooth && dir != current.direction {
				cost += smoothPenalty
			}

			if neighborIdx, found := pf.findOpenIndex(next); found {
				if cost < pf.steps[neighborIdx].cost {
					pf.steps[neighborIdx].direction = dir
					pf.steps[neighborIdx].cost = cost
					pf.steps[neighborIdx].cameFrom = idx
				}
				continue
			}

			if len(pf.steps) >= pf.maxDepth {
				return nil
			}
			pf.steps = append(pf.steps, step{
				pos:       next,
				cameFrom:  idx,
				direction: dir,
				cost:      cost,
				estimate:  pf.estimate(next, to),
			})
		}
	}
}

// selectOpen scans the workspace for the not-yet-closed step with the
// lowest total cost, breaking ties by lowest index (first inserted).
// Open-set selection is a linear scan rather than a priority queue so
// that first-inserted-wins tie-breaking holds without extra
// bookkeeping; see the pathfinder design notes.
func (pf *PathFinder) selectOpen() (int, bool) {
	best := -1
	for i := range pf.steps {
		if pf.isClosed(pf.steps[i].pos) {
			continue
		}
		if best == -1 || pf.steps[i].totalCost() < pf.steps[best].totalCost() {
			best = i
		}
	}
	if best == -1 {
		return 0, false
	}
	return best, true
}

func (pf *PathFinder) findOpenIndex(pos hexgrid.Point) (int, bool) {
	for i := range pf.steps {
		if pf.steps[i].pos == pos {
			return i, true
		}
	}
	return 0, false
}

func (pf *PathFinder) reconstruct(idx int) []hexgrid.Direction {
	length := 0
	for i := idx; i != 0; i = pf.steps[i].cameFrom {
		length++
	}

	path := make([]hexgrid.Direction, length)
	i := idx
	for k := length - 1; k >= 0; k-- {
		path[k] = pf.steps[i].direction
		i = pf.steps[i].cameFrom
	}
	return path
}

func (pf *PathFinder) markClosed(pos hexgrid.Point) {
	n, ok := pf.grid.ToLinear(pos)
	if !ok {
		panic("pathfinder: markClosed called on out-of-bounds position")
	}
	pf.closed.Set(uint(n))
}

func (pf *PathFinder) isClosed(pos hexgrid.Point) bool {
	n, ok := pf.grid.ToLinear(pos)
	if !ok {
		panic("pathfinder: isClosed called on out-of-bounds position")
	}
	return pf.closed.Test(uint(n))
}

// estimate computes the screen-space heuristic used to order the open
// set: |dx| + |dy| - min(|dx|, |dy|)/2, which is admissible for this
// hex layout because a single tile step in any direction changes
// screen coordinates by at least that amount per unit of tile
// distance.
func (pf *PathFinder) estimate(from, to hexgrid.Point) uint32 {
	fromScr := pf.grid.ToScreen(from)
	toScr := pf.grid.ToScreen(to)
	diff := toScr.Sub(fromScr).Abs()
	min := diff.X
	if diff.Y < min {
		min = diff.Y
	}
	return uint32(diff.X + diff.Y - min/2)
}
