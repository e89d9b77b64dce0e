package sourceutils

import (
	"math"
	"sort"

	"github.com/walysson-bot/vscode-js-debug/sourcemaps"
)

// MappingCandidate is one possible generated position for a location the
// user asked about, scored by how far its own reverse mapping drifts from
// the requested line. Lower variance is closer to what the user meant.
type MappingCandidate struct {
	Position sourcemaps.Position
	OK       bool
	Variance int
}

// worstVariance ranks candidates whose position or reverse lookup did not
// resolve behind every resolvable one.
const worstVariance = math.MaxInt32

// GetOptimalCompiledPosition picks the generated position that best
// corresponds to a location the user sees in sourceURL, typically to set
// a breakpoint. The lower-bound lookup alone can land on a mapping
// carried over from a much earlier line; exact same-position mappings,
// when they exist, are usually the better anchor. Each candidate is
// mapped back to the original side and ranked by the absolute line
// difference from the request, ties broken by earliest generated
// position. The boolean is false only when no candidate resolves at all.
func GetOptimalCompiledPosition(sourceURL string, ui sourcemaps.UILocation, m *sourcemaps.Map) (sourcemaps.Position, bool) {
	mapPos := ui.MapPosition()

	variance := func(pos sourcemaps.Position, ok bool) int {
		if !ok {
			return worstVariance
		}
		orig, ok := m.OriginalPositionFor(pos)
		if !ok {
			return worstVariance
		}
		d := ui.Line - orig.Position.Line
		if d < 0 {
			d = -d
		}
		return d
	}

	basePos, baseOK := m.GeneratedPositionFor(sourceURL, mapPos, sourcemaps.GreatestLowerBound)
	candidates := []MappingCandidate{{Position: basePos, OK: baseOK, Variance: variance(basePos, baseOK)}}
	for _, pos := range m.AllGeneratedPositionsFor(sourceURL, mapPos) {
		candidates = append(candidates, MappingCandidate{Position: pos, OK: true, Variance: variance(pos, true)})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.Variance != b.Variance {
			return a.Variance < b.Variance
		}
		if a.OK != b.OK {
			return a.OK
		}
		return a.Position.Before(b.Position)
	})

	best := candidates[0]
	return best.Position, best.OK
}
