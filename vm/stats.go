package vm

import "github.com/aman0408/memoized-regex-engine/syntax"

// Stats is the per-run statistics payload. Backtrack populates one on
// every return path, including match, no-match, and stack overflow.
type Stats struct {
	InputInfo      InputInfo
	SimulationInfo SimulationInfo
	MemoizationInfo MemoizationInfo
}

type InputInfo struct {
	NStates int
	LenW    int
}

type SimulationInfo struct {
	NTotalVisits                        int
	NPossibleTotalVisitsWithMemoization int
	VisitsToMostVisitedSearchState      int
	VisitsToMostVisitedVertex           int
}

type MemoizationInfo struct {
	Config  MemoizationConfig
	Results MemoizationResults
}

type MemoizationConfig struct {
	VertexSelection syntax.MemoMode
	Encoding        syntax.MemoEncoding
}

type MemoizationResults struct {
	NSelectedVertices                int
	LenW                              int
	MaxObservedCostPerMemoizedVertex []int
}

// buildStats derives a Stats snapshot from the visit table accumulated
// during one Backtrack call.
func buildStats(prog *syntax.Program, visits [][]int, lenW int, maxCost []int) Stats {
	nStates := len(prog.Insts)

	totalVisits := 0
	mostVisitedSearchState := 0
	visitsPerVertex := make([]int, nStates)
	mostVisitedVertex := 0
	for i := 0; i < nStates; i++ {
		for j := 0; j <= lenW; j++ {
			v := visits[i][j]
			totalVisits += v
			if v > mostVisitedSearchState {
				mostVisitedSearchState = v
			}
			visitsPerVertex[i] += v
		}
		if visitsPerVertex[i] > visitsPerVertex[mostVisitedVertex] {
			mostVisitedVertex = i
		}
	}

	return Stats{
		InputInfo: InputInfo{NStates: nStates, LenW: lenW},
		SimulationInfo: SimulationInfo{
			NTotalVisits:                        totalVisits,
			NPossibleTotalVisitsWithMemoization: nStates * (lenW + 1),
			VisitsToMostVisitedSearchState:       mostVisitedSearchState,
			VisitsToMostVisitedVertex:            visitsPerVertex[mostVisitedVertex],
		},
		MemoizationInfo: MemoizationInfo{
			Config: MemoizationConfig{
				VertexSelection: prog.MemoMode,
				Encoding:        prog.MemoEncoding,
			},
			Results: MemoizationResults{
				NSelectedVertices:                prog.NMemoizedStates,
				LenW:                              lenW,
				MaxObservedCostPerMemoizedVertex: maxCost,
			},
		},
	}
}
