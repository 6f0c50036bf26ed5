// Command mregex compiles a pattern under a chosen memoization strategy
// and encoding, matches it against an input string, and prints the match
// and run statistics.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/aman0408/memoized-regex-engine"
)

func usage() {
	fmt.Fprintln(os.Stderr, "usage: mregex [-v] [-f query.json] {none|full|indeg|loop} {none|neg|rle|rle-tuned} { pattern input | } [rlek]")
	fmt.Fprintln(os.Stderr, "  The first positional argument is the memoization strategy")
	fmt.Fprintln(os.Stderr, "  The second positional argument is the memo table encoding scheme")
	fmt.Fprintln(os.Stderr, "  With -f, pattern/input are loaded from the named JSON query file instead of argv")
	os.Exit(2)
}

// query is the {pattern, input, rleKValue} shape loadQuery parses.
type query struct {
	Pattern   string `json:"pattern"`
	Input     string `json:"input"`
	RleKValue int    `json:"rleKValue"`
}

func loadQuery(path string) (query, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return query{}, err
	}
	var q query
	if err := json.Unmarshal(data, &q); err != nil {
		return query{}, err
	}
	return q, nil
}

func parseMemoMode(arg string) mregex.MemoMode {
	switch arg {
	case "none":
		return mregex.MemoNone
	case "full":
		return mregex.MemoFull
	case "indeg":
		return mregex.MemoIndegGT1
	case "loop":
		return mregex.MemoLoopDest
	default:
		fmt.Fprintf(os.Stderr, "Error, unknown memo strategy %s\n", arg)
		usage()
		return mregex.MemoNone
	}
}

func parseEncoding(arg string) mregex.MemoEncoding {
	switch arg {
	case "none":
		return mregex.EncodingNone
	case "neg":
		return mregex.EncodingNegative
	case "rle":
		return mregex.EncodingRLE
	case "rle-tuned":
		return mregex.EncodingRLETuned
	default:
		fmt.Fprintf(os.Stderr, "Error, unknown encoding %s\n", arg)
		usage()
		return mregex.EncodingNone
	}
}

func main() {
	verbose := flag.Bool("v", false, "log compilation and simulation details to stderr")
	queryFile := flag.String("f", "", "load {pattern, input, rleKValue} from a JSON query file")
	flag.Usage = usage
	flag.Parse()

	log := newLogger(*verbose)

	args := flag.Args()
	if len(args) < 2 {
		usage()
	}
	memoMode := parseMemoMode(args[0])
	memoEncoding := parseEncoding(args[1])
	if memoMode == mregex.MemoNone {
		memoEncoding = mregex.EncodingNone
	}

	var pattern, input string
	rleK := 1

	if *queryFile != "" {
		q, err := loadQuery(*queryFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "loading query: %v\n", err)
			os.Exit(1)
		}
		pattern, input, rleK = q.Pattern, q.Input, q.RleKValue
		if rleK == 0 {
			rleK = 1
		}
	} else {
		rest := args[2:]
		if len(rest) < 2 {
			usage()
		}
		pattern, input = rest[0], rest[1]
		if len(rest) >= 3 {
			k, err := strconv.Atoi(rest[2])
			if err != nil {
				fmt.Fprintf(os.Stderr, "invalid rlek %q: %v\n", rest[2], err)
				os.Exit(1)
			}
			rleK = k
		}
	}

	log.Section("parse and compile")
	re, err := mregex.Compile(pattern, memoMode, memoEncoding, rleK)
	if err != nil {
		fmt.Fprintf(os.Stderr, "compiling %q: %v\n", pattern, err)
		os.Exit(1)
	}
	log.Log("compiled %d instructions, will memoize %d states", re.Program().Len(), re.Program().NMemoizedStates)

	log.Section("simulate")
	log.Log("candidate string: %s", input)
	match, err := re.FindStringMatch(input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "matching: %v\n", err)
		os.Exit(1)
	}

	if match == nil {
		fmt.Println(mregex.NoMatchString)
	} else {
		fmt.Println(match.String())
	}

	printStats(re.LastStats())
}

func printStats(s mregex.Stats) {
	fmt.Printf("inputInfo: {nStates: %d, lenW: %d}\n", s.InputInfo.NStates, s.InputInfo.LenW)
	fmt.Printf("simulationInfo: {nTotalVisits: %d, nPossibleTotalVisitsWithMemoization: %d, visitsToMostVisitedSearchState: %d, visitsToMostVisitedVertex: %d}\n",
		s.SimulationInfo.NTotalVisits,
		s.SimulationInfo.NPossibleTotalVisitsWithMemoization,
		s.SimulationInfo.VisitsToMostVisitedSearchState,
		s.SimulationInfo.VisitsToMostVisitedVertex)
	fmt.Printf("memoizationInfo: {config: {vertexSelection: %d, encoding: %d}, results: {nSelectedVertices: %d, lenW: %d, maxObservedCostPerMemoizedVertex: %v}}\n",
		s.MemoizationInfo.Config.VertexSelection,
		s.MemoizationInfo.Config.Encoding,
		s.MemoizationInfo.Results.NSelectedVertices,
		s.MemoizationInfo.Results.LenW,
		s.MemoizationInfo.Results.MaxObservedCostPerMemoizedVertex)
}
