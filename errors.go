package mregex

import (
	"github.com/aman0408/memoized-regex-engine/syntax"
	"github.com/aman0408/memoized-regex-engine/vm"
)

// Error taxonomy re-exported at the root so callers of Compile/
// FindStringMatch can errors.As against these without reaching into the
// syntax/vm subpackages directly.
type (
	SyntaxError             = syntax.SyntaxError
	UnsupportedFeatureError = syntax.UnsupportedFeatureError
	InfiniteLoopError       = syntax.InfiniteLoopError
	StackOverflowError      = vm.StackOverflowError
)
