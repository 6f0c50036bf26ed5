package syntax

import "fmt"

// SyntaxError reports a malformed pattern. The parser aborts on the first
// one it finds; there is no partial-result recovery.
type SyntaxError struct {
	Pos int
	Msg string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at offset %d: %s", e.Pos, e.Msg)
}

// UnsupportedFeatureError reports an AST node type a pass did not expect.
type UnsupportedFeatureError struct {
	Pass string
	Kind Kind
}

func (e *UnsupportedFeatureError) Error() string {
	return fmt.Sprintf("%s: unsupported node kind %d", e.Pass, e.Kind)
}

// InfiniteLoopError reports a normalized program with an epsilon cycle
// through a Split/SplitMany/Jmp, e.g. (a*)*.
type InfiniteLoopError struct {
	StateNum int
}

func (e *InfiniteLoopError) Error() string {
	return fmt.Sprintf("infinite loop possible: back-edge into state %d without consuming input (e.g. (a*)*)", e.StateNum)
}
