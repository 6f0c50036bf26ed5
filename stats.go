package mregex

import "github.com/aman0408/memoized-regex-engine/vm"

// Stats is the root alias for the per-run statistics payload vm.Backtrack
// produces, re-exported so callers never need to import the vm
// subpackage directly.
type Stats = vm.Stats
