package syntax

// CharRange is an inclusive ASCII range [Low, High]. Unicode categories are
// out of scope; this engine only ever emits ASCII ranges.
type CharRange struct {
	Low, High rune
}

// builtinEscapeRanges returns the ASCII ranges and invert flag for one of
// the built-in escape classes \s \S \w \W \d \D. The uppercase forms are
// the lowercase form's ranges with invert=true.
func builtinEscapeRanges(ch rune) (ranges []CharRange, invert bool, ok bool) {
	switch ch {
	case 's':
		return []CharRange{{9, 13}, {28, 32}}, false, true
	case 'S':
		return []CharRange{{9, 13}, {28, 32}}, true, true
	case 'w':
		return []CharRange{{'a', 'z'}, {'A', 'Z'}, {'0', '9'}}, false, true
	case 'W':
		return []CharRange{{'a', 'z'}, {'A', 'Z'}, {'0', '9'}}, true, true
	case 'd':
		return []CharRange{{'0', '9'}}, false, true
	case 'D':
		return []CharRange{{'0', '9'}}, true, true
	default:
		return nil, false, false
	}
}

// singletonEscape returns the literal character a non-class escape like
// \n or \t represents, or the escape character itself for an unrecognized
// \x (treated as literal x).
func singletonEscape(ch rune) rune {
	switch ch {
	case 'n':
		return '\n'
	case 't':
		return '\t'
	case 'r':
		return '\r'
	case 'f':
		return '\f'
	case 'v':
		return '\v'
	default:
		return ch
	}
}

// isBuiltinClassEscape reports whether ch names one of the multi-range
// built-in escape classes, as opposed to a singleton escape.
func isBuiltinClassEscape(ch rune) bool {
	switch ch {
	case 's', 'S', 'w', 'W', 'd', 'D':
		return true
	default:
		return false
	}
}
