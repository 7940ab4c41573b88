package scan

import "fmt"

// Number scans a JSON number literal at the start of d and returns the
// number of bytes it spans. The grammar is strict: the integer part is
// a single 0 or a nonzero digit followed by digits, a fraction needs at
// least one digit after the '.', and an exponent needs at least one
// digit after the 'e'/'E' and optional sign.
func Number(d []byte) (int, error) {
	i := 0
	if i < len(d) && d[i] == '-' {
		i++
	}
	digits := asciiDigits(d[i:])
	if digits == 0 {
		return 0, ErrNumber
	}
	if digits > 1 && d[i] == '0' {
		return 0, ErrNumberLeadingZero
	}
	i += digits
	f, err := fract(d[i:])
	if err != nil {
		return 0, err
	}
	i += f
	e, err := exp(d[i:])
	if err != nil {
		return 0, err
	}
	return i + e, nil
}

func asciiDigits(d []byte) int {
	i := 0
	for i < len(d) {
		if !asciiDigit(d[i]) {
			return i
		}
		i++
	}
	return i
}

func asciiDigit(c byte) bool {
	switch c {
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return true
	default:
		return false
	}
}

func fract(d []byte) (int, error) {
	if len(d) == 0 || d[0] != '.' {
		return 0, nil
	}
	n := asciiDigits(d[1:])
	if n == 0 {
		return 0, fmt.Errorf("%w: missing digits after decimal point", ErrNumber)
	}
	return n + 1, nil
}

func exp(d []byte) (int, error) {
	if len(d) == 0 {
		return 0, nil
	}
	switch d[0] {
	case 'e', 'E':
	default:
		return 0, nil
	}
	i := 1
	if i < len(d) && (d[i] == '+' || d[i] == '-') {
		i++
	}
	n := asciiDigits(d[i:])
	if n == 0 {
		return 0, fmt.Errorf("%w: missing exponent digits", ErrNumber)
	}
	return i + n, nil
}
