package gexiv2

import (
	"fmt"
	"strconv"
	"strings"
)

// Rational is an Exif RATIONAL or SRATIONAL value. It is stored exactly as
// read and never reduced, so 2/4 stays 2/4.
type Rational struct {
	Num int32
	Den int32
}

// String formats r the way Exiv2 does, as "num/den".
func (r Rational) String() string {
	return strconv.FormatInt(int64(r.Num), 10) + "/" + strconv.FormatInt(int64(r.Den), 10)
}

// Float64 returns Num/Den. A zero denominator yields ±Inf or NaN.
func (r Rational) Float64() float64 {
	return float64(r.Num) / float64(r.Den)
}

// ParseRational parses the "num/den" form produced by String.
func ParseRational(s string) (Rational, error) {
	n, d, ok := strings.Cut(strings.TrimSpace(s), "/")
	if !ok {
		return Rational{}, fmt.Errorf("%w: rational %q has no '/'", ErrInvalidInput, s)
	}
	num, err := strconv.ParseInt(n, 10, 32)
	if err != nil {
		return Rational{}, fmt.Errorf("%w: rational numerator %q: %w", ErrInvalidInput, n, err)
	}
	den, err := strconv.ParseInt(d, 10, 32)
	if err != nil {
		return Rational{}, fmt.Errorf("%w: rational denominator %q: %w", ErrInvalidInput, d, err)
	}
	return Rational{Num: int32(num), Den: int32(den)}, nil
}
