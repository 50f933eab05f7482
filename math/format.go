package math

import (
	"math"
	"strconv"
	"strings"
)

// String renders q canonically: "0", "1+2i", "-i", "3-2.5j+k".
// The real part is omitted when zero unless every coefficient is zero,
// zero imaginary parts are omitted, and unit imaginary coefficients drop
// their numeral.
func (q Quaternion) String() string {
	var sb strings.Builder

	if q.A != 0 || (q.B == 0 && q.C == 0 && q.D == 0) {
		sb.WriteString(formatCoefficient(q.A))
	}
	writeUnitTerm(&sb, q.B, 'i')
	writeUnitTerm(&sb, q.C, 'j')
	writeUnitTerm(&sb, q.D, 'k')

	s := strings.TrimPrefix(sb.String(), "+")
	if s == "" {
		return "0"
	}
	return s
}

func writeUnitTerm(sb *strings.Builder, v float64, unit byte) {
	if v == 0 {
		return
	}
	if math.Signbit(v) {
		sb.WriteByte('-')
	} else {
		sb.WriteByte('+')
	}
	if mag := math.Abs(v); mag != 1 {
		sb.WriteString(formatCoefficient(mag))
	}
	sb.WriteByte(unit)
}

// formatCoefficient uses the shortest round-tripping form, keeping integral
// values below 1e21 out of exponent notation.
func formatCoefficient(v float64) string {
	format := byte('g')
	if v == math.Trunc(v) && math.Abs(v) < 1e21 {
		format = 'f'
	}
	return strings.TrimPrefix(strconv.FormatFloat(v, format, -1, 64), "+")
}
