package combinator

import (
	"strconv"
	"unicode"

	"golang.org/x/exp/constraints"
)

// Char succeeds on exactly the rune c.
func Char(c rune) Parser[rune] {
	return Satisfy(func(r rune) bool { return r == c })
}

// String succeeds on exactly the literal s, yielding s itself.
func String(s string) Parser[string] {
	runes := []rune(s)
	ps := make([]Parser[rune], len(runes))
	for i, r := range runes {
		ps[i] = Char(r)
	}
	return Select(All(ps...), func(rs []rune) string {
		return string(rs)
	})
}

// Digits parses one or more decimal digits, yielding them concatenated.
func Digits() Parser[string] {
	return Select(OnceOrMore(Satisfy(unicode.IsDigit)), runesToString)
}

func runesToString(rs []rune) string {
	return string(rs)
}

// sign parses an optional leading '+' or '-', defaulting to '+'.
func sign() Parser[rune] {
	return OneOrDefault(Either(Char('+'), Char('-')), '+')
}

// signedDigits parses an optional sign followed by the digits matched by
// body, and hands the digits to convert, prefixed with '-' when the sign is
// negative (a '+' sign is dropped). It is the shared
// shape behind Integer and Double: both are "optional sign, then a numeral
// recognised character-by-character", differing only in what counts as the
// numeral and how the text is converted to a value. N is constrained to the
// numeric kinds strconv can parse from a plain decimal-notation string.
func signedDigits[N constraints.Signed | constraints.Float](body Parser[string], convert func(string) (N, error)) Parser[N] {
	text := Bind(sign(), func(s rune) Parser[string] {
		return Select(body, func(digits string) string {
			if s == '-' {
				return "-" + digits
			}
			return digits
		})
	})

	return Bind(text, func(s string) Parser[N] {
		n, err := convert(s)
		if err != nil {
			return Failure[N]()
		}
		return Success(n)
	})
}

// Integer parses an optional sign followed by one or more digits and
// projects the result to a base-10 signed integer. "123", "+123", and
// "-123" all succeed; a sign with no following digits fails.
func Integer() Parser[int] {
	return signedDigits(Digits(), func(s string) (int, error) {
		n, err := strconv.ParseInt(s, 10, strconv.IntSize)
		return int(n), err
	})
}

// decimal parses digits '.' digits? or plain digits, the numeral shape
// Double accepts.
func decimal() Parser[string] {
	withFraction := Select(
		All(Digits(), String("."), OrDefault(Digits())),
		func(parts []string) string { return parts[0] + parts[1] + parts[2] },
	)
	return Either(withFraction, Digits())
}

// Double parses an optional sign followed by digits '.' digits? or plain
// digits, and projects the result to a float64 using an invariant,
// dot-as-decimal, no-grouping, no-exponent numeric format. "1", "1.",
// "1.5", and "-1.5" all succeed.
func Double() Parser[float64] {
	return signedDigits(decimal(), func(s string) (float64, error) {
		return strconv.ParseFloat(s, 64)
	})
}

// Bool parses the literal "false" or "true" and projects it to the
// corresponding boolean. Matching is case-sensitive; "False" fails.
func Bool() Parser[bool] {
	return Either(
		Select(String("false"), func(string) bool { return false }),
		Select(String("true"), func(string) bool { return true }),
	)
}
