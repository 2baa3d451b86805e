package combinator

import (
	"testing"

	"github.com/ava12/combgo/view"
)

func TestSuccessIdentity(t *testing.T) {
	p := Success(42)
	for _, s := range []string{"", "abc", "xyz123"} {
		v, rest, ok := p.Parse(view.New(s))
		if !ok || v != 42 || rest.String() != s {
			t.Fatalf("Success(42).Parse(%q) = (%v, %q, %v), want (42, %q, true)", s, v, rest.String(), ok, s)
		}
	}
}

func TestFailureIdentity(t *testing.T) {
	p := Failure[int]()
	for _, s := range []string{"", "abc"} {
		_, _, ok := p.Parse(view.New(s))
		if ok {
			t.Fatalf("Failure().Parse(%q) unexpectedly succeeded", s)
		}
	}
}

func TestItem(t *testing.T) {
	r, rest, ok := Item().Parse(view.New("abcd"))
	if !ok || r != 'a' || rest.String() != "bcd" {
		t.Fatalf("got (%q, %q, %v)", r, rest.String(), ok)
	}
	_, _, ok = Item().Parse(view.New(""))
	if ok {
		t.Fatal("Item() succeeded on empty input")
	}
}

func TestSatisfy(t *testing.T) {
	isDigit := Satisfy(func(r rune) bool { return r >= '0' && r <= '9' })
	r, rest, ok := isDigit.Parse(view.New("5x"))
	if !ok || r != '5' || rest.String() != "x" {
		t.Fatalf("got (%q, %q, %v)", r, rest.String(), ok)
	}
	_, _, ok = isDigit.Parse(view.New("x5"))
	if ok {
		t.Fatal("Satisfy matched a rune that does not satisfy the predicate")
	}
}

func TestCharEndToEnd(t *testing.T) {
	v, rest, ok := Char('a').ParseString("abcd")
	if !ok || v != 'a' || rest != "bcd" {
		t.Fatalf("Char('a').Parse(\"abcd\") = (%q, %q, %v), want ('a', \"bcd\", true)", v, rest, ok)
	}
}

func TestProjectionLaw(t *testing.T) {
	digit := Satisfy(func(r rune) bool { return r >= '0' && r <= '9' })
	toInt := Select(digit, func(r rune) int { return int(r - '0') })

	for _, s := range []string{"7x", "ab"} {
		pv, prest, pok := digit.Parse(view.New(s))
		sv, srest, sok := toInt.Parse(view.New(s))
		if sok != pok {
			t.Fatalf("Select changed success/fail outcome for %q", s)
		}
		if pok {
			if sv != int(pv-'0') || srest.String() != prest.String() {
				t.Fatalf("projection law violated for %q", s)
			}
		}
	}
}

func TestEitherLeftBias(t *testing.T) {
	p := Char('a')
	q := Char('b')
	e := Either(p, q)
	v, rest, ok := e.Parse(view.New("ax"))
	pv, prest, pok := p.Parse(view.New("ax"))
	if v != pv || rest.String() != prest.String() || ok != pok {
		t.Fatalf("Either did not reduce to p when p succeeds")
	}
}

func TestEitherFallback(t *testing.T) {
	p := Char('a')
	q := Char('b')
	e := Either(p, q)
	v, rest, ok := e.Parse(view.New("bx"))
	qv, qrest, qok := q.Parse(view.New("bx"))
	if v != qv || rest.String() != qrest.String() || ok != qok {
		t.Fatalf("Either did not fall back to q when p fails")
	}
}

func TestBestOptimality(t *testing.T) {
	short := Select(Char('a'), func(rune) string { return "short" })
	long := Select(String("ab"), func(string) string { return "long" })
	best := Best(short, long)

	v, rest, ok := best.Parse(view.New("abc"))
	if !ok || v != "long" || rest.String() != "c" {
		t.Fatalf("Best did not pick the longer match: got (%q, %q, %v)", v, rest.String(), ok)
	}
}

func TestBestTieBreakIsFirstIndex(t *testing.T) {
	first := Select(Char('a'), func(rune) int { return 1 })
	second := Select(Char('a'), func(rune) int { return 2 })
	best := Best(first, second)

	v, _, ok := best.Parse(view.New("a"))
	if !ok || v != 1 {
		t.Fatalf("Best did not break the tie in favor of the first parser: got %v", v)
	}
}

func TestRepetitionTotality(t *testing.T) {
	p := Char('x')
	zm := ZeroOrMore(p)
	_, rest, ok := zm.Parse(view.New("yyy"))
	if !ok || rest.String() != "yyy" {
		t.Fatalf("ZeroOrMore must always succeed; got ok=%v rest=%q", ok, rest.String())
	}
}

func TestGreediness(t *testing.T) {
	p := Char('x')
	zm := ZeroOrMore(p)
	vals, rest, ok := zm.Parse(view.New("xxxy"))
	if !ok || len(vals) != 3 || rest.String() != "y" {
		t.Fatalf("got (%v, %q, %v), want (3 x's, \"y\", true)", vals, rest.String(), ok)
	}
	_, _, stillMatches := p.Parse(rest)
	if stillMatches {
		t.Fatal("p must not still match the remainder after greedy ZeroOrMore")
	}
}

func TestOnceOrMoreRequiresOne(t *testing.T) {
	p := Char('x')
	om := OnceOrMore(p)
	_, _, ok := om.Parse(view.New("y"))
	if ok {
		t.Fatal("OnceOrMore succeeded with zero matches")
	}
	vals, rest, ok := om.Parse(view.New("xxy"))
	if !ok || len(vals) != 2 || rest.String() != "y" {
		t.Fatalf("got (%v, %q, %v)", vals, rest.String(), ok)
	}
}

func TestChain(t *testing.T) {
	vals, rest, ok := Chain(Integer(), Char(',')).ParseString("1,2,3;4")
	if !ok || rest != ";4" || len(vals) != 3 || vals[0] != 1 || vals[1] != 2 || vals[2] != 3 {
		t.Fatalf("got (%v, %q, %v), want ([1 2 3], \";4\", true)", vals, rest, ok)
	}
}

func TestOrDefault(t *testing.T) {
	p := OrDefault(Integer())
	v, rest, ok := p.Parse(view.New("abc"))
	if !ok || v != 0 || rest.String() != "abc" {
		t.Fatalf("OrDefault must succeed without consuming on sub-parser failure: got (%v, %q, %v)", v, rest.String(), ok)
	}
}

func TestOneOrDefault(t *testing.T) {
	v, _, ok := OneOrDefault(Integer(), -1).Parse(view.New("abc"))
	if !ok || v != -1 {
		t.Fatalf("got (%v, _, %v), want (-1, true)", v, ok)
	}
}

func TestPurity(t *testing.T) {
	p := Chain(Integer(), Char(','))
	s := "1,2,3"
	v1, r1, ok1 := p.ParseString(s)
	v2, r2, ok2 := p.ParseString(s)
	if ok1 != ok2 || r1 != r2 || len(v1) != len(v2) {
		t.Fatal("parsing the same input twice produced different results")
	}
	for i := range v1 {
		if v1[i] != v2[i] {
			t.Fatal("parsing the same input twice produced different results")
		}
	}
	if s != "1,2,3" {
		t.Fatal("parsing must not mutate the input")
	}
}
