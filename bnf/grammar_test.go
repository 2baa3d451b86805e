package bnf

import "testing"

func TestParseGrammarBasic(t *testing.T) {
	g := `
<expr> ::= <num> | <num> '+' <expr>
<num>  ::= '0' | '1' | '2'
`
	rm, err := ParseGrammar(g)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	if _, ok := rm["expr"]; !ok {
		t.Fatal("rule \"expr\" missing from parsed RuleMap")
	}
	if _, ok := rm["num"]; !ok {
		t.Fatal("rule \"num\" missing from parsed RuleMap")
	}
	if _, ok := rm[EOLRule]; !ok {
		t.Fatal("built-in EOL rule missing from parsed RuleMap")
	}

	if len(rm["num"]) != 3 {
		t.Fatalf("rule \"num\" has %d alternatives, want 3", len(rm["num"]))
	}
	if len(rm["expr"]) != 2 {
		t.Fatalf("rule \"expr\" has %d alternatives, want 2", len(rm["expr"]))
	}
	second := rm["expr"][1]
	if len(second) != 3 {
		t.Fatalf("second alternative has %d terms, want 3", len(second))
	}
	if !second[0].IsRuleRef() || second[0].Text() != "num" {
		t.Fatalf("first term of second alternative = %+v, want ruleref num", second[0])
	}
	if second[1].IsRuleRef() || second[1].Text() != "+" {
		t.Fatalf("second term of second alternative = %+v, want literal '+'", second[1])
	}
	if !second[2].IsRuleRef() || second[2].Text() != "expr" {
		t.Fatalf("third term of second alternative = %+v, want ruleref expr", second[2])
	}
}

func TestParseGrammarDoubleQuotedLiteral(t *testing.T) {
	g := `<greeting> ::= "hello" <name>` + "\n" + `<name> ::= 'world'`
	rm, err := ParseGrammar(g)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	alt := rm["greeting"][0]
	if alt[0].IsRuleRef() || alt[0].Text() != "hello" {
		t.Fatalf("got %+v, want literal \"hello\"", alt[0])
	}
}

func TestParseGrammarCRLFSeparator(t *testing.T) {
	g := "<a> ::= 'x'\r\n<b> ::= 'y'"
	rm, err := ParseGrammar(g)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if _, ok := rm["a"]; !ok {
		t.Fatal("rule \"a\" missing")
	}
	if _, ok := rm["b"]; !ok {
		t.Fatal("rule \"b\" missing")
	}
}

func TestParseGrammarMergesRepeatedDefinitions(t *testing.T) {
	g := "<a> ::= 'x'\n<a> ::= 'y'"
	rm, err := ParseGrammar(g)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if len(rm["a"]) != 2 {
		t.Fatalf("expected repeated rule definitions to merge alternatives, got %d", len(rm["a"]))
	}
}

func TestParseGrammarMalformed(t *testing.T) {
	_, err := ParseGrammar("not a grammar at all")
	if err == nil {
		t.Fatal("expected an error for malformed grammar text")
	}
}

func TestParseGrammarTrailingGarbage(t *testing.T) {
	_, err := ParseGrammar("<a> ::= 'x'\n!!!not part of the grammar")
	if err == nil {
		t.Fatal("expected an error for unconsumed trailing text")
	}
}
