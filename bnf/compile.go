package bnf

import (
	"os"

	"github.com/ava12/combgo/combinator"
	"github.com/ava12/combgo/internal/queue"
	"github.com/ava12/combgo/pnode"
)

// compiler holds the shared state of one grammar-to-parser compilation: the
// fully-resolved rule map and a cache ensuring every rule is compiled at
// most once, however many times it is referenced, and that recursive
// references share the same combinator.Lazy cell rather than each
// unfolding their own copy of the grammar.
type compiler struct {
	rules RuleMap
	cache map[string]combinator.Parser[pnode.Node]
}

// ruleParser returns the (possibly still-unforced) parser for the rule
// named name, compiling it on first request.
func (c *compiler) ruleParser(name string) combinator.Parser[pnode.Node] {
	if p, ok := c.cache[name]; ok {
		return p
	}

	p := combinator.Lazy(func() combinator.Parser[pnode.Node] {
		alts, ok := c.rules[name]
		if !ok {
			return combinator.Failure[pnode.Node]()
		}
		return c.compileExpression(name, alts)
	})
	c.cache[name] = p
	return p
}

// compileExpression turns a rule's alternatives into best(alternatives),
// projected to a rule node tagged with name.
func (c *compiler) compileExpression(name string, alts []Alternative) combinator.Parser[pnode.Node] {
	ps := make([]combinator.Parser[[]pnode.Node], len(alts))
	for i, alt := range alts {
		ps[i] = c.compileList(alt)
	}
	return combinator.Select(combinator.Best(ps...), func(children []pnode.Node) pnode.Node {
		return pnode.NewRule(name, children)
	})
}

// compileList turns a term sequence into all(terms.map(compileTerm)).
func (c *compiler) compileList(terms Alternative) combinator.Parser[[]pnode.Node] {
	ps := make([]combinator.Parser[pnode.Node], len(terms))
	for i, t := range terms {
		ps[i] = c.compileTerm(t)
	}
	return combinator.All(ps...)
}

// compileTerm turns a literal term into string(literal) projected to a
// literal node, and a rule-reference term into a deferred lookup of that
// rule's own parser (breaking cycles through ruleParser's Lazy cell).
func (c *compiler) compileTerm(t TermRule) combinator.Parser[pnode.Node] {
	if t.IsRuleRef() {
		return c.ruleParser(t.Text())
	}

	text := t.Text()
	return combinator.Select(combinator.String(text), func(s string) pnode.Node {
		return pnode.NewLiteral(s)
	})
}

// CompileRuleMap compiles an already-parsed RuleMap into a parser rooted at
// mainRule, adding the built-in EOL rule if rm does not define its own.
// Every RuleRefTerm reachable from mainRule must name a rule present in rm
// (or be EOL); CompileRuleMap validates this eagerly and returns an *Error
// immediately if not, rather than waiting for the first parse to discover
// it the way an isolated, unreachable undefined reference elsewhere in the
// grammar would.
func CompileRuleMap(rm RuleMap, mainRule string) (combinator.Parser[pnode.Node], error) {
	full := withBuiltins(rm)
	if err := checkDefined(full, mainRule); err != nil {
		return combinator.Parser[pnode.Node]{}, err
	}

	c := &compiler{rules: full, cache: make(map[string]combinator.Parser[pnode.Node])}
	return c.ruleParser(mainRule), nil
}

// checkDefined verifies that mainRule and every rule name reachable from it
// through a RuleRefTerm names an entry in rm. Rules unreachable from
// mainRule are not checked. An unreferenced typo elsewhere in the grammar
// still only surfaces as ordinary parse failure if that branch is ever
// exercised, per the lazy-lookup discipline Compile otherwise preserves.
func checkDefined(rm RuleMap, mainRule string) error {
	if _, ok := rm[mainRule]; !ok {
		return newError("undefined rule %q", mainRule)
	}

	seen := map[string]bool{mainRule: true}
	pending := queue.New(mainRule)
	for !pending.IsEmpty() {
		name, _ := pending.First()

		for _, alt := range rm[name] {
			for _, t := range alt {
				if !t.IsRuleRef() {
					continue
				}
				ref := t.Text()
				if _, ok := rm[ref]; !ok {
					return newError("rule %q references undefined rule %q", name, ref)
				}
				if !seen[ref] {
					seen[ref] = true
					pending.Append(ref)
				}
			}
		}
	}
	return nil
}

// Compile reads grammarText as BNF and compiles it into a parser rooted at
// mainRule. This is the library's fromBNF entry point.
func Compile(grammarText, mainRule string) (combinator.Parser[pnode.Node], error) {
	rm, err := ParseGrammar(grammarText)
	if err != nil {
		return combinator.Parser[pnode.Node]{}, err
	}
	return CompileRuleMap(rm, mainRule)
}

// CompileFile reads the grammar at path and compiles it the way Compile
// does, sitting next to it the way a ReadString/ReadFile pair usually
// does for a format with both an in-memory and an on-disk source.
func CompileFile(path, mainRule string) (combinator.Parser[pnode.Node], error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return combinator.Parser[pnode.Node]{}, err
	}
	return Compile(string(data), mainRule)
}
