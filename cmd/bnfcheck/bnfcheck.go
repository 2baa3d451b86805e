/*
bnfcheck is a console utility that compiles a BNF grammar and reports
whether a given input matches. Usage is

	bnfcheck -g <grammar-file> -r <main-rule> [-i <input>]

-g <grammar-file> names the file holding the BNF grammar text.

-r <main-rule> names the rule to start parsing from.

-i <input> supplies the input to parse directly; if omitted, the input is
read from stdin instead.
*/
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/ava12/combgo/bnf"
)

func usage() {
	fmt.Fprintln(os.Stderr, "usage: bnfcheck -g <grammar-file> -r <main-rule> [-i <input>]")
	flag.PrintDefaults()
}

func main() {
	grammarFileName := flag.String("g", "", "path to a file holding the BNF grammar text")
	mainRuleName := flag.String("r", "", "name of the rule to start parsing from")
	input := flag.String("i", "", "input to parse; if unset, input is read from stdin")
	flag.Usage = usage
	flag.Parse()

	if *grammarFileName == "" || *mainRuleName == "" {
		usage()
		os.Exit(2)
	}

	p, err := bnf.CompileFile(*grammarFileName, *mainRuleName)
	if err != nil {
		fmt.Fprintln(os.Stderr, "grammar error:", err)
		os.Exit(1)
	}

	text := *input
	if !isFlagSet("i") {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			fmt.Fprintln(os.Stderr, "error reading stdin:", err)
			os.Exit(1)
		}
		text = string(data)
	}

	tree, rest, ok := p.ParseString(text)
	if !ok {
		fmt.Println("did not parse")
		os.Exit(1)
	}

	fmt.Println("matched:", tree.Show())
	fmt.Println("remainder:", rest)
	fmt.Println("tree:", tree.String())
}

func isFlagSet(name string) bool {
	found := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}
