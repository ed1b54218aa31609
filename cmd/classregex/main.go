// Command classregex checks whether a string matches a pattern.
//
// Usage: classregex [-dfa] <pattern> <string>
//
// Exit status is 0 on a match, 1 on no match, and 2 if the pattern fails
// to parse.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/coregx/classregex"
)

func main() {
	useDFA := flag.Bool("dfa", false, "determinize the pattern into a DFA before matching")
	flag.Parse()

	args := flag.Args()
	if len(args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: classregex [-dfa] <pattern> <string>")
		os.Exit(2)
	}
	pattern, input := args[0], args[1]

	compile := classregex.NewNFA
	if *useDFA {
		compile = classregex.NewDFA
	}

	re, err := compile(pattern)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}

	if !re.IsMatch(input) {
		os.Exit(1)
	}
}
