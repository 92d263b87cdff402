// SPDX-License-Identifier: MIT

// File: parser.go
// Role: pattern text → AST (participle grammar).
//
// Grammar:
//
//	alternation := concat ( "|" concat )*
//	concat      := repeat ( "."? repeat )*
//	repeat      := atom ( "*" | "+" | "?" )*
//	atom        := "$" | "ε" | symbol | "(" alternation ")"
//	symbol      := [A-Za-z0-9_\-:#/]+ | "quoted string"

package regex

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	pkgerrors "github.com/pkg/errors"
)

type alternation struct {
	Terms []*concat `@@ ( "|" @@ )*`
}

type concat struct {
	Factors []*repeat `@@ ( "."? @@ )*`
}

type repeat struct {
	Atom *atom    `@@`
	Ops  []string `@( "*" | "+" | "?" )*`
}

type atom struct {
	Epsilon bool         `  @Epsilon`
	Symbol  *string      `| @( Ident | String )`
	Group   *alternation `| "(" @@ ")"`
}

var patternLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "String", Pattern: `"(\\.|[^"\\])*"`},
	{Name: "Epsilon", Pattern: `\$|ε`},
	{Name: "Ident", Pattern: `[A-Za-z0-9_\-:#/]+`},
	{Name: "Punct", Pattern: `[|*+?().]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var parsePattern = participle.MustBuild[alternation](
	participle.Lexer(patternLexer),
	participle.Elide("Whitespace"),
	participle.Unquote("String"),
)

// parse returns the AST of pattern. A blank pattern denotes the empty word.
func parse(pattern string) (*alternation, error) {
	if strings.TrimSpace(pattern) == "" {
		return &alternation{Terms: []*concat{{Factors: []*repeat{{Atom: &atom{Epsilon: true}}}}}}, nil
	}
	ast, err := parsePattern.ParseString("", pattern)
	if err != nil {
		return nil, pkgerrors.WithStack(fmt.Errorf("%w: %q: %w", ErrSyntax, pattern, err))
	}
	if err := checkSymbols(ast); err != nil {
		return nil, err
	}

	return ast, nil
}

// checkSymbols rejects empty quoted symbols, which would become empty labels.
func checkSymbols(n *alternation) error {
	for _, c := range n.Terms {
		for _, r := range c.Factors {
			switch {
			case r.Atom.Symbol != nil && *r.Atom.Symbol == "":
				return pkgerrors.WithStack(fmt.Errorf("%w: empty quoted symbol", ErrSyntax))
			case r.Atom.Group != nil:
				if err := checkSymbols(r.Atom.Group); err != nil {
					return err
				}
			}
		}
	}

	return nil
}
