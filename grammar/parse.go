// SPDX-License-Identifier: MIT

// File: parse.go
// Role: grammar text → CFG (participle grammar).
//
// Text form, one rule per line:
//
//	S -> a S b | $      # comment
//	S -> "Quoted Terminal"
//
// "->", "→" and "::=" are accepted as arrows; "$", "ε" and "epsilon" denote
// the empty body. A bare body symbol is a nonterminal iff it heads some rule
// or starts with an upper-case letter; quoted symbols are always terminals.

package grammar

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	pkgerrors "github.com/pkg/errors"
)

type grammarText struct {
	Rules []*ruleText `( @@ | Newline )*`
}

type ruleText struct {
	Head string     `@Ident Arrow`
	Alts []*altText `@@ ( "|" @@ )*`
}

type altText struct {
	Epsilon bool          `  @Epsilon`
	Symbols []*symbolText `| @@+`
}

type symbolText struct {
	Quoted *string `  @String`
	Name   *string `| @Ident`
}

var grammarLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `#[^\n]*`},
	{Name: "String", Pattern: `"(\\.|[^"\\])*"`},
	{Name: "Arrow", Pattern: `->|→|::=`},
	{Name: "Epsilon", Pattern: `\$|ε|epsilon\b`},
	{Name: "Ident", Pattern: `[A-Za-z0-9_:/.']+`},
	{Name: "Pipe", Pattern: `\|`},
	{Name: "Newline", Pattern: `\n`},
	{Name: "Whitespace", Pattern: `[ \t\r]+`},
})

var parseGrammar = participle.MustBuild[grammarText](
	participle.Lexer(grammarLexer),
	participle.Elide("Whitespace", "Comment"),
	participle.Unquote("String"),
)

// Option configures Parse and ParseRSM.
type Option func(*parseOptions)

type parseOptions struct {
	start string
}

// WithStart sets the start symbol (RSM initial label) instead of the first
// head in the text. An empty name is ignored.
func WithStart(name string) Option {
	return func(o *parseOptions) {
		if name != "" {
			o.start = name
		}
	}
}

func gatherOptions(opts []Option) parseOptions {
	var o parseOptions
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Parse reads a grammar in the text form described in the package docs.
// Rules sharing a head are merged in text order; duplicate productions are dropped.
//
// Errors:
//   - ErrSyntax (joined with the parser error) for malformed text or an
//     empty quoted terminal.
//   - ErrNoStart if the text holds no rule and WithStart is not given.
func Parse(text string, opts ...Option) (*CFG, error) {
	o := gatherOptions(opts)

	ast, err := parseGrammar.ParseString("", text)
	if err != nil {
		return nil, pkgerrors.WithStack(fmt.Errorf("%w: %w", ErrSyntax, err))
	}

	heads := make(map[string]bool, len(ast.Rules))
	for _, r := range ast.Rules {
		heads[r.Head] = true
	}

	start := o.start
	if start == "" && len(ast.Rules) > 0 {
		start = ast.Rules[0].Head
	}
	if start == "" {
		return nil, grammarErrorf("Parse", ErrNoStart)
	}

	var prods []Production
	for _, r := range ast.Rules {
		for _, alt := range r.Alts {
			p := Production{Head: r.Head}
			if !alt.Epsilon {
				for _, s := range alt.Symbols {
					sym, err := classify(s, heads)
					if err != nil {
						return nil, err
					}
					p.Body = append(p.Body, sym)
				}
			}
			prods = append(prods, p)
		}
	}

	return New(start, prods...), nil
}

// MustParse is like Parse but panics on error.
func MustParse(text string, opts ...Option) *CFG {
	g, err := Parse(text, opts...)
	if err != nil {
		panic(err)
	}

	return g
}

func classify(s *symbolText, heads map[string]bool) (Symbol, error) {
	if s.Quoted != nil {
		if *s.Quoted == "" {
			return Symbol{}, pkgerrors.WithStack(fmt.Errorf("%w: empty quoted terminal", ErrSyntax))
		}
		return Term(*s.Quoted), nil
	}
	name := strings.TrimSpace(*s.Name)
	if heads[name] || startsUpper(name) {
		return Var(name), nil
	}

	return Term(name), nil
}
