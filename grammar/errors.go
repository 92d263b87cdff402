// SPDX-License-Identifier: MIT

package grammar

import (
	"errors"
	"fmt"
)

var (
	// ErrSyntax indicates malformed grammar or RSM text. The parser error is
	// joined to it, so the message carries the offending position.
	ErrSyntax = errors.New("grammar: syntax error")

	// ErrNoStart indicates a grammar with no start symbol: empty text and no WithStart.
	ErrNoStart = errors.New("grammar: no start symbol")

	// ErrNilGrammar indicates a nil *CFG or *RSM argument.
	ErrNilGrammar = errors.New("grammar: nil grammar")
)

// grammarErrorf tags err with the operation that produced it.
func grammarErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
