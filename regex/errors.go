// SPDX-License-Identifier: MIT

package regex

import "errors"

// ErrSyntax indicates a malformed pattern. The parser's own error is joined
// to it, so errors.Is matches ErrSyntax and the message carries the position.
var ErrSyntax = errors.New("regex: syntax error")
