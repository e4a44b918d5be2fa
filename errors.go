// SPDX-License-Identifier: MIT

package dbg

import "errors"

// ErrInvalidArgument classifies every user-facing configuration failure:
// setting an unknown option, or a value that fails its type check.
// Use errors.Is(err, ErrInvalidArgument) instead of string matching.
var ErrInvalidArgument = errors.New("invalid argument")
