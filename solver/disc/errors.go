// SPDX-License-Identifier: MIT

package disc

import "errors"

// ErrRadius indicates a non-positive or non-finite radius.
var ErrRadius = errors.New("disc: radius must be positive and finite")

// ErrNotSolved indicates FarField or Scattered before a successful Solve.
var ErrNotSolved = errors.New("disc: solve has not run")

// ErrIndex indicates an incident-field index out of range.
var ErrIndex = errors.New("disc: incident field index out of range")
