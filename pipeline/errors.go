// SPDX-License-Identifier: EPL-2.0

package pipeline

import "errors"

var (
	ErrInvalidFrameSize = errors.New("frame size must be positive")
	ErrInvalidConfig    = errors.New("degenerate stream parameters")
)
