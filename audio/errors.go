// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrFrameNotAligned = errors.New("frame size must be multiple of channels")
)
