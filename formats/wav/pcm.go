// SPDX-License-Identifier: EPL-2.0

package wav

// float32ToInt16 clamps x to [-1,1] and scales it to a 16-bit sample. The
// positive scale is 32767 so 1.0 cannot overflow.
func float32ToInt16(x float32) int16 {
	switch {
	case x >= 1:
		return 32767
	case x <= -1:
		return -32767
	}

	return int16(x * 32767.0)
}
