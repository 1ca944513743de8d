// SPDX-License-Identifier: MIT

package ring

import (
	"errors"
	"fmt"
)

var (
	// ErrZeroModulus is returned when a modular ring is requested with m == 0.
	ErrZeroModulus = errors.New("ring: modulus must be >= 1")

	// ErrNilRing indicates that a nil Ring was handed to a wrapper.
	ErrNilRing = errors.New("ring: nil ring")
)

// ringErrorf wraps err with a call-site tag, keeping errors.Is intact.
func ringErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
