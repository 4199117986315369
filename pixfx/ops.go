// Copyright 2025 go-pixfx Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package pixfx

import (
	"errors"
	"fmt"
	"math/bits"
)

// ErrDimensions is returned when a buffer length disagrees with the width
// and height it is described with.
var ErrDimensions = errors.New("pixfx: buffer length does not match dimensions")

// ConvertToGrayscale replaces R, G and B of every complete 4-byte pixel in
// pix with trunc(0.299*R + 0.587*G + 0.114*B), leaving alpha unchanged.
//
// width and height are informational: the buffer is walked as a flat
// sequence of pixels and a trailing incomplete pixel is left untouched.
// An empty or nil buffer is a no-op.
func ConvertToGrayscale(pix []byte, width, height uint32) {
	ConvertToGrayscaleBytes(pix)
}

// InvertColors replaces R, G and B of every complete 4-byte pixel in pix
// with 255 minus the channel value, leaving alpha unchanged.
//
// width and height are informational, as for ConvertToGrayscale.
func InvertColors(pix []byte, width, height uint32) {
	InvertColorsBytes(pix)
}

// ValidateDimensions reports whether pix holds exactly width*height RGBA
// pixels. The error wraps ErrDimensions.
func ValidateDimensions(pix []byte, width, height uint32) error {
	hi, want := bits.Mul64(uint64(width)*uint64(height), 4)
	if hi != 0 || want != uint64(len(pix)) {
		return fmt.Errorf("%w: %dx%d RGBA needs %d pixels, buffer has %d bytes",
			ErrDimensions, width, height, uint64(width)*uint64(height), len(pix))
	}
	return nil
}

// ConvertToGrayscaleStrict is ConvertToGrayscale for callers that want
// the dimensions enforced. pix is not modified when validation fails.
func ConvertToGrayscaleStrict(pix []byte, width, height uint32) error {
	if err := ValidateDimensions(pix, width, height); err != nil {
		return err
	}
	ConvertToGrayscaleBytes(pix)
	return nil
}

// InvertColorsStrict is InvertColors with the dimensions enforced.
func InvertColorsStrict(pix []byte, width, height uint32) error {
	if err := ValidateDimensions(pix, width, height); err != nil {
		return err
	}
	InvertColorsBytes(pix)
	return nil
}
