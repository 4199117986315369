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
	"fmt"
	"image"
	"image/color"
	"math"
)

// Buffer is a dimension-aware view over RGBA8 pixels.
// Rows may be padded (Stride > 4*Width); padding bytes are never read or
// written by the transforms.
type Buffer struct {
	pix    []byte
	width  int
	height int
	stride int // bytes per row (includes padding)
}

// NewBuffer allocates a tightly packed buffer of the given dimensions.
// Non-positive dimensions give an empty buffer.
func NewBuffer(width, height int) *Buffer {
	if width <= 0 || height <= 0 {
		return &Buffer{}
	}
	return &Buffer{
		pix:    make([]byte, width*height*4),
		width:  width,
		height: height,
		stride: width * 4,
	}
}

// WrapBuffer returns a Buffer borrowing pix, which must hold exactly
// width*height tightly packed RGBA pixels. pix is not copied.
func WrapBuffer(pix []byte, width, height int) (*Buffer, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("%w: negative size %dx%d", ErrDimensions, width, height)
	}
	if width > 0 && height > math.MaxInt/4/width {
		return nil, fmt.Errorf("%w: %dx%d overflows", ErrDimensions, width, height)
	}
	if n := width * height * 4; n != len(pix) {
		return nil, fmt.Errorf("%w: %dx%d RGBA needs %d bytes, got %d",
			ErrDimensions, width, height, n, len(pix))
	}
	if width == 0 || height == 0 {
		return &Buffer{}, nil
	}
	return &Buffer{
		pix:    pix,
		width:  width,
		height: height,
		stride: width * 4,
	}, nil
}

// FromRGBA returns a Buffer borrowing img's pixels within img.Rect.
// Sub-images keep their parent's stride.
func FromRGBA(img *image.RGBA) *Buffer {
	if img == nil || img.Rect.Empty() {
		return &Buffer{}
	}
	width, height := img.Rect.Dx(), img.Rect.Dy()
	start := img.PixOffset(img.Rect.Min.X, img.Rect.Min.Y)
	end := start + (height-1)*img.Stride + width*4
	return &Buffer{
		pix:    img.Pix[start:end:end],
		width:  width,
		height: height,
		stride: img.Stride,
	}
}

// Width returns the buffer width in pixels.
func (b *Buffer) Width() int {
	return b.width
}

// Height returns the buffer height in pixels.
func (b *Buffer) Height() int {
	return b.height
}

// Stride returns the number of bytes between the starts of adjacent rows.
func (b *Buffer) Stride() int {
	return b.stride
}

// Pix returns the underlying bytes, starting at pixel (0, 0) and ending
// after the last pixel of the last row.
func (b *Buffer) Pix() []byte {
	return b.pix
}

// Row returns the 4*Width bytes of row y, excluding padding.
func (b *Buffer) Row(y int) []byte {
	if y < 0 || y >= b.height || b.pix == nil {
		return nil
	}
	start := y * b.stride
	return b.pix[start : start+b.width*4]
}

// At returns the pixel at (x, y), or the zero color outside the buffer.
func (b *Buffer) At(x, y int) color.RGBA {
	if x < 0 || x >= b.width || y < 0 || y >= b.height || b.pix == nil {
		return color.RGBA{}
	}
	i := y*b.stride + x*4
	p := b.pix[i : i+4 : i+4]
	return color.RGBA{R: p[0], G: p[1], B: p[2], A: p[3]}
}

// Set sets the pixel at (x, y). Coordinates outside the buffer are ignored.
func (b *Buffer) Set(x, y int, c color.RGBA) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height || b.pix == nil {
		return
	}
	i := y*b.stride + x*4
	p := b.pix[i : i+4 : i+4]
	p[0], p[1], p[2], p[3] = c.R, c.G, c.B, c.A
}

// Bounds returns the buffer rectangle, anchored at the origin.
func (b *Buffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.width, b.height)
}

// Packed reports whether rows are contiguous (no padding).
func (b *Buffer) Packed() bool {
	return b.stride == b.width*4
}

// Clone returns a tightly packed deep copy.
func (b *Buffer) Clone() *Buffer {
	clone := NewBuffer(b.width, b.height)
	for y := 0; y < b.height; y++ {
		copy(clone.Row(y), b.Row(y))
	}
	return clone
}

// RGBA returns an *image.RGBA sharing the buffer's memory.
func (b *Buffer) RGBA() *image.RGBA {
	return &image.RGBA{
		Pix:    b.pix,
		Stride: b.stride,
		Rect:   b.Bounds(),
	}
}

// ConvertToGrayscale converts every pixel of the buffer in place.
func (b *Buffer) ConvertToGrayscale() {
	b.forEachRun(ConvertToGrayscaleBytes)
}

// InvertColors inverts every pixel of the buffer in place.
func (b *Buffer) InvertColors() {
	b.forEachRun(InvertColorsBytes)
}

// forEachRun calls fn once for a packed buffer, or once per row otherwise.
func (b *Buffer) forEachRun(fn func([]byte)) {
	if b == nil || b.pix == nil {
		return
	}
	if b.Packed() {
		fn(b.pix)
		return
	}
	for y := 0; y < b.height; y++ {
		fn(b.Row(y))
	}
}
