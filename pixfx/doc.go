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

// Package pixfx performs in-place pixel transforms over RGBA8 byte buffers.
//
// A pixel buffer is a caller-owned []byte holding row-major RGBA pixels, four
// bytes per pixel with alpha at offset 3. The transforms borrow the buffer for
// the duration of the call and never retain it, allocate, or touch alpha.
//
// # Flat Operations
//
// The flat operations walk the buffer as a sequence of 4-byte pixels. The
// width and height arguments are informational only; any trailing
// incomplete pixel (1-3 bytes) is left as is:
//
//	ConvertToGrayscale(pix, width, height) // R=G=B=trunc(0.299R+0.587G+0.114B)
//	InvertColors(pix, width, height)       // R,G,B = 255 - R,G,B
//
// Callers that want the dimensions enforced use ValidateDimensions, or the
// Strict variants which validate before mutating.
//
// # Buffer
//
// Buffer is a dimension-aware view over RGBA bytes, including the Pix of an
// *image.RGBA with arbitrary stride:
//
//	buf := pixfx.FromRGBA(img)
//	buf.ConvertToGrayscale()
//
// # Dispatch
//
// On amd64 and arm64 the transforms process two pixels per 64-bit word. The
// word path is bit-identical to the per-pixel Base functions. Set
// PIXFX_NO_WORD=1 to force the per-pixel path.
package pixfx
