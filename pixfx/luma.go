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

// Luma weights (ITU-R BT.601), the same coefficients as the Y row of the
// JPEG 2000 irreversible color transform.
const (
	LumaR = 0.299
	LumaG = 0.587
	LumaB = 0.114
)

// Float32 variants. All luma arithmetic is done in float32.
var (
	lumaR32 float32 = LumaR
	lumaG32 float32 = LumaG
	lumaB32 float32 = LumaB
)

// Per-channel tables of the float32-rounded products w*v, 1KB each.
// Summing entries in R, G, B order reproduces lumaOf exactly.
var (
	lumaRTable = newLumaTable(lumaR32)
	lumaGTable = newLumaTable(lumaG32)
	lumaBTable = newLumaTable(lumaB32)
)

func newLumaTable(weight float32) *[256]float32 {
	var t [256]float32
	for v := range t {
		t[v] = float32(weight * float32(v))
	}
	return &t
}

// lumaOf computes trunc(0.299*r + 0.587*g + 0.114*b) in float32.
// The explicit conversions round each product, which keeps the compiler
// from fusing a multiply into the following add.
func lumaOf(r, g, b byte) byte {
	sum := float32(lumaR32*float32(r)) + float32(lumaG32*float32(g)) + float32(lumaB32*float32(b))
	// The sum is always in [0, 256); conversion truncates toward zero.
	return uint8(sum)
}

// Luma returns the grayscale value ConvertToGrayscale assigns to a pixel
// with channels r, g and b.
func Luma(r, g, b uint8) uint8 {
	return uint8(lumaRTable[r] + lumaGTable[g] + lumaBTable[b])
}
