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

import "encoding/binary"

// Two RGBA pixels loaded little-endian: R0 is the low byte, A1 the high byte.
const (
	wordAlphaMask = 0xFF000000_FF000000
	wordRGBMask   = 0x00FFFFFF_00FFFFFF
	grayBroadcast = 0x010101
)

// The word loops keep each pair of pixels in a register and never allocate.

// wordConvertToGrayscale processes two pixels per 64-bit word and hands the
// remaining bytes to the Base loop.
func wordConvertToGrayscale(pix []byte) {
	n := len(pix) &^ 7
	for i := 0; i < n; i += 8 {
		p := pix[i : i+8 : i+8]
		w := binary.LittleEndian.Uint64(p)
		g0 := uint64(Luma(uint8(w), uint8(w>>8), uint8(w>>16)))
		g1 := uint64(Luma(uint8(w>>32), uint8(w>>40), uint8(w>>48)))
		w = w&wordAlphaMask | g0*grayBroadcast | (g1*grayBroadcast)<<32
		binary.LittleEndian.PutUint64(p, w)
	}
	BaseConvertToGrayscale(pix[n:])
}

// wordInvertColors flips the RGB bits of two pixels per 64-bit word.
// 255-v == v^0xFF for every byte v.
func wordInvertColors(pix []byte) {
	n := len(pix) &^ 7
	for i := 0; i < n; i += 8 {
		p := pix[i : i+8 : i+8]
		binary.LittleEndian.PutUint64(p, binary.LittleEndian.Uint64(p)^wordRGBMask)
	}
	BaseInvertColors(pix[n:])
}
