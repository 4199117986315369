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

// BaseConvertToGrayscale sets R, G and B of every complete pixel in pix to
// trunc(0.299*R + 0.587*G + 0.114*B). Alpha and any trailing incomplete
// pixel are left unchanged.
//
// This is the reference implementation; every dispatch target must match it
// bit for bit.
func BaseConvertToGrayscale(pix []byte) {
	for i := 0; i+4 <= len(pix); i += 4 {
		p := pix[i : i+4 : i+4]
		gray := lumaOf(p[0], p[1], p[2])
		p[0], p[1], p[2] = gray, gray, gray
	}
}

// BaseInvertColors sets R, G and B of every complete pixel in pix to 255
// minus their value. Alpha and any trailing incomplete pixel are left
// unchanged.
func BaseInvertColors(pix []byte) {
	for i := 0; i+4 <= len(pix); i += 4 {
		p := pix[i : i+4 : i+4]
		p[0] = 255 - p[0]
		p[1] = 255 - p[1]
		p[2] = 255 - p[2]
	}
}
