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
	"os"
	"strconv"
)

// DispatchLevel represents the pixel loop implementation being used.
type DispatchLevel int

const (
	// DispatchScalar indicates the per-pixel Base loops.
	DispatchScalar DispatchLevel = iota

	// DispatchWord indicates 64-bit word-at-a-time processing (two pixels
	// per load and store).
	DispatchWord
)

// String returns a human-readable name for the dispatch level.
func (d DispatchLevel) String() string {
	switch d {
	case DispatchScalar:
		return "scalar"
	case DispatchWord:
		return "word"
	default:
		return "unknown"
	}
}

// currentLevel is the detected level for this runtime.
// Set by init() in dispatch_*.go files.
var currentLevel DispatchLevel

// CurrentLevel returns the pixel loop implementation being used.
func CurrentLevel() DispatchLevel {
	return currentLevel
}

// CurrentName returns a human-readable name for the current level.
func CurrentName() string {
	return currentLevel.String()
}

// NoWordEnv reports whether PIXFX_NO_WORD asks for the per-pixel loops.
// Unset, empty or false ("0", "false") leaves the word path enabled; any
// other value, including one strconv.ParseBool rejects, disables it.
func NoWordEnv() bool {
	switch val, ok := os.LookupEnv("PIXFX_NO_WORD"); {
	case !ok || val == "":
		return false
	default:
		disabled, err := strconv.ParseBool(val)
		return err != nil || disabled
	}
}

// Dispatch function variables.
// These hold the implementation selected for currentLevel and may be
// swapped with setLevel.
var (
	// ConvertToGrayscaleBytes replaces R, G and B of every complete pixel
	// with its luma.
	ConvertToGrayscaleBytes func(pix []byte)

	// InvertColorsBytes replaces R, G and B of every complete pixel with
	// 255 minus the channel value.
	InvertColorsBytes func(pix []byte)
)

// setLevel installs the implementations for level.
func setLevel(level DispatchLevel) {
	switch level {
	case DispatchWord:
		ConvertToGrayscaleBytes = wordConvertToGrayscale
		InvertColorsBytes = wordInvertColors
	default:
		level = DispatchScalar
		ConvertToGrayscaleBytes = BaseConvertToGrayscale
		InvertColorsBytes = BaseInvertColors
	}
	currentLevel = level
}
