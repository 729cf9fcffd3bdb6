// Copyright 2025 go-neonref Authors
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

// Package pixel provides debugging and comparison helpers for image
// planes processed with the neon reference ops: dumping a plane to a
// BMP file, exact and tolerant comparison, and a perceptual similarity
// measure. The neon core does not depend on this package; it only
// consumes lane data as plain byte buffers.
package pixel

import (
	"fmt"

	"github.com/pxl-lab/go-neonref/neon"
)

// Plane is a single-channel 8-bit image. Rows are stored densely,
// row y starting at y*width.
type Plane struct {
	Pix    []uint8
	Width  int
	Height int
}

// NewPlane allocates a zeroed plane.
func NewPlane(width, height int) *Plane {
	if width <= 0 || height <= 0 {
		return &Plane{}
	}
	return &Plane{
		Pix:    make([]uint8, width*height),
		Width:  width,
		Height: height,
	}
}

// Row returns row y as a slice aliasing the plane's storage.
func (p *Plane) Row(y int) []uint8 {
	return p.Pix[y*p.Width : (y+1)*p.Width]
}

// Equal reports whether two planes have identical size and pixels.
func Equal(a, b *Plane) bool {
	ok, _, _ := FirstDiff(a, b, 0)
	return ok
}

// AlmostEqual reports whether two planes have identical size and every
// pixel pair differs by at most tol.
func AlmostEqual(a, b *Plane, tol uint8) bool {
	ok, _, _ := FirstDiff(a, b, tol)
	return ok
}

// FirstDiff compares two planes and reports the coordinates of the
// first pixel pair differing by more than tol. The per-pixel distance
// is the reference's own VabdqU8 so the comparison matches the
// instruction's unsigned absolute difference exactly.
func FirstDiff(a, b *Plane, tol uint8) (ok bool, x, y int) {
	if a.Width != b.Width || a.Height != b.Height {
		return false, 0, 0
	}

	for y = 0; y < a.Height; y++ {
		ra := a.Row(y)
		rb := b.Row(y)
		x = 0

		for ; x+16 <= a.Width; x += 16 {
			d := neon.VabdqU8(
				neon.Uint8x16FromSlice(ra[x:x+16]),
				neon.Uint8x16FromSlice(rb[x:x+16]),
			)
			for i := range d {
				if d[i] > tol {
					return false, x + i, y
				}
			}
		}
		for ; x < a.Width; x++ {
			d := ra[x] - rb[x]
			if rb[x] > ra[x] {
				d = rb[x] - ra[x]
			}
			if d > tol {
				return false, x, y
			}
		}
	}
	return true, 0, 0
}

// SwapRB swaps channels 0 and 2 of an interleaved 3-channel buffer in
// place (BGR to RGB and back). It returns an error if the buffer is
// not a whole number of pixels.
func SwapRB(buf []uint8) error {
	if len(buf)%3 != 0 {
		return fmt.Errorf("pixel: buffer length %d is not a multiple of 3", len(buf))
	}
	for i := 0; i < len(buf); i += 3 {
		buf[i], buf[i+2] = buf[i+2], buf[i]
	}
	return nil
}

// Halve box-downsamples a plane by 2 in both directions. Each output
// pixel is the rounded average of a 2x2 block, computed with the
// reference's rounding halving add: vertical pairs first, then the
// horizontal pair, the usual two-pass hardware pattern. Odd edge rows
// and columns are dropped.
func Halve(p *Plane) *Plane {
	w := p.Width / 2
	h := p.Height / 2
	out := NewPlane(w, h)
	if w == 0 || h == 0 {
		return out
	}

	top := make([]uint8, 16)
	bot := make([]uint8, 16)
	for y := 0; y < h; y++ {
		r0 := p.Row(2 * y)
		r1 := p.Row(2*y + 1)
		dst := out.Row(y)

		for x := 0; x < w; x += 8 {
			n := min(8, w-x)
			copy(top, r0[2*x:])
			copy(bot, r1[2*x:])

			v := neon.VrhaddqU8(
				neon.Uint8x16FromSlice(top),
				neon.Uint8x16FromSlice(bot),
			)

			// Deinterleave the vertical averages into even and odd
			// columns, then average the horizontal pairs.
			var even, odd neon.Uint8x8
			for i := range even {
				even[i] = v[2*i]
				odd[i] = v[2*i+1]
			}
			pair := neon.VrhaddU8(even, odd)
			copy(dst[x:x+n], pair.Slice()[:n])
		}
	}
	return out
}
