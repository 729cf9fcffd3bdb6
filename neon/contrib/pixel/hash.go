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

package pixel

import "math/bits"

// AverageHash computes a 64-bit perceptual hash: the plane is reduced
// to 8x8 by repeated 2x2 halving, and bit i is set when pixel i is at
// or above the mean. Planes smaller than 8x8 hash to 0.
func AverageHash(p *Plane) uint64 {
	for p.Width >= 16 && p.Height >= 16 {
		p = Halve(p)
	}
	if p.Width < 8 || p.Height < 8 {
		return 0
	}

	// Point-sample the remaining plane down to the 8x8 grid.
	var grid [64]uint16
	var sum uint32
	for gy := 0; gy < 8; gy++ {
		row := p.Row(gy * p.Height / 8)
		for gx := 0; gx < 8; gx++ {
			v := uint16(row[gx*p.Width/8])
			grid[gy*8+gx] = v
			sum += uint32(v)
		}
	}
	mean := uint16(sum / 64)

	var hash uint64
	for i, v := range grid {
		if v >= mean {
			hash |= 1 << uint(i)
		}
	}
	return hash
}

// Similarity returns a perceptual similarity score in [0, 1]: 1 for
// identical average hashes, 0 when all 64 hash bits differ.
func Similarity(a, b *Plane) float64 {
	distance := bits.OnesCount64(AverageHash(a) ^ AverageHash(b))
	return 1 - float64(distance)/64
}
