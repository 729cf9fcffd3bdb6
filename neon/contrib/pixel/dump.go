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

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"os"

	"golang.org/x/image/bmp"
)

// EncodeBMP writes a plane to w as an 8-bit grayscale BMP.
func EncodeBMP(w io.Writer, p *Plane) error {
	img := image.NewGray(image.Rect(0, 0, p.Width, p.Height))
	for y := 0; y < p.Height; y++ {
		copy(img.Pix[y*img.Stride:], p.Row(y))
	}
	if err := bmp.Encode(w, img); err != nil {
		return fmt.Errorf("pixel: encoding bmp: %w", err)
	}
	return nil
}

// DecodeBMP reads a BMP from r into a plane, converting to grayscale
// if the image has color.
func DecodeBMP(r io.Reader) (*Plane, error) {
	img, err := bmp.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("pixel: decoding bmp: %w", err)
	}

	bounds := img.Bounds()
	p := NewPlane(bounds.Dx(), bounds.Dy())
	for y := 0; y < p.Height; y++ {
		row := p.Row(y)
		for x := 0; x < p.Width; x++ {
			g := color.GrayModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.Gray)
			row[x] = g.Y
		}
	}
	return p, nil
}

// Dump writes a plane to path as a BMP. Debug helper for inspecting
// intermediate results of reference-op pipelines.
func Dump(path string, p *Plane) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("pixel: %w", err)
	}
	defer f.Close()
	return EncodeBMP(f, p)
}

// Load reads a BMP plane written by Dump.
func Load(path string) (*Plane, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("pixel: %w", err)
	}
	defer f.Close()
	return DecodeBMP(f)
}
