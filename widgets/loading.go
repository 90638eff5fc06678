// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package widgets

import (
	"cogentcore.org/material/colors"
	"cogentcore.org/material/matcolor"
	"cogentcore.org/material/tokens"
	"github.com/chewxy/math32"
)

// Loading indicator animation constants.
const (
	// ShapeDuration is the time spent morphing into each shape at speed 1,
	// in seconds.
	ShapeDuration float32 = 0.65

	// ShapeRotation is the constant rotation per shape, in degrees.
	ShapeRotation float32 = 50

	// ShapeCount is the number of shapes in one morph cycle.
	ShapeCount = 7

	// MinLoadingSpeed is the slowest allowed speed multiplier.
	MinLoadingSpeed float32 = 0.1
)

// LoadingShapes are the shapes a loading indicator morphs through,
// in order.
type LoadingShapes int32

const (
	ShapeSoftBurst LoadingShapes = iota
	ShapeCookie9
	ShapePentagon
	ShapePill
	ShapeSunny
	ShapeCookie4
	ShapeOval
)

var loadingShapesNames = [ShapeCount]string{"SoftBurst", "Cookie9", "Pentagon", "Pill", "Sunny", "Cookie4", "Oval"}

func (s LoadingShapes) String() string { return enumName(loadingShapesNames[:], int(s)) }

// LoadingIndicator is a shape that continuously morphs and rotates.
// The shape is drawn in the indicator color over the container, which
// is only filled when Contained.
type LoadingIndicator struct {
	Base

	// Size is the outer size in dp.
	Size float32

	// Contained draws the shape on a filled circular container.
	Contained bool

	// MultiColor cycles the shape through four role colors, one per
	// full morph cycle, fading into the next color during the last
	// shape of each cycle.
	MultiColor bool

	// Speed scales the animation; at least [MinLoadingSpeed].
	Speed float32

	// Morph is the position in the morph cycle, in [0, ShapeCount).
	Morph float32

	// Rotation is the rotation in degrees, in [0, 360).
	Rotation float32

	// ColorIndex is the multi-color step, in [0, 4).
	ColorIndex int
}

// NewLoadingIndicator adds a new loading indicator to the host.
func (h *Host) NewLoadingIndicator() *LoadingIndicator {
	return add(h, h.LoadingIndicators, &LoadingIndicator{Size: tokens.LoadingIndicatorSize, Speed: 1})
}

// SetSpeed sets the speed multiplier, clamped to [MinLoadingSpeed, ∞).
func (li *LoadingIndicator) SetSpeed(speed float32) {
	li.Speed = math32.Max(speed, MinLoadingSpeed)
}

// ShapeSize returns the size of the morphing shape in dp.
func (li *LoadingIndicator) ShapeSize() float32 {
	return li.Size * tokens.LoadingIndicatorContainedSize / tokens.LoadingIndicatorSize
}

// Shapes returns the shapes being morphed between and the morph
// progress from one to the other, in [0, 1).
func (li *LoadingIndicator) Shapes() (from, to LoadingShapes, t float32) {
	i := int(math32.Floor(li.Morph))
	from = LoadingShapes(i % ShapeCount)
	to = LoadingShapes((i + 1) % ShapeCount)
	return from, to, li.Morph - float32(i)
}

func (li *LoadingIndicator) animate(dt float32) {
	speed := math32.Max(li.Speed, MinLoadingSpeed)
	li.Morph += dt * speed / ShapeDuration
	for li.Morph >= ShapeCount {
		li.Morph -= ShapeCount
		li.ColorIndex = (li.ColorIndex + 1) % 4
		if li.MultiColor {
			li.MarkDirty()
		}
	}
	if li.MultiColor && li.Morph >= ShapeCount-1 {
		li.MarkDirty()
	}
	li.Rotation = math32.Mod(li.Rotation+ShapeRotation*dt*speed/ShapeDuration, 360)
}

func (li *LoadingIndicator) ContainerColor(s *matcolor.Scheme) colors.ARGB {
	if li.Contained {
		return s.SurfaceContainerHigh
	}
	return colors.Transparent
}

// IndicatorColor is the shape color. In multi-color mode it is blended
// in L*a*b* toward the next color over the last shape of a cycle.
func (li *LoadingIndicator) IndicatorColor(s *matcolor.Scheme) colors.ARGB {
	if !li.MultiColor {
		return s.Primary.Base
	}
	cycle := [4]colors.ARGB{s.Primary.Base, s.Secondary.Base, s.Tertiary.Base, s.Error.Base}
	cur := cycle[li.ColorIndex%4]
	fade := li.Morph - (ShapeCount - 1)
	if fade <= 0 {
		return cur
	}
	return colors.BlendLab(cur, cycle[(li.ColorIndex+1)%4], float64(fade))
}

func (li *LoadingIndicator) ContentColor(s *matcolor.Scheme) colors.ARGB { return li.IndicatorColor(s) }

func (li *LoadingIndicator) StateLayerColor(s *matcolor.Scheme) colors.ARGB { return s.Primary.Base }

func (li *LoadingIndicator) StateLayerOpacity() float64 { return 0 }
