// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLAB(t *testing.T) {
	assert.InDelta(t, 0.887904, LABCompress(0.7), tol)
	assert.InDelta(t, 0.1379544, LABCompress(0.000003), tol)
	assert.InDelta(t, 0.21600002, LABUncompress(0.6), tol)

	l, a, b := XYZToLAB(0.1, 0.3, 0.5)
	assert.InDelta(t, 61.65422, l, 1e-3)
	assert.InDelta(t, -98.673805, a, 1e-3)
	assert.InDelta(t, -20.413673, b, 1e-3)

	x, y, z := LABToXYZ(28, 14, 36.2)
	assert.InDelta(t, 0.06422656, x, tol)
	assert.InDelta(t, 0.054573778, y, tol)
	assert.InDelta(t, 0.008442593, z, tol)

	assert.InDelta(t, 2.3023312, LToY(17), tol)
	assert.InDelta(t, 21.579498, YToL(3.4), 1e-4)
}
