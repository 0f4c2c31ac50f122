// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hopfield

import (
	"testing"

	"github.com/emer/emergent/patgen"
	"github.com/emer/etable/etensor"
)

const (
	benchY     = 10
	benchX     = 10
	benchNPats = 10
	benchPct   = 0.5
	benchFlip  = 0.1
)

// benchNet returns a 10x10 network storing random patterns, and noisy
// probes of each of them
func benchNet(b *testing.B) (*Network, [][]float32) {
	b.Helper()
	nt, err := NewNetwork("Bench", []int{benchY, benchX})
	if err != nil {
		b.Fatal(err)
	}
	n := nt.NUnits
	nOn := patgen.NFmPct(benchPct, n)
	pats := etensor.NewFloat32([]int{benchNPats, benchY, benchX}, nil, []string{"Row", "Y", "X"})
	patgen.PermutedBinaryRows(pats, nOn, 1, 0)
	probes := etensor.NewFloat32(pats.Shapes(), nil, nil)
	copy(probes.Values, pats.Values)
	nFlip := patgen.NFmPct(benchFlip, nOn)
	patgen.FlipBitsRows(probes, nFlip, nFlip, 1, 0)

	prbs := make([][]float32, benchNPats)
	for pi := 0; pi < benchNPats; pi++ {
		if err := nt.AddPattern(pats.Values[pi*n : (pi+1)*n]); err != nil {
			b.Fatal(err)
		}
		prbs[pi] = probes.Values[pi*n : (pi+1)*n]
	}
	return nt, prbs
}
