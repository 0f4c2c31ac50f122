// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hopfield

// RecallStats are statistics of one reconstruction
type RecallStats struct {
	Mode        UpdateModes `desc:"update mode used"`
	NItr        int         `desc:"number of iterations run: synchronous steps, or asynchronous rounds"`
	Converged   bool        `desc:"for Sync, the state stopped changing before the budget ran out; for Async, the final state is a fixed point"`
	NChanged    int         `desc:"number of units that differ between the probe and the result"`
	Energy      float32     `desc:"Hopfield energy of the result"`
	Closest     int         `desc:"index of the stored pattern closest to the result, -1 if none stored"`
	ClosestDist int         `desc:"Hamming distance from the result to the Closest pattern"`
}

// Init resets the stats for a new reconstruction in given mode
func (rs *RecallStats) Init(mode UpdateModes) {
	*rs = RecallStats{Mode: mode, Closest: -1}
}

// Recalled returns true if the result exactly matches a stored pattern
func (rs *RecallStats) Recalled() bool {
	return rs.Closest >= 0 && rs.ClosestDist == 0
}

// recordStats fills in the result stats from bipolar probe and result states
func (nt *Network) recordStats(probe, result []float32) {
	st := &nt.Stats
	st.NChanged = hamming(probe, result)
	st.Energy = nt.energy(result)
	st.Closest, st.ClosestDist = nt.closest(result)
}

// hamming returns the number of units that differ between two states
func hamming(a, b []float32) int {
	d := 0
	for i := range a {
		if a[i] != b[i] {
			d++
		}
	}
	return d
}

// closest returns the index of the stored pattern with the smallest
// Hamming distance to given bipolar state (first one on ties), or -1
func (nt *Network) closest(state []float32) (int, int) {
	idx := -1
	dist := 0
	for pi, pat := range nt.pats {
		d := hamming(pat, state)
		if idx < 0 || d < dist {
			idx = pi
			dist = d
		}
	}
	return idx, dist
}

// Closest returns the index of the stored pattern closest to given binary
// state in Hamming distance, and that distance.  Index is -1 if no
// patterns are stored.
func (nt *Network) Closest(state []float32) (int, int, error) {
	bp, err := nt.bipolarOf("Closest", state)
	if err != nil {
		return -1, 0, err
	}
	idx, dist := nt.closest(bp)
	return idx, dist, nil
}
