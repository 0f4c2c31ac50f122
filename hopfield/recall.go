// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hopfield

import (
	"fmt"

	"github.com/emer/etable/etensor"
)

// Rand is the source of random unit choices for asynchronous recall.
// A *rand.Rand from math/rand satisfies it -- seed it for reproducible
// trajectories.
type Rand interface {
	// Intn returns a uniformly distributed int in [0, n)
	Intn(n int) int
}

// RecallParams are the default iteration budgets for reconstruction
type RecallParams struct {
	SyncMaxItr  int `def:"10" min:"1" desc:"maximum number of synchronous update steps -- stops earlier when the state reaches a fixed point"`
	AsyncMaxItr int `def:"50" min:"1" desc:"number of asynchronous rounds, each updating NUnits randomly chosen units (with replacement) -- always runs all rounds"`
}

func (rp *RecallParams) Defaults() {
	rp.SyncMaxItr = 10
	rp.AsyncMaxItr = 50
}

func (rp *RecallParams) Update() {
	if rp.SyncMaxItr < 1 {
		rp.SyncMaxItr = 1
	}
	if rp.AsyncMaxItr < 1 {
		rp.AsyncMaxItr = 1
	}
}

// NetInput returns the net input to receiving unit ri from given bipolar state
func (nt *Network) NetInput(state []float32, ri int) float32 {
	n := nt.NUnits
	rw := nt.wts[ri*n : (ri+1)*n]
	net := float32(0)
	for si, s := range state {
		net += rw[si] * s
	}
	return net
}

// Recon reconstructs a stored pattern from given binary probe using given
// update mode and the default iteration budget from Recall.
// rnd is only used (and required) for Async.
func (nt *Network) Recon(mode UpdateModes, probe []float32, rnd Rand) ([]float32, error) {
	switch mode {
	case Sync:
		return nt.ReconSync(probe, 0)
	case Async:
		return nt.ReconAsync(probe, 0, rnd)
	}
	return nil, fmt.Errorf("hopfield.Network %s Recon: invalid update mode: %v", nt.Nm, mode)
}

// ReconTsr is Recon for a probe tensor of any shape with one value per
// unit, flattened in row-major order.  The result is shaped as the
// network units.
func (nt *Network) ReconTsr(mode UpdateModes, probe etensor.Tensor, rnd Rand) (*etensor.Float32, error) {
	res, err := nt.Recon(mode, TsrValues(probe), rnd)
	if err != nil {
		return nil, err
	}
	tsr := etensor.NewFloat32(nt.Shp, nil, nil)
	copy(tsr.Values, res)
	return tsr, nil
}

// ReconSync reconstructs a stored pattern from given binary probe by
// synchronous updating: each step computes every unit from the same
// snapshot of the state.  Stops as soon as a step leaves the state
// unchanged, or after maxItr steps (Recall.SyncMaxItr if maxItr <= 0),
// returning the last state in binary form.  An oscillating state simply
// runs out the budget -- see Stats.Converged.
func (nt *Network) ReconSync(probe []float32, maxItr int) ([]float32, error) {
	cur, err := nt.bipolarOf("ReconSync", probe)
	if err != nil {
		return nil, err
	}
	if maxItr <= 0 {
		maxItr = nt.Recall.SyncMaxItr
	}
	start := append([]float32(nil), cur...)
	nxt := make([]float32, nt.NUnits)
	st := &nt.Stats
	st.Init(Sync)
	for itr := 0; itr < maxItr; itr++ {
		st.NItr++
		same := true
		for ri := range nxt {
			nxt[ri] = nt.Act.Act(nt.NetInput(cur, ri))
			if nxt[ri] != cur[ri] {
				same = false
			}
		}
		if same {
			st.Converged = true
			break
		}
		cur, nxt = nxt, cur
	}
	nt.recordStats(start, cur)
	return BinaryPat(cur), nil
}

// ReconAsync reconstructs a stored pattern from given binary probe by
// asynchronous updating: each of maxItr rounds (Recall.AsyncMaxItr if
// maxItr <= 0) picks NUnits unit indexes uniformly at random with
// replacement from rnd, updating each in place from the current state.
// There is no early stopping: the full budget is always used.
func (nt *Network) ReconAsync(probe []float32, maxItr int, rnd Rand) ([]float32, error) {
	if rnd == nil {
		return nil, fmt.Errorf("hopfield.Network %s ReconAsync: %w", nt.Nm, ErrNoRand)
	}
	cur, err := nt.bipolarOf("ReconAsync", probe)
	if err != nil {
		return nil, err
	}
	if maxItr <= 0 {
		maxItr = nt.Recall.AsyncMaxItr
	}
	start := append([]float32(nil), cur...)
	n := nt.NUnits
	st := &nt.Stats
	st.Init(Async)
	for itr := 0; itr < maxItr; itr++ {
		for i := 0; i < n; i++ {
			ri := rnd.Intn(n)
			cur[ri] = nt.Act.Act(nt.NetInput(cur, ri))
		}
		st.NItr++
	}
	st.Converged = nt.IsFixedPoint(cur)
	nt.recordStats(start, cur)
	return BinaryPat(cur), nil
}

// IsFixedPoint returns true if no unit of given bipolar state would
// change under one more update
func (nt *Network) IsFixedPoint(state []float32) bool {
	for ri, s := range state {
		if nt.Act.Act(nt.NetInput(state, ri)) != s {
			return false
		}
	}
	return true
}
