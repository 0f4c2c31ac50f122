// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hopfield

import (
	"errors"
	"fmt"
	"strings"

	"github.com/c2h5oh/datasize"
	"github.com/emer/emergent/params"
	"github.com/emer/etable/etensor"
	"github.com/emer/etable/minmax"
	"github.com/goki/mat32"
)

var (
	// ErrPatSize is returned when a pattern or probe does not have
	// exactly one value per unit of the network
	ErrPatSize = errors.New("pattern size does not match number of units")

	// ErrNotBinary is returned for a pattern or probe value other than 0 or 1
	ErrNotBinary = errors.New("unit value is not binary (0 or 1)")

	// ErrNoRand is returned by asynchronous recall without a random source
	ErrNoRand = errors.New("no random source for asynchronous recall")
)

// hopfield.Network is a fully-connected recurrent network that stores binary
// patterns by Hebbian outer-product learning and recalls them from noisy or
// partial probes by iterative relaxation.
//
// The weights are derived state: after every AddPattern or ForgetPattern
// they equal the sum over the stored patterns of the outer product of each
// bipolar pattern with itself, with a zero diagonal.
//
// A Network has no internal locking: calls on the same Network must be
// serialized by the caller.
type Network struct {
	Nm     string       `desc:"overall name of network"`
	Cls    string       `desc:"class for applying parameter styles, can be space separated multple tags"`
	Shp    []int        `inactive:"+" desc:"shape of the units, e.g., [5, 5] for a 5x5 grid -- patterns are flattened in row-major order"`
	NUnits int          `inactive:"+" desc:"total number of units: product of Shp"`
	Act    ActParams    `view:"inline" desc:"activation parameters"`
	Recall RecallParams `view:"inline" desc:"recall parameters"`
	Stats  RecallStats  `inactive:"+" desc:"statistics of the most recent reconstruction"`

	pats [][]float32 // stored patterns, bipolar, in order added
	wts  []float32   // NUnits x NUnits, receiver-major
}

// NewNetwork returns a new Network with given name and unit shape,
// with default parameters and no stored patterns.
func NewNetwork(name string, shape []int) (*Network, error) {
	nt := &Network{}
	nt.Nm = name
	nt.Defaults()
	if err := nt.Build(shape); err != nil {
		return nil, err
	}
	return nt, nil
}

func (nt *Network) Name() string        { return nt.Nm }
func (nt *Network) Class() string       { return nt.Cls }
func (nt *Network) SetClass(cls string) { nt.Cls = cls }
func (nt *Network) TypeName() string    { return "Network" } // type category, for params..

// Shape returns a copy of the unit shape
func (nt *Network) Shape() []int {
	return append([]int(nil), nt.Shp...)
}

// Defaults sets all the default parameters
func (nt *Network) Defaults() {
	nt.Act.Defaults()
	nt.Recall.Defaults()
}

// UpdateParams updates all the derived parameters if any have changed
func (nt *Network) UpdateParams() {
	nt.Act.Update()
	nt.Recall.Update()
}

// ApplyParams applies given parameter style Sheet to this network.
// Selectors match "Network", ".Class" or "#Name", and parameter paths
// start from the network, e.g., "Network.Recall.SyncMaxItr".
// Calls UpdateParams if anything was set.  If setMsg is true, then a message
// is printed to confirm each parameter that is set.
// returns true if any params were set, and error if there were any errors.
func (nt *Network) ApplyParams(pars *params.Sheet, setMsg bool) (bool, error) {
	app, err := pars.Apply(nt, setMsg)
	if app {
		nt.UpdateParams()
	}
	return app, err
}

// Build allocates the weights for given unit shape, discarding any stored patterns
func (nt *Network) Build(shape []int) error {
	if len(shape) == 0 {
		return fmt.Errorf("hopfield.Network %s Build: empty unit shape", nt.Nm)
	}
	n := 1
	for _, d := range shape {
		if d < 1 {
			return fmt.Errorf("hopfield.Network %s Build: invalid unit shape %v", nt.Nm, shape)
		}
		n *= d
	}
	nt.Shp = append([]int(nil), shape...)
	nt.NUnits = n
	nt.pats = nil
	nt.wts = make([]float32, n*n)
	nt.Stats.Init(Sync)
	return nil
}

// NPats returns the number of stored patterns
func (nt *Network) NPats() int {
	return len(nt.pats)
}

// ClearPats removes all stored patterns, leaving all weights at zero
func (nt *Network) ClearPats() {
	nt.pats = nil
	nt.InitWts()
}

// InitWts recomputes the weights from zero over the stored patterns
func (nt *Network) InitWts() {
	HebbWtsFmPats(nt.wts, nt.pats)
}

// bipolarOf validates a binary pattern of one value per unit, returning
// a new bipolar copy.  fun names the calling method for errors.
func (nt *Network) bipolarOf(fun string, pat []float32) ([]float32, error) {
	if len(pat) != nt.NUnits {
		return nil, fmt.Errorf("hopfield.Network %s %s: got %d values for %d units: %w", nt.Nm, fun, len(pat), nt.NUnits, ErrPatSize)
	}
	bp, err := BipolarPat(pat)
	if err != nil {
		return nil, fmt.Errorf("hopfield.Network %s %s: %w", nt.Nm, fun, err)
	}
	return bp, nil
}

// TsrValues returns the values of given tensor as a flat float32 slice,
// in row-major order, for use as a pattern or probe of any shape.
func TsrValues(tsr etensor.Tensor) []float32 {
	n := tsr.Len()
	vals := make([]float32, n)
	for i := 0; i < n; i++ {
		vals[i] = float32(tsr.FloatVal1D(i))
	}
	return vals
}

// AddPattern stores given binary pattern (one 0 or 1 value per unit),
// adding its outer product into the weights.  The network keeps its own
// bipolar copy.  Identical patterns are not merged: each addition adds
// to the weights again.
func (nt *Network) AddPattern(pat []float32) error {
	bp, err := nt.bipolarOf("AddPattern", pat)
	if err != nil {
		return err
	}
	nt.pats = append(nt.pats, bp)
	HebbAddPat(nt.wts, bp)
	return nil
}

// AddPatternTsr stores given binary pattern tensor of any shape with
// one value per unit, flattened in row-major order.
func (nt *Network) AddPatternTsr(tsr etensor.Tensor) error {
	return nt.AddPattern(TsrValues(tsr))
}

// ForgetPattern removes the stored pattern at given index, keeping the
// order of the remaining ones, and recomputes the weights from scratch.
// An index out of range is ignored and false is returned.
func (nt *Network) ForgetPattern(idx int) bool {
	if idx < 0 || idx >= len(nt.pats) {
		return false
	}
	nt.pats = append(nt.pats[:idx], nt.pats[idx+1:]...)
	nt.InitWts()
	return true
}

// Pattern returns a binary copy of the stored pattern at given index,
// or nil if out of range
func (nt *Network) Pattern(idx int) []float32 {
	if idx < 0 || idx >= len(nt.pats) {
		return nil
	}
	return BinaryPat(nt.pats[idx])
}

// PatternTsr returns a binary copy of the stored pattern at given index,
// shaped as the network units, or nil if out of range
func (nt *Network) PatternTsr(idx int) *etensor.Float32 {
	pat := nt.Pattern(idx)
	if pat == nil {
		return nil
	}
	tsr := etensor.NewFloat32(nt.Shp, nil, nil)
	copy(tsr.Values, pat)
	return tsr
}

// Weights returns a copy of the weight matrix as an NUnits x NUnits tensor,
// indexed [recv][send].
func (nt *Network) Weights() *etensor.Float32 {
	tsr := etensor.NewFloat32([]int{nt.NUnits, nt.NUnits}, nil, []string{"Recv", "Send"})
	copy(tsr.Values, nt.wts)
	return tsr
}

// Wt returns the weight from sending unit si to receiving unit ri
func (nt *Network) Wt(ri, si int) float32 {
	return nt.wts[ri*nt.NUnits+si]
}

// WtRange returns the minimum and maximum weight values
func (nt *Network) WtRange() minmax.F32 {
	var mm minmax.F32
	for i, w := range nt.wts {
		if i == 0 {
			mm.Min = w
			mm.Max = w
			continue
		}
		mm.Min = mat32.Min(mm.Min, w)
		mm.Max = mat32.Max(mm.Max, w)
	}
	return mm
}

// energy returns the Hopfield energy -1/2 s'Ws of given bipolar state
func (nt *Network) energy(state []float32) float32 {
	e := float32(0)
	for ri, s := range state {
		e += s * nt.NetInput(state, ri)
	}
	return -0.5 * e
}

// Energy returns the Hopfield energy -1/2 s'Ws of given binary state,
// in bipolar form.  Stored patterns sit at local minima.
func (nt *Network) Energy(state []float32) (float32, error) {
	bp, err := nt.bipolarOf("Energy", state)
	if err != nil {
		return 0, err
	}
	return nt.energy(bp), nil
}

// SizeReport returns a string reporting the number of units and stored
// patterns, and the memory footprint of patterns and weights.
func (nt *Network) SizeReport() string {
	var b strings.Builder
	const fsz = 4 // bytes per float32
	patMem := len(nt.pats) * nt.NUnits * fsz
	wtMem := len(nt.wts) * fsz
	fmt.Fprintf(&b, "%14s:\t Units: %d %v\t Pats: %d\t PatMem: %v\n", nt.Nm, nt.NUnits, nt.Shp, len(nt.pats), (datasize.ByteSize)(patMem).HumanReadable())
	fmt.Fprintf(&b, "%14s:\t Wts: %d\t WtMem: %v\n", "", len(nt.wts), (datasize.ByteSize)(wtMem).HumanReadable())
	return b.String()
}
