// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hopfield

import "fmt"

// ActParams are the bipolar threshold activation parameters.
// A unit takes the value +1 when its net input is at or above
// threshold and -1 otherwise, so a net input of exactly Thr yields +1.
// Classical Hopfield dynamics require Thr = 0.
type ActParams struct {
	Thr float32 `def:"0" desc:"threshold on net input at or above which a unit is +1, otherwise -1 -- 0 gives the classical sign function with sign(0) = +1; any other value departs from classical Hopfield dynamics, and stored patterns are no longer guaranteed fixed points"`
}

func (ac *ActParams) Defaults() {
	ac.Thr = 0
}

func (ac *ActParams) Update() {
}

// Act returns the bipolar activation for given net input
func (ac *ActParams) Act(net float32) float32 {
	if net >= ac.Thr {
		return 1
	}
	return -1
}

// Bipolar converts a binary unit value (0 or 1) into bipolar form (2*b-1).
// Any other value is an error.
func Bipolar(b float32) (float32, error) {
	switch b {
	case 0:
		return -1, nil
	case 1:
		return 1, nil
	}
	return 0, fmt.Errorf("unit value %g: %w", b, ErrNotBinary)
}

// Binary converts a bipolar unit value back into binary form ((s+1)/2)
func Binary(s float32) float32 {
	return (s + 1) / 2
}

// BipolarPat converts a binary pattern into a new bipolar slice
func BipolarPat(pat []float32) ([]float32, error) {
	bp := make([]float32, len(pat))
	for i, b := range pat {
		v, err := Bipolar(b)
		if err != nil {
			return nil, fmt.Errorf("unit %d: %w", i, err)
		}
		bp[i] = v
	}
	return bp, nil
}

// BinaryPat converts a bipolar state into a new binary slice
func BinaryPat(state []float32) []float32 {
	bp := make([]float32, len(state))
	for i, s := range state {
		bp[i] = Binary(s)
	}
	return bp
}
