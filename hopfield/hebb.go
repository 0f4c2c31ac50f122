// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hopfield

// Hebbian outer-product learning: the weight between two units is the sum
// over stored patterns of the product of their bipolar values, with no
// self connections.  Weights are stored flat, receiver-major: wts[ri*n+si].

// HebbDWt returns the weight change for one pattern from the bipolar
// receiving and sending unit values
func HebbDWt(ract, sact float32) float32 {
	return ract * sact
}

// HebbAddPat adds the outer product of bipolar pattern pat with itself
// into the flat n x n weights, leaving the diagonal at zero.
func HebbAddPat(wts []float32, pat []float32) {
	n := len(pat)
	for ri := 0; ri < n; ri++ {
		rw := wts[ri*n : (ri+1)*n]
		ract := pat[ri]
		for si := 0; si < n; si++ {
			if si == ri {
				continue
			}
			rw[si] += HebbDWt(ract, pat[si])
		}
	}
}

// HebbWtsFmPats recomputes the flat n x n weights from zero for given
// list of bipolar patterns.
func HebbWtsFmPats(wts []float32, pats [][]float32) {
	for i := range wts {
		wts[i] = 0
	}
	for _, pat := range pats {
		HebbAddPat(wts, pat)
	}
}
