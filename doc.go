// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package hopfield is the overall repository for a Hopfield associative memory
implemented in the Go language (golang).

This top-level of the repository has no functional code -- everything is organized
into the following sub-repositories:

* hopfield: the network, which stores binary patterns by Hebbian outer-product
learning and reconstructs them from noisy or partial probes by synchronous or
asynchronous updating.  Patterns can be saved and loaded as tab-separated
etable files, and the weights written as JSON for viewing.

* examples: these actually compile into runnable programs.  examples/recall stores
random patterns and tests recall from noisy probes over multiple runs, logging
capacity and noise tolerance.
*/
package hopfield
