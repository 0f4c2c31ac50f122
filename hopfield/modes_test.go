// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hopfield

import "testing"

func TestUpdateModes(t *testing.T) {
	if Sync.String() != "Sync" || Async.String() != "Async" {
		t.Errorf("names: %v %v", Sync, Async)
	}
	var md UpdateModes
	if err := md.FromString("Async"); err != nil || md != Async {
		t.Errorf("FromString: %v %v", md, err)
	}
	if err := md.FromString("Both"); err == nil {
		t.Errorf("expected error for unknown mode")
	}
}
