// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hopfield

import "github.com/goki/ki/kit"

// UpdateModes are the disciplines for updating unit states during recall
type UpdateModes int32

//go:generate stringer -type=UpdateModes

var KiT_UpdateModes = kit.Enums.AddEnum(UpdateModesN, kit.NotBitFlag, nil)

func (ev UpdateModes) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *UpdateModes) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

// The update modes
const (
	// Sync updates every unit from the same snapshot of the state,
	// all at once (Little dynamics), and stops early on a fixed point.
	Sync UpdateModes = iota

	// Async updates randomly chosen units one at a time, each seeing
	// the most recent values of all the others.
	Async

	UpdateModesN
)
