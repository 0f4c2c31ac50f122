// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hopfield

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/emer/etable/etable"
	"github.com/emer/etable/etensor"
	"github.com/goki/gi/gi"
)

var testPats = [][]float32{
	{1, 0, 1, 0, 1, 1},
	{0, 1, 1, 0, 0, 1},
	{1, 1, 0, 0, 1, 0},
}

func TestPatsTable(t *testing.T) {
	nt := newTestNet(t, []int{2, 3}, testPats...)
	dt := &etable.Table{}
	nt.PatsTable(dt)
	if dt.Rows != len(testPats) {
		t.Fatalf("rows: %d", dt.Rows)
	}
	for pi, p := range testPats {
		if nm := dt.CellString("Name", pi); nm != fmt.Sprintf("Pat%d", pi) {
			t.Errorf("row %d name: %s", pi, nm)
		}
		cmprPats(t, "table row", TsrValues(dt.CellTensor(PatsCol, pi)), p)
	}

	nt2 := newTestNet(t, []int{2, 3})
	if err := nt2.AddPatsTable(dt, PatsCol); err != nil {
		t.Fatal(err)
	}
	cmprWts(t, "from table", nt2.Weights().Values, nt.Weights().Values)
	if err := nt2.AddPatsTable(dt, "Nope"); err == nil {
		t.Errorf("expected error for missing column")
	}
}

func TestPatsCSV(t *testing.T) {
	nt := newTestNet(t, []int{2, 3}, testPats...)
	var buf bytes.Buffer
	if err := nt.WritePatsCSV(&buf); err != nil {
		t.Fatal(err)
	}
	nt2 := newTestNet(t, []int{2, 3})
	if err := nt2.ReadPatsCSV(&buf); err != nil {
		t.Fatal(err)
	}
	if nt2.NPats() != nt.NPats() {
		t.Fatalf("NPats: %d", nt2.NPats())
	}
	for pi := range testPats {
		cmprPats(t, "csv pattern", nt2.Pattern(pi), nt.Pattern(pi))
	}
	cmprWts(t, "csv weights", nt2.Weights().Values, nt.Weights().Values)
}

func TestSavePatsCSV(t *testing.T) {
	nt := newTestNet(t, []int{2, 3}, testPats...)
	for _, nm := range []string{"pats.tsv", "pats.tsv.gz"} {
		fn := gi.FileName(filepath.Join(t.TempDir(), nm))
		if err := nt.SavePatsCSV(fn); err != nil {
			t.Fatal(err)
		}
		nt2 := newTestNet(t, []int{2, 3})
		if err := nt2.OpenPatsCSV(fn); err != nil {
			t.Fatal(err)
		}
		cmprWts(t, nm, nt2.Weights().Values, nt.Weights().Values)
	}
	if err := nt.OpenPatsCSV(gi.FileName(filepath.Join(t.TempDir(), "missing.tsv"))); err == nil {
		t.Errorf("expected error for missing file")
	}
}

func TestAddPatsTableBadRow(t *testing.T) {
	src := newTestNet(t, []int{2, 3}, testPats...)
	dt := &etable.Table{}
	src.PatsTable(dt)
	bad := etensor.NewFloat32([]int{2, 3}, nil, nil)
	copy(bad.Values, []float32{1, 0, 0.5, 0, 1, 1})
	dt.SetCellTensor(PatsCol, dt.Rows-1, bad)

	nt := newTestNet(t, []int{2, 3}, []float32{0, 0, 1, 1, 1, 0})
	before := nt.Weights().Values
	err := nt.AddPatsTable(dt, PatsCol)
	if !errors.Is(err, ErrNotBinary) {
		t.Errorf("bad last row: %v", err)
	}
	if nt.NPats() != 1 {
		t.Errorf("no rows may be added when one is invalid: NPats %d", nt.NPats())
	}
	cmprWts(t, "bad table", nt.Weights().Values, before)

	var buf bytes.Buffer
	if err := dt.WriteCSV(&buf, etable.Tab, etable.Headers); err != nil {
		t.Fatal(err)
	}
	if err := nt.ReadPatsCSV(&buf); !errors.Is(err, ErrNotBinary) {
		t.Errorf("bad csv row: %v", err)
	}
	if nt.NPats() != 1 {
		t.Errorf("no rows may be added from bad csv: NPats %d", nt.NPats())
	}
	cmprWts(t, "bad csv", nt.Weights().Values, before)
}
