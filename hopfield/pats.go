// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hopfield

import (
	"compress/gzip"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/emer/etable/etable"
	"github.com/emer/etable/etensor"
	"github.com/goki/gi/gi"
)

// PatsCol is the name of the pattern column in pattern tables
const PatsCol = "Pattern"

// ConfigPatsTable configures given table to hold given number of patterns
// for this network: a Name string column and a PatsCol float32 column
// with cells shaped as the network units.
func (nt *Network) ConfigPatsTable(dt *etable.Table, rows int) {
	dt.SetMetaData("name", nt.Nm+"Pats")
	dt.SetMetaData("desc", "stored patterns, binary, in order added")
	dt.SetMetaData("read-only", "true")
	sch := etable.Schema{
		{"Name", etensor.STRING, nil, nil},
		{PatsCol, etensor.FLOAT32, nt.Shp, nil},
	}
	dt.SetFromSchema(sch, rows)
}

// PatsTable fills given table with the stored patterns in binary form,
// one row each in order added, for display and persistence.
func (nt *Network) PatsTable(dt *etable.Table) {
	np := len(nt.pats)
	nt.ConfigPatsTable(dt, np)
	for pi := 0; pi < np; pi++ {
		dt.SetCellString("Name", pi, fmt.Sprintf("Pat%d", pi))
		dt.SetCellTensor(PatsCol, pi, nt.PatternTsr(pi))
	}
}

// AddPatsTable adds each row of the given column of the table as a
// pattern, in row order -- the weights end up exactly as if each had
// been added by AddPattern.  All rows are checked first: if any row is
// invalid, nothing is added.
func (nt *Network) AddPatsTable(dt *etable.Table, colNm string) error {
	if dt.ColByName(colNm) == nil {
		return fmt.Errorf("hopfield.Network %s AddPatsTable: column %q not found in table", nt.Nm, colNm)
	}
	bps := make([][]float32, dt.Rows)
	for row := range bps {
		bp, err := nt.bipolarOf("AddPatsTable", TsrValues(dt.CellTensor(colNm, row)))
		if err != nil {
			return fmt.Errorf("row %d: %w", row, err)
		}
		bps[row] = bp
	}
	for _, bp := range bps {
		nt.pats = append(nt.pats, bp)
		HebbAddPat(nt.wts, bp)
	}
	return nil
}

// WritePatsCSV writes the stored patterns as a tab-separated table with headers
func (nt *Network) WritePatsCSV(w io.Writer) error {
	dt := &etable.Table{}
	nt.PatsTable(dt)
	return dt.WriteCSV(w, etable.Tab, etable.Headers)
}

// ReadPatsCSV reads patterns written by WritePatsCSV, adding each one
// in order to those already stored.
func (nt *Network) ReadPatsCSV(r io.Reader) error {
	dt := &etable.Table{}
	nt.ConfigPatsTable(dt, 0)
	if err := dt.ReadCSV(r, etable.Tab); err != nil {
		return err
	}
	return nt.AddPatsTable(dt, PatsCol)
}

// SavePatsCSV saves the stored patterns to a tab-separated file.
// If filename has .gz extension, then file is gzip compressed.
func (nt *Network) SavePatsCSV(filename gi.FileName) error {
	fp, err := os.Create(string(filename))
	if err != nil {
		log.Println(err)
		return err
	}
	if filepath.Ext(string(filename)) == ".gz" {
		gzw := gzip.NewWriter(fp)
		err = nt.WritePatsCSV(gzw)
		if cerr := gzw.Close(); err == nil {
			err = cerr
		}
	} else {
		err = nt.WritePatsCSV(fp)
	}
	if cerr := fp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		log.Println(err)
	}
	return err
}

// OpenPatsCSV adds the patterns saved in given file by SavePatsCSV.
// If filename has .gz extension, then file is gzip uncompressed.
func (nt *Network) OpenPatsCSV(filename gi.FileName) error {
	fp, err := os.Open(string(filename))
	if err != nil {
		log.Println(err)
		return err
	}
	defer fp.Close()
	if filepath.Ext(string(filename)) == ".gz" {
		gzr, err := gzip.NewReader(fp)
		if err != nil {
			log.Println(err)
			return err
		}
		defer gzr.Close()
		return nt.ReadPatsCSV(gzr)
	}
	return nt.ReadPatsCSV(fp)
}
