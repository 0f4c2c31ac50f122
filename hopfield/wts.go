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
	"strconv"

	"github.com/goki/gi/gi"
	"github.com/goki/ki/indent"
)

// SaveWtsJSON saves the weight matrix to a JSON-formatted file, for viewing.
// If filename has .gz extension, then file is gzip compressed.
// There is no corresponding open: weights are always recomputed from
// the stored patterns, see SavePatsCSV.
func (nt *Network) SaveWtsJSON(filename gi.FileName) error {
	fp, err := os.Create(string(filename))
	if err != nil {
		log.Println(err)
		return err
	}
	if filepath.Ext(string(filename)) == ".gz" {
		gzw := gzip.NewWriter(fp)
		err = nt.WriteWtsJSON(gzw)
		if cerr := gzw.Close(); err == nil {
			err = cerr
		}
	} else {
		err = nt.WriteWtsJSON(fp)
	}
	if cerr := fp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		log.Println(err)
	}
	return err
}

// WriteWtsJSON writes the weights in a JSON text format, one array of
// sending weights per receiving unit.
func (nt *Network) WriteWtsJSON(w io.Writer) error {
	n := nt.NUnits
	var werr error
	wr := func(b []byte) {
		if werr != nil {
			return
		}
		_, werr = w.Write(b)
	}
	depth := 0
	wr(indent.TabBytes(depth))
	wr([]byte("{\n"))
	depth++
	wr(indent.TabBytes(depth))
	wr([]byte(fmt.Sprintf("\"Network\": %q,\n", nt.Nm)))
	wr(indent.TabBytes(depth))
	wr([]byte("\"Shape\": [ "))
	for i, d := range nt.Shp {
		wr([]byte(strconv.Itoa(d)))
		if i < len(nt.Shp)-1 {
			wr([]byte(", "))
		}
	}
	wr([]byte(" ],\n"))
	wr(indent.TabBytes(depth))
	wr([]byte(fmt.Sprintf("\"NPats\": %d,\n", len(nt.pats))))
	wr(indent.TabBytes(depth))
	wr([]byte("\"Wts\": [\n"))
	depth++
	for ri := 0; ri < n; ri++ {
		wr(indent.TabBytes(depth))
		wr([]byte("[ "))
		rw := nt.wts[ri*n : (ri+1)*n]
		for si, wt := range rw {
			wr([]byte(strconv.FormatFloat(float64(wt), 'g', -1, 32)))
			if si < n-1 {
				wr([]byte(", "))
			}
		}
		if ri == n-1 {
			wr([]byte(" ]\n"))
		} else {
			wr([]byte(" ],\n"))
		}
	}
	depth--
	wr(indent.TabBytes(depth))
	wr([]byte("]\n"))
	depth--
	wr(indent.TabBytes(depth))
	wr([]byte("}\n"))
	return werr
}
