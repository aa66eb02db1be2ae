// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"bytes"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosteam/tab"
	"github.com/jung-kurt/gofpdf"
)

// dimensions of pdf cells [mm]
const (
	pdfColWidth = 23.0
	pdfRowH     = 5.0
)

// BuildPDF renders steam tables into a printable document with one section per table
func BuildPDF(title string, tables []*tab.Table, sats []*tab.SatTable) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetTitle(title, false)
	pdf.SetFont("Arial", "", 12)
	pdf.AddPage()
	pdf.Cell(0, 8, title)
	pdf.Ln(10)

	// states
	for _, t := range tables {
		pdf.SetFont("Arial", "B", 10)
		pdf.Cell(0, 6, io.Sf("%s: %s at %s (%d states, %d discarded)", t.Name, t.Kind, TableLabel(t), len(t.States), t.Discarded))
		pdf.Ln(7)
		pdfHeader(pdf, Header())
		pdf.SetFont("Arial", "", 8)
		for _, s := range t.States {
			pdfRow(pdf, Row(s), Header())
		}
		pdf.Ln(6)
	}

	// saturation
	for _, t := range sats {
		pdf.SetFont("Arial", "B", 10)
		pdf.Cell(0, 6, io.Sf("%s: saturation (%d points, %d discarded)", t.Name, len(t.Points), t.Discarded))
		pdf.Ln(7)
		pdfHeader(pdf, SatHeader())
		pdf.SetFont("Arial", "", 8)
		for _, p := range t.Points {
			pdfRow(pdf, SatRow(p), SatHeader())
		}
		pdf.Ln(6)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, chk.Err("cannot write pdf:\n%v", err)
	}
	return buf.Bytes(), nil
}

// pdfHeader writes a row of column headers
func pdfHeader(pdf *gofpdf.Fpdf, header []string) {
	pdf.SetFont("Arial", "B", 8)
	for _, h := range header {
		pdf.CellFormat(pdfColWidth, pdfRowH, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)
}

// pdfRow writes a row of numbers; the region column is written as an integer
func pdfRow(pdf *gofpdf.Fpdf, values []float64, header []string) {
	for i, v := range values {
		txt := io.Sf("%.6g", v)
		if header[i] == "region" {
			txt = io.Sf("%d", int(v))
		}
		pdf.CellFormat(pdfColWidth, pdfRowH, txt, "1", 0, "R", false, 0, "")
	}
	pdf.Ln(-1)
}
