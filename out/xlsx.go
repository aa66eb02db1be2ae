// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"bytes"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosteam/tab"
	"github.com/xuri/excelize/v2"
)

// SummarySheet is the name of the first sheet of workbooks
const SummarySheet = "summary"

// BuildXLSX renders steam tables into a workbook with one sheet per table
func BuildXLSX(title string, tables []*tab.Table, sats []*tab.SatTable) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetName("Sheet1", SummarySheet); err != nil {
		return nil, chk.Err("cannot rename sheet:\n%v", err)
	}
	used := map[string]bool{SummarySheet: true}

	// summary
	if err := setRow(f, SummarySheet, 1, []interface{}{title}); err != nil {
		return nil, err
	}
	if err := setRow(f, SummarySheet, 3, []interface{}{"sheet", "kind", "fixed", "unit", "states", "discarded"}); err != nil {
		return nil, err
	}
	row := 4

	// states
	for _, t := range tables {
		name := sheetName(t.Name, used)
		unit := "K"
		if t.Kind == tab.KindIsobar {
			unit = "MPa"
		}
		if err := setRow(f, SummarySheet, row, []interface{}{name, t.Kind, t.Fixed, unit, len(t.States), t.Discarded}); err != nil {
			return nil, err
		}
		row++
		if _, err := f.NewSheet(name); err != nil {
			return nil, chk.Err("cannot create sheet %q:\n%v", name, err)
		}
		if err := setRow(f, name, 1, strings2row(Header())); err != nil {
			return nil, err
		}
		for i, s := range t.States {
			if err := setRow(f, name, i+2, floats2row(Row(s))); err != nil {
				return nil, err
			}
		}
	}

	// saturation
	for _, t := range sats {
		name := sheetName(t.Name, used)
		if err := setRow(f, SummarySheet, row, []interface{}{name, tab.KindSaturation, "", "", len(t.Points), t.Discarded}); err != nil {
			return nil, err
		}
		row++
		if _, err := f.NewSheet(name); err != nil {
			return nil, chk.Err("cannot create sheet %q:\n%v", name, err)
		}
		if err := setRow(f, name, 1, strings2row(SatHeader())); err != nil {
			return nil, err
		}
		for i, p := range t.Points {
			if err := setRow(f, name, i+2, floats2row(SatRow(p))); err != nil {
				return nil, err
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, chk.Err("cannot write workbook:\n%v", err)
	}
	return buf.Bytes(), nil
}

// setRow sets the values of a row starting at column A
func setRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return chk.Err("invalid row %d:\n%v", row, err)
	}
	if err = f.SetSheetRow(sheet, cell, &values); err != nil {
		return chk.Err("cannot set row %d of sheet %q:\n%v", row, sheet, err)
	}
	return nil
}

func strings2row(s []string) []interface{} {
	res := make([]interface{}, len(s))
	for i, v := range s {
		res[i] = v
	}
	return res
}

func floats2row(x []float64) []interface{} {
	res := make([]interface{}, len(x))
	for i, v := range x {
		res[i] = v
	}
	return res
}
