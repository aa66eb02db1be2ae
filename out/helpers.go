// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"strings"

	"github.com/cpmech/gosl/io"
)

// fmtNum formats a number without trailing zeros
func fmtNum(x float64) string {
	return io.Sf("%g", x)
}

// sheetName returns a valid and unique spreadsheet name
//  Note: names have at most 31 characters and cannot contain : \ / ? * [ ]
func sheetName(name string, used map[string]bool) string {
	res := strings.Map(func(r rune) rune {
		if strings.ContainsRune(`:\/?*[]`, r) {
			return '_'
		}
		return r
	}, name)
	if res == "" {
		res = "table"
	}
	if len([]rune(res)) > 31 {
		res = string([]rune(res)[:31])
	}
	base := res
	for i := 2; used[strings.ToLower(res)]; i++ {
		suffix := io.Sf("~%d", i)
		r := []rune(base)
		if len(r)+len(suffix) > 31 {
			r = r[:31-len(suffix)]
		}
		res = string(r) + suffix
	}
	used[strings.ToLower(res)] = true
	return res
}
