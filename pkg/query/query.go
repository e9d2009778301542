// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package query parses list-valued URL query parameters.
package query

import (
	"strconv"
	"strings"
)

// IntSlice parses a slice of string values from URL query parameters
// into a slice of integers. Invalid entries are ignored safely.
func IntSlice(vals []string) []int {
	var res []int
	for _, v := range vals {
		if i, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			res = append(res, i)
		}
	}
	return res
}

// StringSlice parses a single comma-separated query string
// into a trimmed slice of strings.
func StringSlice(val string) []string {
	if val == "" {
		return nil
	}
	var res []string
	for _, v := range strings.Split(val, ",") {
		clean := strings.TrimSpace(v)
		if clean != "" {
			res = append(res, clean)
		}
	}
	return res
}

// IntList parses repeated and comma-separated integer values, so both
// "?ids=1,2" and "?ids=1&ids=2" yield [1 2]. The second result is false
// when any entry is not an integer.
func IntList(vals []string) ([]int, bool) {
	var res []int
	for _, raw := range vals {
		for _, part := range StringSlice(raw) {
			i, err := strconv.Atoi(part)
			if err != nil {
				return nil, false
			}
			res = append(res, i)
		}
	}
	return res, true
}
