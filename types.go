package main

import "time"

// Part is an optional performance part. Parts are identified by their
// position in the input, 0-based here and 1-based in the output file.
type Part struct {
	Force int64 `json:"force"`
	Mass  int64 `json:"mass"`
}

// Vehicle holds the intrinsic force and mass of the base car.
type Vehicle struct {
	Force int64 `json:"force"`
	Mass  int64 `json:"mass"`
}

// Problem is one parsed input file.
type Problem struct {
	Vehicle Vehicle
	Parts   []Part
}

// Selection flags which parts are installed, one entry per part.
type Selection []bool

// Any reports whether at least one part is selected.
func (s Selection) Any() bool {
	for _, used := range s {
		if used {
			return true
		}
	}
	return false
}

// Indices returns the 1-based indices of the selected parts in ascending order.
func (s Selection) Indices() []int {
	var idxs []int
	for i, used := range s {
		if used {
			idxs = append(idxs, i+1)
		}
	}
	return idxs
}

func (s Selection) clone() Selection {
	if s == nil {
		return nil
	}
	c := make(Selection, len(s))
	copy(c, s)
	return c
}

// Result is the outcome of a full enumeration.
type Result struct {
	Selection    Selection
	Acceleration float64
	Baseline     float64
	Evaluated    int // subsets visited, including the empty one
	Elapsed      time.Duration
}

// RunOutput is the JSON-serializable summary printed with -json.
type RunOutput struct {
	Input        string  `json:"input"`
	Output       string  `json:"output"`
	Parts        int     `json:"parts"`
	Selected     []int   `json:"selected"`
	Baseline     float64 `json:"baseline"`
	Acceleration float64 `json:"acceleration"`
	Evaluated    int     `json:"evaluated"`
	TimeMs       int64   `json:"timeMs"`
}
