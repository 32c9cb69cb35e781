package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

// Input formats accepted by LoadProblem.
const (
	FormatAuto  = "auto"
	FormatPlain = "plain"
	FormatJSON  = "json"
)

// resolveFormat picks the input format for path. "auto" means JSON for a
// .json extension and the plain format for anything else.
func resolveFormat(path, format string) (string, error) {
	switch strings.ToLower(format) {
	case "", FormatAuto:
		if strings.EqualFold(filepath.Ext(path), ".json") {
			return FormatJSON, nil
		}
		return FormatPlain, nil
	case FormatPlain:
		return FormatPlain, nil
	case FormatJSON:
		return FormatJSON, nil
	}
	return "", fmt.Errorf("unknown input format %q", format)
}

// jsonInt accepts only a plain base-10 integer literal that fits in int64,
// matching what the plain reader accepts.
func jsonInt(v gjson.Result) (int64, bool) {
	if v.Type != gjson.Number {
		return 0, false
	}
	n, err := strconv.ParseInt(v.Raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// ParseProblemJSON reads the JSON form of a problem:
//
//	{"force": 10, "mass": 5, "parts": [{"force": 1, "mass": 100}]}
//
// The part count is the length of "parts".
func ParseProblemJSON(data string) (*Problem, error) {
	if !gjson.Valid(data) {
		return nil, fmt.Errorf("problem: invalid JSON")
	}
	root := gjson.Parse(data)
	if !root.IsObject() {
		return nil, fmt.Errorf("problem: want a JSON object, got %s", root.Type)
	}

	p := &Problem{}
	for _, field := range []struct {
		key string
		dst *int64
	}{
		{"force", &p.Vehicle.Force},
		{"mass", &p.Vehicle.Mass},
	} {
		v := root.Get(field.key)
		if !v.Exists() {
			return nil, fmt.Errorf("problem: missing %q: %w", field.key, ErrShortInput)
		}
		n, ok := jsonInt(v)
		if !ok {
			return nil, fmt.Errorf("problem: %q is %s: %w", field.key, v.Raw, ErrBadToken)
		}
		*field.dst = n
	}

	parts := root.Get("parts")
	if parts.Exists() && !parts.IsArray() {
		return nil, fmt.Errorf("problem: \"parts\" is not an array")
	}

	var perr error
	idx := 0
	parts.ForEach(func(_, v gjson.Result) bool {
		idx++
		force, fok := jsonInt(v.Get("force"))
		mass, mok := jsonInt(v.Get("mass"))
		if !fok || !mok {
			perr = fmt.Errorf("problem: part %d needs integer force and mass: %w", idx, ErrBadToken)
			return false
		}
		p.Parts = append(p.Parts, Part{Force: force, Mass: mass})
		return true
	})
	if perr != nil {
		return nil, perr
	}
	return p, nil
}

// LoadProblem reads path in one go and parses it in the given format.
func LoadProblem(path, format string) (*Problem, error) {
	format, err := resolveFormat(path, format)
	if err != nil {
		return nil, err
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var p *Problem
	if format == FormatJSON {
		p, err = ParseProblemJSON(string(raw))
	} else {
		p, err = ReadProblem(bytes.NewReader(raw))
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return p, nil
}
