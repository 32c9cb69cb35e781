package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
)

var (
	// ErrShortInput is returned when the input ends before all declared values are read.
	ErrShortInput = errors.New("input ended early")
	// ErrBadToken is returned for a token that is not a base-10 integer.
	ErrBadToken = errors.New("not an integer")
)

// tokenReader pulls whitespace-separated integers from the plain input format.
type tokenReader struct {
	sc  *bufio.Scanner
	pos int
}

func newTokenReader(r io.Reader) *tokenReader {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	return &tokenReader{sc: sc}
}

func (t *tokenReader) next(what string) (int64, error) {
	if !t.sc.Scan() {
		if err := t.sc.Err(); err != nil {
			return 0, fmt.Errorf("read %s: %w", what, err)
		}
		return 0, fmt.Errorf("%s (value %d): %w", what, t.pos+1, ErrShortInput)
	}
	t.pos++
	v, err := strconv.ParseInt(t.sc.Text(), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s (value %d) %q: %w", what, t.pos, t.sc.Text(), ErrBadToken)
	}
	return v, nil
}

// ReadProblem parses the plain format: "f m n" followed by n "force mass"
// pairs, all separated by any whitespace. Tokens after the last pair are
// ignored. Values are not range checked apart from the part count.
func ReadProblem(r io.Reader) (*Problem, error) {
	t := newTokenReader(r)

	f, err := t.next("intrinsic force")
	if err != nil {
		return nil, err
	}
	m, err := t.next("intrinsic mass")
	if err != nil {
		return nil, err
	}
	n, err := t.next("part count")
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, fmt.Errorf("part count %d: %w", n, ErrBadToken)
	}

	p := &Problem{
		Vehicle: Vehicle{Force: f, Mass: m},
		Parts:   make([]Part, 0, min(n, 1024)),
	}
	for i := int64(0); i < n; i++ {
		force, err := t.next(fmt.Sprintf("part %d force", i+1))
		if err != nil {
			return nil, err
		}
		mass, err := t.next(fmt.Sprintf("part %d mass", i+1))
		if err != nil {
			return nil, err
		}
		p.Parts = append(p.Parts, Part{Force: force, Mass: mass})
	}
	return p, nil
}
