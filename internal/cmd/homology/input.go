// SPDX-License-Identifier: MIT

package homology

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/homology/ring"
)

// Document is the YAML input of the homology command.
//
//	ring: mod:2          # int (default) | mod:<prime> | float | float:<eps>
//	maps:                # boundary maps d_0 … d_{n-1}, one row per line
//	  - [[1, 1]]
//	  - {rows: 0, cols: 1}
//	simplices:           # alternative to maps
//	  - [a, b]
type Document struct {
	Ring      string     `yaml:"ring"`
	Maps      []MapSpec  `yaml:"maps"`
	Simplices [][]string `yaml:"simplices"`
}

// MapSpec is one boundary map: either a plain list of integer rows or an
// explicit {rows, cols, data} mapping, which can also describe zero maps
// with no rows.
type MapSpec struct {
	Rows int
	Cols int
	Data [][]int64
}

// UnmarshalYAML accepts both the sequence and the mapping form.
func (m *MapSpec) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind == yaml.SequenceNode {
		if err := n.Decode(&m.Data); err != nil {
			return err
		}
		m.Rows = len(m.Data)
		if m.Rows > 0 {
			m.Cols = len(m.Data[0])
		}

		return nil
	}

	var aux struct {
		Rows int       `yaml:"rows"`
		Cols int       `yaml:"cols"`
		Data [][]int64 `yaml:"data"`
	}
	if err := n.Decode(&aux); err != nil {
		return err
	}
	if len(aux.Data) > 0 && len(aux.Data) != aux.Rows {
		return fmt.Errorf("line %d: map declares %d rows but has %d", n.Line, aux.Rows, len(aux.Data))
	}
	m.Rows, m.Cols, m.Data = aux.Rows, aux.Cols, aux.Data

	return nil
}

var (
	// ErrNoInput is returned for a document with neither maps nor simplices.
	ErrNoInput = errors.New("document has neither maps nor simplices")

	// ErrAmbiguousInput is returned when both maps and simplices are given.
	ErrAmbiguousInput = errors.New("document has both maps and simplices")

	// ErrUnknownRing is returned for an unrecognized ring name.
	ErrUnknownRing = errors.New("unknown ring")
)

// ParseDocument decodes and validates a YAML document.
func ParseDocument(data []byte) (Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("decode yaml: %w", err)
	}
	switch {
	case len(doc.Maps) == 0 && len(doc.Simplices) == 0:
		return Document{}, ErrNoInput
	case len(doc.Maps) > 0 && len(doc.Simplices) > 0:
		return Document{}, ErrAmbiguousInput
	}

	return doc, nil
}

// RingKind enumerates the supported coefficient rings.
type RingKind int

const (
	RingInt RingKind = iota
	RingMod
	RingFloat
)

// RingSpec is a parsed ring name.
type RingSpec struct {
	Kind    RingKind
	Modulus uint64
	Eps     float64
}

// String renders s in the same syntax ParseRing accepts.
func (s RingSpec) String() string {
	switch s.Kind {
	case RingMod:
		return "mod:" + strconv.FormatUint(s.Modulus, 10)
	case RingFloat:
		if s.Eps > 0 {
			return "float:" + strconv.FormatFloat(s.Eps, 'g', -1, 64)
		}
		return "float"
	default:
		return "int"
	}
}

// ParseRing parses "int", "mod:<p>", "float" or "float:<eps>". Empty means int.
func ParseRing(name string) (RingSpec, error) {
	kind, arg, hasArg := strings.Cut(strings.TrimSpace(strings.ToLower(name)), ":")
	switch kind {
	case "", "int":
		if hasArg {
			break
		}
		return RingSpec{Kind: RingInt}, nil
	case "mod":
		p, err := strconv.ParseUint(arg, 10, 64)
		if err != nil {
			return RingSpec{}, fmt.Errorf("ring %q: modulus: %w", name, err)
		}
		if _, err = ring.NewMod(p); err != nil {
			return RingSpec{}, fmt.Errorf("ring %q: %w", name, err)
		}
		return RingSpec{Kind: RingMod, Modulus: p}, nil
	case "float":
		rs := RingSpec{Kind: RingFloat}
		if !hasArg {
			return rs, nil
		}
		eps, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return RingSpec{}, fmt.Errorf("ring %q: epsilon: %w", name, err)
		}
		if _, err = ring.NewFloat(eps); err != nil {
			return RingSpec{}, fmt.Errorf("ring %q: %w", name, err)
		}
		rs.Eps = eps
		return rs, nil
	}

	return RingSpec{}, fmt.Errorf("ring %q: %w", name, ErrUnknownRing)
}
