// Package stl reads STL meshes and converts them into scene triangle assets.
package stl

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// STL format errors.
var (
	ErrTruncatedSTLData = errors.New("truncated STL data")
	ErrMalformedSTL     = errors.New("malformed ASCII STL")
)

const (
	headerSize = 80
	facetSize  = 50 // normal + 3 vertices (12 floats) + attribute count
)

// Facet is one STL triangle with its stored face normal.
type Facet struct {
	Normal   mgl32.Vec3
	Vertices [3]mgl32.Vec3
}

// Mesh is a parsed STL file.
type Mesh struct {
	Name   string
	Binary bool
	Facets []Facet
}

// Load reads and parses an STL file.
func Load(path string) (*Mesh, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading STL: %w", err)
	}
	return Parse(data)
}

// Parse parses binary or ASCII STL data.
func Parse(data []byte) (*Mesh, error) {
	if isASCII(data) {
		return parseASCII(data)
	}
	return parseBinary(data)
}

// isASCII reports whether data looks like ASCII STL. Binary files may also
// start with "solid", so the size check and a facet keyword decide.
func isASCII(data []byte) bool {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if !bytes.HasPrefix(trimmed, []byte("solid")) {
		return false
	}
	if len(data) >= headerSize+4 {
		n := binary.LittleEndian.Uint32(data[headerSize:])
		if uint64(headerSize+4)+uint64(n)*facetSize == uint64(len(data)) {
			return false
		}
	}
	probe := trimmed
	if len(probe) > 512 {
		probe = probe[:512]
	}
	return bytes.Contains(probe, []byte("facet")) || bytes.Contains(probe, []byte("endsolid"))
}

func parseBinary(data []byte) (*Mesh, error) {
	if len(data) < headerSize+4 {
		return nil, ErrTruncatedSTLData
	}

	count := binary.LittleEndian.Uint32(data[headerSize:])
	if uint64(len(data)-headerSize-4) < uint64(count)*facetSize {
		return nil, fmt.Errorf("%w: header declares %d facets", ErrTruncatedSTLData, count)
	}

	m := &Mesh{
		Name:   strings.TrimRight(string(data[:headerSize]), "\x00 "),
		Binary: true,
		Facets: make([]Facet, count),
	}
	off := headerSize + 4
	for i := range m.Facets {
		f := &m.Facets[i]
		f.Normal = readVec(data[off:])
		for v := 0; v < 3; v++ {
			f.Vertices[v] = readVec(data[off+12*(v+1):])
		}
		off += facetSize
	}
	return m, nil
}

func readVec(b []byte) mgl32.Vec3 {
	return mgl32.Vec3{
		math.Float32frombits(binary.LittleEndian.Uint32(b[0:])),
		math.Float32frombits(binary.LittleEndian.Uint32(b[4:])),
		math.Float32frombits(binary.LittleEndian.Uint32(b[8:])),
	}
}

func parseASCII(data []byte) (*Mesh, error) {
	m := &Mesh{}
	sc := bufio.NewScanner(bytes.NewReader(data))

	var (
		cur      Facet
		vertices int
		inFacet  bool
		line     int
	)
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "solid":
			if len(fields) > 1 {
				m.Name = strings.Join(fields[1:], " ")
			}
		case "facet":
			if len(fields) != 5 || fields[1] != "normal" {
				return nil, fmt.Errorf("%w: line %d: bad facet", ErrMalformedSTL, line)
			}
			n, err := parseVec(fields[2:])
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedSTL, line, err)
			}
			cur = Facet{Normal: n}
			vertices = 0
			inFacet = true
		case "vertex":
			if !inFacet || vertices == 3 || len(fields) != 4 {
				return nil, fmt.Errorf("%w: line %d: unexpected vertex", ErrMalformedSTL, line)
			}
			v, err := parseVec(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedSTL, line, err)
			}
			cur.Vertices[vertices] = v
			vertices++
		case "endfacet":
			if !inFacet || vertices != 3 {
				return nil, fmt.Errorf("%w: line %d: facet with %d vertices", ErrMalformedSTL, line, vertices)
			}
			m.Facets = append(m.Facets, cur)
			inFacet = false
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading ASCII STL: %w", err)
	}
	if inFacet {
		return nil, fmt.Errorf("%w: unterminated facet", ErrTruncatedSTLData)
	}
	return m, nil
}

func parseVec(fields []string) (mgl32.Vec3, error) {
	var v mgl32.Vec3
	for i := 0; i < 3; i++ {
		f, err := strconv.ParseFloat(fields[i], 32)
		if err != nil {
			return v, err
		}
		v[i] = float32(f)
	}
	return v, nil
}
