// File: binary.go
// Role: Headerless flat-record binary dump/load, and the collision-
// avoiding rename helper shared with gexf.go. Ported from the reference
// implementation's RWEG format: fixed-width records of (source, target,
// length, directed), no header, no checksum. The reference's extended
// (80-bit) float narrows to float64 here -- Go has no equivalent type
// (see SPEC_FULL.md open questions).
package graph

import (
	"encoding/binary"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
)

const recordSize = 4 + 4 + 8 + 1 // source, target, length, directed

// nextFreeName returns path unchanged if it does not exist, otherwise
// inserts " (1)", " (2)", ... before the extension until a free name is
// found.
func nextFreeName(path string) string {
	if _, err := os.Stat(path); err != nil {
		return path
	}

	ext := filepath.Ext(path)
	base := strings.TrimSuffix(path, ext)

	for i := 1; ; i++ {
		candidate := fmt.Sprintf("%s (%d)%s", base, i, ext)
		if _, err := os.Stat(candidate); err != nil {
			return candidate
		}
	}
}

// SaveToBinary writes g as a sequence of fixed-width edge records. If
// rewrite is false and path already exists, a numbered suffix is used
// instead of overwriting it (see nextFreeName).
func (g *Graph) SaveToBinary(path string, rewrite bool) error {
	if !rewrite {
		path = nextFreeName(path)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFileNotFound, err)
	}
	defer f.Close()

	g.mu.RLock()
	defer g.mu.RUnlock()

	buf := make([]byte, recordSize)
	for b := range g.views {
		v := &g.views[b]
		for p, adj := range v.adjacents {
			binary.LittleEndian.PutUint32(buf[0:4], v.id)
			binary.LittleEndian.PutUint32(buf[4:8], adj)
			binary.LittleEndian.PutUint64(buf[8:16], math.Float64bits(v.lengths[p]))
			if v.directed[p] {
				buf[16] = 1
			} else {
				buf[16] = 0
			}
			if _, err := f.Write(buf); err != nil {
				return err
			}
		}
	}

	return nil
}

// LoadFromBinary reads a sequence of fixed-width edge records and merges
// them into g via UpdateEdge. A file whose size is not a multiple of the
// record width is reported as ErrMalformedFile.
func (g *Graph) LoadFromBinary(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFileNotFound, err)
	}
	if len(data)%recordSize != 0 {
		return fmt.Errorf("%w: truncated record", ErrMalformedFile)
	}

	for off := 0; off < len(data); off += recordSize {
		rec := data[off : off+recordSize]
		src := binary.LittleEndian.Uint32(rec[0:4])
		tgt := binary.LittleEndian.Uint32(rec[4:8])
		length := math.Float64frombits(binary.LittleEndian.Uint64(rec[8:16]))
		directed := rec[16] != 0

		if err := g.UpdateEdge(src, tgt, length, directed); err != nil {
			return err
		}
	}

	return nil
}
