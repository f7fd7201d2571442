// Package fixture reads and writes solver regression fixtures: the
// coefficient arrays of a batch, the right-hand sides it was solved with,
// and the solutions to compare against, stored as checksummed sections of a
// single binary file.
//
// Layout: 8-byte magic, a fixed header, a table of contents, then the
// section payloads back to back. Sections may be compressed per the codec
// flag in their TOC entry; checksums always cover the decoded payload, so a
// fixture can be re-encoded with a different codec without changing its
// recorded hashes.
package fixture

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zstd"
	lz4 "github.com/pierrec/lz4/v4"
	xxh3 "github.com/zeebo/xxh3"

	"github.com/E3SM-Project/tridiag"
)

var magic = [8]byte{'T', 'R', 'I', 'F', 'I', 'X', 0, 0}

// Section type identifiers.
const (
	TypeMeta uint32 = iota + 1
	TypeSub
	TypeDiag
	TypeSuper
	TypeRHS
	TypeSolution
	TypeG
	TypeH
)

// TOC entry codec flags.
const (
	FlagZstd uint32 = 1 << 0
	FlagLZ4  uint32 = 1 << 1
)

const (
	kindTridiagonal = "tridiagonal"
	kindCoupled     = "coupled"
)

var (
	ErrBadMagic = errors.New("fixture: bad magic")
	ErrChecksum = errors.New("fixture: section checksum mismatch")
)

// Codec selects the per-section compression of a written fixture.
type Codec int

const (
	CodecRaw Codec = iota
	CodecLZ4
	CodecZstd
)

func (c Codec) String() string {
	switch c {
	case CodecRaw:
		return "raw"
	case CodecLZ4:
		return "lz4"
	case CodecZstd:
		return "zstd"
	}
	return fmt.Sprintf("Codec(%d)", int(c))
}

// ParseCodec maps a codec name to its Codec value.
func ParseCodec(name string) (Codec, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "raw":
		return CodecRaw, nil
	case "lz4":
		return CodecLZ4, nil
	case "zstd":
		return CodecZstd, nil
	}
	return CodecRaw, fmt.Errorf("fixture: unknown codec %q", name)
}

func (c Codec) encode(data []byte) ([]byte, uint32, error) {
	switch c {
	case CodecZstd:
		enc, err := zstd.NewWriter(nil)
		if err != nil {
			return nil, 0, err
		}
		defer enc.Close()
		return enc.EncodeAll(data, make([]byte, 0, len(data))), FlagZstd, nil
	case CodecLZ4:
		var buf bytes.Buffer
		w := lz4.NewWriter(&buf)
		if _, err := w.Write(data); err != nil {
			return nil, 0, err
		}
		if err := w.Close(); err != nil {
			return nil, 0, err
		}
		return buf.Bytes(), FlagLZ4, nil
	}
	return data, 0, nil
}

func decode(data []byte, flags uint32) ([]byte, error) {
	switch {
	case flags&FlagZstd != 0:
		dec, err := zstd.NewReader(nil)
		if err != nil {
			return nil, err
		}
		defer dec.Close()
		return dec.DecodeAll(data, nil)
	case flags&FlagLZ4 != 0:
		var buf bytes.Buffer
		if _, err := io.Copy(&buf, lz4.NewReader(bytes.NewReader(data))); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}
	return data, nil
}

type header struct {
	Ver, Num, Res uint32
}

type tocEntry struct {
	TypeID uint32
	Offset uint64
	Size   uint64
	Flags  uint32
}

type meta struct {
	KindTag string `json:"kind"`
	Systems int    `json:"systems"`
	Rows    int    `json:"rows"`
	// Checksums maps section id to the xxh3-64 hex digest of the decoded
	// payload.
	Checksums map[string]string `json:"checksums"`
}

func encodeFloats(v []float64) []byte {
	out := make([]byte, 8*len(v))
	for i, f := range v {
		binary.LittleEndian.PutUint64(out[8*i:], math.Float64bits(f))
	}
	return out
}

func decodeFloats(b []byte) ([]float64, error) {
	if len(b)%8 != 0 {
		return nil, fmt.Errorf("fixture: payload length %d is not a multiple of 8", len(b))
	}
	out := make([]float64, len(b)/8)
	for i := range out {
		out[i] = math.Float64frombits(binary.LittleEndian.Uint64(b[8*i:]))
	}
	return out, nil
}

// WriteBatch writes a general batch and its solutions as a fixture file.
func WriteBatch(path string, b tridiag.Batch, solution []float64, codec Codec) error {
	n := b.Systems * b.Rows
	return writeFile(path, kindTridiagonal, b.Systems, b.Rows, codec, []payload{
		{TypeSub, b.Sub[:n]},
		{TypeDiag, b.Diag[:n]},
		{TypeSuper, b.Super[:n]},
		{TypeRHS, b.RHS[:n]},
		{TypeSolution, solution},
	})
}

// WriteCoupled writes a coupled batch and its solutions as a fixture file.
func WriteCoupled(path string, c tridiag.CoupledBatch, solution []float64, codec Codec) error {
	n := c.Systems * c.Rows
	return writeFile(path, kindCoupled, c.Systems, c.Rows, codec, []payload{
		{TypeG, c.G[:n]},
		{TypeH, c.H[:n]},
		{TypeRHS, c.RHS[:n]},
		{TypeSolution, solution},
	})
}

// ReadBatch loads a general-batch fixture, returning the batch with its
// original right-hand sides and the stored solutions.
func ReadBatch(path string) (tridiag.Batch, []float64, error) {
	r, err := openFile(path, kindTridiagonal)
	if err != nil {
		return tridiag.Batch{}, nil, err
	}
	b := tridiag.Batch{Systems: r.meta.Systems, Rows: r.meta.Rows}
	if b.Sub, err = r.floats(TypeSub); err != nil {
		return tridiag.Batch{}, nil, err
	}
	if b.Diag, err = r.floats(TypeDiag); err != nil {
		return tridiag.Batch{}, nil, err
	}
	if b.Super, err = r.floats(TypeSuper); err != nil {
		return tridiag.Batch{}, nil, err
	}
	if b.RHS, err = r.floats(TypeRHS); err != nil {
		return tridiag.Batch{}, nil, err
	}
	solution, err := r.floats(TypeSolution)
	if err != nil {
		return tridiag.Batch{}, nil, err
	}
	return b, solution, nil
}

// ReadCoupled loads a coupled-batch fixture.
func ReadCoupled(path string) (tridiag.CoupledBatch, []float64, error) {
	r, err := openFile(path, kindCoupled)
	if err != nil {
		return tridiag.CoupledBatch{}, nil, err
	}
	c := tridiag.CoupledBatch{Systems: r.meta.Systems, Rows: r.meta.Rows}
	if c.G, err = r.floats(TypeG); err != nil {
		return tridiag.CoupledBatch{}, nil, err
	}
	if c.H, err = r.floats(TypeH); err != nil {
		return tridiag.CoupledBatch{}, nil, err
	}
	if c.RHS, err = r.floats(TypeRHS); err != nil {
		return tridiag.CoupledBatch{}, nil, err
	}
	solution, err := r.floats(TypeSolution)
	if err != nil {
		return tridiag.CoupledBatch{}, nil, err
	}
	return c, solution, nil
}

type payload struct {
	typeID uint32
	data   []float64
}

func writeFile(path, kind string, systems, rows int, codec Codec, payloads []payload) error {
	m := meta{
		KindTag:   kind,
		Systems:   systems,
		Rows:      rows,
		Checksums: make(map[string]string, len(payloads)),
	}

	type section struct {
		typeID uint32
		data   []byte
		flags  uint32
	}
	secs := make([]section, 0, len(payloads)+1)
	secs = append(secs, section{typeID: TypeMeta}) // encoded below, after checksums

	for _, p := range payloads {
		raw := encodeFloats(p.data)
		m.Checksums[strconv.Itoa(int(p.typeID))] = fmt.Sprintf("%016x", xxh3.Hash(raw))
		enc, flags, err := codec.encode(raw)
		if err != nil {
			return err
		}
		secs = append(secs, section{typeID: p.typeID, data: enc, flags: flags})
	}

	metaBytes, err := json.Marshal(m)
	if err != nil {
		return err
	}
	secs[0].data = metaBytes

	recs := make([]tocEntry, len(secs))
	offset := int64(len(magic)) + 12 + 24*int64(len(secs))
	for i, s := range secs {
		recs[i] = tocEntry{TypeID: s.typeID, Offset: uint64(offset), Size: uint64(len(s.data)), Flags: s.flags}
		offset += int64(len(s.data))
	}

	var buf bytes.Buffer
	buf.Write(magic[:])
	if err := binary.Write(&buf, binary.LittleEndian, header{Ver: 1, Num: uint32(len(secs))}); err != nil {
		return err
	}
	if err := binary.Write(&buf, binary.LittleEndian, recs); err != nil {
		return err
	}
	for _, s := range secs {
		buf.Write(s.data)
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}

type reader struct {
	meta     meta
	sections map[uint32][]byte
}

func openFile(path, wantKind string) (*reader, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if len(raw) < len(magic)+12 {
		return nil, fmt.Errorf("fixture: file %s is truncated", path)
	}
	if !bytes.Equal(raw[:len(magic)], magic[:]) {
		return nil, ErrBadMagic
	}

	br := bytes.NewReader(raw[len(magic):])
	var hdr header
	if err := binary.Read(br, binary.LittleEndian, &hdr); err != nil {
		return nil, err
	}
	if hdr.Ver != 1 {
		return nil, fmt.Errorf("fixture: unsupported version %d", hdr.Ver)
	}
	recs := make([]tocEntry, hdr.Num)
	if err := binary.Read(br, binary.LittleEndian, recs); err != nil {
		return nil, err
	}

	r := &reader{sections: make(map[uint32][]byte, len(recs))}
	for _, e := range recs {
		end := e.Offset + e.Size
		if end > uint64(len(raw)) || e.Offset > end {
			return nil, fmt.Errorf("fixture: section %d extends past end of file", e.TypeID)
		}
		data, err := decode(raw[e.Offset:end], e.Flags)
		if err != nil {
			return nil, fmt.Errorf("fixture: section %d: %w", e.TypeID, err)
		}
		r.sections[e.TypeID] = data
	}

	metaBytes, ok := r.sections[TypeMeta]
	if !ok {
		return nil, errors.New("fixture: missing meta section")
	}
	if err := json.Unmarshal(metaBytes, &r.meta); err != nil {
		return nil, fmt.Errorf("fixture: meta: %w", err)
	}
	if r.meta.KindTag != wantKind {
		return nil, fmt.Errorf("fixture: kind %q, want %q", r.meta.KindTag, wantKind)
	}

	for id, data := range r.sections {
		if id == TypeMeta {
			continue
		}
		want, ok := r.meta.Checksums[strconv.Itoa(int(id))]
		if !ok {
			return nil, fmt.Errorf("fixture: no recorded checksum for section %d", id)
		}
		if got := fmt.Sprintf("%016x", xxh3.Hash(data)); got != want {
			return nil, fmt.Errorf("%w: section %d", ErrChecksum, id)
		}
	}
	return r, nil
}

func (r *reader) floats(typeID uint32) ([]float64, error) {
	data, ok := r.sections[typeID]
	if !ok {
		return nil, fmt.Errorf("fixture: missing section %d", typeID)
	}
	v, err := decodeFloats(data)
	if err != nil {
		return nil, err
	}
	if len(v) != r.meta.Systems*r.meta.Rows {
		return nil, fmt.Errorf("fixture: section %d holds %d values, want %d",
			typeID, len(v), r.meta.Systems*r.meta.Rows)
	}
	return v, nil
}
