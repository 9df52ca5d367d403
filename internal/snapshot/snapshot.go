// Package snapshot serializes procedures to disk so pipeline stages can
// be cached and replayed. The format is msgpack with an explicit schema
// version; a version mismatch invalidates the snapshot rather than
// risking a misread.
package snapshot

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vmihailenco/msgpack/v5"

	"ember/internal/ir"
)

// schemaVersion changes whenever the payload layout changes.
const schemaVersion uint16 = 1

type valueRecord struct {
	Opcode    uint8
	Chill     bool
	Traps     bool
	Type      uint8
	Children  []int32
	Owner     int32
	ConstInt  int64
	ConstBits uint64
	Variable  int32
	ArgIndex  int32
	MemOffset int32
	RangeLo   uint32
	RangeHi   uint32
	FenceLo   uint32
	FenceHi   uint32
}

type blockRecord struct {
	Frequency  float64
	Values     []int32
	Preds      []int32
	SuccBlocks []int32
	SuccFreqs  []uint8
}

type payload struct {
	Schema    uint16
	Values    []valueRecord
	Blocks    []blockRecord
	Variables []uint8 // variable types, in id order
}

func encode(p *ir.Procedure) *payload {
	out := &payload{Schema: schemaVersion}

	out.Values = make([]valueRecord, 0, p.NumValues())
	p.EachValue(func(_ ir.ValueID, v *ir.Value) {
		rec := valueRecord{
			Opcode:    uint8(v.Kind.Opcode),
			Chill:     v.Kind.Chill,
			Traps:     v.Kind.Traps,
			Type:      uint8(v.Type),
			Owner:     int32(v.Owner),
			ConstInt:  v.ConstInt,
			ConstBits: v.ConstBits,
			Variable:  int32(v.Variable),
			ArgIndex:  v.ArgIndex,
			MemOffset: v.Mem.Offset,
			RangeLo:   v.Mem.Range.Lo,
			RangeHi:   v.Mem.Range.Hi,
			FenceLo:   v.Mem.Fence.Lo,
			FenceHi:   v.Mem.Fence.Hi,
		}
		rec.Children = make([]int32, len(v.Children))
		for i, c := range v.Children {
			rec.Children[i] = int32(c)
		}
		out.Values = append(out.Values, rec)
	})

	out.Blocks = make([]blockRecord, 0, p.NumBlocks())
	for i := 0; i < p.NumBlocks(); i++ {
		block := p.Block(ir.BlockID(i))
		rec := blockRecord{Frequency: block.Frequency()}
		for _, v := range block.Values() {
			rec.Values = append(rec.Values, int32(v))
		}
		for _, pred := range block.Predecessors() {
			rec.Preds = append(rec.Preds, int32(pred))
		}
		for _, succ := range block.Successors() {
			rec.SuccBlocks = append(rec.SuccBlocks, int32(succ.Block))
			rec.SuccFreqs = append(rec.SuccFreqs, uint8(succ.Freq))
		}
		out.Blocks = append(out.Blocks, rec)
	}

	out.Variables = make([]uint8, p.NumVariables())
	for i := 0; i < p.NumVariables(); i++ {
		out.Variables[i] = uint8(p.Variable(ir.VariableID(i)).Type)
	}
	return out
}

func decode(in *payload) (*ir.Procedure, error) {
	if in.Schema != schemaVersion {
		return nil, fmt.Errorf("snapshot: schema %d, expected %d", in.Schema, schemaVersion)
	}

	p := ir.NewProcedure()
	// Ids are assigned sequentially, so re-registering in record order
	// reproduces them exactly.
	for i := range in.Values {
		rec := &in.Values[i]
		val := ir.Value{
			Kind:      ir.Kind{Opcode: ir.Opcode(rec.Opcode), Chill: rec.Chill, Traps: rec.Traps},
			Type:      ir.Type(rec.Type),
			Owner:     ir.BlockID(rec.Owner),
			ConstInt:  rec.ConstInt,
			ConstBits: rec.ConstBits,
			Variable:  ir.VariableID(rec.Variable),
			ArgIndex:  rec.ArgIndex,
			Mem: ir.MemValue{
				Offset: rec.MemOffset,
				Range:  ir.HeapRange{Lo: rec.RangeLo, Hi: rec.RangeHi},
				Fence:  ir.HeapRange{Lo: rec.FenceLo, Hi: rec.FenceHi},
			},
		}
		if len(rec.Children) > 0 {
			val.Children = make([]ir.ValueID, len(rec.Children))
			for j, c := range rec.Children {
				val.Children[j] = ir.ValueID(c)
			}
		}
		p.Add(val)
	}

	for i := range in.Blocks {
		rec := &in.Blocks[i]
		id := p.AddBlock(rec.Frequency)
		block := p.Block(id)
		for _, v := range rec.Values {
			block.Append(ir.ValueID(v))
		}
		for _, pred := range rec.Preds {
			block.AddPredecessor(ir.BlockID(pred))
		}
		if len(rec.SuccBlocks) != len(rec.SuccFreqs) {
			return nil, fmt.Errorf("snapshot: block %d has %d successor targets but %d frequencies",
				i, len(rec.SuccBlocks), len(rec.SuccFreqs))
		}
		for j := range rec.SuccBlocks {
			block.AppendSuccessor(ir.FrequentBlock{
				Block: ir.BlockID(rec.SuccBlocks[j]),
				Freq:  ir.Frequency(rec.SuccFreqs[j]),
			})
		}
	}

	for _, typ := range in.Variables {
		p.AddVariable(ir.Type(typ))
	}
	return p, nil
}

// Marshal serializes a procedure.
func Marshal(p *ir.Procedure) ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	if err := enc.Encode(encode(p)); err != nil {
		return nil, fmt.Errorf("snapshot: encode: %w", err)
	}
	return buf.Bytes(), nil
}

// Unmarshal reconstructs a procedure from Marshal output. The result
// preserves value, block and variable ids.
func Unmarshal(data []byte) (*ir.Procedure, error) {
	var in payload
	dec := msgpack.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&in); err != nil {
		return nil, fmt.Errorf("snapshot: decode: %w", err)
	}
	return decode(&in)
}

// WriteFile atomically writes a procedure snapshot: encode to a temp
// file in the target directory, then rename over the destination.
func WriteFile(path string, p *ir.Procedure) error {
	data, err := Marshal(p)
	if err != nil {
		return err
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(dir, "tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(f.Name())

	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), path)
}

// ReadFile loads a procedure snapshot written by WriteFile.
func ReadFile(path string) (*ir.Procedure, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Unmarshal(data)
}
