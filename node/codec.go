package node

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/klauspost/compress/zstd"

	"solvermatch/card"
	"solvermatch/hand"
)

// Codec turns raw storage bytes into SolverNodes and back. The binary form
// is a small plain header followed by a zstd frame; everything inside the
// frame is little-endian with fixed field order, so a node can be addressed
// by byte range without any framing protocol.
type Codec interface {
	Decode(raw []byte) (*SolverNode, error)
	Encode(n *SolverNode) ([]byte, error)
}

const (
	codecMagic   uint32 = 0x534E4F44 // "SNOD"
	codecVersion byte   = 1
	headerSize          = 5
)

// BinaryCodec is the production Codec.
type BinaryCodec struct {
	enc *zstd.Encoder
	dec *zstd.Decoder
}

func NewBinaryCodec() (*BinaryCodec, error) {
	enc, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, fmt.Errorf("init zstd encoder: %w", err)
	}
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, fmt.Errorf("init zstd decoder: %w", err)
	}
	return &BinaryCodec{enc: enc, dec: dec}, nil
}

func (c *BinaryCodec) Decode(raw []byte) (*SolverNode, error) {
	if len(raw) < headerSize {
		return nil, &DecodeError{Stage: "header", Message: "blob shorter than header"}
	}
	if binary.LittleEndian.Uint32(raw[:4]) != codecMagic {
		return nil, &DecodeError{Stage: "header", Message: "bad magic"}
	}
	if raw[4] != codecVersion {
		return nil, &DecodeError{Stage: "header", Message: fmt.Sprintf("unsupported version %d", raw[4])}
	}

	body, err := c.dec.DecodeAll(raw[headerSize:], nil)
	if err != nil {
		return nil, &DecodeError{Stage: "decompress", Message: err.Error()}
	}
	return decodeBody(body)
}

func (c *BinaryCodec) Encode(n *SolverNode) ([]byte, error) {
	body, err := encodeBody(n)
	if err != nil {
		return nil, err
	}
	out := make([]byte, headerSize, headerSize+len(body))
	binary.LittleEndian.PutUint32(out[:4], codecMagic)
	out[4] = codecVersion
	return c.enc.EncodeAll(body, out), nil
}

type bodyReader struct {
	buf []byte
	off int
}

func (r *bodyReader) u8() (byte, error) {
	if r.off+1 > len(r.buf) {
		return 0, &DecodeError{Stage: "body", Message: "truncated u8"}
	}
	v := r.buf[r.off]
	r.off++
	return v, nil
}

func (r *bodyReader) u16() (uint16, error) {
	if r.off+2 > len(r.buf) {
		return 0, &DecodeError{Stage: "body", Message: "truncated u16"}
	}
	v := binary.LittleEndian.Uint16(r.buf[r.off:])
	r.off += 2
	return v, nil
}

func (r *bodyReader) f32() (float32, error) {
	if r.off+4 > len(r.buf) {
		return 0, &DecodeError{Stage: "body", Message: "truncated f32"}
	}
	v := math.Float32frombits(binary.LittleEndian.Uint32(r.buf[r.off:]))
	r.off += 4
	return v, nil
}

func (r *bodyReader) f32s(n int) ([]float32, error) {
	if r.off+4*n > len(r.buf) {
		return nil, &DecodeError{Stage: "body", Message: "truncated f32 block"}
	}
	out := make([]float32, n)
	for i := range out {
		out[i] = math.Float32frombits(binary.LittleEndian.Uint32(r.buf[r.off:]))
		r.off += 4
	}
	return out, nil
}

func decodeBody(body []byte) (*SolverNode, error) {
	r := &bodyReader{buf: body}
	n := &SolverNode{}

	boardLen, err := r.u8()
	if err != nil {
		return nil, err
	}
	if boardLen < 3 || boardLen > 5 {
		return nil, &DecodeError{Stage: "body", Message: fmt.Sprintf("invalid board length %d", boardLen)}
	}
	n.Board = make([]card.Card, boardLen)
	for i := range n.Board {
		b, err := r.u8()
		if err != nil {
			return nil, err
		}
		c := card.Card(b)
		if c.Rank() == 0 || c.Rank() > 13 || c.Suit() > card.Diamond {
			return nil, &DecodeError{Stage: "body", Message: fmt.Sprintf("invalid board card 0x%02x", b)}
		}
		n.Board[i] = c
	}

	if n.PotBB, err = r.f32(); err != nil {
		return nil, err
	}
	if n.EffStackBB, err = r.f32(); err != nil {
		return nil, err
	}

	if err := decodeSeat(r, &n.OOP); err != nil {
		return nil, err
	}
	if err := decodeSeat(r, &n.IP); err != nil {
		return nil, err
	}
	if r.off != len(body) {
		return nil, &DecodeError{Stage: "body", Message: fmt.Sprintf("%d trailing bytes", len(body)-r.off)}
	}
	return n, nil
}

func decodeSeat(r *bodyReader, s *SeatTables) error {
	nActions, err := r.u8()
	if err != nil {
		return err
	}
	if nActions == 0 || nActions > 16 {
		return &DecodeError{Stage: "body", Message: fmt.Sprintf("invalid action count %d", nActions)}
	}
	s.Actions = make([]ActionDesc, nActions)
	for i := range s.Actions {
		t, err := r.u8()
		if err != nil {
			return err
		}
		if _, ok := hand.ActionTypeDictionary[hand.ActionType(t)]; !ok {
			return &DecodeError{Stage: "body", Message: fmt.Sprintf("invalid action type %d", t)}
		}
		size, err := r.u16()
		if err != nil {
			return err
		}
		s.Actions[i] = ActionDesc{Type: hand.ActionType(t), SizePct: size}
	}

	if s.Range, err = r.f32s(card.ComboCount); err != nil {
		return err
	}

	s.Freq = make([][]float32, card.ComboCount)
	for i := range s.Freq {
		if s.Freq[i], err = r.f32s(int(nActions)); err != nil {
			return err
		}
	}
	s.EV = make([][]float32, card.ComboCount)
	for i := range s.EV {
		if s.EV[i], err = r.f32s(int(nActions)); err != nil {
			return err
		}
	}
	return nil
}

func encodeBody(n *SolverNode) ([]byte, error) {
	if len(n.Board) < 3 || len(n.Board) > 5 {
		return nil, fmt.Errorf("invalid board length %d", len(n.Board))
	}
	var out []byte
	out = append(out, byte(len(n.Board)))
	for _, c := range n.Board {
		out = append(out, byte(c))
	}
	out = appendF32(out, n.PotBB)
	out = appendF32(out, n.EffStackBB)

	for _, s := range []*SeatTables{&n.OOP, &n.IP} {
		if err := validateSeat(s); err != nil {
			return nil, err
		}
		out = append(out, byte(len(s.Actions)))
		for _, a := range s.Actions {
			out = append(out, byte(a.Type))
			out = binary.LittleEndian.AppendUint16(out, a.SizePct)
		}
		for _, w := range s.Range {
			out = appendF32(out, w)
		}
		for _, row := range s.Freq {
			for _, f := range row {
				out = appendF32(out, f)
			}
		}
		for _, row := range s.EV {
			for _, ev := range row {
				out = appendF32(out, ev)
			}
		}
	}
	return out, nil
}

func validateSeat(s *SeatTables) error {
	if len(s.Actions) == 0 || len(s.Actions) > 16 {
		return fmt.Errorf("invalid action count %d", len(s.Actions))
	}
	if len(s.Range) != card.ComboCount || len(s.Freq) != card.ComboCount || len(s.EV) != card.ComboCount {
		return fmt.Errorf("tables must cover all %d combos", card.ComboCount)
	}
	for i := range s.Freq {
		if len(s.Freq[i]) != len(s.Actions) || len(s.EV[i]) != len(s.Actions) {
			return fmt.Errorf("combo %d row width mismatch", i)
		}
	}
	return nil
}

func appendF32(out []byte, f float32) []byte {
	return binary.LittleEndian.AppendUint32(out, math.Float32bits(f))
}
