package helpers

import (
	"bytes"
	"math/big"

	binary "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"

	"github.com/krazyTry/orca-go/u128"
)

// accountReader reads little endian fields and keeps the first error.
type accountReader struct {
	dec *binary.Decoder
	err error
}

func newAccountReader(data []byte) *accountReader {
	return &accountReader{dec: binary.NewBorshDecoder(data)}
}

func (r *accountReader) pubkey() solana.PublicKey {
	if r.err != nil {
		return solana.PublicKey{}
	}
	b, err := r.dec.ReadNBytes(solana.PublicKeyLength)
	if err != nil {
		r.err = err
		return solana.PublicKey{}
	}
	return solana.PublicKeyFromBytes(b)
}

func (r *accountReader) bytes(n int) []byte {
	if r.err != nil {
		return nil
	}
	b, err := r.dec.ReadNBytes(n)
	r.err = err
	return b
}

func (r *accountReader) bool() bool {
	if r.err != nil {
		return false
	}
	v, err := r.dec.ReadBool()
	r.err = err
	return v
}

func (r *accountReader) uint16() uint16 {
	if r.err != nil {
		return 0
	}
	v, err := r.dec.ReadUint16(binary.LE)
	r.err = err
	return v
}

func (r *accountReader) int32() int32 {
	if r.err != nil {
		return 0
	}
	v, err := r.dec.ReadInt32(binary.LE)
	r.err = err
	return v
}

func (r *accountReader) uint64() uint64 {
	if r.err != nil {
		return 0
	}
	v, err := r.dec.ReadUint64(binary.LE)
	r.err = err
	return v
}

func (r *accountReader) uint128() *big.Int {
	if r.err != nil {
		return new(big.Int)
	}
	v, err := r.dec.ReadUint128(binary.LE)
	if err != nil {
		r.err = err
		return new(big.Int)
	}
	return u128.ToBig(v)
}

func (r *accountReader) int128() *big.Int {
	if r.err != nil {
		return new(big.Int)
	}
	v, err := r.dec.ReadUint128(binary.LE)
	if err != nil {
		r.err = err
		return new(big.Int)
	}
	return u128.ToSignedBig(v)
}

// accountWriter is the encoding counterpart of accountReader.
type accountWriter struct {
	buf *bytes.Buffer
	enc *binary.Encoder
	err error
}

func newAccountWriter(size int) *accountWriter {
	buf := bytes.NewBuffer(make([]byte, 0, size))
	return &accountWriter{buf: buf, enc: binary.NewBorshEncoder(buf)}
}

func (w *accountWriter) write(b []byte) {
	if w.err == nil {
		w.err = w.enc.WriteBytes(b, false)
	}
}

func (w *accountWriter) pubkey(k solana.PublicKey) { w.write(k.Bytes()) }

func (w *accountWriter) bool(v bool) {
	if w.err == nil {
		w.err = w.enc.WriteBool(v)
	}
}

func (w *accountWriter) uint16(v uint16) {
	if w.err == nil {
		w.err = w.enc.WriteUint16(v, binary.LE)
	}
}

func (w *accountWriter) int32(v int32) {
	if w.err == nil {
		w.err = w.enc.WriteInt32(v, binary.LE)
	}
}

func (w *accountWriter) uint64(v uint64) {
	if w.err == nil {
		w.err = w.enc.WriteUint64(v, binary.LE)
	}
}

func (w *accountWriter) uint128(v *big.Int) {
	if w.err == nil {
		w.err = w.enc.WriteUint128(u128.FromBig(v), binary.LE)
	}
}

func (w *accountWriter) int128(v *big.Int) {
	if w.err == nil {
		w.err = w.enc.WriteUint128(u128.FromSignedBig(v), binary.LE)
	}
}

func (w *accountWriter) bytes() ([]byte, error) {
	if w.err != nil {
		return nil, w.err
	}
	return w.buf.Bytes(), nil
}
