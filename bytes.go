// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package smallvec

import (
	"errors"
	"fmt"
	"io"

	"github.com/zeebo/xxh3"

	"github.com/bufbuild/smallvec/internal/ext/unsafex"
)

// minRead is how much room [Bytes.ReadFrom] makes once the buffer is full.
const minRead = 512

var errNegativeRead = errors.New("smallvec: reader returned negative count from Read")

// Bytes is a byte buffer backed by a [Vec], so that short contents do not
// allocate. It can be used anywhere an [io.Writer] is expected.
//
// A zero Bytes is empty and ready to use.
type Bytes[A any] struct {
	Vec[byte, A]
}

var (
	_ io.Writer       = (*Bytes[[64]byte])(nil)
	_ io.ByteWriter   = (*Bytes[[64]byte])(nil)
	_ io.StringWriter = (*Bytes[[64]byte])(nil)
	_ io.ReaderFrom   = (*Bytes[[64]byte])(nil)
	_ io.WriterTo     = (*Bytes[[64]byte])(nil)
)

// Write implements [io.Writer]. It never returns an error.
func (b *Bytes[A]) Write(p []byte) (int, error) {
	b.ExtendFromSlice(p)
	return len(p), nil
}

// WriteByte implements [io.ByteWriter]. It never returns an error.
func (b *Bytes[A]) WriteByte(c byte) error {
	b.Push(c)
	return nil
}

// WriteString implements [io.StringWriter]. It never returns an error.
func (b *Bytes[A]) WriteString(s string) (int, error) {
	b.ExtendFromSlice(unsafex.StringBytes(s))
	return len(s), nil
}

// ReadFrom implements [io.ReaderFrom], appending everything r produces until
// [io.EOF].
//
// The returned error is whatever r returned, other than io.EOF. Bytes read
// before the error are kept.
func (b *Bytes[A]) ReadFrom(r io.Reader) (int64, error) {
	var total int64
	for {
		if b.len == b.Cap() {
			b.Reserve(minRead)
		}

		n, err := r.Read(b.buf()[b.len:])
		if n < 0 {
			panic(errNegativeRead)
		}
		b.len += n
		total += int64(n)

		if errors.Is(err, io.EOF) {
			return total, nil
		}
		if err != nil {
			return total, err
		}
	}
}

// WriteTo implements [io.WriterTo]. Unlike [bytes.Buffer.WriteTo], it does not
// consume b's contents.
func (b *Bytes[A]) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(b.Slice())
	if err == nil && n != b.len {
		err = io.ErrShortWrite
	}
	return int64(n), err
}

// String returns b's contents as a string.
func (b *Bytes[A]) String() string {
	return string(b.Slice())
}

// Sum64 returns the XXH3 hash of b's contents.
//
// This is the same as hashing b.Slice() directly, so the hash does not depend
// on whether b is spilled.
func (b *Bytes[A]) Sum64() uint64 {
	return xxh3.Hash(b.Slice())
}

// Format implements [fmt.Formatter].
//
// The string verbs (%s, %q, %x, %X) format b's contents as text, like they
// would a []byte; every other verb formats it as a [Vec].
func (b Bytes[A]) Format(out fmt.State, verb rune) {
	switch verb {
	case 's', 'q', 'x', 'X':
		fmt.Fprintf(out, fmt.FormatString(out, verb), b.Slice())
	default:
		b.Vec.Format(out, verb)
	}
}
