/*
Copyright 2011-2026 Frederic Langlet
Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
you may obtain a copy of the License at

                http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package wire pins down the one detail the coder itself leaves
// opaque: how a word stream returned by FinishEncoding is turned into
// bytes. It frames each 32-bit word little-endian, appends a per-word
// CRC-8 checksum so a single damaged word is caught immediately
// instead of silently corrupting every symbol popped after it, and
// trails the whole stream with an XXHash64 digest as a cheap
// end-to-end integrity check.
package wire

import (
	"encoding/binary"

	"github.com/cockroachdb/errors"
	"github.com/quantiled/rans/hash"
	"github.com/quantiled/rans/internal"
	"github.com/sigurn/crc8"
)

// ErrCorruptStream is a framing-layer error, distinct from the coder's
// own ErrUnderflow/ErrNotFullyConsumed: it signals that the bytes
// handed to Decode do not match what Encode would have produced, which
// the coder has no way to detect on its own since it only ever sees
// already-validated words.
var ErrCorruptStream = errors.New("wire: corrupt stream")

var crcTable = crc8.MakeTable(crc8.CRC8)

// wordSize is the encoded byte width of one rANS word plus its
// checksum byte.
const wordSize = 4 + 1

// Encode serializes words as produced by a Coder's FinishEncoding into
// internal.StreamMagic-prefixed bytes: a 4-byte magic header, then one
// little-endian uint32 plus a trailing CRC-8 byte per word, then an
// 8-byte little-endian XXHash64 digest of everything written before
// it (magic header included).
func Encode(words []uint32) []byte {
	out := make([]byte, 0, 4+len(words)*wordSize+8)
	out = binary.LittleEndian.AppendUint32(out, internal.StreamMagic)

	var wordBuf [4]byte

	for _, w := range words {
		binary.LittleEndian.PutUint32(wordBuf[:], w)
		out = append(out, wordBuf[:]...)
		out = append(out, crc8.Checksum(wordBuf[:], crcTable))
	}

	digest := hash.NewStreamDigest(0)
	digest.Write(out)
	out = binary.LittleEndian.AppendUint64(out, digest.Sum64())

	return out
}

// Decode reverses Encode, validating the magic header, every per-word
// checksum, and the trailing digest before returning the recovered
// word slice. Any mismatch returns ErrCorruptStream wrapped with the
// detail of what failed, without attempting partial recovery: the
// coder's own PopSymbol/FinishDecoding already distinguish a clean
// stream from a truncated or mismatched one, so wire's only job is to
// catch corruption the coder would otherwise have no way to notice.
func Decode(data []byte) ([]uint32, error) {
	if len(data) < 4+8 {
		return nil, errors.Wrapf(ErrCorruptStream, "stream too short (%d bytes)", len(data))
	}

	body, digestBytes := data[:len(data)-8], data[len(data)-8:]

	digest := hash.NewStreamDigest(0)
	digest.Write(body)

	if digest.Sum64() != binary.LittleEndian.Uint64(digestBytes) {
		return nil, errors.Wrapf(ErrCorruptStream, "whole-stream digest mismatch")
	}

	if len(body) < 4 {
		return nil, errors.Wrapf(ErrCorruptStream, "missing magic header")
	}

	if magic := binary.LittleEndian.Uint32(body[:4]); magic != internal.StreamMagic {
		return nil, errors.Wrapf(ErrCorruptStream, "bad magic header %#x", magic)
	}

	payload := body[4:]

	if len(payload)%wordSize != 0 {
		return nil, errors.Wrapf(ErrCorruptStream, "payload length %d not a multiple of word size %d", len(payload), wordSize)
	}

	n := len(payload) / wordSize
	words := make([]uint32, n)

	for i := 0; i < n; i++ {
		chunk := payload[i*wordSize : (i+1)*wordSize]
		wordBytes, checksum := chunk[:4], chunk[4]

		if got := crc8.Checksum(wordBytes, crcTable); got != checksum {
			return nil, errors.Wrapf(ErrCorruptStream, "word %d checksum mismatch (got %#x, want %#x)", i, got, checksum)
		}

		words[i] = binary.LittleEndian.Uint32(wordBytes)
	}

	return words, nil
}
