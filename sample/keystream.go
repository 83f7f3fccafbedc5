/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package sample

import (
	"encoding/binary"
	"math/rand/v2"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/salsa20"
)

// keyStreamBlock is the number of bytes generated by one call
// to the salsa20 core.
const keyStreamBlock = 512

// KeyStream is a deterministic pseudo-random source. Its output is
// the salsa20 keystream for the given key, using consecutive nonces
// for consecutive blocks. Two KeyStreams with the same key produce
// the same sequence.
//
// KeyStream implements rand.Source and is not safe for concurrent use.
type KeyStream struct {
	key   *[32]byte
	nonce uint64
	buf   []byte
	off   int
}

// NewKeyStream returns a KeyStream determined by key.
func NewKeyStream(key *[32]byte) *KeyStream {
	k := *key
	return &KeyStream{
		key: &k,
		buf: make([]byte, keyStreamBlock),
		off: keyStreamBlock,
	}
}

// Uint64 returns the next 8 bytes of the keystream.
func (s *KeyStream) Uint64() uint64 {
	if s.off+8 > len(s.buf) {
		s.refill()
	}
	v := binary.LittleEndian.Uint64(s.buf[s.off:])
	s.off += 8
	return v
}

func (s *KeyStream) refill() {
	in := make([]byte, keyStreamBlock) // input is initialized to zeros
	nonce := make([]byte, 8)
	binary.BigEndian.PutUint64(nonce, s.nonce)
	salsa20.XORKeyStream(s.buf, in, nonce, s.key)
	s.nonce++
	s.off = 0
}

// NewStream returns a *rand.Rand driven by a KeyStream for key.
func NewStream(key *[32]byte) *rand.Rand {
	return rand.New(NewKeyStream(key))
}

// DeriveKey derives a stream key from a seed and a label, so that
// differently labelled streams from the same seed are independent.
func DeriveKey(seed int64, label string) *[32]byte {
	msg := make([]byte, 8, 8+len(label))
	binary.LittleEndian.PutUint64(msg, uint64(seed))
	msg = append(msg, label...)
	key := blake2b.Sum256(msg)
	return &key
}

// NewSeededStream is shorthand for NewStream(DeriveKey(seed, label)).
func NewSeededStream(seed int64, label string) *rand.Rand {
	return NewStream(DeriveKey(seed, label))
}
