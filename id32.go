//
//  Copyright 2012 Dmitry Kolesnikov, All Rights Reserved
//
//  Licensed under the Apache License, Version 2.0 (the "License");
//  you may not use this file except in compliance with the License.
//  You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
//  Unless required by applicable law or agreed to in writing, software
//  distributed under the License is distributed on an "AS IS" BASIS,
//  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//  See the License for the specific language governing permissions and
//  limitations under the License.
//

package linkid

import (
	"fmt"
	"time"
)

// Bit widths of 32-bit composite identifier fractions
const (
	TimeBits32 = 20
	NodeBits32 = 5
	SeqBits32  = 7
)

// ID32 is 32-bit composite identifier.
//
//	   20 bit       5 bit   7 bit
//	|------------|-------|-------|
//	     ⟨𝒕⟩         ⟨𝒍⟩     ⟨𝒔⟩
//
// ⟨𝒕⟩ wraps after 2²⁰ milliseconds (about 17 minutes). The identifier is not
// suitable as long-lived stable key.
type ID32 uint32

// Make32 packs ⟨𝒕, 𝒍, 𝒔⟩ into 32-bit identifier. Each fraction is masked
// to its width before packing.
func Make32(t, node, seq uint64) ID32 {
	return ID32(Mask(t, TimeBits32)<<(NodeBits32+SeqBits32) |
		Mask(node, NodeBits32)<<SeqBits32 |
		Mask(seq, SeqBits32))
}

// Time returns ⟨𝒕⟩ fraction, milliseconds since Epoch modulo 2²⁰
func (uid ID32) Time() uint64 {
	return Mask(uint64(uid)>>(NodeBits32+SeqBits32), TimeBits32)
}

// Node returns ⟨𝒍⟩ fraction
func (uid ID32) Node() uint64 {
	return Mask(uint64(uid)>>SeqBits32, NodeBits32)
}

// Seq returns ⟨𝒔⟩ fraction
func (uid ID32) Seq() uint64 {
	return Mask(uint64(uid), SeqBits32)
}

// Unix converts ⟨𝒕⟩ fraction to wall-clock time within first window since Epoch
func (uid ID32) Unix() time.Time {
	return time.UnixMilli(int64(uid.Time() + Epoch))
}

// Before returns true if uid is less than x
func (uid ID32) Before(x ID32) bool { return uid < x }

// After returns true if uid is greater than x
func (uid ID32) After(x ID32) bool { return uid > x }

// Bytes encodes identifier to big-endian byte slice
func (uid ID32) Bytes() []byte {
	return split(uint64(uid), 32, 8)
}

// String encodes identifier to lexicographically sortable string of 6 symbols
func (uid ID32) String() string {
	return encode64(split(uint64(uid), 36, 6))
}

// MarshalText encodes identifier to lexicographically sortable string
func (uid ID32) MarshalText() ([]byte, error) {
	return []byte(uid.String()), nil
}

// UnmarshalText decodes lexicographically sortable string
func (uid *ID32) UnmarshalText(b []byte) (err error) {
	*uid, err = FromString32(string(b))
	return
}

// FromString32 decodes identifier from lexicographically sortable string
func FromString32(val string) (ID32, error) {
	cells, err := decode64(val)
	if err != nil {
		return 0, err
	}

	uid, err := fold(32, 36, 6, cells)
	if err != nil {
		return 0, err
	}

	return ID32(uid), nil
}

// MustFromString32 decodes identifier, it panics if string is malformed
func MustFromString32(val string) ID32 {
	uid, err := FromString32(val)
	if err != nil {
		panic(err)
	}
	return uid
}

// FromBytes32 decodes identifier from big-endian byte slice
func FromBytes32(val []byte) (ID32, error) {
	if len(val) != 4 {
		return 0, fmt.Errorf("malformed 32-bit identifier: %v", val)
	}

	uid, err := fold(32, 32, 8, val)
	return ID32(uid), err
}
