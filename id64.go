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

// Bit widths of 64-bit composite identifier fractions
const (
	TimeBits64 = 41
	NodeBits64 = 10
	SeqBits64  = 12
)

// ID64 is 64-bit composite identifier. The most significant bit is always 0.
//
//	1bit      41 bit          10 bit   12 bit
//	|-|--------------------|--------|-------|
//	 0          ⟨𝒕⟩             ⟨𝒍⟩      ⟨𝒔⟩
//
// ⟨𝒕⟩ wraps after 2⁴¹ milliseconds since Epoch (about 69 years).
type ID64 uint64

// Make64 packs ⟨𝒕, 𝒍, 𝒔⟩ into 64-bit identifier. Each fraction is masked
// to its width before packing.
func Make64(t, node, seq uint64) ID64 {
	return ID64(Mask(t, TimeBits64)<<(NodeBits64+SeqBits64) |
		Mask(node, NodeBits64)<<SeqBits64 |
		Mask(seq, SeqBits64))
}

// Time returns ⟨𝒕⟩ fraction, milliseconds since Epoch
func (uid ID64) Time() uint64 {
	return Mask(uint64(uid)>>(NodeBits64+SeqBits64), TimeBits64)
}

// Node returns ⟨𝒍⟩ fraction
func (uid ID64) Node() uint64 {
	return Mask(uint64(uid)>>SeqBits64, NodeBits64)
}

// Seq returns ⟨𝒔⟩ fraction
func (uid ID64) Seq() uint64 {
	return Mask(uint64(uid), SeqBits64)
}

// Unix converts ⟨𝒕⟩ fraction to wall-clock time
func (uid ID64) Unix() time.Time {
	return time.UnixMilli(int64(uid.Time() + Epoch))
}

// Before returns true if uid is less than x
func (uid ID64) Before(x ID64) bool { return uid < x }

// After returns true if uid is greater than x
func (uid ID64) After(x ID64) bool { return uid > x }

// Bytes encodes identifier to big-endian byte slice
func (uid ID64) Bytes() []byte {
	return split(uint64(uid), 64, 8)
}

// String encodes identifier to lexicographically sortable string of 11 symbols
func (uid ID64) String() string {
	return encode64(split(uint64(uid), 66, 6))
}

// MarshalText encodes identifier to lexicographically sortable string
func (uid ID64) MarshalText() ([]byte, error) {
	return []byte(uid.String()), nil
}

// UnmarshalText decodes lexicographically sortable string
func (uid *ID64) UnmarshalText(b []byte) (err error) {
	*uid, err = FromString64(string(b))
	return
}

// FromString64 decodes identifier from lexicographically sortable string
func FromString64(val string) (ID64, error) {
	cells, err := decode64(val)
	if err != nil {
		return 0, err
	}

	uid, err := fold(64, 66, 6, cells)
	if err != nil {
		return 0, err
	}

	return ID64(uid), nil
}

// MustFromString64 decodes identifier, it panics if string is malformed
func MustFromString64(val string) ID64 {
	uid, err := FromString64(val)
	if err != nil {
		panic(err)
	}
	return uid
}

// FromBytes64 decodes identifier from big-endian byte slice
func FromBytes64(val []byte) (ID64, error) {
	if len(val) != 8 {
		return 0, fmt.Errorf("malformed 64-bit identifier: %v", val)
	}

	uid, err := fold(64, 64, 8, val)
	return ID64(uid), err
}
