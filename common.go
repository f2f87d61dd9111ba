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

import "fmt"

// Mask truncates value v to its lower b bits. Truncation is unconditional,
// values wider than b bits wrap silently.
func Mask(v uint64, b uint) uint64 {
	if b >= 64 {
		return v
	}
	return v & (1<<b - 1)
}

// split decomposes value to cells of n bits. The value is treated as
// size-bit binary, size ≥ 64 pads the most significant cell with zeros.
func split(val, size, n uint64) (bytes []byte) {
	bytes = make([]byte, size/n)
	mask := uint64(1<<n) - 1
	i := 0

	for a := size; a >= n; a -= n {
		b := a - n
		if b < 64 {
			bytes[i] = byte(val >> b & mask)
		}
		i++
	}

	return
}

// fold composes value from cells of n bits. The operation is inverse to split.
// Bits that do not fit into width-bit value are reported as error.
func fold(width, size, n uint64, bytes []byte) (val uint64, err error) {
	if uint64(len(bytes)) != size/n {
		return 0, fmt.Errorf("malformed identifier: expected %d cells, got %d", size/n, len(bytes))
	}

	mask := uint64(1<<n) - 1
	i := 0

	for a := size; a >= n; a -= n {
		b := a - n
		cell := uint64(bytes[i]) & mask
		switch {
		case b >= width && cell != 0:
			return 0, fmt.Errorf("malformed identifier: %d-bit overflow", width)
		case b < width && b+n > width && cell>>(width-b) != 0:
			return 0, fmt.Errorf("malformed identifier: %d-bit overflow", width)
		case b < 64:
			val |= cell << b
		}
		i++
	}

	return val, nil
}
