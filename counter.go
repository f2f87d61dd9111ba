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

import "sync/atomic"

// Counter64 is monotonic 64-bit counter. The zero value is ready to use and
// starts at 0. The counter is not masked, it wraps at math.MaxUint64 without
// any overflow guard.
type Counter64 struct{ value atomic.Uint64 }

// Next returns current value of counter then increments it
func (c *Counter64) Next() uint64 {
	return c.value.Add(1) - 1
}

// Value returns current value of counter without increment
func (c *Counter64) Value() uint64 {
	return c.value.Load()
}

// Seed moves counter forward to at least v, it never moves counter backward.
func (c *Counter64) Seed(v uint64) {
	for {
		cur := c.value.Load()
		if cur >= v || c.value.CompareAndSwap(cur, v) {
			return
		}
	}
}

// Counter32 is monotonic 32-bit counter. The zero value is ready to use and
// starts at 0. The counter wraps at math.MaxUint32.
type Counter32 struct{ value atomic.Uint32 }

// Next returns current value of counter then increments it
func (c *Counter32) Next() uint32 {
	return c.value.Add(1) - 1
}

// Value returns current value of counter without increment
func (c *Counter32) Value() uint32 {
	return c.value.Load()
}

// Seed moves counter forward to at least v, it never moves counter backward.
func (c *Counter32) Seed(v uint32) {
	for {
		cur := c.value.Load()
		if cur >= v || c.value.CompareAndSwap(cur, v) {
			return
		}
	}
}
