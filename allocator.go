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

// Allocator mints composite identifiers and surrogate keys. Sequences are
// process-wide for the allocator and are never reset when ⟨𝒕⟩ advances, they
// are masked to ⟨𝒔⟩ width on use only. More than 2ˢ allocations within single
// millisecond repeats ⟨𝒔⟩ values used earlier in the same millisecond.
//
// The application owns a single Allocator and passes it to collaborators.
// It is safe for concurrent use.
type Allocator struct {
	clock Chronos
	seq64 Counter64
	seq32 Counter32
	key64 Counter64
	key32 Counter32
}

// NewAllocator creates allocator on top of clock
func NewAllocator(clock Chronos) *Allocator {
	return &Allocator{clock: clock}
}

// ID64 generates 64-bit composite identifier.
//
//	1bit      41 bit          10 bit   12 bit
//	|-|--------------------|--------|-------|
//	 0          ⟨𝒕⟩             ⟨𝒍⟩      ⟨𝒔⟩
func (a *Allocator) ID64() ID64 {
	return Make64(a.clock.T(), a.clock.L(), a.seq64.Next())
}

// ID32 generates 32-bit composite identifier.
//
//	   20 bit       5 bit   7 bit
//	|------------|-------|-------|
//	     ⟨𝒕⟩         ⟨𝒍⟩     ⟨𝒔⟩
func (a *Allocator) ID32() ID32 {
	return Make32(a.clock.T(), a.clock.L(), uint64(a.seq32.Next()))
}

// Key64 returns next 64-bit surrogate key
func (a *Allocator) Key64() uint64 { return a.key64.Next() }

// Key32 returns next 32-bit surrogate key
func (a *Allocator) Key32() uint32 { return a.key32.Next() }

// Keys64 exposes counter behind Key64 so that registries share key space
func (a *Allocator) Keys64() *Counter64 { return &a.key64 }
