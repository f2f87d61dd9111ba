/*

  Copyright 2012 Dmitry Kolesnikov, All Rights Reserved

  Licensed under the Apache License, Version 2.0 (the "License");
  you may not use this file except in compliance with the License.
  You may obtain a copy of the License at

      http://www.apache.org/licenses/LICENSE-2.0

  Unless required by applicable law or agreed to in writing, software
  distributed under the License is distributed on an "AS IS" BASIS,
  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
  See the License for the specific language governing permissions and
  limitations under the License.

*/

/*
Package linkid allocates compact, roughly sortable identifiers for elements of
knowledge graph: notes, browsing events and visited resources. Sub-packages
collapse visited URLs into canonical numeric identity (package links) and
rank them by engagement (package engagement).

# Identity Schema

Identifier is a triple ⟨𝒕, 𝒍, 𝒔⟩ packed into fixed width unsigned integer:

↣ ⟨𝒕⟩ milliseconds since Epoch (2015-01-01T00:00:00Z) read from monotonic
clock anchored to wall-clock time.

↣ ⟨𝒍⟩ node identity, a hash of host hardware UUID computed once per process.
It reduces collisions across independent processes but does not guarantee it.

↣ ⟨𝒔⟩ sequence, a process-wide counter incremented on every allocation.

Two variants are supported:

	1bit      41 bit          10 bit   12 bit
	|-|--------------------|--------|-------|   ID64
	 0          ⟨𝒕⟩             ⟨𝒍⟩      ⟨𝒔⟩

	   20 bit       5 bit   7 bit
	|------------|-------|-------|               ID32
	     ⟨𝒕⟩         ⟨𝒍⟩     ⟨𝒔⟩

Every fraction is masked to its width, overflow is silent truncation. ⟨𝒕⟩ of
ID64 wraps after 2⁴¹ ms (about 69 years), ⟨𝒕⟩ of ID32 wraps after 2²⁰ ms.
ID32 is a short-lived handle, never a persistent key.

Unlike Twitter Snowflake, the sequence is not reset when the clock ticks. It
keeps incrementing and only its lower bits are used. Allocating more than
2¹² (ID64) or 2⁷ (ID32) identifiers within one millisecond reuses ⟨𝒔⟩ values,
identifiers collide if ⟨𝒕⟩ and ⟨𝒍⟩ coincide as well.

Identifiers are not cryptographically strong.

# Counters

Counter32 and Counter64 are plain monotonic counters for surrogate keys. They
start at 0, are not masked and wrap at the integer width.

# Usage

	clock := linkid.NewClock()
	alloc := linkid.NewAllocator(clock)

	alloc.ID64()
	alloc.ID32()
	alloc.Key64()
*/
package linkid
