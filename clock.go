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
	"crypto/rand"
	"crypto/sha256"
	"io"
	"os"
	"time"
)

// Epoch is the zero point of ⟨𝒕⟩, 2015-01-01T00:00:00Z in unix milliseconds
const Epoch = 1420070400000

// Chronos is an abstraction of clock used by allocators.
type Chronos interface {
	// Node identity ⟨𝒍⟩ of the allocator process
	L() uint64
	// Milliseconds elapsed since Epoch ⟨𝒕⟩, wraps silently before Epoch
	T() uint64
}

// Clock type, the default one
type clock struct {
	// Node identity ⟨𝒍⟩
	location uint64
	// Unix milliseconds generator
	ticker func() uint64
}

func (clock clock) L() uint64 { return clock.location }
func (clock clock) T() uint64 { return clock.ticker() - Epoch }

// Creates instance of clock, the node identity is derived from host by default
func NewClock(opts ...Config) Chronos {
	clock := &clock{}
	defopt := []Config{WithClockUnix(), WithNodeHost()}

	for _, opt := range append(defopt, opts...) {
		opt(clock)
	}
	return clock
}

// Create mock instance of clock, ⟨𝒕⟩ and ⟨𝒍⟩ are zero.
func NewClockMock(opts ...Config) Chronos {
	clock := &clock{
		location: 0,
		ticker:   func() uint64 { return Epoch },
	}

	for _, opt := range opts {
		opt(clock)
	}
	return clock
}

// Config option of default clock behavior.
// Config options allows to define custom strategies to generate
// ⟨𝒍⟩ node or ⟨𝒕⟩ timestamp.
type Config func(*clock)

// WithNodeID explicitly configures ⟨𝒍⟩ node identity
func WithNodeID(id uint64) Config {
	return func(clock *clock) {
		clock.location = id & 0x00000000ffffffff
	}
}

// EnvNodeID is environment variable consumed by WithNodeFromEnv
const EnvNodeID = "CONFIG_LINKID_NODE_ID"

// WithNodeFromEnv configures ⟨𝒍⟩ node identity using env variable.
//
// CONFIG_LINKID_NODE_ID - defines node id as a string
func WithNodeFromEnv() Config {
	return func(clock *clock) {
		clock.location = hashNode([]byte(os.Getenv(EnvNodeID)))
	}
}

// WithNodeHost configures ⟨𝒍⟩ node identity from host machine, see HostNode
func WithNodeHost() Config {
	return func(clock *clock) {
		clock.location = HostNode()
	}
}

// WithNodeRandom configures ⟨𝒍⟩ node identity using cryptographic random generator
func WithNodeRandom() Config {
	return func(clock *clock) {
		clock.location = randomNode()
	}
}

// WithClock configures a custom unix milliseconds generator function
func WithClock(ticker func() uint64) Config {
	return func(clock *clock) {
		clock.ticker = ticker
	}
}

// WithClockUnix configures monotonic milliseconds clock anchored to
// wall-clock time at the moment of configuration.
func WithClockUnix() Config {
	return func(clock *clock) {
		clock.ticker = unixtime(time.Now())
	}
}

// time.Since reads the monotonic clock, wall-clock steps do not affect ⟨𝒕⟩
func unixtime(base time.Time) func() uint64 {
	wall := base.UnixMilli()
	return func() uint64 {
		return uint64(wall + time.Since(base).Milliseconds())
	}
}

func hashNode(b []byte) uint64 {
	hash := sha256.Sum256(b)
	return uint64(hash[0])<<24 | uint64(hash[1])<<16 | uint64(hash[2])<<8 | uint64(hash[3])
}

func randomNode() uint64 {
	bytes := make([]byte, 8)
	if _, err := io.ReadFull(rand.Reader, bytes); err != nil {
		panic(err.Error())
	}

	node := uint64(0x0)
	for i, b := range bytes {
		node = node | uint64(b)<<(64-8*(i+1))
	}
	return node & 0x00000000ffffffff
}
