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
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/xid"
	"github.com/shirou/gopsutil/host"
)

var (
	hostOnce sync.Once
	hostNode uint64
)

// HostNode returns ⟨𝒍⟩ node identity derived from host machine. The value is
// computed once per process and cached, it is safe for concurrent use.
//
// The identity is a hash of hardware UUID. Hosts that do not expose one fall
// back to machine id used by xid and finally to random value.
func HostNode() uint64 {
	hostOnce.Do(func() {
		hostNode = deriveHostNode()
	})
	return hostNode
}

func deriveHostNode() uint64 {
	if id, err := host.HostID(); err == nil && id != "" {
		return nodeFromHostID(id)
	}

	if machine := xid.New().Machine(); len(machine) != 0 {
		return hashNode(machine)
	}

	return randomNode()
}

// the same hardware UUID is reported in different cases across platforms
func nodeFromHostID(id string) uint64 {
	if u, err := uuid.Parse(id); err == nil {
		return hashNode(u[:])
	}

	return hashNode([]byte(strings.ToLower(strings.TrimSpace(id))))
}
