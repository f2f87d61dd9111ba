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

package links

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Snapshot is persisted representation of registry, id → record
type Snapshot map[uint64]Record

func (r *Registry) snapshot() Snapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snap := make(Snapshot, len(r.records))
	for id, rec := range r.records {
		snap[id] = rec.clone()
	}
	return snap
}

// load replaces registry state with snapshot. The url → id index is rebuilt
// by single pass over records in ascending id order. Duplicate URLs are not
// expected in snapshot, the index keeps one of them.
func (r *Registry) load(snap Snapshot) {
	ids := make([]uint64, 0, len(snap))
	for id := range snap {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	index := make(map[string]uint64, len(snap))
	records := make(map[uint64]*Record, len(snap))
	for _, id := range ids {
		rec := snap[id]
		rec.ID = id
		if rec.Visits == nil {
			rec.Visits = []time.Time{}
		}
		records[id] = &rec
		index[rec.URL] = id
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.defaults()
	r.records = records
	r.ids = index
	if len(ids) > 0 {
		r.counter.Seed(ids[len(ids)-1] + 1)
	}

	if len(index) != len(records) {
		r.logger.Warn("link snapshot contains duplicate urls",
			zap.Int("records", len(records)),
			zap.Int("urls", len(index)),
		)
	}
	r.logger.Debug("link snapshot loaded", zap.Int("records", len(records)))
}

// MarshalJSON encodes registry as id → record mapping
func (r *Registry) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.snapshot())
}

// UnmarshalJSON decodes id → record mapping and rebuilds url index.
// Registry is unchanged if decoding fails.
func (r *Registry) UnmarshalJSON(b []byte) error {
	var snap Snapshot
	if err := json.Unmarshal(b, &snap); err != nil {
		return fmt.Errorf("links: decode snapshot: %w", err)
	}

	r.load(snap)
	return nil
}

// MarshalYAML encodes registry as id → record mapping
func (r *Registry) MarshalYAML() (any, error) {
	return r.snapshot(), nil
}

// UnmarshalYAML decodes id → record mapping and rebuilds url index.
// Registry is unchanged if decoding fails.
func (r *Registry) UnmarshalYAML(node *yaml.Node) error {
	var snap Snapshot
	if err := node.Decode(&snap); err != nil {
		return fmt.Errorf("links: decode snapshot: %w", err)
	}

	r.load(snap)
	return nil
}
