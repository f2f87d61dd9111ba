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

package engagement

import (
	"encoding/json"
	"fmt"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Snapshot is persisted representation of registry, id → score
type Snapshot map[uint64]Score

func (r *Registry) snapshot() Snapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snap := make(Snapshot, len(r.scores))
	for id, score := range r.scores {
		snap[id] = *score
	}
	return snap
}

func (r *Registry) load(snap Snapshot) {
	scores := make(map[uint64]*Score, len(snap))
	for id, score := range snap {
		scores[id] = &score
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.defaults()
	r.scores = scores
	r.logger.Debug("engagement snapshot loaded", zap.Int("scores", len(scores)))
}

// MarshalJSON encodes registry as id → score mapping
func (r *Registry) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.snapshot())
}

// UnmarshalJSON decodes id → score mapping.
// Registry is unchanged if decoding fails.
func (r *Registry) UnmarshalJSON(b []byte) error {
	var snap Snapshot
	if err := json.Unmarshal(b, &snap); err != nil {
		return fmt.Errorf("engagement: decode snapshot: %w", err)
	}

	r.load(snap)
	return nil
}

// MarshalYAML encodes registry as id → score mapping
func (r *Registry) MarshalYAML() (any, error) {
	return r.snapshot(), nil
}

// UnmarshalYAML decodes id → score mapping.
// Registry is unchanged if decoding fails.
func (r *Registry) UnmarshalYAML(node *yaml.Node) error {
	var snap Snapshot
	if err := node.Decode(&snap); err != nil {
		return fmt.Errorf("engagement: decode snapshot: %w", err)
	}

	r.load(snap)
	return nil
}
