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
	"sort"
	"sync"

	"github.com/fogfish/linkid/links"
	"go.uber.org/zap"
)

// Resolver allocates link id for URL, see links.Registry
type Resolver interface {
	EnsureID(url string) uint64
}

// Ranking is link id paired with its derived score
type Ranking struct {
	ID    uint64  `json:"id" yaml:"id"`
	Value float64 `json:"value" yaml:"value"`
}

// Registry maps link id to engagement score. Scores are created lazily on
// first access and never removed.
//
// Lookups and inserts are safe for concurrent use. Score returned by ScoreFor
// is shared, concurrent writers should mutate it through Update.
type Registry struct {
	mu     sync.RWMutex
	scores map[uint64]*Score
	links  Resolver
	logger *zap.Logger
}

// Option configures Registry
type Option func(*Registry)

// WithLogger configures logger, registry is silent by default
func WithLogger(logger *zap.Logger) Option {
	return func(r *Registry) {
		r.logger = logger
	}
}

// New creates empty registry, resolver maps URLs to ids. Registry owns
// private links.Registry if resolver is nil.
func New(resolver Resolver, opts ...Option) *Registry {
	r := &Registry{links: resolver}
	for _, opt := range opts {
		opt(r)
	}

	r.defaults()
	return r
}

func (r *Registry) defaults() {
	if r.scores == nil {
		r.scores = make(map[uint64]*Score)
	}
	if r.logger == nil {
		r.logger = zap.NewNop()
	}
	if r.links == nil {
		r.links = links.New(links.WithLogger(r.logger))
	}
}

// ScoreFor returns score of link, zero score is inserted if link is unknown
func (r *Registry) ScoreFor(id uint64) *Score {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.scoreFor(id)
}

func (r *Registry) scoreFor(id uint64) *Score {
	r.defaults()
	if score, has := r.scores[id]; has {
		return score
	}

	score := &Score{}
	r.scores[id] = score
	r.logger.Debug("engagement score created", zap.Uint64("id", id))
	return score
}

// ScoreForURL resolves URL to link id and returns its score
func (r *Registry) ScoreForURL(url string) *Score {
	r.mu.Lock()
	r.defaults()
	resolver := r.links
	r.mu.Unlock()

	return r.ScoreFor(resolver.EnsureID(url))
}

// Update mutates score of link under registry lock
func (r *Registry) Update(id uint64, f func(*Score)) {
	r.mu.Lock()
	defer r.mu.Unlock()

	f(r.scoreFor(id))
}

// Snapshot returns copy of score, it does not create missing one
func (r *Registry) Snapshot(id uint64) (Score, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	score, has := r.scores[id]
	if !has {
		return Score{}, false
	}
	return *score, true
}

// Len returns number of scores
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.scores)
}

// Ranked orders candidate links by descending score, ties are ordered by id.
// Links without score rank as zero.
func (r *Registry) Ranked(ids ...uint64) []Ranking {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seq := make([]Ranking, 0, len(ids))
	for _, id := range ids {
		rank := Ranking{ID: id}
		if score, has := r.scores[id]; has {
			rank.Value = score.Value()
		}
		seq = append(seq, rank)
	}

	sortRanking(seq)
	return seq
}

// Top returns n best scored links, all of them if n is not positive
func (r *Registry) Top(n int) []Ranking {
	r.mu.RLock()
	seq := make([]Ranking, 0, len(r.scores))
	for id, score := range r.scores {
		seq = append(seq, Ranking{ID: id, Value: score.Value()})
	}
	r.mu.RUnlock()

	sortRanking(seq)
	if n > 0 && n < len(seq) {
		seq = seq[:n]
	}
	return seq
}

func sortRanking(seq []Ranking) {
	sort.Slice(seq, func(i, j int) bool {
		if seq[i].Value != seq[j].Value {
			return seq[i].Value > seq[j].Value
		}
		return seq[i].ID < seq[j].ID
	})
}
