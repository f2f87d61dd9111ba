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

// Package links collapses visited URLs into canonical numeric identity and
// accumulates visit history per link.
package links

import (
	"errors"
	"net/url"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fogfish/linkid"
	"go.uber.org/zap"
)

// ErrIntegrityViolation is logged when link record is missing right after its
// id has been ensured. It never reaches the caller.
var ErrIntegrityViolation = errors.New("links: record missing after id allocation")

// InternalScheme is URL scheme of application-internal resources
const InternalScheme = "beam"

// Record is visit history of single link
type Record struct {
	ID     uint64      `json:"id" yaml:"id"`
	URL    string      `json:"url" yaml:"url"`
	Visits []time.Time `json:"visits" yaml:"visits"`
}

func (r *Record) clone() Record {
	return Record{
		ID:     r.ID,
		URL:    r.URL,
		Visits: append([]time.Time(nil), r.Visits...),
	}
}

// Registry is bidirectional map between URL and link id. Ids are allocated
// from monotonic counter and stay stable for the registry lifetime.
//
// All operations are safe for concurrent use. Check-then-insert sequences run
// under single lock.
type Registry struct {
	mu      sync.RWMutex
	ids     map[string]uint64
	records map[uint64]*Record
	counter *linkid.Counter64
	now     func() time.Time
	schemes map[string]struct{}
	logger  *zap.Logger
}

// Option configures Registry
type Option func(*Registry)

// WithLogger configures logger, registry is silent by default
func WithLogger(logger *zap.Logger) Option {
	return func(r *Registry) {
		r.logger = logger
	}
}

// WithClock configures source of visit timestamps
func WithClock(now func() time.Time) Option {
	return func(r *Registry) {
		r.now = now
	}
}

// WithCounter shares counter of link ids, e.g. linkid.Allocator.Keys64
func WithCounter(counter *linkid.Counter64) Option {
	return func(r *Registry) {
		r.counter = counter
	}
}

// WithInternalSchemes overrides schemes classified as internal
func WithInternalSchemes(schemes ...string) Option {
	return func(r *Registry) {
		r.schemes = make(map[string]struct{}, len(schemes))
		for _, scheme := range schemes {
			r.schemes[strings.ToLower(scheme)] = struct{}{}
		}
	}
}

// New creates empty registry
func New(opts ...Option) *Registry {
	r := &Registry{}
	for _, opt := range opts {
		opt(r)
	}

	r.defaults()
	return r
}

// zero value of Registry is ready to use, fields are filled on first write
func (r *Registry) defaults() {
	if r.ids == nil {
		r.ids = make(map[string]uint64)
	}
	if r.records == nil {
		r.records = make(map[uint64]*Record)
	}
	if r.counter == nil {
		r.counter = new(linkid.Counter64)
	}
	if r.now == nil {
		r.now = func() time.Time { return time.Now().UTC().Round(0) }
	}
	if r.schemes == nil {
		r.schemes = map[string]struct{}{InternalScheme: {}}
	}
	if r.logger == nil {
		r.logger = zap.NewNop()
	}
}

// IDFor looks up id of URL
func (r *Registry) IDFor(url string) (uint64, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, has := r.ids[url]
	return id, has
}

// EnsureID returns id of URL, allocating new one with empty visit history
// if URL is unknown.
func (r *Registry) EnsureID(url string) uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.ensureID(url)
}

func (r *Registry) ensureID(url string) uint64 {
	r.defaults()
	if id, has := r.ids[url]; has {
		return id
	}

	id := r.counter.Next()
	r.records[id] = &Record{ID: id, URL: url, Visits: []time.Time{}}
	r.ids[url] = id
	return id
}

// Record returns copy of link record
func (r *Registry) Record(id uint64) (Record, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, has := r.records[id]
	if !has {
		return Record{}, false
	}
	return rec.clone(), true
}

// URL resolves id to URL
func (r *Registry) URL(id uint64) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, has := r.records[id]
	if !has {
		return "", false
	}
	return rec.URL, true
}

// LastVisit returns timestamp of the most recent visit
func (r *Registry) LastVisit(id uint64) (time.Time, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, has := r.records[id]
	if !has || len(rec.Visits) == 0 {
		return time.Time{}, false
	}
	return rec.Visits[len(rec.Visits)-1], true
}

// Visit appends current time to visit history of URL
func (r *Registry) Visit(url string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.ensureID(url)
	rec, has := r.records[id]
	if !has {
		r.logger.Error("link visit is lost",
			zap.String("url", url),
			zap.Uint64("id", id),
			zap.Error(ErrIntegrityViolation),
		)
		return
	}

	rec.Visits = append(rec.Visits, r.now())
}

// IsInternal returns true if URL scheme identifies application-internal resource
func (r *Registry) IsInternal(link string) bool {
	uri, err := url.Parse(link)
	if err != nil {
		return false
	}

	scheme := strings.ToLower(uri.Scheme)

	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.schemes == nil {
		return scheme == InternalScheme
	}
	_, has := r.schemes[scheme]
	return has
}

// IsInternalID resolves id to URL and classifies it, unknown ids are external
func (r *Registry) IsInternalID(id uint64) bool {
	link, has := r.URL(id)
	if !has {
		return false
	}
	return r.IsInternal(link)
}

// Len returns number of links
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.records)
}

// Records returns copy of all link records ordered by id
func (r *Registry) Records() []Record {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seq := make([]Record, 0, len(r.records))
	for _, rec := range r.records {
		seq = append(seq, rec.clone())
	}
	sort.Slice(seq, func(i, j int) bool { return seq[i].ID < seq[j].ID })
	return seq
}
