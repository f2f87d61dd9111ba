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

package links_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/fogfish/it/v2"
	"github.com/fogfish/linkid"
	"github.com/fogfish/linkid/links"
	"golang.org/x/sync/errgroup"
	"pgregory.net/rapid"
)

func TestEnsureID(t *testing.T) {
	r := links.New()
	a := r.EnsureID("https://example.com")
	b := r.EnsureID("https://example.org")
	c := r.EnsureID("https://example.com")

	id, has := r.IDFor("https://example.com")
	rec, exists := r.Record(a)

	it.Then(t).Should(
		it.Equal(a, 0),
		it.Equal(b, 1),
		it.Equal(c, a),
		it.True(has),
		it.Equal(id, a),
		it.True(exists),
		it.Equal(rec.ID, a),
		it.Equal(rec.URL, "https://example.com"),
		it.Equal(len(rec.Visits), 0),
		it.Equal(r.Len(), 2),
	)
}

func TestEnsureIDIdempotence(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		r := links.New()
		urls := rapid.SliceOf(rapid.SampledFrom([]string{
			"https://example.com",
			"https://example.com/a",
			"beam://note/1",
			"http://localhost:8080",
			"",
		})).Draw(t, "urls")

		seen := map[string]uint64{}
		for _, url := range urls {
			id := r.EnsureID(url)
			if prev, has := seen[url]; has && prev != id {
				t.Fatalf("id of %q changed: %d -> %d", url, prev, id)
			}
			seen[url] = id
		}

		if r.Len() != len(seen) {
			t.Fatalf("registry has %d records, expected %d", r.Len(), len(seen))
		}
		for url, id := range seen {
			fid, has := r.IDFor(url)
			rec, exists := r.Record(id)
			if !has || !exists || fid != id || rec.URL != url || rec.ID != id {
				t.Fatalf("maps are inconsistent for %q: %d %d %+v", url, id, fid, rec)
			}
		}
	})
}

func TestIDForUnknown(t *testing.T) {
	r := links.New()
	_, has := r.IDFor("https://example.com")
	_, exists := r.Record(0)
	_, known := r.URL(0)

	it.Then(t).ShouldNot(
		it.True(has),
		it.True(exists),
		it.True(known),
	)
	it.Then(t).Should(
		it.Equal(r.Len(), 0),
	)
}

func TestVisit(t *testing.T) {
	tick := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	r := links.New(
		links.WithClock(func() time.Time {
			tick = tick.Add(time.Second)
			return tick
		}),
	)

	for i := 0; i < 5; i++ {
		r.Visit("https://example.com")
	}
	r.Visit("https://example.org")

	id, _ := r.IDFor("https://example.com")
	rec, _ := r.Record(id)
	last, _ := r.LastVisit(id)

	it.Then(t).Should(
		it.Equal(len(rec.Visits), 5),
		it.Equal(rec.Visits[0], time.Date(2024, 1, 1, 0, 0, 1, 0, time.UTC)),
		it.Equal(last, time.Date(2024, 1, 1, 0, 0, 5, 0, time.UTC)),
		it.Equal(r.Len(), 2),
	)
}

func TestVisitCount(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		r := links.New()
		n := rapid.IntRange(0, 50).Draw(t, "n")
		for i := 0; i < n; i++ {
			r.Visit("https://example.com")
		}

		id := r.EnsureID("https://example.com")
		rec, _ := r.Record(id)
		if len(rec.Visits) != n {
			t.Fatalf("expected %d visits, got %d", n, len(rec.Visits))
		}
	})
}

func TestRecordIsCopy(t *testing.T) {
	r := links.New()
	r.Visit("https://example.com")

	rec, _ := r.Record(0)
	rec.Visits = append(rec.Visits, time.Now())
	rec.URL = "https://example.org"

	again, _ := r.Record(0)

	it.Then(t).Should(
		it.Equal(len(again.Visits), 1),
		it.Equal(again.URL, "https://example.com"),
	)
}

func TestLastVisitNever(t *testing.T) {
	r := links.New()
	id := r.EnsureID("https://example.com")
	_, has := r.LastVisit(id)

	it.Then(t).ShouldNot(
		it.True(has),
	)
}

func TestIsInternal(t *testing.T) {
	r := links.New()
	internal := r.EnsureID("beam://note/1")
	external := r.EnsureID("https://example.com")

	it.Then(t).Should(
		it.True(r.IsInternal("beam://x")),
		it.True(r.IsInternal("BEAM://x")),
		it.True(r.IsInternalID(internal)),
	)
	it.Then(t).ShouldNot(
		it.True(r.IsInternal("https://example.com")),
		it.True(r.IsInternal("beam")),
		it.True(r.IsInternal("://broken")),
		it.True(r.IsInternalID(external)),
		it.True(r.IsInternalID(1000)),
	)
}

func TestWithInternalSchemes(t *testing.T) {
	r := links.New(links.WithInternalSchemes("about", "Notes"))

	it.Then(t).Should(
		it.True(r.IsInternal("about:blank")),
		it.True(r.IsInternal("notes://1")),
	)
	it.Then(t).ShouldNot(
		it.True(r.IsInternal("beam://x")),
	)
}

func TestWithCounter(t *testing.T) {
	alloc := linkid.NewAllocator(linkid.NewClockMock())
	alloc.Key64()

	r := links.New(links.WithCounter(alloc.Keys64()))
	id := r.EnsureID("https://example.com")

	it.Then(t).Should(
		it.Equal(id, 1),
		it.Equal(alloc.Key64(), 2),
	)
}

func TestRecords(t *testing.T) {
	r := links.New()
	for i := 0; i < 10; i++ {
		r.EnsureID(fmt.Sprintf("https://example.com/%d", i))
	}

	seq := r.Records()
	ordered := true
	for i, rec := range seq {
		ordered = ordered && rec.ID == uint64(i)
	}

	it.Then(t).Should(
		it.Equal(len(seq), 10),
		it.True(ordered),
	)
}

func TestConcurrentEnsureID(t *testing.T) {
	r := links.New()
	ids := make([][]uint64, 16)

	var g errgroup.Group
	for w := range ids {
		g.Go(func() error {
			for i := 0; i < 100; i++ {
				url := fmt.Sprintf("https://example.com/%d", i)
				ids[w] = append(ids[w], r.EnsureID(url))
				r.Visit(url)
			}
			return nil
		})
	}
	it.Then(t).Should(it.Nil(g.Wait()))

	consistent := true
	for w := range ids {
		for i := range ids[w] {
			consistent = consistent && ids[w][i] == ids[0][i]
		}
	}

	visits := 0
	for _, rec := range r.Records() {
		visits += len(rec.Visits)
	}

	it.Then(t).Should(
		it.True(consistent),
		it.Equal(r.Len(), 100),
		it.Equal(visits, 1600),
	)
}

func TestZeroValue(t *testing.T) {
	var r links.Registry

	internal := r.IsInternal("beam://x")
	external := r.IsInternal("https://example.com")
	a := r.EnsureID("https://example.com")
	r.Visit("https://example.com")
	r.Visit("beam://note/1")
	rec, _ := r.Record(a)

	it.Then(t).Should(
		it.True(internal),
		it.Equal(a, 0),
		it.Equal(len(rec.Visits), 1),
		it.Equal(r.Len(), 2),
		it.True(r.IsInternalID(1)),
	)
	it.Then(t).ShouldNot(
		it.True(external),
	)
}
