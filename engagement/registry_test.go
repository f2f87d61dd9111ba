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

package engagement_test

import (
	"encoding/json"
	"testing"

	"github.com/fogfish/it/v2"
	"github.com/fogfish/linkid/engagement"
	"github.com/fogfish/linkid/links"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

func TestScoreFor(t *testing.T) {
	r := engagement.New(links.New())
	a := r.ScoreFor(1)
	a.ReadingTime = 5
	b := r.ScoreFor(1)
	_, unknown := r.Snapshot(2)

	it.Then(t).Should(
		it.True(a == b),
		it.Equal(b.ReadingTime, 5.0),
		it.Equal(r.Len(), 1),
	)
	it.Then(t).ShouldNot(
		it.True(unknown),
	)
}

func TestScoreForIsZero(t *testing.T) {
	r := engagement.New(links.New())

	it.Then(t).Should(
		it.Equal(*r.ScoreFor(10), engagement.Score{}),
	)
}

func TestScoreForURL(t *testing.T) {
	reg := links.New()
	r := engagement.New(reg)

	r.ScoreForURL("https://example.com").Outbounds = 3
	id, has := reg.IDFor("https://example.com")

	it.Then(t).Should(
		it.True(has),
		it.True(r.ScoreForURL("https://example.com") == r.ScoreFor(id)),
		it.Equal(r.ScoreFor(id).Outbounds, 3.0),
	)
}

func TestUpdateConcurrent(t *testing.T) {
	reg := links.New()
	r := engagement.New(reg)

	var g errgroup.Group
	for w := 0; w < 8; w++ {
		g.Go(func() error {
			for i := 0; i < 100; i++ {
				id := reg.EnsureID("https://example.com")
				r.Update(id, func(s *engagement.Score) { s.ReadingTime++ })
			}
			return nil
		})
	}
	it.Then(t).Should(it.Nil(g.Wait()))

	score, has := r.Snapshot(0)
	it.Then(t).Should(
		it.True(has),
		it.Equal(score.ReadingTime, 800.0),
		it.Equal(r.Len(), 1),
	)
}

func TestRanked(t *testing.T) {
	r := engagement.New(links.New())
	r.Update(1, func(s *engagement.Score) { s.ReadingTime = 1 })
	r.Update(2, func(s *engagement.Score) { s.ReadingTime = 10 })
	r.Update(3, func(s *engagement.Score) { s.TextAmount, s.Area = 100, 10 })

	seq := r.Ranked(1, 2, 3, 4)

	it.Then(t).Should(
		it.Equiv(seq, []engagement.Ranking{
			{ID: 2, Value: 10},
			{ID: 3, Value: 10},
			{ID: 1, Value: 1},
			{ID: 4, Value: 0},
		}),
		it.Equal(r.Len(), 3),
	)
}

func TestTop(t *testing.T) {
	r := engagement.New(links.New())
	for i := uint64(0); i < 10; i++ {
		r.ScoreFor(i).OpenIndex = float64(i)
	}

	top := r.Top(3)
	all := r.Top(0)

	it.Then(t).Should(
		it.Equiv(top, []engagement.Ranking{{ID: 9, Value: 9}, {ID: 8, Value: 8}, {ID: 7, Value: 7}}),
		it.Equal(len(all), 10),
	)
}

func TestCodecJSON(t *testing.T) {
	r := engagement.New(links.New())
	r.ScoreFor(1).ReadingTime = 10
	r.ScoreFor(2).Area = 500

	bytes, err := json.Marshal(r)
	it.Then(t).Should(it.Nil(err))

	x := engagement.New(links.New())
	err = json.Unmarshal(bytes, x)
	a, _ := x.Snapshot(1)
	b, _ := x.Snapshot(2)

	it.Then(t).Should(
		it.Nil(err),
		it.Equal(x.Len(), 2),
		it.Equal(a, engagement.Score{ReadingTime: 10}),
		it.Equal(b, engagement.Score{Area: 500}),
	)
}

func TestCodecYAML(t *testing.T) {
	r := engagement.New(links.New())
	r.ScoreFor(1).ScrollRatioY = 0.25
	r.ScoreFor(7).VideoTotalDuration = 60

	bytes, err := yaml.Marshal(r)
	it.Then(t).Should(it.Nil(err))

	x := engagement.New(links.New())
	err = yaml.Unmarshal(bytes, x)
	a, _ := x.Snapshot(1)
	b, _ := x.Snapshot(7)

	it.Then(t).Should(
		it.Nil(err),
		it.Equal(x.Len(), 2),
		it.Equal(a, engagement.Score{ScrollRatioY: 0.25}),
		it.Equal(b, engagement.Score{VideoTotalDuration: 60}),
	)
}

func TestCodecMalformed(t *testing.T) {
	r := engagement.New(links.New())
	r.ScoreFor(1)

	err := json.Unmarshal([]byte(`{"1": {"readingTime": "x"}}`), r)

	it.Then(t).ShouldNot(
		it.Nil(err),
	)
	it.Then(t).Should(
		it.Equal(r.Len(), 1),
	)
}

func TestZeroValue(t *testing.T) {
	var r engagement.Registry

	a := r.ScoreFor(1)
	a.Outbounds = 2
	r.Update(2, func(s *engagement.Score) { s.ReadingTime = 1 })
	b := r.ScoreForURL("https://example.com")

	it.Then(t).Should(
		it.True(r.ScoreFor(1) == a),
		it.True(r.ScoreForURL("https://example.com") == b),
		it.Equal(r.Len(), 3),
	)
}

func TestNilResolver(t *testing.T) {
	r := engagement.New(nil)

	a := r.ScoreForURL("https://example.com")
	b := r.ScoreForURL("https://example.org")

	it.Then(t).Should(
		it.True(r.ScoreForURL("https://example.com") == a),
		it.True(r.ScoreFor(0) == a),
		it.True(r.ScoreFor(1) == b),
	)
}
