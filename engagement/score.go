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

// Package engagement accumulates raw engagement signals per link and derives
// frecency-like ranking score from them.
package engagement

// Score is accumulator of raw engagement signals, all values are non-negative.
// Fields are mutated by collaborators as events arrive, derived values are
// computed from current fields on every call.
type Score struct {
	ReadingTime          float64 `json:"readingTime" yaml:"readingTime"`
	TextSelections       float64 `json:"textSelections" yaml:"textSelections"`
	ScrollRatioX         float64 `json:"scrollRatioX" yaml:"scrollRatioX"`
	ScrollRatioY         float64 `json:"scrollRatioY" yaml:"scrollRatioY"`
	OpenIndex            float64 `json:"openIndex" yaml:"openIndex"`
	Outbounds            float64 `json:"outbounds" yaml:"outbounds"`
	TextAmount           float64 `json:"textAmount" yaml:"textAmount"`
	Area                 float64 `json:"area" yaml:"area"`
	Inbounds             float64 `json:"inbounds" yaml:"inbounds"`
	VideoTotalDuration   float64 `json:"videoTotalDuration" yaml:"videoTotalDuration"`
	VideoReadingDuration float64 `json:"videoReadingDuration" yaml:"videoReadingDuration"`
}

// ReadingTimeScore is reading time as is
func (s Score) ReadingTimeScore() float64 { return s.ReadingTime }

// TextSelectionsScore is number of text selections
func (s Score) TextSelectionsScore() float64 { return s.TextSelections }

// OpenIndexScore is number of times link was opened
func (s Score) OpenIndexScore() float64 { return s.OpenIndex }

// OutboundsScore is number of links followed from the page
func (s Score) OutboundsScore() float64 { return s.Outbounds }

// ScrollRatioScore is mean of horizontal and vertical scroll coverage
func (s Score) ScrollRatioScore() float64 {
	return (s.ScrollRatioX + s.ScrollRatioY) / 2
}

// DensityScore is amount of text per unit of area, 0 if area is not positive
func (s Score) DensityScore() float64 {
	if s.Area <= 0 {
		return 0
	}
	return s.TextAmount / s.Area
}

// VideoScore is share of video watched, 0 if duration is not positive.
// It is not part of Value.
func (s Score) VideoScore() float64 {
	if s.VideoTotalDuration <= 0 {
		return 0
	}
	return s.VideoReadingDuration / s.VideoTotalDuration
}

// Value is derived ranking score
func (s Score) Value() float64 {
	return s.ReadingTimeScore() +
		s.TextSelectionsScore() +
		s.ScrollRatioScore() +
		s.OpenIndexScore() +
		s.OutboundsScore() +
		s.DensityScore()
}
