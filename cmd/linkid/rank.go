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

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fogfish/linkid/engagement"
	"github.com/fogfish/linkid/links"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

var (
	rankLinks    string
	rankScores   string
	rankTop      int
	rankExternal bool
)

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank links of persisted snapshot by engagement score",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		reg := links.New(links.WithLogger(logger))
		if err := decode(rankLinks, reg); err != nil {
			return err
		}

		scores := engagement.New(reg, engagement.WithLogger(logger))
		if err := decode(rankScores, scores); err != nil {
			return err
		}

		ids := make([]uint64, 0, reg.Len())
		for _, rec := range reg.Records() {
			if rankExternal && reg.IsInternal(rec.URL) {
				continue
			}
			ids = append(ids, rec.ID)
		}

		seq := scores.Ranked(ids...)
		if rankTop > 0 && rankTop < len(seq) {
			seq = seq[:rankTop]
		}
		logger.Debug("links are ranked", zap.Int("links", reg.Len()), zap.Int("ranked", len(seq)))

		out := cmd.OutOrStdout()
		for _, rank := range seq {
			rec, _ := reg.Record(rank.ID)
			fmt.Fprintf(out, "%.3f\t%d\t%d\t%s\n", rank.Value, rank.ID, len(rec.Visits), rec.URL)
		}
		return nil
	},
}

// decode reads snapshot file, format is chosen by file extension
func decode(path string, val any) error {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read snapshot: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(bytes, val)
	default:
		err = json.Unmarshal(bytes, val)
	}
	if err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

func init() {
	rankCmd.Flags().StringVarP(&rankLinks, "links", "l", "links.json", "link registry snapshot, json or yaml")
	rankCmd.Flags().StringVarP(&rankScores, "scores", "s", "scores.json", "engagement score snapshot, json or yaml")
	rankCmd.Flags().IntVarP(&rankTop, "top", "n", 10, "number of links to print, 0 prints all")
	rankCmd.Flags().BoolVar(&rankExternal, "external", false, "skip application-internal links")
	rootCmd.AddCommand(rankCmd)
}
