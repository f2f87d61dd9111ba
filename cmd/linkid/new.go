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
	"fmt"

	"github.com/fogfish/linkid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	newBits  int
	newCount int
	newText  bool
)

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Mint composite identifiers",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		clock := newClock()
		alloc := linkid.NewAllocator(clock)
		logger.Debug("allocator is ready", zap.Uint64("node", clock.L()), zap.Int("bits", newBits))

		out := cmd.OutOrStdout()
		for i := 0; i < newCount; i++ {
			switch newBits {
			case 64:
				uid := alloc.ID64()
				if newText {
					fmt.Fprintln(out, uid.String())
				} else {
					fmt.Fprintln(out, uint64(uid))
				}
			case 32:
				uid := alloc.ID32()
				if newText {
					fmt.Fprintln(out, uid.String())
				} else {
					fmt.Fprintln(out, uint32(uid))
				}
			default:
				return fmt.Errorf("unsupported identifier width %d, use 64 or 32", newBits)
			}
		}
		return nil
	},
}

func init() {
	newCmd.Flags().IntVarP(&newBits, "bits", "b", 64, "identifier width, 64 or 32")
	newCmd.Flags().IntVarP(&newCount, "count", "n", 1, "number of identifiers")
	newCmd.Flags().BoolVarP(&newText, "text", "t", false, "print lexicographically sortable string")
	rootCmd.AddCommand(newCmd)
}
