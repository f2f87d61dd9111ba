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
	"strconv"
	"time"

	"github.com/fogfish/linkid"
	"github.com/spf13/cobra"
)

var (
	inspectBits int
	inspectText bool
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [id]",
	Short: "Decode identifier into ⟨t, node, seq⟩ fields",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			t, node, seq uint64
			unix         time.Time
		)

		switch inspectBits {
		case 64:
			uid, err := parse64(args[0])
			if err != nil {
				return err
			}
			t, node, seq, unix = uid.Time(), uid.Node(), uid.Seq(), uid.Unix()
		case 32:
			uid, err := parse32(args[0])
			if err != nil {
				return err
			}
			t, node, seq, unix = uid.Time(), uid.Node(), uid.Seq(), uid.Unix()
		default:
			return fmt.Errorf("unsupported identifier width %d, use 64 or 32", inspectBits)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "time: %d\n", t)
		fmt.Fprintf(out, "unix: %s\n", unix.UTC().Format(time.RFC3339Nano))
		fmt.Fprintf(out, "node: %d\n", node)
		fmt.Fprintf(out, "seq:  %d\n", seq)
		return nil
	},
}

func parse64(val string) (linkid.ID64, error) {
	if inspectText {
		return linkid.FromString64(val)
	}

	n, err := strconv.ParseUint(val, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("malformed 64-bit identifier %q: %w", val, err)
	}
	return linkid.ID64(n), nil
}

func parse32(val string) (linkid.ID32, error) {
	if inspectText {
		return linkid.FromString32(val)
	}

	n, err := strconv.ParseUint(val, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("malformed 32-bit identifier %q: %w", val, err)
	}
	return linkid.ID32(n), nil
}

func init() {
	inspectCmd.Flags().IntVarP(&inspectBits, "bits", "b", 64, "identifier width, 64 or 32")
	inspectCmd.Flags().BoolVarP(&inspectText, "text", "t", false, "identifier is lexicographically sortable string")
	rootCmd.AddCommand(inspectCmd)
}
