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
	"errors"
	"io/fs"
	"os"

	"github.com/fogfish/linkid"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	envFile string
	verbose bool
	logger  = zap.NewNop()
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "linkid",
	Short: "Mint and inspect composite identifiers, rank visited links.",
	Long: `linkid mints 64-bit and 32-bit composite identifiers ⟨t, node, seq⟩, ` +
		`decodes identifiers into their fields and ranks persisted link snapshots ` +
		`by engagement score. Node identity is derived from host hardware unless ` +
		linkid.EnvNodeID + ` is defined in environment or dotenv file.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}

		if verbose {
			dev, err := zap.NewDevelopment()
			if err != nil {
				return err
			}
			logger = dev
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env", ".env", "dotenv file with configuration")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable development logging")
}

// Execute adds all child commands to the root command and sets flags
// appropriately.
func Execute() {
	err := rootCmd.Execute()
	_ = logger.Sync()
	if err != nil {
		os.Exit(1)
	}
}

func newClock() linkid.Chronos {
	if _, has := os.LookupEnv(linkid.EnvNodeID); has {
		return linkid.NewClockMock(linkid.WithClockUnix(), linkid.WithNodeFromEnv())
	}
	return linkid.NewClock()
}
