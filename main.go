// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ordercli/recaller/avl"
)

// version is stamped at release build time via -ldflags; "dev" covers
// local builds.
var version = "dev"

func loadConfigOrDefault() *Config {
	config, err := LoadConfig()
	if err != nil {
		log.Printf("Failed to load configuration: %v. Using default settings.", err)
		return &defaultConfig
	}
	return config
}

func newHistoryTree() (*avl.Map[string, CommandMetadata], error) {
	tree := avl.NewOrderedMap[string, CommandMetadata]()
	if err := readHistoryAndPopulateTree(tree); err != nil {
		return nil, err
	}
	return tree, nil
}

func main() {
	asciiLogo := `
██████╗ ███████╗ ██████╗ █████╗ ██╗     ██╗     ███████╗██████╗
██╔══██╗██╔════╝██╔════╝██╔══██╗██║     ██║     ██╔════╝██╔══██╗
██████╔╝█████╗  ██║     ███████║██║     ██║     █████╗  ██████╔╝
██╔══██╗██╔══╝  ██║     ██╔══██║██║     ██║     ██╔══╝  ██╔══██╗
██║  ██║███████╗╚██████╗██║  ██║███████╗███████╗███████╗██║  ██║
╚═╝  ╚═╝╚══════╝ ╚═════╝╚═╝  ╚═╝╚══════╝╚══════╝╚══════╝╚═╝  ╚═╝
Blazing-fast command history search with instant documentation and terminal execution [Version: %s%s%s]

Copyright @ Naren Yellavula (Please give us a star ⭐ here: https://github.com/cybrota/recaller)

`

	asciiLogo = fmt.Sprintf(asciiLogo, Green, version, Reset)

	var cmdRun = &cobra.Command{
		Use:   "run",
		Short: "Launches recaller UI for search & documentation",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Run command opens Recaller UI with search from history`),
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			helpCache := NewOptimizedHelpCache()
			config := loadConfigOrDefault()

			tree, err := newHistoryTree()
			if err != nil {
				log.Fatalf("Error reading history: %v", err)
			}
			run(tree, helpCache, config.History.EnableFuzzing)
		},
	}

	var cmdSearch = &cobra.Command{
		Use:   "search",
		Short: "Launches the Bubble Tea history search UI",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Search opens the primary interactive history search UI`),
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			helpCache := NewOptimizedHelpCache()
			config := loadConfigOrDefault()

			tree, err := newHistoryTree()
			if err != nil {
				log.Fatalf("Error reading history: %v", err)
			}
			if err := runBubbleTeaApp(tree, helpCache, nil, ModeHistory); err != nil {
				log.Fatalf("Error running search UI: %v", err)
			}
			_ = config
		},
	}

	var cmdFiles = &cobra.Command{
		Use:   "files [dirs...]",
		Short: "Index and interactively search the filesystem",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Files indexes given directories (or re-uses the saved index) and opens the Bubble Tea filesystem search UI`),
		Run: func(cmd *cobra.Command, args []string) {
			config := loadConfigOrDefault()
			fsIndexer := NewFilesystemIndexer(config.Index)

			if err := fsIndexer.LoadOrCreateIndex(); err != nil {
				log.Printf("Failed to load existing filesystem index: %v", err)
			}
			if len(args) > 0 {
				if err := fsIndexer.IndexDirectoriesWithProgress(args, true); err != nil {
					log.Fatalf("Error indexing directories: %v", err)
				}
				if err := fsIndexer.PersistIndex(); err != nil {
					log.Printf("Failed to persist filesystem index: %v", err)
				}
			}

			helpCache := NewOptimizedHelpCache()
			if err := runBubbleTeaApp(nil, helpCache, fsIndexer, ModeFilesystem); err != nil {
				log.Fatalf("Error running filesystem UI: %v", err)
			}
		},
	}

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print Recaller usage guide",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Usage displays the recaller CLI usage guide`),
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(getHelpMessage())
		},
	}

	var cmdHistory = &cobra.Command{
		Use:   "history",
		Short: "Print matching commands from history",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, "List past commands matching --match, highest frequency/recency score first"),
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			tree, err := newHistoryTree()
			if err != nil {
				log.Fatalf("Error reading history: %v", err)
			}

			config := loadConfigOrDefault()

			res := getSuggestions(cmd.Flag("match").Value.String(), tree, config.History.EnableFuzzing)
			fmt.Println(strings.Join(res, "\n"))
		},
	}

	cmdHistory.Flags().String("match", "", "match string prefix to look in history")

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print Recaller version",
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	var rootCmd = &cobra.Command{
		Use:     "recaller",
		Version: version,
		Long:    asciiLogo,
		Run: func(cmd *cobra.Command, args []string) {
			// Default to run command when no subcommand is provided
			helpCache := NewOptimizedHelpCache()
			config := loadConfigOrDefault()

			tree, err := newHistoryTree()
			if err != nil {
				log.Fatalf("Error reading history: %v", err)
			}
			run(tree, helpCache, config.History.EnableFuzzing)
		},
	}
	rootCmd.AddCommand(cmdRun, cmdSearch, cmdFiles, cmdUsage, cmdVersion, cmdHistory, newBenchCommand(), newTreeCommand())
	rootCmd.Execute()
}
