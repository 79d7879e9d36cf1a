// ranking.go

/**
 * Copyright (C) Naren Yellavula - All Rights Reserved
 *
 * This source code is protected under international copyright law.  All rights
 * reserved and protected by the copyright holders.
 * This file is confidential and only available to authorized individuals with the
 * permission of the copyright holders.  If you encounter this file and do not have
 * permission, please contact the copyright holders and delete this file.
 */

package main

import (
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/sahilm/fuzzy"

	"github.com/ordercli/recaller/avl"
)

// CommandMetadata is the payload stored under each command key in the
// history tree: how often it has run and when it last ran.
type CommandMetadata struct {
	Command   string
	Timestamp *time.Time // Unix timestamp for recency (updated on each use)
	Frequency int        // Incremented on each command execution
}

type RankedCommand struct {
	Command  string
	Score    float64
	Metadata CommandMetadata
}

func calculateScore(metadata CommandMetadata) (float64, error) {
	if metadata.Timestamp == nil {
		return 0, errors.New("timestamp is nil, cannot calculate score")
	}
	now := time.Now()
	// Calculate time delta in hours for scoring
	timeDelta := now.Sub(*metadata.Timestamp).Hours()

	// Score components:
	// - Frequency: Linear, to encourage repeated commands
	// - Recency (Time): Inverse of age in hours, 1/(hours+1), to favor recent commands
	frequencyScore := float64(metadata.Frequency)
	recencyScore := 1 / (timeDelta + 1) // Add 1 to avoid division by zero

	// Combine scores with a simple weighted average (adjust weights as needed)
	score := (0.6 * frequencyScore) + (0.4 * recencyScore)

	return score, nil
}

// matchingCommands returns the subset of tree's keys that satisfy
// query: in ascending order for prefix mode, and in sahilm/fuzzy's
// best-match-first order for fuzzy mode. The AVL core exposes only Keys() (no
// range-query primitive), so prefix and fuzzy modes both filter the
// full ascending key list rather than walking a subtree directly.
func matchingCommands(tree *avl.Map[string, CommandMetadata], query string, enableFuzzing bool) []string {
	keys := tree.Keys()
	if query == "" {
		return keys
	}

	if !enableFuzzing {
		matches := make([]string, 0, len(keys))
		for _, k := range keys {
			if strings.HasPrefix(k, query) {
				matches = append(matches, k)
			}
		}
		return matches
	}

	ranked := fuzzy.Find(query, keys)
	matches := make([]string, len(ranked))
	for i, r := range ranked {
		matches[i] = keys[r.Index]
	}
	return matches
}

// SearchWithRanking finds commands in tree matching query (by prefix,
// or fuzzily when enableFuzzing is set) and orders them by a
// frequency/recency score, highest first.
func SearchWithRanking(tree *avl.Map[string, CommandMetadata], query string, enableFuzzing bool) []RankedCommand {
	var rankedCommands []RankedCommand

	for _, command := range matchingCommands(tree, query, enableFuzzing) {
		metadata, ok := tree.Find(command)
		if !ok {
			continue
		}

		score, err := calculateScore(metadata)
		if err != nil {
			log.Printf("%s", err.Error())
			continue
		}

		rankedCommands = append(rankedCommands, RankedCommand{
			Command: command,
			Score:   score,
			Metadata: CommandMetadata{
				Timestamp: metadata.Timestamp,
				Frequency: metadata.Frequency,
			},
		})
	}

	// Sort the commands based on their scores (Descending order for highest score first)
	sort.SliceStable(rankedCommands, func(i, j int) bool {
		return rankedCommands[i].Score > rankedCommands[j].Score
	})

	return rankedCommands
}

// getSuggestions searches the history tree and returns a list of
// matching commands, ranked highest first.
func getSuggestions(searchStr string, tree *avl.Map[string, CommandMetadata], enableFuzzing bool) []string {
	matches := SearchWithRanking(tree, searchStr, enableFuzzing)
	results := make([]string, 0, len(matches))

	for _, m := range matches {
		results = append(results, fmt.Sprintf("%s", m.Command))
	}

	return results
}
