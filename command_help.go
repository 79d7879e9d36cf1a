// command_help.go

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
	"fmt"

	"github.com/mattn/go-shellwords"

	"github.com/ordercli/recaller/strategies"
)

// helpManager is shared across lookups so every call reuses the same
// registered strategy chain (TLDR, then per-tool strategies, then man
// pages, then a generic -h/--help/help fallback).
var helpManager = strategies.NewHelpStrategyManager()

// getCommandHelp attempts to retrieve help text for a given command,
// trying each registered strategy in priority order until one
// succeeds.
func getCommandHelp(cmdParts []string) (string, error) {
	if len(cmdParts) == 0 {
		return "", fmt.Errorf("no command provided")
	}
	return helpManager.GetHelp(cmdParts)
}

// splitCommand splits a full command string into parts.
func splitCommand(fullCmd string) ([]string, error) {
	args, err := shellwords.Parse(fullCmd)
	if err != nil {
		return nil, fmt.Errorf("failed to parse command %q: %v", fullCmd, err)
	}
	return args, nil
}
