// Streak Stats - GitHub Contribution Streak Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streakstats

package cli

import "github.com/fatih/color"

var (
	primaryColor = color.New(color.FgHiYellow, color.Bold)
	errorColor   = color.New(color.FgRed)
	infoColor    = color.New(color.FgCyan)
	silentColor  = color.New(color.FgHiBlack)
)

func Primary(text string) string { return primaryColor.Sprint(text) }
func Error(text string) string   { return errorColor.Sprint(text) }
func Info(text string) string    { return infoColor.Sprint(text) }
func Silent(text string) string  { return silentColor.Sprint(text) }
