// Streak Stats - GitHub Contribution Streak Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streakstats

package cli

import "github.com/spf13/cobra"

// StringFlag is a string flag on a leaf command.
type StringFlag struct {
	Name      string
	Shorthand string
	Usage     string
	Default   string
}

// IntFlag is an integer flag on a leaf command.
type IntFlag struct {
	Name    string
	Usage   string
	Default int
}

// LeafCommand describes a runnable command. Build registers its flags.
type LeafCommand struct {
	Use      string
	Short    string
	Long     string
	Example  string
	Args     cobra.PositionalArgs
	StrFlags []StringFlag
	IntFlags []IntFlag
	RunE     func(cmd *cobra.Command, args []string) error
}

// Build creates the cobra.Command.
func (lc LeafCommand) Build() *cobra.Command {
	cmd := &cobra.Command{
		Use:     lc.Use,
		Short:   lc.Short,
		Long:    lc.Long,
		Example: lc.Example,
		Args:    lc.Args,
		RunE:    lc.RunE,
	}
	for _, f := range lc.StrFlags {
		cmd.Flags().StringP(f.Name, f.Shorthand, f.Default, f.Usage)
	}
	for _, f := range lc.IntFlags {
		cmd.Flags().Int(f.Name, f.Default, f.Usage)
	}
	return cmd
}
