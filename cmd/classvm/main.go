/*
 * Jacobin VM - A Java virtual machine
 * Copyright (c) 2023 by  the Jacobin authors. Consult jacobin.org.
 * Licensed under Mozilla Public License 2.0 (MPL 2.0) All rights reserved.
 */

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"jacobin/internal/archive"
	"jacobin/internal/trace"
	"jacobin/internal/vm"
)

var verbose bool

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classvm <entry-archive> [library-archive]",
		Short: "An embryonic managed-runtime for a stack-based bytecode format",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			trace.Init(verbose)
			return run(args)
		},
		SilenceUsage: true,
	}
	cmd.Flags().BoolVarP(&verbose, "trace", "v", false, "enable verbose (debug-level) diagnostic logging")
	return cmd
}

func run(args []string) error {
	entry, err := archive.Open(args[0])
	if err != nil {
		return fmt.Errorf("failed to load entry archive: %w", err)
	}

	machine := vm.New(entry)

	if len(args) == 2 {
		lib, err := archive.Open(args[1])
		if err != nil {
			return fmt.Errorf("failed to load library archive: %w", err)
		}
		machine.AddLibraryJar(lib)
	}

	if err := machine.Run(); err != nil {
		return fmt.Errorf("execution aborted: %w", err)
	}
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
