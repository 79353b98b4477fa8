package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func queryCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "query KEY...",
		Short: "Print the values active at each key",
		Long: `Print the values active at each key, one line per key.

Examples:
  spanmap query -f spans.yaml 5          # Values active at 5
  spanmap query -f spans.yaml 0 10 20    # Several keys at once`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(file, args, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "span file to load")

	return cmd
}

func runQuery(file string, keys []string, out, logOut io.Writer) error {
	ints := make([]int, 0, len(keys))
	for _, k := range keys {
		key, err := strconv.Atoi(k)
		if err != nil {
			return fmt.Errorf("key %q is not an integer: %w", k, err)
		}
		ints = append(ints, key)
	}

	m, err := loadFile(file, newLogger(logOut))
	if err != nil {
		return err
	}

	for _, key := range ints {
		fmt.Fprintf(out, "%d: [%s]\n", key, strings.Join(m.Values(key), " "))
	}
	return nil
}

func cellsCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "cells",
		Short: "Print the partition the spans produce",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCells(file, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "span file to load")

	return cmd
}

func runCells(file string, out, logOut io.Writer) error {
	m, err := loadFile(file, newLogger(logOut))
	if err != nil {
		return err
	}

	for s, values := range m.Cells() {
		var vs []string
		for v := range values {
			vs = append(vs, v)
		}
		fmt.Fprintf(out, "%s: [%s]\n", s, strings.Join(vs, " "))
	}
	return nil
}
