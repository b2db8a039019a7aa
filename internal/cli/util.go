package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

// getFlag reads a required bool flag, aborting with exit code 64 (CLI
// misuse) if cobra could not resolve it.
func getFlag(cmd *cobra.Command, flag string) bool {
	v, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitUsage)
	}

	return v
}

func getInt(cmd *cobra.Command, flag string) int {
	v, err := cmd.Flags().GetInt(flag)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitUsage)
	}

	return v
}

func getString(cmd *cobra.Command, flag string) string {
	v, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitUsage)
	}

	return v
}

// radix picks the classical-memory display base: --binary wins over
// --hexadecimal, and decimal is used otherwise. --integer is not read; the
// flags are not checked for mutual exclusion.
func radix(cmd *cobra.Command) int {
	switch {
	case getFlag(cmd, "binary"):
		return 2
	case getFlag(cmd, "hexadecimal"):
		return 16
	default:
		return 10
	}
}

func formatValue(v uint64, base int) string {
	return strconv.FormatUint(v, base)
}
