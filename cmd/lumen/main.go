package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lumen-ui/lumen/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const banner = `
  ╦  ╦ ╦╔╦╗╔═╗╔╗╔
  ║  ║ ║║║║║╣ ║║║
  ╩═╝╚═╝╩ ╩╚═╝╝╚╝
`

func main() {
	rootCmd := &cobra.Command{
		Use:   "lumen",
		Short: "Host-element property reconciliation toolkit",
		Long: `Lumen reconciles declarative element properties against live
host nodes.

The CLI runs reconciliation scenarios against an in-memory host and
reports every mutation the reconciler performs:

  • Classified property application (attributes, DOM properties, events)
  • Structured style deltas with unit handling
  • Delegated event registration
  • Raw HTML replacement with prior-content release
  • Controlled form element handling`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		applyCmd(),
		serveCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		errors.PrintError(err)
		os.Exit(1)
	}
}

// printBanner prints the Lumen ASCII art banner.
func printBanner() {
	fmt.Print(banner)
}

// success prints a success message.
func success(format string, args ...any) {
	fmt.Printf("\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(format string, args ...any) {
	fmt.Printf("  %s\n", fmt.Sprintf(format, args...))
}

// warn prints a warning message.
func warn(format string, args ...any) {
	fmt.Printf("\033[33m⚠\033[0m %s\n", fmt.Sprintf(format, args...))
}
