package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const banner = `
  ╔═╗┬─┐┌┐ ┌─┐┬─┐
  ╠═╣├┬┘├┴┐│ │├┬┘
  ╩ ╩┴└─└─┘└─┘┴└─
`

func main() {
	rootCmd := &cobra.Command{
		Use:   "arbor",
		Short: "Declarative UI rendering for Go",
		Long: `Arbor renders declarative vnode trees to HTML.

Build pages as plain Go values, serve them with live reload
during development, and publish the result as a static site:

  • Array-based vnodes with a positional differ
  • Server-side rendering to HTML
  • Dev server with live reload and an error overlay
  • Static publishing to S3`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		serveCmd(),
		publishCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "\033[31mError:\033[0m %s\n", err)
		os.Exit(1)
	}
}

// printBanner prints the Arbor ASCII art banner.
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

// errorMsg prints an error message.
func errorMsg(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "\033[31m✗\033[0m %s\n", fmt.Sprintf(format, args...))
}
