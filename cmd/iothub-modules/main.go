// Iothub-modules manages the module identities of an IoT hub device.
//
// It talks to the hub's module registry over HTTPS and supports
// creating, inspecting, updating and removing module identities.
//
// Usage:
//
//	iothub-modules [command] [flags]
//
// Settings come from iothub.yml, a .env file or IOTHUB_* environment
// variables. See 'iothub-modules --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/edgekit/iothub/version"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "iothub-modules",
	Short: "Manage IoT hub module identities",
	Long: `Manage the module identities registered on an IoT hub device.

The hub host name, device id and credentials are read from iothub.yml,
a .env file or IOTHUB_* environment variables; flags override them.`,
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		info := version.Get()
		fmt.Printf("iothub-modules %s (commit: %s, built: %s)\n", info.Version, info.GitCommit, info.BuildTime)
	},
}
