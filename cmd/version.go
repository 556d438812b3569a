package cmd

import (
	"runtime/debug"

	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the treasuremap version",
		Long:  "Displays the treasuremap build version and the Go version used to build it.",
		Run: func(cmd *cobra.Command, _ []string) {
			info, ok := debug.ReadBuildInfo()
			printVersion(cmd, info, ok)
		},
	}
}

func printVersion(cmd *cobra.Command, info *debug.BuildInfo, ok bool) {
	if !ok || info == nil || info.Main.Version == "" {
		cmd.Println("version: unknown")
		return
	}

	cmd.Println("treasuremap version\t", info.Main.Version)
	cmd.Println("module\t", info.Main.Path)
	cmd.Println("go version\t", info.GoVersion)
}

// versionCmd represents the version command.
var versionCmd = newVersionCmd()

func init() {
	rootCmd.AddCommand(versionCmd)
}
