// Package cmd provides the root command and CLI setup for treasuremap.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"gooze.dev/pkg/treasuremap/internal/adapter"
	"gooze.dev/pkg/treasuremap/internal/controller"
	"gooze.dev/pkg/treasuremap/internal/domain"
)

var mazeAdapter adapter.MazeFileAdapter
var reportStore adapter.ReportStore

// markerFlag is a root-level flag shared by commands that render grids.
var markerFlag string

var logFileFlag string
var verboseFlag bool

func init() {
	mazeAdapter = adapter.NewLocalMazeFileAdapter()
	reportStore = adapter.NewReportStore()
}

const mazeFormatHelp = `Maze files start with a "width height" header followed by exactly
height rows of width characters:
  W  wall
  .  open cell
  T  treasure
  S  start (exactly one)`

const rootLongDescription = `Treasuremap walks a maze depth first from its start cell, always trying
right, down, up and left in that order, and marks every route that led
to a treasure.

` + mazeFormatHelp

const searchLongDescription = `Print the maze, search it for treasure, print it again with every
route to a treasure marked, and report how many treasures were found.

` + mazeFormatHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "treasuremap",
		Short: "Find treasure in character-grid mazes",
		Long:  rootLongDescription,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if configErr != nil {
				return configErr
			}

			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))

			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVarP(
			&markerFlag, markerFlagName, "m",
			viper.GetString(markerConfigKey),
			"character drawn on every recorded path cell",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(markerFlagName), markerConfigKey)

	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, viper.GetString(logFilenameKey), "log file path")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFileFlagName), logFilenameKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log search steps at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// newWorkflow builds the workflow for a command invocation; the UI depends on
// the command's output stream and the colour setting.
func newWorkflow(cmd *cobra.Command) domain.Workflow {
	ui := controller.NewUI(cmd, viper.GetBool(colorConfigKey))
	return domain.NewWorkflow(mazeAdapter, reportStore, ui, globalLogger)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
