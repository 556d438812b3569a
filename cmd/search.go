package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"gooze.dev/pkg/treasuremap/internal/domain"
	m "gooze.dev/pkg/treasuremap/internal/model"
)

var boundsFlag string
var summaryFlag bool
var reportFlag string
var colorFlag bool

// searchCmd represents the search command.
var searchCmd = newSearchCmd()

func newSearchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "search FILE",
		Short:        "Search a maze for treasure",
		Long:         searchLongDescription,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			marker, err := parseMarker(viper.GetString(markerConfigKey))
			if err != nil {
				return err
			}

			bounds, err := domain.ParseBoundsPolicy(viper.GetString(boundsConfigKey))
			if err != nil {
				return err
			}

			_, err = newWorkflow(cmd).Search(cmd.Context(), domain.SearchArgs{
				ShowArgs: domain.ShowArgs{
					Maze:   m.Path(args[0]),
					Marker: marker,
				},
				Bounds:  bounds,
				Summary: viper.GetBool(summaryConfigKey),
				Report:  m.Path(viper.GetString(reportConfigKey)),
			})

			return err
		},
	}

	configureSearchFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(searchCmd)
}

func configureSearchFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&boundsFlag, boundsFlagName, viper.GetString(boundsConfigKey), "neighbours outside the grid: impassable or strict (abort)")
	bindFlagToConfig(cmd.Flags().Lookup(boundsFlagName), boundsConfigKey)

	cmd.Flags().BoolVar(&summaryFlag, summaryFlagName, viper.GetBool(summaryConfigKey), "print a table of discovered treasures")
	bindFlagToConfig(cmd.Flags().Lookup(summaryFlagName), summaryConfigKey)

	cmd.Flags().StringVarP(&reportFlag, reportFlagName, "r", viper.GetString(reportConfigKey), "write a YAML report of the run to this file")
	bindFlagToConfig(cmd.Flags().Lookup(reportFlagName), reportConfigKey)

	cmd.Flags().BoolVar(&colorFlag, colorFlagName, viper.GetBool(colorConfigKey), "colour the grid when writing to a terminal")
	bindFlagToConfig(cmd.Flags().Lookup(colorFlagName), colorConfigKey)
}
