package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"gooze.dev/pkg/treasuremap/internal/domain"
	m "gooze.dev/pkg/treasuremap/internal/model"
)

// showCmd represents the show command.
var showCmd = newShowCmd()

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "show FILE",
		Short:        "Print a maze as loaded",
		Long:         "Load and validate a maze file and print it without searching.\n\n" + mazeFormatHelp,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			marker, err := parseMarker(viper.GetString(markerConfigKey))
			if err != nil {
				return err
			}

			return newWorkflow(cmd).Show(cmd.Context(), domain.ShowArgs{
				Maze:   m.Path(args[0]),
				Marker: marker,
			})
		},
	}
}

func init() {
	rootCmd.AddCommand(showCmd)
}
