package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"basemedia/core/baseset"
	"basemedia/feature/basesets"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	allFlag  bool
	jsonFlag bool
)

// setsCmd represents the sets command
var setsCmd = &cobra.Command{
	Use:   "sets",
	Short: "Inspect and select base sets",
	Long:  `Scans the media source once and reports on the graphics, sound and music sets it holds.`,
}

var setsListCmd = &cobra.Command{
	Use:   "list [kind]",
	Short: "List the sets of every kind, or of one kind",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := scan(cmd)
		if err != nil {
			return err
		}

		kinds := basesets.Kinds()
		if len(args) == 1 {
			kind, ok := basesets.KindByName(args[0])
			if !ok {
				return fmt.Errorf("%w: %s", basesets.ErrUnknownKind, args[0])
			}
			kinds = []baseset.Kind{kind}
		}

		for _, kind := range kinds {
			if jsonFlag {
				views, err := env.sets.List(kind.Name, allFlag)
				if err != nil {
					return err
				}
				if err := printJSON(views); err != nil {
					return err
				}
				continue
			}
			report, err := env.sets.Report(kind.Name)
			if err != nil {
				return err
			}
			fmt.Print(report)
		}
		return nil
	},
}

var setsSelectCmd = &cobra.Command{
	Use:   "select <kind> [name]",
	Short: "Activate a set by name, or the best set when no name is given",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := scan(cmd)
		if err != nil {
			return err
		}

		name := ""
		if len(args) == 2 {
			name = args[1]
		}
		view, err := env.sets.Select(cmd.Context(), args[0], name)
		if err != nil {
			return err
		}
		env.logger.Info("Base set selected",
			zap.String("kind", args[0]),
			zap.String("name", view.Name),
			zap.Int("version", view.Version),
		)
		return printJSON(view)
	},
}

var setsMatchCmd = &cobra.Command{
	Use:   "match <kind> <id> [md5]",
	Short: "Find a complete set by short id and optional folded checksum",
	Long: `Finds a complete set by short id. The id is a short name, a number, or
either one forced with a name: or id: prefix.`,
	Args:  cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		sum := ""
		if len(args) == 3 {
			sum = args[2]
		}
		queries, err := basesets.ParseContentQuery(args[1], sum)
		if err != nil {
			return err
		}

		env, err := scan(cmd)
		if err != nil {
			return err
		}

		path, ok, err := env.sets.Match(args[0], queries...)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("no %s set matches %s", args[0], args[1])
		}
		fmt.Println(path)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(setsCmd)
	setsCmd.AddCommand(setsListCmd, setsSelectCmd, setsMatchCmd)

	setsListCmd.Flags().BoolVar(&allFlag, "all", false, "Include superseded and unusable sets")
	setsListCmd.Flags().BoolVar(&jsonFlag, "json", false, "Output JSON instead of the listing")
}

// scan bootstraps the service and runs one scan of the media source.
func scan(cmd *cobra.Command) (*environment, error) {
	env, err := bootstrap(cmd.Context())
	if err != nil {
		return nil, err
	}
	if _, err := env.sets.Rescan(cmd.Context()); err != nil {
		return nil, fmt.Errorf("scan failed: %w", err)
	}
	return env, nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
