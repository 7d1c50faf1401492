package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"playparse/builder"
)

var (
	buildScript string
	buildJSON   bool
)

var buildCmd = &cobra.Command{
	Use:   "build <games.csv>",
	Short: "Build games from a season file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		script := cfg.Builder.Script
		if cmd.Flags().Changed("script") {
			script = buildScript
		}
		var transform builder.Transform = builder.BasicPlayMaker{}
		if script != "" {
			transform, err = builder.NewScriptPlayMaker(script)
			if err != nil {
				return err
			}
		}

		maker := builder.NewPlayMaker(nil, transform, builder.MergeAliases(cfg.Builder.TeamAliases))
		out := cmd.OutOrStdout()
		enc := json.NewEncoder(out)
		games := 0
		err = builder.NewGameFactory(maker).Games(f, func(g *builder.Game) error {
			games++
			if buildJSON {
				return enc.Encode(g)
			}
			captured := 0
			for _, p := range g.Plays {
				if p.Type != builder.NA {
					captured++
				}
			}
			_, err := fmt.Fprintf(out, "%d %s@%s %d-%d winner=%s plays=%d captured=%d\n",
				g.Date, g.Away, g.Home, g.AwayPoints, g.HomePoints, g.Winner, len(g.Plays), captured)
			return err
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "%d games\n", games)
		return nil
	},
}

func init() {
	buildCmd.Flags().StringVar(&buildScript, "script", "", "Lua script defining transform(seg)")
	buildCmd.Flags().BoolVar(&buildJSON, "json", false, "print one JSON game per line")
	rootCmd.AddCommand(buildCmd)
}
