package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	parseSummary bool
	parseJSON    bool
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse plays, one per line, from a file or stdin",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		file := ""
		if len(args) > 0 {
			file = args[0]
		}
		plays, err := readPlaysFrom(file)
		if err != nil {
			return err
		}

		descs, stats, err := parseAll(cmd.Context(), plays)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		switch {
		case parseSummary:
		case parseJSON:
			enc := json.NewEncoder(out)
			for _, desc := range descs {
				if err := enc.Encode(desc); err != nil {
					return err
				}
			}
		default:
			for i, desc := range descs {
				fmt.Fprintf(out, "%d: %s\n", i+1, plays[i])
				for _, seg := range desc.Segments {
					fmt.Fprintf(out, "\t%v\n", seg)
				}
			}
		}
		fmt.Fprintln(out, stats)
		return nil
	},
}

func init() {
	parseCmd.Flags().BoolVar(&parseSummary, "summary", false, "print only the totals")
	parseCmd.Flags().BoolVar(&parseJSON, "json", false, "print one JSON description per line")
	rootCmd.AddCommand(parseCmd)
}
