package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"playparse/export"
)

var exportCompress bool

var exportCmd = &cobra.Command{
	Use:   "export <in> [out]",
	Short: "Write the ';' separated segment table of a play file",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		plays, err := readPlaysFrom(args[0])
		if err != nil {
			return err
		}

		outFile := cfg.Export.Path
		if len(args) > 1 {
			outFile = args[1]
		}
		if outFile == "" {
			return fmt.Errorf("missing output file")
		}
		compress := cfg.Export.Compress
		if cmd.Flags().Changed("compress") {
			compress = exportCompress
		}

		descs, _, err := parseAll(cmd.Context(), plays)
		if err != nil {
			return err
		}

		f, err := os.Create(outFile)
		if err != nil {
			return err
		}
		if err := export.WriteAll(f, plays, descs, compress); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	},
}

func init() {
	exportCmd.Flags().BoolVar(&exportCompress, "compress", false, "snappy compress the output")
	rootCmd.AddCommand(exportCmd)
}
