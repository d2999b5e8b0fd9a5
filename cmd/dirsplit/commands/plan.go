package commands

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/marmos91/dirsplit/internal/bytesize"
	"github.com/marmos91/dirsplit/internal/cli/output"
	"github.com/marmos91/dirsplit/pkg/split"
)

var (
	planInDir  string
	planShards int
	planOutput string
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Preview the shard distribution without transferring anything",
	Long: `Compute the shard distribution a run would produce and print it.

The plan enumerates the source directory and shows, for every shard, how
many files and bytes it would receive and the first and last file assigned
to it. No directories are created and no files are moved or copied.

Examples:
  # Preview splitting into 10 shards
  dirsplit plan --in_dir /data/photos -n 10

  # Plan as JSON for scripting
  dirsplit plan --in_dir /data/photos -n 10 -o json`,
	RunE: runPlan,
}

func init() {
	planCmd.Flags().StringVar(&planInDir, "in_dir", "", "Source directory whose files would be split")
	planCmd.Flags().IntVarP(&planShards, "n", "n", 0, "Number of shard directories")
	planCmd.Flags().StringVarP(&planOutput, "output", "o", "table", "Output format (table|json|yaml)")

	_ = planCmd.MarkFlagRequired("in_dir")
	_ = planCmd.MarkFlagRequired("n")
}

// planTable renders a plan's shards for table output.
type planTable split.Plan

// Headers implements TableRenderer.
func (p planTable) Headers() []string {
	return []string{"SHARD", "FILES", "BYTES", "FIRST", "LAST"}
}

// Rows implements TableRenderer.
func (p planTable) Rows() [][]string {
	rows := make([][]string, 0, len(p.Shards))
	for _, shard := range p.Shards {
		first, last := shard.First, shard.Last
		if first == "" {
			first = "-"
		}
		if last == "" {
			last = "-"
		}
		rows = append(rows, []string{
			shard.Name,
			strconv.Itoa(shard.Files),
			bytesize.ByteSize(shard.Bytes).String(),
			first,
			last,
		})
	}
	return rows
}

func runPlan(cmd *cobra.Command, args []string) error {
	format, err := output.ParseFormat(planOutput)
	if err != nil {
		return err
	}

	plan, err := split.BuildPlan(planInDir, planShards)
	if err != nil {
		return err
	}

	if format != output.FormatTable {
		return output.NewPrinter(os.Stdout, format, false).Print(plan)
	}

	if err := output.PrintTable(os.Stdout, planTable(*plan)); err != nil {
		return err
	}
	fmt.Printf("Total: %d files, %s\n", plan.TotalFiles, bytesize.ByteSize(plan.TotalBytes))
	return nil
}
