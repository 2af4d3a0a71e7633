package shapes

import (
	"fmt"
	"io"
	"strings"

	"ghsdk/internal/cli/utils"
	"ghsdk/pkg/github"

	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "shapes",
		Aliases: []string{"ls"},
		Short:   "List the registered shapes",
		Long:    `Lists every shape the decode and fetch commands accept, with the wire field renames it applies.`,
		Args:    cobra.NoArgs,
		Run:     utils.RunCommandWrapper(runCmd),
	}

	return cmd
}

func runCmd(cmd *cobra.Command, args []string) error {
	return execute(cmd.OutOrStdout(), github.Shapes())
}

func execute(w io.Writer, shapes []github.ShapeInfo) error {
	table := uitable.New()
	table.AddRow("NAME", "LIST", "RENAMES")
	table.AddRow("----", "----", "-------")

	for _, s := range shapes {
		table.AddRow(s.Name, s.List, formatRenames(s.Renames))
	}

	_, err := fmt.Fprintln(w, table.String())
	return err
}

// formatRenames renders a table as "wire->field" pairs sorted by wire name.
func formatRenames(renames github.RenameTable) string {
	if len(renames) == 0 {
		return "-"
	}

	wire := maps.Keys(renames)
	slices.Sort(wire)

	pairs := make([]string, 0, len(wire))
	for _, k := range wire {
		pairs = append(pairs, fmt.Sprintf("%s->%s", k, renames[k]))
	}

	return strings.Join(pairs, ", ")
}
