package cli

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/odvcencio/sectionlist/layout"
)

func newLookupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lookup <definition> <index>...",
		Short: "Print the length, offset and index of flat indexes",
		Long: `Prints one JSON object per index. Indexes that do not address a header,
row or footer print a zero length and offset.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			indexes := make([]int, 0, len(args)-1)
			for _, arg := range args[1:] {
				i, err := strconv.Atoi(arg)
				if err != nil {
					return fmt.Errorf("invalid index %q: %w", arg, err)
				}
				indexes = append(indexes, i)
			}
			l, err := loadList(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			lookup := layout.Build(l.def.Config())
			enc := json.NewEncoder(cmd.OutOrStdout())
			for _, i := range indexes {
				if err := enc.Encode(lookup(l.sections, i)); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newLocateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "locate <definition> <section> <item|header|footer>",
		Short: "Print the flat index and layout of a section position",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			section, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid section %q: %w", args[1], err)
			}
			item, err := parseItem(args[2])
			if err != nil {
				return err
			}
			l, err := loadList(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			index, ok := layout.IndexOf(l.sections, section, item)
			if !ok {
				return fmt.Errorf("no element at section %d item %s", section, args[2])
			}
			el, found := l.calc.Locate(l.sections, index)
			if !found {
				return fmt.Errorf("section %d item %s is not laid out: the list has no rows", section, args[2])
			}
			return json.NewEncoder(cmd.OutOrStdout()).Encode(el)
		},
	}
}
