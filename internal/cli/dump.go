package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/odvcencio/sectionlist/layout"
	"github.com/odvcencio/sectionlist/outline"
)

type dumpRecord struct {
	layout.Element
	Text string `json:"text"`
}

func newDumpCmd() *cobra.Command {
	var color bool
	cmd := &cobra.Command{
		Use:   "dump <definition>",
		Short: "Print every header, row and footer with its layout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := loadList(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if color {
				return dumpText(cmd.OutOrStdout(), l)
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			for el := range l.calc.Walk(l.sections) {
				if err := enc.Encode(dumpRecord{Element: el, Text: l.text(el)}); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&color, "color", false, "Print a table with highlighted code rows")
	return cmd
}

func dumpText(w io.Writer, l *list) error {
	for el := range l.calc.Walk(l.sections) {
		if _, err := fmt.Fprintf(w, "%4d %-6s %6g %4g  ", el.Index, el.Kind, el.Offset, el.Length); err != nil {
			return err
		}
		entry := outline.Entry{Kind: outline.EntryHeading, Text: l.text(el)}
		if el.Kind == layout.KindRow {
			entry = l.sections[el.Section].Data[el.Item]
		}
		if err := outline.Highlight(w, entry); err != nil {
			return err
		}
	}
	return nil
}
