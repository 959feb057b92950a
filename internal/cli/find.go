package cli

import (
	"encoding/json"

	"github.com/sahilm/fuzzy"
	"github.com/spf13/cobra"

	"github.com/odvcencio/sectionlist/layout"
)

type findResult struct {
	Score int    `json:"score"`
	Text  string `json:"text"`
	layout.Element
}

func newFindCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "find <definition> <query>",
		Short: "Fuzzy search rows and print where they are laid out",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := loadList(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			var rows []layout.Element
			var texts []string
			for el := range l.calc.Walk(l.sections) {
				if el.Kind != layout.KindRow {
					continue
				}
				rows = append(rows, el)
				texts = append(texts, l.text(el))
			}
			matches := fuzzy.Find(args[1], texts)
			if limit > 0 && len(matches) > limit {
				matches = matches[:limit]
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			for _, m := range matches {
				if err := enc.Encode(findResult{Score: m.Score, Text: m.Str, Element: rows[m.Index]}); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Maximum number of matches (0 for all)")
	return cmd
}
