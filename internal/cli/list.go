package cli

import (
	"context"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/odvcencio/sectionlist/internal/config"
	"github.com/odvcencio/sectionlist/internal/logging"
	"github.com/odvcencio/sectionlist/layout"
	"github.com/odvcencio/sectionlist/outline"
)

// list is a loaded definition ready for layout queries.
type list struct {
	def      *config.Definition
	sections []layout.Section[outline.Entry]
	calc     *layout.Calculator[outline.Entry]
}

func loadList(ctx context.Context, path string) (*list, error) {
	def, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	sections, err := def.LoadSections(ctx)
	if err != nil {
		return nil, fmt.Errorf("load sections: %w", err)
	}
	l := &list{def: def, sections: sections, calc: layout.New(def.Config())}
	logging.Logger().Debug("list ready",
		zap.Int("sections", len(sections)),
		zap.Int("elements", layout.Count(sections)),
		zap.Float64("height", l.calc.TotalHeight(sections)))
	return l, nil
}

// text returns the display text of an element.
func (l *list) text(el layout.Element) string {
	switch el.Kind {
	case layout.KindHeader:
		return l.sections[el.Section].Title
	case layout.KindRow:
		return l.sections[el.Section].Data[el.Item].Text
	default:
		return ""
	}
}

func parseItem(s string) (int, error) {
	switch s {
	case "header":
		return layout.HeaderItem, nil
	case "footer":
		return layout.FooterItem, nil
	}
	item, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid item %q: want a row number, header or footer", s)
	}
	return item, nil
}
