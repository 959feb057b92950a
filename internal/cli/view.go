package cli

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/odvcencio/sectionlist/layout"
	"github.com/odvcencio/sectionlist/outline"
	"github.com/odvcencio/sectionlist/runtime"
	"github.com/odvcencio/sectionlist/state"
	"github.com/odvcencio/sectionlist/widgets"
)

func newViewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "view <definition>",
		Short: "Browse the list in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := loadList(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			screen, err := tcell.NewScreen()
			if err != nil {
				return fmt.Errorf("open terminal: %w", err)
			}
			if err := screen.Init(); err != nil {
				return fmt.Errorf("init terminal: %w", err)
			}
			defer screen.Fini()
			return runView(cmd.Context(), screen, l)
		},
	}
}

func newListView(l *list) *widgets.SectionList[outline.Entry] {
	title := l.def.Title
	return widgets.NewSectionList(state.NewSignal(l.sections), l.def.Config(), widgets.Renderer[outline.Entry]{
		ListHeader: func() string { return title },
		Header:     func(s layout.Section[outline.Entry], _ int) string { return s.Title },
		Row:        func(e outline.Entry, _, _ int) string { return e.Text },
	})
}

func runView(ctx context.Context, screen tcell.Screen, l *list) error {
	view := newListView(l)
	defer view.Unmount()
	app := runtime.NewApp(runtime.AppConfig{Screen: screen, Root: view})
	err := app.Run(ctx)
	if err == context.Canceled {
		return nil
	}
	return err
}
