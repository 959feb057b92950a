package outline

import (
	"fmt"
	"io"
	"sync"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// Style names the chroma style used by Highlight.
var Style = "monokai"

var lexerCache sync.Map // lang -> chroma.Lexer

func lexerFor(e Entry) chroma.Lexer {
	if e.Lang != "" {
		if cached, ok := lexerCache.Load(e.Lang); ok {
			return cached.(chroma.Lexer)
		}
	}
	var lexer chroma.Lexer
	if e.Lang != "" {
		lexer = lexers.Get(e.Lang)
	}
	if lexer == nil {
		lexer = lexers.Analyse(e.Text)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)
	if e.Lang != "" {
		lexerCache.Store(e.Lang, lexer)
	}
	return lexer
}

func formatter() chroma.Formatter {
	if f := formatters.Get("terminal256"); f != nil {
		return f
	}
	return formatters.Fallback
}

// Highlight writes the entry to w. Code entries are syntax highlighted
// with ANSI escapes; other entries are written as plain text.
func Highlight(w io.Writer, e Entry) error {
	if e.Kind != EntryCode {
		_, err := fmt.Fprintln(w, e.Text)
		return err
	}
	it, err := lexerFor(e).Tokenise(nil, e.Text+"\n")
	if err != nil {
		return fmt.Errorf("tokenise %s block: %w", e.Lang, err)
	}
	style := styles.Get(Style)
	if style == nil {
		style = styles.Fallback
	}
	if err := formatter().Format(w, style, it); err != nil {
		return fmt.Errorf("format %s block: %w", e.Lang, err)
	}
	return nil
}
