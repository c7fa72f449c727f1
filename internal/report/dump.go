package report

import (
	"bytes"
	"fmt"
	"io"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"

	"github.com/holdall/holdall/internal/inventory"
)

// Dump writes the subtree as yaml or json source. With color enabled the
// output is syntax-highlighted for 256-color terminals.
func Dump(w io.Writer, root *inventory.Item, format string, color bool) error {
	var src []byte
	switch format {
	case "yaml":
		b, err := inventory.Encode(root)
		if err != nil {
			return err
		}
		src = b
	case "json":
		var buf bytes.Buffer
		if err := inventory.EncodeJSON(&buf, root); err != nil {
			return err
		}
		src = buf.Bytes()
	default:
		return fmt.Errorf("unsupported dump format: %s", format)
	}
	if !color {
		_, err := w.Write(src)
		return err
	}
	_, err := io.WriteString(w, highlight(string(src), format))
	return err
}

func highlight(code, language string) string {
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	style := styles.Get("monokai")
	if style == nil {
		style = styles.Fallback
	}
	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return code
	}
	var buf bytes.Buffer
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return code
	}
	return buf.String()
}
