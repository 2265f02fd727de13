package cmd

import (
	"fmt"
	"github.com/flosch/pongo2"
	"github.com/mmuldo/colormatch/colorspace"
	"github.com/mmuldo/colormatch/match"
	"io"
)

// render executes a pongo2 template string against ctxt and writes the
// result followed by a newline.
func render(w io.Writer, tpl string, ctxt pongo2.Context) error {
	t, e := pongo2.FromString(tpl)
	if e != nil {
		return e
	}

	o, e := t.Execute(ctxt)
	if e != nil {
		return e
	}

	_, e = fmt.Fprintln(w, o)
	return e
}

// swatch is a two-cell block in c's color, as a 24-bit ANSI escape.
func swatch(c colorspace.RGB) string {
	return fmt.Sprintf("\033[48;2;%d;%d;%dm  \033[0m", c.R, c.G, c.B)
}

func colorContext(prefix string, c colorspace.RGB) pongo2.Context {
	return pongo2.Context{
		prefix + "hex":    c.Hex(),
		prefix + "rgb":    c.String(),
		prefix + "swatch": swatch(c),
	}
}

func resultContext(query colorspace.RGB, r match.Result) pongo2.Context {
	ctxt := colorContext("query_", query)
	ctxt.Update(colorContext("", r.Entry.RGB))
	ctxt.Update(pongo2.Context{
		"name":        r.Entry.Name,
		"distance":    r.Distance,
		"description": r.Difference().String(),
	})
	return ctxt
}
