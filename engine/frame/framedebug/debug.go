/*
Package framedebug writes frame trees in GraphViz DOT format.

This is intended for debugging layout. Every frame item becomes a node of
the graph, nested groups are connected to their items by edges.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package framedebug

import (
	"fmt"
	"image/color"
	"io"
	"strings"
	"text/template"

	"github.com/npillmayer/boxes/core"
	"github.com/npillmayer/boxes/engine/frame"
	"github.com/npillmayer/schuko/tracing"
)

// maxNodes guards against runaway output for huge frame trees.
const maxNodes = 5000

// Parameters for GraphViz drawing.
type graphParamsType struct {
	Fontname string
	NodeTmpl *template.Template
	EdgeTmpl *template.Template
	cnt      int
}

// ToGraphViz creates a graphical representation of a frame tree.
// It produces a DOT file format suitable as input for Graphviz, given a Writer.
func ToGraphViz(root frame.Frame, w io.Writer, tracer tracing.Trace) error {
	header, err := template.New("frameTree").Parse(graphHeadTmpl)
	if err != nil {
		return core.WrapError(err, core.EINTERNAL, "cannot parse graph header template")
	}
	gparams := graphParamsType{Fontname: "Helvetica"}
	gparams.NodeTmpl = template.Must(template.New("item").Funcs(
		template.FuncMap{
			"label": label,
			"fill":  fill,
		}).Parse(nodeTmpl))
	gparams.EdgeTmpl = template.Must(template.New("itemedge").Parse(edgeTmpl))
	if err = header.Execute(w, gparams); err != nil {
		return core.WrapError(err, core.EINTERNAL, "cannot write graph header")
	}
	rootNode := &gnode{Name: "frame0", Item: frame.Group{Frame: root}}
	if err = gparams.NodeTmpl.Execute(w, rootNode); err != nil {
		return core.WrapError(err, core.EINTERNAL, "cannot write root frame")
	}
	if err = items(rootNode, root, w, &gparams, tracer); err != nil {
		return err
	}
	_, err = w.Write([]byte("}\n"))
	return err
}

func items(parent *gnode, f frame.Frame, w io.Writer, gparams *graphParamsType, tracer tracing.Trace) error {
	for _, it := range f.Items {
		gparams.cnt++
		if gparams.cnt > maxNodes {
			tracer.Errorf("frame tree exceeds %d items, output truncated", maxNodes)
			return nil
		}
		n := &gnode{
			Name: fmt.Sprintf("item%05d", gparams.cnt),
			Item: it.Item,
			Pos:  fmt.Sprintf("(%.1f,%.1f)", it.Pos.X.Points(), it.Pos.Y.Points()),
		}
		tracer.Debugf("item %s = %v @ %s", n.Name, it.Item.ItemType(), n.Pos)
		if err := gparams.NodeTmpl.Execute(w, n); err != nil {
			return core.WrapError(err, core.EINTERNAL, "cannot write item %s", n.Name)
		}
		if err := gparams.EdgeTmpl.Execute(w, gedge{parent, n}); err != nil {
			return core.WrapError(err, core.EINTERNAL, "cannot write edge to %s", n.Name)
		}
		if g, ok := it.Item.(frame.Group); ok {
			if err := items(n, g.Frame, w, gparams, tracer); err != nil {
				return err
			}
		}
	}
	return nil
}

// Helper structs
type gnode struct {
	Name string
	Item frame.Item
	Pos  string
}

type gedge struct {
	N1, N2 *gnode
}

// ---------------------------------------------------------------------------

func label(n *gnode) string {
	var s string
	switch it := n.Item.(type) {
	case frame.Group:
		s = fmt.Sprintf("frame %.1f×%.1f", it.Frame.Size.W.Points(), it.Frame.Size.H.Points())
	case frame.Shape:
		s = fmt.Sprintf("shape %.1f×%.1f", it.Size.W.Points(), it.Size.H.Points())
	case frame.TextRun:
		s = "T " + shortText(it.Text)
	case frame.Embed:
		s = fmt.Sprintf("embed %s [%v]", it.Path, it.Relationship)
	default:
		s = "?"
	}
	if n.Pos != "" {
		s += "\\n@" + n.Pos
	}
	return "\"" + strings.ReplaceAll(s, "\"", "\\\"") + "\""
}

func shortText(txt string) string {
	if r := []rune(txt); len(r) > 10 {
		txt = string(r[:10]) + "…"
	}
	txt = strings.Replace(txt, "\n", `\n`, -1)
	txt = strings.Replace(txt, "\t", `\t`, -1)
	return strings.Replace(txt, " ", "␣", -1)
}

func fill(n *gnode) string {
	switch it := n.Item.(type) {
	case frame.Group:
		return "lightblue3"
	case frame.Shape:
		return colorString(it.Fill)
	case frame.TextRun:
		return "grey95"
	}
	return "white"
}

func colorString(c color.Color) string {
	if c == nil {
		return "grey80"
	}
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("\"#%02x%02x%02x\"", r>>8, g>>8, b>>8)
}

// --- Templates --------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="" splines=true overlap=false rankdir = "LR"];
  graph [fontname = "{{ .Fontname }}" fontsize=12] ;
   node [fontname = "{{ .Fontname }}" fontsize=12] ;
   edge [fontname = "{{ .Fontname }}" fontsize=12] ;
`

const nodeTmpl = `{{ .Name }}	[ label={{ label . }} shape=box style=filled fillcolor={{ fill . }} ] ;
`

const edgeTmpl = `{{ .N1.Name }} -> {{ .N2.Name }} [weight=1] ;
`
