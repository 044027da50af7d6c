package tinyvec

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Cell colors for storage dumps. Occupied inline slots print green, empty
// slots faint, heap cells cyan.
var (
	occupiedStyle = color.New(color.FgGreen)
	emptyStyle    = color.New(color.Faint)
	heapStyle     = color.New(color.FgCyan)
)

// Dump writes a diagnostic rendering of the Vec's storage state to w
// (for debugging purposes).
//
// One cell is printed per storage position: every slot of an inline Vec,
// occupied or not, and every buffer cell of a spilled Vec. Cells wrap to the
// terminal width when stdout is interactive. The output format carries no
// stability guarantee.
func Dump[T any](v *Vec[T], w io.Writer) {
	if v == nil {
		fmt.Fprintln(w, "<nil vec>")
		return
	}
	fmt.Fprintf(w, "vec len=%d stack-capacity=%d spilled=%v\n", v.Len(), v.Cap(), v.HasSpilled())
	if v.store == nil {
		return
	}
	width := terminalWidth()
	line := 0
	cell := func(c *color.Color, format string, args ...any) {
		s := fmt.Sprintf(format, args...)
		if line > 0 && line+len(s)+1 > width {
			fmt.Fprintln(w)
			line = 0
		}
		if line > 0 {
			io.WriteString(w, " ")
			line++
		}
		c.Fprint(w, s)
		line += len(s)
	}
	switch st := v.store.(type) {
	case *inlineStore[T]:
		for i := 0; i < st.slots.Cap(); i++ {
			if p := st.slots.At(i); p != nil {
				cell(occupiedStyle, "[%d]=%v", i, *p)
			} else {
				cell(emptyStyle, "[%d]=_", i)
			}
		}
	case *heapStore[T]:
		for i, item := range st.items {
			cell(heapStyle, "[%d]=%v", i, item)
		}
	}
	fmt.Fprintln(w)
}

// Dot outputs the internal structure of a Vec in Graphviz DOT format
// (for debugging purposes).
func Dot[T any](v *Vec[T], w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	if v == nil {
		io.WriteString(w, "}\n")
		return
	}
	fmt.Fprintf(w, "\"vec\" [label=\"len=%d\",style=filled,color=black,fillcolor=\"#a3d7e4\",shape=circle];\n", v.Len())
	mode := "inline"
	if v.HasSpilled() {
		mode = "heap"
	}
	fmt.Fprintf(w, "\"store\" [label=\"%s\",style=filled,shape=box];\n", mode)
	io.WriteString(w, "\"vec\" -> \"store\";\n")
	switch st := v.store.(type) {
	case *inlineStore[T]:
		for i := 0; i < st.slots.Cap(); i++ {
			if p := st.slots.At(i); p != nil {
				fmt.Fprintf(w, "\"%d\" [label=\"%d: %v\",shape=box];\n", i+1, i, *p)
			} else {
				fmt.Fprintf(w, "\"%d\" [label=\"\",color=black,shape=circle,fixedsize=true,width=.4];\n", i+1)
			}
			fmt.Fprintf(w, "\"store\" -> \"%d\";\n", i+1)
		}
	case *heapStore[T]:
		for i, item := range st.items {
			fmt.Fprintf(w, "\"%d\" [label=\"%d: %v\",shape=box];\n", i+1, i, item)
			fmt.Fprintf(w, "\"store\" -> \"%d\";\n", i+1)
		}
	}
	io.WriteString(w, "}\n")
}

func terminalWidth() int {
	if term.IsTerminal(0) {
		if w, _, err := term.GetSize(0); err == nil && w > 0 {
			return w
		}
	}
	return 80
}
