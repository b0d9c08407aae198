package snaplist

import (
	"fmt"
	"io"
)

// Snapshot2Dot outputs the section/item hierarchy of a snapshot in Graphviz
// DOT format (for debugging purposes).
func Snapshot2Dot[ID, Tag comparable](snap *Snapshot[ID, Tag], w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	io.WriteString(w, "\trankdir=LR;\n")
	nodelist, edgelist := "", ""
	root := "\"snapshot\""
	nodelist += fmt.Sprintf("%s [label=\"snapshot\\nprev=%v next=%v\" shape=box,style=bold];\n",
		root, snap.PreviousTag(), snap.NextTag())
	sid := 0
	for s := range snap.structure().Sections() {
		secID := fmt.Sprintf("\"s%d\"", sid)
		label := fmt.Sprintf("%s\\n#%v", dotEscape(s.Key()), s.Tag())
		nodelist += fmt.Sprintf("%s [label=\"%s\" shape=box,style=filled,fillcolor=lightgrey];\n",
			secID, label)
		edgelist += fmt.Sprintf("%s -> %s;\n", root, secID)
		iid := 0
		for it := range s.Items() {
			itemID := fmt.Sprintf("\"s%di%d\"", sid, iid)
			label := fmt.Sprintf("%s\\n#%v", dotEscape(fmt.Sprint(it.ID())), it.Tag())
			nodelist += fmt.Sprintf("%s [label=\"%s\" shape=ellipse];\n", itemID, label)
			edgelist += fmt.Sprintf("%s -> %s;\n", secID, itemID)
			iid++
		}
		sid++
	}
	io.WriteString(w, nodelist)
	io.WriteString(w, edgelist)
	io.WriteString(w, "}\n")
}

func dotEscape(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if r == '"' || r == '\\' {
			out = append(out, '\\')
		}
		out = append(out, r)
	}
	return string(out)
}
