package analyzer

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/g-m-twostay/ordtree/Trees"
)

func joinKeys(keys []int) string {
	s := make([]string, len(keys))
	for i, k := range keys {
		s[i] = strconv.Itoa(k)
	}
	return "[" + strings.Join(s, " ") + "]"
}

func optKey(k int, ok bool) string {
	if !ok {
		return "none"
	}
	return strconv.Itoa(k)
}

// writeSummary prints what the analyzer shows between two commands.
func writeSummary(w io.Writer, t *Tree) {
	level := t.LevelOrder()
	fmt.Fprintln(w, "Initial values :", joinKeys(level))
	fmt.Fprintln(w, "Sorted values  :", joinKeys(Trees.Sort(level)))
	fmt.Fprintln(w, "Height :", t.Height())
	fmt.Fprintln(w, "Size   :", t.Size())
	fmt.Fprintln(w, "Min    :", optKey(t.Minimum()))
	fmt.Fprintln(w, "Max    :", optKey(t.Maximum()))
	fmt.Fprintln(w, "Balanced :", t.Balanced())
}

// writeReport prints the summary and every traversal.
func writeReport(w io.Writer, t *Tree) {
	writeSummary(w, t)
	for _, o := range []Trees.Order{Trees.OrderIn, Trees.OrderPre, Trees.OrderPost, Trees.OrderLevel} {
		var keys []int
		t.Walk(o, func(k int) bool {
			keys = append(keys, k)
			return true
		})
		fmt.Fprintf(w, "%-12s: %s\n", o, joinKeys(keys))
	}
}
