package report

import (
	"fmt"
	"io"
	"sort"

	"github.com/Kargones/logscope/internal/inspect"
	"github.com/Kargones/logscope/internal/logtree"
)

// Hierarchy печатает дерево логгеров обходом в глубину от root.
// Рёбра строятся по идентичности указателя на родителя, а не по
// префиксу имени: логгер, чей родитель переопределён, стоит в дереве
// там, куда указывает его parent, даже если имя говорит иное.
func (r *Reporter) Hierarchy(w io.Writer) error {
	p := newPrinter(w)

	p.line("🌳 LOGGER HIERARCHY")
	p.rule("=", sectionRule)

	// Placeholder'ы в дереве не участвуют: у них нет ни родителя,
	// ни конфигурации.
	var loggers []*logtree.Logger
	for _, name := range r.reg.Names() {
		if r.reg.IsPlaceholder(name) {
			continue
		}
		if l, ok := r.reg.Lookup(name); ok {
			loggers = append(loggers, l)
		}
	}

	r.printSubtree(p, r.reg.Root(), loggers, 0)
	p.blank()

	return p.err()
}

func (r *Reporter) printSubtree(p *printer, node *logtree.Logger, loggers []*logtree.Logger, depth int) {
	prefix := ""
	for i := 0; i < depth; i++ {
		prefix += "  "
	}

	name := node.Name()
	if name == "" {
		name = inspect.SentinelRoot
	}

	handlers := "(no handlers)"
	if n := len(node.Handlers()); n > 0 {
		handlers = fmt.Sprintf("(%d handlers)", n)
	}

	p.line("%s├─ %s [Level: %d] %s", prefix, name, int(node.EffectiveLevel()), handlers)

	var children []*logtree.Logger
	for _, l := range loggers {
		if l.Parent() == node {
			children = append(children, l)
		}
	}
	sort.Slice(children, func(i, j int) bool {
		return children[i].Name() < children[j].Name()
	})

	for _, child := range children {
		r.printSubtree(p, child, loggers, depth+1)
	}
}
