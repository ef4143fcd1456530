package report

import (
	"io"
	"sort"

	"github.com/Kargones/logscope/internal/inspect"
	"github.com/Kargones/logscope/internal/logtree"
)

// ownedHandler — обработчик вместе с именем логгера-владельца.
type ownedHandler struct {
	owner   string
	handler logtree.Handler
}

// HandlerSummary печатает сводку обработчиков всех логгеров,
// сгруппированную по виду. Группы идут в порядке имён видов; внутри
// группы — порядок перечисления: сначала root, затем материализованные
// логгеры в порядке имён реестра. Placeholder'ы обработчиков не имеют
// и в сводку не попадают.
func (r *Reporter) HandlerSummary(w io.Writer) error {
	p := newPrinter(w)

	p.line("🔧 HANDLER SUMMARY")
	p.rule("=", sectionRule)

	var all []ownedHandler
	for _, h := range r.reg.Root().Handlers() {
		all = append(all, ownedHandler{owner: inspect.SentinelRoot, handler: h})
	}
	for _, name := range r.reg.Names() {
		if r.reg.IsPlaceholder(name) {
			continue
		}
		l, ok := r.reg.Lookup(name)
		if !ok {
			continue
		}
		for _, h := range l.Handlers() {
			all = append(all, ownedHandler{owner: name, handler: h})
		}
	}

	groups := make(map[string][]ownedHandler)
	for _, oh := range all {
		kind := inspect.InspectHandler(oh.handler).Kind
		groups[kind] = append(groups[kind], oh)
	}

	p.line("Total handlers: %d", len(all))
	p.line("Handler types: %d", len(groups))
	p.blank()

	kinds := make([]string, 0, len(groups))
	for kind := range groups {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)

	for _, kind := range kinds {
		members := groups[kind]
		p.line("📌 %s (%d instances)", kind, len(members))
		for _, oh := range members {
			p.line("  └─ Logger: %s, Level: %s", oh.owner, logtree.LevelName(oh.handler.Level()))
		}
		p.blank()
	}

	return p.err()
}
