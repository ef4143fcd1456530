package report

import (
	"io"
	"strings"

	"github.com/Kargones/logscope/internal/inspect"
)

// AllLoggers печатает каждую запись реестра в лексикографическом
// порядке имён. Placeholder'ы помечаются одной строкой без деталей,
// материализованные логгеры получают сводку и по строке на обработчик.
func (r *Reporter) AllLoggers(w io.Writer) error {
	p := newPrinter(w)

	p.line("📚 ALL LOGGERS")
	p.rule("=", sectionRule)

	names := r.reg.Names()
	if len(names) == 0 {
		p.line("No named loggers configured.")
		return p.err()
	}

	p.line("Total loggers: %d", len(names))
	p.blank()

	for _, name := range names {
		if r.reg.IsPlaceholder(name) {
			p.line("📍 %s (PlaceHolder)", name)
			continue
		}

		l, ok := r.reg.Lookup(name)
		if !ok {
			continue
		}
		info := inspect.InspectLogger(l)

		p.line("📖 %s", name)
		p.line("  Level: %s (%d)", info.Level, info.LevelNum)
		p.line("  Effective Level: %s (%d)", info.EffectiveLevel, info.EffectiveLevelNum)
		p.line("  Propagate: %v", info.Propagate)
		p.line("  Disabled: %v", info.Disabled)
		p.line("  Parent: %s", info.Parent)
		p.line("  Handlers: %d", len(info.Handlers))

		// Фильтры печатаются только при наличии, в отличие от
		// секции root-логгера.
		if len(info.Filters) > 0 {
			p.line("  Filters: %s", strings.Join(info.Filters, ", "))
		}

		for i, h := range info.Handlers {
			p.line("    Handler %d: %s (Level: %s)", i+1, h.Kind, h.Level)
		}
		p.blank()
	}

	return p.err()
}
