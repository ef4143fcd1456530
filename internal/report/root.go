package report

import (
	"io"
	"strings"

	"github.com/Kargones/logscope/internal/inspect"
)

// RootLogger печатает отчёт о root-логгере: сводку (уровень, действующий
// уровень, disabled, число обработчиков, фильтры) и полное описание
// каждого обработчика с двумя диагностическими полями: идентификатором
// экземпляра (стабилен только внутри одного запуска процесса) и пакетом,
// определяющим вид обработчика.
func (r *Reporter) RootLogger(w io.Writer) error {
	p := newPrinter(w)

	p.line("🌟 ROOT LOGGER")
	p.rule("=", sectionRule)

	root := r.reg.Root()
	info := inspect.InspectLogger(root)

	p.line("Level: %s (%d)", info.Level, info.LevelNum)
	p.line("Effective Level: %s (%d)", info.EffectiveLevel, info.EffectiveLevelNum)
	p.line("Disabled: %v", info.Disabled)
	p.line("Handlers: %d", len(info.Handlers))

	if len(info.Filters) > 0 {
		p.line("Filters: %s", strings.Join(info.Filters, ", "))
	} else {
		p.line("Filters: %s", inspect.SentinelNone)
	}
	p.blank()

	// Нумерация обработчиков 1-based, порядок — порядок прикрепления.
	handlers := root.Handlers()
	if len(handlers) == 0 {
		p.line("📋 ROOT LOGGER HANDLERS: %s", inspect.SentinelNone)
		p.blank()
		return p.err()
	}

	p.line("📋 ROOT LOGGER HANDLERS")
	p.rule("-", subRule)
	for i, h := range handlers {
		p.line("Handler %d:", i+1)
		printHandlerDetails(p, inspect.InspectHandler(h), "    ")

		// Идентификатор осмыслен только в рамках этого процесса.
		p.line("    Handler ID: %p", h)
		p.line("    Module: %s", inspect.KindPackage(h))
		p.blank()
	}

	return p.err()
}
