package report

import (
	"io"
	"reflect"
	"runtime"
	"runtime/debug"

	"github.com/Kargones/logscope/internal/inspect"
	"github.com/Kargones/logscope/internal/logtree"
)

// GlobalConfig печатает отчёт о глобальной конфигурации: версию среды,
// расположение подсистемы логирования, уровень root-логгера, описание
// last-resort обработчика, настройку перехвата предупреждений
// (best-effort) и каноническую таблицу уровней от наибольшей
// серьёзности к наименьшей, NOTSET последним.
func (r *Reporter) GlobalConfig(w io.Writer) error {
	p := newPrinter(w)

	p.line("⚙️  LOGGING CONFIGURATION")
	p.rule("=", sectionRule)
	p.blank()

	p.line("Go version: %s", runtime.Version())
	p.line("Logging module: %s", subsystemPackage())
	p.line("Module: %s", mainModule())
	p.blank()

	p.line("Global Settings:")
	p.line("  Root logger level: %s", logtree.LevelName(r.reg.Root().ConfiguredLevel()))
	p.line("  Last resort handler: %s", lastResortDescription(r.reg))

	// Поле заведомо хрупкое: подсистема может не сообщать настройку,
	// тогда печатается sentinel вместо значения.
	if v, ok := r.reg.CaptureWarningsDefault(); ok {
		p.line("  Capture warnings: %v", v)
	} else {
		p.line("  Capture warnings: %s", inspect.SentinelNA)
	}
	p.blank()

	p.line("Level Names:")
	for _, nl := range logtree.CanonicalLevels() {
		p.line("  %s: %d", nl.Name, int(nl.Value))
	}
	p.blank()

	return p.err()
}

// subsystemPackage возвращает import-путь пакета подсистемы логирования.
func subsystemPackage() string {
	return reflect.TypeOf(logtree.Registry{}).PkgPath()
}

// mainModule возвращает путь и версию главного модуля процесса.
// Build info доступен не всегда (часть тестовых бинарников) —
// тогда возвращается sentinel.
func mainModule() string {
	bi, ok := debug.ReadBuildInfo()
	if !ok || bi.Main.Path == "" {
		return inspect.SentinelNA
	}
	if bi.Main.Version == "" || bi.Main.Version == "(devel)" {
		return bi.Main.Path
	}
	return bi.Main.Path + "@" + bi.Main.Version
}

// lastResortDescription описывает запасной обработчик реестра:
// "<Kind> (Level: <имя>)" или sentinel "None", если он отключён.
func lastResortDescription(reg inspect.Registry) string {
	last := reg.LastResort()
	if last == nil {
		return inspect.SentinelNone
	}
	info := inspect.InspectHandler(last)
	return info.Kind + " (Level: " + info.Level + ")"
}
