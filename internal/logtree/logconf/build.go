package logconf

import (
	"fmt"
	"os"
	"sort"

	"github.com/Kargones/logscope/internal/logtree"
	"github.com/Kargones/logscope/internal/pkg/apperrors"
)

// Apply строит объекты по конфигурации и прикрепляет их к реестру.
// Порядок применения: форматтеры → фильтры → обработчики → именованные
// логгеры (в лексикографическом порядке имён) → root. Именованные
// секции обходятся сортированно, чтобы повторный запуск с тем же файлом
// давал идентичное дерево.
func Apply(cfg *Config, reg *logtree.Registry) error {
	if cfg.Version != 1 {
		return apperrors.New(apperrors.ErrSetupBuild,
			fmt.Sprintf("неподдерживаемая версия файла настройки: %d", cfg.Version), nil)
	}

	reg.SetCaptureWarnings(cfg.CaptureWarnings)

	formatters := buildFormatters(cfg.Formatters)

	filters, err := buildFilters(cfg.Filters)
	if err != nil {
		return err
	}

	handlers, err := buildHandlers(cfg.Handlers, formatters, filters)
	if err != nil {
		return err
	}

	names := make([]string, 0, len(cfg.Loggers))
	for name := range cfg.Loggers {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		lc := cfg.Loggers[name]
		if err := configureLogger(reg.GetLogger(name), &lc, handlers, filters); err != nil {
			return err
		}
	}

	if cfg.Root != nil {
		if err := configureLogger(reg.Root(), cfg.Root, handlers, filters); err != nil {
			return err
		}
	}

	return nil
}

// buildFormatters создаёт форматтеры по декларациям.
func buildFormatters(decls map[string]FormatterConfig) map[string]*logtree.Formatter {
	out := make(map[string]*logtree.Formatter, len(decls))
	for name, fc := range decls {
		f := logtree.NewFormatter()
		if fc.Template != "" {
			f.Template = fc.Template
		}
		if fc.DateFmt != "" {
			f.DateFormat = fc.DateFmt
		}
		if fc.Style != "" {
			f.Style = fc.Style
		}
		out[name] = f
	}
	return out
}

// buildFilters создаёт фильтры по декларациям.
func buildFilters(decls map[string]FilterConfig) (map[string]logtree.Filter, error) {
	out := make(map[string]logtree.Filter, len(decls))
	for name, fc := range decls {
		switch fc.Kind {
		case "name":
			out[name] = logtree.NewNameFilter(fc.Name)
		case "level":
			level, err := logtree.ParseLevel(fc.Level)
			if err != nil {
				return nil, apperrors.New(apperrors.ErrSetupBuild,
					fmt.Sprintf("фильтр %q: некорректный уровень", name), err)
			}
			out[name] = logtree.NewLevelFilter(level)
		default:
			// Схема не пропустит неизвестный kind; ветка — страховка
			// на случай вызова Apply с Config, собранным вручную.
			return nil, apperrors.New(apperrors.ErrSetupBuild,
				fmt.Sprintf("фильтр %q: неизвестный вид %q", name, fc.Kind), nil)
		}
	}
	return out, nil
}

// buildHandlers создаёт обработчики по декларациям и прикрепляет к ним
// форматтеры и фильтры.
func buildHandlers(decls map[string]HandlerConfig, formatters map[string]*logtree.Formatter, filters map[string]logtree.Filter) (map[string]logtree.Handler, error) {
	out := make(map[string]logtree.Handler, len(decls))

	names := make([]string, 0, len(decls))
	for name := range decls {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		hc := decls[name]

		h, err := newHandler(name, &hc)
		if err != nil {
			return nil, err
		}

		if hc.Level != "" {
			level, err := logtree.ParseLevel(hc.Level)
			if err != nil {
				return nil, apperrors.New(apperrors.ErrSetupBuild,
					fmt.Sprintf("обработчик %q: некорректный уровень", name), err)
			}
			h.SetLevel(level)
		}

		if hc.Formatter != "" {
			f, ok := formatters[hc.Formatter]
			if !ok {
				return nil, apperrors.New(apperrors.ErrSetupDangling,
					fmt.Sprintf("обработчик %q ссылается на неизвестный форматтер %q", name, hc.Formatter), nil)
			}
			h.SetFormatter(f)
		}

		for _, fname := range hc.Filters {
			f, ok := filters[fname]
			if !ok {
				return nil, apperrors.New(apperrors.ErrSetupDangling,
					fmt.Sprintf("обработчик %q ссылается на неизвестный фильтр %q", name, fname), nil)
			}
			h.AddFilter(f)
		}

		out[name] = h
	}

	return out, nil
}

// newHandler создаёт обработчик нужного вида.
func newHandler(name string, hc *HandlerConfig) (logtree.Handler, error) {
	switch hc.Kind {
	case "stream":
		switch hc.Stream {
		case "stdout":
			return logtree.NewStreamHandler(os.Stdout), nil
		case "stderr", "":
			return logtree.NewStreamHandler(os.Stderr), nil
		default:
			return nil, apperrors.New(apperrors.ErrSetupBuild,
				fmt.Sprintf("обработчик %q: неизвестный поток %q", name, hc.Stream), nil)
		}
	case "file":
		h, err := logtree.NewFileHandler(hc.Path, hc.Mode, hc.Encoding)
		if err != nil {
			return nil, apperrors.New(apperrors.ErrSetupBuild,
				fmt.Sprintf("обработчик %q: не удалось создать file handler", name), err)
		}
		return h, nil
	case "rotating_file":
		h, err := logtree.NewRotatingFileHandler(hc.Path, hc.MaxBytes, hc.BackupCount)
		if err != nil {
			return nil, apperrors.New(apperrors.ErrSetupBuild,
				fmt.Sprintf("обработчик %q: не удалось создать rotating file handler", name), err)
		}
		return h, nil
	case "timed_rotating_file":
		h, err := logtree.NewTimedRotatingFileHandler(hc.Path, hc.When, hc.Interval, hc.BackupCount)
		if err != nil {
			return nil, apperrors.New(apperrors.ErrSetupBuild,
				fmt.Sprintf("обработчик %q: не удалось создать timed rotating file handler", name), err)
		}
		return h, nil
	default:
		return nil, apperrors.New(apperrors.ErrSetupBuild,
			fmt.Sprintf("обработчик %q: неизвестный вид %q", name, hc.Kind), nil)
	}
}

// configureLogger применяет декларацию к логгеру.
func configureLogger(l *logtree.Logger, lc *LoggerConfig, handlers map[string]logtree.Handler, filters map[string]logtree.Filter) error {
	target := l.Name()
	if target == "" {
		target = "root"
	}

	if lc.Level != "" {
		level, err := logtree.ParseLevel(lc.Level)
		if err != nil {
			return apperrors.New(apperrors.ErrSetupBuild,
				fmt.Sprintf("логгер %q: некорректный уровень", target), err)
		}
		l.SetLevel(level)
	}

	if lc.Propagate != nil {
		l.SetPropagate(*lc.Propagate)
	}
	l.SetDisabled(lc.Disabled)

	for _, hname := range lc.Handlers {
		h, ok := handlers[hname]
		if !ok {
			return apperrors.New(apperrors.ErrSetupDangling,
				fmt.Sprintf("логгер %q ссылается на неизвестный обработчик %q", target, hname), nil)
		}
		l.AddHandler(h)
	}

	for _, fname := range lc.Filters {
		f, ok := filters[fname]
		if !ok {
			return apperrors.New(apperrors.ErrSetupDangling,
				fmt.Sprintf("логгер %q ссылается на неизвестный фильтр %q", target, fname), nil)
		}
		l.AddFilter(f)
	}

	return nil
}
