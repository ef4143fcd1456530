package inspect

import (
	"reflect"
	"strconv"

	"github.com/Kargones/logscope/internal/logtree"
)

// HandlerInfo — display-ориентированное описание одного обработчика.
type HandlerInfo struct {
	// Kind — имя конкретного вида обработчика ("StreamHandler" и т.п.).
	Kind string

	// Level — символьное имя порога.
	Level string

	// LevelNum — числовое значение порога.
	LevelNum int

	// Formatter — описание форматтера; nil — форматтер не прикреплён
	// (отчёты печатают sentinel "None").
	Formatter *FormatterInfo

	// Extra — вид-специфичные поля в порядке вывода.
	// Для нераспознанного вида список пуст.
	Extra []ExtraField

	// Filters — имена видов фильтров обработчика; nil — фильтров нет.
	Filters []string
}

// FormatterInfo — описание форматтера обработчика.
type FormatterInfo struct {
	// Format — шаблон строки ("N/A", если не задан).
	Format string

	// DateFormat — формат времени ("N/A", если не задан).
	DateFormat string

	// Style — стиль токенов ("N/A", если не задан).
	Style string
}

// ExtraField — одно вид-специфичное поле обработчика.
type ExtraField struct {
	Label string
	Value string
}

// InspectHandler строит описание обработчика.
// Вид-специфичные поля определяются закрытым упорядоченным набором
// проверок: плоский файл → ротация по размеру → ротация по времени →
// поток; обработчик описывается ПЕРВОЙ совпавшей проверкой, порядок —
// контракт. Нераспознанный вид получает только общие поля.
func InspectHandler(h logtree.Handler) *HandlerInfo {
	level := h.Level()
	info := &HandlerInfo{
		Kind:     kindName(h),
		Level:    logtree.LevelName(level),
		LevelNum: int(level),
		Filters:  filterKindNames(h.Filters()),
	}

	if f := h.Formatter(); f != nil {
		info.Formatter = &FormatterInfo{
			Format:     orNA(f.Template),
			DateFormat: orNA(f.DateFormat),
			Style:      orNA(f.Style),
		}
	}

	switch v := h.(type) {
	case *logtree.FileHandler:
		info.Extra = []ExtraField{
			{Label: "File", Value: orNA(v.Path())},
			{Label: "Mode", Value: orNA(v.Mode())},
			{Label: "Encoding", Value: orNA(v.Encoding())},
		}
	case *logtree.RotatingFileHandler:
		info.Extra = []ExtraField{
			{Label: "File", Value: orNA(v.Path())},
			{Label: "Max Bytes", Value: strconv.Itoa(v.MaxBytes())},
			{Label: "Backup Count", Value: strconv.Itoa(v.BackupCount())},
		}
	case *logtree.TimedRotatingFileHandler:
		info.Extra = []ExtraField{
			{Label: "File", Value: orNA(v.Path())},
			{Label: "When", Value: orNA(v.When())},
			{Label: "Interval", Value: strconv.Itoa(v.Interval())},
			{Label: "Backup Count", Value: strconv.Itoa(v.BackupCount())},
		}
	case *logtree.StreamHandler:
		info.Extra = []ExtraField{
			{Label: "Stream", Value: orNA(v.StreamName())},
		}
	}

	return info
}

// kindName возвращает имя конкретного типа обработчика без пакета.
// Для nil-обработчика — sentinel "N/A".
func kindName(h logtree.Handler) string {
	if h == nil {
		return SentinelNA
	}
	t := reflect.TypeOf(h)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Name() == "" {
		return SentinelNA
	}
	return t.Name()
}

// KindPackage возвращает import-путь пакета, определяющего конкретный
// вид обработчика, или "N/A", если он недоступен.
func KindPackage(h logtree.Handler) string {
	if h == nil {
		return SentinelNA
	}
	t := reflect.TypeOf(h)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if path := t.PkgPath(); path != "" {
		return path
	}
	return SentinelNA
}

// filterKindNames возвращает имена видов фильтров.
func filterKindNames(filters []logtree.Filter) []string {
	if len(filters) == 0 {
		return nil
	}
	names := make([]string, 0, len(filters))
	for _, f := range filters {
		names = append(names, f.Name())
	}
	return names
}

// orNA подменяет пустую строку sentinel'ом "N/A".
func orNA(s string) string {
	if s == "" {
		return SentinelNA
	}
	return s
}
