package logtree

import "strings"

// Filter — предикат, прикрепляемый к логгеру или обработчику.
// Инспектор читает только имя вида фильтра (Name), глубже не заглядывает.
type Filter interface {
	// Name возвращает имя вида фильтра для отчётов.
	Name() string

	// Allow решает, пропустить ли запись дальше.
	Allow(rec *Record) bool
}

// NameFilter пропускает записи логгера с заданным именем и всех его
// потомков по точечной иерархии. Пустое имя пропускает всё.
type NameFilter struct {
	prefix string
}

// NewNameFilter создаёт NameFilter для указанного имени логгера.
func NewNameFilter(name string) *NameFilter {
	return &NameFilter{prefix: name}
}

// Name возвращает "NameFilter".
func (f *NameFilter) Name() string { return "NameFilter" }

// Allow пропускает запись, если имя её логгера равно prefix
// или начинается с "prefix.".
func (f *NameFilter) Allow(rec *Record) bool {
	if f.prefix == "" {
		return true
	}
	if rec.LoggerName == f.prefix {
		return true
	}
	return strings.HasPrefix(rec.LoggerName, f.prefix+".")
}

// LevelFilter пропускает записи не ниже заданного уровня.
// Используется когда порог нужен отдельно от порога обработчика.
type LevelFilter struct {
	min Level
}

// NewLevelFilter создаёт LevelFilter с минимальным уровнем min.
func NewLevelFilter(min Level) *LevelFilter {
	return &LevelFilter{min: min}
}

// Name возвращает "LevelFilter".
func (f *LevelFilter) Name() string { return "LevelFilter" }

// Allow пропускает запись с уровнем >= min.
func (f *LevelFilter) Allow(rec *Record) bool {
	return rec.Level >= f.min
}

// allowAll применяет список фильтров к записи.
// Пустой список пропускает всё; запись отклоняется первым же
// фильтром, вернувшим false.
func allowAll(filters []Filter, rec *Record) bool {
	for _, f := range filters {
		if !f.Allow(rec) {
			return false
		}
	}
	return true
}

// filterNames возвращает имена видов фильтров в порядке прикрепления.
// Для пустого списка возвращается nil — отчёты печатают "None".
func filterNames(filters []Filter) []string {
	if len(filters) == 0 {
		return nil
	}
	names := make([]string, 0, len(filters))
	for _, f := range filters {
		names = append(names, f.Name())
	}
	return names
}
