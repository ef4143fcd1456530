// Package logtree реализует иерархическую подсистему логирования:
// именованные логгеры с parent-ссылками, обработчики (handlers),
// форматтеры и фильтры. Пакет является "хозяином" состояния, которое
// читает инспектор (internal/inspect) и отчёты (internal/report).
package logtree

import "fmt"

// Level задаёт числовой уровень серьёзности записи.
// Шкала совместима с каноническими уровнями: чем больше число,
// тем серьёзнее событие. NOTSET означает "уровень не задан" —
// эффективный уровень наследуется от родителя.
type Level int

// Канонические уровни, от наибольшей серьёзности к наименьшей.
const (
	LevelCritical Level = 50
	LevelError    Level = 40
	LevelWarning  Level = 30
	LevelInfo     Level = 20
	LevelDebug    Level = 10
	LevelNotSet   Level = 0
)

// levelNames — таблица имя↔число для канонических уровней.
// Единственный источник истины: LevelName, ParseLevel и
// CanonicalLevels используют её.
var levelNames = map[Level]string{
	LevelCritical: "CRITICAL",
	LevelError:    "ERROR",
	LevelWarning:  "WARNING",
	LevelInfo:     "INFO",
	LevelDebug:    "DEBUG",
	LevelNotSet:   "NOTSET",
}

// LevelName возвращает символьное имя уровня.
// Для незарегистрированного значения возвращается "Level <n>" —
// так же поступает и таблица уровней в отчётах.
func LevelName(level Level) string {
	if name, ok := levelNames[level]; ok {
		return name
	}
	return fmt.Sprintf("Level %d", int(level))
}

// ParseLevel конвертирует символьное имя уровня в Level.
// Регистр имени значим: ожидаются канонические имена ("INFO" и т.п.).
// При неизвестном имени возвращается ошибка — в декларативной
// конфигурации опечатка в уровне должна быть видимой.
func ParseLevel(name string) (Level, error) {
	for level, n := range levelNames {
		if n == name {
			return level, nil
		}
	}
	return LevelNotSet, fmt.Errorf("неизвестный уровень логирования %q", name)
}

// NamedLevel — пара "имя уровня + число" для канонической таблицы.
type NamedLevel struct {
	Name  string
	Value Level
}

// CanonicalLevels возвращает каноническую таблицу уровней в фиксированном
// порядке: от наибольшей серьёзности к наименьшей, NOTSET последним.
// Порядок — контракт отчёта о глобальной конфигурации.
func CanonicalLevels() []NamedLevel {
	return []NamedLevel{
		{Name: "CRITICAL", Value: LevelCritical},
		{Name: "ERROR", Value: LevelError},
		{Name: "WARNING", Value: LevelWarning},
		{Name: "INFO", Value: LevelInfo},
		{Name: "DEBUG", Value: LevelDebug},
		{Name: "NOTSET", Value: LevelNotSet},
	}
}
