package inspect

import "github.com/Kargones/logscope/internal/logtree"

// LoggerInfo — display-ориентированное описание одного логгера.
type LoggerInfo struct {
	// Name — полное точечное имя ("" у root).
	Name string

	// Level — символьное имя явно заданного уровня.
	Level string

	// LevelNum — числовое значение явно заданного уровня.
	LevelNum int

	// EffectiveLevel — символьное имя действующего уровня
	// (разрешённого через цепочку родителей).
	EffectiveLevel string

	// EffectiveLevelNum — числовое значение действующего уровня.
	EffectiveLevelNum int

	// Propagate — передаются ли записи предкам.
	Propagate bool

	// Disabled — выключен ли логгер.
	Disabled bool

	// Parent — имя родителя; sentinel "root", когда родитель — root
	// или отсутствует.
	Parent string

	// Handlers — описания обработчиков в порядке прикрепления.
	Handlers []*HandlerInfo

	// Filters — имена видов фильтров логгера; nil — фильтров нет.
	Filters []string
}

// InspectLogger строит описание логгера, включая описания всех его
// обработчиков. Чистое чтение: ни логгер, ни реестр не изменяются.
func InspectLogger(l *logtree.Logger) *LoggerInfo {
	level := l.ConfiguredLevel()
	effective := l.EffectiveLevel()

	info := &LoggerInfo{
		Name:              l.Name(),
		Level:             logtree.LevelName(level),
		LevelNum:          int(level),
		EffectiveLevel:    logtree.LevelName(effective),
		EffectiveLevelNum: int(effective),
		Propagate:         l.Propagate(),
		Disabled:          l.Disabled(),
		Parent:            parentName(l),
		Filters:           filterKindNames(l.Filters()),
	}

	for _, h := range l.Handlers() {
		info.Handlers = append(info.Handlers, InspectHandler(h))
	}

	return info
}

// parentName возвращает имя родителя логгера для отчётов.
// Родитель-root (пустое имя) и отсутствие родителя дают sentinel "root".
func parentName(l *logtree.Logger) string {
	p := l.Parent()
	if p == nil || p.Name() == "" {
		return SentinelRoot
	}
	return p.Name()
}
