package logtree

import "sync"

// Logger — именованный иерархический источник записей.
// Логгеры создаются только через Registry.GetLogger: реестр владеет
// parent-ссылками и переподвешивает их при материализации placeholder'ов.
type Logger struct {
	mu sync.Mutex

	name      string
	level     Level
	parent    *Logger
	propagate bool
	disabled  bool
	handlers  []Handler
	filters   []Filter

	registry *Registry
}

// Name возвращает полное точечное имя логгера ("" — root).
func (l *Logger) Name() string { return l.name }

// ConfiguredLevel возвращает явно выставленный уровень логгера
// (NOTSET, если уровень не задан).
func (l *Logger) ConfiguredLevel() Level {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.level
}

// SetLevel устанавливает уровень логгера.
func (l *Logger) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

// EffectiveLevel возвращает действующий уровень: ближайший явно
// заданный уровень вверх по цепочке родителей. Если уровень не задан
// нигде вплоть до root, возвращается NOTSET.
func (l *Logger) EffectiveLevel() Level {
	for cur := l; cur != nil; cur = cur.Parent() {
		if level := cur.ConfiguredLevel(); level != LevelNotSet {
			return level
		}
	}
	return LevelNotSet
}

// Parent возвращает родительский логгер (nil только у root).
// Ссылка читается, но не принадлежит вызывающему.
func (l *Logger) Parent() *Logger {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.parent
}

// setParent переподвешивает логгер. Вызывается реестром при fixup.
func (l *Logger) setParent(p *Logger) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.parent = p
}

// Propagate сообщает, передаются ли записи обработчикам предков.
func (l *Logger) Propagate() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.propagate
}

// SetPropagate управляет передачей записей предкам.
func (l *Logger) SetPropagate(v bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.propagate = v
}

// Disabled сообщает, выключен ли логгер целиком.
func (l *Logger) Disabled() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.disabled
}

// SetDisabled выключает или включает логгер.
func (l *Logger) SetDisabled(v bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.disabled = v
}

// Handlers возвращает копию списка обработчиков в порядке прикрепления.
// Порядок значим для отчётов (нумерация 1-based).
func (l *Logger) Handlers() []Handler {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.handlers) == 0 {
		return nil
	}
	out := make([]Handler, len(l.handlers))
	copy(out, l.handlers)
	return out
}

// AddHandler прикрепляет обработчик в конец списка.
func (l *Logger) AddHandler(h Handler) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.handlers = append(l.handlers, h)
}

// Filters возвращает копию списка фильтров логгера.
func (l *Logger) Filters() []Filter {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.filters) == 0 {
		return nil
	}
	out := make([]Filter, len(l.filters))
	copy(out, l.filters)
	return out
}

// AddFilter прикрепляет фильтр к логгеру.
func (l *Logger) AddFilter(f Filter) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.filters = append(l.filters, f)
}

// Debug эмитирует запись уровня DEBUG.
func (l *Logger) Debug(msg string, args ...any) { l.Log(LevelDebug, msg, args...) }

// Info эмитирует запись уровня INFO.
func (l *Logger) Info(msg string, args ...any) { l.Log(LevelInfo, msg, args...) }

// Warning эмитирует запись уровня WARNING.
func (l *Logger) Warning(msg string, args ...any) { l.Log(LevelWarning, msg, args...) }

// Error эмитирует запись уровня ERROR.
func (l *Logger) Error(msg string, args ...any) { l.Log(LevelError, msg, args...) }

// Critical эмитирует запись уровня CRITICAL.
func (l *Logger) Critical(msg string, args ...any) { l.Log(LevelCritical, msg, args...) }

// Log эмитирует запись произвольного уровня.
// Запись отбрасывается, если логгер выключен, уровень ниже действующего
// или её отклонил фильтр логгера. Затем запись передаётся обработчикам
// вверх по цепочке родителей, пока propagate == true. Если ни одного
// обработчика по пути не нашлось, запись уходит в last-resort обработчик
// реестра.
func (l *Logger) Log(level Level, msg string, args ...any) {
	if l.Disabled() {
		return
	}
	if level < l.EffectiveLevel() {
		return
	}

	rec := NewRecord(l.name, level, msg, args...)
	if !allowAll(l.Filters(), rec) {
		return
	}

	if l.registry != nil {
		l.registry.countEmitted(rec)
	}

	found := 0
	for cur := l; cur != nil; {
		for _, h := range cur.Handlers() {
			found++
			if err := h.Handle(rec); err != nil && l.registry != nil {
				l.registry.countHandlerError()
			}
		}
		if !cur.Propagate() {
			break
		}
		cur = cur.Parent()
	}

	if found == 0 && l.registry != nil {
		if last := l.registry.LastResort(); last != nil {
			_ = last.Handle(rec)
		}
	}
}
