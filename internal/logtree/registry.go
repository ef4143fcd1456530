package logtree

import (
	"os"
	"sort"
	"strings"
	"sync"
)

// placeholder — запись реестра для имени, у которого настроен потомок,
// но сам логгер ещё не создавался. Хранит будущих детей для
// переподвешивания при материализации.
type placeholder struct {
	children []*Logger
}

// entry — слот реестра: либо логгер, либо placeholder.
type entry struct {
	logger *Logger
	ph     *placeholder
}

// Registry — реестр именованных логгеров (менеджер иерархии).
// Владеет root-логгером, placeholder'ами и last-resort обработчиком.
// Все операции потокобезопасны: хост может эмитировать записи,
// пока инспектор читает конфигурацию.
type Registry struct {
	mu      sync.RWMutex
	root    *Logger
	entries map[string]*entry

	lastResort Handler

	// captureWarnings — настройка по умолчанию для перехвата
	// предупреждений хоста. Читается отчётами best-effort.
	captureWarnings bool

	metrics *emissionMetrics
}

// NewRegistry создаёт пустой реестр: только root-логгер с уровнем
// WARNING (канонический default) и last-resort обработчик на stderr.
func NewRegistry() *Registry {
	r := &Registry{
		entries: make(map[string]*entry),
		metrics: newEmissionMetrics(),
	}

	r.root = &Logger{
		name:      "",
		level:     LevelWarning,
		propagate: true,
		registry:  r,
	}

	last := NewStreamHandler(os.Stderr)
	last.SetLevel(LevelWarning)
	r.lastResort = last

	return r
}

// defaultRegistry — реестр процесса. Хост настраивает его при старте,
// инспектор читает.
var defaultRegistry = NewRegistry()

// Default возвращает глобальный реестр процесса.
func Default() *Registry { return defaultRegistry }

// GetLogger возвращает логгер name из глобального реестра.
func GetLogger(name string) *Logger { return defaultRegistry.GetLogger(name) }

// Root возвращает root-логгер (имя "").
func (r *Registry) Root() *Logger { return r.root }

// GetLogger возвращает логгер с именем name, создавая его при
// необходимости. Пустое имя — root. Создание "a.b" до "a" оставляет
// в реестре placeholder "a"; при последующем создании "a" потомки
// переподвешиваются на него (fixup).
func (r *Registry) GetLogger(name string) *Logger {
	if name == "" {
		return r.root
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if e, ok := r.entries[name]; ok {
		if e.logger != nil {
			return e.logger
		}
		// Материализация placeholder'а.
		l := r.newLocked(name)
		ph := e.ph
		e.logger = l
		e.ph = nil
		r.fixupChildren(ph, l)
		r.fixupParents(l)
		return l
	}

	l := r.newLocked(name)
	r.entries[name] = &entry{logger: l}
	r.fixupParents(l)
	return l
}

// newLocked создаёт логгер без регистрации. Вызывается под r.mu.
func (r *Registry) newLocked(name string) *Logger {
	return &Logger{
		name:      name,
		level:     LevelNotSet,
		propagate: true,
		registry:  r,
	}
}

// fixupParents назначает родителя новому логгеру: ближайший
// существующий предок по точечному имени, иначе root. Для отсутствующих
// промежуточных имён создаются placeholder'ы с записью будущего ребёнка.
// Вызывается под r.mu.
func (r *Registry) fixupParents(l *Logger) {
	name := l.name
	parent := r.root

	i := strings.LastIndex(name, ".")
	for i > 0 {
		prefix := name[:i]
		e, ok := r.entries[prefix]
		switch {
		case !ok:
			r.entries[prefix] = &entry{ph: &placeholder{children: []*Logger{l}}}
		case e.logger != nil:
			parent = e.logger
			i = 0
			continue
		default:
			e.ph.children = append(e.ph.children, l)
		}
		i = strings.LastIndex(name[:i], ".")
	}

	l.setParent(parent)
}

// fixupChildren переподвешивает детей материализованного placeholder'а
// на новый логгер. Ребёнок, чей текущий родитель уже лежит ниже name
// в иерархии, не трогается. Вызывается под r.mu.
func (r *Registry) fixupChildren(ph *placeholder, l *Logger) {
	name := l.name
	for _, c := range ph.children {
		p := c.Parent()
		if p == nil || !strings.HasPrefix(p.name, name) {
			l.setParent(p)
			c.setParent(l)
		}
	}
}

// Names возвращает имена всех записей реестра (логгеры и placeholder'ы)
// в лексикографическом порядке. Root в список не входит: его имя пусто
// и читается через Root().
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup возвращает логгер name, если он материализован.
// Для placeholder'ов и неизвестных имён возвращается (nil, false).
func (r *Registry) Lookup(name string) (*Logger, bool) {
	if name == "" {
		return r.root, true
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	if e, ok := r.entries[name]; ok && e.logger != nil {
		return e.logger, true
	}
	return nil, false
}

// IsPlaceholder сообщает, является ли запись name placeholder'ом.
func (r *Registry) IsPlaceholder(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.entries[name]
	return ok && e.ph != nil
}

// LastResort возвращает запасной обработчик реестра — приёмник записей,
// до которых не дотянулся ни один настроенный обработчик.
func (r *Registry) LastResort() Handler {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.lastResort
}

// SetLastResort заменяет запасной обработчик (nil — отключить).
func (r *Registry) SetLastResort(h Handler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lastResort = h
}

// CaptureWarningsDefault возвращает настройку перехвата предупреждений
// по умолчанию. Второе значение — признак того, что подсистема вообще
// сообщает эту настройку; отчёты трактуют false как "N/A".
func (r *Registry) CaptureWarningsDefault() (bool, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.captureWarnings, true
}

// SetCaptureWarnings выставляет настройку перехвата предупреждений.
func (r *Registry) SetCaptureWarnings(v bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.captureWarnings = v
}
