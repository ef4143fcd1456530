package logtree

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Handler — приёмник записей лога (sink).
// Конкретные виды: StreamHandler (консоль/произвольный writer),
// FileHandler, RotatingFileHandler, TimedRotatingFileHandler.
type Handler interface {
	// Level возвращает порог обработчика.
	Level() Level

	// SetLevel устанавливает порог обработчика.
	SetLevel(level Level)

	// Formatter возвращает прикреплённый форматтер или nil.
	Formatter() *Formatter

	// SetFormatter прикрепляет форматтер (nil — убрать).
	SetFormatter(f *Formatter)

	// Filters возвращает фильтры обработчика в порядке прикрепления.
	Filters() []Filter

	// AddFilter прикрепляет фильтр.
	AddFilter(f Filter)

	// Handle обрабатывает запись: применяет порог, фильтры,
	// форматтер и пишет результат в sink.
	Handle(rec *Record) error

	// Close освобождает ресурсы обработчика (файловые дескрипторы).
	Close() error
}

// BaseHandler содержит общие для всех обработчиков поля: порог,
// форматтер, фильтры. Встраивается в конкретные виды.
// Мьютекс защищает эмиссию: хост-процесс может писать логи,
// пока инспектор читает конфигурацию.
type BaseHandler struct {
	mu        sync.Mutex
	level     Level
	formatter *Formatter
	filters   []Filter
}

// Level возвращает порог обработчика.
func (b *BaseHandler) Level() Level {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.level
}

// SetLevel устанавливает порог обработчика.
func (b *BaseHandler) SetLevel(level Level) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.level = level
}

// Formatter возвращает прикреплённый форматтер или nil.
func (b *BaseHandler) Formatter() *Formatter {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.formatter
}

// SetFormatter прикрепляет форматтер.
func (b *BaseHandler) SetFormatter(f *Formatter) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.formatter = f
}

// Filters возвращает копию списка фильтров в порядке прикрепления.
func (b *BaseHandler) Filters() []Filter {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.filters) == 0 {
		return nil
	}
	out := make([]Filter, len(b.filters))
	copy(out, b.filters)
	return out
}

// AddFilter прикрепляет фильтр к обработчику.
func (b *BaseHandler) AddFilter(f Filter) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.filters = append(b.filters, f)
}

// shouldEmit проверяет порог и фильтры для записи.
// Вызывается под мьютексом из emit конкретного обработчика.
func (b *BaseHandler) shouldEmit(rec *Record) bool {
	if rec.Level < b.level {
		return false
	}
	return allowAll(b.filters, rec)
}

// formatLine рендерит запись форматтером обработчика или defaultLine.
func (b *BaseHandler) formatLine(rec *Record) string {
	if b.formatter != nil {
		return b.formatter.FormatRecord(rec)
	}
	return defaultLine(rec)
}

// StreamHandler пишет записи в произвольный io.Writer.
// Для os.Stdout/os.Stderr имя потока определяется автоматически.
type StreamHandler struct {
	BaseHandler

	w          io.Writer
	streamName string
}

// NewStreamHandler создаёт StreamHandler поверх w.
// Имя потока для отчётов: "stdout"/"stderr" для стандартных потоков,
// иначе "<stream>".
func NewStreamHandler(w io.Writer) *StreamHandler {
	name := "<stream>"
	switch w {
	case os.Stdout:
		name = "stdout"
	case os.Stderr:
		name = "stderr"
	}
	return &StreamHandler{w: w, streamName: name}
}

// NewStreamHandlerNamed создаёт StreamHandler с явным именем потока.
// Используется тестами и декларативной конфигурацией.
func NewStreamHandlerNamed(w io.Writer, name string) *StreamHandler {
	return &StreamHandler{w: w, streamName: name}
}

// StreamName возвращает имя потока для отчётов.
func (h *StreamHandler) StreamName() string { return h.streamName }

// Handle пишет отформатированную запись в поток.
func (h *StreamHandler) Handle(rec *Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if !h.shouldEmit(rec) {
		return nil
	}

	if _, err := fmt.Fprintln(h.w, h.formatLine(rec)); err != nil {
		return fmt.Errorf("stream handler: запись не удалась: %w", err)
	}
	return nil
}

// Close для StreamHandler ничего не делает: обработчик не владеет
// потоком (os.Stderr закрывать нельзя).
func (h *StreamHandler) Close() error { return nil }
