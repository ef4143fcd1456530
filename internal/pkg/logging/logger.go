// Package logging предоставляет интерфейс и реализации для структурированного логирования.
package logging

// Logger определяет интерфейс для структурированного логирования.
// Реализации: SlogAdapter (использует slog из stdlib), NopLogger.
//
// Все методы принимают сообщение и опциональные key-value пары:
//
//	logger.Info("Отчёт построен", "section", "hierarchy", "duration_ms", 12)
//
// ВАЖНО: Logger пишет ТОЛЬКО в stderr, никогда в stdout.
// stdout принадлежит тексту отчётов инспекции.
type Logger interface {
	// Debug записывает сообщение уровня DEBUG.
	// Используется для детальной диагностики.
	Debug(msg string, args ...any)

	// Info записывает сообщение уровня INFO.
	// Используется для значимых событий (старт/стоп, успешные операции).
	Info(msg string, args ...any)

	// Warn записывает сообщение уровня WARN.
	// Используется для recoverable issues, deprecated usage.
	Warn(msg string, args ...any)

	// Error записывает сообщение уровня ERROR.
	// Используется для ошибок требующих внимания.
	Error(msg string, args ...any)

	// With возвращает новый Logger с добавленными атрибутами.
	// Атрибуты будут включены во все последующие записи.
	//
	//	logger.With("setup_file", path).Info("Настройка применена")
	With(args ...any) Logger
}
