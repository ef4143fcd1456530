package tracing

import "context"

// NewNopTracerProvider возвращает shutdown-функцию без действий.
// Используется когда трейсинг выключен: инспекция идёт без
// OTLP-экспорта, спаны остаются noop из глобального провайдера.
func NewNopTracerProvider() func(context.Context) error {
	return func(_ context.Context) error { return nil }
}
