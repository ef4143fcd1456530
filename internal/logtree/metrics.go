package logtree

import "github.com/prometheus/client_golang/prometheus"

// emissionMetrics — счётчики эмиссии реестра.
// Метрики собираются in-process в собственный prometheus.Registry:
// никакого push или HTTP-endpoint'а — читаются через Gatherer()
// (в тестах и диагностике).
type emissionMetrics struct {
	registry *prometheus.Registry

	// recordsEmitted — счётчик записей, прошедших порог и фильтры
	// логгера, по имени логгера и уровню.
	recordsEmitted *prometheus.CounterVec

	// handlerErrors — счётчик ошибок обработчиков при эмиссии.
	handlerErrors prometheus.Counter
}

// newEmissionMetrics создаёт и регистрирует метрики:
//   - logscope_records_emitted_total (counter, labels: logger, level)
//   - logscope_handler_errors_total (counter)
func newEmissionMetrics() *emissionMetrics {
	reg := prometheus.NewRegistry()

	m := &emissionMetrics{
		registry: reg,
		recordsEmitted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "logscope_records_emitted_total",
			Help: "Число записей лога, прошедших порог и фильтры логгера.",
		}, []string{"logger", "level"}),
		handlerErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "logscope_handler_errors_total",
			Help: "Число ошибок обработчиков при эмиссии записей.",
		}),
	}

	reg.MustRegister(m.recordsEmitted, m.handlerErrors)
	return m
}

// countEmitted инкрементирует счётчик эмиссии для записи.
func (r *Registry) countEmitted(rec *Record) {
	loggerName := rec.LoggerName
	if loggerName == "" {
		loggerName = "root"
	}
	r.metrics.recordsEmitted.WithLabelValues(loggerName, LevelName(rec.Level)).Inc()
}

// countHandlerError инкрементирует счётчик ошибок обработчиков.
func (r *Registry) countHandlerError() {
	r.metrics.handlerErrors.Inc()
}

// Gatherer возвращает prometheus.Gatherer реестра метрик эмиссии.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.metrics.registry
}
