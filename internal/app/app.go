// Package app содержит основную бизнес-логику приложения logscope:
// применение декларативной настройки дерева логгеров и запуск
// инспекции с выводом отчётов.
package app

import (
	"context"
	"io"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/Kargones/logscope/internal/constants"
	"github.com/Kargones/logscope/internal/logtree"
	"github.com/Kargones/logscope/internal/logtree/logconf"
	"github.com/Kargones/logscope/internal/pkg/logging"
	"github.com/Kargones/logscope/internal/report"
)

// ApplySetup читает YAML-файл декларативной настройки и применяет его
// к реестру логгеров. Пустой путь — no-op: инспектируется текущее
// состояние процесса.
// Параметры:
//   - ctx: контекст выполнения операции
//   - l: логгер для записи сообщений и ошибок
//   - setupFile: путь к YAML-файлу настройки
//   - reg: настраиваемый реестр логгеров
//
// Возвращает:
//   - error: ошибка чтения, валидации или построения дерева, nil при успехе
func ApplySetup(ctx context.Context, l logging.Logger, setupFile string, reg *logtree.Registry) error {
	if setupFile == "" {
		l.Debug("Файл настройки не задан, реестр остаётся как есть")
		return nil
	}

	tracer := otel.Tracer(constants.AppName)
	_, span := tracer.Start(ctx, "setup.apply",
		trace.WithAttributes(attribute.String("setup_file", setupFile)),
	)
	defer span.End()

	cfg, err := logconf.Load(setupFile)
	if err != nil {
		l.Error("Ошибка загрузки файла настройки логирования",
			slog.String("setup_file", setupFile),
			slog.String("error", err.Error()),
		)
		return err
	}

	if err := logconf.Apply(cfg, reg); err != nil {
		l.Error("Ошибка применения настройки логирования",
			slog.String("setup_file", setupFile),
			slog.String("error", err.Error()),
		)
		return err
	}

	l.Info("Настройка дерева логгеров применена",
		slog.String("setup_file", setupFile),
		slog.Int("loggers", len(reg.Names())),
	)
	return nil
}

// Inspect выполняет инспекцию реестра и печатает отчёт в out.
// При full=false выполняется путь по умолчанию (глобальная конфигурация
// и root-логгер), при full=true — все пять секций.
// Параметры:
//   - ctx: контекст выполнения операции
//   - l: логгер для записи сообщений и ошибок
//   - r: рендерер отчётов
//   - out: приёмник текста отчёта (обычно os.Stdout)
//   - full: печатать ли расширенный отчёт
//
// Возвращает:
//   - error: ошибка записи отчёта или nil при успехе
func Inspect(ctx context.Context, l logging.Logger, r *report.Reporter, out io.Writer, full bool) error {
	tracer := otel.Tracer(constants.AppName)
	_, span := tracer.Start(ctx, "report.run",
		trace.WithAttributes(attribute.Bool("full", full)),
	)
	defer span.End()

	run := r.Run
	if full {
		run = r.RunFull
	}

	if err := run(out); err != nil {
		l.Error("Ошибка вывода отчёта инспекции",
			slog.String("error", err.Error()),
		)
		return err
	}

	l.Info("Инспекция завершена", slog.Bool("full", full))
	return nil
}
