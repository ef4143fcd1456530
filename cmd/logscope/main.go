// Package main содержит точку входа для приложения logscope.
// Приложение инспектирует конфигурацию дерева логгеров процесса
// и печатает человекочитаемый отчёт в stdout.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/Kargones/logscope/internal/app"
	"github.com/Kargones/logscope/internal/config"
	"github.com/Kargones/logscope/internal/constants"
	"github.com/Kargones/logscope/internal/di"
	"github.com/Kargones/logscope/internal/pkg/tracing"
)

func main() {
	os.Exit(run())
}

// run выполняет приложение и возвращает exit code.
// Выделена из main() чтобы os.Exit не обрывал defer-ы
// (tracerShutdown, span.End).
func run() int {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Не удалось загрузить конфигурацию приложения: %v\n", err)
		return constants.ExitConfigError
	}

	a, err := di.InitializeApp(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Не удалось инициализировать приложение: %v\n", err)
		return constants.ExitConfigError
	}

	l := a.Logger.With(slog.String("trace_id", a.TraceID))
	l.Debug("Информация о сборке", slog.String("version", constants.Version))

	// Корреляция: trace_id в context и в OTel span context.
	ctx = tracing.WithTraceID(ctx, a.TraceID)
	ctx = tracing.ContextWithOTelTraceID(ctx, a.TraceID)

	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := a.TracerShutdown(shutdownCtx); err != nil {
			l.Error("ошибка завершения tracing",
				slog.String("error", err.Error()),
			)
		}
	}()

	tracer := otel.Tracer(constants.AppName)
	ctx, span := tracer.Start(ctx, "inspect",
		trace.WithAttributes(
			attribute.String("trace_id", a.TraceID),
			attribute.String("setup_file", cfg.SetupFile),
			attribute.Bool("full", cfg.FullReport),
		),
	)
	defer span.End()

	l.Info(constants.MsgAppStart, slog.String("setup_file", cfg.SetupFile))

	if err := app.ApplySetup(ctx, l, cfg.SetupFile, a.Registry); err != nil {
		l.Error("Ошибка настройки дерева логгеров",
			slog.String("error", err.Error()),
			slog.String(constants.MsgErrProcessing, constants.MsgAppExit),
		)
		return constants.ExitSetupError
	}

	if err := app.Inspect(ctx, l, a.Reporter, os.Stdout, cfg.FullReport); err != nil {
		l.Error("Ошибка вывода отчёта",
			slog.String("error", err.Error()),
			slog.String(constants.MsgErrProcessing, constants.MsgAppExit),
		)
		return constants.ExitReportError
	}

	return constants.ExitOK
}
