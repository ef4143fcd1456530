// Package constants содержит все константы, используемые в проекте logscope.
// Константы сгруппированы по их функциональному назначению для удобства использования и поддержки.
package constants

// AppName - имя приложения.
const AppName = "logscope"

// Version - версия приложения.
// Значение подставляется при сборке через -ldflags:
//
//	go build -ldflags "-X github.com/Kargones/logscope/internal/constants.Version=v1.2.3"
var Version = "dev"

// Константы переменных окружения
const (
	// EnvConfigPath - путь к YAML-файлу конфигурации приложения
	EnvConfigPath = "LS_CONFIG_PATH"
)

// Константы сообщений приложения
const (
	// MsgAppStart - сообщение о старте инспекции
	MsgAppStart = "Запуск инспекции конфигурации логирования"
	// MsgAppExit - сообщение о завершении работы программы
	MsgAppExit = "Завершение работы программы"
	// MsgErrProcessing - сообщение об обработке ошибки
	MsgErrProcessing = "Обработка ошибки"
)

// Коды завершения процесса
const (
	// ExitOK - успешное завершение
	ExitOK = 0
	// ExitConfigError - ошибка загрузки конфигурации
	ExitConfigError = 1
	// ExitSetupError - ошибка декларативной настройки дерева логгеров
	ExitSetupError = 2
	// ExitReportError - ошибка вывода отчёта
	ExitReportError = 3
)
