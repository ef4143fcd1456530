package logtree

import "time"

// Record — одна запись лога, передаваемая от логгера к обработчикам.
// Record создаётся логгером в момент эмиссии и далее только читается:
// форматтером, фильтрами и обработчиками.
type Record struct {
	// Time — момент создания записи.
	Time time.Time

	// LoggerName — полное точечное имя логгера-источника ("" для root).
	LoggerName string

	// Level — уровень записи.
	Level Level

	// Message — текст сообщения.
	Message string

	// Args — дополнительные key-value пары.
	// Порядок сохраняется: пары выводятся в порядке передачи.
	Args []Arg
}

// Arg — одна key-value пара записи.
type Arg struct {
	Key   string
	Value any
}

// NewRecord создаёт запись с текущим временем.
// args интерпретируются как чередующиеся ключи и значения
// ("key1", v1, "key2", v2). Непарный хвост получает ключ "!BADKEY" —
// то же поведение, что у slog при нечётном числе аргументов.
func NewRecord(loggerName string, level Level, msg string, args ...any) *Record {
	rec := &Record{
		Time:       time.Now(),
		LoggerName: loggerName,
		Level:      level,
		Message:    msg,
	}

	for i := 0; i < len(args); i += 2 {
		if i+1 >= len(args) {
			rec.Args = append(rec.Args, Arg{Key: "!BADKEY", Value: args[i]})
			break
		}
		key, ok := args[i].(string)
		if !ok {
			key = "!BADKEY"
		}
		rec.Args = append(rec.Args, Arg{Key: key, Value: args[i+1]})
	}

	return rec
}
