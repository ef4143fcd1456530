package logconf

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"

	"github.com/Kargones/logscope/internal/pkg/apperrors"
)

//go:embed schema.json
var schemaJSON string

// Load читает, валидирует и разбирает файл настройки логирования.
// Конвейер: YAML → нормализация в JSON-совместимое значение →
// валидация по встроенной схеме → типизированный Config.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // путь задаёт оператор
	if err != nil {
		return nil, apperrors.New(apperrors.ErrSetupRead,
			"не удалось прочитать файл настройки логирования", err)
	}
	return Parse(data)
}

// Parse валидирует и разбирает содержимое файла настройки.
func Parse(data []byte) (*Config, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, apperrors.New(apperrors.ErrSetupParse,
			"файл настройки логирования не является корректным YAML", err)
	}

	if err := validate(normalizeYAML(doc)); err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, apperrors.New(apperrors.ErrSetupParse,
			"не удалось разобрать файл настройки логирования", err)
	}
	return &cfg, nil
}

// validate проверяет нормализованный документ по встроенной JSON Schema.
func validate(doc any) error {
	schema, err := compileSchema()
	if err != nil {
		return err
	}
	if err := schema.Validate(doc); err != nil {
		return apperrors.New(apperrors.ErrSetupSchema,
			"файл настройки логирования не прошёл валидацию схемы", err)
	}
	return nil
}

// compileSchema компилирует встроенную схему.
// Ошибка возможна только при порче schema.json в сборке.
func compileSchema() (*jsonschema.Schema, error) {
	raw, err := jsonschema.UnmarshalJSON(strings.NewReader(schemaJSON))
	if err != nil {
		return nil, fmt.Errorf("встроенная схема не является корректным JSON: %w", err)
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("setup.schema.json", raw); err != nil {
		return nil, fmt.Errorf("не удалось зарегистрировать встроенную схему: %w", err)
	}
	schema, err := compiler.Compile("setup.schema.json")
	if err != nil {
		return nil, fmt.Errorf("не удалось скомпилировать встроенную схему: %w", err)
	}
	return schema, nil
}

// normalizeYAML приводит YAML-значение к JSON-совместимому виду:
// ключи всех map — строки, числа — json.Number-совместимые типы.
// Валидатору схемы нужен результат, эквивалентный json.Unmarshal.
func normalizeYAML(in any) any {
	switch x := in.(type) {
	case map[any]any:
		m := make(map[string]any, len(x))
		for k, v := range x {
			m[fmt.Sprint(k)] = normalizeYAML(v)
		}
		return m
	case map[string]any:
		m := make(map[string]any, len(x))
		for k, v := range x {
			m[k] = normalizeYAML(v)
		}
		return m
	case []any:
		out := make([]any, len(x))
		for i := range x {
			out[i] = normalizeYAML(x[i])
		}
		return out
	case int:
		// jsonschema сравнивает числа как json.Number/float64.
		return json.Number(fmt.Sprint(x))
	case int64:
		return json.Number(fmt.Sprint(x))
	case uint64:
		return json.Number(fmt.Sprint(x))
	default:
		return in
	}
}
