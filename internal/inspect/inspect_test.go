package inspect

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kargones/logscope/internal/logtree"
)

// TestInspectHandler_Stream проверяет описание потокового обработчика
// без форматтера: sentinel None у форматтера обязателен, не исключение.
func TestInspectHandler_Stream(t *testing.T) {
	h := logtree.NewStreamHandlerNamed(&bytes.Buffer{}, "stdout")
	h.SetLevel(logtree.LevelInfo)

	info := InspectHandler(h)

	assert.Equal(t, "StreamHandler", info.Kind)
	assert.Equal(t, "INFO", info.Level)
	assert.Equal(t, 20, info.LevelNum)
	assert.Nil(t, info.Formatter)
	assert.Nil(t, info.Filters)

	require.Len(t, info.Extra, 1)
	assert.Equal(t, ExtraField{Label: "Stream", Value: "stdout"}, info.Extra[0])
}

// TestInspectHandler_Formatter проверяет описание форматтера и
// подстановку "N/A" для незаполненных полей.
func TestInspectHandler_Formatter(t *testing.T) {
	h := logtree.NewStreamHandlerNamed(&bytes.Buffer{}, "stderr")
	h.SetFormatter(&logtree.Formatter{Template: "%(message)s"})

	info := InspectHandler(h)

	require.NotNil(t, info.Formatter)
	assert.Equal(t, "%(message)s", info.Formatter.Format)
	assert.Equal(t, "N/A", info.Formatter.DateFormat)
	assert.Equal(t, "N/A", info.Formatter.Style)
}

// TestInspectHandler_File проверяет вид-специфичные поля file handler'а.
func TestInspectHandler_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	h, err := logtree.NewFileHandler(path, "a", "cp1251")
	require.NoError(t, err)
	defer func() { _ = h.Close() }()

	info := InspectHandler(h)

	assert.Equal(t, "FileHandler", info.Kind)
	assert.Equal(t, []ExtraField{
		{Label: "File", Value: path},
		{Label: "Mode", Value: "a"},
		{Label: "Encoding", Value: "cp1251"},
	}, info.Extra)
}

// TestInspectHandler_Rotating проверяет поля обработчиков с ротацией.
func TestInspectHandler_Rotating(t *testing.T) {
	dir := t.TempDir()

	rh, err := logtree.NewRotatingFileHandler(filepath.Join(dir, "r.log"), 2048, 3)
	require.NoError(t, err)
	defer func() { _ = rh.Close() }()

	info := InspectHandler(rh)
	assert.Equal(t, "RotatingFileHandler", info.Kind)
	assert.Equal(t, []ExtraField{
		{Label: "File", Value: filepath.Join(dir, "r.log")},
		{Label: "Max Bytes", Value: "2048"},
		{Label: "Backup Count", Value: "3"},
	}, info.Extra)

	th, err := logtree.NewTimedRotatingFileHandler(filepath.Join(dir, "t.log"), "H", 6, 4)
	require.NoError(t, err)
	defer func() { _ = th.Close() }()

	info = InspectHandler(th)
	assert.Equal(t, "TimedRotatingFileHandler", info.Kind)
	assert.Equal(t, []ExtraField{
		{Label: "File", Value: filepath.Join(dir, "t.log")},
		{Label: "When", Value: "H"},
		{Label: "Interval", Value: "6"},
		{Label: "Backup Count", Value: "4"},
	}, info.Extra)
}

// unknownHandler — вид обработчика, неизвестный инспектору.
type unknownHandler struct {
	logtree.BaseHandler
}

func (u *unknownHandler) Handle(*logtree.Record) error { return nil }
func (u *unknownHandler) Close() error                 { return nil }

// TestInspectHandler_UnknownKind проверяет что нераспознанный вид
// получает общие поля и пустой список Extra, без паники.
func TestInspectHandler_UnknownKind(t *testing.T) {
	info := InspectHandler(&unknownHandler{})

	assert.Equal(t, "unknownHandler", info.Kind)
	assert.Empty(t, info.Extra)
	assert.Equal(t, "NOTSET", info.Level)
}

// TestKindPackage проверяет определение пакета вида обработчика.
func TestKindPackage(t *testing.T) {
	h := logtree.NewStreamHandlerNamed(&bytes.Buffer{}, "x")
	assert.Equal(t, "github.com/Kargones/logscope/internal/logtree", KindPackage(h))
	assert.Equal(t, "N/A", KindPackage(nil))
}

// TestInspectLogger проверяет описание логгера: уровни, родитель,
// обработчики, фильтры.
func TestInspectLogger(t *testing.T) {
	r := logtree.NewRegistry()

	a := r.GetLogger("app")
	a.SetLevel(logtree.LevelDebug)

	db := r.GetLogger("app.db")
	db.AddHandler(logtree.NewStreamHandlerNamed(&bytes.Buffer{}, "x"))
	db.AddFilter(logtree.NewNameFilter("app"))
	db.SetPropagate(false)

	info := InspectLogger(db)

	assert.Equal(t, "app.db", info.Name)
	assert.Equal(t, "NOTSET", info.Level)
	assert.Equal(t, 0, info.LevelNum)
	assert.Equal(t, "DEBUG", info.EffectiveLevel)
	assert.Equal(t, 10, info.EffectiveLevelNum)
	assert.False(t, info.Propagate)
	assert.False(t, info.Disabled)
	assert.Equal(t, "app", info.Parent)
	assert.Len(t, info.Handlers, 1)
	assert.Equal(t, []string{"NameFilter"}, info.Filters)
}

// TestInspectLogger_ParentSentinel проверяет sentinel "root" для
// прямых детей root и для самого root.
func TestInspectLogger_ParentSentinel(t *testing.T) {
	r := logtree.NewRegistry()

	svc := r.GetLogger("svc")
	assert.Equal(t, "root", InspectLogger(svc).Parent)
	assert.Equal(t, "root", InspectLogger(r.Root()).Parent)
}
