package logtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLevelName_Canonical проверяет символьные имена канонических уровней.
func TestLevelName_Canonical(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{LevelCritical, "CRITICAL"},
		{LevelError, "ERROR"},
		{LevelWarning, "WARNING"},
		{LevelInfo, "INFO"},
		{LevelDebug, "DEBUG"},
		{LevelNotSet, "NOTSET"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, LevelName(tt.level))
	}
}

// TestLevelName_Unregistered проверяет формат "Level <n>" для
// незарегистрированного значения.
func TestLevelName_Unregistered(t *testing.T) {
	assert.Equal(t, "Level 25", LevelName(Level(25)))
}

// TestParseLevel проверяет разбор имени уровня и ошибку на опечатке.
func TestParseLevel(t *testing.T) {
	level, err := ParseLevel("WARNING")
	require.NoError(t, err)
	assert.Equal(t, LevelWarning, level)

	_, err = ParseLevel("warning")
	assert.Error(t, err, "регистр имени значим")

	_, err = ParseLevel("VERBOSE")
	assert.Error(t, err)
}

// TestCanonicalLevels_Order проверяет фиксированный порядок таблицы:
// от наибольшей серьёзности к наименьшей, NOTSET последним.
func TestCanonicalLevels_Order(t *testing.T) {
	levels := CanonicalLevels()
	require.Len(t, levels, 6)

	assert.Equal(t, "CRITICAL", levels[0].Name)
	assert.Equal(t, Level(50), levels[0].Value)
	assert.Equal(t, "NOTSET", levels[5].Name)
	assert.Equal(t, Level(0), levels[5].Value)

	// Строго убывающая серьёзность.
	for i := 1; i < len(levels); i++ {
		assert.Greater(t, levels[i-1].Value, levels[i].Value)
	}
}
