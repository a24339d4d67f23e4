package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/phoenix/internal/domain"
	"github.com/alexanderramin/phoenix/internal/validate"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "phoenix.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_Full(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
sga_limit_blind: "2700.00"
irwe_enabled: true
min_reasonable_comp: "45000"
timezone: America/Phoenix
`))
	require.NoError(t, err)

	assert.Equal(t, "2700.00", validate.Money(cfg.SGALimitBlind))
	assert.True(t, cfg.IRWEEnabled)
	require.NotNil(t, cfg.MinReasonableComp)
	assert.Equal(t, "45000.00", validate.Money(*cfg.MinReasonableComp))
	assert.Equal(t, "America/Phoenix", cfg.Timezone)
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, `sga_limit_blind: "1550.00"`))
	require.NoError(t, err)

	assert.False(t, cfg.IRWEEnabled)
	assert.Nil(t, cfg.MinReasonableComp)
	assert.Equal(t, domain.DefaultTimezone, cfg.Timezone)
}

func TestLoad_MissingLimit(t *testing.T) {
	_, err := Load(writeConfig(t, `irwe_enabled: true`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sga_limit_blind")
}

func TestLoad_BadDecimal(t *testing.T) {
	_, err := Load(writeConfig(t, `sga_limit_blind: "about 1550"`))
	assert.ErrorIs(t, err, validate.ErrInvalidAmount)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoad_BadYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "sga_limit_blind: [unclosed"))
	assert.Error(t, err)
}
