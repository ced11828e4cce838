package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validConfig = `
[server]
http_port = 8080

[database]
host = "localhost"
port = 5432
user = "carshop"
password = "secret"
dbname = "carshop_booking"
sslmode = "disable"

[logs]
file = "logs/app.log"
level = "info"

[shop]
timezone = "Asia/Beirut"
slot_step_minutes = 30
admin_token = "token"

[shop.hours]
monday = { open = 9, close = 19 }
saturday = { open = 9, close = 17 }

[shop.capacities]
wash = 2
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, validConfig))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "Asia/Beirut", cfg.Shop.Timezone)
	assert.Equal(t, 30, cfg.Shop.SlotStepMinutes)
	assert.Equal(t, 2, cfg.Shop.Capacities["wash"])
	assert.Contains(t, cfg.Database.DSN(), "dbname=carshop_booking")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestLoad_NoBusinessDays(t *testing.T) {
	body := `
[server]
http_port = 8080
[database]
host = "localhost"
dbname = "db"
[shop]
timezone = "UTC"
`
	_, err := Load(writeConfig(t, body))
	assert.ErrorContains(t, err, "shop.hours")
}

func TestHoursTable(t *testing.T) {
	cfg, err := Load(writeConfig(t, validConfig))
	require.NoError(t, err)

	table, err := cfg.Shop.HoursTable()
	require.NoError(t, err)

	require.Len(t, table, 2)
	assert.Equal(t, 9, table[time.Monday].OpenHour)
	assert.Equal(t, 17, table[time.Saturday].CloseHour)
	_, open := table[time.Sunday]
	assert.False(t, open)
}

func TestHoursTable_InvalidDay(t *testing.T) {
	shop := ShopConfig{Hours: map[string]DayHours{"someday": {Open: 9, Close: 18}}}
	_, err := shop.HoursTable()
	assert.ErrorContains(t, err, "unknown weekday")
}

func TestHoursTable_InvalidWindow(t *testing.T) {
	shop := ShopConfig{Hours: map[string]DayHours{"monday": {Open: 19, Close: 9}}}
	_, err := shop.HoursTable()
	assert.ErrorContains(t, err, "invalid hours")
}
