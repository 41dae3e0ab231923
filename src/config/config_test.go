package config_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"fingenius/src/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	cfg, err := config.LoadConfig("../../settings", "")
	require.NoError(t, err)

	assert.Equal(t, "fingenius-api", cfg.Service.Name)
	assert.Equal(t, "8000", cfg.Service.Port)
	assert.Equal(t, "mock", cfg.Dashboard.Source)
	assert.Equal(t, "USD", cfg.Dashboard.Currency)
	assert.Equal(t, 5*time.Minute, cfg.Dashboard.CacheTTL)
	assert.Equal(t, 2*time.Second, cfg.Dashboard.RefreshDebounce)
	assert.Equal(t, "@every 15m", cfg.Dashboard.RefreshCron)
	assert.Contains(t, cfg.CORS.AllowedOrigins, "http://localhost:3000")
}

func TestLoadConfigOverlay(t *testing.T) {
	cfg, err := config.LoadConfig("../../settings", "testing")
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Service.LogLevel)
	assert.Equal(t, 50*time.Millisecond, cfg.Dashboard.RefreshDebounce)
	assert.Equal(t, "", cfg.Dashboard.RefreshCron)
	assert.Equal(t, 3, cfg.Dashboard.ActivityLimit)
	// untouched keys come from the base file
	assert.Equal(t, "fingenius-api", cfg.Service.Name)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("FINGENIUS_SERVICE_PORT", "9090")
	t.Setenv("FINGENIUS_DASHBOARD_CURRENCY", "eur")

	cfg, err := config.LoadConfig("../../settings", "")
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Service.Port)
	assert.Equal(t, "EUR", cfg.Dashboard.Currency)
}

func TestLoadConfigMissingDirectoryUsesDefaults(t *testing.T) {
	cfg, err := config.LoadConfig(t.TempDir(), "")
	require.NoError(t, err)
	assert.Equal(t, "8000", cfg.Service.Port)
	assert.Equal(t, "", cfg.Dashboard.RefreshCron)
}

func TestValidate(t *testing.T) {
	cfg, err := config.LoadConfig("../../settings", "")
	require.NoError(t, err)

	cfg.Dashboard.Source = "oracle"
	cfg.Dashboard.Currency = "XYZ"
	cfg.Dashboard.ActivityLimit = 0
	err = cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dashboard.source")
	assert.Contains(t, err.Error(), "dashboard.currency")
	assert.Contains(t, err.Error(), "activityLimit")
}

func TestDSN(t *testing.T) {
	sql := config.SQLConfig{Host: "db", Port: "5432", Username: "u", Password: "p", Database: "d"}
	assert.Equal(t, "host=db user=u password=p dbname=d port=5432 sslmode=disable", sql.DSN())

	sql.ConnectionString = "postgres://x"
	assert.Equal(t, "postgres://x", sql.DSN())
}

type fakeFetcher map[string]string

func (f fakeFetcher) GetSecretValue(_ context.Context, id string) (string, error) {
	v, ok := f[id]
	if !ok {
		return "", errors.New("not found")
	}
	return v, nil
}

func TestResolveSecrets(t *testing.T) {
	ctx := context.Background()
	cfg := &config.Config{}
	require.NoError(t, cfg.ResolveSecrets(ctx, fakeFetcher{}))
	assert.Empty(t, cfg.Databases.SQL.ConnectionString)

	cfg.AWS.DBSecretID = "prod/db"
	require.NoError(t, cfg.ResolveSecrets(ctx, fakeFetcher{"prod/db": " postgres://secret \n"}))
	assert.Equal(t, "postgres://secret", cfg.Databases.SQL.ConnectionString)

	cfg.AWS.DBSecretID = "missing"
	assert.Error(t, cfg.ResolveSecrets(ctx, fakeFetcher{}))
}

func TestResolveSecretsJSON(t *testing.T) {
	ctx := context.Background()
	cfg := &config.Config{}
	cfg.AWS.DBSecretID = "rds"
	cfg.Databases.SQL.Database = "fingenius"
	cfg.Databases.SQL.ConnectionString = "postgres://stale"

	secret := `{"username":"app","password":"p@ss","host":"db.internal","port":5432}`
	require.NoError(t, cfg.ResolveSecrets(ctx, fakeFetcher{"rds": secret}))

	sql := cfg.Databases.SQL
	assert.Equal(t, "app", sql.Username)
	assert.Equal(t, "p@ss", sql.Password)
	assert.Equal(t, "db.internal", sql.Host)
	assert.Equal(t, "5432", sql.Port)
	assert.Equal(t, "fingenius", sql.Database)
	assert.Equal(t, "host=db.internal user=app password=p@ss dbname=fingenius port=5432 sslmode=disable", sql.DSN())

	require.NoError(t, cfg.ResolveSecrets(ctx, fakeFetcher{"rds": `{"port":"6543"}`}))
	assert.Equal(t, "6543", cfg.Databases.SQL.Port)

	assert.Error(t, cfg.ResolveSecrets(ctx, fakeFetcher{"rds": `{"port":"abc"}`}))
	assert.Error(t, cfg.ResolveSecrets(ctx, fakeFetcher{"rds": `{not json`}))
}
