package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"finance-tracker/internal/config"
	"finance-tracker/internal/database"
	"finance-tracker/internal/dto"
	"finance-tracker/internal/models"
	"finance-tracker/internal/server"
	"finance-tracker/internal/services"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	root := NewRootCommand()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(append([]string{"--env-file", ""}, args...))

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestTokenCommand_IssuesSignedToken(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("JWT_PRIVATE_KEY", "")
	t.Setenv("JWT_PUBLIC_KEY", "")

	stdout, stderr, err := execute(t, "token", "--user", uuid.NewString(), "--role", models.RoleAdmin)

	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(stdout), "."), 3)
	assert.Contains(t, stderr, "expires at")
}

func TestTokenCommand_Rejections(t *testing.T) {
	_, _, err := execute(t, "token", "--user", "not-a-uuid")
	assert.ErrorContains(t, err, "invalid --user")

	_, _, err = execute(t, "token", "--user", uuid.NewString(), "--role", "root")
	assert.ErrorContains(t, err, "invalid --role")

	_, _, err = execute(t, "token")
	assert.Error(t, err)
}

func TestJobsCommand_RejectsUnknownJob(t *testing.T) {
	_, _, err := execute(t, "jobs", "reports")
	assert.Error(t, err)

	_, _, err = execute(t, "jobs", "snapshots", "--date", "20-06-2024")
	assert.ErrorContains(t, err, "invalid --date")
}

func TestParseRunDate(t *testing.T) {
	zero, err := parseRunDate("")
	require.NoError(t, err)
	assert.True(t, zero.IsZero())

	day, err := parseRunDate("2024-06-20")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 20, 0, 0, 0, 0, time.UTC), day)

	instant, err := parseRunDate("2024-06-20T01:30:00Z")
	require.NoError(t, err)
	assert.Equal(t, 1, instant.Hour())
}

func TestRunJob_PrintsResult(t *testing.T) {
	db := database.SetupTestDB(t)
	cfg := &config.Config{Billing: config.BillingConfig{Location: time.UTC}}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	c := server.NewContainer(cfg, db.DB, logger, services.NewPrometheusMetricsWithRegistry(prometheus.NewRegistry()))

	userID := uuid.New()
	database.CreateTestAccount(t, db, userID, models.AccountTypeDebit, "150")

	var out bytes.Buffer
	err := runJob(context.Background(), c, services.JobSnapshots, time.Date(2024, 6, 20, 2, 0, 0, 0, time.UTC), &out)
	require.NoError(t, err)

	var result dto.SnapshotRunResult
	require.NoError(t, json.Unmarshal(out.Bytes(), &result))
	assert.Equal(t, 1, result.Created)

	assert.Error(t, runJob(context.Background(), c, "reports", time.Now(), &out))
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(config.LogConfig{Level: "warn", Format: "json"}, &buf)

	logger.Info("hidden")
	logger.Warn("shown", "key", "value")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"key":"value"`)

	buf.Reset()
	logger = newLogger(config.LogConfig{Level: "debug", Format: "text"}, &buf)
	logger.Debug("visible")
	assert.Contains(t, buf.String(), "msg=visible")
}
