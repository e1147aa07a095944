package services

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"finance-tracker/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureEvents(t *testing.T) (EventLoggerInterface, func() []map[string]interface{}) {
	t.Helper()

	var buf bytes.Buffer
	logger := NewEventLogger(slog.New(slog.NewJSONHandler(&buf, nil)))

	return logger, func() []map[string]interface{} {
		var records []map[string]interface{}
		for _, line := range bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n")) {
			if len(line) == 0 {
				continue
			}
			var record map[string]interface{}
			require.NoError(t, json.Unmarshal(line, &record))
			records = append(records, record)
		}
		return records
	}
}

func TestEventLogger_PostingCompletedCarriesCorrelationID(t *testing.T) {
	events, read := captureEvents(t)
	ctx := WithCorrelationID(context.Background(), "req-123")

	destination := uuid.New()
	txn := &models.Transaction{
		ID:                   uuid.New(),
		TransactionType:      models.TransactionTypeTransfer,
		AccountID:            uuid.New(),
		DestinationAccountID: &destination,
		Amount:               money("12.5"),
	}
	events.LogPostingCompleted(ctx, txn, "post")

	records := read()
	require.Len(t, records, 1)
	assert.Equal(t, "posting_completed", records[0]["event_type"])
	assert.Equal(t, "req-123", records[0]["correlation_id"])
	assert.Equal(t, "12.50", records[0]["amount"])
	assert.Equal(t, destination.String(), records[0]["destination_account_id"])
	assert.NotContains(t, records[0], "installment_purchase_id")
}

func TestEventLogger_JobCompletedIncludesCounts(t *testing.T) {
	events, read := captureEvents(t)

	events.LogJobCompleted(context.Background(), JobStatements, 42, map[string]int{
		"processed": 3,
		"failed":    1,
	})

	records := read()
	require.Len(t, records, 1)
	assert.Equal(t, "INFO", records[0]["level"])
	assert.Equal(t, JobStatements, records[0]["job"])
	assert.Equal(t, float64(3), records[0]["processed"])
	assert.Equal(t, float64(1), records[0]["failed"])
	assert.Equal(t, "", records[0]["correlation_id"])
}

func TestEventLogger_JobItemFailedLogsError(t *testing.T) {
	events, read := captureEvents(t)
	entityID := uuid.New()

	events.LogJobItemFailed(context.Background(), JobSnapshots, entityID, "boom")

	records := read()
	require.Len(t, records, 1)
	assert.Equal(t, "ERROR", records[0]["level"])
	assert.Equal(t, entityID.String(), records[0]["entity_id"])
	assert.Equal(t, "boom", records[0]["error"])
}
