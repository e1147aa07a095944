package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuditLog_SetNewValue(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		value    interface{}
		expected JSONBMap
	}{
		{
			name:  "set string value",
			key:   "status",
			value: StatementStatusPending,
			expected: JSONBMap{
				"status": "PENDING",
			},
		},
		{
			name:  "set numeric value",
			key:   "transactions_linked",
			value: 3,
			expected: JSONBMap{
				"transactions_linked": 3,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := &AuditLog{}
			log.SetNewValue(tt.key, tt.value)
			assert.Equal(t, tt.expected, log.NewValue)
			assert.Nil(t, log.OldValue)
		})
	}
}

func TestAuditLog_GetNewValue(t *testing.T) {
	log := &AuditLog{NewValue: JSONBMap{"total_due": "1500.00"}}

	assert.Equal(t, "1500.00", log.GetNewValue("total_due", ""))
	assert.Equal(t, "default", log.GetNewValue("missing", "default"))
	assert.Equal(t, 0, (&AuditLog{}).GetNewValue("anything", 0))
}

func TestNewAuditLog(t *testing.T) {
	userID := uuid.New()
	entityID := uuid.New()

	log := NewAuditLog(userID, AuditActionStatementGenerated, AuditEntityStatement, entityID)

	require.NotNil(t, log.UserID)
	assert.Equal(t, userID, *log.UserID)
	assert.Equal(t, entityID.String(), log.EntityID)

	str := log.String()
	assert.Contains(t, str, AuditActionStatementGenerated)
	assert.Contains(t, str, AuditEntityStatement)
	assert.Contains(t, str, entityID.String())
}

func TestJSONBMap_ValueAndScan(t *testing.T) {
	original := JSONBMap{"amount": "300.00", "installments": float64(6)}

	value, err := original.Value()
	require.NoError(t, err)

	var scanned JSONBMap
	require.NoError(t, scanned.Scan(value))
	assert.Equal(t, original, scanned)

	empty, err := JSONBMap{}.Value()
	require.NoError(t, err)
	assert.Nil(t, empty)

	assert.Error(t, scanned.Scan(42))
}
