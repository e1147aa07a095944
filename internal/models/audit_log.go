package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	AuditActionStatementGenerated   = "STATEMENT_GENERATED"
	AuditActionPaymentReverted      = "PAYMENT_REVERTED"
	AuditActionInstallmentCreated   = "INSTALLMENT_PURCHASE_CREATED"
	AuditActionInstallmentDeleted   = "INSTALLMENT_PURCHASE_DELETED"
	AuditActionStatementMarkOverdue = "STATEMENT_MARKED_OVERDUE"

	AuditEntityStatement   = "credit_card_statement"
	AuditEntityTransaction = "transaction"
	AuditEntityInstallment = "installment_purchase"
)

// AuditLog is an append-only record of a state change.
type AuditLog struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	UserID     *uuid.UUID `gorm:"type:uuid;index" json:"user_id,omitempty"`
	Action     string     `gorm:"type:varchar(100);not null;index" json:"action"`
	EntityType string     `gorm:"type:varchar(100);not null" json:"entity_type"`
	EntityID   string     `gorm:"type:varchar(255);index" json:"entity_id,omitempty"`
	OldValue   JSONBMap   `gorm:"type:text" json:"old_value,omitempty"`
	NewValue   JSONBMap   `gorm:"type:text" json:"new_value,omitempty"`
	CreatedAt  time.Time  `gorm:"not null;index" json:"created_at"`
}

// NewAuditLog builds an entry for the given entity.
func NewAuditLog(userID uuid.UUID, action, entityType string, entityID uuid.UUID) *AuditLog {
	return &AuditLog{
		UserID:     &userID,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID.String(),
	}
}

func (al *AuditLog) SetNewValue(key string, value interface{}) {
	if al.NewValue == nil {
		al.NewValue = make(JSONBMap)
	}
	al.NewValue[key] = value
}

func (al *AuditLog) SetOldValue(key string, value interface{}) {
	if al.OldValue == nil {
		al.OldValue = make(JSONBMap)
	}
	al.OldValue[key] = value
}

func (al *AuditLog) GetNewValue(key string, defaultValue interface{}) interface{} {
	if al.NewValue == nil {
		return defaultValue
	}

	if value, exists := al.NewValue[key]; exists {
		return value
	}

	return defaultValue
}

func (al *AuditLog) String() string {
	userStr := "system"
	if al.UserID != nil {
		userStr = al.UserID.String()
	}

	return fmt.Sprintf("AuditLog[User: %s, Action: %s, Entity: %s/%s, Time: %s]",
		userStr, al.Action, al.EntityType, al.EntityID, al.CreatedAt.Format(time.RFC3339))
}

func (al *AuditLog) TableName() string {
	return "audit_logs"
}

func (al *AuditLog) BeforeCreate(tx *gorm.DB) error {
	if al.ID == uuid.Nil {
		al.ID = uuid.New()
	}

	if al.CreatedAt.IsZero() {
		al.CreatedAt = time.Now().UTC()
	}
	return nil
}

// JSONBMap represents a JSONB map field for PostgreSQL
// @Description Map of string keys to arbitrary values
// swaggertype: object
// additionalProperties: true
type JSONBMap map[string]interface{}

// Value implements driver.Valuer interface
func (m JSONBMap) Value() (driver.Value, error) {
	if m == nil || len(m) == 0 {
		return nil, nil
	}
	bytes, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	// Return string for SQLite compatibility
	return string(bytes), nil
}

func (m *JSONBMap) Scan(value interface{}) error {
	if value == nil {
		*m = nil
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into JSONBMap", value)
	}

	if len(bytes) == 0 {
		*m = nil
		return nil
	}

	return json.Unmarshal(bytes, m)
}

func (m JSONBMap) MarshalJSON() ([]byte, error) {
	if m == nil {
		return []byte("null"), nil
	}
	return json.Marshal(map[string]interface{}(m))
}

func (m *JSONBMap) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var tmp map[string]interface{}
	if err := json.Unmarshal(data, &tmp); err != nil {
		return err
	}
	*m = JSONBMap(tmp)
	return nil
}
