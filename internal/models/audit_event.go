package models

import "time"

// AuditEvent is one journal row per notification emitted by the ledger
// engine. Rows are append-only; the journal is the durable audit trail
// around the in-memory ledger state.
type AuditEvent struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	Event     string    `gorm:"size:100;index" json:"event"`
	Command   string    `gorm:"size:100;index" json:"command"`
	Actor     uint64    `gorm:"index" json:"actor"`
	Tick      uint64    `gorm:"index" json:"tick"`
	RequestID string    `gorm:"size:64;index" json:"request_id"`
	Payload   string    `gorm:"type:text" json:"payload"` // JSON event body
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

func (AuditEvent) TableName() string { return "audit_events" }
