package services

import (
	"encoding/json"
	"time"

	"github.com/studyring/reputation-backend/internal/ledger"
	"github.com/studyring/reputation-backend/internal/models"
	"github.com/studyring/reputation-backend/pkg/logger"
	"gorm.io/gorm"
)

// JournalService persists every event emitted by the ledger engine as an
// append-only audit row. Journaling is best-effort: a storage failure is
// logged but never fails the command that already committed in memory.
type JournalService struct {
	db *gorm.DB
}

func NewJournalService(db *gorm.DB) *JournalService {
	return &JournalService{db: db}
}

// Record writes one audit row per event.
func (s *JournalService) Record(command string, actor ledger.AccountID, tick ledger.Tick, requestID string, events []ledger.Event) {
	if s == nil || s.db == nil {
		return
	}
	for _, ev := range events {
		payload, err := json.Marshal(ev)
		if err != nil {
			logger.Error().Err(err).Str("event", ev.EventName()).Msg("marshal audit event")
			continue
		}
		row := &models.AuditEvent{
			Event:     ev.EventName(),
			Command:   command,
			Actor:     uint64(actor),
			Tick:      uint64(tick),
			RequestID: requestID,
			Payload:   string(payload),
			CreatedAt: time.Now(),
		}
		if err := s.db.Create(row).Error; err != nil {
			logger.Error().Err(err).Str("event", ev.EventName()).Msg("persist audit event")
		}
	}
}

type JournalListRequest struct {
	Page     int    `form:"page" binding:"min=1"`
	PageSize int    `form:"page_size" binding:"min=1,max=100"`
	Event    string `form:"event"`
	Command  string `form:"command"`
	Actor    uint64 `form:"actor"`
}

type JournalListResponse struct {
	Total    int64               `json:"total"`
	Page     int                 `json:"page"`
	PageSize int                 `json:"page_size"`
	Items    []models.AuditEvent `json:"items"`
}

// List returns a page of audit events, newest first.
func (s *JournalService) List(req *JournalListRequest) (*JournalListResponse, error) {
	query := s.db.Model(&models.AuditEvent{})

	if req.Event != "" {
		query = query.Where("event = ?", req.Event)
	}
	if req.Command != "" {
		query = query.Where("command = ?", req.Command)
	}
	if req.Actor != 0 {
		query = query.Where("actor = ?", req.Actor)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	var items []models.AuditEvent
	offset := (req.Page - 1) * req.PageSize
	if err := query.Order("id DESC").Offset(offset).Limit(req.PageSize).Find(&items).Error; err != nil {
		return nil, err
	}

	return &JournalListResponse{
		Total:    total,
		Page:     req.Page,
		PageSize: req.PageSize,
		Items:    items,
	}, nil
}
