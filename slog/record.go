package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/harvest"
)

var _ harvest.RecordService = (*LoggingRecordService)(nil)

// LoggingRecordService wraps a harvest.RecordService and logs each storage
// operation with its outcome and duration.
type LoggingRecordService struct {
	inner  harvest.RecordService
	logger *slog.Logger
}

// NewLoggingRecordService creates a LoggingRecordService wrapping inner.
func NewLoggingRecordService(inner harvest.RecordService, logger *slog.Logger) *LoggingRecordService {
	return &LoggingRecordService{inner: inner, logger: logger}
}

func (s *LoggingRecordService) CreateRecord(ctx context.Context, rec *harvest.Record) error {
	start := time.Now()
	err := s.inner.CreateRecord(ctx, rec)
	s.log("create record", err, "url", rec.URL, "status", rec.Status, "duration", time.Since(start))
	return err
}

func (s *LoggingRecordService) FindRecordByID(ctx context.Context, id string) (*harvest.Record, error) {
	start := time.Now()
	rec, err := s.inner.FindRecordByID(ctx, id)
	s.log("find record", err, "id", id, "duration", time.Since(start))
	return rec, err
}

func (s *LoggingRecordService) FindRecords(ctx context.Context, filter harvest.RecordFilter) ([]*harvest.Record, error) {
	start := time.Now()
	records, err := s.inner.FindRecords(ctx, filter)
	s.log("list records", err, "count", len(records), "duration", time.Since(start))
	return records, err
}

func (s *LoggingRecordService) DeleteRecord(ctx context.Context, id string) error {
	start := time.Now()
	err := s.inner.DeleteRecord(ctx, id)
	s.log("delete record", err, "id", id, "duration", time.Since(start))
	return err
}

func (s *LoggingRecordService) log(msg string, err error, args ...any) {
	if err != nil {
		s.logger.Error(msg, append(args, "err", err)...)
		return
	}
	s.logger.Info(msg, args...)
}
