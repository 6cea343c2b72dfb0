package mock

import (
	"context"

	"github.com/fwojciec/harvest"
)

var _ harvest.RecordService = (*RecordService)(nil)

// RecordService is a mock implementation of harvest.RecordService.
type RecordService struct {
	CreateRecordFn   func(ctx context.Context, rec *harvest.Record) error
	FindRecordByIDFn func(ctx context.Context, id string) (*harvest.Record, error)
	FindRecordsFn    func(ctx context.Context, filter harvest.RecordFilter) ([]*harvest.Record, error)
	DeleteRecordFn   func(ctx context.Context, id string) error
}

func (s *RecordService) CreateRecord(ctx context.Context, rec *harvest.Record) error {
	return s.CreateRecordFn(ctx, rec)
}

func (s *RecordService) FindRecordByID(ctx context.Context, id string) (*harvest.Record, error) {
	return s.FindRecordByIDFn(ctx, id)
}

func (s *RecordService) FindRecords(ctx context.Context, filter harvest.RecordFilter) ([]*harvest.Record, error) {
	return s.FindRecordsFn(ctx, filter)
}

func (s *RecordService) DeleteRecord(ctx context.Context, id string) error {
	return s.DeleteRecordFn(ctx, id)
}
