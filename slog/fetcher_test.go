package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/harvest"
	"github.com/fwojciec/harvest/mock"
	harvestslog "github.com/fwojciec/harvest/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("logs fetch with bytes and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "<html>content</html>", nil
			},
		}

		fetcher := harvestslog.NewLoggingFetcher(inner, logger)
		html, err := fetcher.Fetch(context.Background(), "https://example.com")

		require.NoError(t, err)
		assert.Equal(t, "<html>content</html>", html)
		output := buf.String()
		assert.Contains(t, output, "fetch")
		assert.Contains(t, output, "url=https://example.com")
		assert.Contains(t, output, "bytes=20")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "", errors.New("network error")
			},
		}

		fetcher := harvestslog.NewLoggingFetcher(inner, logger)
		_, err := fetcher.Fetch(context.Background(), "https://example.com")

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "fetch")
		assert.Contains(t, output, "err=\"network error\"")
	})
}

func TestLoggingRecordService(t *testing.T) {
	t.Parallel()

	t.Run("logs record creation", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.RecordService{
			CreateRecordFn: func(ctx context.Context, rec *harvest.Record) error {
				return nil
			},
		}

		svc := harvestslog.NewLoggingRecordService(inner, logger)
		err := svc.CreateRecord(context.Background(), &harvest.Record{
			URL:    "https://example.com",
			Status: harvest.StatusSuccess,
		})

		require.NoError(t, err)
		output := buf.String()
		assert.Contains(t, output, "create record")
		assert.Contains(t, output, "url=https://example.com")
		assert.Contains(t, output, "status=success")
	})

	t.Run("logs delete failures", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.RecordService{
			DeleteRecordFn: func(ctx context.Context, id string) error {
				return harvest.Errorf(harvest.ENOTFOUND, "record not found")
			},
		}

		svc := harvestslog.NewLoggingRecordService(inner, logger)
		err := svc.DeleteRecord(context.Background(), "abc")

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "delete record")
		assert.Contains(t, output, "level=ERROR")
	})
}
