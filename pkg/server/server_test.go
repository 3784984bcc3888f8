package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ht-tools/housing-atlas/pkg/models/api"
	"github.com/ht-tools/housing-atlas/pkg/models/domain"
	"github.com/ht-tools/housing-atlas/pkg/services/report"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockReports struct {
	mock.Mock
}

func (m *mockReports) Overview(ctx context.Context) (domain.Overview, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.Overview), args.Error(1)
}

func (m *mockReports) CrossTab(
	ctx context.Context,
	dimension string,
	levels []domain.SatisfactionLevel,
) (domain.CrossTab, error) {
	args := m.Called(ctx, dimension, levels)
	return args.Get(0).(domain.CrossTab), args.Error(1)
}

func (m *mockReports) Reasons(ctx context.Context, top int) ([]domain.ReasonCount, error) {
	args := m.Called(ctx, top)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ReasonCount), args.Error(1)
}

func (m *mockReports) Groups(ctx context.Context, dimension string) (domain.GroupSummary, error) {
	args := m.Called(ctx, dimension)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.GroupSummary), args.Error(1)
}

func (m *mockReports) Districts(ctx context.Context) (domain.DistrictJoin, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.DistrictJoin), args.Error(1)
}

func (m *mockReports) BuildReport(ctx context.Context, opts report.Options) (*domain.Report, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Report), args.Error(1)
}

func newTestAPI(reports report.Controller) *WebAPI {
	logger := zerolog.Nop()
	return NewWebAPI(logger, Config{
		Addr:         "127.0.0.1:0",
		Dependencies: Dependencies{Reports: reports},
	})
}

func TestWebAPI_Routes(t *testing.T) {
	t.Run("overview route wired", func(t *testing.T) {
		reports := new(mockReports)
		reports.On("Overview", mock.Anything).Return(domain.Overview{TotalRows: 7}, nil)

		webAPI := newTestAPI(reports)
		req := httptest.NewRequest(http.MethodGet, "/api/v1/satisfaction/overview", nil)
		rec := httptest.NewRecorder()
		webAPI.Router().ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var body api.Overview
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, 7, body.TotalRows)
	})

	t.Run("groups route passes the key through", func(t *testing.T) {
		reports := new(mockReports)
		reports.On("Groups", mock.Anything, "income").Return(domain.GroupSummary{}, nil)

		webAPI := newTestAPI(reports)
		req := httptest.NewRequest(http.MethodGet, "/api/v1/satisfaction/groups?key=income", nil)
		rec := httptest.NewRecorder()
		webAPI.Router().ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		reports.AssertExpectations(t)
	})

	t.Run("unknown route is 404", func(t *testing.T) {
		webAPI := newTestAPI(new(mockReports))
		req := httptest.NewRequest(http.MethodGet, "/api/v1/satisfaction/nope", nil)
		rec := httptest.NewRecorder()
		webAPI.Router().ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("panicking handler is recovered", func(t *testing.T) {
		reports := new(mockReports)
		reports.On("Districts", mock.Anything).Panic("boom")

		webAPI := newTestAPI(reports)
		req := httptest.NewRequest(http.MethodGet, "/api/v1/satisfaction/districts", nil)
		rec := httptest.NewRecorder()
		webAPI.Router().ServeHTTP(rec, req)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
