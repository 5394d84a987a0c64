package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/nvallejos/contable/internal/apperrors"
	"github.com/nvallejos/contable/internal/core/domain"
	portssvc "github.com/nvallejos/contable/internal/core/ports/services"
	"github.com/nvallejos/contable/internal/core/services"
	"github.com/nvallejos/contable/internal/dto"
	"github.com/nvallejos/contable/internal/handlers"
	"github.com/nvallejos/contable/internal/middleware"
	"github.com/nvallejos/contable/internal/platform/config"
)

// --- Mock EntryService ---
type MockEntryService struct {
	mock.Mock
}

var _ portssvc.EntrySvcFacade = (*MockEntryService)(nil)

func (m *MockEntryService) PostEntry(ctx context.Context, req dto.CreateEntryRequest, creatorUserID string) (*domain.Entry, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Entry), args.Error(1)
}

func (m *MockEntryService) GetEntryByID(ctx context.Context, entryID string) (*domain.Entry, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Entry), args.Error(1)
}

func (m *MockEntryService) ListEntries(ctx context.Context, params dto.ListEntriesParams) (*dto.ListEntriesResponse, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListEntriesResponse), args.Error(1)
}

func (m *MockEntryService) CorrectEntry(ctx context.Context, entryID string, req dto.CorrectEntryRequest, userID string) (*domain.Entry, error) {
	args := m.Called(ctx, entryID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Entry), args.Error(1)
}

// --- Test Suite Setup ---
type EntryHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockEntrySvc *MockEntryService
	operatorID   string
}

func (suite *EntryHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.Require().NoError(dto.RegisterCustomValidators())

	suite.mockEntrySvc = new(MockEntryService)
	suite.operatorID = uuid.NewString()

	container := &portssvc.ServiceContainer{Entry: suite.mockEntrySvc}
	cfg := &config.Config{}

	suite.router = gin.New()
	suite.router.Use(middleware.OperatorMiddleware())
	handlers.RegisterRoutes(suite.router, cfg, container, nil)
}

func (suite *EntryHandlerTestSuite) performJSON(method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(middleware.OperatorHeader, suite.operatorID)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func amountPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func (suite *EntryHandlerTestSuite) validCreateRequest() dto.CreateEntryRequest {
	return dto.CreateEntryRequest{
		Date:        time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		Description: "Venta de mercadería",
		Movements: []dto.CreateMovementRequest{
			{AccountCode: "1.1.01", Side: dto.SideDebit, Amount: amountPtr("1500.00")},
			{AccountCode: "4.1.01", Side: dto.SideCredit, Amount: amountPtr("1500.00")},
		},
	}
}

func (suite *EntryHandlerTestSuite) TestPostEntry_Created() {
	req := suite.validCreateRequest()
	entry := &domain.Entry{
		EntryID:     uuid.NewString(),
		EntryNumber: 42,
		EntryDate:   req.Date,
		Description: req.Description,
		Status:      domain.Posted,
	}

	suite.mockEntrySvc.On("PostEntry", mock.Anything, mock.AnythingOfType("dto.CreateEntryRequest"), suite.operatorID).Return(entry, nil).Once()

	w := suite.performJSON(http.MethodPost, "/api/v1/entries", req)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.EntryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(int64(42), resp.EntryNumber)
	suite.mockEntrySvc.AssertExpectations(suite.T())
}

func (suite *EntryHandlerTestSuite) TestPostEntry_UnbalancedIs422() {
	req := suite.validCreateRequest()
	unbalanced := &services.UnbalancedEntryError{
		Debits:     decimal.RequireFromString("100.02"),
		Credits:    decimal.RequireFromString("100.00"),
		Difference: decimal.RequireFromString("0.02"),
	}

	suite.mockEntrySvc.On("PostEntry", mock.Anything, mock.Anything, suite.operatorID).Return(nil, unbalanced).Once()

	w := suite.performJSON(http.MethodPost, "/api/v1/entries", req)

	suite.Equal(http.StatusUnprocessableEntity, w.Code)

	var body struct {
		Error      string          `json:"error"`
		Debits     decimal.Decimal `json:"debits"`
		Credits    decimal.Decimal `json:"credits"`
		Difference decimal.Decimal `json:"difference"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Contains(body.Error, "do not balance")
	suite.True(body.Debits.Equal(decimal.RequireFromString("100.02")))
	suite.True(body.Credits.Equal(decimal.RequireFromString("100.00")))
	suite.True(body.Difference.Equal(decimal.RequireFromString("0.02")))
}

func (suite *EntryHandlerTestSuite) TestPostEntry_BadAccountCodeIs400() {
	req := suite.validCreateRequest()
	req.Movements[0].AccountCode = "not-a-code"

	w := suite.performJSON(http.MethodPost, "/api/v1/entries", req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockEntrySvc.AssertNotCalled(suite.T(), "PostEntry", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *EntryHandlerTestSuite) TestPostEntry_SingleMovementIs400() {
	req := suite.validCreateRequest()
	req.Movements = req.Movements[:1]

	w := suite.performJSON(http.MethodPost, "/api/v1/entries", req)

	// min=2 on the movements binding rejects before the service is reached.
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockEntrySvc.AssertNotCalled(suite.T(), "PostEntry", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *EntryHandlerTestSuite) TestGetEntry_NotFoundIs404() {
	entryID := uuid.NewString()

	suite.mockEntrySvc.On("GetEntryByID", mock.Anything, entryID).Return(nil, fmt.Errorf("failed to find entry %s: %w", entryID, apperrors.ErrNotFound)).Once()

	w := suite.performJSON(http.MethodGet, "/api/v1/entries/"+entryID, nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *EntryHandlerTestSuite) TestCorrectEntry_LockedIs409() {
	entryID := uuid.NewString()
	req := dto.CorrectEntryRequest{
		Description: "Corrección tardía",
		Movements: []dto.CreateMovementRequest{
			{AccountCode: "1.1.01", Side: dto.SideDebit, Amount: amountPtr("100")},
			{AccountCode: "4.1.01", Side: dto.SideCredit, Amount: amountPtr("100")},
		},
	}

	suite.mockEntrySvc.On("CorrectEntry", mock.Anything, entryID, mock.AnythingOfType("dto.CorrectEntryRequest"), suite.operatorID).
		Return(nil, fmt.Errorf("%w: entry 3", services.ErrEntryLocked)).Once()

	w := suite.performJSON(http.MethodPost, "/api/v1/entries/"+entryID+"/correct", req)

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *EntryHandlerTestSuite) TestListEntries_PassesParams() {
	resp := &dto.ListEntriesResponse{Entries: []dto.EntryResponse{{EntryNumber: 7}}}

	suite.mockEntrySvc.On("ListEntries", mock.Anything, mock.MatchedBy(func(p dto.ListEntriesParams) bool {
		return p.Limit == 5 && p.IncludeSuperseded
	})).Return(resp, nil).Once()

	w := suite.performJSON(http.MethodGet, "/api/v1/entries?limit=5&includeSuperseded=true", nil)

	suite.Equal(http.StatusOK, w.Code)
	var got dto.ListEntriesResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &got))
	suite.Require().Len(got.Entries, 1)
	suite.Equal(int64(7), got.Entries[0].EntryNumber)
}

func TestEntryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(EntryHandlerTestSuite))
}
