//go:build unit

package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"lendshare/internal/handler/api"
	"lendshare/internal/handler/middleware"
	"lendshare/internal/pkg/errs"
	"lendshare/internal/usecase/queries"
	"lendshare/tests/common/builder"
	commandsmock "lendshare/tests/mock/commands"
	queriesmock "lendshare/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RequestHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockRequestCommands
	mockQueries  *queriesmock.MockRequestQueries
}

func (s *RequestHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockRequestCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockRequestQueries(s.mockCtrl)
	handler := api.NewRequestHandler(s.mockCommands, s.mockQueries)

	identity := middleware.RequireUserID()
	s.router.POST("/requests", identity, handler.Create)
	s.router.GET("/requests", identity, handler.ListOwn)
	s.router.GET("/requests/all", identity, handler.ListOthers)
	s.router.GET("/requests/:requestId", identity, handler.Get)
}

func (s *RequestHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRequestHandlerSuite(t *testing.T) {
	suite.Run(t, new(RequestHandlerTestSuite))
}

func (s *RequestHandlerTestSuite) perform(method, url string, body any, callerID int64) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, url, &buf)
	req.Header.Set("Content-Type", "application/json")
	if callerID != 0 {
		req.Header.Set(middleware.UserIDHeader, strconv.FormatInt(callerID, 10))
	}

	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *RequestHandlerTestSuite) TestCreate() {
	rb := builder.NewRequestBuilder()

	s.Run("created", func() {
		s.mockCommands.EXPECT().
			Create(gomock.Any(), rb.RequestorID, rb.Description).
			Return(rb.BuildView(), nil)

		rec := s.perform(http.MethodPost, "/requests", rb.BuildCreateRequestDTO(), rb.RequestorID)
		s.Equal(http.StatusCreated, rec.Code)
		s.Contains(rec.Body.String(), `"items":[]`)
		s.NotContains(rec.Body.String(), "RequestorID")
	})

	s.Run("missing identity header", func() {
		rec := s.perform(http.MethodPost, "/requests", rb.BuildCreateRequestDTO(), 0)
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("missing description", func() {
		rec := s.perform(http.MethodPost, "/requests", map[string]any{}, rb.RequestorID)
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("unknown requestor", func() {
		s.mockCommands.EXPECT().
			Create(gomock.Any(), int64(999), rb.Description).
			Return(nil, errs.NotFound("user", 999))

		rec := s.perform(http.MethodPost, "/requests", rb.BuildCreateRequestDTO(), 999)
		s.Equal(http.StatusNotFound, rec.Code)
	})
}

func (s *RequestHandlerTestSuite) TestListOwn() {
	rb := builder.NewRequestBuilder()

	s.Run("own requests", func() {
		s.mockQueries.EXPECT().
			ListOwn(gomock.Any(), rb.RequestorID).
			Return([]*queries.RequestView{rb.BuildView()}, nil)

		rec := s.perform(http.MethodGet, "/requests", nil, rb.RequestorID)
		s.Equal(http.StatusOK, rec.Code)
	})
}

func (s *RequestHandlerTestSuite) TestListOthers() {
	rb := builder.NewRequestBuilder()

	s.Run("defaults forwarded", func() {
		s.mockQueries.EXPECT().
			ListOthers(gomock.Any(), rb.RequestorID, int32(0), int32(10)).
			Return([]*queries.RequestView{}, nil)

		rec := s.perform(http.MethodGet, "/requests/all", nil, rb.RequestorID)
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("explicit paging forwarded", func() {
		s.mockQueries.EXPECT().
			ListOthers(gomock.Any(), rb.RequestorID, int32(2), int32(5)).
			Return([]*queries.RequestView{rb.BuildView()}, nil)

		rec := s.perform(http.MethodGet, "/requests/all?from=2&size=5", nil, rb.RequestorID)
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("negative from", func() {
		rec := s.perform(http.MethodGet, "/requests/all?from=-1", nil, rb.RequestorID)
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("zero size", func() {
		rec := s.perform(http.MethodGet, "/requests/all?size=0", nil, rb.RequestorID)
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *RequestHandlerTestSuite) TestGet() {
	rb := builder.NewRequestBuilder()

	s.Run("found", func() {
		s.mockQueries.EXPECT().
			GetByID(gomock.Any(), rb.ID, int64(1)).
			Return(rb.BuildView(), nil)

		rec := s.perform(http.MethodGet, "/requests/200", nil, 1)
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("unknown request", func() {
		s.mockQueries.EXPECT().
			GetByID(gomock.Any(), int64(999), int64(1)).
			Return(nil, errs.NotFound("request", 999))

		rec := s.perform(http.MethodGet, "/requests/999", nil, 1)
		s.Equal(http.StatusNotFound, rec.Code)
	})

	s.Run("non-numeric id", func() {
		rec := s.perform(http.MethodGet, "/requests/abc", nil, 1)
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}
