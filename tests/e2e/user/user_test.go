//go:build e2e

package user_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"lendshare/tests/e2e"

	"github.com/stretchr/testify/suite"
)

type UserE2ETestSuite struct {
	e2e.SharedSuite
}

func TestUserE2ESuite(t *testing.T) {
	suite.Run(t, new(UserE2ETestSuite))
}

func (s *UserE2ETestSuite) perform(method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	s.Router.ServeHTTP(rec, req)
	return rec
}

func (s *UserE2ETestSuite) decode(rec *httptest.ResponseRecorder) map[string]any {
	var out map[string]any
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func (s *UserE2ETestSuite) TestUserCRUD() {
	s.Run("create, read, update, delete", func() {
		rec := s.perform(http.MethodPost, "/users", map[string]any{"name": "Alice", "email": "alice@example.com"})
		s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
		userID := int64(s.decode(rec)["id"].(float64))

		rec = s.perform(http.MethodGet, fmt.Sprintf("/users/%d", userID), nil)
		s.Require().Equal(http.StatusOK, rec.Code)
		s.Equal("Alice", s.decode(rec)["name"])

		rec = s.perform(http.MethodPatch, fmt.Sprintf("/users/%d", userID), map[string]any{"name": "Alicia"})
		s.Require().Equal(http.StatusOK, rec.Code)
		s.Equal("Alicia", s.decode(rec)["name"])
		s.Equal("alice@example.com", s.decode(rec)["email"])

		rec = s.perform(http.MethodGet, "/users", nil)
		s.Require().Equal(http.StatusOK, rec.Code)
		var list []map[string]any
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &list))
		s.Len(list, 1)

		rec = s.perform(http.MethodDelete, fmt.Sprintf("/users/%d", userID), nil)
		s.Require().Equal(http.StatusNoContent, rec.Code)

		rec = s.perform(http.MethodGet, fmt.Sprintf("/users/%d", userID), nil)
		s.Equal(http.StatusNotFound, rec.Code)
	})

	s.Run("duplicate email conflicts", func() {
		rec := s.perform(http.MethodPost, "/users", map[string]any{"name": "Alice", "email": "alice@example.com"})
		s.Require().Equal(http.StatusCreated, rec.Code)

		rec = s.perform(http.MethodPost, "/users", map[string]any{"name": "Another", "email": "alice@example.com"})
		s.Equal(http.StatusConflict, rec.Code)

		rec = s.perform(http.MethodPost, "/users", map[string]any{"name": "Bob", "email": "bob@example.com"})
		s.Require().Equal(http.StatusCreated, rec.Code)
		bobID := int64(s.decode(rec)["id"].(float64))

		rec = s.perform(http.MethodPatch, fmt.Sprintf("/users/%d", bobID), map[string]any{"email": "alice@example.com"})
		s.Equal(http.StatusConflict, rec.Code)
	})

	s.Run("validation", func() {
		rec := s.perform(http.MethodPost, "/users", map[string]any{"name": "Alice", "email": "not-an-email"})
		s.Equal(http.StatusBadRequest, rec.Code)

		rec = s.perform(http.MethodPost, "/users", map[string]any{"email": "alice@example.com"})
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}
