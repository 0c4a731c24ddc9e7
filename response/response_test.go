package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	return c, recorder
}

func decode(t *testing.T, recorder *httptest.ResponseRecorder) Response {
	t.Helper()
	var resp Response
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	return resp
}

func TestSuccess(t *testing.T) {
	c, recorder := testContext(t)
	Success(c, gin.H{"name": "Sunrise"})

	assert.Equal(t, http.StatusOK, recorder.Code)
	resp := decode(t, recorder)
	assert.Equal(t, 1, resp.Code)
	assert.Equal(t, "Success", resp.Mess)
	assert.NotNil(t, resp.Data)
}

func TestSuccessWithPagination(t *testing.T) {
	c, recorder := testContext(t)
	SuccessWithPagination(c, []int{1, 2, 3}, 0, 10, 3)

	assert.Equal(t, http.StatusOK, recorder.Code)
	resp := decode(t, recorder)
	assert.Equal(t, 1, resp.Code)
	require.NotNil(t, resp.Pagination)
	assert.Equal(t, 0, resp.Pagination.Page)
	assert.Equal(t, 10, resp.Pagination.Limit)
	assert.Equal(t, 3, resp.Pagination.Total)
}

func TestErrorHelpers(t *testing.T) {
	cases := []struct {
		name   string
		send   func(*gin.Context)
		status int
		mess   string
	}{
		{"server error", ServerError, http.StatusInternalServerError, "Server error"},
		{"unauthorized", Unauthorized, http.StatusUnauthorized, "Not authenticated"},
		{"forbidden", Forbidden, http.StatusForbidden, "Access denied"},
		{"not found", NotFound, http.StatusNotFound, "Not found"},
		{"conflict", Conflict, http.StatusConflict, "Data conflict"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, recorder := testContext(t)
			tc.send(c)

			assert.Equal(t, tc.status, recorder.Code)
			resp := decode(t, recorder)
			assert.Equal(t, 0, resp.Code)
			assert.Equal(t, tc.mess, resp.Mess)
		})
	}
}

func TestBadRequestCarriesMessage(t *testing.T) {
	c, recorder := testContext(t)
	BadRequest(c, "checkOutDate must be after checkInDate")

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	resp := decode(t, recorder)
	assert.Equal(t, 0, resp.Code)
	assert.Equal(t, "checkOutDate must be after checkInDate", resp.Mess)
}
