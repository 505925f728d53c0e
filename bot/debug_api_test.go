package bot

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"unionlotto/domain/entities"
	"unionlotto/domain/services"
	"unionlotto/domain/testhelpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type setViewResponse struct {
	Success bool      `json:"success"`
	Message string    `json:"message"`
	Error   string    `json:"error"`
	Data    []SetView `json:"data"`
}

func newTestSet(t *testing.T, reds []int, blue int) *entities.LotterySet {
	t.Helper()
	set := entities.NewLotterySet(reds, blue, entities.SetSourceRandom, "", time.UnixMilli(1700000000123))
	require.NoError(t, set.Validate())
	return set
}

func TestDebugAPI_Health(t *testing.T) {
	handler := NewDebugHandler(new(testhelpers.MockLotterySession))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}

func TestDebugAPI_History(t *testing.T) {
	lotto := new(testhelpers.MockLotterySession)
	sets := []*entities.LotterySet{
		newTestSet(t, []int{1, 5, 12, 19, 27, 33}, 7),
		newTestSet(t, []int{2, 4, 6, 8, 10, 12}, 16),
	}
	lotto.On("History", mock.Anything).Return(sets, nil)

	rec := httptest.NewRecorder()
	NewDebugHandler(lotto).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/debug/history", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp setViewResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.Len(t, resp.Data, 2)
	assert.Equal(t, sets[0].ID, resp.Data[0].ID)
	assert.Equal(t, int64(1700000000123), resp.Data[0].Timestamp)
	assert.Equal(t, "Red: 01, 05, 12, 19, 27, 33 | Blue: 07", resp.Data[0].CopyText)
	assert.Equal(t, "random", resp.Data[1].Source)
}

func TestDebugAPI_Stats(t *testing.T) {
	lotto := new(testhelpers.MockLotterySession)
	lotto.On("Stats", mock.Anything).Return([]entities.NumberStat{
		{Number: 7, Count: 3, Category: entities.CategoryRed},
		{Number: 7, Count: 1, Category: entities.CategoryBlue},
	}, nil)

	rec := httptest.NewRecorder()
	NewDebugHandler(lotto).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/debug/stats", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"success": true,
		"message": "2 entries",
		"data": [
			{"number": 7, "count": 3, "category": "red"},
			{"number": 7, "count": 1, "category": "blue"}
		]
	}`, rec.Body.String())
}

func TestDebugAPI_Pick(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		count      int
		pickErr    error
		wantStatus int
	}{
		{name: "explicit count", body: `{"count":3}`, count: 3, wantStatus: http.StatusOK},
		{name: "empty body defaults to one", body: "", count: 1, wantStatus: http.StatusOK},
		{name: "out of range", body: `{"count":9}`, count: 9, pickErr: fmt.Errorf("%w: 9", services.ErrInvalidBatchSize), wantStatus: http.StatusBadRequest},
		{name: "storage failure", body: `{"count":1}`, count: 1, pickErr: errors.New("disk on fire"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lotto := new(testhelpers.MockLotterySession)
			if tt.pickErr != nil {
				lotto.On("PickRandom", mock.Anything, tt.count).Return(nil, tt.pickErr)
			} else {
				batch := make([]*entities.LotterySet, tt.count)
				for idx := range batch {
					batch[idx] = newTestSet(t, []int{1, 2, 3, 4, 5, 6}, idx+1)
				}
				lotto.On("PickRandom", mock.Anything, tt.count).Return(batch, nil)
			}

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/debug/pick", bytes.NewBufferString(tt.body))
			NewDebugHandler(lotto).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			var resp setViewResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			if tt.pickErr != nil {
				assert.False(t, resp.Success)
				assert.Contains(t, resp.Error, tt.pickErr.Error())
			} else {
				assert.True(t, resp.Success)
				assert.Len(t, resp.Data, tt.count)
			}
			lotto.AssertExpectations(t)
		})
	}
}

func TestDebugAPI_PickInvalidBody(t *testing.T) {
	lotto := new(testhelpers.MockLotterySession)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/debug/pick", bytes.NewBufferString("{not json"))
	NewDebugHandler(lotto).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	lotto.AssertNotCalled(t, "PickRandom", mock.Anything, mock.Anything)
}

func TestDebugAPI_MethodNotAllowed(t *testing.T) {
	handler := NewDebugHandler(new(testhelpers.MockLotterySession))

	for _, target := range []string{"/debug/history", "/debug/stats"} {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, target, nil))
		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code, target)
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/debug/pick", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
