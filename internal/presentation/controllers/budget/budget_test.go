package budget

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/budgify/backend/internal/domain/models"
	presentationProtocols "github.com/budgify/backend/internal/presentation/protocols"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUpsertBudgetRepository struct {
	saved *models.BudgetSetting
	err   error
}

func (f *fakeUpsertBudgetRepository) Upsert(setting *models.BudgetSetting) (*models.BudgetSetting, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.saved = setting
	return setting, nil
}

func budgetRequest(userId string, body string) presentationProtocols.HttpRequest {
	req := httptest.NewRequest(http.MethodPut, "/budget", bytes.NewBufferString(body))
	req.Header.Set("UserId", userId)

	return presentationProtocols.HttpRequest{
		Body:      io.NopCloser(bytes.NewBufferString(body)),
		Header:    req.Header,
		UrlParams: req.URL.Query(),
		Req:       req,
	}
}

func TestGetBudgetController(t *testing.T) {
	t.Run("returns the setting under the monthly_limit field", func(t *testing.T) {
		controller := NewGetBudgetController(&fakeBudgetRepository{
			setting: &models.BudgetSetting{UserId: 7, MonthlyBudget: 1500, UpdatedAt: "2024-03-01T00:00:00.000000Z"},
		})

		response := controller.Handle(budgetRequest("7", ""))
		require.Equal(t, http.StatusOK, response.StatusCode)

		var got BudgetResponse
		decodeBody(t, response, &got)
		assert.Equal(t, int64(7), got.UserId)
		assert.Equal(t, 1500.0, got.MonthlyLimit)
	})

	t.Run("404 when no budget was ever configured", func(t *testing.T) {
		controller := NewGetBudgetController(&fakeBudgetRepository{})

		response := controller.Handle(budgetRequest("7", ""))
		assert.Equal(t, http.StatusNotFound, response.StatusCode)
	})
}

func TestUpdateBudgetController(t *testing.T) {
	t.Run("upserts and echoes the new limit", func(t *testing.T) {
		repo := &fakeUpsertBudgetRepository{}
		controller := NewUpdateBudgetController(repo)

		response := controller.Handle(budgetRequest("7", `{"monthly_limit": 1200}`))
		require.Equal(t, http.StatusOK, response.StatusCode)

		require.NotNil(t, repo.saved)
		assert.Equal(t, int64(7), repo.saved.UserId)
		assert.Equal(t, 1200.0, repo.saved.MonthlyBudget)
		assert.NotEmpty(t, repo.saved.UpdatedAt)

		var got BudgetResponse
		decodeBody(t, response, &got)
		assert.Equal(t, 1200.0, got.MonthlyLimit)
	})

	t.Run("zero is a legal limit", func(t *testing.T) {
		repo := &fakeUpsertBudgetRepository{}
		controller := NewUpdateBudgetController(repo)

		response := controller.Handle(budgetRequest("7", `{"monthly_limit": 0}`))
		assert.Equal(t, http.StatusOK, response.StatusCode)
	})

	t.Run("negative limit is rejected", func(t *testing.T) {
		controller := NewUpdateBudgetController(&fakeUpsertBudgetRepository{})

		response := controller.Handle(budgetRequest("7", `{"monthly_limit": -5}`))
		assert.Equal(t, http.StatusUnprocessableEntity, response.StatusCode)
	})

	t.Run("malformed body is rejected", func(t *testing.T) {
		controller := NewUpdateBudgetController(&fakeUpsertBudgetRepository{})

		response := controller.Handle(budgetRequest("7", `{`))
		assert.Equal(t, http.StatusBadRequest, response.StatusCode)
	})
}
