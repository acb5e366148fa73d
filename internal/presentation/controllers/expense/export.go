package expense

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/budgify/backend/internal/domain/models"
	"github.com/budgify/backend/internal/domain/usecase"
	"github.com/budgify/backend/internal/presentation/helpers"
	presentationProtocols "github.com/budgify/backend/internal/presentation/protocols"
	"github.com/xuri/excelize/v2"
)

const exportCacheTTL = 10 * time.Minute

type ExportExpensesController struct {
	FindExpensesByUserIdRepository usecase.FindExpensesByUserIdRepository
	ExportCacheRepository          usecase.ExpenseExportCacheRepository
}

// NewExportExpensesController builds the XLSX export controller. The cache
// may be nil, in which case every request regenerates the workbook.
func NewExportExpensesController(
	findExpenses usecase.FindExpensesByUserIdRepository,
	exportCache usecase.ExpenseExportCacheRepository,
) *ExportExpensesController {
	return &ExportExpensesController{
		FindExpensesByUserIdRepository: findExpenses,
		ExportCacheRepository:          exportCache,
	}
}

func (c *ExportExpensesController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	userId, errResponse := helpers.GetUserId(r)
	if errResponse != nil {
		return errResponse
	}

	cacheKey := fmt.Sprintf("expense-export:%d", userId)
	if c.ExportCacheRepository != nil {
		cached, err := c.ExportCacheRepository.FindExcel(cacheKey)
		if err == nil && cached != nil {
			return excelResponse(cached)
		}
	}

	expenses, err := c.FindExpensesByUserIdRepository.Find(userId)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "error finding expenses",
		}, http.StatusInternalServerError)
	}

	file, err := buildExpenseWorkbook(expenses)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "error generating export",
		}, http.StatusInternalServerError)
	}

	if c.ExportCacheRepository != nil {
		// Cache failures only cost the next request a regeneration.
		_ = c.ExportCacheRepository.SaveExcel(cacheKey, file, exportCacheTTL)
	}

	return excelResponse(file)
}

func buildExpenseWorkbook(expenses []models.Expense) (*excelize.File, error) {
	file := excelize.NewFile()
	sheet := "Expenses"
	if err := file.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	headers := []string{"Date", "Category", "Description", "Amount"}
	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := file.SetCellValue(sheet, cell, header); err != nil {
			return nil, err
		}
	}

	for row, expense := range expenses {
		values := []any{expense.Date, expense.Category, expense.Description, expense.Amount}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, err
			}
			if err := file.SetCellValue(sheet, cell, value); err != nil {
				return nil, err
			}
		}
	}

	return file, nil
}

func excelResponse(file *excelize.File) *presentationProtocols.HttpResponse {
	buf, err := file.WriteToBuffer()
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "error serializing export",
		}, http.StatusInternalServerError)
	}

	headers := http.Header{}
	headers.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	headers.Set("Content-Disposition", `attachment; filename="expenses.xlsx"`)

	return &presentationProtocols.HttpResponse{
		Body:       io.NopCloser(bytes.NewReader(buf.Bytes())),
		StatusCode: http.StatusOK,
		Headers:    headers,
	}
}
