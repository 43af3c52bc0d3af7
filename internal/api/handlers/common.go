package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/afinewinecompany/cnebl-sub004/internal/service"
	"github.com/afinewinecompany/cnebl-sub004/internal/utils"
)

// handleServiceError 將服務層錯誤對應到 HTTP 狀態碼與統一錯誤格式
func handleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		utils.Fail(c, http.StatusNotFound, utils.CodeNotFound, err.Error())
	case errors.Is(err, service.ErrForbidden):
		utils.Fail(c, http.StatusForbidden, utils.CodeForbidden, err.Error())
	case errors.Is(err, service.ErrConflict):
		utils.Fail(c, http.StatusConflict, utils.CodeConflict, err.Error())
	case errors.Is(err, service.ErrValidation):
		utils.Fail(c, http.StatusUnprocessableEntity, utils.CodeValidationFailed, err.Error())
	default:
		utils.Fail(c, http.StatusInternalServerError, utils.CodeInternal, "伺服器內部錯誤")
	}
}

// parseIDParam 解析路徑中的數字 ID，失敗時回應 400 並回報 false
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		utils.Fail(c, http.StatusBadRequest, utils.CodeBadRequest, "無效的 "+name)
		return 0, false
	}
	return uint(id), true
}
