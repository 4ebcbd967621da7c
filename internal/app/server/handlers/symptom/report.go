package symptom

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"lfp/dpalert/internal/app/domains/apimodel/request"
	"lfp/dpalert/internal/app/domains/apimodel/response"
	"lfp/dpalert/internal/app/pkg/errorx"
	"lfp/dpalert/internal/app/pkg/ginx"
)

// Report 症状提交接口
// POST /symptoms
// 成功返回按分值降序的全部候选诊断，每条候选各落一条告警记录
func (h *Handler) Report(c *gin.Context) {
	ctx := c.Request.Context()

	var req request.ReportSymptomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warnf(ctx, "report symptoms: bad request: %s",
			strings.Join(ginx.ValidationDetails(err), "; "))
		ginx.BadRequest(c, "animal_id and symptoms[] required")
		return
	}

	// symptoms 缺失或 null 为参数错误，空数组合法
	if req.Symptoms == nil {
		ginx.BadRequest(c, "animal_id and symptoms[] required")
		return
	}

	predictions, err := h.symptomService.Report(ctx, req.AnimalID, req.Symptoms)
	if err != nil {
		var ve *errorx.ValidationError
		if errors.As(err, &ve) {
			ginx.BadRequest(c, ve.Message)
			return
		}

		h.log.Errorf(ctx, "report symptoms failed: animal_id=%s err=%v", req.AnimalID, err)
		ginx.InternalError(c, "Internal server error")
		return
	}

	ginx.Success(c, response.FromPredictions(predictions))
}
