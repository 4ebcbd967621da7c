package symptom

import (
	"errors"

	"github.com/gin-gonic/gin"

	"lfp/dpalert/internal/app/domains/apimodel/response"
	"lfp/dpalert/internal/app/pkg/errorx"
	"lfp/dpalert/internal/app/pkg/ginx"
)

// History 历史告警查询接口
// GET /symptoms?animal_id=XXX
// 返回该动物的全部历史记录，按追加顺序，不分页不按日期过滤
func (h *Handler) History(c *gin.Context) {
	ctx := c.Request.Context()

	animalID := c.Query("animal_id")
	if animalID == "" {
		ginx.BadRequest(c, "animal_id required")
		return
	}

	alerts, err := h.symptomService.History(ctx, animalID)
	if err != nil {
		var ve *errorx.ValidationError
		if errors.As(err, &ve) {
			ginx.BadRequest(c, ve.Message)
			return
		}

		h.log.Errorf(ctx, "query alert history failed: animal_id=%s err=%v", animalID, err)
		ginx.InternalError(c, "Internal server error")
		return
	}

	ginx.Success(c, response.FromAlertEntities(alerts))
}
