package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"hospitality-concierge/internal/model"
	"hospitality-concierge/internal/session"
	"hospitality-concierge/pkg/response"
)

// Chat godoc
// @Summary     Send a chat message
// @Description Processes one guest message and returns the concierge reply.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body chatReq true "Guest message"
// @Success     200  {object} chatResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChatReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.Chat(ctx, model.Scope{UserID: req.UserID}, req.toInput())
	if err != nil {
		if errors.Is(err, session.ErrEmptyMessage) || errors.Is(err, session.ErrEmptyUserID) {
			response.Error(c, err, nil)
			return
		}
		h.l.Errorf(ctx, "uc.Chat: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, h.newChatResp(out))
}
