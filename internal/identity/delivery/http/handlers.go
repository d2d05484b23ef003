package http

import (
	"github.com/gin-gonic/gin"

	"maxbot-api/pkg/response"
)

// Me godoc
// @Summary     Bot identity
// @Description Returns the identity of the configured bot as reported by GET /me of the Max Bot API.
// @Tags        Bot
// @Produce     json
// @Param       refresh query bool false "Bypass the identity cache"
// @Success     200 {object} meResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     502 {object} response.Resp "Max API failure"
// @Failure     504 {object} response.Resp "Max API timeout"
// @Router      /api/v1/bot/me [GET]
func (h *handler) Me(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processGetReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Get(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Get: %v", err)
		h.reportError(c, err)
		return
	}

	response.OK(c, h.newMeResp(output))
}

// Commands godoc
// @Summary     Bot commands
// @Description Returns the commands advertised by the configured bot.
// @Tags        Bot
// @Produce     json
// @Param       refresh query bool false "Bypass the identity cache"
// @Success     200 {object} commandsResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     502 {object} response.Resp "Max API failure"
// @Failure     504 {object} response.Resp "Max API timeout"
// @Router      /api/v1/bot/commands [GET]
func (h *handler) Commands(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processGetReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.ListCommands(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ListCommands: %v", err)
		h.reportError(c, err)
		return
	}

	response.OK(c, h.newCommandsResp(output))
}

func (h *handler) reportError(c *gin.Context, err error) {
	if httpErr := h.mapError(err); httpErr != nil {
		response.Error(c, httpErr)
		return
	}
	response.InternalError(c)
}
