package http

import (
	"github.com/gin-gonic/gin"
)

// processGetReq binds the shared refresh query parameter.
func (h *handler) processGetReq(c *gin.Context) (getReq, error) {
	var req getReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}
