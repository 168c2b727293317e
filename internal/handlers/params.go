package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/salusbook/api-prenotazioni/internal/httperr"
)

func paramID(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid numeric id.")
		return 0, false
	}
	return uint(v), true
}
