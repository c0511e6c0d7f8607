package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	codeOK            = 0
	codeInvalidInput  = 40000
	codeInvalidToken  = 40001
	codeNotFound      = 40400
	codeInvalidState  = 40900
	codeTicketExpired = 41000
	codeInternal      = 50000
)

// Response is the envelope every endpoint answers with.
type Response struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Details string `json:"details,omitempty"`
}

func respondOK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Response{Code: codeOK, Message: "success", Data: data})
}

func respondCreated(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, Response{Code: codeOK, Message: "success", Data: data})
}

func respondError(c *gin.Context, httpStatus, code int, message string) {
	c.JSON(httpStatus, Response{Code: code, Message: message})
}

func respondErrorWithData(c *gin.Context, httpStatus, code int, message, details string, data any) {
	c.JSON(httpStatus, Response{Code: code, Message: message, Details: details, Data: data})
}
