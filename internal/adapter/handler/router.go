package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func NewRouter(h *TicketHandler, logger *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestLogger(logger))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := r.Group("/api/v1")
	{
		tickets := v1.Group("/tickets")
		{
			tickets.POST("", h.IssueTicket)
			tickets.POST("/check-in", h.CheckIn)
			tickets.GET("/:id", h.GetTicket)
			tickets.POST("/:id/cancel", h.CancelTicket)
		}

		events := v1.Group("/events/:id")
		{
			events.GET("/tickets", h.ListEventTickets)
			events.GET("/check-in-stats", h.GetCheckInStats)
			events.GET("/participants", h.ListParticipants)
			events.POST("/participants/refresh", h.RefreshParticipants)
		}
	}

	return r
}
