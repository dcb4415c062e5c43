package main

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"cashbook/ledger"
)

func setupServer(service *ledger.Service) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(otelgin.Middleware("cashbook"))

	h := &handlers{service: service}

	// Routes. Creation is the only operation allowed without a session
	// cookie, since it bootstraps one.
	r.POST("/transactions", h.CreateTransaction)
	r.GET("/transactions", RequireSession(), h.FindTransactions)
	// /transactions/summary is dispatched inside FindTransaction: the
	// router tree cannot mix a static segment with :id
	r.GET("/transactions/:id", RequireSession(), h.FindTransaction)

	return r
}
