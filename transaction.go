package main

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"cashbook/ledger"
)

type handlers struct {
	service *ledger.Service
}

// POST /transactions
// Record a new signed movement
func (h *handlers) CreateTransaction(c *gin.Context) {
	started := time.Now()
	defer func() { log.Trace().Caller().Dur("duration_ms", time.Since(started)).Send() }()

	var input ledger.CreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	params, err := ledger.ValidateCreate(input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session := resolveSession(c)
	if _, err := h.service.Create(c.Request.Context(), session, params); err != nil {
		log.Error().Err(err).Msg("Create transaction failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
		return
	}

	c.Status(http.StatusCreated)
}

// GET /transactions
// Find all transactions owned by the caller's session
func (h *handlers) FindTransactions(c *gin.Context) {
	started := time.Now()
	defer func() { log.Trace().Caller().Dur("duration_ms", time.Since(started)).Send() }()

	transactions, err := h.service.List(c.Request.Context(), sessionFrom(c))
	if err != nil {
		log.Error().Err(err).Msg("List transactions failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": transactions})
}

// GET /transactions/:id
// Find one transaction within the caller's session
func (h *handlers) FindTransaction(c *gin.Context) {
	if c.Param("id") == "summary" {
		h.GetSummary(c)
		return
	}

	started := time.Now()
	defer func() { log.Trace().Caller().Dur("duration_ms", time.Since(started)).Send() }()

	transaction, err := h.service.Get(c.Request.Context(), sessionFrom(c), c.Param("id"))
	if err != nil {
		var verr *ledger.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error()})
			return
		}
		log.Error().Err(err).Msg("Get transaction failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
		return
	}
	if transaction == nil {
		c.JSON(http.StatusNotFound, gin.H{"data": nil})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": transaction})
}

// GET /transactions/summary
// Net balance of the caller's session
func (h *handlers) GetSummary(c *gin.Context) {
	started := time.Now()
	defer func() { log.Trace().Caller().Dur("duration_ms", time.Since(started)).Send() }()

	amount, err := h.service.Summary(c.Request.Context(), sessionFrom(c))
	if err != nil {
		log.Error().Err(err).Msg("Summary failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"amount": amount})
}
