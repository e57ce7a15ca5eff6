package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/contractgpt/backend/middleware"
	"github.com/contractgpt/backend/model"
	"github.com/contractgpt/backend/service"
)

const recentContractsLimit = 10

type ContractHandler struct {
	workflow *service.Workflow
	store    *service.ContractStore
	db       *gorm.DB
}

func NewContractHandler(workflow *service.Workflow, store *service.ContractStore, db *gorm.DB) *ContractHandler {
	return &ContractHandler{
		workflow: workflow,
		store:    store,
		db:       db,
	}
}

// Generate runs the full generation workflow and returns the saved record
func (h *ContractHandler) Generate(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req model.ContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	// Requester fields default to the authenticated profile; edits win
	var user model.User
	if err := h.db.First(&user, userID).Error; err == nil {
		if req.Name == "" {
			req.Name = user.Name
		}
		if req.Company == "" {
			req.Company = user.Company
		}
		if req.Email == "" {
			req.Email = user.Email
		}
	}

	if req.Type != "" && !model.ValidContractType(req.Type) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown contract type"})
		return
	}

	record, err := h.workflow.Run(c.Request.Context(), userID, &req, nil)
	if err != nil {
		status, message := workflowStatus(err)
		c.JSON(status, gin.H{"error": message})
		return
	}

	c.JSON(http.StatusOK, record)
}

// workflowStatus maps a workflow failure onto an HTTP status and message
func workflowStatus(err error) (int, string) {
	switch {
	case errors.Is(err, model.ErrMissingField):
		return http.StatusBadRequest, "Please select a contract type and provide a description."
	case errors.Is(err, model.ErrDisallowedTopic):
		return http.StatusBadRequest, "Invalid input. This tool is designed to generate legal contracts only. Please provide appropriate contract details."
	case errors.Is(err, model.ErrInvalidRequest):
		return http.StatusBadRequest, model.ErrInvalidRequest.Error()
	case errors.Is(err, model.ErrInvalidOutputTopic):
		return http.StatusUnprocessableEntity, "Invalid input. This tool is designed to generate legal contracts only. Please provide appropriate contract details."
	case errors.Is(err, model.ErrQuotaExhausted):
		return http.StatusTooManyRequests, model.ErrQuotaExhausted.Error()
	}

	var genErr *model.GenerationError
	if errors.As(err, &genErr) {
		status := genErr.Status
		if status < 400 {
			status = http.StatusInternalServerError
		}
		return status, "An error occurred while generating the contract. Please try again."
	}

	var pErr *model.PersistenceError
	if errors.As(err, &pErr) {
		return http.StatusInternalServerError, "Failed to save or download the contract. Please try again."
	}

	return http.StatusInternalServerError, "An error occurred while generating the contract. Please try again."
}

// List returns the owner's most recent contracts
func (h *ContractHandler) List(c *gin.Context) {
	userID := middleware.GetUserID(c)

	records, err := h.store.ListByOwner(userID, recentContractsLimit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch contracts"})
		return
	}

	result := make([]gin.H, len(records))
	for i, record := range records {
		result[i] = gin.H{
			"id":         record.ID,
			"name":       record.Name,
			"type":       record.Type,
			"file_url":   record.FileURL,
			"created_at": record.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		}
	}

	c.JSON(http.StatusOK, gin.H{"contracts": result})
}

// Get returns a single contract with its full content
func (h *ContractHandler) Get(c *gin.Context) {
	userID := middleware.GetUserID(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid contract ID"})
		return
	}

	record, err := h.store.GetByOwner(userID, uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Contract not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch contract"})
		return
	}

	c.JSON(http.StatusOK, record)
}
