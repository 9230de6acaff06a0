// internal/preorder/handler/preorder_handler.go
package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/slmn-lf/east-store-sub000/internal/middlewares"
	"github.com/slmn-lf/east-store-sub000/internal/preorder"
	"github.com/slmn-lf/east-store-sub000/internal/preorder/service"
	"github.com/slmn-lf/east-store-sub000/internal/product"

	"github.com/gin-gonic/gin"
)

type PreorderHandler struct {
	Service service.PreorderService
}

func NewPreorderHandler(svc service.PreorderService) *PreorderHandler {
	return &PreorderHandler{Service: svc}
}

// Create menangani POST /preorders (submission storefront).
func (h *PreorderHandler) Create(c *gin.Context) {
	var ok bool
	defer func() { middlewares.RecordOperation("preorder_create", ok) }()

	var req preorder.CreatePreorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "format request tidak valid", "details": err.Error()})
		return
	}

	created, err := h.Service.Create(req)
	if err != nil {
		switch {
		case errors.Is(err, preorder.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, product.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	ok = true
	c.JSON(http.StatusCreated, created)
}

// List menangani GET /admin/preorders
func (h *PreorderHandler) List(c *gin.Context) {
	preorders, err := h.Service.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "gagal memuat preorder"})
		return
	}
	c.JSON(http.StatusOK, preorders)
}

// Confirm menangani POST /admin/preorders/:id/confirm
func (h *PreorderHandler) Confirm(c *gin.Context) {
	var ok bool
	defer func() { middlewares.RecordOperation("preorder_confirm", ok) }()

	id, valid := parseID(c)
	if !valid {
		return
	}

	confirmed, err := h.Service.Confirm(id)
	if err != nil {
		switch {
		case errors.Is(err, preorder.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, preorder.ErrAlreadyConfirmed):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	ok = true
	c.JSON(http.StatusOK, confirmed)
}

// Delete menangani DELETE /admin/preorders/:id
func (h *PreorderHandler) Delete(c *gin.Context) {
	var ok bool
	defer func() { middlewares.RecordOperation("preorder_delete", ok) }()

	id, valid := parseID(c)
	if !valid {
		return
	}

	if err := h.Service.Delete(id); err != nil {
		if errors.Is(err, preorder.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ok = true
	c.Status(http.StatusNoContent)
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID tidak valid"})
		return 0, false
	}
	return uint(id), true
}
