// internal/content/content_handler.go
package content

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	Repo Repository
}

func NewHandler(repo Repository) *Handler {
	return &Handler{Repo: repo}
}

// Settings menangani GET /settings dan GET /admin/settings
func (h *Handler) Settings(c *gin.Context) {
	settings, err := h.Repo.AllSettings()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "gagal memuat konten"})
		return
	}
	c.JSON(http.StatusOK, settings)
}

// UpdateSetting menangani PUT /admin/settings/:key
func (h *Handler) UpdateSetting(c *gin.Context) {
	var req UpdateSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "value wajib diisi"})
		return
	}

	saved, err := h.Repo.UpsertSetting(c.Param("key"), req.Value)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "gagal menyimpan konten"})
		return
	}
	c.JSON(http.StatusOK, saved)
}

// SubmitContact menangani POST /contact (form kontak storefront).
func (h *Handler) SubmitContact(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "format request tidak valid", "details": err.Error()})
		return
	}

	saved, err := h.Repo.SaveMessage(&ContactMessage{
		ReferenceCode: uuid.NewString(),
		Name:          req.Name,
		Phone:         req.Phone,
		Message:       req.Message,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "gagal menyimpan pesan"})
		return
	}
	c.JSON(http.StatusCreated, saved)
}

// Messages menangani GET /admin/contact-messages
func (h *Handler) Messages(c *gin.Context) {
	messages, err := h.Repo.AllMessages()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "gagal memuat pesan"})
		return
	}
	c.JSON(http.StatusOK, messages)
}

// DeleteMessage menangani DELETE /admin/contact-messages/:id
func (h *Handler) DeleteMessage(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID tidak valid"})
		return
	}

	if err := h.Repo.DeleteMessage(uint(id)); err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
