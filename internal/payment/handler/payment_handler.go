// internal/payment/handler/payment_handler.go
package handler

import (
	"bytes"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/slmn-lf/east-store-sub000/internal/middlewares"
	"github.com/slmn-lf/east-store-sub000/internal/payment"
	"github.com/slmn-lf/east-store-sub000/internal/payment/service"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	Service service.PaymentService
}

func NewPaymentHandler(svc service.PaymentService) *PaymentHandler {
	return &PaymentHandler{Service: svc}
}

// List menangani GET /admin/payments?search=&status=
func (h *PaymentHandler) List(c *gin.Context) {
	filter := payment.Filter{
		Search: c.Query("search"),
		Status: c.Query("status"),
	}

	payments, summary, err := h.Service.List(filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "gagal memuat pembayaran"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"payments": payment.ToResponses(payments),
		"summary":  summary,
	})
}

// Apply menangani PUT /admin/payments/:id — replace absolut nilai
// terbayar (bukan penambahan).
func (h *PaymentHandler) Apply(c *gin.Context) {
	var ok bool
	defer func() { middlewares.RecordOperation("payment_update", ok) }()

	id, valid := parseID(c)
	if !valid {
		return
	}

	var req payment.ApplyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// field tidak dikirim atau bukan angka
		c.JSON(http.StatusBadRequest, gin.H{"error": "paid_amount_cents wajib diisi", "details": err.Error()})
		return
	}

	updated, err := h.Service.Apply(id, *req.PaidAmountCents)
	if err != nil {
		var rangeErr *payment.AmountRangeError
		switch {
		case errors.As(err, &rangeErr):
			c.JSON(http.StatusBadRequest, gin.H{"error": rangeErr.Error()})
		case errors.Is(err, payment.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	ok = true
	c.JSON(http.StatusOK, payment.ToResponse(*updated))
}

// Export menangani GET /admin/payments/export?search=&status= dan
// mengirim snapshot CSV sebagai unduhan.
func (h *PaymentHandler) Export(c *gin.Context) {
	filter := payment.Filter{
		Search: c.Query("search"),
		Status: c.Query("status"),
	}

	// render ke buffer dulu supaya kegagalan di tengah tidak
	// mengirim CSV setengah jadi
	var buf bytes.Buffer
	filename, err := h.Service.ExportCSV(&buf, filter, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "gagal membuat export CSV"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID tidak valid"})
		return 0, false
	}
	return uint(id), true
}
