package handlers

import (
	"errors"
	"strconv"
	"time"

	"illyrian-api/internal/models"
	"illyrian-api/internal/services"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	paymentService *services.PaymentService
}

func NewPaymentHandler() *PaymentHandler {
	return &PaymentHandler{
		paymentService: services.NewPaymentService(),
	}
}

type PaymentDTO struct {
	PaymentID            int       `json:"paymentId"`
	UserID               string    `json:"userId"`
	UserFullName         string    `json:"userFullName"`
	MembershipID         int       `json:"membershipId"`
	MembershipTypeName   string    `json:"membershipTypeName"`
	Amount               float64   `json:"amount"`
	PaymentDate          time.Time `json:"paymentDate"`
	PaymentMethod        *string   `json:"paymentMethod"`
	TransactionID        *string   `json:"transactionId"`
	Notes                *string   `json:"notes"`
	FormattedAmount      string    `json:"formattedAmount"`
	FormattedPaymentDate string    `json:"formattedPaymentDate"`
}

func paymentToDTO(p *models.Payment) PaymentDTO {
	dto := PaymentDTO{
		PaymentID:            p.ID,
		UserID:               p.UserID,
		MembershipID:         p.MembershipID,
		Amount:               p.Amount,
		PaymentDate:          p.PaymentDate,
		PaymentMethod:        p.PaymentMethod,
		TransactionID:        p.TransactionID,
		Notes:                p.Notes,
		FormattedAmount:      FormatPrice(p.Amount),
		FormattedPaymentDate: FormatDate(p.PaymentDate),
	}
	if p.User != nil {
		dto.UserFullName = FullName(p.User.Firstname, p.User.Lastname)
	}
	if p.Membership != nil && p.Membership.MembershipType != nil {
		dto.MembershipTypeName = p.Membership.MembershipType.Name
	}
	return dto
}

func (h *PaymentHandler) GetPayments(c *gin.Context) {
	payments, err := h.paymentService.GetPayments()
	if err != nil {
		c.Error(err)
		c.JSON(500, gin.H{"message": "An error occurred while fetching payments", "error": err.Error()})
		return
	}

	dtos := make([]PaymentDTO, 0, len(payments))
	for i := range payments {
		dtos = append(dtos, paymentToDTO(&payments[i]))
	}
	c.JSON(200, dtos)
}

func (h *PaymentHandler) GetPayment(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"message": "Invalid payment ID"})
		return
	}

	payment, err := h.paymentService.GetPayment(id)
	if err != nil {
		if errors.Is(err, services.ErrPaymentNotFound) {
			c.Status(404)
			return
		}
		c.Error(err)
		c.JSON(500, gin.H{"message": "An error occurred while fetching payment", "error": err.Error()})
		return
	}

	c.JSON(200, paymentToDTO(payment))
}

func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	var req PaymentDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"message": "Invalid request", "error": err.Error()})
		return
	}

	payment := &models.Payment{
		UserID:        req.UserID,
		MembershipID:  req.MembershipID,
		Amount:        req.Amount,
		PaymentDate:   req.PaymentDate,
		PaymentMethod: req.PaymentMethod,
		TransactionID: req.TransactionID,
		Notes:         req.Notes,
	}

	created, err := h.paymentService.CreatePayment(payment)
	if err != nil {
		c.Error(err)
		c.JSON(500, gin.H{"message": "An error occurred while creating payment", "error": err.Error()})
		return
	}

	c.JSON(201, paymentToDTO(created))
}

func (h *PaymentHandler) DeletePayment(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"message": "Invalid payment ID"})
		return
	}

	if err := h.paymentService.DeletePayment(id); err != nil {
		if errors.Is(err, services.ErrPaymentNotFound) {
			c.Status(404)
			return
		}
		c.Error(err)
		c.JSON(500, gin.H{"message": "An error occurred while deleting payment", "error": err.Error()})
		return
	}

	c.Status(204)
}
