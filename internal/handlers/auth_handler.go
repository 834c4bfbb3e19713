package handlers

import (
	"errors"
	"log"
	"net/http"

	"elearning-service/internal/models"
	"elearning-service/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	Service *service.VerificationService
}

func NewAuthHandler(s *service.VerificationService) *AuthHandler {
	return &AuthHandler{Service: s}
}

func (h *AuthHandler) RequestVerification(c *gin.Context) {
	var payload models.EmailRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.Service.RequestVerification(c.Request.Context(), payload.Email)
	switch {
	case errors.Is(err, service.ErrMailNotConfigured):
		log.Println("GMAIL_USER or GMAIL_PASS is not configured")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Konfigurasi email belum lengkap"})
	case errors.Is(err, service.ErrMailDelivery):
		log.Printf("Failed to send verification email: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal mengirim email verifikasi"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

func (h *AuthHandler) VerifyCode(c *gin.Context) {
	var payload models.EmailVerifyRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.Service.VerifyCode(c.Request.Context(), payload.Email, payload.Code)
	switch {
	case errors.Is(err, service.ErrInvalidCode):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Kode verifikasi tidak valid"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusOK, gin.H{"valid": true})
	}
}
