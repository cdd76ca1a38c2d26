package controllers

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"tradeacademy/internal/models/request_models"
	"tradeacademy/internal/services"
	"tradeacademy/pkg/utils"
)

const signatureHeader = "x-nowpayments-sig"

type WebhookController struct {
	entitlementService services.EntitlementServiceInterface
	ipnSecret          string
}

func NewWebhookController(entitlementService services.EntitlementServiceInterface, ipnSecret string) *WebhookController {
	return &WebhookController{
		entitlementService: entitlementService,
		ipnSecret:          ipnSecret,
	}
}

// HandleNotification receives the payment provider callback. The signature
// check runs before any side effect; past that point business-level
// rejections still get a 200 so the provider does not retry them.
func (w *WebhookController) HandleNotification(c *gin.Context) {
	rawBody, err := io.ReadAll(c.Request.Body)
	if err != nil {
		log.Printf("Failed to read webhook body: %v", err)
		utils.RespondError(c, http.StatusBadRequest, "Failed to read request body")
		return
	}

	if !w.verifySignature(rawBody, c.GetHeader(signatureHeader)) {
		log.Printf("Webhook signature mismatch from %s", c.ClientIP())
		utils.RespondError(c, http.StatusForbidden, "Invalid webhook signature")
		return
	}

	var notification request_models.PaymentNotification
	if err := json.Unmarshal(rawBody, &notification); err != nil {
		log.Printf("Failed to parse webhook body: %v", err)
		utils.RespondError(c, http.StatusBadRequest, "Invalid webhook payload")
		return
	}

	if err := w.entitlementService.ProcessNotification(c.Request.Context(), notification); err != nil {
		// Storage failure: signal retry-worthy failure to the provider.
		utils.HandleServiceError(c, err)
		return
	}

	c.String(http.StatusOK, "Webhook processed")
}

func (w *WebhookController) verifySignature(body []byte, signature string) bool {
	if w.ipnSecret == "" || signature == "" {
		return false
	}

	mac := hmac.New(sha512.New, []byte(w.ipnSecret))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(signature))
}
