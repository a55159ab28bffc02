// file: internals/features/donations/service/webhook.go
package service

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"log"
	"time"

	"github.com/bytedance/sonic"
	"gorm.io/gorm"

	"churchheroes_backend/internals/features/donations/model"
)

// VerifyPaystackSignature checks the X-Paystack-Signature header: an
// HMAC-SHA512 of the raw body keyed with the secret key.
func VerifyPaystackSignature(secret string, body []byte, signature string) bool {
	if secret == "" || signature == "" {
		return false
	}
	mac := hmac.New(sha512.New, []byte(secret))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}

// HandlePaystackNotification processes a signature-verified Paystack event.
func HandlePaystackNotification(db *gorm.DB, body []byte) error {
	var event struct {
		Event string `json:"event"`
		Data  struct {
			Reference string `json:"reference"`
			Status    string `json:"status"`
		} `json:"data"`
	}
	if err := sonic.Unmarshal(body, &event); err != nil {
		return fmt.Errorf("invalid payload: %w", err)
	}
	if event.Data.Reference == "" {
		return fmt.Errorf("invalid payload: missing reference")
	}

	switch event.Event {
	case "charge.success":
		return ApplyDonationStatus(db, event.Data.Reference, model.DonationPaid)
	case "charge.failed":
		return ApplyDonationStatus(db, event.Data.Reference, model.DonationFailed)
	default:
		log.Println("[INFO] paystack event ignored:", event.Event)
		return nil
	}
}

// HandleMidtransNotification processes a Midtrans HTTP notification.
func HandleMidtransNotification(db *gorm.DB, body []byte) error {
	var note struct {
		OrderID           string `json:"order_id"`
		TransactionStatus string `json:"transaction_status"`
	}
	if err := sonic.Unmarshal(body, &note); err != nil {
		return fmt.Errorf("invalid payload: %w", err)
	}
	if note.OrderID == "" || note.TransactionStatus == "" {
		return fmt.Errorf("invalid payload")
	}

	status := MapMidtransStatus(note.TransactionStatus)
	if status == model.DonationPending {
		log.Println("[INFO] midtrans status ignored:", note.TransactionStatus)
		return nil
	}
	return ApplyDonationStatus(db, note.OrderID, status)
}

// ApplyDonationStatus moves a donation by reference. Paid is terminal: a
// later failed/abandoned notification never downgrades it.
func ApplyDonationStatus(db *gorm.DB, reference string, status model.DonationStatus) error {
	var donation model.DonationModel
	if err := db.Where("donation_reference = ?", reference).First(&donation).Error; err != nil {
		log.Println("[ERROR] donation not found for reference:", reference)
		return fmt.Errorf("donation with reference %s not found", reference)
	}

	if donation.DonationStatus == model.DonationPaid {
		return nil
	}
	if donation.DonationStatus == status {
		return nil
	}

	updates := map[string]interface{}{"donation_status": status}
	if status == model.DonationPaid {
		now := time.Now()
		updates["donation_paid_at"] = &now
	}
	if err := db.Model(&donation).Updates(updates).Error; err != nil {
		log.Println("[ERROR] failed to update donation status:", err)
		return err
	}
	return nil
}
