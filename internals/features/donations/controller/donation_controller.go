// file: internals/features/donations/controller/donation_controller.go
package controller

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	validator "github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"churchheroes_backend/internals/configs"
	dto "churchheroes_backend/internals/features/donations/dto"
	model "churchheroes_backend/internals/features/donations/model"
	"churchheroes_backend/internals/features/donations/service"
	helper "churchheroes_backend/internals/helpers"
)

type DonationController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewDonationController(db *gorm.DB) *DonationController {
	return &DonationController{
		DB:        db,
		Validator: validator.New(),
	}
}

func newDonationReference() string {
	b := make([]byte, 4)
	_, _ = rand.Read(b)
	return fmt.Sprintf("CHC-%d-%s", time.Now().UnixMilli(), hex.EncodeToString(b))
}

/* ==============================
   PUBLIC
============================== */

// InitiatePublic persists a pending donation, forwards to the gateway and
// returns its authorization URL. One call per attempt; nothing is retried
// or queued.
func (ctl *DonationController) InitiatePublic(c *fiber.Ctx) error {
	var req dto.InitiateDonationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	gateway, err := service.ActiveGateway()
	if err != nil {
		log.Println("[ERROR] donation initiate:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Payment configuration error")
	}

	currency := configs.GetEnv("DONATION_CURRENCY", "NGN")
	reference := newDonationReference()

	donation := model.DonationModel{
		DonationReference:   reference,
		DonationEmail:       req.DonationEmail,
		DonationAmount:      req.DonationAmount,
		DonationAmountMinor: req.DonationAmount * 100,
		DonationCurrency:    currency,
		DonationStatus:      model.DonationPending,
		DonationGateway:     gateway.Name(),
	}
	if len(req.DonationMetadata) > 0 {
		if buf, err := sonic.Marshal(req.DonationMetadata); err == nil {
			donation.DonationMetadata = datatypes.JSON(buf)
		}
	}
	if err := ctl.DB.WithContext(c.UserContext()).Create(&donation).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to record donation")
	}

	result, err := gateway.Initiate(c.UserContext(), service.InitiateParams{
		Email:       req.DonationEmail,
		Amount:      req.DonationAmount,
		Currency:    currency,
		Reference:   reference,
		CallbackURL: configs.DonationCallback,
		Metadata:    req.DonationMetadata,
	})
	if err != nil {
		log.Println("[ERROR] gateway initiate:", err)
		_ = service.ApplyDonationStatus(ctl.DB, reference, model.DonationFailed)
		if errors.Is(err, service.ErrGatewayNotConfigured) {
			return helper.Error(c, fiber.StatusInternalServerError, "Payment configuration error")
		}
		return helper.Error(c, fiber.StatusBadGateway, "Payment initialization failed")
	}

	return helper.Success(c, "Donation initiated", dto.InitiateDonationResponse{
		AuthorizationURL: result.AuthorizationURL,
		Reference:        result.Reference,
	})
}

// VerifyPublic confirms a donation with the gateway. The thank-you page
// calls this on return instead of trusting its own query string.
func (ctl *DonationController) VerifyPublic(c *fiber.Ctx) error {
	reference := strings.TrimSpace(c.Query("reference"))
	if reference == "" {
		return helper.Error(c, fiber.StatusBadRequest, "Missing reference")
	}

	db := ctl.DB.WithContext(c.UserContext())

	var donation model.DonationModel
	if err := db.First(&donation, "donation_reference = ?", reference).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Donation not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch donation")
	}

	if donation.DonationStatus == model.DonationPending {
		gateway, err := service.ActiveGateway()
		if err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Payment configuration error")
		}
		status, err := gateway.Verify(c.UserContext(), reference)
		if err != nil {
			log.Println("[ERROR] gateway verify:", err)
			return helper.Error(c, fiber.StatusBadGateway, "Payment verification failed")
		}
		if status != donation.DonationStatus {
			if err := service.ApplyDonationStatus(ctl.DB, reference, status); err != nil {
				return helper.Error(c, fiber.StatusInternalServerError, "Failed to update donation")
			}
			donation.DonationStatus = status
		}
	}

	return helper.Success(c, "Donation status", fiber.Map{
		"donation_reference": donation.DonationReference,
		"donation_status":    donation.DonationStatus,
		"donation_amount":    donation.DonationAmount,
		"donation_currency":  donation.DonationCurrency,
	})
}

/* ==============================
   WEBHOOK
============================== */

// Notification receives gateway pushes. Paystack events must carry a valid
// HMAC signature; Midtrans notifications are re-mapped by status. Always
// answers 200 on handled events so the gateway stops retrying.
func (ctl *DonationController) Notification(c *fiber.Ctx) error {
	body := c.Body()

	if sig := c.Get("X-Paystack-Signature"); sig != "" {
		if !service.VerifyPaystackSignature(configs.PaystackSecretKey, body, sig) {
			log.Println("[WARN] paystack webhook with bad signature")
			return helper.Error(c, fiber.StatusUnauthorized, "Invalid signature")
		}
		if err := service.HandlePaystackNotification(ctl.DB, body); err != nil {
			log.Println("[ERROR] paystack webhook:", err)
			return helper.Error(c, fiber.StatusBadRequest, "Invalid notification")
		}
		return helper.Success(c, "OK", nil)
	}

	if err := service.HandleMidtransNotification(ctl.DB, body); err != nil {
		log.Println("[ERROR] midtrans webhook:", err)
		return helper.Error(c, fiber.StatusBadRequest, "Invalid notification")
	}
	return helper.Success(c, "OK", nil)
}

/* ==============================
   ADMIN
============================== */

func (ctl *DonationController) List(c *fiber.Ctx) error {
	ctx := c.UserContext()
	p := helper.ParsePage(c, "desc", helper.AdminOpts)

	q := ctl.DB.WithContext(ctx).Model(&model.DonationModel{})
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		q = q.Where("donation_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch donations")
	}

	var donations []model.DonationModel
	if err := q.Order("donation_created_at " + strings.ToUpper(p.SortOrder)).
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&donations).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch donations")
	}

	return helper.Success(c, "Donations fetched", fiber.Map{
		"donations":  donations,
		"pagination": helper.BuildPageMeta(total, p),
	})
}
