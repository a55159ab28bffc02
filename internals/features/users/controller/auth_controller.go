// file: internals/features/users/controller/auth_controller.go
package controller

import (
	"errors"
	"time"

	validator "github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"churchheroes_backend/internals/configs"
	dto "churchheroes_backend/internals/features/users/dto"
	model "churchheroes_backend/internals/features/users/model"
	helper "churchheroes_backend/internals/helpers"
)

const tokenTTL = 24 * time.Hour

type AuthController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{
		DB:        db,
		Validator: validator.New(),
	}
}

// Login checks the credentials and issues the admin JWT. A wrong email and
// a wrong password return the same message, so the endpoint does not leak
// which accounts exist.
func (ctl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var user model.UserModel
	err := ctl.DB.WithContext(c.UserContext()).
		First(&user, "user_email = ?", req.UserEmail).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusUnauthorized, "Invalid email or password")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Login failed")
	}
	if !user.UserIsActive {
		return helper.Error(c, fiber.StatusForbidden, "Account is disabled")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.UserPassword), []byte(req.UserPassword)) != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Invalid email or password")
	}

	token, err := signToken(&user)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to issue token")
	}

	return helper.Success(c, "Login successful", dto.LoginResponse{
		Token:    token,
		UserName: user.UserName,
		UserRole: user.UserRole,
	})
}

func signToken(user *model.UserModel) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub":       user.UserID.String(),
		"user_name": user.UserName,
		"role":      user.UserRole,
		"iat":       now.Unix(),
		"exp":       now.Add(tokenTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(configs.JWTSecret))
}
