// file: internals/seeds/seed_admin.go
package seeds

import (
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"churchheroes_backend/internals/configs"
	model "churchheroes_backend/internals/features/users/model"
)

// SeedAdminUser creates the first admin account from ADMIN_EMAIL /
// ADMIN_PASSWORD / ADMIN_NAME. Idempotent: an existing email is left alone,
// so a changed env password never silently rotates credentials.
func SeedAdminUser(db *gorm.DB) {
	email := configs.GetEnv("ADMIN_EMAIL")
	password := configs.GetEnv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Println("ℹ️ ADMIN_EMAIL/ADMIN_PASSWORD not set, skipping admin seed")
		return
	}

	var existing model.UserModel
	if err := db.Where("user_email = ?", email).First(&existing).Error; err == nil {
		log.Printf("ℹ️ admin '%s' already exists, skipping", email)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("❌ failed to hash admin password: %v", err)
		return
	}

	admin := model.UserModel{
		UserName:     configs.GetEnv("ADMIN_NAME", "Administrator"),
		UserEmail:    email,
		UserPassword: string(hashed),
		UserRole:     "admin",
		UserIsActive: true,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Printf("❌ failed to seed admin '%s': %v", email, err)
		return
	}
	log.Printf("✅ seeded admin account '%s'", email)
}
