// middlewares/cors.go

package middlewares

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"churchheroes_backend/internals/configs"
)

// CorsMiddleware allows the public site and the admin panel origins. Extra
// origins come from CORS_ORIGINS (comma separated). Preflight is answered
// for the donation endpoints as well.
func CorsMiddleware() fiber.Handler {
	origins := []string{
		"http://localhost:5173",
		"https://christianheroes.church",
		"https://www.christianheroes.church",
		"https://admin.christianheroes.church",
	}
	if extra := configs.GetEnv("CORS_ORIGINS"); extra != "" {
		for _, o := range strings.Split(extra, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
	}

	return cors.New(cors.Config{
		AllowOrigins:     strings.Join(origins, ", "),
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
	})
}
