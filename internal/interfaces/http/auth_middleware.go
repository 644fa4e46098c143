package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/MaxAPBusiness/Proyecto-Taller/internal/application/dto"
	"github.com/MaxAPBusiness/Proyecto-Taller/pkg/jwt"
)

// Locals keys para los datos del token en Fiber.
const (
	LocalUserID   = "user_id"
	LocalPersonID = "person_id"
	LocalClass    = "class"
)

// AuthMiddleware valida el Bearer Token JWT y extrae UserID, PersonID y Class
// a c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		userID, personID, class, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalUserID, userID)
		c.Locals(LocalPersonID, personID)
		c.Locals(LocalClass, class)
		return c.Next()
	}
}

// RequireClass exige que la clase del usuario esté entre las permitidas.
// Se usa después de AuthMiddleware.
func RequireClass(classes ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		class := GetClass(c)
		for _, allowed := range classes {
			if class == allowed {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "la clase del usuario no tiene acceso a este recurso"})
	}
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	v := c.Locals(LocalUserID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetPersonID devuelve el PersonID del contexto (después del middleware de auth).
func GetPersonID(c *fiber.Ctx) string {
	v := c.Locals(LocalPersonID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetClass devuelve la clase (rol) del contexto (después del middleware de auth).
func GetClass(c *fiber.Ctx) string {
	v := c.Locals(LocalClass)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
