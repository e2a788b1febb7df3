package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/ventas-pro/pkg/jwt"
)

// Locals key para el UserID del vendedor autenticado en Fiber.
const LocalUserID = "user_id"

// OptionalAuthMiddleware valida el Bearer Token JWT si viene en la petición y
// deja el UserID en c.Locals. Nunca rechaza: sin token (o con token inválido)
// la petición sigue con identidad vacía y cada operación que requiera
// identidad falla de forma diferida con 401. Es el mismo contrato del contexto
// del servidor original.
func OptionalAuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Next()
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Next()
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Next()
		}
		userID, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			// Token inválido o expirado: contexto sin identidad, no rechazo inmediato.
			return c.Next()
		}
		c.Locals(LocalUserID, userID)
		return c.Next()
	}
}

// GetUserID devuelve el UserID del contexto (vacío si no hubo token válido).
func GetUserID(c *fiber.Ctx) string {
	v := c.Locals(LocalUserID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
