package middleware

import (
	"github.com/gofiber/fiber/v2"
	authutils "hr-office-backend/lib/utils/auth-utils"
	"hr-office-backend/models"
	apimodels "hr-office-backend/models/api"
)

// GetUserID - идентификатор сотрудника из JWT. Авторизационные проверки
// опираются только на него, userId из тела/параметров запроса не используется.
func GetUserID(ctx *fiber.Ctx) string {
	claims := authutils.GetClaims(ctx)
	if sub, exist := claims["sub"]; exist {
		return sub.(string)
	}
	return ""
}

func GetUserRole(ctx *fiber.Ctx) models.UserRole {
	claims := authutils.GetClaims(ctx)
	if role, exist := claims["role"]; exist {
		if stringRole, ok := role.(string); ok && stringRole != "" {
			return models.UserRole(stringRole)
		}
	}
	return ""
}

// DRHRoleRequired - доступ только для DRH (админский перевод статусов,
// выплаты, возмещения).
func DRHRoleRequired() fiber.Handler {
	return func(ctx *fiber.Ctx) (err error) {
		if GetUserRole(ctx) != models.UserRoleDRH {
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("операция недоступна"))
		}
		return ctx.Next()
	}
}
