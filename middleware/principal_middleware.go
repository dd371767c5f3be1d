package middleware

import (
	authutils "ppalink-backend/lib/utils/auth-utils"
	"ppalink-backend/models"
	apimodels "ppalink-backend/models/api"

	"github.com/gofiber/fiber/v2"
)

func GetUserID(ctx *fiber.Ctx) string {
	claims := authutils.GetClaims(ctx)
	if sub, exist := claims["sub"]; exist {
		if v, ok := sub.(string); ok {
			return v
		}
	}
	return ""
}

// GetAgencyID возвращает агентство из токена, пусто для кандидатов
func GetAgencyID(ctx *fiber.Ctx) string {
	claims := authutils.GetClaims(ctx)
	if agency, exist := claims["agency"]; exist {
		if v, ok := agency.(string); ok {
			return v
		}
	}
	return ""
}

// GetCandidateID возвращает профиль кандидата из токена, пусто для агентств
func GetCandidateID(ctx *fiber.Ctx) string {
	claims := authutils.GetClaims(ctx)
	if candidate, exist := claims["candidate"]; exist {
		if v, ok := candidate.(string); ok {
			return v
		}
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

func AgencyRequired() fiber.Handler {
	return func(ctx *fiber.Ctx) (err error) {
		if !GetUserRole(ctx).IsAgency() || GetAgencyID(ctx) == "" {
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("операция доступна только агентству"))
		}
		return ctx.Next()
	}
}

func CandidateRequired() fiber.Handler {
	return func(ctx *fiber.Ctx) (err error) {
		if GetUserRole(ctx) != models.UserRoleCandidate || GetCandidateID(ctx) == "" {
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("операция доступна только кандидату"))
		}
		return ctx.Next()
	}
}

func AgencyOwnerRequired() fiber.Handler {
	return func(ctx *fiber.Ctx) (err error) {
		if GetUserRole(ctx) != models.UserRoleAgencyOwner {
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("операция доступна только владельцу агентства"))
		}
		return ctx.Next()
	}
}
