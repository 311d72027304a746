package auth

import (
	"github.com/gofiber/fiber/v2"

	"simasjid_backend/internals/constants"
	helper "simasjid_backend/internals/helpers"
)

// RequireRoles membatasi akses ke role tertentu; dipasang setelah AuthMiddleware.
func RequireRoles(feature string, roles ...string) fiber.Handler {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(c *fiber.Ctx) error {
		role := helper.GetUserRoleFromToken(c)
		if _, ok := allowed[role]; !ok {
			return fiber.NewError(fiber.StatusForbidden, constants.RoleErrorPengurus(feature))
		}
		return c.Next()
	}
}

// AdminOnly shortcut untuk fitur yang hanya boleh diakses admin.
func AdminOnly(feature string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if helper.GetUserRoleFromToken(c) != constants.RoleAdmin {
			return fiber.NewError(fiber.StatusForbidden, constants.RoleErrorAdmin(feature))
		}
		return c.Next()
	}
}
