package constants

import "fmt"

const (
	RoleAdmin     = "admin"
	RoleBendahara = "bendahara"
	RoleViewer    = "viewer"
)

// Template pesan error role
const (
	ErrOnlyAdminsCanAccess   = "❌ Hanya admin yang boleh mengakses fitur %s."
	ErrOnlyPengurusCanAccess = "❌ Hanya admin atau bendahara yang boleh mengakses fitur %s."
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorPengurus(feature string) string {
	return fmt.Sprintf(ErrOnlyPengurusCanAccess, feature)
}

var (
	AllRoles = []string{
		RoleAdmin,
		RoleBendahara,
		RoleViewer,
	}

	PengurusRoles = []string{
		RoleAdmin,
		RoleBendahara,
	}

	AdminOnly = []string{
		RoleAdmin,
	}
)
