package authorization

// Context keys set by the auth middleware and read by handlers.
const (
	ContextKeyAccountID = "account_id"
	ContextKeyUsername  = "username"
	ContextKeySuperuser = "is_superuser"
)

// SuperCommandDepartment is the staff profile department that grants
// university-wide dashboard visibility.
const SuperCommandDepartment = "Super Command"

// HasGlobalVisibility reports whether a viewer sees tickets from every
// department: either a superuser account or a Super Command profile.
func HasGlobalVisibility(superuser bool, profileDepartment string) bool {
	return superuser || profileDepartment == SuperCommandDepartment
}
