package auth

// Roles. Every fresh account is a student; admins curate the menu and
// can fire test notifications.
const (
	RoleStudent = "STUDENT"
	RoleAdmin   = "ADMIN"
)

// User is the domain entity.
type User struct {
	ID       string
	Name     string
	Email    string
	Password string
	Role     string
}
