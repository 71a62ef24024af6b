package auth

// Staff roles
const (
	RoleAdmin = "ADMIN"
	RoleStaff = "STAFF"
)

// User is a staff account. Customers never authenticate — their session
// is the table's QR token.
type User struct {
	ID       string
	Name     string
	Email    string
	Password string
	Role     string
}
