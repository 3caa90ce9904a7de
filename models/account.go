package models

// Role tags the three kinds of users instead of probing three
// structurally similar record types at login.
type Role string

const (
	RolePatient Role = "patient"
	RoleDoctor  Role = "doctor"
	RoleAdmin   Role = "admin"
)

// Account is the credential view shared by every role. Admins carry no
// registration workflow, so their RegistrationStatus is always approved.
type Account struct {
	Role               Role   `json:"role"`
	Username           string `json:"username"`
	PasswordHash       string `json:"-"`
	RegistrationStatus string `json:"registration_status"`
}
