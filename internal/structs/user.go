package structs

import "encoding/json"

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleCustomer Role = "customer"
)

// UnmarshalJSON folds every role the service might send into the closed set;
// anything that is not "admin" is an ordinary customer.
func (r *Role) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	*r = ParseRole(s)
	return nil
}

func ParseRole(s string) Role {
	if Role(s) == RoleAdmin {
		return RoleAdmin
	}
	return RoleCustomer
}

type User struct {
	ID               int64   `json:"id"`
	Email            string  `json:"email"`
	FullName         *string `json:"full_name"`
	Role             Role    `json:"role"`
	TelegramID       *int64  `json:"telegram_id"`
	TelegramUsername *string `json:"telegram_username"`
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// DisplayName is the full name when known, else the email.
func (u User) DisplayName() string {
	if u.FullName != nil && *u.FullName != "" {
		return *u.FullName
	}
	return u.Email
}

func (u User) TelegramLinked() bool {
	return u.TelegramID != nil && *u.TelegramID != 0
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type VerifyResponse struct {
	User User `json:"user"`
}
