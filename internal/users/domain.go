package users

import "time"

// Role values an account can hold. RoleHouseOwner is the privileged role
// allowed to manage listings and enumerate accounts.
const (
	RoleStandard   = "standard"
	RoleHouseOwner = "houseOwner"
)

// Account represents a registered user. Email is the identity and never
// changes once the account exists.
type Account struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}
