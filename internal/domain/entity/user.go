package entity

import "time"

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleCustomer Role = "customer"
	RoleUser     Role = "user"
)

type User struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name,omitempty"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	IsActive  bool      `json:"isActive"`
	Avatar    string    `json:"avatar,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func (u User) GetID() string { return u.ID }

type UserInput struct {
	Username string `json:"username" validate:"required,min=3"`
	Email    string `json:"email" validate:"required,email"`
	Role     Role   `json:"role" validate:"required,oneof=admin customer user"`
	IsActive *bool  `json:"isActive,omitempty"`
	Password string `json:"password,omitempty" validate:"omitempty,min=6"`
}

type UserFilters struct {
	Search string
	Role   string
	Status string
}
