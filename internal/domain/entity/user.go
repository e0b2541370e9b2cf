package entity

// User is a marketplace customer account as shown in the users list view.
type User struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Status string `json:"status"`
	Avatar string `json:"avatar,omitempty"`
}

// Agent is a delivery agent. Verification state drives the dashboard
// approved/pending split.
type Agent struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	IsVerified bool   `json:"is_verified"`
	Avatar     string `json:"avatar,omitempty"`
}

// Admin is a staff account allowed to sign in to the dashboard.
type Admin struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
}
