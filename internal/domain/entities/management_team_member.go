package entities

import "time"

// ManagementTeamMember is a member of the organisation's leadership team
type ManagementTeamMember struct {
	ID          string    `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Title       string    `json:"title" db:"title"`
	Bio         string    `json:"bio,omitempty" db:"bio"`
	Image       string    `json:"image,omitempty" db:"image"`
	Credentials string    `json:"credentials,omitempty" db:"credentials"`
	Specialties []string  `json:"specialties" db:"specialties"`
	OrderIndex  int       `json:"order_index" db:"order_index"`
	IsActive    bool      `json:"is_active" db:"is_active"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// ManagementTeamMemberPatch carries a partial update; nil fields are left untouched
type ManagementTeamMemberPatch struct {
	Name        *string  `json:"name,omitempty"`
	Title       *string  `json:"title,omitempty"`
	Bio         *string  `json:"bio,omitempty"`
	Image       *string  `json:"image,omitempty"`
	Credentials *string  `json:"credentials,omitempty"`
	Specialties []string `json:"specialties,omitempty"`
	OrderIndex  *int     `json:"order_index,omitempty"`
	IsActive    *bool    `json:"is_active,omitempty"`
}
