package entities

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// WeeklyHours maps a day name to a free-text opening range or "Closed".
// It is stored as a JSONB column.
type WeeklyHours map[string]string

// Value implements driver.Valuer
func (h WeeklyHours) Value() (driver.Value, error) {
	if h == nil {
		return "{}", nil
	}
	b, err := json.Marshal(h)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner
func (h *WeeklyHours) Scan(src interface{}) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*h = WeeklyHours{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into WeeklyHours", src)
	}

	out := WeeklyHours{}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &out); err != nil {
			return fmt.Errorf("invalid hours document: %w", err)
		}
	}
	*h = out
	return nil
}

// Location is a clinic site shown by the location finder pages
type Location struct {
	ID             string      `json:"id" db:"id"`
	Name           string      `json:"name" db:"name"`
	Slug           string      `json:"slug" db:"slug"`
	Address        string      `json:"address" db:"address"`
	Phone          string      `json:"phone" db:"phone"`
	Email          string      `json:"email" db:"email"`
	Hours          WeeklyHours `json:"hours" db:"hours"`
	Services       []string    `json:"services" db:"services"`
	Images         []string    `json:"images" db:"images"`
	HeroImage      string      `json:"hero_image" db:"hero_image"`
	Description    string      `json:"description" db:"description"`
	MapURL         string      `json:"map_url" db:"map_url"`
	SEOTitle       string      `json:"seo_title" db:"seo_title"`
	SEODescription string      `json:"seo_description" db:"seo_description"`
	IsActive       bool        `json:"is_active" db:"is_active"`
	DisplayOrder   int         `json:"display_order" db:"display_order"`
	CreatedAt      time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at" db:"updated_at"`
}

// LocationPatch carries a partial update; nil fields are left untouched
type LocationPatch struct {
	Name           *string     `json:"name,omitempty"`
	Slug           *string     `json:"slug,omitempty"`
	Address        *string     `json:"address,omitempty"`
	Phone          *string     `json:"phone,omitempty"`
	Email          *string     `json:"email,omitempty"`
	Hours          WeeklyHours `json:"hours,omitempty"`
	Services       []string    `json:"services,omitempty"`
	Images         []string    `json:"images,omitempty"`
	HeroImage      *string     `json:"hero_image,omitempty"`
	Description    *string     `json:"description,omitempty"`
	MapURL         *string     `json:"map_url,omitempty"`
	SEOTitle       *string     `json:"seo_title,omitempty"`
	SEODescription *string     `json:"seo_description,omitempty"`
	IsActive       *bool       `json:"is_active,omitempty"`
	DisplayOrder   *int        `json:"display_order,omitempty"`
}
