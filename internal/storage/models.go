package storage

import (
	"gorm.io/gorm"
)

// Quote lifecycle states, in the order an operator works them.
const (
	QuoteStatusNew       = "new"
	QuoteStatusContacted = "contacted"
	QuoteStatusCompleted = "completed"
)

// Quote is a submitted lead: contact details plus, for calculator
// orders, the serialized system configuration.
type Quote struct {
	gorm.Model
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Service string `json:"service"`
	Message string `json:"message"`

	// SystemDetails is the opaque calculator payload. Write-once; the
	// admin panel decodes it for review but never edits it.
	SystemDetails string `json:"system_details,omitempty"`

	Status string `gorm:"index;default:new" json:"status"`
}

// Testimonial is customer feedback. Public submissions arrive
// unapproved and stay hidden until an operator approves them.
type Testimonial struct {
	gorm.Model
	Name     string `json:"name"`
	Role     string `json:"role"` // e.g. "Homeowner, Lekki"
	Content  string `json:"content"`
	Rating   int    `json:"rating"`
	Approved bool   `gorm:"index" json:"approved"`
}

// BlogPost is an article on the marketing site.
type BlogPost struct {
	gorm.Model
	Title     string `json:"title"`
	Excerpt   string `json:"excerpt"`
	Content   string `json:"content"`
	Author    string `json:"author"`
	ImageURL  string `json:"image_url,omitempty"`
	Published bool   `gorm:"index" json:"published"`
}

// Project is a completed installation shown in the portfolio.
type Project struct {
	gorm.Model
	Title       string `json:"title"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Capacity    string `json:"capacity"` // e.g. "10kVA / 12 panels"
	ImageURL    string `json:"image_url,omitempty"`
}
