package api

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"lightsup/internal/auth"
	"lightsup/internal/calculator"
	"lightsup/internal/notify"
	"lightsup/internal/storage"
)

// Calculator

type applianceRow struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Watts    float64 `json:"watts"`
	Quantity int     `json:"quantity"`
	Hours    float64 `json:"hours"`
}

func toEntries(rows []applianceRow) []calculator.ApplianceEntry {
	entries := make([]calculator.ApplianceEntry, 0, len(rows))
	for _, r := range rows {
		entries = append(entries, calculator.ApplianceEntry{
			ID:       r.ID,
			Name:     r.Name,
			Watts:    r.Watts,
			Quantity: r.Quantity,
			Hours:    r.Hours,
		})
	}
	return entries
}

func (s *Server) catalogHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"appliances": calculator.Catalog()})
}

type sizingRequest struct {
	Appliances []applianceRow `json:"appliances" binding:"required"`
}

func (s *Server) sizingHandler(c *gin.Context) {
	var req sizingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	worksheet := calculator.WorksheetFrom(toEntries(req.Appliances))
	results := calculator.Size(worksheet.Totals())

	c.JSON(http.StatusOK, gin.H{
		"appliances": worksheet.Entries(),
		"results":    results,
	})
}

type billEstimateRequest struct {
	MonthlyBill float64 `json:"monthly_bill" binding:"min=0"`
	SunHours    float64 `json:"sun_hours"`
}

func (s *Server) billEstimateHandler(c *gin.Context) {
	var req billEstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, s.rates.Estimate(req.MonthlyBill, req.SunHours))
}

// Quotes

type quoteRequest struct {
	Name       string         `json:"name" binding:"required"`
	Phone      string         `json:"phone" binding:"required"`
	Email      string         `json:"email" binding:"required,email"`
	Address    string         `json:"address"`
	Message    string         `json:"message"`
	Service    string         `json:"service"`
	Appliances []applianceRow `json:"appliances"`
}

func (s *Server) submitQuoteHandler(c *gin.Context) {
	var req quoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	quote := &storage.Quote{
		Name:    req.Name,
		Phone:   req.Phone,
		Email:   req.Email,
		Service: req.Service,
		Message: req.Message,
	}

	contact := calculator.Contact{
		Name:    req.Name,
		Phone:   req.Phone,
		Email:   req.Email,
		Address: req.Address,
		Message: req.Message,
	}

	var summary string
	if len(req.Appliances) > 0 {
		worksheet := calculator.WorksheetFrom(toEntries(req.Appliances))
		results := calculator.Size(worksheet.Totals())

		details, err := calculator.EncodeSystemDetails(worksheet.Entries(), results)
		if err != nil {
			// A corrupt payload must never reach storage.
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		quote.SystemDetails = details
		if quote.Service == "" {
			quote.Service = "Solar Calculator Order"
		}
		quote.Message = "Custom System Order:\n" + req.Message + "\n\nAddress: " + req.Address
		summary = calculator.Summary(contact, worksheet.Entries(), results)
	} else if quote.Service == "" {
		quote.Service = "General Inquiry"
	}

	if err := s.db.SaveQuote(quote); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// Notification is best effort: the lead is already stored, so a
	// broker failure is logged and the submitter still sees success.
	if s.notifier != nil {
		event := notify.LeadEvent{
			QuoteID:   quote.ID,
			Name:      quote.Name,
			Phone:     quote.Phone,
			Email:     quote.Email,
			Service:   quote.Service,
			Timestamp: time.Now(),
		}
		if err := s.notifier.PublishLead(event, summary); err != nil {
			log.Printf("Lead notification failed for quote %d: %v", quote.ID, err)
		}
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":     quote.ID,
		"status": quote.Status,
	})
}

// Testimonials

func (s *Server) listTestimonialsHandler(c *gin.Context) {
	testimonials, err := s.db.GetTestimonials(true)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, testimonials)
}

type testimonialRequest struct {
	Name    string `json:"name" binding:"required"`
	Role    string `json:"role"`
	Content string `json:"content" binding:"required"`
	Rating  int    `json:"rating" binding:"min=0,max=5"`
}

func (s *Server) submitTestimonialHandler(c *gin.Context) {
	var req testimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rating := req.Rating
	if rating == 0 {
		rating = 5
	}

	// Stored unapproved; hidden until an operator approves it.
	testimonial := &storage.Testimonial{
		Name:    req.Name,
		Role:    req.Role,
		Content: req.Content,
		Rating:  rating,
	}
	if err := s.db.SaveTestimonial(testimonial); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if s.notifier != nil {
		if err := s.notifier.PublishTestimonial(testimonial.ID, testimonial.Name); err != nil {
			log.Printf("Testimonial notification failed for %d: %v", testimonial.ID, err)
		}
	}

	c.JSON(http.StatusCreated, gin.H{"id": testimonial.ID})
}

// Blog

func (s *Server) listPostsHandler(c *gin.Context) {
	posts, err := s.db.GetBlogPosts(true)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, posts)
}

func (s *Server) getPostHandler(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	post, err := s.db.GetBlogPost(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !post.Published {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	c.JSON(http.StatusOK, post)
}

// Projects

func (s *Server) listProjectsHandler(c *gin.Context) {
	projects, err := s.db.GetProjects()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, projects)
}

// Auth

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (s *Server) loginHandler(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := s.auth.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrNotConfigured) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Admin login is not configured"})
			return
		}
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}
