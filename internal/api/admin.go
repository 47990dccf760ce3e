package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"lightsup/internal/calculator"
	"lightsup/internal/export"
	"lightsup/internal/storage"
)

// Quotes

func (s *Server) adminListQuotesHandler(c *gin.Context) {
	quotes, err := s.db.GetQuotes()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, quotes)
}

// adminGetQuoteHandler returns one quote with its calculator payload
// decoded for operator review.
func (s *Server) adminGetQuoteHandler(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	quote, err := s.db.GetQuote(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Quote not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	response := gin.H{"quote": quote}
	if quote.SystemDetails != "" {
		details, err := calculator.DecodeSystemDetails(quote.SystemDetails)
		if err != nil {
			// Keep serving the quote; the blob is shown raw instead.
			response["system_details_error"] = err.Error()
		} else {
			response["system_details"] = details
		}
	}

	c.JSON(http.StatusOK, response)
}

type quoteStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (s *Server) adminUpdateQuoteStatusHandler(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req quoteStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := s.db.UpdateQuoteStatus(id, req.Status); err != nil {
		switch {
		case errors.Is(err, storage.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Quote not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Status updated"})
}

func (s *Server) adminDeleteQuoteHandler(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := s.db.DeleteQuote(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Quote deleted"})
}

func (s *Server) adminExportQuotesCSVHandler(c *gin.Context) {
	quotes, err := s.db.GetQuotes()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	out, err := export.QuotesCSV(quotes)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	filename := fmt.Sprintf("quotes_export_%s.csv", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", out)
}

func (s *Server) adminExportQuotesPDFHandler(c *gin.Context) {
	quotes, err := s.db.GetQuotes()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	out, err := export.QuotesPDF(quotes, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	filename := fmt.Sprintf("quotes_export_%s.pdf", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, "application/pdf", out)
}

// Testimonials

func (s *Server) adminListTestimonialsHandler(c *gin.Context) {
	testimonials, err := s.db.GetTestimonials(false)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, testimonials)
}

type approvalRequest struct {
	Approved *bool `json:"approved" binding:"required"`
}

func (s *Server) adminSetTestimonialApprovalHandler(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req approvalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := s.db.SetTestimonialApproval(id, *req.Approved); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Testimonial not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Approval updated"})
}

func (s *Server) adminDeleteTestimonialHandler(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := s.db.DeleteTestimonial(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Testimonial deleted"})
}

// Blog

type blogPostRequest struct {
	Title     string `json:"title" binding:"required"`
	Excerpt   string `json:"excerpt"`
	Content   string `json:"content" binding:"required"`
	Author    string `json:"author"`
	ImageURL  string `json:"image_url"`
	Published bool   `json:"published"`
}

func (s *Server) adminListPostsHandler(c *gin.Context) {
	posts, err := s.db.GetBlogPosts(false)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, posts)
}

func (s *Server) adminCreatePostHandler(c *gin.Context) {
	var req blogPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	author := req.Author
	if author == "" {
		author = "Lightsup Team"
	}

	post := &storage.BlogPost{
		Title:     req.Title,
		Excerpt:   req.Excerpt,
		Content:   req.Content,
		Author:    author,
		ImageURL:  req.ImageURL,
		Published: req.Published,
	}
	if err := s.db.SaveBlogPost(post); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, post)
}

func (s *Server) adminUpdatePostHandler(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req blogPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
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

	post.Title = req.Title
	post.Excerpt = req.Excerpt
	post.Content = req.Content
	if req.Author != "" {
		post.Author = req.Author
	}
	post.ImageURL = req.ImageURL
	post.Published = req.Published

	if err := s.db.UpdateBlogPost(post); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, post)
}

func (s *Server) adminDeletePostHandler(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := s.db.DeleteBlogPost(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Post deleted"})
}

// Projects

type projectRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Capacity    string `json:"capacity"`
	ImageURL    string `json:"image_url"`
}

func (s *Server) adminCreateProjectHandler(c *gin.Context) {
	var req projectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	project := &storage.Project{
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		Capacity:    req.Capacity,
		ImageURL:    req.ImageURL,
	}
	if err := s.db.SaveProject(project); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, project)
}

func (s *Server) adminUpdateProjectHandler(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req projectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	project, err := s.db.GetProject(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	project.Title = req.Title
	project.Description = req.Description
	project.Location = req.Location
	project.Capacity = req.Capacity
	project.ImageURL = req.ImageURL

	if err := s.db.UpdateProject(project); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, project)
}

func (s *Server) adminDeleteProjectHandler(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := s.db.DeleteProject(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Project deleted"})
}

func (s *Server) adminExportProjectsCSVHandler(c *gin.Context) {
	projects, err := s.db.GetProjects()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	out, err := export.ProjectsCSV(projects)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	filename := fmt.Sprintf("projects_export_%s.csv", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", out)
}

func (s *Server) adminExportProjectsPDFHandler(c *gin.Context) {
	projects, err := s.db.GetProjects()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	out, err := export.ProjectsPDF(projects, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	filename := fmt.Sprintf("projects_export_%s.pdf", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, "application/pdf", out)
}
