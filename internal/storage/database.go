package storage

import (
	"errors"
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var ErrInvalidStatus = errors.New("invalid quote status")

type Database struct {
	db *gorm.DB
}

func NewDatabase(path string) (*Database, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Auto-migrate the schema
	if err := db.AutoMigrate(&Quote{}, &Testimonial{}, &BlogPost{}, &Project{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return &Database{db: db}, nil
}

// Quotes

func (d *Database) SaveQuote(q *Quote) error {
	if q.Status == "" {
		q.Status = QuoteStatusNew
	}
	return d.db.Create(q).Error
}

func (d *Database) GetQuotes() ([]Quote, error) {
	var quotes []Quote
	result := d.db.Order("created_at desc").Find(&quotes)
	if result.Error != nil {
		return nil, result.Error
	}
	return quotes, nil
}

func (d *Database) GetQuote(id uint) (*Quote, error) {
	var quote Quote
	result := d.db.First(&quote, id)
	if result.Error != nil {
		return nil, result.Error
	}
	return &quote, nil
}

func (d *Database) UpdateQuoteStatus(id uint, status string) error {
	switch status {
	case QuoteStatusNew, QuoteStatusContacted, QuoteStatusCompleted:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	result := d.db.Model(&Quote{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (d *Database) DeleteQuote(id uint) error {
	return d.db.Delete(&Quote{}, id).Error
}

// Testimonials

func (d *Database) SaveTestimonial(t *Testimonial) error {
	return d.db.Create(t).Error
}

func (d *Database) GetTestimonials(approvedOnly bool) ([]Testimonial, error) {
	var testimonials []Testimonial
	query := d.db.Order("created_at desc")
	if approvedOnly {
		query = query.Where("approved = ?", true)
	}
	result := query.Find(&testimonials)
	if result.Error != nil {
		return nil, result.Error
	}
	return testimonials, nil
}

func (d *Database) SetTestimonialApproval(id uint, approved bool) error {
	result := d.db.Model(&Testimonial{}).Where("id = ?", id).Update("approved", approved)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (d *Database) DeleteTestimonial(id uint) error {
	return d.db.Delete(&Testimonial{}, id).Error
}

// Blog posts

func (d *Database) SaveBlogPost(p *BlogPost) error {
	return d.db.Create(p).Error
}

func (d *Database) GetBlogPosts(publishedOnly bool) ([]BlogPost, error) {
	var posts []BlogPost
	query := d.db.Order("created_at desc")
	if publishedOnly {
		query = query.Where("published = ?", true)
	}
	result := query.Find(&posts)
	if result.Error != nil {
		return nil, result.Error
	}
	return posts, nil
}

func (d *Database) GetBlogPost(id uint) (*BlogPost, error) {
	var post BlogPost
	result := d.db.First(&post, id)
	if result.Error != nil {
		return nil, result.Error
	}
	return &post, nil
}

func (d *Database) UpdateBlogPost(p *BlogPost) error {
	return d.db.Save(p).Error
}

func (d *Database) DeleteBlogPost(id uint) error {
	return d.db.Delete(&BlogPost{}, id).Error
}

// Projects

func (d *Database) SaveProject(p *Project) error {
	return d.db.Create(p).Error
}

func (d *Database) GetProjects() ([]Project, error) {
	var projects []Project
	result := d.db.Order("created_at desc").Find(&projects)
	if result.Error != nil {
		return nil, result.Error
	}
	return projects, nil
}

func (d *Database) GetProject(id uint) (*Project, error) {
	var project Project
	result := d.db.First(&project, id)
	if result.Error != nil {
		return nil, result.Error
	}
	return &project, nil
}

func (d *Database) UpdateProject(p *Project) error {
	return d.db.Save(p).Error
}

func (d *Database) DeleteProject(id uint) error {
	return d.db.Delete(&Project{}, id).Error
}

// SeedBlogPosts inserts the starter articles on a fresh install. It is
// a no-op when any posts already exist.
func (d *Database) SeedBlogPosts() error {
	var count int64
	if err := d.db.Model(&BlogPost{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	posts := []BlogPost{
		{
			Title:     "The Future of Solar Energy in Nigeria",
			Excerpt:   "How renewable energy is transforming the power landscape in West Africa.",
			Content:   "Solar energy is rapidly becoming a viable alternative to traditional power sources in Nigeria. With the rising cost of fuel and the unreliability of the national grid, more households and businesses are turning to solar...",
			Author:    "Lightsup Team",
			Published: true,
		},
		{
			Title:     "5 Tips for Maintaining Your Solar Panels",
			Excerpt:   "Keep your system running at peak efficiency with these simple maintenance tips.",
			Content:   "Regular cleaning and inspection are key to ensuring your solar panels operate at maximum efficiency. Dust and debris can significantly reduce power output...",
			Author:    "Engineering Dept",
			Published: true,
		},
		{
			Title:     "Understanding Inverter Capacity",
			Excerpt:   "A guide to choosing the right inverter size for your home or business.",
			Content:   "Choosing the right inverter is crucial for a reliable solar power system. You need to consider your total load, surge power requirements, and battery bank voltage...",
			Author:    "Technical Lead",
			Published: true,
		},
	}

	return d.db.Create(&posts).Error
}

func (d *Database) Close() error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
