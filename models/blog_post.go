package models

import (
	"strconv"
	"time"

	"gorm.io/datatypes"
)

// Post lifecycle statuses
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
	StatusArchived  = "archived"
)

// ValidStatus reports whether s is one of the known post statuses
func ValidStatus(s string) bool {
	switch s {
	case StatusDraft, StatusPublished, StatusArchived:
		return true
	}
	return false
}

// BlogPost is the post shape served by the API, regardless of which store holds it
type BlogPost struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Content       string    `json:"content"`
	Excerpt       string    `json:"excerpt"`
	Author        string    `json:"author"`
	PublishedAt   time.Time `json:"publishedAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
	Tags          []string  `json:"tags"`
	Featured      bool      `json:"featured"`
	ReadingTime   int       `json:"readingTime"`
	FeaturedImage string    `json:"featuredImage,omitempty"`
	ImageAlt      string    `json:"imageAlt,omitempty"`
	Status        string    `json:"status,omitempty"`
	Slug          string    `json:"slug,omitempty"`
}

// Clone returns a copy that shares no tag slice with p
func (p BlogPost) Clone() BlogPost {
	tags := make([]string, len(p.Tags))
	copy(tags, p.Tags)
	p.Tags = tags
	return p
}

// BlogPostRecord is the blog_posts row as persisted in relational mode
type BlogPostRecord struct {
	ID               uint                        `gorm:"primaryKey;autoIncrement"`
	Slug             string                      `gorm:"type:varchar(255);uniqueIndex;not null"`
	Title            string                      `gorm:"type:varchar(500);not null"`
	Content          string                      `gorm:"type:text;not null"`
	Excerpt          string                      `gorm:"type:text;not null"`
	Author           string                      `gorm:"type:varchar(255);not null"`
	PublishedAt      time.Time                   `gorm:"not null;default:CURRENT_TIMESTAMP;index"`
	UpdatedAt        time.Time                   `gorm:"not null;default:CURRENT_TIMESTAMP;autoUpdateTime:false"`
	Tags             datatypes.JSONSlice[string] `gorm:"not null"`
	Featured         bool                        `gorm:"not null;default:false"`
	ReadingTime      int                         `gorm:"not null;default:0"`
	FeaturedImageURL *string                     `gorm:"type:text"`
	FeaturedImageAlt *string                     `gorm:"type:text"`
	Status           string                      `gorm:"type:varchar(50);not null;default:published"`
}

func (BlogPostRecord) TableName() string {
	return "blog_posts"
}

// ToBlogPost converts a row into the API shape
func (r BlogPostRecord) ToBlogPost() BlogPost {
	post := BlogPost{
		ID:          strconv.FormatUint(uint64(r.ID), 10),
		Title:       r.Title,
		Content:     r.Content,
		Excerpt:     r.Excerpt,
		Author:      r.Author,
		PublishedAt: r.PublishedAt.UTC(),
		UpdatedAt:   r.UpdatedAt.UTC(),
		Tags:        []string(r.Tags),
		Featured:    r.Featured,
		ReadingTime: r.ReadingTime,
		Status:      r.Status,
		Slug:        r.Slug,
	}
	if post.Tags == nil {
		post.Tags = []string{}
	}
	if r.FeaturedImageURL != nil {
		post.FeaturedImage = *r.FeaturedImageURL
	}
	if r.FeaturedImageAlt != nil {
		post.ImageAlt = *r.FeaturedImageAlt
	}
	return post
}

// CreateBlogPost holds the fields a client supplies when creating a post
type CreateBlogPost struct {
	Title            string   `json:"title"`
	Content          string   `json:"content"`
	Excerpt          string   `json:"excerpt"`
	Author           string   `json:"author"`
	Tags             []string `json:"tags"`
	Featured         bool     `json:"featured"`
	FeaturedImageURL string   `json:"featuredImageUrl,omitempty"`
	FeaturedImageAlt string   `json:"featuredImageAlt,omitempty"`
	Status           string   `json:"status,omitempty"`
}

// UpdateBlogPost holds a partial update. Nil fields are left untouched.
type UpdateBlogPost struct {
	Title            *string   `json:"title,omitempty"`
	Content          *string   `json:"content,omitempty"`
	Excerpt          *string   `json:"excerpt,omitempty"`
	Author           *string   `json:"author,omitempty"`
	Tags             *[]string `json:"tags,omitempty"`
	Featured         *bool     `json:"featured,omitempty"`
	FeaturedImageURL *string   `json:"featuredImageUrl,omitempty"`
	FeaturedImageAlt *string   `json:"featuredImageAlt,omitempty"`
	Status           *string   `json:"status,omitempty"`
}

// IsEmpty reports whether the update touches no field at all
func (u UpdateBlogPost) IsEmpty() bool {
	return u.Title == nil && u.Content == nil && u.Excerpt == nil && u.Author == nil &&
		u.Tags == nil && u.Featured == nil && u.FeaturedImageURL == nil &&
		u.FeaturedImageAlt == nil && u.Status == nil
}
