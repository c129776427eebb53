package model

import "time"

// ForumPostModel mirrors the 'forum_posts' table. Likes and CommentCount are only changed by atomic updates.
type ForumPostModel struct {
	ID           int64  `gorm:"primaryKey"`
	UserID       int64  `gorm:"not null;index"`
	Title        string `gorm:"type:varchar(200);not null"`
	Content      string `gorm:"type:text;not null"`
	Category     string `gorm:"type:varchar(30);not null"`
	Likes        int    `gorm:"not null;default:0"`
	CommentCount int    `gorm:"not null;default:0"`
	PointsEarned int    `gorm:"not null"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (ForumPostModel) TableName() string {
	return "forum_posts"
}

// ForumCommentModel mirrors the 'forum_comments' table.
type ForumCommentModel struct {
	ID           int64  `gorm:"primaryKey"`
	PostID       int64  `gorm:"not null;index"`
	UserID       int64  `gorm:"not null;index"`
	Content      string `gorm:"type:text;not null"`
	PointsEarned int    `gorm:"not null"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (ForumCommentModel) TableName() string {
	return "forum_comments"
}

// ProductModel mirrors the read-only 'products' table.
type ProductModel struct {
	ID          int64  `gorm:"primaryKey"`
	Name        string `gorm:"type:varchar(200);not null"`
	Description string `gorm:"type:text;not null"`
	Price       string `gorm:"type:varchar(20);not null"`
	ImageURL    string `gorm:"type:text;not null"`
	Category    string `gorm:"type:varchar(50);not null"`
	Tag         string `gorm:"type:varchar(50);not null"`
	Tagline     string `gorm:"type:text;not null"`
	InStock     bool   `gorm:"not null"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
