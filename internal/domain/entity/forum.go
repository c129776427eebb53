package entity

import "time"

// ForumCategory groups forum posts.
type ForumCategory string

const (
	ForumCategoryRecycling      ForumCategory = "recycling"
	ForumCategoryClimateChange  ForumCategory = "climate_change"
	ForumCategorySustainability ForumCategory = "sustainability"
	ForumCategoryEvents         ForumCategory = "events"
	ForumCategoryQuestions      ForumCategory = "questions"
	ForumCategoryGeneral        ForumCategory = "general"
)

// ForumPost is a community post. CommentCount always equals the number of its comments.
type ForumPost struct {
	ID           int64         `json:"id"`
	UserID       int64         `json:"userId"`
	Title        string        `json:"title"`
	Content      string        `json:"content"`
	Category     ForumCategory `json:"category"`
	Likes        int           `json:"likes"`
	CommentCount int           `json:"commentCount"`
	PointsEarned int           `json:"pointsEarned"`
	CreatedAt    time.Time     `json:"createdAt"`
}

// ForumComment is a reply to a ForumPost.
type ForumComment struct {
	ID           int64     `json:"id"`
	PostID       int64     `json:"postId"`
	UserID       int64     `json:"userId"`
	Content      string    `json:"content"`
	PointsEarned int       `json:"pointsEarned"`
	CreatedAt    time.Time `json:"createdAt"`
}
