// Package scoring holds the fixed point table for award events.
// The table is consulted once, when a record is created; points are never recomputed afterwards.
package scoring

import "fmt"

// ActivityKind tags the action recorded in a user activity.
type ActivityKind string

const (
	KindWasteRecognition     ActivityKind = "waste_recognition"
	KindEmissionsCalculation ActivityKind = "emissions_calculation"
	KindForumPost            ActivityKind = "forum_post"
	KindForumComment         ActivityKind = "forum_comment"
)

var pointTable = map[ActivityKind]int{
	KindWasteRecognition:     15,
	KindEmissionsCalculation: 10,
	KindForumPost:            5,
	KindForumComment:         2,
}

// Points returns the fixed award for kind. Unknown kinds are worth 0.
func Points(kind ActivityKind) int {
	return pointTable[kind]
}

// Award is the score change and audit entry that accompany one record creation.
type Award struct {
	Kind        ActivityKind
	Points      int
	Description string
}

func newAward(kind ActivityKind, description string) Award {
	return Award{Kind: kind, Points: Points(kind), Description: description}
}

// ForWasteRecognition builds the award for logging a recognised waste item.
func ForWasteRecognition(wasteType string) Award {
	return newAward(KindWasteRecognition, fmt.Sprintf("Recognized %s waste", wasteType))
}

// ForEmissionsCalculation builds the award for logging an emissions estimate.
func ForEmissionsCalculation(vehicleMake, vehicleModel string) Award {
	return newAward(KindEmissionsCalculation, fmt.Sprintf("Calculated emissions for %s %s", vehicleMake, vehicleModel))
}

// ForForumPost builds the award for publishing a forum post.
func ForForumPost(title string) Award {
	return newAward(KindForumPost, "Created forum post: "+title)
}

// ForForumComment builds the award for commenting on a forum post.
func ForForumComment() Award {
	return newAward(KindForumComment, "Commented on a forum post")
}
