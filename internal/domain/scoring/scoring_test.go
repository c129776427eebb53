package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPoints(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind ActivityKind
		want int
	}{
		{kind: KindWasteRecognition, want: 15},
		{kind: KindEmissionsCalculation, want: 10},
		{kind: KindForumPost, want: 5},
		{kind: KindForumComment, want: 2},
		{kind: ActivityKind("profile_update"), want: 0},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Points(tt.kind))
		})
	}
}

func TestAwardBuilders(t *testing.T) {
	t.Parallel()

	waste := ForWasteRecognition("glass")
	assert.Equal(t, KindWasteRecognition, waste.Kind)
	assert.Equal(t, 15, waste.Points)
	assert.Equal(t, "Recognized glass waste", waste.Description)

	emissions := ForEmissionsCalculation("Toyota", "Prius")
	assert.Equal(t, 10, emissions.Points)
	assert.Equal(t, "Calculated emissions for Toyota Prius", emissions.Description)

	post := ForForumPost("Hello")
	assert.Equal(t, 5, post.Points)
	assert.Equal(t, "Created forum post: Hello", post.Description)

	comment := ForForumComment()
	assert.Equal(t, 2, comment.Points)
	assert.Equal(t, "Commented on a forum post", comment.Description)
}
