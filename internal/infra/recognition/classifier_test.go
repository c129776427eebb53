package recognition

import (
	"testing"

	"ecovis/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestHash(t *testing.T) {
	t.Parallel()

	assert.Equal(t, uint64(0), Hash(""))
	assert.Equal(t, uint64('a'), Hash("a"))
	assert.Equal(t, uint64('a'+'b'+'c'), Hash("abc"))
	// code points, not bytes
	assert.Equal(t, uint64(0x2082), Hash("₂"))
}

func TestRuleClassifier_Classify(t *testing.T) {
	t.Parallel()

	classifier := NewRuleClassifier()

	tests := []struct {
		name     string
		fileName string
		want     entity.WasteType
	}{
		{name: "empty name hashes to plastic", fileName: "", want: entity.WasteTypePlastic},
		{name: "hash 97 mod 7 is 6", fileName: "a", want: entity.WasteTypeGlass},
		{name: "hash 98 mod 7 is 0", fileName: "b", want: entity.WasteTypePlastic},
		{name: "hash 99 mod 7 is 1", fileName: "c", want: entity.WasteTypePaper},
		{name: "hash 100 mod 7 is 2", fileName: "d", want: entity.WasteTypeMetal},
		{name: "hash 101 mod 7 is 3", fileName: "e", want: entity.WasteTypeOrganic},
		{name: "hash 102 mod 7 is 4", fileName: "f", want: entity.WasteTypeElectronic},
		{name: "hash 103 mod 7 is 5", fileName: "g", want: entity.WasteTypeHazardous},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := classifier.Classify(tt.fileName)
			assert.Equal(t, tt.want, got.WasteType)
			assert.Equal(t, got, classifier.Classify(tt.fileName), "classification must be deterministic")
		})
	}
}

func TestRuleClassifier_Profile(t *testing.T) {
	t.Parallel()

	classifier := NewRuleClassifier()

	plastic := classifier.Profile(entity.WasteTypePlastic)
	assert.Equal(t, "~15g", plastic.WeightEstimate)
	assert.Equal(t, 92, plastic.RecyclabilityScore)

	glass := classifier.Profile(entity.WasteTypeGlass)
	assert.Equal(t, "~200g", glass.WeightEstimate)
	assert.Equal(t, 99, glass.RecyclabilityScore)

	textile := classifier.Profile(entity.WasteTypeTextile)
	assert.Equal(t, entity.WasteTypeTextile, textile.WasteType)
	assert.Equal(t, "~50g", textile.WeightEstimate)
	assert.Equal(t, 50, textile.RecyclabilityScore)
}
