package finance

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mamadbah2/agrobooks/internal/domain/models"
)

func TestOccupationSet(t *testing.T) {
	t.Run("always contains the uncategorized sentinel", func(t *testing.T) {
		set := NewOccupationSet()
		assert.True(t, set.Contains(models.OccupationUncategorized))
		assert.Equal(t, []string{models.OccupationUncategorized}, set.Names())
	})

	t.Run("keeps first-seen order and deduplicates", func(t *testing.T) {
		set := NewOccupationSet("Poultry", "Apiculture", "Poultry")
		set.Add("Fishery")
		set.Add("Apiculture")

		assert.Equal(t, []string{"Poultry", "Apiculture", models.OccupationUncategorized, "Fishery"}, set.Names())
		assert.Equal(t, 4, set.Len())
	})

	t.Run("ignores empty names", func(t *testing.T) {
		set := NewOccupationSet("")
		set.Add("")
		assert.Equal(t, 1, set.Len())
	})

	t.Run("returned names are a copy", func(t *testing.T) {
		set := NewOccupationSet("Poultry")
		names := set.Names()
		names[0] = "mutated"
		assert.Equal(t, "Poultry", set.Names()[0])
	})
}
