package content

import (
	"testing"

	"timo-intelligence-be/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solutionById(t *testing.T, doc *model.ContentDocument, id string) *model.Solution {
	t.Helper()
	for i := range doc.Solutions {
		if doc.Solutions[i].Id == id {
			return &doc.Solutions[i]
		}
	}
	t.Fatalf("solution %q not found", id)
	return nil
}

func TestMigrateCurrentDefaultsUnchanged(t *testing.T) {
	migrated, changed := Migrate(model.DefaultContent(), model.DefaultContent())
	assert.False(t, changed)
	assert.Equal(t, model.DefaultContent(), migrated)
}

func TestMigrateRefreshesStaleSlotCopy(t *testing.T) {
	defaults := model.DefaultContent()
	loaded := model.DefaultContent()
	solutionById(t, loaded, "tender").Description = "oude beschrijving uit een vorige release"

	migrated, changed := Migrate(loaded, defaults)
	assert.True(t, changed)
	assert.Equal(t, solutionById(t, defaults, "tender").Description, solutionById(t, migrated, "tender").Description)

	// Input is never mutated.
	assert.Equal(t, "oude beschrijving uit een vorige release", solutionById(t, loaded, "tender").Description)
}

func TestMigrateLeavesNonCopyFieldsAlone(t *testing.T) {
	loaded := model.DefaultContent()
	solutionById(t, loaded, "fleet").Title = "Timo Fleet Pro"
	solutionById(t, loaded, "fleet").Image = "https://example.com/custom.png"

	migrated, changed := Migrate(loaded, model.DefaultContent())
	assert.False(t, changed)
	assert.Equal(t, "Timo Fleet Pro", solutionById(t, migrated, "fleet").Title)
	assert.Equal(t, "https://example.com/custom.png", solutionById(t, migrated, "fleet").Image)
}

func TestMigrateMatchesByTitleWhenIdMissing(t *testing.T) {
	defaults := model.DefaultContent()
	loaded := model.DefaultContent()
	sol := solutionById(t, loaded, "insights")
	sol.Id = "legacy-3"
	sol.DetailText = "verouderde detailtekst"

	migrated, changed := Migrate(loaded, defaults)
	assert.True(t, changed)

	legacy := solutionById(t, migrated, "legacy-3")
	assert.Equal(t, solutionById(t, defaults, "insights").DetailText, legacy.DetailText)
}

func TestMigrateRefreshesDriftedPartners(t *testing.T) {
	loaded := model.DefaultContent()
	loaded.Partners.Description = "aangepaste partnertekst"

	migrated, changed := Migrate(loaded, model.DefaultContent())
	assert.True(t, changed)
	assert.Equal(t, model.DefaultContent().Partners, migrated.Partners)
}

func TestMigrateIgnoresUnknownSolutions(t *testing.T) {
	loaded := model.DefaultContent()
	loaded.Solutions = append(loaded.Solutions, model.Solution{
		Id:          "solution-1700000000000",
		Title:       "Eigen oplossing",
		Subtitle:    "Sub",
		Description: "Iets heel anders",
		DetailTitle: "Detail",
		DetailText:  "Tekst",
		Image:       "https://example.com/x.png",
		IconName:    model.IconCpu,
	})

	migrated, changed := Migrate(loaded, model.DefaultContent())
	assert.False(t, changed)
	assert.Len(t, migrated.Solutions, len(loaded.Solutions))
}

func TestMigrateIdempotent(t *testing.T) {
	loaded := model.DefaultContent()
	solutionById(t, loaded, "vision").DetailTitle = "oud"
	loaded.Partners.Title = "oud"

	first, changed := Migrate(loaded, model.DefaultContent())
	require.True(t, changed)

	second, changedAgain := Migrate(first, model.DefaultContent())
	assert.False(t, changedAgain)
	assert.Equal(t, first, second)
}
