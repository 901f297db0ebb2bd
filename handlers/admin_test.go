package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"symposium-portal/model"
)

func sampleRegistrations() []model.Registration {
	return []model.Registration{
		{Name: "Rajesh K", Email: "rajesh@x.com", Phone: "9876543210", EventName: "CodeSprint",
			Department: model.DeptCseAiml, EventType: model.EventTechnical, Year: "2"},
		{Name: "Asha R", Email: "asha@x.com", Phone: "9123456789", EventName: "Circuit Hunt",
			Department: model.DeptEeeEce, EventType: model.EventTechnical, Year: "3"},
		{Name: "Vikram", Email: "vikram@x.com", Phone: "9000000000", EventName: "RAJ Quiz",
			Department: model.DeptCivil, EventType: model.EventNonTechnical, Year: "2"},
		{Name: "Meena", Email: "meena.raj@x.com", Phone: "9111111111", EventName: "Paper Talk",
			Department: model.DeptMlt, EventType: model.EventPaperPresentation, Year: "1"},
	}
}

func TestFilterRegistrationsSearch(t *testing.T) {
	regs := sampleRegistrations()

	matched := FilterRegistrations(regs, "raj", "", "")

	// name, event name and email hits, any letter case
	assert.Len(t, matched, 3)
	for _, reg := range matched {
		assert.NotEqual(t, "Asha R", reg.Name)
	}

	matched = FilterRegistrations(regs, "RAJ", "", "")
	assert.Len(t, matched, 3)

	matched = FilterRegistrations(regs, "912345", "", "")
	assert.Len(t, matched, 1)
	assert.Equal(t, "Asha R", matched[0].Name)
}

func TestFilterRegistrationsExactFilters(t *testing.T) {
	regs := sampleRegistrations()

	matched := FilterRegistrations(regs, "", "cse_aiml", "")
	assert.Len(t, matched, 1)
	assert.Equal(t, "Rajesh K", matched[0].Name)

	matched = FilterRegistrations(regs, "", "", "technical")
	assert.Len(t, matched, 2)

	// search AND department AND event type
	matched = FilterRegistrations(regs, "raj", "civil", "non_technical")
	assert.Len(t, matched, 1)
	assert.Equal(t, "Vikram", matched[0].Name)

	matched = FilterRegistrations(regs, "raj", "civil", "technical")
	assert.Empty(t, matched)
}

func TestFilterRegistrationsNoCriteria(t *testing.T) {
	regs := sampleRegistrations()
	assert.Equal(t, regs, FilterRegistrations(regs, "", "", ""))
}

func TestRegistrationStats(t *testing.T) {
	stats := RegistrationStats(sampleRegistrations())

	assert.Equal(t, 4, stats.Total)
	assert.Equal(t, 1, stats.ByDepartment["cse_aiml"])
	assert.Equal(t, 1, stats.ByDepartment["mlt"])
	assert.Equal(t, 2, stats.ByEventType["technical"])
	assert.Equal(t, 1, stats.ByEventType["non_technical"])
	assert.Equal(t, 1, stats.ByEventType["paper_presentation"])
	assert.Equal(t, 2, stats.ByYear["2"])
	assert.Equal(t, 1, stats.ByYear["1"])
}

func TestRegistrationStatsEmpty(t *testing.T) {
	stats := RegistrationStats(nil)

	assert.Equal(t, 0, stats.Total)
	assert.Empty(t, stats.ByDepartment)
	assert.Empty(t, stats.ByEventType)
	assert.Empty(t, stats.ByYear)
}
