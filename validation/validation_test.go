package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"symposium-portal/model"
)

func validRegistration() model.Registration {
	return model.Registration{
		Name:              "Asha R",
		College:           "ABC Poly",
		Department:        model.DeptCseAiml,
		Year:              "2",
		Phone:             "9876543210",
		Email:             "asha@x.com",
		EventType:         model.EventTechnical,
		EventName:         "CodeSprint",
		PaymentScreenshot: "https://cdn/x.png",
	}
}

func TestValidateRegistrationValid(t *testing.T) {
	result := ValidateRegistration(validRegistration())

	assert.True(t, result.IsValid)
	assert.Empty(t, result.Errors)
}

func TestValidateRegistrationFieldRules(t *testing.T) {
	tests := []struct {
		description string
		mutate      func(reg *model.Registration)
		wantErrors  int
	}{
		{
			description: "empty name",
			mutate:      func(reg *model.Registration) { reg.Name = "" },
			wantErrors:  1,
		},
		{
			description: "name of blanks",
			mutate:      func(reg *model.Registration) { reg.Name = "   " },
			wantErrors:  1,
		},
		{
			description: "single character college",
			mutate:      func(reg *model.Registration) { reg.College = "A" },
			wantErrors:  1,
		},
		{
			description: "unknown department",
			mutate:      func(reg *model.Registration) { reg.Department = "physics" },
			wantErrors:  1,
		},
		{
			description: "missing year",
			mutate:      func(reg *model.Registration) { reg.Year = "" },
			wantErrors:  1,
		},
		{
			description: "email without domain dot",
			mutate:      func(reg *model.Registration) { reg.Email = "asha@x" },
			wantErrors:  1,
		},
		{
			description: "unknown event type",
			mutate:      func(reg *model.Registration) { reg.EventType = "cultural" },
			wantErrors:  1,
		},
		{
			description: "no event chosen",
			mutate:      func(reg *model.Registration) { reg.EventName = "" },
			wantErrors:  1,
		},
		{
			description: "everything missing",
			mutate:      func(reg *model.Registration) { *reg = model.Registration{} },
			wantErrors:  8,
		},
	}

	for _, test := range tests {
		reg := validRegistration()
		test.mutate(&reg)

		result := ValidateRegistration(reg)

		assert.Falsef(t, result.IsValid, test.description)
		assert.Lenf(t, result.Errors, test.wantErrors, test.description)
	}
}

func TestValidateRegistrationPhone(t *testing.T) {
	tests := []struct {
		description string
		phone       string
		valid       bool
	}{
		{"plain 10 digits", "9876543210", true},
		{"13 digits", "9198765432109", true},
		{"dashed separators", "98-765-432-10", true},
		{"spaces and plus", "+91 98765 43210", true},
		{"9 digits", "987654321", false},
		{"14 digits", "98765432101234", false},
		{"empty", "", false},
		{"letters only", "call-me-maybe", false},
	}

	for _, test := range tests {
		reg := validRegistration()
		reg.Phone = test.phone

		result := ValidateRegistration(reg)

		assert.Equalf(t, test.valid, result.IsValid, test.description)
	}
}

func TestFormatPhoneNumber(t *testing.T) {
	assert.Equal(t, "98765 43210", FormatPhoneNumber("9876543210"))
	assert.Equal(t, "98765 43210", FormatPhoneNumber("98-76543210"))
	assert.Equal(t, "987654321", FormatPhoneNumber("987654321"))
}
