package content

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// The rule tables and the structural validator describe the same
// schema; this keeps them from drifting apart.
func TestFieldRulesMatchSchema(t *testing.T) {
	tests := []struct {
		name   string
		rules  map[string]FieldRule
		fields []string
	}{
		{"hero", HeroFieldRules, heroFields},
		{"solutions", SolutionFieldRules, solutionFields},
		{"about", AboutFieldRules, aboutFields},
		{"partners", PartnersFieldRules, partnersFields},
		{"contact", ContactFieldRules, contactFields},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, field := range tt.fields {
				if tt.name == "solutions" && field == "id" {
					// Ids are assigned by the server, never edited.
					continue
				}
				_, ok := tt.rules[field]
				assert.True(t, ok, "field %q has no rule", field)
			}
			for field := range tt.rules {
				assert.Contains(t, tt.fields, field, "rule %q has no schema field", field)
			}
		})
	}
}

func TestApplyRuleTruncates(t *testing.T) {
	rule := FieldRule{MaxLength: 10}
	long := strings.Repeat("a", 50)
	assert.Equal(t, strings.Repeat("a", 10), ApplyRule(rule, long))
}

func TestApplyRuleURLWhitelist(t *testing.T) {
	rule := FieldRule{MaxLength: 2000, IsURL: true}

	assert.Equal(t, "https://example.com/a.png", ApplyRule(rule, "https://example.com/a.png"))

	// A rejected value passes through untouched so in-progress typing
	// is not wiped out.
	assert.Equal(t, "exampl", ApplyRule(rule, "exampl"))
}
