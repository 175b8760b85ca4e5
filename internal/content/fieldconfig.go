package content

// FieldRule configures sanitization for one editable field.
type FieldRule struct {
	MaxLength int
	IsURL     bool
}

// Per-section sanitization tables, keyed by the JSON field name used on
// the wire. A table test keeps these aligned with the model structs.
var (
	HeroFieldRules = map[string]FieldRule{
		"tag":             {MaxLength: 500},
		"titleLine1":      {MaxLength: 500},
		"titleLine2":      {MaxLength: 500},
		"description":     {MaxLength: 5000},
		"buttonPrimary":   {MaxLength: 500},
		"buttonSecondary": {MaxLength: 500},
	}

	SolutionFieldRules = map[string]FieldRule{
		"title":       {MaxLength: 500},
		"subtitle":    {MaxLength: 500},
		"description": {MaxLength: 2000},
		"detailTitle": {MaxLength: 500},
		"detailText":  {MaxLength: 10000},
		"image":       {MaxLength: 0, IsURL: true},
		"iconName":    {MaxLength: 500},
	}

	AboutFieldRules = map[string]FieldRule{
		"tag":                 {MaxLength: 500},
		"titleLine1":          {MaxLength: 500},
		"titleLine2":          {MaxLength: 500},
		"paragraph1":          {MaxLength: 5000},
		"paragraph2":          {MaxLength: 5000},
		"paragraph3":          {MaxLength: 5000},
		"feature1Title":       {MaxLength: 500},
		"feature1Description": {MaxLength: 500},
		"feature2Title":       {MaxLength: 500},
		"feature2Description": {MaxLength: 500},
		"imageUrl":            {MaxLength: 2000, IsURL: true},
		"imageCaption":        {MaxLength: 500},
		"imageSubcaption":     {MaxLength: 500},
	}

	PartnersFieldRules = map[string]FieldRule{
		"title":               {MaxLength: 500},
		"subtitle":            {MaxLength: 500},
		"description":         {MaxLength: 2000},
		"feature1Title":       {MaxLength: 500},
		"feature1Description": {MaxLength: 2000},
		"feature2Title":       {MaxLength: 500},
		"feature2Description": {MaxLength: 3000},
		"feature3Title":       {MaxLength: 500},
		"feature3Description": {MaxLength: 3000},
	}

	ContactFieldRules = map[string]FieldRule{
		"title":             {MaxLength: 500},
		"introText":         {MaxLength: 2000},
		"addressStreet":     {MaxLength: 500},
		"addressPostalCode": {MaxLength: 500},
		"addressCity":       {MaxLength: 500},
		"addressNote":       {MaxLength: 500},
		"email":             {MaxLength: 500},
		"phone":             {MaxLength: 500},
		"formTitle":         {MaxLength: 500},
		"buttonText":        {MaxLength: 500},
	}
)

// ApplyRule sanitizes value by the given rule. URL fields keep the raw
// value when the whitelist rejects it so a half-typed URL is not wiped
// while the administrator is still editing; the whitelist is re-applied
// on render by the frontend.
func ApplyRule(rule FieldRule, value string) string {
	if rule.IsURL {
		if cleaned := SanitizeURL(value); cleaned != "" {
			return cleaned
		}
		return value
	}
	return SanitizeText(value, rule.MaxLength)
}
