package models

// Difficulty levels, ordered from easiest to hardest
const (
	DifficultyBeginner     = "beginner"
	DifficultyIntermediate = "intermediate"
	DifficultyAdvanced     = "advanced"
)

// contains all valid difficulty levels (in lowercase)
var ValidDifficultyLevels = map[string]bool{
	DifficultyBeginner:     true,
	DifficultyIntermediate: true,
	DifficultyAdvanced:     true,
}

// contains all supported interview question categories (in lowercase)
var InterviewCategories = map[string]bool{
	"behavioral":            true,
	"technical":             true,
	"situational":           true,
	"strengths_weaknesses":  true,
	"career_goals":          true,
	"teamwork":              true,
	"leadership":            true,
	"problem_solving":       true,
}

// contains all supported career fields (in lowercase)
var CareerFields = map[string]bool{
	"software_engineering": true,
	"data_science":         true,
	"product_management":   true,
	"marketing":            true,
	"sales":                true,
	"finance":              true,
	"consulting":           true,
	"design":               true,
	"human_resources":      true,
	"operations":           true,
}

func DifficultyLevelsList() []string {
	return []string{DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced}
}

func InterviewCategoriesList() []string {
	return []string{
		"behavioral",
		"technical",
		"situational",
		"strengths_weaknesses",
		"career_goals",
		"teamwork",
		"leadership",
		"problem_solving",
	}
}

func CareerFieldsList() []string {
	return []string{
		"software_engineering",
		"data_science",
		"product_management",
		"marketing",
		"sales",
		"finance",
		"consulting",
		"design",
		"human_resources",
		"operations",
	}
}
