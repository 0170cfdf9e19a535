package habit

import (
	"fmt"
	"strings"
)

// Category groups habits for display and filtering.
type Category string

const (
	CategoryHealth       Category = "health"
	CategoryFitness      Category = "fitness"
	CategoryMindfulness  Category = "mindfulness"
	CategoryProductivity Category = "productivity"
	CategoryLearning     Category = "learning"
	CategorySocial       Category = "social"
	CategoryCreativity   Category = "creativity"
	CategoryFinance      Category = "finance"
)

// Categories lists all known categories in display order.
var Categories = []Category{
	CategoryHealth,
	CategoryFitness,
	CategoryMindfulness,
	CategoryProductivity,
	CategoryLearning,
	CategorySocial,
	CategoryCreativity,
	CategoryFinance,
}

func (c Category) IsValid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// ParseCategory parses user input into a Category.
func ParseCategory(input string) (Category, error) {
	c := Category(strings.TrimSpace(strings.ToLower(input)))
	if !c.IsValid() {
		return "", fmt.Errorf("invalid category: %q", input)
	}
	return c, nil
}

// CategoryInfo is display metadata for a category.
type CategoryInfo struct {
	Label string
	Icon  string
	Color string
}

var categoryInfo = map[Category]CategoryInfo{
	CategoryHealth:       {Label: "Health", Icon: "💚", Color: "#10b981"},
	CategoryFitness:      {Label: "Fitness", Icon: "💪", Color: "#f97316"},
	CategoryMindfulness:  {Label: "Mindfulness", Icon: "🧘", Color: "#a855f7"},
	CategoryProductivity: {Label: "Productivity", Icon: "⚡", Color: "#0ea5e9"},
	CategoryLearning:     {Label: "Learning", Icon: "📚", Color: "#f59e0b"},
	CategorySocial:       {Label: "Social", Icon: "👥", Color: "#ec4899"},
	CategoryCreativity:   {Label: "Creativity", Icon: "🎨", Color: "#d946ef"},
	CategoryFinance:      {Label: "Finance", Icon: "💰", Color: "#16a34a"},
}

// Info returns display metadata for the category. Unknown categories fall
// back to Productivity rather than failing.
func (c Category) Info() CategoryInfo {
	if info, ok := categoryInfo[c]; ok {
		return info
	}
	return categoryInfo[CategoryProductivity]
}
