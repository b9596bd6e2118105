package analytics

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Classifier maps a message to one canonical category.
type Classifier struct {
	taxonomy Taxonomy
}

func NewClassifier(taxonomy Taxonomy) *Classifier {
	return &Classifier{taxonomy: taxonomy}
}

// Classify applies label priority, then keyword heuristics, then the default.
func (c *Classifier) Classify(labels []string, subject, sender string) string {
	if category, ok := c.fromLabels(labels); ok {
		return category
	}

	// cases.Caser is stateful, one per call
	fold := cases.Lower(language.Russian)
	subject = fold.String(subject)
	sender = fold.String(sender)
	text := subject + " " + sender

	for _, rule := range c.taxonomy.KeywordRules {
		if containsAny(text, rule.SubjectWords) || containsAny(sender, rule.SenderFragment) {
			return rule.Category
		}
	}
	return CategoryOther
}

func (c *Classifier) fromLabels(labels []string) (string, bool) {
	prefix := c.taxonomy.LabelPrefix
	for _, label := range labels {
		if !strings.HasPrefix(label, prefix) {
			continue
		}
		key := strings.ToLower(strings.TrimPrefix(label, prefix))
		if category, ok := c.taxonomy.LabelCategories[key]; ok {
			return category, true
		}
		return CategoryOther, true
	}
	return "", false
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if w != "" && strings.Contains(s, w) {
			return true
		}
	}
	return false
}
