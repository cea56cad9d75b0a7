// Package category defines the closed set of topical categories and the ordered
// keyword rules mapping a title to one of them.
package category

import (
	"strings"

	"github.com/samber/lo"

	"github.com/hackynews/hackynews/pkg/domain"
)

// categories of the reference deployment, in display order
const (
	Programming     domain.Category = "Programming"
	AIML            domain.Category = "AI & ML"
	WebDevelopment  domain.Category = "Web Development"
	Startups        domain.Category = "Startups"
	Security        domain.Category = "Security"
	DevOps          domain.Category = "DevOps"
	MobileDev       domain.Category = "Mobile Dev"
	DesignUX        domain.Category = "Design & UX"
	Data            domain.Category = "Data"
	ScienceResearch domain.Category = "Science & Research"
	CryptoWeb3      domain.Category = "Crypto & Web3"
	TechCompanies   domain.Category = "Tech Companies"
	Hardware        domain.Category = "Hardware"
	JobsCareers     domain.Category = "Jobs & Careers"
	ShowHN          domain.Category = "Show HN"
	AskHN           domain.Category = "Ask HN"

	// Business is returned only by the fallback classifier, rules never produce it
	Business domain.Category = "Business"
)

// All is the ordered category enumeration
var All = []domain.Category{
	Programming, AIML, WebDevelopment, Startups, Security, DevOps, MobileDev, DesignUX,
	Data, ScienceResearch, CryptoWeb3, TechCompanies, Hardware, JobsCareers, ShowHN, AskHN,
}

// FallbackLabels is the candidate label set offered to the zero-shot fallback.
// It is a subset of All plus Business; frequent cases are already resolved by rules.
var FallbackLabels = []domain.Category{
	Programming, AIML, Startups, Security, Hardware, ScienceResearch, Business,
}

// Known reports whether c is a storable category: one of All, a fallback label or the sentinel
func Known(c domain.Category) bool {
	return c == domain.Uncategorized || lo.Contains(All, c) || lo.Contains(FallbackLabels, c)
}

// Parse maps a case-insensitive name to a known category
func Parse(name string) (domain.Category, bool) {
	name = strings.TrimSpace(name)
	for _, k := range append(append([]domain.Category{domain.Uncategorized}, All...), Business) {
		if strings.EqualFold(string(k), name) {
			return k, true
		}
	}
	return "", false
}

// Labels returns fallback candidate labels as strings
func Labels() []string {
	return lo.Map(FallbackLabels, func(c domain.Category, _ int) string { return string(c) })
}
