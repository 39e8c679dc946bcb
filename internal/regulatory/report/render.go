// Package report renders compliance report bodies. Rendering is a pure
// function of its inputs so two calls over the same rule set produce
// identical text.
package report

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"regledger/internal/regulatory/models"
)

const (
	dateLayout = "2006-01-02"

	// excerptLen bounds the description excerpt in per-rule breakdown lines.
	excerptLen = 120
)

// Applicable filters the active rule set down to rules whose effective date
// falls inside [start, end], inclusive on both ends.
func Applicable(rules []*models.RegulatoryRule, start, end time.Time) []*models.RegulatoryRule {
	var applicable []*models.RegulatoryRule
	for _, rule := range rules {
		if rule.EffectiveDate.Before(start) || rule.EffectiveDate.After(end) {
			continue
		}
		applicable = append(applicable, rule)
	}
	return applicable
}

// Render produces the report body: header, echoed parameters, executive
// summary, then one section per framework in order of first appearance.
// activeRules is every active rule for the jurisdiction; applicable is the
// date-window subset. Both views appear in the summary so readers get a
// point-in-time count alongside the period count.
func Render(activeRules, applicable []*models.RegulatoryRule, req models.ReportRequest, generatedAt time.Time) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n", strings.ToUpper(req.ReportName))
	fmt.Fprintf(&b, "Report Type: %s\n", req.ReportType)
	fmt.Fprintf(&b, "Jurisdiction: %s\n", req.Jurisdiction)
	fmt.Fprintf(&b, "Period: %s to %s\n", req.StartDate.Format(dateLayout), req.EndDate.Format(dateLayout))
	fmt.Fprintf(&b, "Generated: %s\n", generatedAt.UTC().Format(time.RFC3339))

	if len(req.Parameters) > 0 {
		b.WriteString("\nParameters:\n")
		for _, key := range sortedKeys(req.Parameters) {
			fmt.Fprintf(&b, "  %s: %s\n", key, req.Parameters[key])
		}
	}

	frameworks := frameworkOrder(applicable)

	b.WriteString("\nEXECUTIVE SUMMARY\n")
	fmt.Fprintf(&b, "Total Active Regulatory Rules: %d\n", len(activeRules))
	fmt.Fprintf(&b, "Applicable Rules for Period: %d\n", len(applicable))
	fmt.Fprintf(&b, "Regulatory Frameworks Covered: %d\n", len(frameworks))

	for _, framework := range frameworks {
		fmt.Fprintf(&b, "\n--- %s ---\n", framework)
		for _, rule := range applicable {
			if rule.Framework != framework {
				continue
			}
			fmt.Fprintf(&b, "[%s] %s\n", rule.RuleID, excerpt(rule.Description))
			if rule.Source != "" {
				fmt.Fprintf(&b, "    Source: %s\n", rule.Source)
			}
		}
	}

	return b.String()
}

// frameworkOrder lists distinct frameworks in order of first appearance in
// the applicable set, which itself is ordered by surrogate ID from the store.
func frameworkOrder(rules []*models.RegulatoryRule) []string {
	seen := make(map[string]bool)
	var order []string
	for _, rule := range rules {
		if !seen[rule.Framework] {
			seen[rule.Framework] = true
			order = append(order, rule.Framework)
		}
	}
	return order
}

func excerpt(description string) string {
	if len(description) <= excerptLen {
		return description
	}
	return description[:excerptLen] + "..."
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
