package services

import "github.com/shopspring/decimal"

// Keyword lookup outcomes.
const (
	OutcomeResolved = "resolved"
	OutcomeFallback = "fallback"
)

// KeywordHit counts the items one rule priced. The fallback entry has an
// empty Keyword.
type KeywordHit struct {
	Keyword string
	Price   decimal.Decimal
	Outcome string
	Count   int
}

// MatchReport shows how the keyword table priced a catalog.
type MatchReport struct {
	Hits  []KeywordHit
	Total int
}

// NewMatchReport tallies items per rule, in table order, followed by the
// items that fell back to defaultPrice. Rules that priced nothing are kept
// with a zero count.
func NewMatchReport(items []EquipmentItem, table KeywordPriceTable, defaultPrice decimal.Decimal) MatchReport {
	report := MatchReport{
		Hits:  make([]KeywordHit, 0, len(table)+1),
		Total: len(items),
	}
	index := make(map[string]int, len(table))
	for _, rule := range table {
		if _, dup := index[rule.Keyword]; dup {
			continue
		}
		index[rule.Keyword] = len(report.Hits)
		report.Hits = append(report.Hits, KeywordHit{
			Keyword: rule.Keyword,
			Price:   rule.Price,
			Outcome: OutcomeResolved,
		})
	}
	fallback := KeywordHit{Price: defaultPrice, Outcome: OutcomeFallback}

	for _, item := range items {
		if rule, ok := table.Match(item.Name); ok {
			report.Hits[index[rule.Keyword]].Count++
			continue
		}
		fallback.Count++
	}
	report.Hits = append(report.Hits, fallback)
	return report
}

// Fallbacks returns how many items received the default price.
func (r MatchReport) Fallbacks() int {
	for _, hit := range r.Hits {
		if hit.Outcome == OutcomeFallback {
			return hit.Count
		}
	}
	return 0
}
