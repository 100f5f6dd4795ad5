package ledger

import (
	"sort"

	"github.com/praiadomeio/app-ampm/internal/models"
)

// DefaultRecentActivity is the number of members listed as recently touched
const DefaultRecentActivity = 8

// TopOperators counts members by the name of the operator who registered them, most first.
// Members without a creator are ignored; ties are ordered by name.
func TopOperators(members []models.Member, limit int) []models.OperatorCount {
	counts := make(map[string]int)
	for _, m := range members {
		if m.CreatedByName != "" {
			counts[m.CreatedByName]++
		}
	}

	ops := make([]models.OperatorCount, 0, len(counts))
	for name, count := range counts {
		ops = append(ops, models.OperatorCount{Name: name, Count: count})
	}
	sort.Slice(ops, func(i, j int) bool {
		if ops[i].Count != ops[j].Count {
			return ops[i].Count > ops[j].Count
		}
		return ops[i].Name < ops[j].Name
	})

	if limit >= 0 && len(ops) > limit {
		ops = ops[:limit]
	}
	return ops
}

// RecentActivity returns the members most recently saved, newest first.
// A missing or unreadable updatedAt counts as the zero time.
func RecentActivity(members []models.Member, limit int) []models.Member {
	type stamped struct {
		member models.Member
		at     int64
		zero   bool
	}
	list := make([]stamped, 0, len(members))
	for _, m := range members {
		t := ParseTimestamp(m.UpdatedAt)
		list = append(list, stamped{member: m, at: t.Unix(), zero: t.IsZero()})
	}
	sort.SliceStable(list, func(i, j int) bool {
		if list[i].zero != list[j].zero {
			return !list[i].zero
		}
		return list[i].at > list[j].at
	})

	if limit >= 0 && len(list) > limit {
		list = list[:limit]
	}
	out := make([]models.Member, 0, len(list))
	for _, s := range list {
		out = append(out, s.member)
	}
	return out
}
