package matching

import (
	"strings"

	"jobmarket-client/internal/models"
)

// CriteriaFromPreference seeds the best-matched screen's criteria from a
// stored preference: its discrete fields become tags, its salary range selects
// every overlapping bucket and its first location becomes the location term.
func CriteriaFromPreference(pref models.JobPreference, buckets []SalaryBucket) FilterCriteria {
	var c FilterCriteria

	add := func(values ...string) {
		for _, v := range values {
			v = strings.TrimSpace(v)
			if v != "" && !hasTag(c.Tags, v) {
				c.Tags = append(c.Tags, v)
			}
		}
	}

	add(pref.JobType, pref.CareerLevel, pref.CandidateType)
	add(pref.Sectors...)

	if pref.Salary.From != nil || pref.Salary.To != nil {
		for _, b := range buckets {
			if overlaps(b, pref.Salary) {
				add(b.Key)
			}
		}
	}

	for _, loc := range pref.Locations {
		if term := firstNonEmpty(loc.City, loc.Province, loc.Country); term != "" {
			c.Location = term
			break
		}
	}

	return c
}

func overlaps(b SalaryBucket, r models.SalaryRange) bool {
	lo := 0.0
	if r.From != nil {
		lo = *r.From
	}
	if r.To != nil && *r.To < b.Min {
		return false
	}
	return lo <= b.Max
}

// Change reports which parts of the criteria moved between two states.
type Change struct {
	Salary   bool
	Location bool
	Tags     bool
	Search   bool
}

// Pushable reports whether the change must be written back to the stored preference.
func (c Change) Pushable() bool {
	return c.Salary || c.Location
}

// Diff compares two criteria. Tag and bucket comparisons ignore order and case.
func Diff(prev, next FilterCriteria) Change {
	return Change{
		Salary:   !sameSet(bucketTags(prev.Tags), bucketTags(next.Tags)),
		Location: !strings.EqualFold(strings.TrimSpace(prev.Location), strings.TrimSpace(next.Location)),
		Tags:     !sameSet(prev.Tags, next.Tags),
		Search:   strings.TrimSpace(prev.Search) != strings.TrimSpace(next.Search),
	}
}

// ApplyToPreference writes the parts of c flagged in ch onto a copy of pref.
// Salary becomes the union of the selected buckets. The location term
// replaces the first stored location only; clearing the term drops that
// entry. Fields ch does not flag are left as stored.
func ApplyToPreference(pref models.JobPreference, c FilterCriteria, ch Change) models.JobPreference {
	out := pref

	if ch.Salary {
		if r := SalaryRangeFor(c); r != nil {
			out.Salary = *r
		} else {
			out.Salary = models.SalaryRange{}
		}
	}

	if ch.Location {
		var rest []models.Location
		if len(pref.Locations) > 1 {
			rest = pref.Locations[1:]
		}
		out.Locations = nil
		if loc := strings.TrimSpace(c.Location); loc != "" {
			out.Locations = append(out.Locations, models.Location{City: loc})
		}
		out.Locations = append(out.Locations, rest...)
	}
	return out
}

func bucketTags(tags []string) []string {
	var out []string
	for _, t := range tags {
		if _, err := ParseBucket(t); err == nil {
			out = append(out, t)
		}
	}
	return out
}

func sameSet(a, b []string) bool {
	set := make(map[string]int, len(a))
	for _, v := range a {
		set[strings.ToLower(strings.TrimSpace(v))]++
	}
	for _, v := range b {
		k := strings.ToLower(strings.TrimSpace(v))
		if set[k] == 0 {
			return false
		}
		set[k]--
	}
	for _, n := range set {
		if n != 0 {
			return false
		}
	}
	return true
}

func hasTag(tags []string, v string) bool {
	for _, t := range tags {
		if strings.EqualFold(t, v) {
			return true
		}
	}
	return false
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}
