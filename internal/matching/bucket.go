package matching

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"jobmarket-client/internal/models"
)

// SalaryBucket is a named inclusive salary range. Max is +Inf for "min+" keys.
type SalaryBucket struct {
	Key string
	Min float64
	Max float64
}

// Contains reports whether v lies in [Min, Max].
func (b SalaryBucket) Contains(v float64) bool {
	return v >= b.Min && v <= b.Max
}

// OpenEnded reports whether the bucket has no upper bound.
func (b SalaryBucket) OpenEnded() bool {
	return math.IsInf(b.Max, 1)
}

// DefaultBuckets are the salary filters offered on the job-listing screens.
var DefaultBuckets = []SalaryBucket{
	{Key: "0-15000", Min: 0, Max: 15000},
	{Key: "15000-25000", Min: 15000, Max: 25000},
	{Key: "25000-35000", Min: 25000, Max: 35000},
	{Key: "35000-45000", Min: 35000, Max: 45000},
	{Key: "45000+", Min: 45000, Max: math.Inf(1)},
}

// ParseBucket parses "min-max" or "min+". Both bounds must be non-negative
// numbers and min must not exceed max.
func ParseBucket(key string) (SalaryBucket, error) {
	k := strings.TrimSpace(key)
	if k == "" {
		return SalaryBucket{}, fmt.Errorf("empty salary bucket")
	}

	if strings.HasSuffix(k, "+") {
		min, err := parseBound(strings.TrimSuffix(k, "+"))
		if err != nil {
			return SalaryBucket{}, fmt.Errorf("salary bucket %q: %w", key, err)
		}
		return SalaryBucket{Key: k, Min: min, Max: math.Inf(1)}, nil
	}

	lo, hi, ok := strings.Cut(k, "-")
	if !ok {
		return SalaryBucket{}, fmt.Errorf("salary bucket %q: expected min-max or min+", key)
	}
	min, err := parseBound(lo)
	if err != nil {
		return SalaryBucket{}, fmt.Errorf("salary bucket %q: %w", key, err)
	}
	max, err := parseBound(hi)
	if err != nil {
		return SalaryBucket{}, fmt.Errorf("salary bucket %q: %w", key, err)
	}
	if min > max {
		return SalaryBucket{}, fmt.Errorf("salary bucket %q: min exceeds max", key)
	}
	return SalaryBucket{Key: k, Min: min, Max: max}, nil
}

// ParseBuckets parses configured keys, failing on the first bad one.
func ParseBuckets(keys []string) ([]SalaryBucket, error) {
	buckets := make([]SalaryBucket, 0, len(keys))
	for _, k := range keys {
		b, err := ParseBucket(k)
		if err != nil {
			return nil, err
		}
		buckets = append(buckets, b)
	}
	return buckets, nil
}

func parseBound(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid bound %q", s)
	}
	if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("bound %q out of range", s)
	}
	return v, nil
}

// BucketFor returns the key of the first bucket containing v.
func BucketFor(buckets []SalaryBucket, v float64) (string, bool) {
	for _, b := range buckets {
		if b.Contains(v) {
			return b.Key, true
		}
	}
	return "", false
}

// SalaryRangeFor is the smallest range covering every salary-bucket tag in
// c, or nil when none is selected. An open-ended bucket leaves To nil.
func SalaryRangeFor(c FilterCriteria) *models.SalaryRange {
	var (
		found bool
		lo    = math.Inf(1)
		hi    = math.Inf(-1)
	)
	for _, tag := range c.Tags {
		b, err := ParseBucket(tag)
		if err != nil {
			continue
		}
		found = true
		lo = math.Min(lo, b.Min)
		hi = math.Max(hi, b.Max)
	}
	if !found {
		return nil
	}

	r := &models.SalaryRange{From: models.Float(lo)}
	if !math.IsInf(hi, 1) {
		r.To = models.Float(hi)
	}
	return r
}
