package talkgroup

import (
	"fmt"
	"strconv"
	"strings"
)

// Bucket is the display color a talkgroup is rendered with.
type Bucket int

const (
	BucketDefault Bucket = iota
	BucketRed
	BucketGreen
	BucketBrown
	BucketOrange
	BucketWhite
	BucketYellow
	BucketCyan
	BucketMagenta
)

var bucketNames = map[Bucket]string{
	BucketDefault: "default",
	BucketRed:     "red",
	BucketGreen:   "green",
	BucketBrown:   "brown",
	BucketOrange:  "orange",
	BucketWhite:   "white",
	BucketYellow:  "yellow",
	BucketCyan:    "cyan",
	BucketMagenta: "magenta",
}

func (b Bucket) String() string {
	if name, ok := bucketNames[b]; ok {
		return name
	}
	return "default"
}

// ParseBucket maps a color name to its bucket.
func ParseBucket(name string) (Bucket, error) {
	want := strings.ToLower(strings.TrimSpace(name))
	for b, n := range bucketNames {
		if n == want {
			return b, nil
		}
	}
	return BucketDefault, fmt.Errorf("unknown color %q", name)
}

const maxRangeSize = 100000

// Rule assigns a set of talkgroup codes to a bucket.
type Rule struct {
	Bucket Bucket
	Codes  map[string]struct{}
}

// NewRule builds a rule from code patterns. A pattern is either a single code or
// an inclusive numeric range such as "290-298".
func NewRule(bucket Bucket, patterns ...string) (Rule, error) {
	codes := make(map[string]struct{}, len(patterns))
	for _, pattern := range patterns {
		pattern = strings.TrimSpace(pattern)
		if pattern == "" {
			continue
		}
		lo, hi, isRange := strings.Cut(pattern, "-")
		if !isRange {
			codes[pattern] = struct{}{}
			continue
		}
		start, err := strconv.Atoi(strings.TrimSpace(lo))
		if err != nil {
			return Rule{}, fmt.Errorf("parse range %q: %w", pattern, err)
		}
		end, err := strconv.Atoi(strings.TrimSpace(hi))
		if err != nil {
			return Rule{}, fmt.Errorf("parse range %q: %w", pattern, err)
		}
		if end < start {
			return Rule{}, fmt.Errorf("parse range %q: end before start", pattern)
		}
		if end-start > maxRangeSize {
			return Rule{}, fmt.Errorf("parse range %q: more than %d codes", pattern, maxRangeSize)
		}
		for n := start; n <= end; n++ {
			codes[strconv.Itoa(n)] = struct{}{}
		}
	}
	return Rule{Bucket: bucket, Codes: codes}, nil
}

func mustRule(bucket Bucket, patterns ...string) Rule {
	r, err := NewRule(bucket, patterns...)
	if err != nil {
		panic(err)
	}
	return r
}

// DefaultRules returns the built-in color table. Order is precedence.
func DefaultRules() []Rule {
	return []Rule{
		mustRule(BucketRed, "290-298"),
		mustRule(BucketGreen, "383", "384", "376", "375", "381"),
		mustRule(BucketBrown, "345", "346", "347", "352", "340", "341", "343", "342", "348", "349", "350"),
		mustRule(BucketOrange, "201-205"),
		mustRule(BucketWhite, "270", "272", "273"),
		mustRule(BucketYellow, "231", "232"),
		mustRule(BucketMagenta, "212-224"),
	}
}

// Classifier maps talkgroup codes to buckets by scanning its rules in order.
type Classifier struct {
	rules []Rule
}

// NewClassifier returns a classifier over rules. The first rule containing a
// code decides its bucket.
func NewClassifier(rules []Rule) *Classifier {
	dup := make([]Rule, len(rules))
	copy(dup, rules)
	return &Classifier{rules: dup}
}

// Classify returns the bucket for code, or BucketDefault when no rule matches.
func (c *Classifier) Classify(code string) Bucket {
	if c == nil || code == "" {
		return BucketDefault
	}
	for _, r := range c.rules {
		if _, ok := r.Codes[code]; ok {
			return r.Bucket
		}
	}
	return BucketDefault
}

var defaultClassifier = NewClassifier(DefaultRules())

// Classify uses the built-in color table.
func Classify(code string) Bucket {
	return defaultClassifier.Classify(code)
}
