package differ

import (
	"sort"
	"strings"

	"github.com/rs/zerolog"
)

// RowStatus labels a comparison key in the combined view.
type RowStatus string

const (
	StatusMatch RowStatus = "MATCH"
	StatusOnlyA RowStatus = "ONLY_IN_A"
	StatusOnlyB RowStatus = "ONLY_IN_B"
)

// Row is one entry of the combined comparison view.
type Row struct {
	Status   RowStatus
	Pathname string
	Source   string
}

// ComparisonResult partitions the union of both sides' comparison keys.
// Matches, OnlyA and OnlyB are pairwise disjoint and sorted shallow-first.
type ComparisonResult struct {
	Matches []string
	OnlyA   []string
	OnlyB   []string
	All     []Row
}

// TotalA returns the number of distinct keys on side A after filtering.
func (cr *ComparisonResult) TotalA() int {
	return len(cr.Matches) + len(cr.OnlyA)
}

// TotalB returns the number of distinct keys on side B after filtering.
func (cr *ComparisonResult) TotalB() int {
	return len(cr.Matches) + len(cr.OnlyB)
}

// Differ normalizes two raw URL lists into comparison keys and computes
// their set difference.
type Differ struct {
	opts   NormalizeOptions
	labelA string
	labelB string
	logger zerolog.Logger
}

// NewDiffer creates a new differ with the given normalization options and
// side labels.
func NewDiffer(opts NormalizeOptions, labelA, labelB string, logger zerolog.Logger) *Differ {
	return &Differ{
		opts:   opts,
		labelA: labelA,
		labelB: labelB,
		logger: logger.With().Str("component", "Differ").Logger(),
	}
}

// Compare builds the comparison key sets for both sides and partitions them
// into matches and side-exclusive keys. Raw URLs that fail to parse are
// skipped with a warning; media-file keys are dropped from both sides.
func (d *Differ) Compare(urlsA, urlsB []string) *ComparisonResult {
	keysA := d.buildKeySet(urlsA, d.labelA)
	keysB := d.buildKeySet(urlsB, d.labelB)

	result := &ComparisonResult{}

	for key := range keysA {
		if keysB[key] {
			result.Matches = append(result.Matches, key)
		} else {
			result.OnlyA = append(result.OnlyA, key)
		}
	}
	for key := range keysB {
		if !keysA[key] {
			result.OnlyB = append(result.OnlyB, key)
		}
	}

	sortKeys(result.Matches)
	sortKeys(result.OnlyA)
	sortKeys(result.OnlyB)

	result.All = d.buildCombinedRows(result)

	d.logger.Info().
		Int("total_a", result.TotalA()).
		Int("total_b", result.TotalB()).
		Int("matches", len(result.Matches)).
		Int("only_a", len(result.OnlyA)).
		Int("only_b", len(result.OnlyB)).
		Msg("Comparison completed")

	return result
}

// buildKeySet normalizes raw URLs into the side's comparison key set.
func (d *Differ) buildKeySet(rawURLs []string, label string) map[string]bool {
	keys := make(map[string]bool, len(rawURLs))
	skipped := 0

	for _, rawURL := range rawURLs {
		key, err := NormalizePath(rawURL, d.opts)
		if err != nil {
			skipped++
			d.logger.Warn().
				Err(err).
				Str("side", label).
				Str("url", rawURL).
				Msg("Skipping malformed URL")
			continue
		}
		if IsMediaPath(key) {
			continue
		}
		keys[key] = true
	}

	if skipped > 0 {
		d.logger.Warn().
			Str("side", label).
			Int("skipped", skipped).
			Msg("Malformed URLs were skipped")
	}

	return keys
}

// buildCombinedRows produces the combined labeled view covering every
// distinct key across both sides.
func (d *Differ) buildCombinedRows(result *ComparisonResult) []Row {
	rows := make([]Row, 0, len(result.Matches)+len(result.OnlyA)+len(result.OnlyB))

	for _, key := range result.Matches {
		rows = append(rows, Row{Status: StatusMatch, Pathname: key, Source: "both"})
	}
	for _, key := range result.OnlyA {
		rows = append(rows, Row{Status: StatusOnlyA, Pathname: key, Source: d.labelA})
	}
	for _, key := range result.OnlyB {
		rows = append(rows, Row{Status: StatusOnlyB, Pathname: key, Source: d.labelB})
	}

	return rows
}

// sortKeys orders keys shallow paths first, then lexicographically.
func sortKeys(keys []string) {
	sort.Slice(keys, func(i, j int) bool {
		depthI := strings.Count(keys[i], "/")
		depthJ := strings.Count(keys[j], "/")
		if depthI != depthJ {
			return depthI < depthJ
		}
		return keys[i] < keys[j]
	})
}
