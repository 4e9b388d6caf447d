package layout

import (
	"github.com/tsawler/capgains/cluster"
	"github.com/tsawler/capgains/model"
)

// ColumnDef is a named horizontal band used to assign row tokens to a
// column. For one column set the bands are contiguous and non-overlapping
// except for a small symmetric trim at interior boundaries; the first and
// last columns extend past the cluster bounds by the edge margin.
type ColumnDef struct {
	Name    string
	Left    float64
	Right   float64
	Center  float64
	Section string // owning section name, or "" for the summary table
}

// ColumnOptions holds the column construction margins. The defaults are
// tuned for one statement family; revisit them per document template.
type ColumnOptions struct {
	// EdgeMargin extends the first column left and the last column right
	// past the raw cluster bounds, and caps the interior trim.
	EdgeMargin float64

	// OverhangMargin is how far a header token's center may sit past its
	// nearest cluster's right bound before the token is assigned to the
	// next column instead.
	OverhangMargin float64

	// ClusterPad pads the data-cluster extent when widening header-derived
	// column bounds to cover it.
	ClusterPad float64
}

// DefaultColumnOptions returns the margins the reference statement family
// was tuned with.
func DefaultColumnOptions() ColumnOptions {
	return ColumnOptions{
		EdgeMargin:     5.0,
		OverhangMargin: 5.0,
		ClusterPad:     3.0,
	}
}

// ColumnsFromClusters builds one column per data cluster, ordered left to
// right. Header tokens are assigned to the cluster with the nearest center,
// except that a token overhanging past the cluster's right bound by more
// than the overhang margin belongs to the next column when one exists.
// Column names are the joined assigned tokens, falling back to "Value" when
// no header token matched.
func ColumnsFromClusters(clusters []cluster.Cluster, headerWords []model.Word, section string, opts ColumnOptions) []ColumnDef {
	if len(clusters) == 0 {
		return nil
	}

	assigned := make([][]model.Word, len(clusters))
	for _, token := range headerWords {
		idx := nearestCluster(clusters, token.Center())
		if token.Center() > clusters[idx].MaxX1+opts.OverhangMargin && idx < len(clusters)-1 {
			idx++
		}
		assigned[idx] = append(assigned[idx], token)
	}

	columns := make([]ColumnDef, 0, len(clusters))
	for idx, c := range clusters {
		left := c.MinX0 - opts.EdgeMargin
		if idx > 0 {
			left = (clusters[idx-1].Center + c.Center) / 2
		}

		right := c.MaxX1 + opts.EdgeMargin
		if idx < len(clusters)-1 {
			right = (c.Center + clusters[idx+1].Center) / 2
		}

		left, right = trimInterior(left, right, idx, len(clusters), opts.EdgeMargin)

		name := model.JoinWords(model.SortByReading(assigned[idx]))
		if name == "" {
			name = "Value"
		}

		columns = append(columns, ColumnDef{
			Name:    name,
			Left:    left,
			Right:   right,
			Center:  c.Center,
			Section: section,
		})
	}

	return columns
}

// ColumnsFromHeaderGroups builds columns directly from pre-grouped header
// tokens, for pages where the headings are unambiguous. When data cluster
// bounds are supplied, each column is widened so the data cluster never
// extends past the column band: data wins on extent.
func ColumnsFromHeaderGroups(groups []cluster.Group, section string, clusterBounds []Span, opts ColumnOptions) []ColumnDef {
	if len(groups) == 0 {
		return nil
	}

	columns := make([]ColumnDef, 0, len(groups))
	for idx, g := range groups {
		left := g.MinX - opts.EdgeMargin
		if idx > 0 {
			left = (groups[idx-1].Center + g.Center) / 2
		}

		right := g.MaxX + opts.EdgeMargin
		if idx < len(groups)-1 {
			right = (g.Center + groups[idx+1].Center) / 2
		}

		left, right = trimInterior(left, right, idx, len(groups), opts.EdgeMargin)

		if idx < len(clusterBounds) {
			span := clusterBounds[idx]
			if span.Min-opts.ClusterPad > left {
				left = span.Min - opts.ClusterPad
			}
			if span.Max+opts.ClusterPad > right {
				right = span.Max + opts.ClusterPad
			}
		}

		columns = append(columns, ColumnDef{
			Name:    g.Name,
			Left:    left,
			Right:   right,
			Center:  g.Center,
			Section: section,
		})
	}

	return columns
}

// trimInterior pulls interior column boundaries inward by a margin capped at
// a quarter of the column width, leaving the outer edges untouched.
func trimInterior(left, right float64, idx, count int, edgeMargin float64) (float64, float64) {
	margin := (right - left) / 4
	if edgeMargin < margin {
		margin = edgeMargin
	}
	if idx > 0 {
		left += margin
	}
	if idx < count-1 {
		right -= margin
	}
	return left, right
}

func nearestCluster(clusters []cluster.Cluster, center float64) int {
	best := 0
	bestDist := -1.0
	for i, c := range clusters {
		dist := c.Center - center
		if dist < 0 {
			dist = -dist
		}
		if bestDist < 0 || dist < bestDist {
			best = i
			bestDist = dist
		}
	}
	return best
}
