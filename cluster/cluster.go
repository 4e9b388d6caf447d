package cluster

import (
	"github.com/tsawler/capgains/model"
)

// Cluster is a contiguous run of words along the x axis, grouped because no
// inter-token gap inside the run exceeds the clustering threshold.
type Cluster struct {
	Words  []model.Word
	MinX0  float64 // leftmost token edge
	MaxX1  float64 // rightmost token edge
	Center float64 // mean of token centers
}

// newCluster computes the derived fields for a run of words.
func newCluster(words []model.Word) Cluster {
	c := Cluster{Words: words}
	sum := 0.0
	for i, w := range words {
		if i == 0 || w.X0 < c.MinX0 {
			c.MinX0 = w.X0
		}
		if i == 0 || w.X1 > c.MaxX1 {
			c.MaxX1 = w.X1
		}
		sum += w.Center()
	}
	if len(words) > 0 {
		c.Center = sum / float64(len(words))
	}
	return c
}

// ByGap partitions words into clusters along the x axis. Words are sorted by
// X0, and a word joins the current cluster while the gap between its left
// edge and the cluster's rightmost right edge is at most gapThreshold; a
// larger gap starts a new cluster. A gap exactly equal to the threshold does
// not split.
func ByGap(words []model.Word, gapThreshold float64) []Cluster {
	if len(words) == 0 {
		return nil
	}

	sorted := model.SortByX0(words)

	var clusters []Cluster
	current := []model.Word{sorted[0]}
	rightmost := sorted[0].X1

	for _, w := range sorted[1:] {
		gap := w.X0 - rightmost
		if gap > gapThreshold {
			clusters = append(clusters, newCluster(current))
			current = []model.Word{w}
			rightmost = w.X1
		} else {
			current = append(current, w)
			if w.X1 > rightmost {
				rightmost = w.X1
			}
		}
	}
	clusters = append(clusters, newCluster(current))

	return clusters
}
