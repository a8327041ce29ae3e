// Package layout computes deterministic destination paths inside the
// downloads root: root/<channel>/<YYYY-MM>/<original filename>.
package layout

import (
	"path/filepath"

	"snapsort/internal/identity"
)

// bucketLayout is the date-bucket folder format derived from the capture
// timestamp.
const bucketLayout = "2006-01"

// Planner decides where a classified screenshot belongs.
type Planner struct {
	dateBuckets bool
}

// NewPlanner builds a planner. When dateBuckets is false the file lands
// directly in the channel folder.
func NewPlanner(dateBuckets bool) *Planner {
	return &Planner{dateBuckets: dateBuckets}
}

// Plan returns the destination path for filename under root. The base name
// is never altered; only its containing directory changes.
func (p *Planner) Plan(root string, id identity.Identity, filename string) string {
	if p.dateBuckets {
		return filepath.Join(root, id.Channel, id.Timestamp.Format(bucketLayout), filename)
	}
	return filepath.Join(root, id.Channel, filename)
}
