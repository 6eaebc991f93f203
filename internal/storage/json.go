package storage

import (
	"encoding/json"
	"io"

	"github.com/san-kum/trailviz/internal/dynamo"
)

type ExportData struct {
	RunMetadata
	Trail [][3]float64 `json:"trail"`
}

// ExportJSON writes meta and the points as a single JSON document.
func ExportJSON(w io.Writer, meta RunMetadata, points []dynamo.Vec3) error {
	meta.Points = len(points)
	data := ExportData{
		RunMetadata: meta,
		Trail:       make([][3]float64, len(points)),
	}
	for i, p := range points {
		data.Trail[i] = [3]float64{p.X, p.Y, p.Z}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}
