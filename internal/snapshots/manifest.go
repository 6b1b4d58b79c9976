package snapshots

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

const manifestVersion = 1

// Manifest describes one publish of the static site.
type Manifest struct {
	Version     int         `json:"version"`
	GeneratedAt time.Time   `json:"generatedAt"`
	Source      string      `json:"source"`
	Dataset     DatasetMeta `json:"dataset"`
	Pages       []PageMeta  `json:"pages"`
}

// DatasetMeta summarizes the dataset the pages were built from.
type DatasetMeta struct {
	Teams   int    `json:"teams"`
	Entries int    `json:"entries"`
	Matches int    `json:"matches"`
	Played  int    `json:"played"`
	Breaks  int    `json:"breaks"`
	Venue   string `json:"venue"`
}

// PageMeta records one written file.
type PageMeta struct {
	Path    string `json:"path"`
	Bytes   int    `json:"bytes"`
	Changed bool   `json:"changed"`
}

// ReadManifest loads manifest.json from basePath.
func ReadManifest(basePath string) (Manifest, error) {
	f, err := os.Open(filepath.Join(basePath, ManifestFile))
	if err != nil {
		return Manifest{}, err
	}
	defer f.Close()
	var m Manifest
	if err := json.NewDecoder(f).Decode(&m); err != nil {
		return Manifest{}, err
	}
	return m, nil
}

// Changed counts pages whose content differed from what was on disk.
func (m Manifest) Changed() int {
	n := 0
	for _, p := range m.Pages {
		if p.Changed {
			n++
		}
	}
	return n
}
