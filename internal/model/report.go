package model

// Report summarises one repair run over a single file
type Report struct {
	Path     string `json:"path"`              // Target file
	BytesIn  int    `json:"bytes_in"`          // Size before repair
	BytesOut int    `json:"bytes_out"`         // Size after repair
	Hits     []Hit  `json:"hits,omitempty"`    // Entries that matched, in map order
	Changed  bool   `json:"changed"`           // Whether the text differs from the input
	Written  bool   `json:"written"`           // Whether the file was replaced on disk
	DryRun   bool   `json:"dry_run,omitempty"` // Run did not write by request
}

// Hit records how often one corruption map entry matched
type Hit struct {
	Name      string `json:"name"`
	Corrupted string `json:"corrupted"`
	Correct   string `json:"correct"`
	Count     int    `json:"count"`
}

// Total returns the number of replacements across all hits
func (r *Report) Total() int {
	total := 0
	for _, h := range r.Hits {
		total += h.Count
	}
	return total
}
