package models

// Stats summarises a recording collection.
type Stats struct {
	Languages    int `json:"languages"`
	Contributors int `json:"contributors"`
	Regions      int `json:"regions"`
	Total        int `json:"total"`
}

// ComputeStats counts distinct non-empty languages, owners and regions.
// Values are compared trimmed and case-folded.
func ComputeStats(recs []Recording) Stats {
	languages := make(map[string]struct{})
	users := make(map[string]struct{})
	regions := make(map[string]struct{})

	add := func(set map[string]struct{}, v string) {
		if n := Normalize(v); n != "" {
			set[n] = struct{}{}
		}
	}

	for _, r := range recs {
		add(languages, r.Language)
		add(users, r.UserID)
		add(regions, r.Region)
	}

	return Stats{
		Languages:    len(languages),
		Contributors: len(users),
		Regions:      len(regions),
		Total:        len(recs),
	}
}
