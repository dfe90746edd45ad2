package model

import "time"

// Project groups a draft with the sources collected for it. Projects are
// owned by the store layer; the attribution engine never sees them — the
// pipeline unwraps a project into plain draft text and sources first.
type Project struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Draft     string    `json:"draft,omitempty"`
	Sources   []Source  `json:"sources,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SourceByID returns the project source with the given id, or nil.
func (p *Project) SourceByID(id string) *Source {
	for i := range p.Sources {
		if p.Sources[i].ID == id {
			return &p.Sources[i]
		}
	}
	return nil
}
