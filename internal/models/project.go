package models

import (
	"slices"
	"time"
)

type Project struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Insights     []string  `json:"insights"`
	Technologies []string  `json:"technologies"`
	GithubURL    string    `json:"githubUrl"`
	ReportURL    *string   `json:"reportUrl"`
	CreatedAt    time.Time `json:"createdAt"`
}

// NewProject is the insert shape for a project. Nil collections and a nil
// ReportURL are stored as NULL.
type NewProject struct {
	Title        string
	Description  string
	Insights     []string
	Technologies []string
	GithubURL    string
	ReportURL    *string
}

// Clone returns a copy that shares no slices or pointers with p.
func (p Project) Clone() Project {
	p.Insights = cloneStrings(p.Insights)
	p.Technologies = cloneStrings(p.Technologies)
	p.ReportURL = cloneString(p.ReportURL)
	return p
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	return slices.Clone(s)
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
