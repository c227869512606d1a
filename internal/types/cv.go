// Package types provides type definitions for structured data used throughout the cv-layout-engine system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// CVContent is the content model the layout engine measures and places.
// It is supplied fully parsed by an external import or AI layer; every
// section is optional and an absent section is simply not laid out.
type CVContent struct {
	PersonalDetails     *PersonalDetails    `json:"personal_details,omitempty"`
	ProfessionalSummary string              `json:"professional_summary,omitempty"`
	WorkExperience      []WorkExperience    `json:"work_experience,omitempty"`
	Education           []Education         `json:"education,omitempty"`
	Skills              map[string][]string `json:"skills,omitempty"`
	Projects            []Project           `json:"projects,omitempty"`
	Publications        []string            `json:"publications,omitempty"`
}

// PersonalDetails holds the header block fields.
type PersonalDetails struct {
	FullName        string `json:"full_name,omitempty"`
	Email           string `json:"email,omitempty"`
	Phone           string `json:"phone,omitempty"`
	Location        string `json:"location,omitempty"`
	LinkedInURL     string `json:"linkedin_url,omitempty"`
	DesiredPosition string `json:"desired_position,omitempty"`
}

// ContactFields returns the non-empty contact entries in display order.
func (p *PersonalDetails) ContactFields() []string {
	candidates := []string{p.Email, p.Phone, p.Location, p.LinkedInURL}
	fields := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if c != "" {
			fields = append(fields, c)
		}
	}
	return fields
}

// WorkExperience represents one employment entry.
type WorkExperience struct {
	JobTitle     string   `json:"job_title,omitempty"`
	Company      string   `json:"company,omitempty"`
	StartDate    string   `json:"start_date,omitempty"`
	EndDate      string   `json:"end_date,omitempty"`
	IsCurrent    bool     `json:"is_current,omitempty"`
	Location     string   `json:"location,omitempty"`
	Achievements []string `json:"achievements,omitempty"`
}

// Education represents one education entry.
type Education struct {
	Degree      string `json:"degree,omitempty"`
	Institution string `json:"institution,omitempty"`
	StartDate   string `json:"start_date,omitempty"`
	EndDate     string `json:"end_date,omitempty"`
	Grade       string `json:"grade,omitempty"`
	Location    string `json:"location,omitempty"`
}

// Project represents one project entry.
type Project struct {
	Name         string   `json:"name,omitempty"`
	Description  string   `json:"description,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
}

// TotalSkillCount returns the number of individual skills across all categories.
func (c *CVContent) TotalSkillCount() int {
	total := 0
	for _, list := range c.Skills {
		total += len(list)
	}
	return total
}

// HasSkills reports whether any skill category contains at least one skill.
func (c *CVContent) HasSkills() bool {
	return c.TotalSkillCount() > 0
}

// HasHeader reports whether personal details are present.
func (c *CVContent) HasHeader() bool {
	return c.PersonalDetails != nil
}
