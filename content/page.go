package content

// Page is the overlay content behind a portal. The set of implementations is
// closed: ExperiencePage, ProjectsPage, SkillsPage and AboutPage.
type Page interface {
	Kind() Kind
	Heading() string
	page()
}

type Role struct {
	Role    string   `yaml:"role" json:"role"`
	Company string   `yaml:"company" json:"company"`
	URL     string   `yaml:"url" json:"url"`
	Period  string   `yaml:"period" json:"period"`
	Bullets []string `yaml:"bullets" json:"bullets"`
}

type Project struct {
	Name        string `yaml:"name" json:"name"`
	URL         string `yaml:"url" json:"url"`
	Description string `yaml:"description" json:"description"`
}

type Skill struct {
	Label string `yaml:"label" json:"label"`
	Items string `yaml:"items" json:"items"`
}

type Education struct {
	Year string `yaml:"year" json:"year"`
	Text string `yaml:"text" json:"text"`
}

type Link struct {
	Platform string `yaml:"platform" json:"platform"`
	Label    string `yaml:"label" json:"label"`
	URL      string `yaml:"url" json:"url"`
}

type ExperiencePage struct {
	Title string `json:"title"`
	Roles []Role `json:"roles"`
}

type ProjectsPage struct {
	Title    string    `json:"title"`
	Projects []Project `json:"projects"`
}

type SkillsPage struct {
	Title  string  `json:"title"`
	Skills []Skill `json:"skills"`
}

type AboutPage struct {
	Title     string      `json:"title"`
	Bio       string      `json:"bio"`
	Education []Education `json:"education"`
	Interests string      `json:"interests"`
	Links     []Link      `json:"links"`
}

func (*ExperiencePage) Kind() Kind { return Experience }
func (*ProjectsPage) Kind() Kind   { return Projects }
func (*SkillsPage) Kind() Kind     { return Skills }
func (*AboutPage) Kind() Kind      { return About }

func (p *ExperiencePage) Heading() string { return p.Title }
func (p *ProjectsPage) Heading() string   { return p.Title }
func (p *SkillsPage) Heading() string     { return p.Title }
func (p *AboutPage) Heading() string      { return p.Title }

func (*ExperiencePage) page() {}
func (*ProjectsPage) page()   {}
func (*SkillsPage) page()     {}
func (*AboutPage) page()      {}

// Paragraphs flattens a page into display paragraphs. Headings are prefixed
// with "# " so that text hosts can style them.
func Paragraphs(p Page) []string {
	var out []string
	switch pg := p.(type) {
	case *ExperiencePage:
		for _, r := range pg.Roles {
			out = append(out, "# "+r.Role+" ("+r.Period+")", r.Company)
			for _, b := range r.Bullets {
				out = append(out, "- "+b)
			}
			out = append(out, "")
		}
	case *ProjectsPage:
		for _, pr := range pg.Projects {
			out = append(out, "# "+pr.Name, pr.Description, pr.URL, "")
		}
	case *SkillsPage:
		for _, s := range pg.Skills {
			out = append(out, "# "+s.Label, s.Items, "")
		}
	case *AboutPage:
		out = append(out, pg.Bio, "", "# Education")
		for _, e := range pg.Education {
			out = append(out, e.Year+"  "+e.Text)
		}
		out = append(out, "", "# Interests", pg.Interests, "", "# On the Web")
		for _, l := range pg.Links {
			out = append(out, l.Platform+": "+l.Label)
		}
	}
	if n := len(out); n > 0 && out[n-1] == "" {
		out = out[:n-1]
	}
	return out
}
