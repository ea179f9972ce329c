package dto

import "portfolio-blog/models"

// ProjectInput is the create payload. Featured defaults to false.
type ProjectInput struct {
	Title        string   `json:"title" example:"portfolio-blog"`
	Description  string   `json:"description" example:"Personal site backend"`
	ImageURL     string   `json:"imageUrl" example:"https://example.com/shot.png"`
	LiveURL      string   `json:"liveUrl" example:"https://example.com"`
	GithubURL    string   `json:"githubUrl" example:"https://github.com/example/portfolio-blog"`
	Technologies []string `json:"technologies" example:"go,gin"`
	Featured     bool     `json:"featured" example:"false"`
}

func (in ProjectInput) Model() models.Project {
	return models.Project{
		Title:        in.Title,
		Description:  in.Description,
		ImageURL:     in.ImageURL,
		LiveURL:      in.LiveURL,
		GithubURL:    in.GithubURL,
		Technologies: in.Technologies,
		Featured:     in.Featured,
	}
}

type ProjectPatch struct {
	Title        *string   `json:"title,omitempty"`
	Description  *string   `json:"description,omitempty"`
	ImageURL     *string   `json:"imageUrl,omitempty"`
	LiveURL      *string   `json:"liveUrl,omitempty"`
	GithubURL    *string   `json:"githubUrl,omitempty"`
	Technologies *[]string `json:"technologies,omitempty"`
	Featured     *bool     `json:"featured,omitempty"`
}

func (p ProjectPatch) Apply(dst *models.Project) {
	set(&dst.Title, p.Title)
	set(&dst.Description, p.Description)
	set(&dst.ImageURL, p.ImageURL)
	set(&dst.LiveURL, p.LiveURL)
	set(&dst.GithubURL, p.GithubURL)
	set(&dst.Technologies, p.Technologies)
	set(&dst.Featured, p.Featured)
}
