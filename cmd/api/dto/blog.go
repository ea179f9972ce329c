package dto

import "portfolio-blog/models"

// BlogPostInput is the create payload. Missing fields fail validation.
type BlogPostInput struct {
	Title    string   `json:"title" example:"Hello, world"`
	Content  string   `json:"content" example:"# Markdown body"`
	ImageURL string   `json:"imageUrl" example:"https://example.com/cover.png"`
	Excerpt  string   `json:"excerpt" example:"A short summary"`
	Category string   `json:"category" example:"engineering"`
	Tags     []string `json:"tags" example:"go,mongodb"`
	Author   string   `json:"author" example:"Jane Doe"`
}

func (in BlogPostInput) Model() models.BlogPost {
	return models.BlogPost{
		Title:    in.Title,
		Content:  in.Content,
		ImageURL: in.ImageURL,
		Excerpt:  in.Excerpt,
		Category: in.Category,
		Tags:     in.Tags,
		Author:   in.Author,
	}
}

// BlogPostPatch is the update payload; only present fields overwrite.
type BlogPostPatch struct {
	Title    *string   `json:"title,omitempty"`
	Content  *string   `json:"content,omitempty"`
	ImageURL *string   `json:"imageUrl,omitempty"`
	Excerpt  *string   `json:"excerpt,omitempty"`
	Category *string   `json:"category,omitempty"`
	Tags     *[]string `json:"tags,omitempty"`
	Author   *string   `json:"author,omitempty"`
}

func (p BlogPostPatch) Apply(dst *models.BlogPost) {
	set(&dst.Title, p.Title)
	set(&dst.Content, p.Content)
	set(&dst.ImageURL, p.ImageURL)
	set(&dst.Excerpt, p.Excerpt)
	set(&dst.Category, p.Category)
	set(&dst.Tags, p.Tags)
	set(&dst.Author, p.Author)
}

func set[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}
