package dto

import "time"

// PostSummary is one localized entry of a post list.
type PostSummary struct {
	Slug        string     `json:"slug"`
	Title       string     `json:"title"`
	Excerpt     string     `json:"excerpt,omitempty"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
}

// PostDetail is one localized post with its body rendered to HTML.
type PostDetail struct {
	Slug        string     `json:"slug"`
	Title       string     `json:"title"`
	Excerpt     string     `json:"excerpt,omitempty"`
	BodyHTML    string     `json:"body_html"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
}

// ServiceSummary is one localized entry of the services list.
type ServiceSummary struct {
	Slug        string `json:"slug"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Icon        string `json:"icon,omitempty"`
	Order       int    `json:"order"`
}

// ServiceDetail is one localized service page with rendered content.
type ServiceDetail struct {
	Slug        string `json:"slug"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	ContentHTML string `json:"content_html"`
	Icon        string `json:"icon,omitempty"`
}
