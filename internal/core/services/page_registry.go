package services

import (
	"fmt"
	"sort"

	"learning-web/internal/core/domain"
)

// PageRegistry maps URL paths to page metadata.
// Built once at startup and read-only afterwards, safe for concurrent use.
type PageRegistry struct {
	pages map[string]domain.PageEntry
}

// NewPageRegistry builds a registry, rejecting duplicate paths
func NewPageRegistry(entries []domain.PageEntry) (*PageRegistry, error) {
	pages := make(map[string]domain.PageEntry, len(entries))
	for _, entry := range entries {
		if entry.Path == "" || entry.ContentFile == "" {
			return nil, fmt.Errorf("page %q: path and content file are required", entry.Path)
		}
		if _, exists := pages[entry.Path]; exists {
			return nil, fmt.Errorf("%w: %s", domain.ErrDuplicatePage, entry.Path)
		}
		pages[entry.Path] = entry
	}

	return &PageRegistry{pages: pages}, nil
}

// Lookup returns the page registered for an exact URL path
func (r *PageRegistry) Lookup(path string) (domain.PageEntry, bool) {
	page, ok := r.pages[path]
	return page, ok
}

// Paths lists registered URL paths in sorted order
func (r *PageRegistry) Paths() []string {
	paths := make([]string, 0, len(r.pages))
	for path := range r.pages {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}

// DefaultPages is the page catalogue served by the demo frontend
func DefaultPages() []domain.PageEntry {
	const uiLibraryCSS = `<link rel="stylesheet" href="/css/ui-library.css" />`
	const formsCSS = `<link rel="stylesheet" href="/css/components/forms.css" />`
	const cardsCSS = `<link rel="stylesheet" href="/css/components/cards.css" />`

	return []domain.PageEntry{
		{
			Path:        "/",
			Title:       "Home",
			Subtitle:    "A learning-first web application",
			ContentFile: "pages/home.html",
		},
		{
			Path:        "/api-demo",
			Title:       "API Demo",
			Subtitle:    "Test the backend health check endpoint:",
			ContentFile: "pages/api-demo.html",
			Stylesheets: `<link rel="stylesheet" href="/css/api-demo.css" />`,
			Scripts:     `<script type="module" src="/js/api-demo.js"></script>`,
		},
		{
			Path:        "/ui-library",
			Title:       "UI Library",
			Subtitle:    "A collection of reusable UI components for testing and reference",
			ContentFile: "pages/ui-library.html",
			Stylesheets: uiLibraryCSS + formsCSS + cardsCSS,
			Scripts:     `<script type="module" src="/js/ui-library.js"></script>`,
		},
		{
			Path:        "/ui-library/buttons",
			Title:       "Buttons",
			Subtitle:    "Various button styles and states",
			ContentFile: "pages/ui-library/buttons.html",
			Stylesheets: uiLibraryCSS,
			Scripts:     `<script type="module" src="/js/ui-library/buttons.js"></script>`,
		},
		{
			Path:        "/ui-library/forms",
			Title:       "Form Elements",
			Subtitle:    "Input fields and form controls",
			ContentFile: "pages/ui-library/forms.html",
			Stylesheets: uiLibraryCSS + formsCSS,
			Scripts:     `<script type="module" src="/js/ui-library/forms.js"></script>`,
		},
		{
			Path:        "/ui-library/cards",
			Title:       "Cards",
			Subtitle:    "Content containers with borders and shadows",
			ContentFile: "pages/ui-library/cards.html",
			Stylesheets: uiLibraryCSS + cardsCSS,
			Scripts:     `<script type="module" src="/js/ui-library/cards.js"></script>`,
		},
		{
			Path:        "/style-showcase",
			Title:       "Style Showcase",
			Subtitle:    "A visual guide to the theme-dark colors, spacing scale, and design system",
			ContentFile: "pages/style-showcase.html",
			Stylesheets: `<link rel="stylesheet" href="/css/style-showcase.css" />`,
		},
	}
}
