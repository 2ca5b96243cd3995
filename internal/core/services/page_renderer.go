package services

import (
	"context"
	"fmt"

	"learning-web/internal/core/domain"
)

// PageRenderer assembles a page from the shared layout and its content fragment
type PageRenderer struct {
	loader     *ContentLoader
	viewsRoot  string
	layoutFile string
}

// NewPageRenderer creates a renderer; layoutFile and page content files
// are resolved under viewsRoot
func NewPageRenderer(loader *ContentLoader, viewsRoot, layoutFile string) *PageRenderer {
	return &PageRenderer{
		loader:     loader,
		viewsRoot:  viewsRoot,
		layoutFile: layoutFile,
	}
}

// Render loads layout and fragment (two independent, cacheable reads)
// and substitutes the page placeholders
func (p *PageRenderer) Render(ctx context.Context, page domain.PageEntry) (string, error) {
	layout, err := p.read(ctx, p.layoutFile)
	if err != nil {
		return "", fmt.Errorf("load layout: %w", err)
	}

	content, err := p.read(ctx, page.ContentFile)
	if err != nil {
		return "", fmt.Errorf("load content for %s: %w", page.Path, err)
	}

	return RenderPage(layout, content, page), nil
}

func (p *PageRenderer) read(ctx context.Context, relative string) (string, error) {
	absPath, err := ResolveUnderRoot(p.viewsRoot, relative)
	if err != nil {
		return "", err
	}

	asset, err := p.loader.Load(ctx, absPath)
	if err != nil {
		return "", err
	}

	return string(asset.Body), nil
}
