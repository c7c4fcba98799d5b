// Package templates renders SIP pages: a base layout that owns the document
// shell, navigation, and flash messages, and page types that fill its named
// blocks.
package templates

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/a-h/templ"
	"github.com/louisbranch/sip/internal/platform/branding"
	"github.com/louisbranch/sip/internal/services/web/routepath"
	"github.com/louisbranch/sip/internal/services/web/theme"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/louisbranch/sip/internal/services/web/templates"

// Block names understood by the layout.
const (
	BlockTitle   = "title"
	BlockContent = "content"
)

// Block is one named region a page fills.
type Block struct {
	Name      string
	Component templ.Component
}

// Page supplies the blocks of one page type.
type Page interface {
	Name() string
	Blocks(pc PageContext) ([]Block, error)
}

// Shell is the base layout. It is built once at startup and is safe for
// concurrent renders.
type Shell struct {
	appName    string
	tokens     theme.Tokens
	stylesheet string
	routes     routepath.Routes
	nav        Navigation
	resources  Resources
	tracer     trace.Tracer
}

// ShellOption customizes a Shell.
type ShellOption func(*Shell)

// WithTokens replaces the default design tokens.
func WithTokens(tokens theme.Tokens) ShellOption {
	return func(s *Shell) { s.tokens = tokens }
}

// WithRoutes replaces the default link-to-path mapping.
func WithRoutes(routes routepath.Routes) ShellOption {
	return func(s *Shell) { s.routes = routes }
}

// WithNavigation replaces the default navigation bar.
func WithNavigation(nav Navigation) ShellOption {
	return func(s *Shell) { s.nav = nav }
}

// WithResources replaces the default external resources.
func WithResources(resources Resources) ShellOption {
	return func(s *Shell) { s.resources = resources }
}

// WithAppName replaces the brand shown in titles and navigation.
func WithAppName(name string) ShellOption {
	return func(s *Shell) { s.appName = strings.TrimSpace(name) }
}

// NewShell builds the layout. The stylesheet is generated here, so a token
// referenced by the stylesheet but missing from the set fails at startup.
func NewShell(opts ...ShellOption) (*Shell, error) {
	s := &Shell{
		appName:   branding.AppName,
		tokens:    theme.Default(),
		routes:    routepath.DefaultRoutes(),
		nav:       DefaultNavigation(),
		resources: DefaultResources(),
		tracer:    otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.appName == "" {
		s.appName = branding.AppName
	}
	css, err := s.tokens.Stylesheet()
	if err != nil {
		if errors.Is(err, theme.ErrMissingToken) {
			return nil, &RenderError{Kind: KindMissingToken, Detail: "stylesheet", Err: err}
		}
		return nil, fmt.Errorf("build stylesheet: %w", err)
	}
	s.stylesheet = css
	if err := s.nav.validate(s.routes); err != nil {
		return nil, missingContext("%v", err)
	}
	s.resources = s.resources.normalized()
	return s, nil
}

var defaultShell = sync.OnceValues(func() (*Shell, error) {
	return NewShell()
})

// Render writes page using the default shell.
func Render(ctx context.Context, w io.Writer, page Page, pc PageContext) error {
	shell, err := defaultShell()
	if err != nil {
		return err
	}
	return shell.Render(ctx, w, page, pc)
}

// Routes returns the link-to-path mapping the shell injects into pages.
func (s *Shell) Routes() routepath.Routes {
	return s.routes
}

// Render writes the full document for page to w. On failure nothing is
// written and the error is a *RenderError or a write error.
func (s *Shell) Render(ctx context.Context, w io.Writer, page Page, pc PageContext) error {
	if ctx == nil {
		ctx = context.Background()
	}
	name := "unknown"
	if page != nil {
		name = page.Name()
	}
	ctx, span := s.tracer.Start(ctx, "templates.render", trace.WithAttributes(
		attribute.String("sip.page", name),
		attribute.Int("sip.messages", len(pc.Messages)),
	))
	defer span.End()

	var buf bytes.Buffer
	if err := s.Document(page, pc).Render(ctx, &buf); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "render failed")
		return err
	}
	_, err := buf.WriteTo(w)
	return err
}

// RenderString renders page to a string.
func (s *Shell) RenderString(ctx context.Context, page Page, pc PageContext) (string, error) {
	var b strings.Builder
	if err := s.Render(ctx, &b, page, pc); err != nil {
		return "", err
	}
	return b.String(), nil
}

// Document returns the unbuffered layout component for page.
func (s *Shell) Document(page Page, pc PageContext) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if page == nil {
			return missingRegion("no page supplied")
		}
		pc.routes = s.routes
		blocks, err := page.Blocks(pc)
		if err != nil {
			return err
		}
		regions, err := collectBlocks(blocks)
		if err != nil {
			return err
		}
		titleHTML, err := renderTitle(ctx, regions[BlockTitle], s.appName)
		if err != nil {
			return err
		}

		m := newMarkup(w)
		m.raw(`<!DOCTYPE html><html`)
		m.attr("lang", pc.lang())
		m.raw(`><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1">`)
		m.raw(`<meta name="description"`)
		m.attr("content", branding.Tagline)
		m.raw(`><title>`, titleHTML, `</title>`)
		for _, href := range s.resources.Stylesheets {
			m.raw(`<link rel="stylesheet"`)
			m.attr("href", href)
			m.raw(`>`)
		}
		m.raw(`<style>`, s.stylesheet, `</style></head>`)
		m.raw(`<body>`)
		m.component(ctx, navbar(s.nav, s.appName, pc))
		if len(pc.Messages) > 0 {
			m.raw(`<div class="container mt-3" id="messages">`)
			m.component(ctx, Messages(pc.Messages, pc.Loc))
			m.raw(`</div>`)
		}
		m.raw(`<main class="container py-4" id="content">`)
		m.component(ctx, regions[BlockContent])
		m.raw(`</main>`)
		for _, src := range s.resources.Scripts {
			m.raw(`<script`)
			m.attr("src", src)
			m.raw(`></script>`)
		}
		m.raw(`</body></html>`)
		return m.err
	})
}

// collectBlocks enforces exactly one content block and no repeated or
// unknown block names.
func collectBlocks(blocks []Block) (map[string]templ.Component, error) {
	regions := make(map[string]templ.Component, len(blocks))
	for _, block := range blocks {
		name := strings.TrimSpace(block.Name)
		switch name {
		case BlockTitle, BlockContent:
		default:
			return nil, missingRegion("unknown block %q", block.Name)
		}
		if _, dup := regions[name]; dup {
			return nil, missingRegion("block %q defined more than once", name)
		}
		if block.Component == nil {
			return nil, missingRegion("block %q has no component", name)
		}
		regions[name] = block.Component
	}
	if _, ok := regions[BlockContent]; !ok {
		return nil, missingRegion("block %q not supplied", BlockContent)
	}
	return regions, nil
}

// renderTitle renders the title block (escaped markup) and appends the brand.
func renderTitle(ctx context.Context, block templ.Component, appName string) (string, error) {
	brand := templ.EscapeString(appName)
	if block == nil {
		return brand, nil
	}
	var b strings.Builder
	if err := block.Render(ctx, &b); err != nil {
		return "", err
	}
	title := strings.TrimSpace(b.String())
	if title == "" || title == brand {
		return brand, nil
	}
	return title + " | " + brand, nil
}

// ComposePageTitle appends the brand to a plain-text page title.
func ComposePageTitle(title, appName string) string {
	title = strings.TrimSpace(title)
	appName = strings.TrimSpace(appName)
	if title == "" || title == appName {
		return appName
	}
	if strings.HasSuffix(title, " | "+appName) {
		return title
	}
	return title + " | " + appName
}
