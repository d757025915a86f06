package richtext

import (
	"bytes"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
)

var (
	formattingPolicy *bluemonday.Policy
	policyOnce       sync.Once
)

// defaultPolicy allows the tags markdown rendering produces and nothing
// more. Scripts, event handlers, and javascript: URLs are stripped.
func defaultPolicy() *bluemonday.Policy {
	policyOnce.Do(func() {
		formattingPolicy = bluemonday.NewPolicy()
		formattingPolicy.AllowStandardURLs()
		formattingPolicy.AllowElements(
			"p", "br", "hr",
			"h1", "h2", "h3", "h4", "h5", "h6",
			"strong", "b", "em", "i",
			"ul", "ol", "li",
			"code", "pre", "blockquote",
		)
		formattingPolicy.AllowAttrs("href").OnElements("a")
		formattingPolicy.RequireNoFollowOnLinks(true)
	})
	return formattingPolicy
}

// Renderer converts markdown translations to sanitized HTML. Both the
// markdown processor and the policy are safe for concurrent use, so one
// Renderer serves all goroutines.
type Renderer struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithPolicy replaces the sanitization policy. A nil policy is ignored.
func WithPolicy(policy *bluemonday.Policy) Option {
	return func(r *Renderer) {
		if policy != nil {
			r.policy = policy
		}
	}
}

// WithStrict strips all HTML from output, leaving plain text. Use when
// translations feed into contexts that must never contain markup.
func WithStrict() Option {
	return func(r *Renderer) {
		r.policy = bluemonday.StrictPolicy()
	}
}

// WithMarkdown replaces the markdown processor, for callers that need
// goldmark extensions. A nil processor is ignored.
func WithMarkdown(md goldmark.Markdown) Option {
	return func(r *Renderer) {
		if md != nil {
			r.md = md
		}
	}
}

// New creates a Renderer. The default setup renders CommonMark and allows
// basic formatting tags in the output.
func New(opts ...Option) *Renderer {
	r := &Renderer{
		md:     goldmark.New(),
		policy: defaultPolicy(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render converts markdown to sanitized HTML. If the markdown processor
// fails the source text is sanitized directly, so callers always get
// display-safe output.
func (r *Renderer) Render(markdown string) string {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(markdown), &buf); err != nil {
		return r.policy.Sanitize(markdown)
	}
	return r.policy.Sanitize(buf.String())
}

// Sanitize applies the policy to already-rendered HTML.
func (r *Renderer) Sanitize(html string) string {
	return r.policy.Sanitize(html)
}

var (
	defaultRenderer *Renderer
	rendererOnce    sync.Once
)

func std() *Renderer {
	rendererOnce.Do(func() {
		defaultRenderer = New()
	})
	return defaultRenderer
}

// Render converts markdown to sanitized HTML using the default Renderer.
func Render(markdown string) string {
	return std().Render(markdown)
}

// Sanitize applies the default policy to HTML.
func Sanitize(html string) string {
	return std().Sanitize(html)
}
