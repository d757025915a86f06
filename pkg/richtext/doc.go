// Package richtext renders markdown translations to sanitized HTML.
//
// Translation values sometimes carry formatting: emphasis in an onboarding
// message, a link in a footer notice. This package converts such values
// markdown-to-HTML with goldmark and then sanitizes the result with
// bluemonday, so translator-provided content can never inject scripts,
// event handlers, or javascript: URLs into a page.
//
// # Usage
//
// The package-level functions use a shared default Renderer:
//
//	html := richtext.Render("Please **verify** your [email](https://example.com/verify).")
//	// <p>Please <strong>verify</strong> your <a href="https://example.com/verify" rel="nofollow">email</a>.</p>
//
// A custom Renderer adjusts the policy or the markdown processor:
//
//	r := richtext.New(richtext.WithStrict())
//	text := r.Render("# Welcome")
//	// Welcome
//
// The default policy allows the tags markdown rendering produces
// (paragraphs, headings, emphasis, lists, code, blockquotes, links with
// nofollow) and strips everything else. WithPolicy substitutes any
// bluemonday policy for output contexts with different rules.
//
// A Renderer is safe for concurrent use.
package richtext
