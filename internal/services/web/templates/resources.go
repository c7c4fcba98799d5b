package templates

import "strings"

// Resources lists the external documents every page references. URLs are
// fixed; this package never modifies what they serve.
type Resources struct {
	Stylesheets []string
	Scripts     []string
}

const (
	BootstrapCSS      = "https://cdn.jsdelivr.net/npm/bootstrap@5.3.3/dist/css/bootstrap.min.css"
	BootstrapIconsCSS = "https://cdn.jsdelivr.net/npm/bootstrap-icons@1.11.3/font/bootstrap-icons.min.css"
	InterFontCSS      = "https://fonts.googleapis.com/css2?family=Inter:wght@400;500;600;700&display=swap"
	BootstrapJS       = "https://cdn.jsdelivr.net/npm/bootstrap@5.3.3/dist/js/bootstrap.bundle.min.js"
)

// DefaultResources returns the component, icon, and font stylesheets plus
// the component behavior script.
func DefaultResources() Resources {
	return Resources{
		Stylesheets: []string{BootstrapCSS, BootstrapIconsCSS, InterFontCSS},
		Scripts:     []string{BootstrapJS},
	}
}

// normalized drops blanks and repeats so each URL is emitted once.
func (r Resources) normalized() Resources {
	return Resources{
		Stylesheets: uniqueURLs(r.Stylesheets),
		Scripts:     uniqueURLs(r.Scripts),
	}
}

func uniqueURLs(urls []string) []string {
	seen := make(map[string]bool, len(urls))
	out := make([]string, 0, len(urls))
	for _, raw := range urls {
		url := strings.TrimSpace(raw)
		if url == "" || seen[url] {
			continue
		}
		seen[url] = true
		out = append(out, url)
	}
	return out
}
