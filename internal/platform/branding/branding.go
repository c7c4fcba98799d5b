// Package branding holds product identity shared by every rendered surface.
package branding

// AppName is the product name shown in page titles and the navigation brand.
const AppName = "SIP"

// Tagline is the short product description used in page metadata.
const Tagline = "Structured interview practice"
