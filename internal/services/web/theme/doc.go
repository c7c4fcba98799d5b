// Package theme defines the SIP design tokens and the stylesheet derived
// from them.
//
// Tokens are immutable once built and safe for concurrent reads. Rules in the
// stylesheet reference tokens by name; building the stylesheet fails when a
// rule references a token that the set does not define.
package theme
