// Package model defines the typed form schema consumed by the controller and
// renderers. Definitions live in internal/model; this package re-exports them.
//
// A Field carries a closed Kind variant: Text (single-line input with an
// optional Pattern), Select (ordered Options plus an optional Default) or
// TextArea. Use MatchKind to dispatch on the kind; it has one branch per kind
// so adding a kind is a compile-time change for every renderer. Values and
// ValidationErrors are keyed by field id.
package model
