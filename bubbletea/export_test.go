package bubbletea

import "github.com/vibecod3rs/vibe"

// RenderContent exports renderContent for testing.
func RenderContent(m Model) string {
	return m.renderContent()
}

// RenderCards exports renderCards for testing.
func RenderCards(catalog vibe.Catalog, focus, width int, styles Styles) string {
	return renderCards(catalog, focus, width, styles)
}

// RenderModal exports renderModal for testing.
func RenderModal(track vibe.Track, index, total, width int, styles Styles) string {
	return renderModal(track, index, total, width, styles)
}

// RenderHeader exports renderHeader for testing.
func RenderHeader(event vibe.Event, width int, styles Styles) string {
	return renderHeader(event, width, styles)
}
