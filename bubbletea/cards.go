package bubbletea

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
	"github.com/vibecod3rs/vibe"
)

const (
	cardMinWidth = 24
	cardGap      = 1
	// Border and horizontal padding of a card.
	cardChrome = 4
	// Descriptions are cut to this many lines of card text.
	cardDescLines = 2
)

// renderHeader renders the event title line and its date and links.
func renderHeader(event vibe.Event, width int, styles Styles) string {
	clip := lipgloss.NewStyle().MaxWidth(width)
	title := styles.Accent.Render(event.Name) + "  " + styles.Muted.Render(event.Tagline)
	details := styles.Muted.Render(strings.Join([]string{
		event.Date, event.Location, event.RegistrationURL, event.CommunityURL,
	}, " · "))
	return clip.Render(title) + "\n" + clip.Render(details)
}

// renderCards lays the catalog out as a row of cards, or a column when the
// terminal is too narrow for a row.
func renderCards(catalog vibe.Catalog, focus, width int, styles Styles) string {
	n := catalog.Len()
	if n == 0 {
		return styles.Muted.Render("Треки ещё не объявлены.")
	}
	cardWidth := (width - cardGap*(n-1)) / n
	stacked := cardWidth < cardMinWidth
	if stacked {
		cardWidth = width
	}

	cards := make([]string, 0, n)
	for i := range n {
		cards = append(cards, renderCard(catalog.At(i), i == focus, cardWidth, styles))
	}
	if stacked {
		return lipgloss.JoinVertical(lipgloss.Left, cards...)
	}
	gap := strings.Repeat(" ", cardGap)
	row := make([]string, 0, 2*n-1)
	for i, c := range cards {
		if i > 0 {
			row = append(row, gap)
		}
		row = append(row, c)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, row...)
}

func renderCard(track vibe.Track, focused bool, width int, styles Styles) string {
	inner := max(width-cardChrome, 1)
	style := styles.Card
	title := styles.Accent
	if focused {
		style = styles.CardFocused
		title = styles.Highlight
	}

	body := []string{
		cardHeading(track.Title, track.Tag, inner, title, styles.Muted),
		styles.Muted.Render(track.Category),
		"",
		runewidth.Truncate(track.Description, inner*cardDescLines, "…"),
	}
	return style.Width(width - 2).Render(lipgloss.NewStyle().Width(inner).Render(strings.Join(body, "\n")))
}

// cardHeading puts the title on the left and the tag flush right.
func cardHeading(title, tag string, width int, titleStyle, tagStyle lipgloss.Style) string {
	tag = "#" + tag
	gap := width - uniseg.StringWidth(title) - uniseg.StringWidth(tag)
	if gap < 1 {
		return titleStyle.Render(runewidth.Truncate(title, width, "…"))
	}
	return titleStyle.Render(title) + strings.Repeat(" ", gap) + tagStyle.Render(tag)
}

// renderModal renders the detail view of the selected track.
func renderModal(track vibe.Track, index, total, width int, styles Styles) string {
	inner := max(min(width-cardChrome-2, 72), 1)
	text := lipgloss.NewStyle().Width(inner)
	body := []string{
		styles.Muted.Render(fmt.Sprintf("← %d/%d →", index+1, total)),
		"",
		styles.Highlight.Render(track.Title) + "  " + styles.Muted.Render("#"+track.Tag),
		styles.Accent.Render(track.Category),
		"",
		text.Render(track.Description),
	}
	if track.Image != "" {
		body = append(body, "", styles.Muted.Render(runewidth.Truncate(track.Image, inner, "…")))
	}
	return styles.Modal.Render(strings.Join(body, "\n"))
}

// renderPrizes lists the prize tiers under the catalog.
func renderPrizes(prizes []vibe.Prize, width int, styles Styles) string {
	if len(prizes) == 0 {
		return ""
	}
	text := lipgloss.NewStyle().Width(width)
	lines := make([]string, 0, len(prizes))
	for _, p := range prizes {
		line := styles.Accent.Render(p.Title) + " · " + styles.Highlight.Render(p.Reward)
		if p.Description != "" {
			line += " " + styles.Muted.Render(p.Description)
		}
		lines = append(lines, text.Render(line))
	}
	return strings.Join(lines, "\n")
}
