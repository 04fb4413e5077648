package report

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/milefashell/nostrstats/internal/application"
)

type RenderOptions struct {
	Now         time.Time
	MaxActivity int
}

const defaultMaxActivityRows = 20

func renderView(rep application.Report, opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render("Nostr relay statistics"),
		s.header.Render(fmt.Sprintf("subject: %s", rep.Subject)),
	}

	if rep.Activity != nil {
		lines = append(lines, s.section.Render(renderActivity(rep, opts, s)))
	}
	if rep.Coverage.SelectedRelays != nil {
		lines = append(lines, s.section.Render(renderCoverage(rep, s)))
	}
	if rep.Ranking != nil {
		lines = append(lines, s.section.Render(renderRanking(rep, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderActivity(rep application.Report, opts RenderOptions, s styles) string {
	parts := []string{s.heading.Render("Activity on your relays")}

	if len(rep.Activity) == 0 {
		parts = append(parts, s.empty.Render("No activity from other accounts found."))
		return lipgloss.JoinVertical(lipgloss.Left, parts...)
	}

	maxRows := opts.MaxActivity
	if maxRows <= 0 {
		maxRows = defaultMaxActivityRows
	}

	shown := rep.Activity
	if len(shown) > maxRows {
		shown = shown[:maxRows]
	}

	for _, record := range shown {
		parts = append(parts, fmt.Sprintf("%s %s %s %s",
			s.count.Render(fmt.Sprintf("%5d", record.EventCount)),
			s.relay.Render(shortIdentity(string(record.Identity))),
			s.detail.Render(string(record.Relay)),
			s.detail.Render(lastSeenLabel(record.LastSeen, opts.Now)),
		))
	}

	if hidden := len(rep.Activity) - len(shown); hidden > 0 {
		parts = append(parts, s.empty.Render(fmt.Sprintf("… and %d more", hidden)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func renderCoverage(rep application.Report, s styles) string {
	parts := []string{s.heading.Render("Minimum necessary relays to reach all followers")}

	if len(rep.Coverage.SelectedRelays) == 0 {
		parts = append(parts, s.empty.Render("No follower declares any relay."))
	}

	counts := make(map[string]int, len(rep.Ranking))
	for _, usage := range rep.Ranking {
		counts[string(usage.Relay)] = usage.FollowerCount
	}

	for i, relay := range rep.Coverage.SelectedRelays {
		parts = append(parts, fmt.Sprintf("%s %s %s",
			s.position.Render(fmt.Sprintf("%2d.", i+1)),
			s.relay.Render(string(relay)),
			s.count.Render(fmt.Sprintf("(%d followers)", counts[string(relay)])),
		))
	}

	if n := len(rep.Coverage.Uncovered); n > 0 {
		parts = append(parts, s.warning.Render(fmt.Sprintf("%d followers declare no relays and cannot be reached", n)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func renderRanking(rep application.Report, s styles) string {
	parts := []string{s.heading.Render("Relays of followers")}

	if len(rep.Ranking) == 0 {
		parts = append(parts, s.empty.Render("No relays found."))
		return lipgloss.JoinVertical(lipgloss.Left, parts...)
	}

	for _, usage := range rep.Ranking {
		parts = append(parts, fmt.Sprintf("%s %s",
			s.count.Render(fmt.Sprintf("%5d", usage.FollowerCount)),
			s.relay.Render(string(usage.Relay)),
		))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func shortIdentity(hex string) string {
	if len(hex) <= 16 {
		return hex
	}
	return hex[:8] + "…" + hex[len(hex)-8:]
}

func lastSeenLabel(lastSeen, now time.Time) string {
	if lastSeen.IsZero() {
		return ""
	}
	if now.IsZero() {
		return lastSeen.UTC().Format(time.RFC3339)
	}

	age := now.Sub(lastSeen)
	switch {
	case age < time.Minute:
		return "just now"
	case age < time.Hour:
		return fmt.Sprintf("%dm ago", int(age.Minutes()))
	case age < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(age.Hours()))
	default:
		return fmt.Sprintf("%dd ago", int(age.Hours()/24))
	}
}
