package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"healthchat/internal/client/models"
)

var (
	userLabelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	assistantLabelStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("135"))

	metaStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	contentStyle = lipgloss.NewStyle().
			PaddingLeft(2)
)

func renderMessage(m models.ChatMessage) string {
	label := assistantLabelStyle.Render("assistant")
	if m.IsUserMessage {
		label = userLabelStyle.Render("you")
	}
	meta := metaStyle.Render(m.CreatedAt.Format("15:04"))
	return fmt.Sprintf("%s %s\n%s", label, meta, contentStyle.Render(m.Content))
}

func renderSessionLine(s models.ChatSession) string {
	title := s.Title
	if title == "" {
		title = "(untitled)"
	}
	meta := metaStyle.Render(fmt.Sprintf("updated %s, %d messages",
		s.UpdatedAt.Format("2006-01-02 15:04"), s.MessageCount))
	return fmt.Sprintf("#%d  %s  %s", s.ID, title, meta)
}

func renderSessionList(list *models.SessionList) string {
	if len(list.Sessions) == 0 {
		return "No sessions yet."
	}
	lines := make([]string, 0, len(list.Sessions)+1)
	for _, s := range list.Sessions {
		lines = append(lines, renderSessionLine(s))
	}
	lines = append(lines, metaStyle.Render(fmt.Sprintf("%d total", list.Total)))
	return strings.Join(lines, "\n")
}

func renderHistory(h *models.SessionHistory) string {
	lines := make([]string, 0, len(h.Messages)+1)
	lines = append(lines, renderSessionLine(h.Session))
	for _, m := range h.Messages {
		lines = append(lines, renderMessage(m))
	}
	return strings.Join(lines, "\n")
}

func renderProfile(u *models.User) string {
	lines := []string{
		fmt.Sprintf("%s <%s>", u.Username, u.Email),
		metaStyle.Render(fmt.Sprintf("member since %s", u.CreatedAt.Format("2006-01-02"))),
	}
	if u.FullName != "" {
		lines = append(lines, "full name: "+u.FullName)
	}
	if u.Age != 0 {
		lines = append(lines, fmt.Sprintf("age: %d", u.Age))
	}
	if u.Gender != "" {
		lines = append(lines, "gender: "+u.Gender)
	}
	if u.BloodType != "" {
		lines = append(lines, "blood type: "+u.BloodType)
	}
	return strings.Join(lines, "\n")
}
