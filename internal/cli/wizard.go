package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/tenement/internal/cli/formatter"
	"github.com/alexanderramin/tenement/internal/form"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// confirmDeleteTitle is the question asked before any delete.
const confirmDeleteTitle = "確定要刪除嗎?"

// errNeedsConfirm is returned by destructive commands run without a
// terminal and without --yes.
var errNeedsConfirm = errors.New("refusing to delete without confirmation; pass --yes")

// tenementHuhTheme returns a custom huh theme using the existing Gruvbox palette.
func tenementHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(formatter.ColorRed)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

func newForm(groups ...*huh.Group) *huh.Form {
	return huh.NewForm(groups...).WithTheme(tenementHuhTheme()).WithShowHelp(false)
}

// loginForm asks for the account email and password.
func loginForm(email, password *string) *huh.Form {
	required := func(label string) func(string) error {
		return func(s string) error {
			if strings.TrimSpace(s) == "" {
				return fmt.Errorf("請輸入%s", label)
			}
			return nil
		}
	}
	return newForm(huh.NewGroup(
		huh.NewInput().Title("帳號").Placeholder("name@example.com").Value(email).Validate(required("帳號")),
		huh.NewInput().Title("密碼").EchoMode(huh.EchoModePassword).Value(password).Validate(required("密碼")),
	))
}

// confirmForm creates a huh form for a yes/no confirmation.
func confirmForm(title string, result *bool) *huh.Form {
	return newForm(huh.NewGroup(
		huh.NewConfirm().
			Title(title).
			Affirmative("確定").
			Negative("取消").
			Value(result),
	))
}

// alertForm shows msg and waits for the user to dismiss it.
func alertForm(msg string) *huh.Form {
	return newForm(huh.NewGroup(
		huh.NewNote().Title(msg).Next(true).NextLabel("確定"),
	))
}

// recordForm offers one input per field. values is filled with the
// current draft and read back after the form completes. Fields holding a
// too-short value show the length rule as their description; it does not
// block submission.
func recordForm(title string, fields []string, values map[string]*string) *huh.Form {
	const perGroup = 8
	var groups []*huh.Group
	for start := 0; start < len(fields); start += perGroup {
		end := min(start+perGroup, len(fields))
		inputs := make([]huh.Field, 0, end-start)
		for _, name := range fields[start:end] {
			in := huh.NewInput().Title(name).Value(values[name])
			if form.InError(*values[name]) {
				in = in.Description(fmt.Sprintf("至少需要 %d 個字", form.MinLength))
			}
			inputs = append(inputs, in)
		}
		g := huh.NewGroup(inputs...)
		if start == 0 {
			g = g.Title(title)
		}
		groups = append(groups, g)
	}
	return newForm(groups...)
}

// confirmDelete asks before a delete. yes skips the question; without a
// terminal the answer must come from yes.
func confirmDelete(ctx context.Context, app *App, yes bool) error {
	if yes {
		return nil
	}
	if !app.interactive() {
		return errNeedsConfirm
	}
	ok := false
	if err := confirmForm(confirmDeleteTitle, &ok).RunWithContext(ctx); err != nil {
		return err
	}
	if !ok {
		return errCanceled
	}
	return nil
}

// errCanceled is returned when the user backs out of a prompt.
var errCanceled = errors.New("canceled")
