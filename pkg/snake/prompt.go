// Package snake walks the user through the fields of a new task with
// promptui prompts.
package snake

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/manifoldco/promptui"

	"tableflip.dev/tasklists/pkg/dates"
	"tableflip.dev/tasklists/pkg/glyph"
	"tableflip.dev/tasklists/pkg/state"
	"tableflip.dev/tasklists/pkg/task"
)

// Wizard prompts for a task. Stdin and Stdout default to the terminal.
type Wizard struct {
	Lists  []*task.List
	Now    time.Time
	Stdin  io.ReadCloser
	Stdout io.WriteCloser
}

// PromptTask asks for the name, list, icon, due date and due time. Values
// already set on in are used as defaults.
func (w *Wizard) PromptTask(in state.TaskInput) (state.TaskInput, error) {
	var err error
	if in.Name, err = w.promptString("Name", in.Name, nil); err != nil {
		return in, err
	}
	if in.ListID, err = w.selectList(in.ListID); err != nil {
		return in, err
	}
	if in.Icon, err = w.selectIcon(in.Icon); err != nil {
		return in, err
	}

	due, err := w.promptString("Due (today, tomorrow, 3d, 2024-05-01, none)", in.DueDate, ValidateDue(w.Now))
	if err != nil {
		return in, err
	}
	if in.DueDate, err = dates.ParseDue(due, w.Now); err != nil {
		return in, err
	}
	if in.DueTime, err = w.promptString("Time (HH:MM, optional)", in.DueTime, ValidateTime); err != nil {
		return in, err
	}
	return in, nil
}

func (w *Wizard) promptString(label, def string, validate promptui.ValidateFunc) (string, error) {
	templates := &promptui.PromptTemplates{
		Prompt:  "{{ . }}: ",
		Valid:   "{{ . | green }}: ",
		Invalid: "{{ . | red }}: ",
		Success: "{{ . | bold }}: ",
	}

	prompt := promptui.Prompt{
		Label:     label,
		Default:   def,
		AllowEdit: true,
		Templates: templates,
		Validate:  validate,
		Stdin:     w.Stdin,
		Stdout:    w.Stdout,
	}
	result, err := prompt.Run()
	if err != nil {
		return "", fmt.Errorf("prompt %s: %w", strings.ToLower(label), err)
	}
	return strings.TrimSpace(result), nil
}

func (w *Wizard) selectList(current string) (string, error) {
	if len(w.Lists) == 0 {
		return task.UncategorizedID, nil
	}
	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}?",
		Active:   "➜  {{ .Name | bold }} {{ .ID | faint }}",
		Inactive: "   {{ .Name }}",
		Selected: "List: {{ .Name | bold }}",
	}

	prompt := promptui.Select{
		HideHelp:  true,
		Label:     "List",
		Items:     w.Lists,
		Templates: templates,
		Size:      10,
		CursorPos: indexOfList(w.Lists, current),
		Searcher:  ListSearcher(w.Lists),
		Stdin:     w.Stdin,
		Stdout:    w.Stdout,
	}
	i, _, err := prompt.Run()
	if err != nil {
		return "", fmt.Errorf("prompt list: %w", err)
	}
	return w.Lists[i].ID, nil
}

func (w *Wizard) selectIcon(current string) (string, error) {
	icons := glyph.TaskIcons()
	cursor := 0
	for i, g := range icons {
		if g.Icon == glyph.Normalize(current) {
			cursor = i
		}
	}
	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}?",
		Active:   "➜  {{ .Symbol }} {{ .Meaning | bold }}",
		Inactive: "   {{ .Symbol }} {{ .Meaning }}",
		Selected: "Icon: {{ .Symbol }} {{ .Meaning | bold }}",
	}

	prompt := promptui.Select{
		HideHelp:  true,
		Label:     "Icon",
		Items:     icons,
		Templates: templates,
		Size:      10,
		CursorPos: cursor,
		Stdin:     w.Stdin,
		Stdout:    w.Stdout,
	}
	i, _, err := prompt.Run()
	if err != nil {
		return "", fmt.Errorf("prompt icon: %w", err)
	}
	return icons[i].Icon, nil
}

// ListSearcher matches list names ignoring case and spaces.
func ListSearcher(lists []*task.List) func(string, int) bool {
	return func(input string, index int) bool {
		name := strings.Replace(strings.ToLower(lists[index].Name), " ", "", -1)
		input = strings.Replace(strings.ToLower(input), " ", "", -1)

		return strings.Contains(name, input)
	}
}

// ValidateDue accepts anything dates.ParseDue understands.
func ValidateDue(now time.Time) promptui.ValidateFunc {
	return func(input string) error {
		_, err := dates.ParseDue(input, now)
		return err
	}
}

// ValidateTime accepts an empty string or HH:MM.
func ValidateTime(input string) error {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil
	}
	if _, err := time.Parse("15:04", input); err != nil {
		return errors.New("expected HH:MM")
	}
	return nil
}

func indexOfList(lists []*task.List, id string) int {
	for i, l := range lists {
		if l.ID == id {
			return i
		}
	}
	return 0
}
