// Package url builds the wallpaper link a phone automation fetches each day.
package url

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/manifoldco/promptui"

	"tableflip.dev/dotcal/pkg/date"
	"tableflip.dev/dotcal/pkg/grid"
	"tableflip.dev/dotcal/pkg/params"
	"tableflip.dev/dotcal/pkg/theme"
)

// URL prints Request as a link under Base. With Interactive set it first asks
// for the view, screen and theme.
type URL struct {
	Request     params.Request
	Base        string
	Interactive bool

	Stdin  io.ReadCloser
	Stdout io.WriteCloser
}

type choice struct {
	Name   string
	Detail string
}

func (u *URL) Do(ctx context.Context) error {
	if u.Interactive {
		if err := u.prompt(); err != nil {
			return err
		}
	}
	if u.Request.Width <= 0 || u.Request.Height <= 0 {
		return params.ErrDimensions
	}

	base := u.Base
	if base == "" {
		base = "http://127.0.0.1:8080"
	}
	out := io.Writer(os.Stdout)
	if u.Stdout != nil {
		out = u.Stdout
	}
	_, err := fmt.Fprintln(out, u.Request.URL(base))
	return err
}

func (u *URL) prompt() error {
	views := grid.Views()
	items := make([]choice, 0, len(views))
	for _, v := range views {
		items = append(items, choice{Name: string(v), Detail: v.Description()})
	}
	i, err := u.selectOne("View", items)
	if err != nil {
		return err
	}
	u.Request.View = views[i]

	screens := params.Screens()
	items = items[:0]
	for _, s := range screens {
		items = append(items, choice{Name: s.Name, Detail: fmt.Sprintf("%dx%d", s.Width, s.Height)})
	}
	if i, err = u.selectOne("Screen", items); err != nil {
		return err
	}
	u.Request.Width, u.Request.Height = screens[i].Width, screens[i].Height

	names := theme.Names()
	items = items[:0]
	for _, n := range names {
		items = append(items, choice{Name: string(n), Detail: theme.Base(n).Background.Hex()})
	}
	if i, err = u.selectOne("Theme", items); err != nil {
		return err
	}
	u.Request.Theme = names[i]

	switch u.Request.View {
	case grid.Months, grid.Quarters:
		items = []choice{{Name: "monday"}, {Name: "sunday"}}
		if i, err = u.selectOne("Week starts on", items); err != nil {
			return err
		}
		u.Request.WeekStart, _ = date.ParseWeekStart(items[i].Name)
	case grid.Life:
		if u.Request.Birthday, err = u.askDate("Birthday", u.Request.Birthday); err != nil {
			return err
		}
	case grid.Goal:
		if u.Request.GoalStart, err = u.askDate("Goal start", u.Request.GoalStart); err != nil {
			return err
		}
		if u.Request.GoalEnd, err = u.askDate("Goal end", u.Request.GoalEnd); err != nil {
			return err
		}
		title, err := u.ask("Goal title", u.Request.GoalTitle, nil)
		if err != nil {
			return err
		}
		u.Request.GoalTitle = title
	}
	return nil
}

func (u *URL) selectOne(label string, items []choice) (int, error) {
	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}?",
		Active:   "➜  {{ .Name | bold }} {{ .Detail | green }}",
		Inactive: "   {{ .Name }} {{ .Detail | cyan }}",
		Selected: "{{ .Name | bold }}",
	}

	searcher := func(input string, index int) bool {
		name := strings.Replace(strings.ToLower(items[index].Name), " ", "", -1)
		input = strings.Replace(strings.ToLower(input), " ", "", -1)
		return strings.Contains(name, input)
	}

	prompt := promptui.Select{
		HideHelp:  true,
		Label:     label,
		Items:     items,
		Templates: templates,
		Size:      10,
		Searcher:  searcher,
		Stdin:     u.Stdin,
		Stdout:    u.Stdout,
	}
	i, _, err := prompt.Run()
	if err != nil {
		return 0, fmt.Errorf("url: %s: %w", strings.ToLower(label), err)
	}
	return i, nil
}

func (u *URL) ask(label, def string, validate promptui.ValidateFunc) (string, error) {
	templates := &promptui.PromptTemplates{
		Prompt:  "{{ . }} : ",
		Valid:   "{{ . | green }} : ",
		Invalid: "{{ . | red }} : ",
		Success: "{{ . | bold }} : ",
	}
	prompt := promptui.Prompt{
		Label:     label,
		Default:   def,
		Templates: templates,
		Validate:  validate,
		Stdin:     u.Stdin,
		Stdout:    u.Stdout,
	}
	result, err := prompt.Run()
	if err != nil {
		return "", fmt.Errorf("url: %s: %w", strings.ToLower(label), err)
	}
	if result == "" {
		result = def
	}
	return result, nil
}

func (u *URL) askDate(label string, def date.Date) (date.Date, error) {
	validate := func(input string) error {
		if input == "" {
			return nil
		}
		if _, err := date.Parse(input); err != nil {
			return errors.New("expected YYYY-MM-DD")
		}
		return nil
	}
	s, err := u.ask(label, def.String(), validate)
	if err != nil {
		return date.Date{}, err
	}
	return date.Parse(s)
}
