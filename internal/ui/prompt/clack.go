package prompt

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/raphi011/clack/internal/ui/styles"
)

const cancelledMessage = "Operation cancelled."

// Clack formats prompts in the clack layout: a vertical bar joining the
// prompts, a state symbol before the question and the input below it.
//
//	│
//	◆  What is your name?
//	│  Ada
//	└
type Clack struct{}

// Format implements Formatter.
func (c Clack) Format(v View) Frame {
	var b strings.Builder
	sym := styles.CurrentSymbols()
	bar := barStyle(v.State)

	b.WriteString(styles.MutedStyle.Render(sym.Bar) + "\n")
	b.WriteString(stateSymbol(v.State) + "  " + v.Prompt + "\n")

	for _, line := range c.body(v) {
		b.WriteString(bar.Render(sym.Bar) + "  " + line + "\n")
	}

	switch {
	case v.State.Outcome == Submitted:
		b.WriteString(bar.Render(sym.Bar) + "\n")
	case v.State.Outcome == Cancelled:
		b.WriteString(bar.Render(sym.BarEnd+"  "+cancelledMessage) + "\n")
	case v.State.Error != "":
		b.WriteString(bar.Render(sym.BarEnd+"  "+v.State.Error) + "\n")
	default:
		b.WriteString(bar.Render(sym.BarEnd) + "\n")
	}

	return NewFrame(b.String(), v.Width)
}

// body returns the lines between the prompt and the footer.
func (c Clack) body(v View) []string {
	switch v.Kind {
	case KindConfirm:
		return []string{c.confirm(v)}
	case KindSelect, KindMultiSelect:
		return c.list(v)
	default:
		return []string{c.text(v)}
	}
}

func (c Clack) text(v View) string {
	text := v.Text
	if v.Kind == KindPassword {
		text = strings.Repeat(string(v.Mask), len([]rune(v.Text)))
	}

	switch v.State.Outcome {
	case Submitted:
		return styles.MutedStyle.Render(text)
	case Cancelled:
		if text == "" {
			return ""
		}
		return styles.StrikeStyle.Render(text)
	}

	if text == "" && v.Placeholder != "" {
		ph := []rune(v.Placeholder)
		return styles.CursorStyle.Render(string(ph[0])) + styles.MutedStyle.Render(string(ph[1:]))
	}
	return withCursor(text, v.Cursor)
}

// withCursor draws the rune at cursor in reverse video, or a block past the end.
func withCursor(text string, cursor int) string {
	runes := []rune(text)
	if cursor >= len(runes) {
		return text + styles.CursorStyle.Render(" ")
	}
	return string(runes[:cursor]) +
		styles.CursorStyle.Render(string(runes[cursor])) +
		string(runes[cursor+1:])
}

func (c Clack) confirm(v View) string {
	answer := "No"
	if v.Confirmed {
		answer = "Yes"
	}

	switch v.State.Outcome {
	case Submitted:
		return styles.MutedStyle.Render(answer)
	case Cancelled:
		return styles.StrikeStyle.Render(answer)
	}

	sym := styles.CurrentSymbols()
	yes := styles.SuccessStyle.Render(sym.RadioActive) + " Yes"
	no := styles.MutedStyle.Render(sym.RadioInactive + " No")
	if !v.Confirmed {
		yes = styles.MutedStyle.Render(sym.RadioInactive + " Yes")
		no = styles.SuccessStyle.Render(sym.RadioActive) + " No"
	}
	return yes + styles.MutedStyle.Render(" / ") + no
}

func (c Clack) list(v View) []string {
	switch v.State.Outcome {
	case Submitted, Cancelled:
		style := styles.MutedStyle
		if v.State.Outcome == Cancelled {
			style = styles.StrikeStyle
		}
		labels := c.chosen(v)
		if labels == "" {
			return []string{""}
		}
		return []string{style.Render(labels)}
	}

	sym := styles.CurrentSymbols()
	var lines []string

	if v.Filtering {
		lines = append(lines, styles.MutedStyle.Render("/ ")+withCursor(v.Filter, len([]rune(v.Filter))))
		if len(v.Items) == 0 {
			lines = append(lines, styles.MutedStyle.Render("No matching items"))
		}
	}

	for i, it := range v.Items {
		active := i == v.Cursor
		lines = append(lines, c.item(v.Kind, sym, it, active))
	}
	return lines
}

// chosen returns the labels of the final answer.
func (c Clack) chosen(v View) string {
	if v.Kind == KindSelect {
		if v.Cursor < len(v.Items) {
			return v.Items[v.Cursor].Label
		}
		return ""
	}
	var labels []string
	for _, it := range v.Items {
		if it.Checked {
			labels = append(labels, it.Label)
		}
	}
	return strings.Join(labels, ", ")
}

func (c Clack) item(kind Kind, sym styles.Symbols, it ItemView, active bool) string {
	base := styles.MutedStyle
	if active {
		base = styles.AccentStyle
	}
	label := highlight(it.Label, it.Matched, base)
	if active && it.Hint != "" {
		label += " " + styles.MutedStyle.Render("("+it.Hint+")")
	}

	if kind == KindSelect {
		if active {
			return styles.SuccessStyle.Render(sym.RadioActive) + " " + label
		}
		return styles.MutedStyle.Render(sym.RadioInactive) + " " + label
	}

	var box string
	switch {
	case it.Checked:
		box = styles.SuccessStyle.Render(sym.CheckboxSelected)
	case active:
		box = styles.PrimaryStyle.Render(sym.CheckboxActive)
	default:
		box = styles.MutedStyle.Render(sym.CheckboxInactive)
	}
	return box + " " + label
}

// highlight renders the runes of label starting at the byte offsets in
// matched with HighlightStyle and the runs between them with base.
func highlight(label string, matched []int, base lipgloss.Style) string {
	if len(matched) == 0 {
		return base.Render(label)
	}
	hit := make(map[int]bool, len(matched))
	for _, i := range matched {
		hit[i] = true
	}

	var b, run strings.Builder
	runHit := false
	flush := func() {
		if run.Len() == 0 {
			return
		}
		if runHit {
			b.WriteString(styles.HighlightStyle.Render(run.String()))
		} else {
			b.WriteString(base.Render(run.String()))
		}
		run.Reset()
	}
	for i, r := range label {
		if hit[i] != runHit {
			flush()
			runHit = hit[i]
		}
		run.WriteRune(r)
	}
	flush()
	return b.String()
}

func barStyle(st State) lipgloss.Style {
	switch {
	case st.Outcome == Submitted:
		return styles.MutedStyle
	case st.Outcome == Cancelled:
		return styles.ErrorStyle
	case st.Error != "":
		return styles.WarningStyle
	default:
		return styles.PrimaryStyle
	}
}

func stateSymbol(st State) string {
	sym := styles.CurrentSymbols()
	switch {
	case st.Outcome == Submitted:
		return styles.SuccessStyle.Render(sym.StepSubmit)
	case st.Outcome == Cancelled:
		return styles.ErrorStyle.Render(sym.StepCancel)
	case st.Error != "":
		return styles.WarningStyle.Render(sym.StepError)
	default:
		return styles.PrimaryStyle.Render(sym.StepActive)
	}
}

// Intro formats the header of a prompt session.
func (c Clack) Intro(title string) string {
	sym := styles.CurrentSymbols()
	return styles.MutedStyle.Render(sym.BarStart) + "  " + title + "\n"
}

// Outro formats the footer of a prompt session.
func (c Clack) Outro(msg string) string {
	sym := styles.CurrentSymbols()
	return styles.MutedStyle.Render(sym.Bar) + "\n" +
		styles.MutedStyle.Render(sym.BarEnd) + "  " + msg + "\n\n"
}

// OutroCancel formats the footer of an aborted session.
func (c Clack) OutroCancel(msg string) string {
	sym := styles.CurrentSymbols()
	return styles.MutedStyle.Render(sym.Bar) + "\n" +
		styles.ErrorStyle.Render(sym.BarEnd+"  "+msg) + "\n\n"
}

// Log formats a message after a styled symbol. Extra lines are indented
// under the first.
func (c Clack) Log(text, symbol string) string {
	sym := styles.CurrentSymbols()
	bar := styles.MutedStyle.Render(sym.Bar)

	var b strings.Builder
	b.WriteString(bar + "\n")
	for i, line := range strings.Split(text, "\n") {
		if i == 0 {
			b.WriteString(symbol + "  " + line + "\n")
		} else {
			b.WriteString(bar + "  " + line + "\n")
		}
	}
	return b.String()
}

// Note formats msg in a box titled title.
func (c Clack) Note(title, msg string) string {
	sym := styles.CurrentSymbols()
	bar := styles.MutedStyle.Render(sym.Bar)
	lines := strings.Split(msg, "\n")

	width := lipgloss.Width(title)
	for _, line := range lines {
		width = max(width, lipgloss.Width(line))
	}

	var b strings.Builder
	b.WriteString(bar + "\n")
	b.WriteString(styles.SuccessStyle.Render(sym.StepSubmit) + "  " + title + " " +
		styles.MutedStyle.Render(strings.Repeat(sym.BarH, width-lipgloss.Width(title)+1)+sym.CornerTopRight) + "\n")

	empty := bar + strings.Repeat(" ", width+4) + bar + "\n"
	b.WriteString(empty)
	for _, line := range lines {
		pad := strings.Repeat(" ", width-lipgloss.Width(line))
		b.WriteString(bar + "  " + styles.MutedStyle.Render(line) + pad + "  " + bar + "\n")
	}
	b.WriteString(empty)

	b.WriteString(styles.MutedStyle.Render(sym.ConnectLeft+strings.Repeat(sym.BarH, width+4)+sym.CornerBottomRight) + "\n")
	return b.String()
}
