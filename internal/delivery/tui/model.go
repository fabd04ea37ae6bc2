// Package tui renders the receive money screen in a terminal.
package tui

import (
	"context"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Xausdorf/vietqr-receive/internal/domain/platform"
	"github.com/Xausdorf/vietqr-receive/internal/usecase/receive"
)

const cardWidth = 48

const (
	fieldAmount = iota
	fieldMemo
	fieldCount
)

// QRRenderer turns the image URL into terminal text.
type QRRenderer interface {
	Text(content string, inverse bool) (string, error)
}

// notice is the Notifier handed to the view; the model shows its message
// as a modal until the next key press.
type notice struct {
	message string
}

func (n *notice) Notify(_ context.Context, message string) {
	n.message = message
}

type Model struct {
	ctx    context.Context
	logger *slog.Logger

	view   *receive.View
	notice *notice
	qr     QRRenderer

	inputs [fieldCount]textinput.Model
	focus  int

	copyErr string
	keys    keyMap
	styles  styles
}

var _ platform.Notifier = (*notice)(nil)

func New(ctx context.Context, props receive.Props, clipboard platform.Clipboard, qr QRRenderer, logger *slog.Logger) Model {
	if logger == nil {
		logger = slog.Default()
	}

	n := &notice{}
	view := receive.NewView(props, clipboard, n)

	amount := textinput.New()
	amount.Placeholder = props.Translations.Receive.AmountPlace
	amount.Prompt = ""

	memo := textinput.New()
	memo.Placeholder = props.Translations.Receive.Placeholder
	memo.Prompt = ""
	memo.CharLimit = 140

	m := Model{
		ctx:    ctx,
		logger: logger,
		view:   view,
		notice: n,
		qr:     qr,
		inputs: [fieldCount]textinput.Model{amount, memo},
		keys:   defaultKeyMap(),
		styles: newStyles(props.Theme),
	}
	m.inputs[fieldAmount].Focus()
	return m
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Receive exposes the underlying view state.
func (m Model) Receive() *receive.View {
	return m.view
}

func (m Model) Notice() string {
	return m.notice.message
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.updateFocused(msg)
	}

	if key.Matches(keyMsg, m.keys.Quit) {
		return m, tea.Quit
	}

	// The confirmation blocks until dismissed.
	if m.notice.message != "" {
		m.notice.message = ""
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Back):
		m.view.Back()
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Copy):
		m.copyErr = ""
		if err := m.view.Copy(m.ctx); err != nil {
			m.logger.Warn("copy qr url failed", "error", err)
			m.copyErr = err.Error()
		}
		return m, nil
	case key.Matches(keyMsg, m.keys.Next):
		cmd := m.setFocus((m.focus + 1) % fieldCount)
		return m, cmd
	case key.Matches(keyMsg, m.keys.Prev):
		cmd := m.setFocus((m.focus + fieldCount - 1) % fieldCount)
		return m, cmd
	}

	return m.updateFocused(msg)
}

func (m *Model) setFocus(i int) tea.Cmd {
	m.inputs[m.focus].Blur()
	m.focus = i
	return m.inputs[m.focus].Focus()
}

func (m Model) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)

	switch m.focus {
	case fieldAmount:
		formatted := m.view.SetAmount(m.inputs[fieldAmount].Value())
		if formatted != m.inputs[fieldAmount].Value() {
			m.inputs[fieldAmount].SetValue(formatted)
			m.inputs[fieldAmount].CursorEnd()
		}
	case fieldMemo:
		m.view.SetMemo(m.inputs[fieldMemo].Value())
	}

	return m, cmd
}

func (m Model) View() string {
	t := m.view.Props().Translations.Receive
	s := m.styles

	header := s.header.Render("‹ " + t.Title)

	var card []string

	url := m.view.QRURL()
	if qr, err := m.qr.Text(url, !m.view.IsDark()); err == nil {
		card = append(card, s.qr.Render(strings.TrimRight(qr, "\n")))
	} else {
		card = append(card, s.err.Render(err.Error()))
	}

	gap := cardWidth - 4 - lipgloss.Width("napas247") - lipgloss.Width("Vietcombank")
	card = append(card,
		s.marks.Render(s.napas.Render("napas247")+strings.Repeat(" ", max(gap, 1))+s.bank.Render("Vietcombank")),
		"",
		s.name.Render(m.view.AccountName()),
		s.muted.Render(t.BankName),
	)
	if label := m.view.AmountLabel(); label != "" {
		card = append(card, label)
	}
	card = append(card, "")

	for i := range m.inputs {
		style := s.input
		if i == m.focus {
			style = s.focused
		}
		card = append(card, style.Render(m.inputs[i].View()))
	}

	card = append(card, "", s.button.Render("⧉ "+t.Copy))
	if m.copyErr != "" {
		card = append(card, s.err.Render(m.copyErr))
	}

	parts := []string{header, s.card.Render(lipgloss.JoinVertical(lipgloss.Center, card...))}
	if m.notice.message != "" {
		parts = append(parts, s.modal.Render(m.notice.message))
	}
	parts = append(parts, s.help.Render(m.helpLine()), s.muted.Render(url))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) helpLine() string {
	var b strings.Builder
	for i, k := range m.keys.help() {
		if i > 0 {
			b.WriteString(" • ")
		}
		b.WriteString(k.Help().Key + " " + k.Help().Desc)
	}
	return b.String()
}
