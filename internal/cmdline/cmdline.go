// Package cmdline holds the externalised command line, its block of
// previous lines and the wildmenu shown under it.
package cmdline

import (
	"strings"
	"unicode/utf8"

	"github.com/atomicstack/nvim-ui-mirror/internal/font"
	"github.com/atomicstack/nvim-ui-mirror/internal/highlight"
	"github.com/atomicstack/nvim-ui-mirror/internal/redraw"
	"github.com/atomicstack/nvim-ui-mirror/internal/theme"
	"github.com/charmbracelet/lipgloss"
)

// Cmdline is the command line state.
type Cmdline struct {
	font      font.Font
	lineSpace int

	visible   bool
	content   []redraw.Chunk
	pos       int
	firstChar string
	prompt    string
	indent    int
	level     int

	special      string
	specialShift bool

	block        [][]redraw.Chunk
	blockVisible bool

	wildItems    []redraw.PopupmenuItem
	wildSelected int
	wildVisible  bool

	style        lipgloss.Style
	border       lipgloss.Style
	wildStyle    lipgloss.Style
	wildSelStyle lipgloss.Style
}

func New(f font.Font, lineSpace int) *Cmdline {
	return &Cmdline{
		font:         f,
		lineSpace:    lineSpace,
		wildSelected: -1,
		style:        lipgloss.NewStyle(),
		border:       lipgloss.NewStyle().Border(lipgloss.NormalBorder()),
		wildStyle:    lipgloss.NewStyle(),
		wildSelStyle: lipgloss.NewStyle().Reverse(true),
	}
}

// Show replaces the content of the given level.
func (c *Cmdline) Show(evt redraw.CmdlineShow) {
	c.content = evt.Content
	c.pos = evt.Pos
	c.firstChar = evt.FirstChar
	c.prompt = evt.Prompt
	c.indent = evt.Indent
	c.level = evt.Level
	c.special = ""
	c.visible = true
}

func (c *Cmdline) Hide() {
	c.visible = false
	c.special = ""
}

func (c *Cmdline) Visible() bool {
	return c.visible
}

// SetPos moves the cursor. A different level than the one shown is
// ignored.
func (c *Cmdline) SetPos(pos, level int) {
	if level != c.level {
		return
	}
	c.pos = pos
	c.special = ""
}

// SpecialChar shows char at the cursor until the next content update.
// With shift the text after the cursor moves right.
func (c *Cmdline) SpecialChar(char string, shift bool, level int) {
	if level != c.level {
		return
	}
	c.special = char
	c.specialShift = shift
}

func (c *Cmdline) BlockShow(lines [][]redraw.Chunk) {
	c.block = lines
	c.blockVisible = true
}

func (c *Cmdline) BlockAppend(line []redraw.Chunk) {
	c.block = append(c.block, line)
}

func (c *Cmdline) BlockHide() {
	c.block = nil
	c.blockVisible = false
}

// Block returns the block lines as plain text.
func (c *Cmdline) Block() []string {
	out := make([]string, len(c.block))
	for i, l := range c.block {
		out[i] = chunksText(l)
	}
	return out
}

// Text returns the line as displayed, including the prefix and any
// pending special character.
func (c *Cmdline) Text() string {
	body := chunksText(c.content)
	if c.special != "" {
		pos := min(max(c.pos, 0), len(body))
		rest := body[pos:]
		if !c.specialShift && rest != "" {
			_, size := utf8.DecodeRuneInString(rest)
			rest = rest[size:]
		}
		body = body[:pos] + c.special + rest
	}
	return c.firstChar + c.prompt + strings.Repeat(" ", c.indent) + body
}

// Cursor returns the byte position of the cursor in the content and the
// nesting level.
func (c *Cmdline) Cursor() (pos, level int) {
	return c.pos, c.level
}

func (c *Cmdline) WildmenuShow(items []redraw.PopupmenuItem) {
	c.wildItems = items
	c.wildSelected = -1
	c.wildVisible = true
}

// WildmenuSelect marks item i; -1 clears the selection.
func (c *Cmdline) WildmenuSelect(i int) {
	if i < 0 || i >= len(c.wildItems) {
		c.wildSelected = -1
		return
	}
	c.wildSelected = i
}

func (c *Cmdline) WildmenuHide() {
	c.wildVisible = false
	c.wildItems = nil
	c.wildSelected = -1
}

func (c *Cmdline) Wildmenu() (items []redraw.PopupmenuItem, selected int, visible bool) {
	return c.wildItems, c.wildSelected, c.wildVisible
}

func (c *Cmdline) SetFont(f font.Font) {
	c.font = f
}

func (c *Cmdline) SetLineSpace(lineSpace int) {
	c.lineSpace = lineSpace
}

func (c *Cmdline) Font() (font.Font, int) {
	return c.font, c.lineSpace
}

// SetColors re-reads the cmdline roles from hl.
func (c *Cmdline) SetColors(hl *highlight.Table) {
	c.style = theme.Role(hl, highlight.GroupCmdline)
	c.border = c.style.
		Border(lipgloss.NormalBorder()).
		BorderForeground(theme.Color(hl.GroupBg(highlight.GroupCmdlineBorder)))
}

// WildmenuSetColors re-reads the wildmenu roles from hl.
func (c *Cmdline) WildmenuSetColors(hl *highlight.Table) {
	c.wildStyle = theme.Role(hl, highlight.GroupWildmenu)
	c.wildSelStyle = theme.Role(hl, highlight.GroupWildmenuSel)
}

// Render draws the block, the command line and the wildmenu.
func (c *Cmdline) Render(width int) string {
	if !c.visible && !c.blockVisible {
		return ""
	}
	lines := append([]string{}, c.Block()...)
	if c.visible {
		lines = append(lines, c.Text())
	}
	box := c.border.Width(max(width-2, 1)).Render(c.style.Render(strings.Join(lines, "\n")))
	if !c.wildVisible || len(c.wildItems) == 0 {
		return box
	}
	wild := make([]string, len(c.wildItems))
	for i, it := range c.wildItems {
		s := c.wildStyle
		if i == c.wildSelected {
			s = c.wildSelStyle
		}
		wild[i] = s.Render(it.Word)
	}
	return lipgloss.JoinVertical(lipgloss.Left, box, strings.Join(wild, "\n"))
}

func chunksText(chunks []redraw.Chunk) string {
	var b strings.Builder
	for _, ch := range chunks {
		b.WriteString(ch.Text)
	}
	return b.String()
}
