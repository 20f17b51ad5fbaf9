// Package highlight keeps the highlight definitions sent by the editor and
// the small set of semantic roles the auxiliary surfaces style themselves
// from.
package highlight

// Highlight is one hl_attr_define entry. Nil colours fall back to the
// table defaults.
type Highlight struct {
	Foreground    *Color
	Background    *Color
	Special       *Color
	Reverse       bool
	Italic        bool
	Bold          bool
	Underline     bool
	Undercurl     bool
	Strikethrough bool
	Blend         int
}

// Resolved is a highlight with defaults and reverse applied.
type Resolved struct {
	Fg            Color
	Bg            Color
	Sp            Color
	Italic        bool
	Bold          bool
	Underline     bool
	Undercurl     bool
	Strikethrough bool
}

// Group is a semantic role used by the auxiliary surfaces.
type Group int

const (
	GroupPmenu Group = iota
	GroupPmenuSel
	GroupWildmenu
	GroupWildmenuSel
	GroupTabline
	GroupTablineSel
	GroupTablineFill
	GroupCmdline
	GroupCmdlineBorder
	GroupMsgSeparator
)

var groupNames = map[Group]string{
	GroupPmenu:         "pmenu",
	GroupPmenuSel:      "pmenu-sel",
	GroupWildmenu:      "wildmenu",
	GroupWildmenuSel:   "wildmenu-sel",
	GroupTabline:       "tabline",
	GroupTablineSel:    "tabline-sel",
	GroupTablineFill:   "tabline-fill",
	GroupCmdline:       "cmdline",
	GroupCmdlineBorder: "cmdline-border",
	GroupMsgSeparator:  "msg-separator",
}

func (g Group) String() string {
	if name, ok := groupNames[g]; ok {
		return name
	}
	return "unknown"
}

// aliases maps editor highlight group names to the roles they feed. A
// single group may feed more than one role.
var aliases = map[string][]Group{
	"Pmenu":        {GroupPmenu, GroupWildmenu},
	"PmenuSel":     {GroupPmenuSel, GroupWildmenuSel},
	"TabLine":      {GroupTabline},
	"TabLineSel":   {GroupTablineSel, GroupCmdlineBorder},
	"TabLineFill":  {GroupTablineFill},
	"Normal":       {GroupCmdline},
	"MsgSeparator": {GroupMsgSeparator},
}

// RolesFor returns the roles fed by the named editor group.
func RolesFor(name string) []Group {
	return aliases[name]
}
