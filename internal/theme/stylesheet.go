package theme

import (
	"fmt"

	"github.com/atomicstack/nvim-ui-mirror/internal/highlight"
)

// Container names used by the style sheet selectors.
const (
	RootName           = "root"
	WindowsName        = "windows-container"
	FloatWindowsName   = "windows-container-float"
	MessageWindowsName = "message-grid-container"
)

// StyleSheet renders the shell style sheet for the current table.
func StyleSheet(hl *highlight.Table) string {
	msgsep := hl.DefaultFg
	if def, ok := hl.Group(highlight.GroupMsgSeparator); ok && def.Foreground != nil {
		msgsep = *def.Foreground
	}
	scrollBg := hl.DefaultBg
	if def, ok := hl.Group(highlight.GroupCmdlineBorder); ok && def.Background != nil {
		scrollBg = *def.Background
	}

	return fmt.Sprintf(`#%[1]s {
    background: #%[4]s;
}

frame > border {
    border: none;
}

#%[2]s scrollbar,
#%[3]s scrollbar {
    background-color: transparent;
    border: none;
}

#%[2]s scrollbar slider,
#%[3]s scrollbar slider {
    background-color: %[5]s;
}

#%[2]s scrollbar:hover,
#%[3]s scrollbar:hover {
    background-color: #%[6]s;
}

#%[2]s scrollbar:hover slider,
#%[3]s scrollbar:hover slider {
    background-color: %[7]s;
}

#%[8]s frame.scrolled {
    border-top: 1px solid #%[9]s;
}
`,
		RootName, WindowsName, FloatWindowsName,
		highlight.Hex(hl.DefaultBg),
		highlight.RGBA(hl.DefaultFg, 0.5),
		highlight.Hex(scrollBg),
		highlight.RGBA(hl.DefaultFg, 1),
		MessageWindowsName,
		highlight.Hex(msgsep),
	)
}
