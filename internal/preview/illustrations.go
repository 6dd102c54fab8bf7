package preview

import (
	"strings"

	"github.com/dshills/axiom/internal/schema"
)

var builtin = Registry{
	// Typography
	"typo-1": {Kind: "button", Draw: func(_ schema.Rule, v Variant) []string {
		return button(pick(v, "Create new account", "Create New Account"), 2)
	}},
	"typo-2": {Kind: "label", Draw: func(_ schema.Rule, v Variant) []string {
		return frame(pick(v, "S E T T I N G S", "SETTINGS"))
	}},
	"typo-3": {Kind: "paragraph", Draw: func(_ schema.Rule, v Variant) []string {
		if v == Do {
			return frame("Body text should", "", "breathe for", "", "readability.")
		}
		return frame("Body text should", "breathe for", "readability.")
	}},
	"typo-4": {Kind: "heading", Draw: func(_ schema.Rule, v Variant) []string {
		if v == Do {
			return frame("HEADINGS SHOULD", "STAY COMPACT")
		}
		return frame("HEADINGS SHOULD", "", "", "STAY COMPACT")
	}},
	"typo-5": {Kind: "type-stack", Draw: func(_ schema.Rule, v Variant) []string {
		if v == Do {
			return frame("Inter  Heading", "Inter  Body copy")
		}
		return frame("Roboto     Heading", "Open Sans  Body copy")
	}},
	"typo-6": {Kind: "hierarchy", Draw: func(_ schema.Rule, v Variant) []string {
		if v == Do {
			return frame("Primary label", "· secondary label ·")
		}
		return frame("Primary label", "tiny secondary")
	}},
	"typo-7": {Kind: "table", Draw: func(_ schema.Rule, v Variant) []string {
		if v == Do {
			return frame("Jan   1,200", "Feb     320", "Mar  12,045")
		}
		return frame("Jan  1,200", "Feb  320", "Mar  12,045")
	}},
	"typo-8": {Kind: "paragraph", Draw: func(_ schema.Rule, v Variant) []string {
		lines := []string{"Center-aligned copy", "slows scanning on", "every line."}
		if v == Dont {
			return frame(center(lines, 19)...)
		}
		return frame(lines...)
	}},
	"typo-9": {Kind: "weights", Draw: func(_ schema.Rule, v Variant) []string {
		if v == Do {
			return frame("Regular", "Semibold")
		}
		return frame("Light", "Regular", "Medium", "Semibold", "Bold")
	}},
	"typo-10": {Kind: "truncation", Draw: func(_ schema.Rule, v Variant) []string {
		if v == Do {
			return frame("Quarterly report for…")
		}
		return pad(
			"┌──────────────────┐",
			"│ Quarterly report for the north region",
			"└──────────────────┘",
		)
	}},
	"typo-11": {Kind: "paragraph", Draw: func(_ schema.Rule, v Variant) []string {
		return frame(pick(v, "Body  16px  Aa", "Body  11px  aa"), pick(v, "Sub   12px  Aa", "Sub    9px  ·"))
	}},

	// Layout
	"layout-1": {Kind: "grid", Draw: func(_ schema.Rule, v Variant) []string {
		return frame(pick(v, "4 · 8 · 16 · 24 · 32", "5 · 13 · 21"))
	}},
	"layout-2": {Kind: "measure", Draw: func(_ schema.Rule, v Variant) []string {
		if v == Do {
			return frame("Lines stay between 45", "and 75 characters so", "the eye finds the next.")
		}
		return frame("Lines that run the full width of a wide monitor make the eye hunt for the next one.")
	}},
	"layout-3": {Kind: "proximity", Draw: func(_ schema.Rule, v Variant) []string {
		if v == Do {
			return frame("Name", "[____________]", "", "", "Email", "[____________]")
		}
		return frame("Name", "", "[____________]", "", "Email", "", "[____________]")
	}},
	"layout-4": {Kind: "icon", Draw: func(_ schema.Rule, v Variant) []string {
		return frame("       ", pick(v, "   ▶   ", "  ▶    "), "       ")
	}},
	"layout-5": {Kind: "button", Draw: func(_ schema.Rule, v Variant) []string {
		return button("Save", pick(v, 4, 1))
	}},
	"layout-6": {Kind: "icon-label", Draw: func(_ schema.Rule, v Variant) []string {
		return button(pick(v, "↓ Download", "↓_Download"), 2)
	}},
	"layout-7": {Kind: "card", Draw: func(_ schema.Rule, v Variant) []string {
		if v == Do {
			return pad(
				"░░░░░░░░░░░░░░░░",
				"░ ┌──────────┐ ░",
				"░ │  Card    │ ░",
				"░ └──────────┘ ░",
				"░░░░░░░░░░░░░░░░",
			)
		}
		return frame("┌──────────┐", "│  Card    │", "└──────────┘")
	}},
	"layout-8": {Kind: "grid", Draw: func(_ schema.Rule, v Variant) []string {
		if v == Do {
			return frame("[■■]   [■■]   [■■]", "", "[■■]   [■■]   [■■]")
		}
		return frame("[■■] [■■] [■■]", "", "", "[■■] [■■] [■■]")
	}},
	"layout-9": {Kind: "breakpoints", Draw: func(_ schema.Rule, v Variant) []string {
		if v == Do {
			return frame("lg │   content   │", "md │  content  │", "sm │ content │")
		}
		return frame("lg │   content   │", "md │   content   │", "sm │   content   │")
	}},
	"layout-10": {Kind: "rhythm", Draw: func(_ schema.Rule, v Variant) []string {
		return frame(pick(v, "Section · 6 · 12 · 18", "Section · 6 · 10 · 14"))
	}},
	"layout-11": {Kind: "layers", Draw: func(_ schema.Rule, v Variant) []string {
		if v == Do {
			return frame("modal     300", "dropdown  100", "base        0")
		}
		return frame("modal    9999", "tooltip 99999", "header   9999")
	}},

	// Color
	"color-1": {Kind: "palette", Draw: func(_ schema.Rule, v Variant) []string {
		return frame(pick(v, "░░░░░░▒▒▒█", "████▒▒▒███"), pick(v, "60  30  10", "blue blue blue"))
	}},
	"color-2": {Kind: "swatch", Draw: func(_ schema.Rule, v Variant) []string {
		return frame(pick(v, "■ #0f172a  neutral-900", "■ #000000  pure black"))
	}},
	"color-3": {Kind: "shadow", Draw: func(_ schema.Rule, v Variant) []string {
		if v == Do {
			return pad("┌──────┐ ", "│ Card │░", "└──────┘░", " ░░░░░░░░")
		}
		return pad("┌──────┐ ", "│ Card │█", "└──────┘█", " ████████")
	}},
	"color-4": {Kind: "icon", Draw: func(_ schema.Rule, v Variant) []string {
		return button(pick(v, "♥ Like  (brand)", "♥ Like  (red)"), 1)
	}},
	"color-5": {Kind: "border", Draw: func(_ schema.Rule, v Variant) []string {
		if v == Do {
			return pad("┌╌╌╌╌╌╌╌╌╌╌╌╌┐", "╎  Settings  ╎", "└╌╌╌╌╌╌╌╌╌╌╌╌┘")
		}
		return pad("┏━━━━━━━━━━━━┓", "┃  Settings  ┃", "┗━━━━━━━━━━━━┛")
	}},
	"color-6": {Kind: "field", Draw: func(_ schema.Rule, v Variant) []string {
		if v == Do {
			return frame("Email", "[________________]")
		}
		return frame("Email", " ________________ ")
	}},
	"color-7": {Kind: "hover", Draw: func(_ schema.Rule, v Variant) []string {
		return frame(pick(v, "[blue-600] → hover → [blue-700]", "[blue] → hover → [green]"))
	}},
	"color-8": {Kind: "theme", Draw: func(_ schema.Rule, v Variant) []string {
		if v == Do {
			return frame("bg    gray-900", "card  gray-800", "brand desaturated")
		}
		return frame("filter: invert(1)", "photos inverted", "shadows glowing")
	}},
	"color-9": {Kind: "contrast", Draw: func(_ schema.Rule, v Variant) []string {
		return frame(pick(v, "Readable text  4.5:1 ✓", "faint text     2.3:1 ✗"))
	}},
	"color-10": {Kind: "tint", Draw: func(_ schema.Rule, v Variant) []string {
		if v == Do {
			return frame("▒ blue-500/10  selected", "▒ blue-500/20  hover")
		}
		return frame("▒ #e8f0fe  selected", "▒ #d2e3fc  hover", "▒ #c6dafc  active")
	}},

	// Components
	"comp-1": {Kind: "actions", Draw: func(_ schema.Rule, v Variant) []string {
		return frame(pick(v, "[█ Save █]  ( Cancel )  Help", "[█ Save █]  [█ Share █]  [█ Export █]"))
	}},
	"comp-2": {Kind: "destructive", Draw: func(_ schema.Rule, v Variant) []string {
		if v == Do {
			return frame("( Delete )", "  ↓", "Delete project?  [█ Confirm █]")
		}
		return frame("[████ DELETE ████]")
	}},
	"comp-3": {Kind: "radius", Draw: func(_ schema.Rule, v Variant) []string {
		if v == Do {
			return pad("╭──────────╮", "│ ┌──────┐ │", "│ │ 4px  │ │", "│ └──────┘ │", "╰──────────╯")
		}
		return pad("┌──────────┐", "│┌────────┐│", "││  4px   ││", "│└────────┘│", "└──────────┘")
	}},
	"comp-4": {Kind: "avatar", Draw: func(_ schema.Rule, v Variant) []string {
		return frame(pick(v, "( JD )  Jane Doe", "[ JD ]  Jane Doe"))
	}},
	"comp-5": {Kind: "overlay", Draw: func(_ schema.Rule, v Variant) []string {
		if v == Do {
			return frame("page        ┃ Edit profile", "            ┃ Name  [____]", "            ┃ Bio   [____]")
		}
		return frame("   ┌──────────────┐", "   │ Settings (12)│", "   │ ↕ scroll…    │", "   └──────────────┘")
	}},
	"comp-6": {Kind: "error", Draw: func(_ schema.Rule, v Variant) []string {
		if v == Do {
			return frame("Email", "[jane@          ]", "✗ Enter a full address")
		}
		return frame("Email", "[jane@          ]", "", "      ┌──────────────┐", "      │ Invalid email│", "      └──────────────┘")
	}},
	"comp-7": {Kind: "toolbar", Draw: func(_ schema.Rule, v Variant) []string {
		return frame(pick(v, "▣ Archive   ↗ Share", "▣   ↗   ⌘   ◇"))
	}},
	"comp-8": {Kind: "disabled", Draw: func(_ schema.Rule, v Variant) []string {
		if v == Do {
			return frame("[░ Publish ░]", "Add a title to publish")
		}
		return frame("[░ Publish ░]")
	}},
	"comp-9": {Kind: "button", Draw: func(_ schema.Rule, v Variant) []string {
		return button(pick(v, "◌ Saving…", "Save"), 2)
	}},
	"comp-10": {Kind: "toolbar", Draw: func(_ schema.Rule, v Variant) []string {
		return frame(pick(v, "▪  ▪  ▪  ▪", "▪  ■  █  ▫"), pick(v, "20 20 20 20", "16 20 24 12"))
	}},
	"comp-11": {Kind: "card", Draw: func(_ schema.Rule, v Variant) []string {
		if v == Do {
			return frame("▶ Project Atlas   ▶", "▶ Updated 2h ago  ▶")
		}
		return frame("  Project Atlas ◀", "  Updated 2h ago")
	}},
	"comp-12": {Kind: "overlay", Draw: func(_ schema.Rule, v Variant) []string {
		return frame(pick(v, "Share link        ×", "Share link         "), "", pick(v, "Esc closes", "          "))
	}},

	// Forms
	"form-1": {Kind: "field", Draw: func(_ schema.Rule, v Variant) []string {
		if v == Do {
			return frame("Email", "[________________]")
		}
		return frame("Email  [________________]")
	}},
	"form-2": {Kind: "field", Draw: func(_ schema.Rule, v Variant) []string {
		if v == Do {
			return frame("Email", "[you@example.com  ]")
		}
		return frame("[Email Address    ]")
	}},
	"form-3": {Kind: "form", Draw: func(_ schema.Rule, v Variant) []string {
		if v == Do {
			return frame("Name", "Email", "Phone (optional)")
		}
		return frame("Name *", "Email *", "Address *", "City *")
	}},
	"form-4": {Kind: "form", Draw: func(_ schema.Rule, v Variant) []string {
		if v == Do {
			return frame("Address [______________________]", "Zip     [_____]")
		}
		return frame("Address [______________________]", "Zip     [______________________]")
	}},
	"form-5": {Kind: "choice", Draw: func(_ schema.Rule, v Variant) []string {
		if v == Do {
			return frame("(•) Starter", "( ) Pro", "( ) Team")
		}
		return frame("[x] Starter", "[ ] Pro", "[ ] Team")
	}},
	"form-6": {Kind: "choice", Draw: func(_ schema.Rule, v Variant) []string {
		if v == Do {
			return frame("(•) Small", "( ) Medium", "( ) Large")
		}
		return frame("[ Select size   ▾ ]")
	}},
	"form-7": {Kind: "switch", Draw: func(_ schema.Rule, v Variant) []string {
		return frame(pick(v, "Dark mode        [ ●]", "Subscribe        [ ●]"))
	}},
	"form-8": {Kind: "validation", Draw: func(_ schema.Rule, v Variant) []string {
		if v == Do {
			return frame("Email", "[jane@example   ]", "(checked on blur)")
		}
		return frame("Email", "[j              ]", "✗ Invalid email")
	}},
	"form-9": {Kind: "field", Draw: func(_ schema.Rule, v Variant) []string {
		if v == Do {
			return frame("Expiry", "[MM / YY  ]")
		}
		return frame("Expiry", "[         ]")
	}},
	"form-10": {Kind: "form", Draw: func(_ schema.Rule, v Variant) []string {
		if v == Do {
			return frame("Name   [________]", "Email  [________]", "Phone  [________]")
		}
		return frame("Name [___]  Zip [___]  Role [___]", "Email [___]  Bio [___]  Fax [___]")
	}},
	"form-11": {Kind: "select", Draw: func(_ schema.Rule, v Variant) []string {
		return frame("Country", pick(v, "[ Germany       ▾ ]", "[ Select…       ▾ ]"))
	}},
	"form-12": {Kind: "feedback", Draw: func(_ schema.Rule, v Variant) []string {
		if v == Do {
			return frame("[█ Save █]", "✓ Saved successfully")
		}
		return frame("[█ Save █]", "")
	}},

	// System
	"sys-1": {Kind: "loading", Draw: func(_ schema.Rule, v Variant) []string {
		if v == Do {
			return frame("▇▇▇▇▇▇▇▇▇▇", "▇▇▇▇▇▇", "▇▇▇▇▇▇▇▇")
		}
		return frame("", "    ◌ loading…", "")
	}},
	"sys-2": {Kind: "empty-state", Draw: func(_ schema.Rule, v Variant) []string {
		if v == Do {
			return frame("     No projects yet", "", "  [█ Create project █]")
		}
		return frame("                      ", "", "                      ")
	}},
	"sys-3": {Kind: "target", Draw: func(_ schema.Rule, v Variant) []string {
		if v == Do {
			return button("  Continue  ", 1)
		}
		return frame("continue")
	}},
	"sys-4": {Kind: "timestamp", Draw: func(_ schema.Rule, v Variant) []string {
		return frame("Jane commented", pick(v, "2m ago", "12/01/2024 14:02"))
	}},
	"sys-5": {Kind: "tokens", Draw: func(_ schema.Rule, v Variant) []string {
		if v == Do {
			return frame("blue-600", "  → color-primary", "    → button-bg")
		}
		return frame("$button-blue", "$blue-button-2", "$btnBlueNew")
	}},
	"sys-6": {Kind: "toast", Draw: func(_ schema.Rule, v Variant) []string {
		return frame(pick(v, "Project deleted    Undo (5s)", "Project deleted permanently"))
	}},
	"sys-7": {Kind: "progress", Draw: func(_ schema.Rule, v Variant) []string {
		return frame(pick(v, "Step 2 of 4  ● ● ○ ○", "Continue →"))
	}},
	"sys-8": {Kind: "keyboard", Draw: func(_ schema.Rule, v Variant) []string {
		if v == Do {
			return frame("Tab → Enter → Esc", "[▸ Open ]  focus ring")
		}
		return frame("mouse only", "[  Open ]  no focus")
	}},
	"sys-9": {Kind: "like", Draw: func(_ schema.Rule, v Variant) []string {
		return button(pick(v, "♥ 128", "◌ 127"), 1)
	}},
	"sys-10": {Kind: "image", Draw: func(_ schema.Rule, v Variant) []string {
		if v == Do {
			return frame("░░░░░░░░░░░░", "░  ▲ image  ░", "░░░░░░░░░░░░", "⟳ Retry")
		}
		return frame("             ", "  ✗          ", "             ")
	}},
	"sys-11": {Kind: "breakpoints", Draw: func(_ schema.Rule, v Variant) []string {
		return frame(pick(v, "sm 640 · md 1024 · lg 1280", "320·375·390·414·768·820·1024·1440"))
	}},
	"sys-12": {Kind: "motion", Draw: func(_ schema.Rule, v Variant) []string {
		if v == Do {
			return frame("[Page A] ──▶ [Page B]")
		}
		return frame("  ↑ LOGO ↓  ↑ LOGO ↓")
	}},

	// Accessibility
	"a11y-1": {Kind: "focus", Draw: func(_ schema.Rule, v Variant) []string {
		if v == Do {
			return pad("╔════════════╗", "║ ┌────────┐ ║", "║ │ Submit │ ║", "║ └────────┘ ║", "╚════════════╝")
		}
		return frame("┌────────┐", "│ Submit │", "└────────┘")
	}},
	"a11y-2": {Kind: "error", Draw: func(_ schema.Rule, v Variant) []string {
		if v == Do {
			return frame("Email", "[jane@          ]", "! Enter a full address")
		}
		return frame("Email", "[jane@          ]", "")
	}},
	"a11y-3": {Kind: "touch", Draw: func(_ schema.Rule, v Variant) []string {
		return frame(pick(v, "[ A ]  [ B ]  [ C ]", "[ A ][ B ][ C ]"))
	}},
}

// button draws a bordered button with pad spaces either side of the label.
func button(label string, pad int) []string {
	padding := strings.Repeat(" ", pad)
	return frame(padding + label + padding)
}

// pad right-fills lines to a common width so unframed drawings stay
// rectangular.
func pad(lines ...string) []string {
	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l + strings.Repeat(" ", width-len([]rune(l)))
	}
	return out
}

// center pads each line so it sits in the middle of width columns.
func center(lines []string, width int) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		gap := max(width-len([]rune(l)), 0)
		out[i] = strings.Repeat(" ", gap/2) + l + strings.Repeat(" ", gap-gap/2)
	}
	return out
}
