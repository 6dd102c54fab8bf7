package catalog

import "github.com/dshills/axiom/internal/schema"

func componentRules() []schema.Rule {
	return []schema.Rule{
		{
			ID:       "comp-1",
			Category: "components",
			Title:    "Action Hierarchy",
			Desc:     "One Primary Action per screen. Everything else is Secondary (Outline) or Tertiary (Text Link).",
			Do:       "1 Filled Button, 2 Ghost Buttons",
			Dont:     "3 Filled Buttons side-by-side",
			Tags:     []string{"Buttons"},
		},
		{
			ID:       "comp-2",
			Category: "components",
			Title:    "Destructive Actions",
			Desc:     "Delete buttons shouldn't always be big and red. It invites accidental clicks. Use secondary style + confirmation modal.",
			Do:       "Grey 'Delete' button -> Red Confirm",
			Dont:     "Giant Red 'Delete' button in main UI",
			Tags:     []string{"UX"},
		},
		{
			ID:       "comp-3",
			Category: "components",
			Title:    "Nested Radius Formula",
			Desc:     "Outer Radius = Inner Radius + Padding. This makes concentric corners look mathematically parallel.",
			Do:       "Outer 12px = Inner 4px + Padding 8px",
			Dont:     "Outer 4px / Inner 4px (Looks pinched)",
			Tags:     []string{"Polish", "Math"},
		},
		{
			ID:       "comp-4",
			Category: "components",
			Title:    "Avatars Are Circles",
			Desc:     "Humans are organic. Put avatars in circles. Content (Documents/Projects) should be squares/rects.",
			Do:       "User = Circle / File = Rect",
			Dont:     "User = Square",
			Tags:     []string{"Semantics"},
		},
		{
			ID:       "comp-5",
			Category: "components",
			Title:    "Modal vs Drawer",
			Desc:     "Use Modals for short, focused decisions (Are you sure?). Use Drawers for context-heavy tasks where you need to see the background.",
			Do:       "Delete Confirm = Modal / Edit Profile = Drawer",
			Dont:     "Edit complex settings = Small Modal",
			Tags:     []string{"Patterns"},
		},
		{
			ID:       "comp-6",
			Category: "components",
			Title:    "Toast vs Inline Error",
			Desc:     "Toasts are for system-level updates (Saved!). Inline errors are for specific field fixes.",
			Do:       "Network error = Toast / Invalid email = Inline",
			Dont:     "Invalid email = Toast (Too far from context)",
			Tags:     []string{"Feedback"},
		},
		{
			ID:       "comp-7",
			Category: "components",
			Title:    "Icon + Label for Ambiguous Actions",
			Desc:     "Icons are only universal for a few actions. Add labels for everything else to avoid guesswork.",
			Do:       "Icon + Archive label",
			Dont:     "Icon-only toolbar",
			Tags:     []string{"Clarity", "Navigation"},
		},
		{
			ID:       "comp-8",
			Category: "components",
			Title:    "Disabled Needs a Reason",
			Desc:     "Disabled controls without explanation feel broken. Add a tooltip or helper text.",
			Do:       "Disabled button + helper text",
			Dont:     "Greyed-out button with no context",
			Tags:     []string{"Feedback", "Accessibility"},
		},
	}
}

// componentAdditions are the rules added to the category after its first release.
func componentAdditions() []schema.Rule {
	return []schema.Rule{
		{
			ID:       "comp-9",
			Category: "components",
			Title:    "Loading States on Buttons",
			Desc:     "Buttons that trigger async actions should show a spinner/loading state and disable re-click. Never leave a button looking clickable during submission.",
			Do:       "Spinner + disabled during submit",
			Dont:     "Static button allows double-click",
			Tags:     []string{"Feedback", "Async"},
		},
		{
			ID:       "comp-10",
			Category: "components",
			Title:    "Consistent Icon Size",
			Desc:     "Icons in the same context should be the same size. Don't mix 16px and 20px icons in the same toolbar or nav.",
			Do:       "All toolbar icons: 20px",
			Dont:     "Mixed 16px, 20px, 24px icons in toolbar",
			Tags:     []string{"Icons", "Consistency"},
		},
		{
			ID:       "comp-11",
			Category: "components",
			Title:    "Card Click Area",
			Desc:     "If a card is clickable, the entire card should be the click target, not just the title or a tiny link inside it.",
			Do:       "Full card is the click target",
			Dont:     "Only the title text is clickable",
			Tags:     []string{"UX", "Click Targets"},
		},
		{
			ID:       "comp-12",
			Category: "components",
			Title:    "Close Affordance on Overlays",
			Desc:     "Every modal, drawer, and popover needs a visible close button AND should close on backdrop click and Escape key.",
			Do:       "X button + backdrop close + Esc key",
			Dont:     "No close button, only backdrop click",
			Tags:     []string{"Patterns", "Accessibility"},
		},
	}
}
