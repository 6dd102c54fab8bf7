package catalog

import "github.com/dshills/axiom/internal/schema"

func systemRules() []schema.Rule {
	return []schema.Rule{
		{
			ID:       "sys-1",
			Category: "system",
			Title:    "Skeleton Loading",
			Desc:     "Spinners draw attention to the waiting. Skeletons (grey bars) imply progress and structure.",
			Do:       "Grey layout pulse",
			Dont:     "Giant spinning wheel",
			Tags:     []string{"Perceived Performance"},
		},
		{
			ID:       "sys-2",
			Category: "system",
			Title:    "Empty States",
			Desc:     "Never leave a blank screen. Tell the user (1) What is missing, (2) Why, and (3) How to fix it.",
			Do:       "No Projects + 'Create Project' Button",
			Dont:     "Empty white box",
			Tags:     []string{"Onboarding"},
		},
		{
			ID:       "sys-3",
			Category: "system",
			Title:    "Click Targets (Fitts's Law)",
			Desc:     "Interactive elements must be at least 44x44px (pointer-coarse) or large enough to hit easily.",
			Do:       "Button height 40px + margin",
			Dont:     "Text link with no padding",
			Tags:     []string{"Accessibility"},
		},
		{
			ID:       "sys-4",
			Category: "system",
			Title:    "Date Formats",
			Desc:     "Use Relative dates (2 hours ago) for activity feeds. Use Absolute dates (12 Jan 2024) for historical records.",
			Do:       "Comment: 2m ago",
			Dont:     "Comment: 12/01/2024 14:02",
			Tags:     []string{"Context"},
		},
		{
			ID:       "sys-5",
			Category: "system",
			Title:    "Design Tokens Naming",
			Desc:     "Name colors by what they ARE (Blue-500), not what they DO (Primary-Color). Aliases handle the 'Do' part.",
			Do:       "Color Palette -> Semantic Alias -> Component",
			Dont:     "Variable: $button-blue",
			Tags:     []string{"Atomic Design"},
		},
		{
			ID:       "sys-6",
			Category: "system",
			Title:    "Undo Destructive Actions",
			Desc:     "When possible, offer a short undo window instead of a permanent deletion.",
			Do:       "Deleted -> Undo (5s)",
			Dont:     "Permanent delete instantly",
			Tags:     []string{"Safety", "Recovery"},
		},
		{
			ID:       "sys-7",
			Category: "system",
			Title:    "Show Progress for Multi-Step",
			Desc:     "If a flow has 3+ steps, show progress to reduce anxiety.",
			Do:       "Step 2 of 4",
			Dont:     "No progress indicator",
			Tags:     []string{"Flow", "Guidance"},
		},
	}
}

// systemAdditions are the rules added to the category after its first release.
func systemAdditions() []schema.Rule {
	return []schema.Rule{
		{
			ID:       "sys-8",
			Category: "system",
			Title:    "Keyboard Navigation",
			Desc:     "All interactive elements must be reachable via Tab, activatable via Enter/Space, and dismissible via Escape.",
			Do:       "Tab → Enter → Esc flow works",
			Dont:     "Click-only interactions, no keyboard support",
			Tags:     []string{"Accessibility", "Navigation"},
		},
		{
			ID:       "sys-9",
			Category: "system",
			Title:    "Optimistic UI Updates",
			Desc:     "For low-risk actions (like/favorite/toggle), update the UI immediately and reconcile with the server in the background.",
			Do:       "Heart fills instantly, syncs async",
			Dont:     "Spinner on every like button click",
			Tags:     []string{"Perceived Performance", "UX"},
		},
		{
			ID:       "sys-10",
			Category: "system",
			Title:    "Graceful Degradation",
			Desc:     "Always show a fallback when assets fail to load (broken images, failed API calls). Never show a broken state.",
			Do:       "Placeholder image + retry option",
			Dont:     "Broken image icon / blank screen",
			Tags:     []string{"Error Handling", "Resilience"},
		},
		{
			ID:       "sys-11",
			Category: "system",
			Title:    "Responsive Breakpoint Strategy",
			Desc:     "Design for 3 breakpoints max: mobile (<640px), tablet (640-1024px), desktop (>1024px). Don't design for every screen size.",
			Do:       "sm: 640px / md: 1024px / lg: 1280px",
			Dont:     "8 breakpoints for every device model",
			Tags:     []string{"Responsive", "System"},
		},
		{
			ID:       "sys-12",
			Category: "system",
			Title:    "Animation Purpose",
			Desc:     "Every animation should serve a purpose: orientation (where am I?), feedback (did it work?), or continuity (what changed?). Never animate just for flair.",
			Do:       "Page slide = spatial orientation",
			Dont:     "Bouncing logo on every page load",
			Tags:     []string{"Motion", "Intent"},
		},
	}
}
