package ui

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/furevercare/furever/internal/catalog"
	"github.com/furevercare/furever/internal/state"
)

// baseWidth is the content width at the default font size. Larger font sizes
// shrink the column count the way a larger base font narrows a text column.
const baseWidth = 72

// Renderer writes the application's pages. It is the single subscriber to
// theme and font-size changes: mutations in the store show up on the next
// thing rendered, process-wide.
type Renderer struct {
	out io.Writer

	mu     sync.Mutex
	theme  Theme
	width  int
	styles styles
}

// New builds a renderer for the given preferences.
func New(out io.Writer, prefs state.Preferences) *Renderer {
	r := &Renderer{out: out}
	r.apply(prefs)
	return r
}

// Bind subscribes the renderer to the store's preference changes.
func (r *Renderer) Bind(store *state.Store) {
	store.Subscribe(state.HookFunc(func(c state.Change) {
		if c.Slot != state.SlotTheme && c.Slot != state.SlotFontSize {
			return
		}
		r.apply(store.Preferences())
	}))
}

func (r *Renderer) apply(prefs state.Preferences) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.theme = ThemeFor(prefs.Dark)
	r.width = widthFor(prefs.FontSizePx)
	r.styles = newStyles(r.theme, r.width)
}

// widthFor scales the content width inversely with the font size, clamped so
// extreme preferences still render.
func widthFor(fontSizePx int) int {
	if fontSizePx <= 0 {
		fontSizePx = state.DefaultFontSize
	}
	w := baseWidth * state.DefaultFontSize / fontSizePx
	if w < 40 {
		w = 40
	}
	if w > 100 {
		w = 100
	}
	return w
}

// Theme returns the active theme.
func (r *Renderer) Theme() Theme {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.theme
}

func (r *Renderer) printf(format string, args ...any) {
	fmt.Fprintf(r.out, format, args...)
}

// Header renders the greeting bar: name and role when onboarded, plus the
// visitor counter.
func (r *Renderer) Header(id state.Identity, onboarded bool, visits int) {
	r.mu.Lock()
	s := r.styles
	r.mu.Unlock()

	greeting := "Welcome to FurEver Care"
	if onboarded {
		greeting = fmt.Sprintf("Welcome back, %s (%s)", id.Name, id.Role)
	}
	line := fmt.Sprintf("%s  ·  Visitors: %d", greeting, visits)
	r.printf("%s\n", s.header.Render(line))
}

// Ticker renders the announcement lines.
func (r *Renderer) Ticker(lines []string) {
	r.mu.Lock()
	s := r.styles
	r.mu.Unlock()

	for _, line := range lines {
		r.printf("%s\n", s.ticker.Render("» "+line))
	}
}

// Section renders a page heading.
func (r *Renderer) Section(title string) {
	r.mu.Lock()
	s := r.styles
	r.mu.Unlock()
	r.printf("\n%s\n\n", s.title.Render(title))
}

// Summary renders the "Showing n of m" line under the filter controls.
func (r *Renderer) Summary(shown, total int, note string) {
	r.mu.Lock()
	s := r.styles
	r.mu.Unlock()

	line := fmt.Sprintf("Showing %d of %d", shown, total)
	if note != "" {
		line += " " + note
	}
	r.printf("%s\n\n", s.muted.Render(line))
}

// Text renders pre-formatted body text (an already rendered Markdown page).
func (r *Renderer) Text(body string) {
	r.printf("%s\n", body)
}

// ProductCard renders one product.
func (r *Renderer) ProductCard(p catalog.Product, favorite bool) {
	r.mu.Lock()
	s := r.styles
	r.mu.Unlock()

	name := s.cardName.Render(p.Name)
	if favorite {
		name += " " + s.favorite.Render("♥")
	}
	lines := []string{
		fmt.Sprintf("%s  %s", name, s.group.Render(p.Category)),
		s.muted.Render(truncate(p.Description, s.card.GetWidth()-4)),
		fmt.Sprintf("%s   %s", s.price.Render(fmt.Sprintf("$%.2f", p.Price)), s.muted.Render(p.Location)),
	}
	r.printf("%s\n", s.card.Render(strings.Join(lines, "\n")))
}

// AdoptionCard renders one adoption listing.
func (r *Renderer) AdoptionCard(a catalog.AdoptionListing, favorite bool) {
	r.mu.Lock()
	s := r.styles
	r.mu.Unlock()

	name := s.cardName.Render(a.Name)
	if favorite {
		name += " " + s.favorite.Render("♥")
	}
	lines := []string{
		fmt.Sprintf("%s  %s", name, s.group.Render(a.Species)),
		s.muted.Render(fmt.Sprintf("%s · %s · %s", a.Breed, a.Age, a.Shelter)),
		s.muted.Render(truncate(a.Description, s.card.GetWidth()-4)),
	}
	r.printf("%s\n", s.card.Render(strings.Join(lines, "\n")))
}

// VetCard renders one veterinarian entry.
func (r *Renderer) VetCard(v catalog.VetProfile, favorite bool) {
	r.mu.Lock()
	s := r.styles
	r.mu.Unlock()

	name := s.cardName.Render(v.Name)
	if favorite {
		name += " " + s.favorite.Render("♥")
	}
	lines := []string{
		fmt.Sprintf("%s  %s", name, s.group.Render(v.Specialization)),
		s.muted.Render(fmt.Sprintf("%s · %s · %s", v.Location, v.Phone, v.Hours)),
	}
	r.printf("%s\n", s.card.Render(strings.Join(lines, "\n")))
}

func truncate(s string, max int) string {
	if max <= 3 || len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
