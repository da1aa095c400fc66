package gui

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"9fans.net/go/draw"
	"github.com/fsnotify/fsnotify"
	toml "github.com/pelletier/go-toml/v2"
)

// ThemeColors is a set of colors for drawing text in a box, as 32-bit RGBA.
type ThemeColors struct {
	Text       uint32 `toml:"text"`
	Background uint32 `toml:"background"`
	Border     uint32 `toml:"border"`
}

// ThemeColorset is ThemeColors with a hover variant.
type ThemeColorset struct {
	Normal ThemeColors `toml:"normal"`
	Hover  ThemeColors `toml:"hover"`
}

// Theme holds all configurable colors of a GUI. Apply with GUI.SetTheme.
// Themes can be read from a TOML file with ReadTheme, colors are written as
// hexadecimal integers, e.g. text = 0x333333ff.
type Theme struct {
	Background uint32 `toml:"background"`

	Disabled       ThemeColors `toml:"disabled"`
	Inverse        ThemeColors `toml:"inverse"`
	Selection      ThemeColors `toml:"selection"`
	SelectionHover ThemeColors `toml:"selection-hover"`
	Placeholder    ThemeColors `toml:"placeholder"`
	Striped        ThemeColors `toml:"striped"`

	Regular   ThemeColorset `toml:"regular"`
	Primary   ThemeColorset `toml:"primary"`
	Secondary ThemeColorset `toml:"secondary"`
	Success   ThemeColorset `toml:"success"`
	Danger    ThemeColorset `toml:"danger"`
}

// DefaultTheme returns the built-in palette.
func DefaultTheme() Theme {
	return Theme{
		Background: 0xfcfcfcff,

		Disabled: ThemeColors{
			Text:       0x888888ff,
			Background: 0xf0f0f0ff,
			Border:     0xe0e0e0ff,
		},
		Inverse: ThemeColors{
			Text:       0xeeeeeeff,
			Background: 0x3272dcff,
			Border:     0x666666ff,
		},
		Selection: ThemeColors{
			Text:       0xeeeeeeff,
			Background: 0xbbbbbbff,
			Border:     0x666666ff,
		},
		SelectionHover: ThemeColors{
			Text:       0xeeeeeeff,
			Background: 0x3272dcff,
			Border:     0x666666ff,
		},
		Placeholder: ThemeColors{
			Text:       0xaaaaaaff,
			Background: 0xf8f8f8ff,
			Border:     0xbbbbbbff,
		},
		Striped: ThemeColors{
			Text:       0x333333ff,
			Background: 0xf2f2f2ff,
			Border:     0xbbbbbbff,
		},

		Regular: ThemeColorset{
			Normal: ThemeColors{
				Text:       0x333333ff,
				Background: 0xf8f8f8ff,
				Border:     0xbbbbbbff,
			},
			Hover: ThemeColors{
				Text:       0x222222ff,
				Background: 0xfafafaff,
				Border:     0x3272dcff,
			},
		},
		Primary: ThemeColorset{
			Normal: ThemeColors{
				Text:       0xffffffff,
				Background: 0x007bffff,
				Border:     0x007bffff,
			},
			Hover: ThemeColors{
				Text:       0xffffffff,
				Background: 0x0062ccff,
				Border:     0x0062ccff,
			},
		},
		Secondary: ThemeColorset{
			Normal: ThemeColors{
				Text:       0xffffffff,
				Background: 0x868e96ff,
				Border:     0x868e96ff,
			},
			Hover: ThemeColors{
				Text:       0xffffffff,
				Background: 0x727b84ff,
				Border:     0x6c757dff,
			},
		},
		Success: ThemeColorset{
			Normal: ThemeColors{
				Text:       0xffffffff,
				Background: 0x28a745ff,
				Border:     0x28a745ff,
			},
			Hover: ThemeColors{
				Text:       0xffffffff,
				Background: 0x218838ff,
				Border:     0x1e7e34ff,
			},
		},
		Danger: ThemeColorset{
			Normal: ThemeColors{
				Text:       0xffffffff,
				Background: 0xdc3545ff,
				Border:     0xdc3545ff,
			},
			Hover: ThemeColors{
				Text:       0xffffffff,
				Background: 0xc82333ff,
				Border:     0xbd2130ff,
			},
		},
	}
}

// ReadTheme reads a theme from the TOML file at path. Colors not present in
// the file keep their value from the default theme.
func ReadTheme(path string) (Theme, error) {
	t := DefaultTheme()
	buf, err := os.ReadFile(path)
	if err != nil {
		return t, fmt.Errorf("reading theme: %w", err)
	}
	if err := toml.Unmarshal(buf, &t); err != nil {
		return t, fmt.Errorf("parsing theme %s: %w", path, err)
	}
	return t, nil
}

// SetTheme allocates new color images for the theme and marks the UI for
// layout and draw. Must be called from the main loop.
func (g *GUI) SetTheme(t Theme) {
	mk := func(v uint32) *draw.Image {
		c, err := g.Display.AllocImage(image.Rect(0, 0, 1, 1), draw.ARGB32, true, draw.Color(v))
		check(g.Log, err, "allocimage")
		return c
	}
	mkColors := func(c ThemeColors) Colors {
		return Colors{Text: mk(c.Text), Background: mk(c.Background), Border: mk(c.Border)}
	}
	mkColorset := func(c ThemeColorset) Colorset {
		return Colorset{Normal: mkColors(c.Normal), Hover: mkColors(c.Hover)}
	}

	g.Theme = t
	g.BackgroundColor = draw.Color(t.Background)
	g.Background = mk(t.Background)
	g.Disabled = mkColors(t.Disabled)
	g.Inverse = mkColors(t.Inverse)
	g.Selection = mkColors(t.Selection)
	g.SelectionHover = mkColors(t.SelectionHover)
	g.Placeholder = mkColors(t.Placeholder)
	g.Striped = mkColors(t.Striped)
	g.Regular = mkColorset(t.Regular)
	g.Primary = mkColorset(t.Primary)
	g.Secondary = mkColorset(t.Secondary)
	g.Success = mkColorset(t.Success)
	g.Danger = mkColorset(t.Danger)

	g.Top.Layout = Dirty
	g.Top.Draw = Dirty
}

// WatchTheme watches the theme file at path and applies it on each change,
// through the Call channel. The returned stop function ends the watch.
// The file does not have to exist yet; the watch is on its directory.
func (g *GUI) WatchTheme(path string) (stop func(), err error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("fsnotify: %w", err)
	}
	dir := filepath.Dir(path)
	if err := w.Add(dir); err != nil {
		w.Close()
		return nil, fmt.Errorf("watch %s: %w", dir, err)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		w.Close()
		return nil, fmt.Errorf("abspath %s: %w", path, err)
	}
	go func() {
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if !ev.Op.Has(fsnotify.Write) && !ev.Op.Has(fsnotify.Create) {
					continue
				}
				if p, err := filepath.Abs(ev.Name); err != nil || p != abs {
					continue
				}
				t, err := ReadTheme(path)
				if err != nil {
					g.Log.Errorf("gui: reload theme: %s", err)
					continue
				}
				g.Call <- func() {
					g.SetTheme(t)
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				g.Log.Errorf("gui: theme watch: %s", err)
			}
		}
	}()
	return func() {
		w.Close()
	}, nil
}
