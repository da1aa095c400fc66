// Guigallery shows the widgets in a window: pictures sharing a texture,
// checkboxes, radiobuttons, buttons and labels in a z-ordered container.
//
// An optional .env file (or the environment) configures it:
//
//	GUIGALLERY_RESOURCES  directory with image files, default "."
//	GUIGALLERY_THEME      theme TOML file, watched for changes if set
package main

import (
	"flag"
	"image"
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/mjl-/gui"
)

func check(err error, msg string) {
	if err != nil {
		log.Fatalf("%s: %s\n", msg, err)
	}
}

func main() {
	envFile := flag.String("env", ".env", "env file with configuration, ignored if absent")
	flag.Parse()

	if err := godotenv.Load(*envFile); err != nil && !os.IsNotExist(err) {
		log.Fatalf("load %s: %s\n", *envFile, err)
	}
	resources := os.Getenv("GUIGALLERY_RESOURCES")
	if resources == "" {
		resources = "."
	}
	themePath := os.Getenv("GUIGALLERY_THEME")

	g, err := gui.NewGUI("guigallery", "800x600")
	check(err, "new gui")

	if themePath != "" {
		theme, err := gui.ReadTheme(themePath)
		check(err, "read theme")
		g.SetTheme(theme)
		stop, err := g.WatchTheme(themePath)
		check(err, "watch theme")
		defer stop()
	}

	pic := &gui.Picture{Smooth: true}
	if err := pic.Load(g, filepath.Join(resources, "gopher.png")); err != nil {
		log.Printf("no picture: %s\n", err)
	}
	pic.Click = func(e *gui.Event) {
		log.Println("picture clicked")
	}

	status := &gui.Label{Text: "ready"}
	setStatus := func(s string) {
		status.Text = s
		g.MarkLayout(status)
	}

	var radios gui.RadiobuttonGroup
	small := &gui.Radiobutton{Text: "small", Value: image.Pt(64, 64)}
	large := &gui.Radiobutton{Text: "large", Value: image.Pt(256, 256), Selected: true}
	radios = gui.RadiobuttonGroup{small, large}
	for _, r := range radios {
		r.Group = radios
		r.Changed = func(v interface{}, e *gui.Event) {
			pic.SetSize(v.(image.Point))
			g.MarkLayout(pic)
			setStatus("picture resized")
		}
	}

	controls := &gui.Box{
		Padding: gui.SpaceXY(6, 4),
		Margin:  image.Pt(6, 4),
		Valign:  gui.ValignMiddle,
		Kids: gui.NewKids(
			&gui.Checkbox{
				Text:    "smooth scaling",
				Checked: true,
				Changed: func(e *gui.Event) {
					pic.Smooth = !pic.Smooth
					pic.SetSize(pic.Size()) // drop the cached scale
					g.MarkDraw(pic)
				},
			},
			small,
			large,
			&gui.Button{
				Text: "clone picture",
				Click: func(e *gui.Event) {
					clone := pic.Clone()
					g.AddAt("clone", clone, image.Pt(400, 100))
					setStatus("cloned, texture shared")
				},
			},
			&gui.Button{
				Text: "picture to front",
				Click: func(e *gui.Event) {
					g.MoveToFront(pic)
				},
			},
			&gui.Button{
				Text: "clear radios",
				Click: func(e *gui.Event) {
					g.UncheckRadiobuttons()
				},
			},
			status,
		),
	}

	g.Add("controls", controls)
	g.AddAt("picture", pic, image.Pt(40, 120))
	g.Render()

	for {
		select {
		case e := <-g.Inputs:
			g.Input(e)
		case <-g.Done:
			return
		}
	}
}
