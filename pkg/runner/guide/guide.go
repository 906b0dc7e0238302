// Package guide prints the steps that make a phone fetch the wallpaper every
// morning.
package guide

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/reflow/wordwrap"
)

// Platform selects which automation app the guide covers.
type Platform string

const (
	IPhone  Platform = "iphone"
	Android Platform = "android"
)

// ParsePlatform accepts iphone, ios or android.
func ParsePlatform(s string) (Platform, error) {
	switch strings.ToLower(s) {
	case "iphone", "ios":
		return IPhone, nil
	case "android":
		return Android, nil
	}
	return "", fmt.Errorf("guide: unknown platform %q", s)
}

var pages = template.Must(template.New("guide").Parse(`
{{ define "iphone" -}}
# iPhone setup

1. Your personalized wallpaper URL:

   ` + "`{{ .URL }}`" + `

2. Open **Shortcuts** → **Automation** tab → **New Automation** → **Time of Day**
   → **6:00 AM** → Repeat **"Daily"** → select **"Run Immediately"** →
   **"Create New Shortcut"**.

3. Build the shortcut:
   - **3.1** Add a **"Get Contents of URL"** action and paste the URL above.
   - **3.2** Add a **"Set Wallpaper Photo"** action and choose **"Lock Screen"**.

> **Important:** in "Set Wallpaper Photo", tap the arrow to show options and
> disable both "Crop to Subject" and "Show Preview". This keeps iOS from
> cropping the image and asking for confirmation each time.
{{ end }}
{{ define "android" -}}
# Android setup

1. Your personalized wallpaper URL:

   ` + "`{{ .URL }}`" + `

2. Install [MacroDroid](https://play.google.com/store/apps/details?id=com.arlosoft.macrodroid)
   from the Google Play Store.

3. Open **MacroDroid** → **Add Macro**.
   **Trigger:** Date/Time → Day/Time → set the time to **00:01:00** → activate
   all weekdays.

4. Actions:
   - **Web Interactions** → **HTTP Request**, method **GET**, paste the URL above.
     Enable **Block next actions until complete** and tick **Save HTTP response
     to file** as ` + "`/Download/{{ .File }}`" + `.
   - **Device Settings** → **Set Wallpaper** → **Choose Image and Screen**, and
     enter ` + "`/Download/{{ .File }}`" + `.

> **Important:** use the exact same folder and filename in both actions.

5. Name the macro and tap **Create Macro**.

- **Test:** MacroDroid → Macros → select your macro → More options → Test macro.
- **Stop:** toggle off or delete the macro.
- **Edit URL:** tap the HTTP Request action, update the URL and save.
{{ end }}
`))

// Guide renders the setup steps for Platform with URL filled in.
type Guide struct {
	URL      string
	Platform Platform
	// Width wraps the rendered text. Zero means 80.
	Width int
	// Raw prints the markdown source instead of styled output.
	Raw    bool
	Stdout io.Writer
}

// Markdown returns the guide source.
func (g *Guide) Markdown() (string, error) {
	platform := g.Platform
	if platform == "" {
		platform = IPhone
	}
	var buf bytes.Buffer
	err := pages.ExecuteTemplate(&buf, string(platform), struct{ URL, File string }{g.URL, "life.png"})
	if err != nil {
		return "", fmt.Errorf("guide: %w", err)
	}
	return strings.TrimSpace(buf.String()) + "\n", nil
}

func (g *Guide) Do(ctx context.Context) error {
	md, err := g.Markdown()
	if err != nil {
		return err
	}
	width := g.Width
	if width <= 0 {
		width = 80
	}
	out := g.Stdout
	if out == nil {
		out = os.Stdout
	}

	if g.Raw {
		_, err = io.WriteString(out, wordwrap.String(md, width))
		return err
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		_, err = io.WriteString(out, wordwrap.String(md, width))
		return err
	}
	rendered, err := renderer.Render(md)
	if err != nil {
		_, err = io.WriteString(out, wordwrap.String(md, width))
		return err
	}
	_, err = io.WriteString(out, rendered)
	return err
}
