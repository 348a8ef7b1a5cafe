package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"fyne.io/fyne/v2/app"
	"github.com/spf13/pflag"

	"github.com/ytget/smart-mirror/internal/config"
	"github.com/ytget/smart-mirror/internal/icons"
	"github.com/ytget/smart-mirror/internal/news"
	"github.com/ytget/smart-mirror/internal/ui"
	"github.com/ytget/smart-mirror/internal/weather"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID = "com.ytget.smart-mirror"
)

func main() {
	cfg, err := config.Parse(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "smart-mirror: %v\n", err)
		os.Exit(2)
	}

	// Log version information
	fmt.Printf("Smart Mirror v%s starting for %q...\n", version, cfg.Location)

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewMirrorTheme(cfg.TextSizes))

	myWindow := myApp.NewWindow("Smart Mirror")
	if icon, err := ui.LoadAppIcon(cfg.AssetsDir); err == nil {
		myWindow.SetIcon(icon)
	} else {
		log.Printf("failed to load app icon: %v", err)
	}

	units := weather.Metric
	if cfg.Fahrenheit {
		units = weather.Imperial
	}
	provider := weather.NewClient(units)
	source := news.NewGoogleNews("")
	resolver := icons.NewResolver(os.DirFS(cfg.AssetsDir))

	dashboard := ui.NewDashboard(myApp, myWindow, cfg, provider, source, resolver)
	myApp.Lifecycle().SetOnStarted(dashboard.Start)

	// Show and run
	myWindow.ShowAndRun()
}
