package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"fatcat/internal/config"
	"fatcat/internal/pet"
	"fatcat/internal/ui"
)

func main() {
	var (
		configPath  = flag.String("config", config.DefaultPath(), "path to config.yaml")
		showStats   = flag.Bool("stats", false, "show the pet's stats and exit")
		reset       = flag.Bool("reset", false, "start over with a brand new pet")
		writeConfig = flag.Bool("write-config", false, "write the effective config to -config and exit")

		name        = flag.String("name", "", "rename the pet")
		gender      = flag.String("gender", "", "set the pet's gender (male or female)")
		personality = flag.String("personality", "", "set the pet's personality")
		hobby       = flag.String("hobby", "", "set the pet's hobby")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	if *writeConfig {
		if err := cfg.Save(*configPath); err != nil {
			fmt.Printf("Error writing config: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %s\n", *configPath)
		return
	}

	// The UI owns the terminal, so logs go to a file.
	if err := os.MkdirAll(filepath.Dir(cfg.UI.LogPath), 0755); err == nil {
		if f, err := tea.LogToFile(cfg.UI.LogPath, "fatcat"); err == nil {
			defer f.Close()
		}
	}

	store := pet.NewFileStore(cfg.Pet.StatePath, cfg.Pet.Name)
	engine := pet.NewEngine(store, cfg.Tuning())

	if *reset {
		engine.Reset()
	}

	profile := pet.Profile{
		Name:        *name,
		Gender:      pet.Gender(*gender),
		Personality: *personality,
		Hobby:       *hobby,
	}
	if profile != (pet.Profile{}) {
		if err := engine.UpdateProfile(profile); err != nil {
			fmt.Printf("Error updating profile: %v\n", err)
			os.Exit(1)
		}
	}

	catchUp(engine, cfg, *showStats)

	if *showStats {
		ui.DisplayStats(engine.Snapshot(), engine.Tuning())
		return
	}

	model := ui.NewModel(engine, ui.Options{
		TickInterval:  cfg.Engine.TickInterval,
		MoveInterval:  cfg.Engine.MoveInterval,
		AlertInterval: cfg.UI.AlertInterval,
	})
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
}

// catchUp replays the time the pet spent unattended. A read-only run (-stats)
// leaves the pet as it was saved.
func catchUp(engine *pet.Engine, cfg *config.Config, readOnly bool) int {
	if !cfg.Engine.OfflineCatchUp || readOnly {
		return 0
	}
	since := engine.Snapshot().LastSaved
	if since.IsZero() {
		return 0
	}
	return engine.CatchUp(pet.TimeNow().Sub(since), cfg.Engine.TickInterval, cfg.Engine.MaxCatchUp)
}
