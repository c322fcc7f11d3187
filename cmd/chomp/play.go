package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mkravets/chomp-arcade/internal/config"
	"github.com/mkravets/chomp-arcade/internal/core"
	"github.com/mkravets/chomp-arcade/internal/games/chomp"
	"github.com/mkravets/chomp-arcade/internal/platform/audio"
	"github.com/mkravets/chomp-arcade/internal/platform/tui"
	"github.com/mkravets/chomp-arcade/internal/registry"
	"github.com/mkravets/chomp-arcade/internal/storage"
)

var (
	flagConfig string
	flagLives  int
	flagRound  int
	flagMute   bool
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play the game",
	Long: `Start playing. With no argument the maze-chase game starts directly.

Controls:
  Arrows/WASD  - Steer
  Space/Enter  - Start game
  P            - Pause
  R            - Restart
  Q/Ctrl+C     - Quit

Examples:
  chomp play
  chomp play --lives 3
  chomp play --round 5 --mute
  chomp play --config ./my-chomp.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().IntVar(&flagLives, "lives", 0, "Starting lives (0 = from config)")
	playCmd.Flags().IntVar(&flagRound, "round", -1, "Starting round, 0-based (-1 = from config)")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable audio")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := "chomp"
	if len(args) == 1 {
		gameID = args[0]
	}

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'chomp list' to see available games.")
		os.Exit(1)
	}

	// Load game configuration
	gameCfg, err := config.LoadChomp(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// CLI flags override the config file
	if flagLives > 0 {
		gameCfg.Game.Lives = flagLives
	}
	if flagRound >= 0 {
		gameCfg.Game.StartRound = flagRound
	}
	if flagMute {
		gameCfg.Audio.Enabled = false
	}

	chomp.SetLives(gameCfg.Game.Lives)
	chomp.SetStartRound(gameCfg.Game.StartRound)

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Create runtime config
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Create game instance
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	// Start the audio engine
	var sounds tui.SoundSink
	engine, err := audio.NewEngine(gameCfg.Audio)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: audio unavailable: %v\n", err)
	} else {
		sounds = engine
		defer engine.Close()
	}

	// Run the game
	runErr := tui.Run(game, store, sounds, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
