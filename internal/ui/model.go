package ui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"fatcat/internal/pet"
	"fatcat/internal/wander"
)

const (
	playgroundWidth  = 32
	playgroundHeight = 7

	minPlaygroundWidth  = 8
	minPlaygroundHeight = 3
	// rows used by everything but the playground
	chromeHeight = 24
)

var menuOptions = []string{"Pat", "Hug", "Feed", "Water", "Sleep", "Play", "Quit"}

const (
	choicePat = iota
	choiceHug
	choiceFeed
	choiceWater
	choiceSleep
	choicePlay
	choiceQuit
)

// Options configures the game model
type Options struct {
	TickInterval  time.Duration
	MoveInterval  time.Duration
	AlertInterval time.Duration
}

// Model represents the game state
type Model struct {
	Engine *pet.Engine
	Pet    pet.Stats
	Opts   Options

	Choice         int
	Quitting       bool
	Message        string
	MessageExpires time.Time
	Speech         string
	SpeechExpires  time.Time
	InCheatMenu    bool
	CheatChoice    int
	InGame         bool
	HandChoice     int
	Animation      Animation

	Walker    *wander.Walker
	moving    bool // walked since the last engine tick
	lastAlert time.Time
	speech    pet.SpeechGate

	updates <-chan pet.Stats
	cancel  context.CancelFunc
}

type tickMsg time.Time
type moveMsg time.Time
type statsMsg pet.Stats
type animTickMsg struct {
	started time.Time
}

// NewModel creates a new game model around an engine
func NewModel(engine *pet.Engine, opts Options) Model {
	if opts.TickInterval <= 0 {
		opts.TickInterval = pet.TickInterval
	}
	if opts.MoveInterval <= 0 {
		opts.MoveInterval = time.Second
	}
	if opts.AlertInterval <= 0 {
		opts.AlertInterval = pet.StatusAlertInterval
	}
	ctx, cancel := context.WithCancel(context.Background())
	return Model{
		Engine:  engine,
		Pet:     engine.Snapshot(),
		Opts:    opts,
		Walker:  newWalker(),
		updates: engine.Subscribe(ctx),
		cancel:  cancel,
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return tea.Batch(tick(m.Opts.TickInterval), move(m.Opts.MoveInterval), waitForStats(m.updates))
}

func newWalker() *wander.Walker {
	return wander.New(playgroundWidth, playgroundHeight)
}

// playgroundSize fits the playground into a terminal of the given size.
func playgroundSize(width, height int) (int, int) {
	w := max(minPlaygroundWidth, min(width-2, playgroundWidth))
	h := max(minPlaygroundHeight, min(height-chromeHeight, playgroundHeight))
	return w, h
}

func tick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func move(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return moveMsg(t)
	})
}

func animTick(start time.Time) tea.Cmd {
	return tea.Tick(AnimationFrameDuration, func(t time.Time) tea.Msg {
		return animTickMsg{started: start}
	})
}

// waitForStats blocks on the engine subscription and hands the next snapshot to Update.
func waitForStats(ch <-chan pet.Stats) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		s, ok := <-ch
		if !ok {
			return nil
		}
		return statsMsg(s)
	}
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m.quit()
		}

		// While an animation is playing, ignore inputs
		if m.Animation.Type != AnimNone {
			return m, nil
		}
		if m.InCheatMenu {
			return m.updateCheatMenu(msg)
		}
		if m.InGame {
			return m.updateGame(msg)
		}

		switch msg.String() {
		case "c":
			m.InCheatMenu = true
			m.CheatChoice = 0
		case "t":
			m.say("")
		case "up", "k":
			if m.Choice > 0 {
				m.Choice--
			}
		case "down", "j":
			if m.Choice < len(menuOptions)-1 {
				m.Choice++
			}
		case "enter", " ":
			return m.selectMenu()
		}

	case tickMsg:
		m.Pet = m.Engine.Tick(m.moving)
		m.moving = false
		m.checkAlerts(time.Time(msg))
		m.say("")
		return m, tick(m.Opts.TickInterval)

	case moveMsg:
		if m.Walker.Step(m.Engine.CanMove()) {
			m.moving = true
		}
		return m, move(m.Opts.MoveInterval)

	case tea.WindowSizeMsg:
		m.Walker.Resize(playgroundSize(msg.Width, msg.Height))
		return m, nil

	case statsMsg:
		m.Pet = pet.Stats(msg)
		return m, waitForStats(m.updates)

	case animTickMsg:
		// Drop ticks that belong to an older animation
		if m.Animation.Type == AnimNone || !m.Animation.StartTime.Equal(msg.started) {
			return m, nil
		}

		m.Animation.Frame++
		if IsAnimationComplete(m.Animation) {
			m.Animation = Animation{}
			return m, nil
		}
		return m, animTick(m.Animation.StartTime)
	}

	return m, nil
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.Quitting = true
	if m.cancel != nil {
		m.cancel()
	}
	return m, tea.Quit
}

func (m Model) selectMenu() (tea.Model, tea.Cmd) {
	switch m.Choice {
	case choicePat:
		m.Engine.PatHead()
		m.setMessage("😽 Purr...")
		m.startAnimation(AnimPat)
	case choiceHug:
		m.Engine.Hug()
		m.setMessage("🤗 Squeeze!")
		m.startAnimation(AnimHug)
	case choiceFeed:
		m.Engine.Feed()
		m.setMessage("🍖 Yum!")
		m.startAnimation(AnimFeed)
	case choiceWater:
		m.Engine.FeedWater()
		m.setMessage("💧 Slurp!")
		m.startAnimation(AnimWater)
	case choiceSleep:
		m.Engine.ForceSleep()
		m.setMessage("🛏️ Tucked in. Pat or hug to wake early.")
		m.startAnimation(AnimSleep)
	case choicePlay:
		m.InGame = true
		m.HandChoice = 0
		return m, nil
	case choiceQuit:
		return m.quit()
	}
	m.Pet = m.Engine.Snapshot()
	return m, animTick(m.Animation.StartTime)
}

var hands = []pet.Hand{pet.Rock, pet.Paper, pet.Scissors}

func (m Model) updateGame(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.InGame = false
	case "up", "k":
		if m.HandChoice > 0 {
			m.HandChoice--
		}
	case "down", "j":
		if m.HandChoice < len(hands)-1 {
			m.HandChoice++
		}
	case "enter", " ":
		m.InGame = false
		player := hands[m.HandChoice]
		opponent := pet.RandomHand()
		reward := m.Engine.PlayMiniGame(pet.Judge(player, opponent))
		m.Pet = m.Engine.Snapshot()
		m.setMessage(gameMessage(player, opponent, reward))
		if reward.LeveledUp {
			m.startAnimation(AnimLevelUp)
			m.say(pet.SpeechLevelUp)
		} else {
			m.startAnimation(AnimGame)
		}
		return m, animTick(m.Animation.StartTime)
	}
	return m, nil
}

func gameMessage(player, opponent pet.Hand, r pet.GameReward) string {
	var verdict string
	switch r.Result {
	case pet.ResultWin:
		verdict = "You win!"
	case pet.ResultDraw:
		verdict = "Draw!"
	default:
		verdict = "You lose!"
	}
	msg := fmt.Sprintf("%s vs %s %s +%d exp, -%d energy", player.Emoji(), opponent.Emoji(), verdict, r.ExpGained, r.EnergyCost)
	if r.LeveledUp {
		msg += fmt.Sprintf(" 🎉 Level %d!", r.NewLevel)
	}
	return msg
}

func (m *Model) setMessage(msg string) {
	m.Message = msg
	m.MessageExpires = pet.TimeNow().Add(3 * time.Second)
}

// say shows a speech bubble if the speech pacing allows it
func (m *Model) say(trigger string) {
	line, urgent := pet.Speak(m.Pet, trigger)
	if line == "" {
		return
	}
	now := pet.TimeNow()
	if trigger == "" && !m.speech.Allow(now, urgent) {
		return
	}
	m.Speech = line
	m.SpeechExpires = now.Add(5 * time.Second)
}

// checkAlerts raises a low-needs alert at most once per alert interval
func (m *Model) checkAlerts(now time.Time) {
	alert := pet.AlertMessage(m.Pet, pet.StatusAlertThreshold)
	if alert == "" {
		return
	}
	if !m.lastAlert.IsZero() && now.Sub(m.lastAlert) < m.Opts.AlertInterval {
		return
	}
	m.lastAlert = now
	m.setMessage(alert)
}

func (m *Model) startAnimation(animType AnimationType) {
	m.Animation = Animation{
		Type:      animType,
		Frame:     0,
		StartTime: pet.TimeNow(),
	}
}
