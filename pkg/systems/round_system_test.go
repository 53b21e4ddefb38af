package systems

import (
	"math/rand"
	"testing"

	"github.com/decker502/birdquest/pkg/config"
	"github.com/decker502/birdquest/pkg/ecs"
	"github.com/decker502/birdquest/pkg/game"
	"github.com/decker502/birdquest/pkg/types"
)

type roundHarness struct {
	round    *RoundSystem
	clock    *ManualClock
	notifier *recordingNotifier
	tiers    []types.Tier
}

func newRoundHarness(t *testing.T, cfg *config.RoundConfig) *roundHarness {
	t.Helper()
	h := &roundHarness{
		clock:    &ManualClock{},
		notifier: &recordingNotifier{},
	}
	h.round = NewRoundSystem(RoundOptions{
		Config:     cfg,
		Viewport:   func() (int, int) { return 800, 600 },
		Notifier:   h.notifier,
		NewTrigger: h.clock.NewTrigger,
		Rand:       rand.New(rand.NewSource(11)),
	})
	h.round.OnCapture(func(ev CaptureEvent) { h.tiers = append(h.tiers, ev.Tier) })
	return h
}

// birdID 按原型ID查找本局的鸟
func (h *roundHarness) birdID(t *testing.T, archetype string) ecs.EntityID {
	t.Helper()
	for _, b := range h.round.Birds() {
		if b.ArchetypeID == archetype {
			return b.ID
		}
	}
	t.Fatalf("bird %s not found", archetype)
	return 0
}

func (h *roundHarness) tick(n int) {
	for i := 0; i < n; i++ {
		h.clock.Tick()
		h.round.Update(1.0 / 60)
	}
}

func TestRoundScenarioFifteenSeconds(t *testing.T) {
	cfg := config.DefaultRoundConfig()
	// 2 分的鸟落在安慰档
	cfg.Tiers.Nice = 3
	h := newRoundHarness(t, cfg)

	var expiredWith []int
	h.round.OnExpire(func(score int) { expiredWith = append(expiredWith, score) })

	h.round.Start()
	if got := h.round.Snapshot(); got != (game.RoundSnapshot{SecondsRemaining: 15}) {
		t.Fatalf("Initial snapshot = %+v", got)
	}

	if !h.round.Capture(h.birdID(t, "Swallow")) {
		t.Fatal("Capture of the 10-point bird should be accepted")
	}
	if h.round.Snapshot().Score != 10 || h.tiers[0] != types.TierExceptional {
		t.Errorf("After first capture: score=%d tier=%v", h.round.Snapshot().Score, h.tiers[0])
	}

	if !h.round.Capture(h.birdID(t, "Dove")) {
		t.Fatal("Capture of the 2-point bird should be accepted")
	}
	if h.round.Snapshot().Score != 12 || h.tiers[1] != types.TierConsolation {
		t.Errorf("After second capture: score=%d tier=%v", h.round.Snapshot().Score, h.tiers[1])
	}
	if h.notifier.messages[1] != "Photo taken of a Dove! Good try!" {
		t.Errorf("Second message = %q", h.notifier.messages[1])
	}

	h.tick(14)
	if h.round.Snapshot().IsOver {
		t.Fatal("Round should not be over after 14 ticks")
	}

	h.tick(1)
	want := game.RoundSnapshot{Score: 12, SecondsRemaining: 0, IsOver: true, IsModalShown: true}
	if got := h.round.Snapshot(); got != want {
		t.Errorf("Final snapshot = %+v, want %+v", got, want)
	}
	if len(expiredWith) != 1 || expiredWith[0] != 12 {
		t.Errorf("OnExpire calls = %v, want [12]", expiredWith)
	}
	if h.round.TimerRunning() {
		t.Error("Timer should be canceled after expiry")
	}
}

func TestRoundSecondsStrictlyDecrease(t *testing.T) {
	h := newRoundHarness(t, nil)

	var seconds []int
	var overTransitions int
	lastOver := false
	h.round.Subscribe(func(s game.RoundSnapshot) {
		seconds = append(seconds, s.SecondsRemaining)
		if s.IsOver && !lastOver {
			overTransitions++
		}
		lastOver = s.IsOver
		if s.IsModalShown && !s.IsOver {
			t.Errorf("Modal shown while round not over: %+v", s)
		}
	})

	h.round.Start()
	h.tick(20)

	// 第一个快照来自 Reset
	if seconds[0] != 15 {
		t.Fatalf("First snapshot seconds = %d, want 15", seconds[0])
	}
	for i := 1; i < len(seconds); i++ {
		if seconds[i] != seconds[i-1]-1 {
			t.Fatalf("seconds[%d] = %d, previous %d", i, seconds[i], seconds[i-1])
		}
	}
	if seconds[len(seconds)-1] != 0 {
		t.Errorf("Final seconds = %d, want 0", seconds[len(seconds)-1])
	}
	if overTransitions != 1 {
		t.Errorf("isOver flipped %d times, want 1", overTransitions)
	}
}

func TestRoundFrozenAfterExpiry(t *testing.T) {
	h := newRoundHarness(t, nil)
	h.round.Start()
	h.tick(15)

	before := h.round.Birds()
	id := before[0].ID

	for i := 0; i < 30; i++ {
		h.round.Update(1.0 / 60)
	}
	if h.round.Capture(id) {
		t.Error("Capture after expiry should be rejected")
	}
	if h.round.HandlePointerDown(before[1].X+1, before[1].Y+1) {
		t.Error("Pointer capture after expiry should be rejected")
	}

	after := h.round.Birds()
	for i := range before {
		if before[i].X != after[i].X || before[i].Y != after[i].Y {
			t.Errorf("Bird %s moved after expiry", before[i].ArchetypeID)
		}
	}
	if h.round.Snapshot().Score != 0 {
		t.Errorf("Score = %d, want 0", h.round.Snapshot().Score)
	}
}

func TestRoundRestartResetsEverything(t *testing.T) {
	h := newRoundHarness(t, nil)
	h.round.Start()

	oldBird := h.birdID(t, "Pigeon")
	h.round.Capture(oldBird)
	h.round.Capture(h.birdID(t, "Jay"))
	h.tick(15)
	oldTrigger := h.clock.Current()

	h.round.RequestRestart()
	h.round.Update(1.0 / 60)

	want := game.RoundSnapshot{SecondsRemaining: 15}
	if got := h.round.Snapshot(); got != want {
		t.Errorf("Snapshot after restart = %+v, want %+v", got, want)
	}
	birds := h.round.Birds()
	if len(birds) != len(config.DefaultBirdCatalog().Birds) {
		t.Fatalf("Expected a fresh bird per archetype, got %d", len(birds))
	}
	for _, b := range birds {
		if b.Captured {
			t.Errorf("Bird %s carried over the captured flag", b.ArchetypeID)
		}
		if b.ID == oldBird {
			t.Error("Restart should spawn new entities, not reuse old ones")
		}
	}
	if h.clock.Current() == oldTrigger {
		t.Error("Restart should create a new trigger")
	}
	if !h.round.TimerRunning() {
		t.Error("Timer should run again after restart")
	}

	// 旧触发器即使还能投递也不会影响新的一局
	oldTrigger.FireWithToken(oldTrigger.Token())
	h.round.Update(1.0 / 60)
	if h.round.Snapshot().SecondsRemaining != 15 {
		t.Error("Old trigger leaked a tick into the new round")
	}
}

func TestRoundRestartCancelsRunningTimer(t *testing.T) {
	h := newRoundHarness(t, nil)
	h.round.Start()
	first := h.clock.Current()
	h.tick(3)

	h.round.Restart()

	if !first.Stopped() {
		t.Error("Restart should cancel the previous round's trigger")
	}
	if h.clock.Current().Token() <= first.Token() {
		t.Errorf("New token %d should be greater than old token %d", h.clock.Current().Token(), first.Token())
	}
	if h.round.Snapshot().SecondsRemaining != 15 {
		t.Errorf("SecondsRemaining = %d, want 15", h.round.Snapshot().SecondsRemaining)
	}
}

func TestRoundTeardownIsIdempotent(t *testing.T) {
	h := newRoundHarness(t, nil)

	// 从未开始
	h.round.Teardown()
	h.round.Update(1.0 / 60)
	if h.round.IsRunning() || h.round.Birds() != nil {
		t.Error("Round should not be running before Start")
	}
	if h.round.HandlePointerDown(10, 10) || h.round.Capture(1) {
		t.Error("Input without a simulation should be ignored")
	}

	h.round.Start()
	h.round.Teardown()
	h.round.Teardown()
	if h.round.IsRunning() {
		t.Error("Round should not be running after Teardown")
	}
	if !h.clock.Current().Stopped() {
		t.Error("Teardown should stop the trigger")
	}

	// 拆除后重开
	h.round.Restart()
	if !h.round.IsRunning() || len(h.round.Birds()) == 0 {
		t.Error("Restart after teardown should start a fresh round")
	}
}

func TestRoundViewportReadOncePerRound(t *testing.T) {
	w, hgt := 800, 600
	calls := 0
	round := NewRoundSystem(RoundOptions{
		Viewport: func() (int, int) {
			calls++
			return w, hgt
		},
		NewTrigger: (&ManualClock{}).NewTrigger,
		Rand:       rand.New(rand.NewSource(1)),
	})

	round.Start()
	w, hgt = 1024, 768
	for i := 0; i < 10; i++ {
		round.Update(1.0 / 60)
	}
	if gotW, gotH := round.Viewport(); gotW != 800 || gotH != 600 {
		t.Errorf("Viewport changed mid-round to %dx%d", gotW, gotH)
	}

	round.Restart()
	if gotW, gotH := round.Viewport(); gotW != 1024 || gotH != 768 {
		t.Errorf("Viewport after restart = %dx%d, want 1024x768", gotW, gotH)
	}
	if calls != 2 {
		t.Errorf("Viewport read %d times, want 2", calls)
	}
	for _, b := range round.Birds() {
		if b.X != 1024 {
			t.Errorf("Bird %s X = %v, want 1024", b.ArchetypeID, b.X)
		}
	}
}

func TestRoundBirdsStartDownAndFlap(t *testing.T) {
	h := newRoundHarness(t, nil)
	h.round.Start()

	for _, b := range h.round.Birds() {
		if b.Pose != types.PoseDown {
			t.Errorf("Bird %s should start wing-down", b.ArchetypeID)
		}
		if b.X != 800 {
			t.Errorf("Bird %s X = %v, want 800", b.ArchetypeID, b.X)
		}
	}

	h.round.Update(0.1)
	for _, b := range h.round.Birds() {
		if b.Pose != types.PoseUp {
			t.Errorf("Bird %s should flap up after one frame period", b.ArchetypeID)
		}
	}
}

func TestRoundPointerCapture(t *testing.T) {
	h := newRoundHarness(t, nil)
	h.round.Start()

	// 让所有鸟飞进画面
	for i := 0; i < 40; i++ {
		h.round.Update(1.0 / 60)
	}

	birds := h.round.Birds()
	target := birds[len(birds)-1]
	if !h.round.HandlePointerDown(target.X+target.Width/2, target.Y+target.Height/2) {
		t.Fatal("Click on the topmost bird should capture it")
	}
	if h.round.Snapshot().Score == 0 {
		t.Error("Score should increase after a pointer capture")
	}
	if len(h.notifier.messages) != 1 {
		t.Errorf("Expected 1 notification, got %d", len(h.notifier.messages))
	}
}
