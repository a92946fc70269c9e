package logroll

import (
	"math"
	"testing"

	"github.com/vovakirdan/logroll/internal/config"
	"github.com/vovakirdan/logroll/internal/core"
	"github.com/vovakirdan/logroll/internal/grid"
)

// fakeBody records commands and only moves when told to.
type fakeBody struct {
	x, y      float64
	angle     float64
	vx, vy    float64
	spin      float64
	width     float64
	released  bool
	destroyed bool
}

func (b *fakeBody) X() float64                   { return b.x }
func (b *fakeBody) Y() float64                   { return b.y }
func (b *fakeBody) Angle() float64               { return b.angle }
func (b *fakeBody) Width() float64               { return b.width }
func (b *fakeBody) SetPosition(x, y float64)     { b.x, b.y = x, y }
func (b *fakeBody) SetVelocity(vx, vy float64)   { b.vx, b.vy = vx, vy }
func (b *fakeBody) SetAngle(deg float64)         { b.angle = deg }
func (b *fakeBody) SetAngularVelocity(v float64) { b.spin = v }
func (b *fakeBody) Release()                     { b.released = true }
func (b *fakeBody) Destroy()                     { b.destroyed = true }

type fakeSpawner struct {
	spawned []*fakeBody
}

func (f *fakeSpawner) SpawnItem(kind ItemKind, x, y float64) Body {
	b := &fakeBody{x: x, y: y, width: kind.Width}
	f.spawned = append(f.spawned, b)
	return b
}

type fixture struct {
	sim     *Sim
	log     *fakeBody
	char    *fakeBody
	spawner *fakeSpawner
	events  *core.Recorder
}

// newFixture builds a run on an 800x600 playfield. With the default grid
// the band is 475..525 and its middle is 500.
func newFixture(t *testing.T, mutate func(*config.LogrollConfig)) *fixture {
	t.Helper()
	cfg := config.DefaultLogrollConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	layout, err := grid.New(cfg.Grid.Columns, cfg.Grid.Rows, 800, 600, grid.AnchorCenter)
	if err != nil {
		t.Fatalf("grid.New() error = %v", err)
	}

	f := &fixture{
		log:     &fakeBody{x: 400, y: 508, width: cfg.Scene.LogWidth},
		char:    &fakeBody{x: 400, y: 500},
		spawner: &fakeSpawner{},
		events:  &core.Recorder{},
	}
	f.sim = NewSim(cfg, Scene{Log: f.log, Character: f.char, Spawner: f.spawner, Grid: layout}, 42)
	f.sim.SetPublisher(f.events)
	return f
}

func (f *fixture) update(actions ...core.Action) {
	f.sim.Update(core.FrameOf(actions...), 1.0/60.0)
}

func countEvents(events []core.Event, name string) int {
	n := 0
	for _, e := range events {
		if e.Name() == name {
			n++
		}
	}
	return n
}

func TestBand(t *testing.T) {
	f := newFixture(t, nil)
	yMin, yMax := f.sim.Band()
	if yMin != 475 || yMax != 525 {
		t.Errorf("Band() = (%v, %v), expected (475, 525)", yMin, yMax)
	}
}

func TestWalkedBackScenario(t *testing.T) {
	f := newFixture(t, nil)
	f.char.y = 510
	f.sim.state.YInertia = 5 // 0.5 walked back per tick

	for i := 0; i < 7; i++ {
		f.update()
	}
	st := f.sim.State()
	if st.WalkedBack != 3.5 {
		t.Errorf("WalkedBack after 7 ticks = %v, expected 3.5", st.WalkedBack)
	}
	if st.GameOver {
		t.Fatal("game should continue after 7 backward ticks")
	}

	for i := 0; i < 7; i++ {
		f.update()
	}
	st = f.sim.State()
	if st.WalkedBack != 7 {
		t.Errorf("WalkedBack after 14 ticks = %v, expected 7", st.WalkedBack)
	}
	if !st.GameOver {
		t.Fatal("game should be over after 14 backward ticks")
	}
	if st.Reason != ReasonWalkedBackTooFar {
		t.Errorf("Reason = %v, expected %v", st.Reason, ReasonWalkedBackTooFar)
	}
	if st.Walked != 0 {
		t.Errorf("Walked = %v, expected 0", st.Walked)
	}
	if !f.log.released {
		t.Error("log should be released on game over")
	}
}

func TestLogTippedScenario(t *testing.T) {
	f := newFixture(t, nil)
	f.log.angle = 21

	f.update()

	st := f.sim.State()
	if !st.GameOver {
		t.Fatal("game should be over when the log passes the drop angle")
	}
	if st.Reason != ReasonLogTipped {
		t.Errorf("Reason = %v, expected %v", st.Reason, ReasonLogTipped)
	}
	if st.Walking {
		t.Error("Walking should be cleared on game over")
	}
}

func TestLogAtDropAngleContinues(t *testing.T) {
	f := newFixture(t, nil)
	f.log.angle = -20

	f.update()

	if f.sim.State().GameOver {
		t.Error("an angle equal to the drop angle should not end the run")
	}
}

func TestFellOffBand(t *testing.T) {
	f := newFixture(t, nil)

	for i := 1; i <= 200; i++ {
		f.update(core.ActionDown)
		st := f.sim.State()

		if st.WalkedBack < 0 {
			t.Fatalf("tick %d: WalkedBack = %v, expected >= 0", i, st.WalkedBack)
		}
		if st.MovingForward && st.MovingBackward {
			t.Fatalf("tick %d: moving forward and backward at once", i)
		}

		_, yMax := f.sim.Band()
		if f.char.y > yMax {
			if !st.GameOver {
				t.Fatalf("tick %d: character at %v is below the band but the run continues", i, f.char.y)
			}
			if st.Reason != ReasonFellOffBand {
				t.Errorf("Reason = %v, expected %v", st.Reason, ReasonFellOffBand)
			}
			return
		}
		if st.GameOver {
			t.Fatalf("tick %d: unexpected game over (%v)", i, st.Reason)
		}
	}
	t.Fatal("character never left the band")
}

func TestTerminationOrder(t *testing.T) {
	tests := []struct {
		name       string
		walkedBack float64
		charY      float64
		angle      float64
		walked     float64
		want       Reason
	}{
		{"all rules", 7, 600, 30, 100, ReasonWalkedBackTooFar},
		{"band before angle", 0, 400, 30, 100, ReasonFellOffBand},
		{"angle before goal", 0, 500, -30, 100, ReasonLogTipped},
		{"goal", 0, 500, 0, 100, ReasonGoalReached},
		{"nominal", 0, 500, 0, 50, ReasonNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, nil)
			f.sim.state.WalkedBack = tt.walkedBack
			f.sim.state.Walked = tt.walked
			f.sim.state.LastScoreAt = int(tt.walked)
			f.sim.state.LastBonusAt = int(tt.walked)
			f.sim.state.LastItemDropAt = tt.walked
			f.char.y = tt.charY
			f.log.angle = tt.angle

			f.update()

			st := f.sim.State()
			if st.Reason != tt.want {
				t.Errorf("Reason = %v, expected %v", st.Reason, tt.want)
			}
			if st.GameOver != (tt.want != ReasonNone) {
				t.Errorf("GameOver = %v, expected %v", st.GameOver, tt.want != ReasonNone)
			}
		})
	}
}

func TestEndlessIgnoresGoal(t *testing.T) {
	f := newFixture(t, func(c *config.LogrollConfig) { c.Walking.Goal = 0 })
	f.sim.state.Walked = 500
	f.sim.state.LastScoreAt = 500
	f.sim.state.LastBonusAt = 500
	f.sim.state.LastItemDropAt = 500

	f.update()

	if f.sim.State().GameOver {
		t.Error("a zero goal should never end the run")
	}
}

func TestGameOverIsFrozen(t *testing.T) {
	f := newFixture(t, nil)
	f.log.angle = 25
	f.update()

	before := f.sim.State()
	f.char.y = 490
	f.sim.state.YInertia = -3
	for i := 0; i < 30; i++ {
		f.update(core.ActionUp, core.ActionLeft)
	}
	after := f.sim.State()

	if !after.GameOver {
		t.Fatal("GameOver must stay true")
	}
	if after.Score != before.Score || after.Walked != before.Walked {
		t.Errorf("score/walked changed after game over: %d/%v -> %d/%v",
			before.Score, before.Walked, after.Score, after.Walked)
	}
	if after.Tick != before.Tick {
		t.Errorf("Tick = %d, expected frozen at %d", after.Tick, before.Tick)
	}
	if f.char.y != 490 {
		t.Errorf("character was moved after game over, Y = %v", f.char.y)
	}
}

func TestSessionEndedOnce(t *testing.T) {
	f := newFixture(t, nil)
	calls := 0
	var got SessionEnded
	f.sim.SetSessionSink(SessionSinkFunc(func(r SessionEnded) {
		calls++
		got = r
	}))

	f.sim.state.Score = 700
	f.sim.state.Walked = 7.5
	f.sim.state.LastScoreAt = 7
	f.sim.state.LastBonusAt = 7
	f.sim.state.LastItemDropAt = 7.5
	f.log.angle = 21
	f.sim.Update(core.NewInputFrame(), 0.5)
	if calls != 0 {
		t.Fatal("session must not end before the delay")
	}

	// 1.5 s delay at 0.5 s per tick
	f.sim.Update(core.NewInputFrame(), 0.5)
	f.sim.Update(core.NewInputFrame(), 0.5)
	if calls != 0 {
		t.Fatalf("session ended early after 1.0 s")
	}
	f.sim.Update(core.NewInputFrame(), 0.5)
	if calls != 1 {
		t.Fatalf("sink calls after delay = %d, expected 1", calls)
	}
	for i := 0; i < 10; i++ {
		f.sim.Update(core.NewInputFrame(), 0.5)
	}
	if calls != 1 {
		t.Errorf("sink calls = %d, expected exactly 1", calls)
	}
	if !f.sim.Ended() {
		t.Error("Ended() = false, expected true")
	}

	expected := SessionEnded{Score: 700, Walked: 7.5, Reason: ReasonLogTipped}
	if got != expected {
		t.Errorf("result = %+v, expected %+v", got, expected)
	}

	events := f.events.Events()
	if n := countEvents(events, EventSessionEnded); n != 1 {
		t.Errorf("session-ended events = %d, expected 1", n)
	}
	if n := countEvents(events, EventSceneStateChanged); n != 14 {
		t.Errorf("scene-state-changed events = %d, expected one per update (14)", n)
	}
}

func TestInertiaPerturbation(t *testing.T) {
	f := newFixture(t, nil)
	f.update()

	st := f.sim.State()
	if st.XInertia == 0 {
		t.Fatal("XInertia should receive a nonzero kick")
	}
	if math.Abs(st.XInertia) > 0.05*1.01 {
		t.Errorf("XInertia = %v, expected within the perturbation range", st.XInertia)
	}
	if f.log.spin != st.XInertia/100 {
		t.Errorf("log spin = %v, expected %v", f.log.spin, st.XInertia/100)
	}

	// Growth compounds every tick
	prev := st.XInertia
	f.update()
	if got := f.sim.State().XInertia; math.Abs(got-prev*1.01) > 1e-12 {
		t.Errorf("XInertia = %v, expected %v", got, prev*1.01)
	}
}

func TestZeroPerturbationStillDrifts(t *testing.T) {
	f := newFixture(t, func(c *config.LogrollConfig) { c.Inertia.Perturbation = 0 })
	for i := 0; i < 600; i++ {
		f.update()
	}

	if f.sim.State().XInertia == 0 {
		t.Error("XInertia = 0 after idle ticks, expected the log to drift")
	}
	if f.log.spin == 0 {
		t.Error("log spin = 0 after idle ticks, expected nonzero")
	}
}

func TestLateralInput(t *testing.T) {
	tests := []struct {
		name    string
		actions []core.Action
		delta   float64
	}{
		{"left", []core.Action{core.ActionLeft}, -0.05},
		{"right", []core.Action{core.ActionRight}, 0.05},
		{"left wins over right", []core.Action{core.ActionLeft, core.ActionRight}, -0.05},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, nil)
			f.sim.state.XInertia = 1
			f.update(tt.actions...)

			want := 1*1.01 + tt.delta
			if got := f.sim.State().XInertia; math.Abs(got-want) > 1e-12 {
				t.Errorf("XInertia = %v, expected %v", got, want)
			}
		})
	}
}

func TestVerticalInput(t *testing.T) {
	tests := []struct {
		name     string
		actions  []core.Action
		yInertia float64
		dy       float64
	}{
		{"up", []core.Action{core.ActionUp}, -0.05, -0.5},
		{"down", []core.Action{core.ActionDown}, 0.05, 0.5},
		{"up wins over down", []core.Action{core.ActionUp, core.ActionDown}, -0.05, -0.5},
		{"none", nil, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, nil)
			f.update(tt.actions...)

			if got := f.sim.State().YInertia; got != tt.yInertia {
				t.Errorf("YInertia = %v, expected %v", got, tt.yInertia)
			}
			if f.char.y != 500+tt.dy {
				t.Errorf("character Y = %v, expected %v", f.char.y, 500+tt.dy)
			}
			if f.log.y != 508+tt.dy {
				t.Errorf("log Y = %v, expected %v", f.log.y, 508+tt.dy)
			}
		})
	}
}

func TestCharacterFollowsLog(t *testing.T) {
	f := newFixture(t, nil)
	f.log.angle = 10

	f.update()

	if f.char.x != 400.5 || f.log.x != 400.5 {
		t.Errorf("X = char %v / log %v, expected 400.5", f.char.x, f.log.x)
	}
	if f.char.angle != 10 {
		t.Errorf("character angle = %v, expected 10", f.char.angle)
	}
}

func TestMotionFlags(t *testing.T) {
	tests := []struct {
		name     string
		y        float64
		angle    float64
		forward  bool
		backward bool
		walking  bool
	}{
		{"forward", 490, 0, true, false, true},
		{"backward", 510, 0, false, true, true},
		{"dead zone", 502, 0, false, false, false},
		{"tilted in dead zone", 500, 4, false, false, true},
		{"dead zone edge", 497, 0, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, nil)
			f.char.y = tt.y
			f.log.angle = tt.angle

			f.update()

			st := f.sim.State()
			if st.MovingForward != tt.forward || st.MovingBackward != tt.backward {
				t.Errorf("flags = (%v, %v), expected (%v, %v)",
					st.MovingForward, st.MovingBackward, tt.forward, tt.backward)
			}
			if st.Walking != tt.walking {
				t.Errorf("Walking = %v, expected %v", st.Walking, tt.walking)
			}
		})
	}
}

func TestForwardDistance(t *testing.T) {
	f := newFixture(t, nil)
	f.char.y = 490
	f.sim.state.YInertia = -2
	f.sim.state.WalkedBack = 0.1
	before := f.sim.Lanes()

	f.update()

	st := f.sim.State()
	if math.Abs(st.Walked-0.2) > 1e-12 {
		t.Errorf("Walked = %v, expected 0.2", st.Walked)
	}
	if st.WalkedBack != 0 {
		t.Errorf("WalkedBack = %v, expected floor 0", st.WalkedBack)
	}

	after := f.sim.Lanes()
	for i := range after {
		if after[i].Y != before[i].Y+2 && after[i].Y != f.sim.lanes.top {
			t.Errorf("lane %d moved from %v to %v, expected +2 or a wrap", i, before[i].Y, after[i].Y)
		}
	}
}

func TestScorePerUnit(t *testing.T) {
	f := newFixture(t, nil)
	f.char.y = 490
	f.sim.state.YInertia = -5 // 0.5 per tick

	for i := 0; i < 6; i++ {
		f.update()
	}

	st := f.sim.State()
	if st.Walked != 3 {
		t.Fatalf("Walked = %v, expected 3", st.Walked)
	}
	if st.Score != 300 {
		t.Errorf("Score = %d, expected 300", st.Score)
	}
	if st.LastScoreAt != 3 {
		t.Errorf("LastScoreAt = %d, expected 3", st.LastScoreAt)
	}

	// Walking back and forth again does not pay twice
	f.char.y = 510
	f.sim.state.YInertia = 5
	f.update()
	f.update()
	f.char.y = 490
	f.sim.state.YInertia = -5
	f.update()
	f.update()
	if got := f.sim.State().Score; got != 300 {
		t.Errorf("Score after re-crossing = %d, expected 300", got)
	}
}

func TestItemDroppedScenario(t *testing.T) {
	f := newFixture(t, nil)
	f.sim.dropItem("box_2")
	if len(f.spawner.spawned) != 1 {
		t.Fatalf("spawned = %d, expected 1", len(f.spawner.spawned))
	}
	item := f.spawner.spawned[0]

	f.update()
	if got := f.sim.State().Score; got != 0 {
		t.Fatalf("Score before the drop = %d, expected 0", got)
	}

	item.y = 651
	f.update()
	f.update()

	if got := f.sim.State().Score; got != -200 {
		t.Errorf("Score = %d, expected -200", got)
	}
	if !item.destroyed {
		t.Error("dropped item should be destroyed")
	}
	if len(f.sim.Items()) != 0 {
		t.Errorf("active items = %d, expected 0", len(f.sim.Items()))
	}

	var dropped []ItemDropped
	for _, e := range f.events.Events() {
		if d, ok := e.(ItemDropped); ok {
			dropped = append(dropped, d)
		}
	}
	if len(dropped) != 1 {
		t.Fatalf("item-dropped events = %d, expected 1", len(dropped))
	}
	if dropped[0].Penalty != 200 || dropped[0].Multiplier != 2 {
		t.Errorf("event = %+v, expected penalty 200 for multiplier 2", dropped[0])
	}
}

func TestItemAtBoundaryStays(t *testing.T) {
	f := newFixture(t, nil)
	f.sim.dropItem("box_1")
	f.spawner.spawned[0].y = 650

	f.update()

	if len(f.sim.Items()) != 1 {
		t.Error("item exactly at the bound should stay active")
	}
}

func TestUnknownKindMultiplier(t *testing.T) {
	f := newFixture(t, nil)

	if got := f.sim.Kind("anvil").Multiplier; got != 1 {
		t.Errorf("Kind(anvil).Multiplier = %d, expected 1", got)
	}
	if got := f.sim.Kind("mini_log_1").Multiplier; got != 3 {
		t.Errorf("Kind(mini_log_1).Multiplier = %d, expected 3", got)
	}

	f.sim.dropItem("anvil")
	if got := f.sim.Carried(); got != 1 {
		t.Errorf("Carried() = %d, expected 1", got)
	}
}

func TestItemSpawnCadence(t *testing.T) {
	f := newFixture(t, nil)
	f.sim.state.Walked = 4.9
	f.update()
	if len(f.spawner.spawned) != 0 {
		t.Fatalf("spawned = %d before the cadence, expected 0", len(f.spawner.spawned))
	}

	f.sim.state.Walked = 5
	f.update()
	if len(f.spawner.spawned) != 1 {
		t.Fatalf("spawned = %d at the cadence, expected 1", len(f.spawner.spawned))
	}

	st := f.sim.State()
	if st.LastItemDropAt != 5 {
		t.Errorf("LastItemDropAt = %v, expected 5", st.LastItemDropAt)
	}
	item := f.spawner.spawned[0]
	if item.y != 0 {
		t.Errorf("item Y = %v, expected 0", item.y)
	}
	if item.x < 400-48 || item.x > 400+48 {
		t.Errorf("item X = %v, expected within the log extent", item.x)
	}

	f.update()
	if len(f.spawner.spawned) != 1 {
		t.Errorf("spawned = %d on the next tick, expected still 1", len(f.spawner.spawned))
	}
}

func TestBonus(t *testing.T) {
	f := newFixture(t, nil)
	f.sim.dropItem("box_1")
	f.sim.dropItem("mini_log_1")
	f.sim.state.LastItemDropAt = 100 // no new spawns

	f.sim.state.Walked = 10
	f.update()

	st := f.sim.State()
	if st.Score != 10*100+50*4 {
		t.Errorf("Score = %d, expected %d", st.Score, 10*100+50*4)
	}
	if st.LastBonusAt != 10 {
		t.Errorf("LastBonusAt = %d, expected 10", st.LastBonusAt)
	}

	f.sim.state.Walked = 19.5
	f.update()
	if n := countEvents(f.events.Events(), EventBonusApplied); n != 1 {
		t.Errorf("bonus events before the next cadence = %d, expected 1", n)
	}

	f.sim.state.Walked = 20
	f.update()

	var bonuses []BonusApplied
	for _, e := range f.events.Events() {
		if b, ok := e.(BonusApplied); ok {
			bonuses = append(bonuses, b)
		}
	}
	if len(bonuses) != 2 {
		t.Fatalf("bonus events = %d, expected 2", len(bonuses))
	}
	if bonuses[0].Amount != 200 || bonuses[0].Carried != 4 {
		t.Errorf("bonus = %+v, expected amount 200 for 4 carried", bonuses[0])
	}
}

func TestBonusWithoutItems(t *testing.T) {
	f := newFixture(t, nil)
	f.sim.state.LastItemDropAt = 100
	f.sim.state.Walked = 10

	f.update()

	st := f.sim.State()
	if st.Score != 1000 {
		t.Errorf("Score = %d, expected 1000", st.Score)
	}
	if st.LastBonusAt != 10 {
		t.Errorf("LastBonusAt = %d, expected 10", st.LastBonusAt)
	}
	if n := countEvents(f.events.Events(), EventBonusApplied); n != 0 {
		t.Errorf("bonus events = %d, expected 0 for an empty bonus", n)
	}
}

func TestSnapshotMirrorsState(t *testing.T) {
	f := newFixture(t, nil)
	f.log.angle = 5
	f.update()

	events := f.events.Events()
	last, ok := events[len(events)-1].(SceneStateChanged)
	if !ok {
		t.Fatalf("last event = %T, expected SceneStateChanged", events[len(events)-1])
	}
	snap := last.Snapshot
	if snap.LogAngle != 5 || snap.XPos != f.char.x || snap.YPos != f.char.y {
		t.Errorf("snapshot pose = (%v, %v, %v), expected (5, %v, %v)",
			snap.LogAngle, snap.XPos, snap.YPos, f.char.x, f.char.y)
	}
	if snap.Tick != 1 || snap.Reason != "none" {
		t.Errorf("snapshot = %+v", snap)
	}
}
