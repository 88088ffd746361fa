package config

import "testing"

func TestDifficultyControllerSteps(t *testing.T) {
	d := NewDifficultyController(DefaultRacerConfig().Difficulty)

	if d.BaseSpeed() != 3 || d.CoinsCollected() != 0 || d.Level() != 0 {
		t.Fatalf("unexpected initial state: speed=%v coins=%d level=%d", d.BaseSpeed(), d.CoinsCollected(), d.Level())
	}

	prev := d.BaseSpeed()
	for i := 1; i <= 23; i++ {
		grew := d.OnCoinCollected()

		if d.BaseSpeed() < prev {
			t.Fatalf("base speed decreased at coin %d", i)
		}
		if grew != (i%5 == 0) {
			t.Errorf("coin %d: grew = %v", i, grew)
		}
		steps := i / 5
		if want := 3 + 0.5*float64(steps); d.BaseSpeed() != want {
			t.Errorf("coin %d: base speed = %v, expected %v", i, d.BaseSpeed(), want)
		}
		if d.Level() != steps {
			t.Errorf("coin %d: level = %d, expected %d", i, d.Level(), steps)
		}
		prev = d.BaseSpeed()
	}
}

func TestDifficultyControllerFifthCoin(t *testing.T) {
	d := NewDifficultyController(DefaultRacerConfig().Difficulty)
	for i := 0; i < 4; i++ {
		d.OnCoinCollected()
	}
	before := d.BaseSpeed()

	if !d.OnCoinCollected() {
		t.Error("fifth coin should raise the speed")
	}
	if d.CoinsCollected() != 5 {
		t.Errorf("coins = %d, expected 5", d.CoinsCollected())
	}
	if d.BaseSpeed()-before != 0.5 {
		t.Errorf("speed grew by %v, expected 0.5", d.BaseSpeed()-before)
	}
}

func TestDifficultyControllerDisabled(t *testing.T) {
	cfg := DefaultRacerConfig().Difficulty
	cfg.Enabled = false
	d := NewDifficultyController(cfg)

	for i := 0; i < 10; i++ {
		if d.OnCoinCollected() {
			t.Fatal("disabled controller should never raise the speed")
		}
	}
	if d.CoinsCollected() != 10 {
		t.Errorf("coins should still be counted, got %d", d.CoinsCollected())
	}
	if d.BaseSpeed() != cfg.InitialSpeed || d.Level() != 0 {
		t.Errorf("speed = %v level = %d, expected initial values", d.BaseSpeed(), d.Level())
	}
}

func TestDifficultyControllerReset(t *testing.T) {
	d := NewDifficultyController(DefaultRacerConfig().Difficulty)
	for i := 0; i < 12; i++ {
		d.OnCoinCollected()
	}
	d.Reset()

	if d.CoinsCollected() != 0 || d.BaseSpeed() != d.InitialSpeed() {
		t.Errorf("Reset should restore initial state, coins=%d speed=%v", d.CoinsCollected(), d.BaseSpeed())
	}
}
