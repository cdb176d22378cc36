package scoring

import (
	"testing"
	"time"
)

func TestTimeBonus(t *testing.T) {
	cases := []struct {
		elapsed time.Duration
		want    int
	}{
		{0, 500},
		{10 * time.Second, 450},
		{50 * time.Second, 250},
		{100 * time.Second, 0},
		{200 * time.Second, 0},
	}

	for _, tc := range cases {
		if got := TimeBonus(tc.elapsed); got != tc.want {
			t.Errorf("TimeBonus(%v) = %d, want %d", tc.elapsed, got, tc.want)
		}
	}
}

func TestEarnedScore(t *testing.T) {
	cases := []struct {
		name    string
		delta   int
		elapsed time.Duration
		want    int
	}{
		{"instant answer full bonus", 300, 0, 800},
		{"bonus decayed to zero", 300, 100 * time.Second, 300},
		{"well past the bonus window", 300, 200 * time.Second, 300},
		{"zero delta uses default base", 0, 0, 600},
		{"fallback delta", 50, 20 * time.Second, 450},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := EarnedScore(tc.delta, tc.elapsed); got != tc.want {
				t.Errorf("EarnedScore(%d, %v) = %d, want %d", tc.delta, tc.elapsed, got, tc.want)
			}
		})
	}
}

func TestGradeMedal(t *testing.T) {
	cases := []struct {
		avg  float64
		want Medal
	}{
		{650, MedalGold},
		{600, MedalGold},
		{599.9, MedalSilver},
		{400, MedalSilver},
		{399.9, MedalBronze},
		{0, MedalBronze},
	}

	for _, tc := range cases {
		if got := GradeMedal(tc.avg); got != tc.want {
			t.Errorf("GradeMedal(%v) = %s, want %s", tc.avg, got, tc.want)
		}
	}
}

func TestParseMedal(t *testing.T) {
	if m, ok := ParseMedal("GOLD"); !ok || m != MedalGold {
		t.Errorf("ParseMedal(GOLD) = %s, %v", m, ok)
	}
	if _, ok := ParseMedal("PLATINUM"); ok {
		t.Error("ParseMedal should reject unknown values")
	}
	if _, ok := ParseMedal(""); ok {
		t.Error("ParseMedal should reject the empty string")
	}
}
