package domain

import "testing"

func TestParsePotency(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw  string
		want Potency
		text string
	}{
		{raw: "30C", want: Potency{Scale: ScaleC, Value: 30}, text: "30C"},
		{raw: "30c", want: Potency{Scale: ScaleC, Value: 30}, text: "30C"},
		{raw: " 200 CH ", want: Potency{Scale: ScaleC, Value: 200}, text: "200C"},
		{raw: "6X", want: Potency{Scale: ScaleX, Value: 6}, text: "6X"},
		{raw: "D12", want: Potency{Scale: ScaleX, Value: 12}, text: "12X"},
		{raw: "1M", want: Potency{Scale: ScaleM, Value: 1}, text: "1M"},
		{raw: "10m", want: Potency{Scale: ScaleM, Value: 10}, text: "10M"},
		{raw: "LM6", want: Potency{Scale: ScaleLM, Value: 6}, text: "LM6"},
		{raw: "lm 1", want: Potency{Scale: ScaleLM, Value: 1}, text: "LM1"},
		{raw: "Q", want: Potency{Scale: ScaleQ}, text: "Q"},
		{raw: "mt", want: Potency{Scale: ScaleQ}, text: "Q"},
		{raw: "Ø", want: Potency{Scale: ScaleQ}, text: "Q"},
	}
	for _, tc := range tests {
		got, err := ParsePotency(tc.raw)
		if err != nil {
			t.Fatalf("ParsePotency(%q) error = %v", tc.raw, err)
		}
		if got != tc.want {
			t.Fatalf("ParsePotency(%q) = %+v, want %+v", tc.raw, got, tc.want)
		}
		if got.String() != tc.text {
			t.Fatalf("ParsePotency(%q).String() = %q, want %q", tc.raw, got.String(), tc.text)
		}
	}
}

func TestParsePotencyRejectsInvalid(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"", "   ", "30", "C", "0C", "-6X", "+6X", "LM", "abcC", "30Z", "200000C", "CM"} {
		if got, err := ParsePotency(raw); err == nil {
			t.Fatalf("ParsePotency(%q) = %+v, want error", raw, got)
		}
	}
}

func TestScaleRankFollowsScalesOrder(t *testing.T) {
	t.Parallel()

	for i, scale := range Scales {
		if got := ScaleRank(scale); got != i {
			t.Fatalf("ScaleRank(%q) = %d, want %d", scale, got, i)
		}
	}
	if got := ScaleRank("Z"); got != len(Scales) {
		t.Fatalf("ScaleRank(unknown) = %d, want %d", got, len(Scales))
	}
}

func TestPotencyZeroValue(t *testing.T) {
	t.Parallel()

	var p Potency
	if !p.IsZero() {
		t.Fatal("zero potency IsZero() = false, want true")
	}
	if p.String() != "" {
		t.Fatalf("zero potency String() = %q, want empty", p.String())
	}
}
