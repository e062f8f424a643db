package slug

import "testing"

func TestMake(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"simple_name", "Basil Potion", "basil-potion"},
		{"already_slugged", "wooden-sword", "wooden-sword"},
		{"mixed_separators", "Health_Potion  XL", "health-potion-xl"},
		{"punctuation_dropped", "Dragon's Breath!", "dragons-breath"},
		{"uppercase_folded", "HERBS", "herbs"},
		{"leading_trailing_space", "  Tomato  ", "tomato"},
		{"digits_kept", "Model 3000", "model-3000"},
		{"only_punctuation", "!?*", ""},
		{"empty", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := Make(tc.input); got != tc.want {
				t.Fatalf("Make(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestMakeIsDeterministic(t *testing.T) {
	t.Parallel()
	first := Make("Basil Potion")
	second := Make("Basil Potion")
	if first != second {
		t.Fatalf("Make() = %q then %q, want identical output", first, second)
	}
}
