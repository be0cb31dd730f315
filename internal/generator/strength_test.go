package generator

import "testing"

func TestStrengthScore(t *testing.T) {
	tests := []struct {
		name       string
		cfg        Config
		wantScore  int
		wantRating Rating
	}{
		{"nothing selected", Config{Length: 5}, 0, Weak},
		{"short digits", Config{Length: 8, Classes: NewClassSet(Digits)}, 1, Weak},
		{"nine digits", Config{Length: 9, Classes: NewClassSet(Digits)}, 2, Weak},
		{"twelve all classes", Config{Length: 12, Classes: AllClasses}, 5, Strong},
		{"thirteen all classes", Config{Length: 13, Classes: AllClasses}, 6, Strong},
		{"short all classes", Config{Length: 5, Classes: AllClasses}, 4, Medium},
		{"long letters", Config{Length: 20, Classes: NewClassSet(Uppercase)}, 3, Medium},
		{"long two classes", Config{Length: 20, Classes: NewClassSet(Uppercase, Lowercase)}, 4, Medium},
		{"long three classes", Config{Length: 20, Classes: NewClassSet(Uppercase, Lowercase, Digits)}, 5, Strong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score := StrengthScore(tt.cfg)
			if score != tt.wantScore {
				t.Errorf("StrengthScore() = %d, want %d", score, tt.wantScore)
			}
			if got := Classify(score); got != tt.wantRating {
				t.Errorf("Classify(%d) = %s, want %s", score, got, tt.wantRating)
			}
		})
	}
}

func TestStrengthScoreBounds(t *testing.T) {
	for set := ClassSet(0); set <= AllClasses; set++ {
		for length := 0; length <= 60; length++ {
			score := StrengthScore(Config{Length: length, Classes: set})
			if score < 0 || score > MaxScore {
				t.Fatalf("StrengthScore(%d, %s) = %d, outside [0, %d]", length, set, score, MaxScore)
			}
		}
	}
}

func TestStrengthScoreMonotonicInClasses(t *testing.T) {
	for set := ClassSet(0); set <= AllClasses; set++ {
		for _, c := range AllClasses.Classes() {
			for _, length := range []int{5, 9, 13, 50} {
				before := StrengthScore(Config{Length: length, Classes: set})
				after := StrengthScore(Config{Length: length, Classes: set.With(c)})
				if after < before {
					t.Errorf("adding %s to %q at length %d lowered score %d -> %d", c, set, length, before, after)
				}
			}
		}
	}
}

func TestStrengthScoreMonotonicInLength(t *testing.T) {
	for set := ClassSet(0); set <= AllClasses; set++ {
		prev := StrengthScore(Config{Length: 0, Classes: set})
		for length := 1; length <= 60; length++ {
			score := StrengthScore(Config{Length: length, Classes: set})
			if score < prev {
				t.Errorf("length %d lowered score for %q: %d -> %d", length, set, prev, score)
			}
			prev = score
		}
	}
}

func TestClassify(t *testing.T) {
	want := []Rating{Weak, Weak, Weak, Medium, Medium, Strong, Strong}
	for score, rating := range want {
		if got := Classify(score); got != rating {
			t.Errorf("Classify(%d) = %s, want %s", score, got, rating)
		}
	}
}

func TestRatingString(t *testing.T) {
	tests := map[Rating]string{
		Weak:      "Weak",
		Medium:    "Medium",
		Strong:    "Strong",
		Rating(9): "Unknown",
	}
	for r, want := range tests {
		if got := r.String(); got != want {
			t.Errorf("Rating(%d).String() = %q, want %q", int(r), got, want)
		}
	}
}
