package sounds

import "testing"

func TestClassification(t *testing.T) {
	tests := []struct {
		fn   string
		in   byte
		want bool
	}{
		{"IsVowel", 'a', true},
		{"IsVowel", 'F', true},
		{"IsVowel", 'k', false},
		{"IsVowel", 'Z', false}, // outside the alphabet: inert
		{"IsShortVowel", 'i', true},
		{"IsShortVowel", 'I', false},
		{"IsLongVowel", 'e', true},
		{"IsConsonant", 'B', true},
		{"IsConsonant", 'a', false},
		{"IsIk", 'u', true},
		{"IsIk", 'a', false},
		{"IsIk", 'e', false},
		{"IsEc", 'O', true},
		{"IsEc", 'A', false},
		{"IsVoiced", 'g', true},
		{"IsVoiced", 'k', false},
		{"IsVoiced", 'h', true},
		{"IsUnvoicedStop", 'T', true},
		{"IsUnvoicedStop", 'd', false},
		{"IsIN", 'i', true},
		{"IsIN", 'a', false},
		{"IsIN", 'k', true},
	}
	for _, tt := range tests {
		var got bool
		switch tt.fn {
		case "IsVowel":
			got = IsVowel(tt.in)
		case "IsShortVowel":
			got = IsShortVowel(tt.in)
		case "IsLongVowel":
			got = IsLongVowel(tt.in)
		case "IsConsonant":
			got = IsConsonant(tt.in)
		case "IsIk":
			got = IsIk(tt.in)
		case "IsEc":
			got = IsEc(tt.in)
		case "IsVoiced":
			got = IsVoiced(tt.in)
		case "IsUnvoicedStop":
			got = IsUnvoicedStop(tt.in)
		case "IsIN":
			got = IsIN(tt.in)
		}
		if got != tt.want {
			t.Errorf("%s(%q) = %v, want %v", tt.fn, tt.in, got, tt.want)
		}
	}
}

func TestSavarna(t *testing.T) {
	tests := []struct {
		a, b byte
		want bool
	}{
		{'a', 'A', true},
		{'i', 'I', true},
		{'u', 'u', true},
		{'f', 'F', true},
		{'a', 'i', false},
		{'i', 'u', false},
		{'e', 'e', false}, // compound vowels are savarṇa with nothing
		{'a', 'k', false},
	}
	for _, tt := range tests {
		if got := IsSavarna(tt.a, tt.b); got != tt.want {
			t.Errorf("IsSavarna(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestGrades(t *testing.T) {
	tests := []struct {
		fn   string
		in   byte
		want string
	}{
		{"Guna", 'i', "e"},
		{"Guna", 'I', "e"},
		{"Guna", 'u', "o"},
		{"Guna", 'f', "ar"},
		{"Guna", 'x', "al"},
		{"Guna", 'a', "a"},
		{"Vrddhi", 'i', "E"},
		{"Vrddhi", 'u', "O"},
		{"Vrddhi", 'a', "A"},
		{"Vrddhi", 'e', "E"},
		{"Vrddhi", 'o', "O"},
		{"Ayadi", 'e', "ay"},
		{"Ayadi", 'o', "av"},
		{"Ayadi", 'E', "Ay"},
		{"Ayadi", 'O', "Av"},
		{"Ayadi", 'a', ""},
	}
	for _, tt := range tests {
		var got string
		switch tt.fn {
		case "Guna":
			got = Guna(tt.in)
		case "Vrddhi":
			got = Vrddhi(tt.in)
		case "Ayadi":
			got = Ayadi(tt.in)
		}
		if got != tt.want {
			t.Errorf("%s(%q) = %q, want %q", tt.fn, tt.in, got, tt.want)
		}
	}

	if got := Dirgha('i'); got != 'I' {
		t.Errorf("Dirgha('i') = %q, want 'I'", got)
	}
	if got := Dirgha('k'); got != 'k' {
		t.Errorf("Dirgha('k') = %q, want 'k' (inert)", got)
	}
	if got := Semivowel('i'); got != 'y' {
		t.Errorf("Semivowel('i') = %q, want 'y'", got)
	}
	if got := Semivowel('a'); got != 0 {
		t.Errorf("Semivowel('a') = %q, want 0", got)
	}
}

func TestVoicingPairs(t *testing.T) {
	tests := []struct {
		fn       string
		in, want byte
	}{
		{"Jash", 'k', 'g'},
		{"Jash", 't', 'd'},
		{"Jash", 'C', 'j'},
		{"Jash", 's', 's'}, // not a stop: inert
		{"Car", 'g', 'k'},
		{"Car", 'D', 't'},
		{"Car", 'b', 'p'},
		{"Car", 'y', 'y'},
	}
	for _, tt := range tests {
		var got byte
		switch tt.fn {
		case "Jash":
			got = Jash(tt.in)
		case "Car":
			got = Car(tt.in)
		}
		if got != tt.want {
			t.Errorf("%s(%q) = %q, want %q", tt.fn, tt.in, got, tt.want)
		}
	}
}
