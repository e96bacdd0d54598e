package shellquote

import "testing"

func TestSanitizePosix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bare text", "bare text", "'bare text'"},
		{"empty string", "", "''"},
		{"embedded quote", "it's a file.jpg", `'it'\''s a file.jpg'`},
		{"already quoted", "'already quoted'", "'already quoted'"},
		{"already escaped quote", `'it'\''s'`, `'it'\''s'`},
		{"only a quote", "'", `''\'''`},
		{"spaces and dollar", "my $HOME dir", "'my $HOME dir'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Sanitize(tt.in, Posix); got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSanitizeWindows(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bare text", "bare text", `"bare text"`},
		{"already quoted", `"already quoted"`, `"already quoted"`},
		{"embedded quote", `say "cheese"`, `"say ^""cheese^"""`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Sanitize(tt.in, Windows); got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestIsNotSanitized(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		in      string
		dialect Dialect
		want    bool
	}{
		{"posix bare", "bare text", Posix, true},
		{"posix quoted", "'already quoted'", Posix, false},
		{"posix bare interior quote", `'it's'`, Posix, true},
		{"posix escaped interior quote", `'it'\''s'`, Posix, false},
		{"posix lone quote", "'", Posix, true},
		{"posix empty pair", "''", Posix, false},
		{"windows bare", "bare", Windows, true},
		{"windows quoted", `"quoted"`, Windows, false},
		{"windows single char", `"`, Windows, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := IsNotSanitized(tt.in, tt.dialect); got != tt.want {
				t.Errorf("IsNotSanitized(%q, %v) = %v, want %v", tt.in, tt.dialect, got, tt.want)
			}
		})
	}
}

// Sanitize output must always pass the sanitized check, and sanitizing
// twice must be a no-op.
func TestSanitizeIdempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"", "plain", "it's", "''", "'", `"`, "a b c",
		`already "quoted"`, "mixed '\" quotes", "trailing'",
		"füße.jpg", "IMG_0001.CR2",
	}

	for _, d := range []Dialect{Posix, Windows} {
		for _, in := range inputs {
			once := Sanitize(in, d)
			if IsNotSanitized(once, d) {
				t.Errorf("Sanitize(%q, %v) = %q not recognized as sanitized", in, d, once)
			}
			if twice := Sanitize(once, d); twice != once {
				t.Errorf("Sanitize not idempotent for %q (%v): %q != %q", in, d, twice, once)
			}
		}
	}
}
