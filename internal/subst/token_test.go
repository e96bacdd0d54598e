package subst

import "testing"

func TestScanTokens(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		template string
		want     []token
	}{
		{
			name:     "no tokens",
			template: "plain text",
			want:     nil,
		},
		{
			name:     "bare placeholder",
			template: "$(FILE.NAME)",
			want:     []token{{raw: "$(FILE.NAME)", name: "FILE.NAME"}},
		},
		{
			name:     "placeholder with modifier",
			template: "x-$(FILE.NAME:0:3)-y",
			want:     []token{{raw: "$(FILE.NAME:0:3)", name: "FILE.NAME", modifier: ":0:3"}},
		},
		{
			name:     "multiple tokens",
			template: "$(YEAR)/$(MONTH)",
			want: []token{
				{raw: "$(YEAR)", name: "YEAR"},
				{raw: "$(MONTH)", name: "MONTH"},
			},
		},
		{
			name:     "nested default reference",
			template: "$(TITLE-$(FILE.NAME))",
			want:     []token{{raw: "$(TITLE-$(FILE.NAME))", name: "TITLE", modifier: "-$(FILE.NAME)"}},
		},
		{
			name:     "unterminated token skipped",
			template: "$(FILE.NAME",
			want:     nil,
		},
		{
			name:     "underscore alias",
			template: "$(FILE_NAME)",
			want:     []token{{raw: "$(FILE_NAME)", name: "FILE.NAME"}},
		},
		{
			name:     "legacy home alias",
			template: "$(HOME)",
			want:     []token{{raw: "$(HOME)", name: "FOLDER.HOME"}},
		},
		{
			name:     "legacy pictures alias",
			template: "$(PICTURES.FOLDER)",
			want:     []token{{raw: "$(PICTURES.FOLDER)", name: "FOLDER.PICTURES"}},
		},
		{
			name:     "too deep nesting rejects outer",
			template: "$(TITLE-$(TITLE-$(NL)))",
			want:     []token{{raw: "$(TITLE-$(NL))", name: "TITLE", modifier: "-$(NL)"}},
		},
		{
			name:     "empty name",
			template: "$()",
			want:     []token{{raw: "$()", name: ""}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := scanTokens(tt.template)
			if len(got) != len(tt.want) {
				t.Fatalf("scanTokens(%q) = %+v, want %+v", tt.template, got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("token %d = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestLeadingName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"FILE.NAME", "FILE.NAME"},
		{"FILE.NAME:0:3", "FILE.NAME"},
		{"STARS+tagged", "STARS"},
		{"123", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := leadingName(tt.in); got != tt.want {
			t.Errorf("leadingName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
