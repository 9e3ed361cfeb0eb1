package usecase

import "testing"

func TestSanitizeJSONResponse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain object", in: `{"tasks":[]}`, want: `{"tasks":[]}`},
		{name: "json fence", in: "```json\n{\"tasks\":[]}\n```", want: `{"tasks":[]}`},
		{name: "bare fence", in: "```\n{\"tasks\":[]}\n```", want: `{"tasks":[]}`},
		{name: "leading prose", in: `Here are your tasks: {"tasks":[]} Hope this helps!`, want: `{"tasks":[]}`},
		{name: "no braces", in: "  nothing  ", want: "nothing"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sanitizeJSONResponse(tt.in); got != tt.want {
				t.Errorf("sanitizeJSONResponse() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseEnvelope(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantLen int
		wantErr bool
	}{
		{name: "two elements", in: `{"tasks":[{"a":1},{"b":2}]}`, wantLen: 2},
		{name: "empty", in: `{"tasks":[]}`, wantLen: 0},
		{name: "extra fields ignored", in: `{"note":"x","tasks":[1]}`, wantLen: 1},
		{name: "missing", in: `{}`, wantErr: true},
		{name: "string", in: `{"tasks":"none"}`, wantErr: true},
		{name: "null", in: `{"tasks":null}`, wantErr: true},
		{name: "truncated", in: `{"tasks":[{"title":"a"`, wantErr: true},
		{name: "backticks inside a string", in: "{\"tasks\":[{\"description\":\"run ```make test``` first\"}]}", wantLen: 1},
		{name: "fenced", in: "```json\n{\"tasks\":[1,2]}\n```", wantLen: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseEnvelope(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseEnvelope() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && len(got) != tt.wantLen {
				t.Errorf("len = %d, want %d", len(got), tt.wantLen)
			}
		})
	}
}
