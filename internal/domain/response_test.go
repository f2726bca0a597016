package domain

import "testing"

func TestClassifyBody(t *testing.T) {
	tests := []struct {
		name          string
		body          string
		wantNoContent bool
		wantText      string
	}{
		{"empty", "", true, "<no content>"},
		{"spaces", "   ", true, "<no content>"},
		{"mixed whitespace", " \t\r\n ", true, "<no content>"},
		{"json object", `{"data":{"id":2}}`, false, `{"data":{"id":2}}`},
		{"surrounding whitespace kept", "  ok \n", false, "  ok \n"},
		{"single character", "x", false, "x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyBody(tt.body)
			if IsNoContent(got) != tt.wantNoContent {
				t.Errorf("ClassifyBody(%q) NoContent = %v, want %v", tt.body, IsNoContent(got), tt.wantNoContent)
			}
			if got.Text() != tt.wantText {
				t.Errorf("ClassifyBody(%q).Text() = %q, want %q", tt.body, got.Text(), tt.wantText)
			}
		})
	}
}

func TestClassifyBody_ContentVariant(t *testing.T) {
	body := `{"data":{"id":2}}`
	got, ok := ClassifyBody(body).(Content)
	if !ok {
		t.Fatalf("ClassifyBody(%q) is not Content", body)
	}
	if got.Body != body {
		t.Errorf("Content.Body = %q, want %q", got.Body, body)
	}
}
