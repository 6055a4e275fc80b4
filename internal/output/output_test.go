package output

import (
	"bytes"
	"context"
	"os"
	"testing"
)

func TestWithPrinter_FromContext(t *testing.T) {
	t.Parallel()

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		want := New(&buf, false)
		ctx := WithPrinter(context.Background(), want)
		if got := FromContext(ctx); got != want {
			t.Error("FromContext did not return the stored printer")
		}
	})

	t.Run("default to stdout when not set", func(t *testing.T) {
		t.Parallel()
		p := FromContext(context.Background())
		if p == nil {
			t.Fatal("FromContext returned nil on empty context")
		}
		if p.Writer() != os.Stdout {
			t.Error("Writer() should default to os.Stdout")
		}
		if p.JSON() {
			t.Error("default printer should not write JSON")
		}
	})
}

func TestPrinter_Value(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		json   bool
		value  any
		expect string
	}{
		{"plain string", false, "coffee", "coffee\n"},
		{"plain bool", false, true, "true\n"},
		{"json string", true, "coffee", "\"coffee\"\n"},
		{"json bool", true, false, "false\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			if err := New(&buf, tt.json).Value(tt.value); err != nil {
				t.Fatalf("Value: %v", err)
			}
			if got := buf.String(); got != tt.expect {
				t.Errorf("Value() wrote %q, want %q", got, tt.expect)
			}
		})
	}
}

func TestPrinter_Lines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		json   bool
		items  []string
		expect string
	}{
		{"plain", false, []string{"eslint", "prettier"}, "eslint\nprettier\n"},
		{"plain empty", false, nil, ""},
		{"json", true, []string{"eslint", "prettier"}, "[\"eslint\",\"prettier\"]\n"},
		{"json empty is array", true, nil, "[]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			if err := New(&buf, tt.json).Lines(tt.items); err != nil {
				t.Fatalf("Lines: %v", err)
			}
			if got := buf.String(); got != tt.expect {
				t.Errorf("Lines() wrote %q, want %q", got, tt.expect)
			}
		})
	}
}

func TestPrinter_Println(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	New(&buf, true).Println("hello", "world")
	if got := buf.String(); got != "hello world\n" {
		t.Errorf("Println() wrote %q, want %q", got, "hello world\n")
	}
}
