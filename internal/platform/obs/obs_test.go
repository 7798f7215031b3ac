package obs

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestRequestIDRoundTrip(t *testing.T) {
	if got := RequestID(context.Background()); got != "" {
		t.Fatalf("RequestID(empty ctx) = %q, want empty", got)
	}

	id := NewRequestID()
	if id == "" {
		t.Fatal("NewRequestID returned empty string")
	}
	if other := NewRequestID(); other == id {
		t.Fatalf("NewRequestID returned duplicate %q", id)
	}

	ctx := WithRequestID(context.Background(), id)
	if got := RequestID(ctx); got != id {
		t.Fatalf("RequestID = %q, want %q", got, id)
	}
}

func TestValidRequestID(t *testing.T) {
	tests := []struct {
		id   string
		want bool
	}{
		{"", false},
		{"client-id-1", true},
		{NewRequestID(), true},
		{"trace:abc_DEF.42", true},
		{strings.Repeat("a", 64), true},
		{strings.Repeat("a", 65), false},
		{"has space", false},
		{"line\nbreak", false},
		{"quote\"", false},
		{"caf\u00e9", false},
	}

	for _, tt := range tests {
		if got := ValidRequestID(tt.id); got != tt.want {
			t.Errorf("ValidRequestID(%q) = %v, want %v", tt.id, got, tt.want)
		}
	}
}

func TestTimeAcceptsNilAndError(t *testing.T) {
	ctx := WithRequestID(context.Background(), "test")

	Time(ctx, "ok")(nil)

	var err error
	Time(ctx, "ok-with-nil-err")(&err)

	err = errors.New("boom")
	Time(ctx, "failed")(&err)
}
