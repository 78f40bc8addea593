package message

import (
	"testing"

	"github.com/google/uuid"
)

func TestLatestPerSender(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	newest := []Message{
		{ID: uuid.New(), SenderID: a, Content: "a3"},
		{ID: uuid.New(), SenderID: b, Content: "b2"},
		{ID: uuid.New(), SenderID: a, Content: "a2"},
		{ID: uuid.New(), SenderID: b, Content: "b1"},
	}

	got := LatestPerSender(newest)
	if len(got) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(got))
	}
	if got[0].Content != "a3" || got[1].Content != "b2" {
		t.Fatalf("unexpected order/content: %+v", got)
	}
}

func TestLatestPerSender_Empty(t *testing.T) {
	if got := LatestPerSender(nil); got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
}
