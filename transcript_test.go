package tabstate

import (
	"testing"

	"pkt.systems/tabstate/schema"
)

func addition(pos uint64, text string) schema.EditChunk {
	return schema.EditChunk{Position: pos, AdditionCount: uint64(len([]rune(text))), InsertedText: &text, Checksum: "00000000"}
}

func deletion(pos, count uint64) schema.EditChunk {
	return schema.EditChunk{Position: pos, DeletionCount: count, Checksum: "00000000"}
}

func TestRenderTranscript(t *testing.T) {
	tests := []struct {
		name   string
		chunks []schema.EditChunk
		want   string
	}{
		{name: "empty", chunks: nil, want: ""},
		{
			name:   "continuous typing",
			chunks: []schema.EditChunk{addition(1, "a"), addition(2, "b"), addition(3, "c")},
			want:   "[1]:abc",
		},
		{
			name:   "non contiguous",
			chunks: []schema.EditChunk{addition(4, "a"), addition(9, "b")},
			want:   "[4]:a,[9]:b",
		},
		{
			name:   "deletion pulls addition cursor back",
			chunks: []schema.EditChunk{addition(5, "a"), deletion(5, 1), addition(5, "b")},
			want:   "[5]:a<DEL:5>b",
		},
		{
			name:   "deletion without prior addition",
			chunks: []schema.EditChunk{deletion(3, 1), addition(7, "x")},
			want:   "<DEL:3>[7]:x",
		},
		{
			name:   "addition at zero is not tracked",
			chunks: []schema.EditChunk{addition(0, "Hi"), addition(1, "!"), deletion(3, 1)},
			want:   "[0]:Hi[1]:!<DEL:3>",
		},
		{
			name:   "deletion back to zero resets tracking",
			chunks: []schema.EditChunk{addition(1, "a"), deletion(1, 1), addition(1, "b")},
			want:   "[1]:a<DEL:1>[1]:b",
		},
	}
	for _, tc := range tests {
		if got := RenderTranscript(tc.chunks); got != tc.want {
			t.Fatalf("%s: RenderTranscript = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestAttachTranscript(t *testing.T) {
	rec := &schema.TabState{}
	AttachTranscript(rec)
	if rec.Transcript != nil {
		t.Fatalf("expected nil transcript without chunks")
	}
	rec.EditChunks = []schema.EditChunk{addition(2, "hey")}
	AttachTranscript(rec)
	if rec.Transcript == nil || *rec.Transcript != "[2]:hey" {
		t.Fatalf("unexpected transcript %v", rec.Transcript)
	}
}
