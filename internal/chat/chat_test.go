package chat

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

type stubGen struct {
	reply string
	err   error
	calls []string
}

func (g *stubGen) Generate(_ context.Context, text string) (string, error) {
	g.calls = append(g.calls, text)
	return g.reply, g.err
}

func TestClientGenerate(t *testing.T) {
	var got generateRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1beta/models/test-model:generateContent" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.Header.Get("x-goog-api-key") != "secret" {
			t.Errorf("missing api key header")
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"Hello "},{"text":"there"}]}}]}`))
	}))
	defer srv.Close()

	c := NewClient(Config{APIKey: "secret", Model: "test-model", BaseURL: srv.URL + "/", Instruction: "be brief"})
	reply, err := c.Generate(context.Background(), "hi")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if reply != "Hello there" {
		t.Errorf("reply = %q", reply)
	}
	if got.SystemInstruction == nil || got.SystemInstruction.Parts[0].Text != "be brief" {
		t.Errorf("system instruction not sent: %+v", got.SystemInstruction)
	}
	if len(got.Contents) != 1 || got.Contents[0].Parts[0].Text != "hi" {
		t.Errorf("contents = %+v", got.Contents)
	}
}

func TestClientErrors(t *testing.T) {
	if _, err := NewClient(Config{}).Generate(context.Background(), "hi"); !errors.Is(err, ErrNoAPIKey) {
		t.Errorf("expected ErrNoAPIKey, got %v", err)
	}

	empty := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[]}`))
	}))
	defer empty.Close()
	if _, err := NewClient(Config{APIKey: "k", BaseURL: empty.URL}).Generate(context.Background(), "hi"); !errors.Is(err, ErrEmptyReply) {
		t.Errorf("expected ErrEmptyReply, got %v", err)
	}

	failing := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer failing.Close()
	_, err := NewClient(Config{APIKey: "k", BaseURL: failing.URL}).Generate(context.Background(), "hi")
	if err == nil || !strings.Contains(err.Error(), "429") {
		t.Errorf("expected status error, got %v", err)
	}
}

func TestSessionSend(t *testing.T) {
	gen := &stubGen{reply: "I build apps."}
	s := NewSession(gen, "Hi!")

	if _, ok := s.Send(context.Background(), "   "); ok {
		t.Fatal("blank input should be ignored")
	}
	if len(gen.calls) != 0 || len(s.Messages()) != 1 {
		t.Fatalf("blank input changed state: %v", s.Messages())
	}

	msg, ok := s.Send(context.Background(), "  what do you do? ")
	if !ok || msg.Text != "I build apps." {
		t.Fatalf("send = %+v %v", msg, ok)
	}
	if gen.calls[0] != "what do you do?" {
		t.Errorf("generator got %q", gen.calls[0])
	}
	msgs := s.Messages()
	if len(msgs) != 3 || msgs[1].Role != RoleUser || msgs[2].Role != RoleBot {
		t.Errorf("messages = %+v", msgs)
	}
	if s.Loading() {
		t.Error("loading should be cleared")
	}
}

func TestSessionFallbacks(t *testing.T) {
	s := NewSession(&stubGen{err: errors.New("boom")}, "")
	msg, _ := s.Send(context.Background(), "hi")
	if msg.Text != FallbackReply {
		t.Errorf("got %q", msg.Text)
	}

	s = NewSession(&stubGen{err: ErrEmptyReply}, "")
	msg, _ = s.Send(context.Background(), "hi")
	if msg.Text != EmptyReply {
		t.Errorf("got %q", msg.Text)
	}
}

func TestSessionWithoutGenerator(t *testing.T) {
	s := NewSession(nil, "hello")
	msg, ok := s.Send(context.Background(), "hi")
	if !ok || msg.Text != FallbackReply {
		t.Errorf("got %q ok=%v", msg.Text, ok)
	}
	if s.Loading() || len(s.Messages()) != 3 {
		t.Errorf("loading=%v messages=%d", s.Loading(), len(s.Messages()))
	}
}

func TestSessionBeginWhileLoading(t *testing.T) {
	s := NewSession(&stubGen{}, "")
	if _, ok := s.Begin("one"); !ok {
		t.Fatal("first begin should succeed")
	}
	if _, ok := s.Begin("two"); ok {
		t.Error("second begin should wait for the reply")
	}
	s.Finish("done", nil)
	if _, ok := s.Begin("two"); !ok {
		t.Error("begin after finish should succeed")
	}
}
