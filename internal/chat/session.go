package chat

import (
	"context"
	"errors"
	"log"
	"strings"
)

const (
	FallbackReply = "Oops! My brain is a bit fuzzy right now. Try again later!"
	EmptyReply    = "I'm sorry, I couldn't process that."
)

type Role string

const (
	RoleUser Role = "user"
	RoleBot  Role = "bot"
)

type Message struct {
	Role Role   `json:"role"`
	Text string `json:"text"`
}

// Session is a visitor's conversation. It is owned by a single goroutine;
// hosts that generate replies asynchronously call Begin and Finish from
// their own update loop.
type Session struct {
	gen      Generator
	messages []Message
	loading  bool
}

func NewSession(gen Generator, greeting string) *Session {
	s := &Session{gen: gen}
	if greeting != "" {
		s.messages = append(s.messages, Message{Role: RoleBot, Text: greeting})
	}
	return s
}

func (s *Session) Messages() []Message { return s.messages }
func (s *Session) Loading() bool       { return s.loading }

// Begin records the user's message and marks the session loading. It
// returns false for blank input or while a reply is outstanding.
func (s *Session) Begin(text string) (string, bool) {
	text = strings.TrimSpace(text)
	if text == "" || s.loading {
		return "", false
	}
	s.messages = append(s.messages, Message{Role: RoleUser, Text: text})
	s.loading = true
	return text, true
}

// Finish appends the bot's answer for the outstanding message.
func (s *Session) Finish(reply string, err error) Message {
	s.loading = false
	msg := Message{Role: RoleBot, Text: Reply(reply, err)}
	s.messages = append(s.messages, msg)
	return msg
}

// Send runs a full exchange synchronously. Without a generator the reply
// is the fallback text.
func (s *Session) Send(ctx context.Context, text string) (Message, bool) {
	text, ok := s.Begin(text)
	if !ok {
		return Message{}, false
	}
	if s.gen == nil {
		return s.Finish("", ErrNoAPIKey), true
	}
	reply, err := s.gen.Generate(ctx, text)
	return s.Finish(reply, err), true
}

// Reply maps a generator result to the text shown to the visitor.
func Reply(reply string, err error) string {
	switch {
	case errors.Is(err, ErrEmptyReply):
		return EmptyReply
	case err != nil:
		log.Printf("chat: %v", err)
		return FallbackReply
	case strings.TrimSpace(reply) == "":
		return EmptyReply
	}
	return reply
}
