package server

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/san-kum/folio/internal/sched"
	"github.com/san-kum/folio/internal/typewriter"
)

// headlineStream pushes the typewriter text as server-sent events. Each
// connection owns its rotator; everything runs on one loop on the handler
// goroutine and stops when the client goes away. The first event is the
// empty starting text; ?steps=N ends the stream after N events.
func (s *Server) headlineStream(c *gin.Context) {
	rot, err := typewriter.New(s.phrases, s.timing)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		return
	}
	limit, _ := strconv.Atoi(c.Query("steps"))

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Status(http.StatusOK)

	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()

	loop := sched.NewLoop()
	runner := typewriter.NewRunner(rot, loop)
	sent := 0
	emit := func(text string) bool {
		c.SSEvent("headline", text)
		c.Writer.Flush()
		sent++
		return limit <= 0 || sent < limit
	}
	if !emit(rot.Text()) {
		return
	}
	runner.OnChange(func(text string) {
		if !emit(text) {
			runner.Stop()
			cancel()
		}
	})

	var ping sched.Handle
	if s.cfg.KeepAlive > 0 {
		var keepAlive func()
		keepAlive = func() {
			c.SSEvent("ping", time.Now().UTC().Format(time.RFC3339))
			c.Writer.Flush()
			ping = loop.After(s.cfg.KeepAlive, keepAlive)
		}
		ping = loop.After(s.cfg.KeepAlive, keepAlive)
	}

	runner.Start()
	_ = loop.Run(ctx)
	runner.Stop()
	if ping != nil {
		ping.Cancel()
	}
}
