package rules_test

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/KirkDiggler/rpg-sheet/internal/clients/rules"
)

func (s *ClientTestSuite) TestReportDoesNotBlockOnSlowLog() {
	release := make(chan struct{})
	var releaseOnce sync.Once
	unblock := func() { releaseOnce.Do(func() { close(release) }) }
	defer unblock()
	received := make(chan rules.LogEntry, 1)
	s.mux.HandleFunc("POST /api/log", func(w http.ResponseWriter, r *http.Request) {
		var entry rules.LogEntry
		_ = json.NewDecoder(r.Body).Decode(&entry)
		received <- entry
		<-release
		w.WriteHeader(http.StatusNoContent)
	})

	client, err := rules.New(&rules.Config{
		BaseURL: s.server.URL + "/api/",
		Timeout: 5 * time.Second,
	})
	s.Require().NoError(err)
	reporter := rules.NewReporter(client)

	ctx, cancel := context.WithCancel(context.Background())
	start := time.Now()
	reporter.Report(ctx, &rules.LogEntry{Message: "derive: boom"})
	cancel()
	s.Less(time.Since(start), time.Second)

	select {
	case entry := <-received:
		s.Equal("derive: boom", entry.Message)
	case <-time.After(2 * time.Second):
		s.Fail("log entry never reached the rules service")
	}

	done := make(chan struct{})
	go func() {
		reporter.Wait()
		close(done)
	}()

	select {
	case <-done:
		s.Fail("Wait returned while the log call was in flight")
	case <-time.After(50 * time.Millisecond):
	}

	unblock()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		s.Fail("Wait did not return after the log call finished")
	}
}

func (s *ClientTestSuite) TestNilReporterIsSafe() {
	var reporter *rules.Reporter
	reporter.Report(context.Background(), &rules.LogEntry{Message: "ignored"})
	reporter.Wait()

	rules.NewReporter(s.client).Report(context.Background(), nil)
}
