package rules_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-sheet/internal/clients/rules"
	"github.com/KirkDiggler/rpg-sheet/internal/entities"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

type ClientTestSuite struct {
	suite.Suite
	mux    *http.ServeMux
	server *httptest.Server
	client rules.Client
	doc    *entities.Document
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (s *ClientTestSuite) SetupTest() {
	s.mux = http.NewServeMux()
	s.server = httptest.NewServer(s.mux)

	var err error
	s.client, err = rules.New(&rules.Config{
		BaseURL: s.server.URL + "/api/",
		Timeout: 200 * time.Millisecond,
	})
	s.Require().NoError(err)

	s.doc = &entities.Document{Name: "Test", Level: 1, Module: "fivee_stock"}
}

func (s *ClientTestSuite) TearDownTest() {
	s.server.Close()
}

func (s *ClientTestSuite) writeJSON(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = io.WriteString(w, body)
}

func (s *ClientTestSuite) TestConfigValidation() {
	_, err := rules.New(&rules.Config{BaseURL: "not a url"})
	s.True(errors.IsInvalidArgument(err))

	cfg := &rules.Config{}
	s.Require().NoError(cfg.Validate())
	s.Equal(rules.DefaultBaseURL, cfg.BaseURL)
	s.Equal(rules.DefaultTimeout, cfg.Timeout)
}

func (s *ClientTestSuite) TestListModules() {
	s.mux.HandleFunc("GET /api/modules", func(w http.ResponseWriter, _ *http.Request) {
		s.writeJSON(w, `{"modules":[{"id":"fivee_stock","name":"5e Stock","version":"0.1.0"}]}`)
	})

	modules, err := s.client.ListModules(context.Background())
	s.Require().NoError(err)
	s.Require().Len(modules, 1)
	s.Equal("fivee_stock", modules[0].ID)
	s.Equal("0.1.0", modules[0].Version)
}

func (s *ClientTestSuite) TestNewCharacter() {
	s.mux.HandleFunc("POST /api/new_character", func(w http.ResponseWriter, r *http.Request) {
		var in rules.NewCharacterInput
		s.Require().NoError(json.NewDecoder(r.Body).Decode(&in))
		s.Equal("fivee_stock", in.ModuleID)
		s.Equal("Hero", in.Name)
		s.writeJSON(w, `{"name":"Hero","level":1,"module":"fivee_stock","abilities":{"STR":{"name":"STR","score":10}},"skills":[],"items":[],"feats":[],"proficiencies":{"saving_throws":{}}}`)
	})

	doc, err := s.client.NewCharacter(context.Background(), &rules.NewCharacterInput{ModuleID: "fivee_stock", Name: "Hero"})
	s.Require().NoError(err)
	s.Equal("Hero", doc.Name)
	s.Equal(10, doc.Abilities["STR"].Score)
}

func (s *ClientTestSuite) TestDerive() {
	s.mux.HandleFunc("POST /api/derive", func(w http.ResponseWriter, r *http.Request) {
		var doc entities.Document
		s.Require().NoError(json.NewDecoder(r.Body).Decode(&doc))
		s.Equal("Test", doc.Name)
		s.writeJSON(w, `{"proficiency_bonus":2,"spellcasting":{"class":"wizard","prepared_max":2}}`)
	})

	snap, err := s.client.Derive(context.Background(), s.doc)
	s.Require().NoError(err)
	s.Require().NotNil(snap.PreparedMax())
	s.Equal(2.0, *snap.PreparedMax())
	s.JSONEq(`{"proficiency_bonus":2,"spellcasting":{"class":"wizard","prepared_max":2}}`, string(snap.Raw))
}

func (s *ClientTestSuite) TestDeriveNonSuccessStatus() {
	s.mux.HandleFunc("POST /api/derive", func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "Module 'nope' not found", http.StatusNotFound)
	})

	_, err := s.client.Derive(context.Background(), s.doc)
	s.True(errors.IsTransport(err))
	s.Equal(http.StatusNotFound, errors.GetMeta(err)["status"])
	s.Contains(errors.GetMeta(err)["body"], "not found")
}

func (s *ClientTestSuite) TestDeriveMalformedBody() {
	s.mux.HandleFunc("POST /api/derive", func(w http.ResponseWriter, _ *http.Request) {
		s.writeJSON(w, `{"proficiency_bonus":`)
	})

	_, err := s.client.Derive(context.Background(), s.doc)
	s.True(errors.IsTransport(err))
}

func (s *ClientTestSuite) TestDeriveTimeout() {
	release := make(chan struct{})
	defer close(release)
	s.mux.HandleFunc("POST /api/derive", func(_ http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	})

	_, err := s.client.Derive(context.Background(), s.doc)
	s.True(errors.IsTransport(err))
	s.True(errors.IsDeadlineExceeded(err))
}

func (s *ClientTestSuite) TestUnreachable() {
	client, err := rules.New(&rules.Config{BaseURL: "http://127.0.0.1:1/api", Timeout: time.Second})
	s.Require().NoError(err)

	_, err = client.Validate(context.Background(), s.doc)
	s.True(errors.IsTransport(err))
	s.True(errors.IsUnavailable(err))
}

func (s *ClientTestSuite) TestValidate() {
	s.mux.HandleFunc("POST /api/validate", func(w http.ResponseWriter, _ *http.Request) {
		s.writeJSON(w, `{"issues":["Level must be 1-20"]}`)
	})

	issues, err := s.client.Validate(context.Background(), s.doc)
	s.Require().NoError(err)
	s.Equal([]string{"Level must be 1-20"}, issues)
}

func (s *ClientTestSuite) TestValidateNoIssues() {
	s.mux.HandleFunc("POST /api/validate", func(w http.ResponseWriter, _ *http.Request) {
		s.writeJSON(w, `{}`)
	})

	issues, err := s.client.Validate(context.Background(), s.doc)
	s.Require().NoError(err)
	s.NotNil(issues)
	s.Empty(issues)
}

func (s *ClientTestSuite) TestSearchSpellsOmitsEmptyParams() {
	s.mux.HandleFunc("GET /api/spells", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		s.Equal("fire", q.Get("name"))
		s.Equal("wizard", q.Get("cls"))
		s.False(q.Has("module"))
		s.writeJSON(w, `{"spells":[{"name":"Fireball","level":3},{"name":"Fire Bolt","level":0}]}`)
	})

	spells, err := s.client.SearchSpells(context.Background(), &rules.SearchSpellsInput{Name: "fire", Class: "wizard"})
	s.Require().NoError(err)
	s.Require().Len(spells, 2)
	s.Equal("Fireball", spells[0].Name)
	s.Equal(0, *spells[1].Level)
}

func (s *ClientTestSuite) TestLogIsBestEffort() {
	var (
		mu  sync.Mutex
		got rules.LogEntry
	)
	s.mux.HandleFunc("POST /api/log", func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		defer mu.Unlock()
		s.Require().NoError(json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusInternalServerError)
	})

	s.client.Log(context.Background(), &rules.LogEntry{Message: "derive: boom"})

	mu.Lock()
	defer mu.Unlock()
	s.Equal("error", got.Level)
	s.Equal("derive: boom", got.Message)

	s.client.Log(context.Background(), nil)
}
