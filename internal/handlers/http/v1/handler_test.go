package v1_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-sheet/internal/clients/external"
	externalmock "github.com/KirkDiggler/rpg-sheet/internal/clients/external/mock"
	"github.com/KirkDiggler/rpg-sheet/internal/entities"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	v1 "github.com/KirkDiggler/rpg-sheet/internal/handlers/http/v1"
	"github.com/KirkDiggler/rpg-sheet/internal/services/sheet"
	sheetmock "github.com/KirkDiggler/rpg-sheet/internal/services/sheet/mock"
	"github.com/KirkDiggler/rpg-sheet/internal/spellbook"
)

const sessionID = "sheet_1"

type HandlerTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	mockSheet  *sheetmock.MockService
	mockSpells *externalmock.MockClient
	server     *httptest.Server
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockSheet = sheetmock.NewMockService(s.ctrl)
	s.mockSpells = externalmock.NewMockClient(s.ctrl)

	handler, err := v1.NewHandler(&v1.HandlerConfig{
		SheetService: s.mockSheet,
		SpellData:    s.mockSpells,
	})
	s.Require().NoError(err)

	s.server = httptest.NewServer(handler.Routes())
}

func (s *HandlerTestSuite) TearDownTest() {
	s.server.Close()
	s.ctrl.Finish()
}

func (s *HandlerTestSuite) do(method, path, body string) *http.Response {
	req, err := http.NewRequest(method, s.server.URL+path, strings.NewReader(body))
	s.Require().NoError(err)
	resp, err := s.server.Client().Do(req)
	s.Require().NoError(err)
	s.T().Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func (s *HandlerTestSuite) decode(resp *http.Response, v any) {
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(v))
}

func sheetOutput(doc *entities.Document) *sheet.SheetOutput {
	return &sheet.SheetOutput{
		Sheet: &sheet.Sheet{SessionID: sessionID, Document: doc, Version: 3},
	}
}

func (s *HandlerTestSuite) TestNewHandlerRequiresService() {
	_, err := v1.NewHandler(&v1.HandlerConfig{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *HandlerTestSuite) TestGetCharacter() {
	s.mockSheet.EXPECT().GetCharacter(gomock.Any(), &sheet.GetCharacterInput{SessionID: sessionID}).
		Return(sheetOutput(&entities.Document{Name: "Mira", Level: 3}), nil)

	resp := s.do(http.MethodGet, "/sessions/"+sessionID, "")
	s.Equal(http.StatusOK, resp.StatusCode)
	s.Equal("application/json", resp.Header.Get("Content-Type"))

	var body v1.SheetResponse
	s.decode(resp, &body)
	s.Equal(sessionID, body.SessionID)
	s.Equal("Mira", body.Document.Name)
	s.Equal(uint64(3), body.Version)
	s.Nil(body.Derived)
}

func (s *HandlerTestSuite) TestErrorsRenderCodeAndStatus() {
	s.mockSheet.EXPECT().GetCharacter(gomock.Any(), gomock.Any()).
		Return(nil, errors.Wrap(errors.NotFoundf("session %s not found", "nope"), "failed to get session nope"))

	resp := s.do(http.MethodGet, "/sessions/nope", "")
	s.Equal(http.StatusNotFound, resp.StatusCode)

	var body struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}
	s.decode(resp, &body)
	s.Equal("NOT_FOUND", body.Code)
	s.Equal("failed to get session nope: session nope not found", body.Message)
}

func (s *HandlerTestSuite) TestNewCharacterOpensSession() {
	s.mockSheet.EXPECT().NewCharacter(gomock.Any(), &sheet.NewCharacterInput{
		ModuleID: "fivee_stock", Name: "Bram",
	}).Return(sheetOutput(&entities.Document{Name: "Bram"}), nil)

	resp := s.do(http.MethodPost, "/sessions", `{"module_id":"fivee_stock","name":"Bram"}`)
	s.Equal(http.StatusCreated, resp.StatusCode)
}

func (s *HandlerTestSuite) TestMalformedBodyIsParseError() {
	resp := s.do(http.MethodPut, "/sessions/"+sessionID+"/level", `{"level": "five"`)
	s.Equal(http.StatusBadRequest, resp.StatusCode)

	var body struct {
		Code string         `json:"code"`
		Meta map[string]any `json:"meta"`
	}
	s.decode(resp, &body)
	s.Equal("INVALID_ARGUMENT", body.Code)
	s.Equal("parse", body.Meta["kind"])
}

func (s *HandlerTestSuite) TestItemPropsAcceptTextOrObject() {
	s.mockSheet.EXPECT().UpdateItemProps(gomock.Any(), &sheet.UpdateItemPropsInput{
		SessionID: sessionID, Index: 2, Props: `{"armor":{"base":14}}`,
	}).Return(sheetOutput(&entities.Document{}), nil).Times(2)

	resp := s.do(http.MethodPut, "/sessions/"+sessionID+"/items/2/props", `{"props":{"armor":{"base":14}}}`)
	s.Equal(http.StatusOK, resp.StatusCode)

	resp = s.do(http.MethodPut, "/sessions/"+sessionID+"/items/2/props", `{"props":"{\"armor\":{\"base\":14}}"}`)
	s.Equal(http.StatusOK, resp.StatusCode)
}

func (s *HandlerTestSuite) TestInvalidPropsReturnParseError() {
	s.mockSheet.EXPECT().UpdateItemProps(gomock.Any(), gomock.Any()).
		Return(nil, errors.Parse(&json.SyntaxError{}, "item props"))

	resp := s.do(http.MethodPut, "/sessions/"+sessionID+"/items/0/props", `{"props":"{oops"}`)
	s.Equal(http.StatusBadRequest, resp.StatusCode)
}

func (s *HandlerTestSuite) TestBadIndexIsRejected() {
	resp := s.do(http.MethodDelete, "/sessions/"+sessionID+"/items/first", "")
	s.Equal(http.StatusBadRequest, resp.StatusCode)
}

func (s *HandlerTestSuite) TestSpellNamesAreUnescaped() {
	s.mockSheet.EXPECT().RemoveKnownSpell(gomock.Any(), &sheet.RemoveKnownSpellInput{
		SessionID: sessionID, Level: "1", Name: "Magic Missile",
	}).Return(sheetOutput(&entities.Document{}), nil)

	resp := s.do(http.MethodDelete, "/sessions/"+sessionID+"/spells/1/Magic%20Missile", "")
	s.Equal(http.StatusOK, resp.StatusCode)
}

func (s *HandlerTestSuite) TestSetSpellPreparedReportsDropped() {
	out := sheetOutput(&entities.Document{})
	out.Dropped = []spellbook.Entry{{Level: "1", Name: "Sleep"}}
	s.mockSheet.EXPECT().SetSpellPrepared(gomock.Any(), &sheet.SetSpellPreparedInput{
		SessionID: sessionID, Level: "1", Name: "Sleep", Prepared: true,
	}).Return(out, nil)

	resp := s.do(http.MethodPut, "/sessions/"+sessionID+"/spells/1/Sleep/prepared", `{"prepared":true}`)
	s.Equal(http.StatusOK, resp.StatusCode)

	var body v1.SheetResponse
	s.decode(resp, &body)
	s.Equal(out.Dropped, body.Dropped)
}

func (s *HandlerTestSuite) TestSuggestSpells() {
	s.mockSheet.EXPECT().SuggestSpells(gomock.Any(), &sheet.SuggestSpellsInput{
		SessionID: sessionID, Query: "fi", Level: "C",
	}).Return(&sheet.SuggestSpellsOutput{}, nil)

	resp := s.do(http.MethodGet, "/sessions/"+sessionID+"/spells/suggest?q=fi&level=C", "")
	s.Equal(http.StatusOK, resp.StatusCode)

	var body v1.SuggestionsResponse
	s.decode(resp, &body)
	s.NotNil(body.Suggestions)
	s.Empty(body.Suggestions)
}

func (s *HandlerTestSuite) TestSaveDownload() {
	s.mockSheet.EXPECT().SaveCharacter(gomock.Any(), &sheet.SaveCharacterInput{SessionID: sessionID}).
		Return(&sheet.SaveCharacterOutput{
			Filename: "mira.json",
			Data:     []byte("{\n  \"name\": \"Mira\"\n}"),
			Issues:   []string{"No armor proficiency"},
		}, nil)

	resp := s.do(http.MethodGet, "/sessions/"+sessionID+"/save?download=true", "")
	s.Equal(http.StatusOK, resp.StatusCode)
	s.Equal(`attachment; filename="mira.json"`, resp.Header.Get("Content-Disposition"))
	s.Equal("1", resp.Header.Get("X-Validation-Issues"))

	var doc entities.Document
	s.decode(resp, &doc)
	s.Equal("Mira", doc.Name)
}

func (s *HandlerTestSuite) TestCloseSession() {
	s.mockSheet.EXPECT().CloseSession(gomock.Any(), &sheet.CloseSessionInput{SessionID: sessionID}).
		Return(&sheet.CloseSessionOutput{}, nil)

	resp := s.do(http.MethodDelete, "/sessions/"+sessionID, "")
	s.Equal(http.StatusNoContent, resp.StatusCode)
}

func (s *HandlerTestSuite) TestGetSpell() {
	level := 3
	s.mockSpells.EXPECT().GetSpellData(gomock.Any(), "fireball").
		Return(&external.SpellData{ID: "fireball", Name: "Fireball", Level: &level}, nil)

	resp := s.do(http.MethodGet, "/spells/fireball", "")
	s.Equal(http.StatusOK, resp.StatusCode)

	var body external.SpellData
	s.decode(resp, &body)
	s.Equal("Fireball", body.Name)
}

func (s *HandlerTestSuite) TestUnknownRoute() {
	resp := s.do(http.MethodGet, "/characters", "")
	s.Equal(http.StatusNotFound, resp.StatusCode)
}

