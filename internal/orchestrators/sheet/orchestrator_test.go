package sheet_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-sheet/internal/clients/rules"
	rulesmock "github.com/KirkDiggler/rpg-sheet/internal/clients/rules/mock"
	"github.com/KirkDiggler/rpg-sheet/internal/entities"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/notify"
	"github.com/KirkDiggler/rpg-sheet/internal/orchestrators/derivation"
	"github.com/KirkDiggler/rpg-sheet/internal/orchestrators/dice"
	dicemock "github.com/KirkDiggler/rpg-sheet/internal/orchestrators/dice/mock"
	sheetorch "github.com/KirkDiggler/rpg-sheet/internal/orchestrators/sheet"
	"github.com/KirkDiggler/rpg-sheet/internal/orchestrators/suggest"
	suggestmock "github.com/KirkDiggler/rpg-sheet/internal/orchestrators/suggest/mock"
	"github.com/KirkDiggler/rpg-sheet/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-sheet/internal/pkg/idgen"
	dicesession "github.com/KirkDiggler/rpg-sheet/internal/repositories/dice_session"
	"github.com/KirkDiggler/rpg-sheet/internal/repositories/session"
	"github.com/KirkDiggler/rpg-sheet/internal/services/sheet"
	"github.com/KirkDiggler/rpg-sheet/internal/spellbook"
	"github.com/KirkDiggler/rpg-sheet/internal/testutils"
)

const sessionID = "sheet_1"

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockRules    *rulesmock.MockClient
	mockDice     *dicemock.MockService
	mockSuggest  *suggestmock.MockService
	publisher    *notify.Publisher
	reporter     *rules.Reporter
	sessions     session.Repository
	orchestrator *sheetorch.Orchestrator
	ctx          context.Context
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockRules = rulesmock.NewMockClient(s.ctrl)
	s.mockDice = dicemock.NewMockService(s.ctrl)
	s.mockSuggest = suggestmock.NewMockService(s.ctrl)
	s.ctx = context.Background()

	s.mockRules.EXPECT().Log(gomock.Any(), gomock.Any()).AnyTimes()
	s.reporter = rules.NewReporter(s.mockRules)

	fixed := clock.NewFixed(time.Date(2025, 9, 1, 18, 0, 0, 0, time.UTC))
	var err error
	s.publisher, err = notify.New(&notify.Config{Bus: events.NewBus(), Clock: fixed})
	s.Require().NoError(err)

	client, _ := testutils.CreateTestRedisClient(s.T())
	s.sessions, err = session.NewRedisRepository(&session.Config{
		Client:      client,
		Clock:       fixed,
		IDGenerator: idgen.NewSequential("sheet"),
	})
	s.Require().NoError(err)

	deriver, err := derivation.NewOrchestrator(&derivation.Config{
		Rules:    s.mockRules,
		Notifier: s.publisher,
		Reporter: s.reporter,
	})
	s.Require().NoError(err)

	s.orchestrator, err = sheetorch.New(&sheetorch.Config{
		SessionRepo: s.sessions,
		Rules:       s.mockRules,
		Derivation:  deriver,
		Suggest:     s.mockSuggest,
		Dice:        s.mockDice,
		Notifier:    s.publisher,
		Inbox:       s.publisher,
		Reporter:    s.reporter,
	})
	s.Require().NoError(err)
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.reporter.Wait()
	s.NoError(s.publisher.Close())
	s.ctrl.Finish()
}

// wizard builds a document knowing names at level 1, preparing the first prepared of them
func wizard(level int, prepared int, names ...string) *entities.Document {
	doc := &entities.Document{
		Name:   "Mira Vance",
		Level:  level,
		Module: "fivee_stock",
		Abilities: map[string]entities.Ability{
			entities.AbilityIntelligence: {Name: "Intelligence", Score: 16},
		},
	}
	sb := spellbook.Ensure(doc)
	for i, name := range names {
		_, _ = spellbook.AddKnown(sb, "1", name)
		if i < prepared {
			_ = spellbook.SetPrepared(sb, "1", name, true)
		}
	}
	return doc
}

func snapshotWithCap(capacity string) *entities.Snapshot {
	snap, err := entities.ParseSnapshot([]byte(`{"armor_class":12,"spellcasting":{"class":"wizard","prepared_max":` + capacity + `}}`))
	if err != nil {
		panic(err)
	}
	return snap
}

// load opens doc in a new session with the given derived capacity
func (s *OrchestratorTestSuite) load(doc *entities.Document, capacity string) *sheet.SheetOutput {
	data, err := json.Marshal(doc)
	s.Require().NoError(err)

	s.mockRules.EXPECT().Derive(gomock.Any(), gomock.Any()).Return(snapshotWithCap(capacity), nil)

	out, err := s.orchestrator.LoadCharacter(s.ctx, &sheet.LoadCharacterInput{Data: data})
	s.Require().NoError(err)
	s.Require().Equal(sessionID, out.Sheet.SessionID)
	return out
}

func (s *OrchestratorTestSuite) current() *sheet.Sheet {
	out, err := s.orchestrator.GetCharacter(s.ctx, &sheet.GetCharacterInput{SessionID: sessionID})
	s.Require().NoError(err)
	return out.Sheet
}

func (s *OrchestratorTestSuite) TestConfigValidation() {
	_, err := sheetorch.New(&sheetorch.Config{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestPreparingBeyondCapacityDropsTheNewest() {
	s.load(wizard(1, 0, "Magic Missile", "Shield", "Sleep"), "2")

	for _, name := range []string{"Magic Missile", "Shield"} {
		out, err := s.orchestrator.SetSpellPrepared(s.ctx, &sheet.SetSpellPreparedInput{
			SessionID: sessionID, Level: "1", Name: name, Prepared: true,
		})
		s.Require().NoError(err)
		s.Empty(out.Dropped)
	}

	out, err := s.orchestrator.SetSpellPrepared(s.ctx, &sheet.SetSpellPreparedInput{
		SessionID: sessionID, Level: "1", Name: "Sleep", Prepared: true,
	})
	s.Require().NoError(err)

	s.Equal([]spellbook.Entry{{Level: "1", Name: "Sleep"}}, out.Dropped)
	s.Equal([]string{"Magic Missile", "Shield"}, spellbook.Get(out.Sheet.Document).Prepared["1"])
	s.NotNil(out.Sheet.Derived, "prepared toggles keep the snapshot")
}

func (s *OrchestratorTestSuite) TestLevelUpKeepsPreparedSpells() {
	s.load(wizard(1, 2, "Magic Missile", "Shield", "Sleep"), "2")

	s.mockRules.EXPECT().Derive(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, doc *entities.Document) (*entities.Snapshot, error) {
			s.Equal(5, doc.Level)
			return snapshotWithCap("4"), nil
		})

	out, err := s.orchestrator.UpdateLevel(s.ctx, &sheet.UpdateLevelInput{SessionID: sessionID, Level: 5})
	s.Require().NoError(err)

	s.Empty(out.Dropped)
	s.Equal(5, out.Sheet.Document.Level)
	s.Equal([]string{"Magic Missile", "Shield"}, spellbook.Get(out.Sheet.Document).Prepared["1"])
	s.Require().NotNil(out.Sheet.Derived.PreparedMax())
	s.Equal(4.0, *out.Sheet.Derived.PreparedMax())
}

func (s *OrchestratorTestSuite) TestPreparingUsesSnapshotOfTheCurrentDocument() {
	s.load(wizard(3, 1, "Shield", "Sleep", "Grease"), "1")

	s.mockRules.EXPECT().Derive(gomock.Any(), gomock.Any()).Return(nil, errors.TransportStatus("derive", 503, ""))
	_, err := s.orchestrator.UpdateLevel(s.ctx, &sheet.UpdateLevelInput{SessionID: sessionID, Level: 1})
	s.Require().NoError(err)
	s.Nil(s.current().Derived)

	out, err := s.orchestrator.SetSpellPrepared(s.ctx, &sheet.SetSpellPreparedInput{
		SessionID: sessionID, Level: "1", Name: "Sleep", Prepared: true,
	})
	s.Require().NoError(err)
	s.Empty(out.Dropped)
	s.Equal([]string{"Shield", "Sleep"}, spellbook.Get(s.current().Document).Prepared["1"])
}

func (s *OrchestratorTestSuite) TestLevelIsClamped() {
	s.load(wizard(1, 0), "0")
	s.mockRules.EXPECT().Derive(gomock.Any(), gomock.Any()).Return(snapshotWithCap("0"), nil)

	out, err := s.orchestrator.UpdateLevel(s.ctx, &sheet.UpdateLevelInput{SessionID: sessionID, Level: 42})
	s.Require().NoError(err)
	s.Equal(entities.MaxLevel, out.Sheet.Document.Level)
}

func (s *OrchestratorTestSuite) TestFailedDerivationClearsSnapshotAndKeepsDocument() {
	loaded := s.load(wizard(3, 1, "Shield"), "2")
	s.Require().NotNil(loaded.Sheet.Derived)

	s.mockRules.EXPECT().Derive(gomock.Any(), gomock.Any()).
		Return(nil, errors.TransportStatus("derive", 503, "down"))

	out, err := s.orchestrator.UpdateAbilityScore(s.ctx, &sheet.UpdateAbilityScoreInput{
		SessionID: sessionID, Ability: "int", Score: 18,
	})
	s.Require().NoError(err)

	s.Nil(out.Sheet.Derived)
	s.Contains(out.Notices, "Derive failed: 503 Service Unavailable")

	want := wizard(3, 1, "Shield")
	want.Abilities[entities.AbilityIntelligence] = entities.Ability{Name: "Intelligence", Score: 18}
	if diff := cmp.Diff(want, out.Sheet.Document); diff != "" {
		s.Failf("document mismatch", "(-want +got):\n%s", diff)
	}
}

func (s *OrchestratorTestSuite) TestInvalidPropsLeaveItemUntouched() {
	doc := wizard(1, 0)
	bonus := 2
	doc.Items = append(doc.Items, entities.Item{
		Name: "Shield", Quantity: 1, Props: entities.Props{ShieldBonus: &bonus},
	})
	s.load(doc, "0")
	s.publisher.Drain(sessionID)
	before := s.current()

	_, err := s.orchestrator.UpdateItemProps(s.ctx, &sheet.UpdateItemPropsInput{
		SessionID: sessionID, Index: 1, Props: `{"shield_bonus": `,
	})
	s.Require().Error(err)
	s.True(errors.IsParse(err))

	after := s.current()
	s.Equal(before.Version, after.Version)
	if diff := cmp.Diff(before.Document, after.Document); diff != "" {
		s.Failf("document changed", "(-before +after):\n%s", diff)
	}

	notices := s.publisher.Drain(sessionID)
	s.Require().Len(notices, 1)
	s.Equal(sheet.NoticeInvalidProps, notices[0].Message)
}

func (s *OrchestratorTestSuite) TestAddItemDerivesAndNormalizesQuantity() {
	s.load(wizard(1, 0), "0")
	s.mockRules.EXPECT().Derive(gomock.Any(), gomock.Any()).Return(snapshotWithCap("0"), nil)

	out, err := s.orchestrator.AddItem(s.ctx, &sheet.AddItemInput{
		SessionID: sessionID, Name: " Chain Mail ", Quantity: 0,
		Props: `{"armor":{"base":16,"category":"heavy"}}`,
	})
	s.Require().NoError(err)

	items := out.Sheet.Document.Items
	s.Require().Len(items, 2)
	s.Equal("Chain Mail", items[1].Name)
	s.Equal(1, items[1].Quantity)
	s.Require().NotNil(items[1].Props.Armor)
	s.Equal("heavy", items[1].Props.Armor.Category)
}

func (s *OrchestratorTestSuite) TestUpdateItemDoesNotDerive() {
	s.load(wizard(1, 0), "0")
	name := "Grimoire"
	qty := -3

	out, err := s.orchestrator.UpdateItem(s.ctx, &sheet.UpdateItemInput{
		SessionID: sessionID, Index: 0, Name: &name, Quantity: &qty,
	})
	s.Require().NoError(err)
	s.Equal("Grimoire", out.Sheet.Document.Items[0].Name)
	s.Equal(1, out.Sheet.Document.Items[0].Quantity)
	s.NotNil(out.Sheet.Derived)
}

func (s *OrchestratorTestSuite) TestItemIndexOutOfRange() {
	s.load(wizard(1, 0), "0")

	_, err := s.orchestrator.RemoveItem(s.ctx, &sheet.RemoveItemInput{SessionID: sessionID, Index: 7})
	s.Require().Error(err)
	s.Equal(errors.CodeOutOfRange, errors.GetCode(err))
}

func (s *OrchestratorTestSuite) TestFeatNameRequired() {
	s.load(wizard(1, 0), "0")

	out, err := s.orchestrator.AddFeat(s.ctx, &sheet.AddFeatInput{SessionID: sessionID, Name: "War Caster"})
	s.Require().NoError(err)
	s.Equal([]entities.Feat{{Name: "War Caster"}}, out.Sheet.Document.Feats)

	s.publisher.Drain(sessionID)
	_, err = s.orchestrator.AddFeat(s.ctx, &sheet.AddFeatInput{SessionID: sessionID, Name: "  "})
	s.True(errors.IsInvalidArgument(err))
	s.Equal(sheet.NoticeFeatNameRequired, s.publisher.Drain(sessionID)[0].Message)
}

func (s *OrchestratorTestSuite) TestKnownSpellsAreNotRuleRelevant() {
	loaded := s.load(&entities.Document{Name: "Bram", Level: 1, Module: "fivee_stock"}, "1")

	out, err := s.orchestrator.AddKnownSpell(s.ctx, &sheet.AddKnownSpellInput{
		SessionID: sessionID, Level: "C", Name: " Fire Bolt ",
	})
	s.Require().NoError(err)
	s.Equal(loaded.Sheet.Version, out.Sheet.Version)
	s.Equal([]string{"Fire Bolt"}, spellbook.Get(out.Sheet.Document).Known[entities.CantripsKey])
	s.Equal(spellbook.CarrierName, out.Sheet.Document.Items[0].Name)

	out, err = s.orchestrator.RemoveKnownSpell(s.ctx, &sheet.RemoveKnownSpellInput{
		SessionID: sessionID, Level: "C", Name: "Fire Bolt",
	})
	s.Require().NoError(err)
	s.Empty(spellbook.Get(out.Sheet.Document).Known[entities.CantripsKey])

	_, err = s.orchestrator.AddKnownSpell(s.ctx, &sheet.AddKnownSpellInput{SessionID: sessionID, Level: "1"})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestNewCharacterUsesDefaults() {
	s.mockRules.EXPECT().ListModules(gomock.Any()).Return([]*rules.Module{
		{ID: "homebrew"}, {ID: "fivee_stock"},
	}, nil)
	s.mockRules.EXPECT().NewCharacter(gomock.Any(), &rules.NewCharacterInput{
		ModuleID: "fivee_stock", Name: sheet.DefaultCharacterName,
	}).Return(&entities.Document{Name: sheet.DefaultCharacterName, Level: 1}, nil)
	s.mockRules.EXPECT().Derive(gomock.Any(), gomock.Any()).Return(snapshotWithCap("0"), nil)

	out, err := s.orchestrator.NewCharacter(s.ctx, &sheet.NewCharacterInput{})
	s.Require().NoError(err)

	s.Equal(sessionID, out.Sheet.SessionID)
	s.Equal("fivee_stock", out.Sheet.Document.Module)
	s.NotNil(out.Sheet.Derived)
}

func (s *OrchestratorTestSuite) TestNewCharacterFailureNotifiesOpenSession() {
	s.load(wizard(1, 0), "0")
	s.publisher.Drain(sessionID)

	s.mockRules.EXPECT().NewCharacter(gomock.Any(), gomock.Any()).
		Return(nil, errors.Transport(context.DeadlineExceeded, "new character"))

	_, err := s.orchestrator.NewCharacter(s.ctx, &sheet.NewCharacterInput{
		SessionID: sessionID, ModuleID: "fivee_stock",
	})
	s.Require().Error(err)
	s.Equal("New character failed: request timed out", s.publisher.Drain(sessionID)[0].Message)
	s.Equal("Mira Vance", s.current().Document.Name)
}

func (s *OrchestratorTestSuite) TestLoadRejectsMalformedFile() {
	for _, data := range []string{`{"name": `, `null`, `[1,2]`} {
		_, err := s.orchestrator.LoadCharacter(s.ctx, &sheet.LoadCharacterInput{Data: []byte(data)})
		s.Require().Error(err, data)
		s.True(errors.IsParse(err), data)
	}
}

func (s *OrchestratorTestSuite) TestSaveCharacter() {
	s.load(wizard(2, 0), "0")
	s.mockRules.EXPECT().Validate(gomock.Any(), gomock.Any()).Return([]string{"No armor proficiency"}, nil)

	out, err := s.orchestrator.SaveCharacter(s.ctx, &sheet.SaveCharacterInput{SessionID: sessionID})
	s.Require().NoError(err)

	s.Equal("mira_vance.json", out.Filename)
	s.Equal([]string{"No armor proficiency"}, out.Issues)
	s.Equal([]string{"Saved with warnings (1)"}, out.Notices)
	s.Contains(string(out.Data), "\n  \"name\": \"Mira Vance\"")

	var saved entities.Document
	s.Require().NoError(json.Unmarshal(out.Data, &saved))
	if diff := cmp.Diff(wizard(2, 0), &saved); diff != "" {
		s.Failf("saved document mismatch", "(-want +got):\n%s", diff)
	}
}

func (s *OrchestratorTestSuite) TestLoadSaveKeepsUnmodelledMembers() {
	file := `{"name":"Mira","level":"3","module":"fivee_stock","hp":{"max":18},` +
		`"feats":[{"name":"Alert","props":{"init":5}}]}`
	want := `{"name":"Mira","level":"3","module":"fivee_stock","abilities":{},"skills":[],` +
		`"proficiencies":{"saving_throws":{}},"items":[],"feats":[{"name":"Alert","props":{"init":5}}],"hp":{"max":18}}`

	var sent []byte
	s.mockRules.EXPECT().Derive(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, doc *entities.Document) (*entities.Snapshot, error) {
			var err error
			sent, err = json.Marshal(doc)
			s.Require().NoError(err)
			return snapshotWithCap("0"), nil
		})

	_, err := s.orchestrator.LoadCharacter(s.ctx, &sheet.LoadCharacterInput{Data: []byte(file)})
	s.Require().NoError(err)
	s.JSONEq(want, string(sent))

	s.mockRules.EXPECT().Validate(gomock.Any(), gomock.Any()).Return(nil, nil)
	out, err := s.orchestrator.SaveCharacter(s.ctx, &sheet.SaveCharacterInput{SessionID: sessionID})
	s.Require().NoError(err)
	s.JSONEq(want, string(out.Data))
	s.NotContains(string(out.Data), "null")
}

func (s *OrchestratorTestSuite) TestSaveWithoutDocument() {
	_, err := s.sessions.Create(s.ctx, session.CreateInput{})
	s.Require().NoError(err)

	_, err = s.orchestrator.SaveCharacter(s.ctx, &sheet.SaveCharacterInput{SessionID: sessionID})
	s.True(errors.IsFailedPrecondition(err))
	s.Equal(sheet.NoticeNothingToSave, s.publisher.Drain(sessionID)[0].Message)
}

func (s *OrchestratorTestSuite) TestRollAbilityScores() {
	s.load(wizard(1, 0), "0")

	rolls := []dicesession.Roll{{Label: "STR", Notation: "4d6", Dice: []int{6, 6, 5, 1}, Dropped: []int{1}, Total: 17}}
	s.mockDice.EXPECT().RollAbilityScores(gomock.Any(), &dice.RollAbilityScoresInput{
		SessionID: sessionID, Method: dice.MethodStandard,
	}).Return(&dice.RollAbilityScoresOutput{
		Rolls:  rolls,
		Scores: map[string]int{entities.AbilityStrength: 17, entities.AbilityIntelligence: 12},
	}, nil)
	s.mockRules.EXPECT().Derive(gomock.Any(), gomock.Any()).Return(snapshotWithCap("0"), nil)

	out, err := s.orchestrator.RollAbilityScores(s.ctx, &sheet.RollAbilityScoresInput{
		SessionID: sessionID, Method: dice.MethodStandard,
	})
	s.Require().NoError(err)

	s.Equal(rolls, out.Rolls)
	s.Equal(entities.Ability{Name: "Strength", Score: 17}, out.Sheet.Document.Abilities[entities.AbilityStrength])
	s.Equal(entities.Ability{Name: "Intelligence", Score: 12}, out.Sheet.Document.Abilities[entities.AbilityIntelligence])
}

func (s *OrchestratorTestSuite) TestSavingThrowRejectsUnknownAbility() {
	s.load(wizard(1, 0), "0")

	_, err := s.orchestrator.SetSavingThrow(s.ctx, &sheet.SetSavingThrowInput{SessionID: sessionID, Ability: "LUCK"})
	s.True(errors.IsInvalidArgument(err))

	s.mockRules.EXPECT().Derive(gomock.Any(), gomock.Any()).Return(snapshotWithCap("0"), nil)
	out, err := s.orchestrator.SetSavingThrow(s.ctx, &sheet.SetSavingThrowInput{
		SessionID: sessionID, Ability: "wis", Proficient: true,
	})
	s.Require().NoError(err)
	s.True(out.Sheet.Document.Proficiencies.SavingThrows[entities.AbilityWisdom])
}

func (s *OrchestratorTestSuite) TestSuggestSpellsUsesModuleAndClass() {
	s.load(wizard(1, 0), "2")

	level := 1
	s.mockSuggest.EXPECT().Suggest(gomock.Any(), &suggest.SuggestInput{
		SessionID: sessionID, Query: "mag", Module: "fivee_stock", Class: "wizard", Level: &level,
	}).Return(&suggest.SuggestOutput{Suggestions: []*suggest.Suggestion{
		{Name: "Magic Missile", Source: suggest.SourceRules},
	}}, nil)

	out, err := s.orchestrator.SuggestSpells(s.ctx, &sheet.SuggestSpellsInput{
		SessionID: sessionID, Query: "mag", Level: "1",
	})
	s.Require().NoError(err)
	s.Require().Len(out.Suggestions, 1)
	s.Equal("Magic Missile", out.Suggestions[0].Name)
}

func (s *OrchestratorTestSuite) TestCloseSession() {
	s.load(wizard(1, 0), "0")
	s.mockDice.EXPECT().ClearRolls(gomock.Any(), &dice.ClearRollsInput{SessionID: sessionID}).
		Return(&dice.ClearRollsOutput{}, nil)

	_, err := s.orchestrator.CloseSession(s.ctx, &sheet.CloseSessionInput{SessionID: sessionID})
	s.Require().NoError(err)

	_, err = s.orchestrator.GetCharacter(s.ctx, &sheet.GetCharacterInput{SessionID: sessionID})
	s.True(errors.IsNotFound(err))

	listed, err := s.orchestrator.ListSessions(s.ctx, &sheet.ListSessionsInput{})
	s.Require().NoError(err)
	s.Empty(listed.SessionIDs)
}

func (s *OrchestratorTestSuite) TestListModulesDefault() {
	s.mockRules.EXPECT().ListModules(gomock.Any()).Return([]*rules.Module{{ID: "homebrew"}, {ID: "variant"}}, nil)

	out, err := s.orchestrator.ListModules(s.ctx, &sheet.ListModulesInput{})
	s.Require().NoError(err)
	s.Equal("homebrew", out.Default)
}

func TestSlug(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{name: "Mira Vance", want: "mira_vance"},
		{name: "  Sir  Reginald -- the 3rd!", want: "sir_reginald_the_3rd"},
		{name: "Éowyn", want: "owyn"},
		{name: "", want: "character"},
		{name: "!!!", want: "character"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sheetorch.Slug(tt.name); got != tt.want {
				t.Errorf("Slug(%q) = %q, want %q", tt.name, got, tt.want)
			}
		})
	}
}
