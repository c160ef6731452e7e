package entities_test

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-sheet/internal/entities"
)

type DocumentTestSuite struct {
	suite.Suite
}

func TestDocumentSuite(t *testing.T) {
	suite.Run(t, new(DocumentTestSuite))
}

func intPtr(v int) *int { return &v }

func (s *DocumentTestSuite) wizard() *entities.Document {
	return &entities.Document{
		Name:   "Elminster",
		Level:  5,
		Module: "fivee_stock",
		Abilities: map[string]entities.Ability{
			"STR": {Name: "Strength", Score: 8},
			"INT": {Name: "Intelligence", Score: 18},
		},
		Skills: []entities.Skill{{Name: "Arcana", Ability: "INT"}},
		Proficiencies: entities.Proficiencies{
			SavingThrows: map[string]bool{"INT": true, "WIS": true},
		},
		Items: []entities.Item{
			{
				Name:     "Spellbook",
				Quantity: 1,
				Props: entities.Props{Spellbook: &entities.Spellbook{
					Known: map[string][]string{
						"cantrips": {"Light", "Mage Hand"},
						"1":        {"Magic Missile", "Shield"},
						"3":        {"Fireball"},
					},
					Prepared: map[string][]string{
						"1": {"Shield"},
						"3": {"Fireball"},
					},
				}},
			},
			{
				Name:     "Leather",
				Quantity: 1,
				Props: entities.Props{
					Armor: &entities.ArmorProps{Base: intPtr(11), Category: "light"},
					Extra: map[string]json.RawMessage{"weight": json.RawMessage(`10`)},
				},
			},
			{Name: "Shield", Quantity: 1, Props: entities.Props{ShieldBonus: intPtr(2)}},
			{Name: "Torch", Quantity: 5},
		},
		Feats: []entities.Feat{{Name: "War Caster", Description: "Concentration advantage"}},
		Notes: "Prefers tea.",
	}
}

func (s *DocumentTestSuite) TestRoundTripIsDeepEqual() {
	doc := s.wizard()

	data, err := json.MarshalIndent(doc, "", "  ")
	s.Require().NoError(err)

	var loaded entities.Document
	s.Require().NoError(json.Unmarshal(data, &loaded))

	s.Empty(cmp.Diff(doc, &loaded))
}

func (s *DocumentTestSuite) TestRoundTripFreshSpellbook() {
	doc := &entities.Document{
		Name:   "New",
		Level:  1,
		Module: "fivee_stock",
		Items: []entities.Item{
			{Name: "Spellbook", Quantity: 1, Props: entities.Props{Spellbook: entities.NewSpellbook()}},
		},
	}

	data, err := json.Marshal(doc)
	s.Require().NoError(err)
	s.Contains(string(data), `"props":{"spellbook":{"known":{"cantrips":[]},"prepared":{}}}`)

	var loaded entities.Document
	s.Require().NoError(json.Unmarshal(data, &loaded))
	s.Empty(cmp.Diff(doc, &loaded))
}

func (s *DocumentTestSuite) TestUnmodelledMembersRoundTrip() {
	input := `{
		"name": "Mira",
		"level": 3,
		"module": "fivee_stock",
		"abilities": {"STR": {"name": "Strength", "score": 10, "temp": 2}},
		"skills": [{"name": "Arcana", "ability": "INT", "expertise": true}],
		"proficiencies": {"saving_throws": {"INT": true}, "tools": ["herbalism kit"]},
		"items": [{"name": "Spellbook", "quantity": 1, "weight": 3,
			"props": {"spellbook": {"known": {"cantrips": []}, "prepared": {}, "ribbon": "red"}}}],
		"feats": [{"name": "Alert", "props": {"init": 5}}],
		"hp": {"max": 18},
		"xp": 900
	}`

	var doc entities.Document
	s.Require().NoError(json.Unmarshal([]byte(input), &doc))
	s.Equal(`{"max":18}`, string(doc.Extra["hp"]))
	s.Equal(`{"init":5}`, string(doc.Feats[0].Extra["props"]))
	s.Equal(`"red"`, string(doc.Items[0].Props.Spellbook.Extra["ribbon"]))

	data, err := json.Marshal(doc.Clone())
	s.Require().NoError(err)
	s.JSONEq(input, string(data))
}

func (s *DocumentTestSuite) TestMissingCollectionsAreWrittenEmpty() {
	var doc entities.Document
	s.Require().NoError(json.Unmarshal([]byte(`{"name": "Mira", "level": 1, "module": "fivee_stock"}`), &doc))
	s.Nil(doc.Abilities)
	s.Nil(doc.Items)

	data, err := json.Marshal(&doc)
	s.Require().NoError(err)
	s.JSONEq(`{"name":"Mira","level":1,"module":"fivee_stock","abilities":{},"skills":[],`+
		`"proficiencies":{"saving_throws":{}},"items":[],"feats":[]}`, string(data))

	data, err = json.Marshal(&entities.Spellbook{})
	s.Require().NoError(err)
	s.JSONEq(`{"known":{},"prepared":{}}`, string(data))
}

func (s *DocumentTestSuite) TestMismatchedMemberIsKeptUntilEdited() {
	var doc entities.Document
	s.Require().NoError(json.Unmarshal([]byte(`{"name": "Mira", "level": "3", "items": {"bag": 1}}`), &doc))
	s.Zero(doc.Level)
	s.Nil(doc.Items)

	data, err := json.Marshal(&doc)
	s.Require().NoError(err)
	s.Contains(string(data), `"level":"3"`)
	s.Contains(string(data), `"items":{"bag":1}`)

	doc.Level = 4
	data, err = json.Marshal(&doc)
	s.Require().NoError(err)
	s.Contains(string(data), `"level":4`)
	s.NotContains(string(data), `"3"`)
}

func (s *DocumentTestSuite) TestPropsFallBackToGeneric() {
	testCases := []struct {
		name  string
		input string
		check func(p entities.Props)
	}{
		{
			name:  "armor with unknown field stays generic",
			input: `{"armor": {"base": 14, "stealth": "disadvantage"}}`,
			check: func(p entities.Props) {
				s.Nil(p.Armor)
				s.JSONEq(`{"base":14,"stealth":"disadvantage"}`, string(p.Extra["armor"]))
			},
		},
		{
			name:  "non-integer shield bonus stays generic",
			input: `{"shield_bonus": "two"}`,
			check: func(p entities.Props) {
				s.Nil(p.ShieldBonus)
				s.Equal(`"two"`, string(p.Extra["shield_bonus"]))
			},
		},
		{
			name:  "typed and generic keys together",
			input: `{"shield_bonus": 2, "ac_base": 13}`,
			check: func(p entities.Props) {
				s.Require().NotNil(p.ShieldBonus)
				s.Equal(2, *p.ShieldBonus)
				s.Equal(`13`, string(p.Extra["ac_base"]))
			},
		},
		{
			name:  "null spellbook stays generic",
			input: `{"spellbook": null}`,
			check: func(p entities.Props) {
				s.Nil(p.Spellbook)
				s.Equal(`null`, string(p.Extra["spellbook"]))
			},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			p, err := entities.ParseProps(tc.input)
			s.Require().NoError(err)
			tc.check(p)

			data, err := json.Marshal(p)
			s.Require().NoError(err)
			s.JSONEq(tc.input, string(data))
		})
	}
}

func (s *DocumentTestSuite) TestParsePropsRejectsMalformed() {
	for _, input := range []string{`{"armor":`, `[1,2]`, `"text"`, `not json`} {
		_, err := entities.ParseProps(input)
		s.Error(err, input)
	}
}

func (s *DocumentTestSuite) TestParsePropsBlankIsEmpty() {
	p, err := entities.ParseProps("   ")
	s.Require().NoError(err)
	s.True(p.IsEmpty())
}

func (s *DocumentTestSuite) TestCloneIsIndependent() {
	doc := s.wizard()
	clone := doc.Clone()
	s.Empty(cmp.Diff(doc, clone))

	clone.Items[0].Props.Spellbook.Known["1"][0] = "Sleep"
	clone.Abilities["STR"] = entities.Ability{Name: "Strength", Score: 20}
	clone.Proficiencies.SavingThrows["STR"] = true

	s.Equal("Magic Missile", doc.Items[0].Props.Spellbook.Known["1"][0])
	s.Equal(8, doc.Abilities["STR"].Score)
	s.False(doc.Proficiencies.SavingThrows["STR"])
}

func (s *DocumentTestSuite) TestNormalizers() {
	s.Equal(1, entities.ClampLevel(0))
	s.Equal(20, entities.ClampLevel(99))
	s.Equal(7, entities.ClampLevel(7))
	s.Equal(1, entities.ClampScore(-3))
	s.Equal(30, entities.ClampScore(31))
	s.Equal(1, entities.NormalizeQuantity(0))
	s.Equal(3, entities.NormalizeQuantity(3))
	s.True(entities.IsAbilityKey("CHA"))
	s.False(entities.IsAbilityKey("LUCK"))
}
