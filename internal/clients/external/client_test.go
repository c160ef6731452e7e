package external

import (
	"context"
	"errors"
	"testing"

	"github.com/fadedpez/dnd5e-api/clients/dnd5e"
	"github.com/fadedpez/dnd5e-api/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	sheeterrors "github.com/KirkDiggler/rpg-sheet/internal/errors"
)

// mockDND5eClient satisfies dnd5e.Interface for the tests below
type mockDND5eClient struct {
	mock.Mock
}

func (m *mockDND5eClient) ListRaces() ([]*entities.ReferenceItem, error) {
	args := m.Called()
	return args.Get(0).([]*entities.ReferenceItem), args.Error(1)
}

func (m *mockDND5eClient) GetRace(key string) (*entities.Race, error) {
	args := m.Called(key)
	return args.Get(0).(*entities.Race), args.Error(1)
}

func (m *mockDND5eClient) ListEquipment() ([]*entities.ReferenceItem, error) {
	args := m.Called()
	return args.Get(0).([]*entities.ReferenceItem), args.Error(1)
}

func (m *mockDND5eClient) GetEquipment(key string) (dnd5e.EquipmentInterface, error) {
	args := m.Called(key)
	return args.Get(0).(dnd5e.EquipmentInterface), args.Error(1)
}

func (m *mockDND5eClient) GetEquipmentCategory(key string) (*entities.EquipmentCategory, error) {
	args := m.Called(key)
	return args.Get(0).(*entities.EquipmentCategory), args.Error(1)
}

func (m *mockDND5eClient) ListClasses() ([]*entities.ReferenceItem, error) {
	args := m.Called()
	return args.Get(0).([]*entities.ReferenceItem), args.Error(1)
}

func (m *mockDND5eClient) GetClass(key string) (*entities.Class, error) {
	args := m.Called(key)
	return args.Get(0).(*entities.Class), args.Error(1)
}

func (m *mockDND5eClient) ListSpells(input *dnd5e.ListSpellsInput) ([]*entities.ReferenceItem, error) {
	args := m.Called(input)
	return args.Get(0).([]*entities.ReferenceItem), args.Error(1)
}

func (m *mockDND5eClient) GetSpell(key string) (*entities.Spell, error) {
	args := m.Called(key)
	return args.Get(0).(*entities.Spell), args.Error(1)
}

func (m *mockDND5eClient) ListFeatures() ([]*entities.ReferenceItem, error) {
	args := m.Called()
	return args.Get(0).([]*entities.ReferenceItem), args.Error(1)
}

func (m *mockDND5eClient) GetFeature(key string) (*entities.Feature, error) {
	args := m.Called(key)
	return args.Get(0).(*entities.Feature), args.Error(1)
}

func (m *mockDND5eClient) ListSkills() ([]*entities.ReferenceItem, error) {
	args := m.Called()
	return args.Get(0).([]*entities.ReferenceItem), args.Error(1)
}

func (m *mockDND5eClient) GetSkill(key string) (*entities.Skill, error) {
	args := m.Called(key)
	return args.Get(0).(*entities.Skill), args.Error(1)
}

func (m *mockDND5eClient) ListMonsters() ([]*entities.ReferenceItem, error) {
	args := m.Called()
	return args.Get(0).([]*entities.ReferenceItem), args.Error(1)
}

func (m *mockDND5eClient) ListMonstersWithFilter(input *dnd5e.ListMonstersInput) ([]*entities.ReferenceItem, error) {
	args := m.Called(input)
	return args.Get(0).([]*entities.ReferenceItem), args.Error(1)
}

func (m *mockDND5eClient) GetMonster(key string) (*entities.Monster, error) {
	args := m.Called(key)
	return args.Get(0).(*entities.Monster), args.Error(1)
}

func (m *mockDND5eClient) GetClassLevel(key string, level int) (*entities.Level, error) {
	args := m.Called(key, level)
	return args.Get(0).(*entities.Level), args.Error(1)
}

func (m *mockDND5eClient) GetProficiency(key string) (*entities.Proficiency, error) {
	args := m.Called(key)
	return args.Get(0).(*entities.Proficiency), args.Error(1)
}

func (m *mockDND5eClient) ListDamageTypes() ([]*entities.ReferenceItem, error) {
	args := m.Called()
	return args.Get(0).([]*entities.ReferenceItem), args.Error(1)
}

func (m *mockDND5eClient) GetDamageType(key string) (*entities.DamageType, error) {
	args := m.Called(key)
	return args.Get(0).(*entities.DamageType), args.Error(1)
}

func (m *mockDND5eClient) ListBackgrounds() ([]*entities.ReferenceItem, error) {
	args := m.Called()
	return args.Get(0).([]*entities.ReferenceItem), args.Error(1)
}

func (m *mockDND5eClient) GetBackground(key string) (*entities.Background, error) {
	args := m.Called(key)
	return args.Get(0).(*entities.Background), args.Error(1)
}

func TestListSpells(t *testing.T) {
	t.Run("maps class and level filters", func(t *testing.T) {
		mockClient := new(mockDND5eClient)
		c := NewWithAPI(mockClient)

		refs := []*entities.ReferenceItem{
			{Key: "fire-bolt", Name: "Fire Bolt"},
			nil,
			{Key: "light", Name: "Light"},
		}
		mockClient.On("ListSpells", mock.MatchedBy(func(in *dnd5e.ListSpellsInput) bool {
			return in != nil && in.Class == "wizard" && in.Level != nil && *in.Level == 0
		})).Return(refs, nil)

		level := 0
		result, err := c.ListSpells(context.Background(), &ListSpellsInput{Level: &level, Class: "Wizard"})

		require.NoError(t, err)
		require.Len(t, result, 2)
		assert.Equal(t, "fire-bolt", result[0].ID)
		assert.Equal(t, "Fire Bolt", result[0].Name)
		require.NotNil(t, result[0].Level)
		assert.Equal(t, 0, *result[0].Level)
		assert.Equal(t, "Light", result[1].Name)

		mockClient.AssertExpectations(t)
	})

	t.Run("unknown class is not sent", func(t *testing.T) {
		mockClient := new(mockDND5eClient)
		c := NewWithAPI(mockClient)

		mockClient.On("ListSpells", mock.MatchedBy(func(in *dnd5e.ListSpellsInput) bool {
			return in != nil && in.Class == "" && in.Level == nil
		})).Return([]*entities.ReferenceItem{{Key: "shield", Name: "Shield"}}, nil)

		result, err := c.ListSpells(context.Background(), &ListSpellsInput{Class: "fighter"})

		require.NoError(t, err)
		require.Len(t, result, 1)
		assert.Nil(t, result[0].Level)

		mockClient.AssertExpectations(t)
	})

	t.Run("nil input lists everything", func(t *testing.T) {
		mockClient := new(mockDND5eClient)
		c := NewWithAPI(mockClient)

		mockClient.On("ListSpells", (*dnd5e.ListSpellsInput)(nil)).
			Return([]*entities.ReferenceItem{}, nil)

		result, err := c.ListSpells(context.Background(), nil)

		require.NoError(t, err)
		assert.Empty(t, result)
		mockClient.AssertExpectations(t)
	})

	t.Run("API error", func(t *testing.T) {
		mockClient := new(mockDND5eClient)
		c := NewWithAPI(mockClient)

		mockClient.On("ListSpells", mock.Anything).
			Return(([]*entities.ReferenceItem)(nil), errors.New("API error"))

		result, err := c.ListSpells(context.Background(), &ListSpellsInput{})

		assert.Error(t, err)
		assert.Nil(t, result)
		assert.Contains(t, err.Error(), "failed to list spells from D&D 5e API")
		mockClient.AssertExpectations(t)
	})
}

func TestGetSpellData(t *testing.T) {
	t.Run("converts spell details", func(t *testing.T) {
		mockClient := new(mockDND5eClient)
		c := NewWithAPI(mockClient)

		spell := &entities.Spell{
			Key:           "fireball",
			Name:          "Fireball",
			SpellLevel:    3,
			SpellSchool:   &entities.ReferenceItem{Key: "evocation", Name: "Evocation"},
			CastingTime:   "1 action",
			Range:         "150 feet",
			Duration:      "Instantaneous",
			Concentration: false,
			Ritual:        false,
			SpellClasses: []*entities.ReferenceItem{{Name: "Sorcerer"}, {Name: "Wizard"}},
		}
		mockClient.On("GetSpell", "fireball").Return(spell, nil)

		result, err := c.GetSpellData(context.Background(), "fireball")

		require.NoError(t, err)
		assert.Equal(t, "Fireball", result.Name)
		require.NotNil(t, result.Level)
		assert.Equal(t, 3, *result.Level)
		assert.Equal(t, "Evocation", result.School)
		assert.Equal(t, []string{"sorcerer", "wizard"}, result.Classes)
		assert.Empty(t, result.Properties)
		assert.Equal(t, "Level 3 Evocation spell. Casting Time: 1 action. Range: 150 feet. Duration: Instantaneous", result.Description)

		mockClient.AssertExpectations(t)
	})

	t.Run("cantrip with ritual and concentration", func(t *testing.T) {
		mockClient := new(mockDND5eClient)
		c := NewWithAPI(mockClient)

		mockClient.On("GetSpell", "odd").Return(&entities.Spell{
			Key:           "odd",
			Name:          "Odd",
			Ritual:        true,
			Concentration: true,
		}, nil)

		result, err := c.GetSpellData(context.Background(), "odd")

		require.NoError(t, err)
		assert.Equal(t, []string{"Ritual", "Concentration"}, result.Properties)
		assert.Equal(t, "Cantrip Unknown School spell", result.Description)
	})

	t.Run("empty id", func(t *testing.T) {
		c := NewWithAPI(new(mockDND5eClient))

		_, err := c.GetSpellData(context.Background(), "")

		assert.True(t, sheeterrors.IsInvalidArgument(err))
	})

	t.Run("API error", func(t *testing.T) {
		mockClient := new(mockDND5eClient)
		c := NewWithAPI(mockClient)

		mockClient.On("GetSpell", "nope").Return((*entities.Spell)(nil), errors.New("not found"))

		_, err := c.GetSpellData(context.Background(), "nope")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to get spell nope")
	})
}

func TestConfigValidate(t *testing.T) {
	cfg := &Config{}
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "https://www.dnd5eapi.co/api/2014/", cfg.BaseURL)
	assert.NotZero(t, cfg.HTTPTimeout)
	assert.NotZero(t, cfg.CacheTTL)

	bad := &Config{HTTPTimeout: -1}
	assert.Error(t, bad.Validate())
}
