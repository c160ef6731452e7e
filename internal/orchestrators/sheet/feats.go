package sheet

import (
	"context"
	"strings"

	"github.com/KirkDiggler/rpg-sheet/internal/entities"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/services/sheet"
)

// AddFeat appends a feat. Feats carry no rule data.
func (o *Orchestrator) AddFeat(ctx context.Context, input *sheet.AddFeatInput) (*sheet.SheetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if _, err := o.session(ctx, input.SessionID); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		o.notice(ctx, input.SessionID, sheet.NoticeFeatNameRequired)
		return nil, errors.InvalidArgument("feat name is required")
	}
	feat := entities.Feat{Name: name, Description: input.Description}

	return o.mutate(ctx, input.SessionID, false, func(doc *entities.Document) error {
		doc.Feats = append(doc.Feats, feat)
		return nil
	})
}

// UpdateFeat edits a feat
func (o *Orchestrator) UpdateFeat(ctx context.Context, input *sheet.UpdateFeatInput) (*sheet.SheetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	return o.mutate(ctx, input.SessionID, false, func(doc *entities.Document) error {
		feat, err := featAt(doc, input.Index)
		if err != nil {
			return err
		}
		if input.Name != nil {
			feat.Name = *input.Name
		}
		if input.Description != nil {
			feat.Description = *input.Description
		}
		return nil
	})
}

// RemoveFeat deletes a feat by position
func (o *Orchestrator) RemoveFeat(ctx context.Context, input *sheet.RemoveFeatInput) (*sheet.SheetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	return o.mutate(ctx, input.SessionID, false, func(doc *entities.Document) error {
		if _, err := featAt(doc, input.Index); err != nil {
			return err
		}
		doc.Feats = append(doc.Feats[:input.Index:input.Index], doc.Feats[input.Index+1:]...)
		return nil
	})
}
