package sheet

import (
	"context"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/rpg-sheet/internal/clients/rules"
	"github.com/KirkDiggler/rpg-sheet/internal/entities"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/services/sheet"
)

// AddItem appends an inventory item
func (o *Orchestrator) AddItem(ctx context.Context, input *sheet.AddItemInput) (*sheet.SheetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if _, err := o.session(ctx, input.SessionID); err != nil {
		return nil, err
	}

	props, err := o.parseProps(ctx, input.SessionID, input.Props)
	if err != nil {
		return nil, err
	}
	item := entities.Item{
		Name:     strings.TrimSpace(input.Name),
		Quantity: entities.NormalizeQuantity(input.Quantity),
		Props:    props,
	}

	return o.mutate(ctx, input.SessionID, true, func(doc *entities.Document) error {
		doc.Items = append(doc.Items, item)
		return nil
	})
}

// UpdateItem edits the name or quantity of an item. Neither affects rules.
func (o *Orchestrator) UpdateItem(ctx context.Context, input *sheet.UpdateItemInput) (*sheet.SheetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	return o.mutate(ctx, input.SessionID, false, func(doc *entities.Document) error {
		item, err := itemAt(doc, input.Index)
		if err != nil {
			return err
		}
		if input.Name != nil {
			item.Name = *input.Name
		}
		if input.Quantity != nil {
			item.Quantity = entities.NormalizeQuantity(*input.Quantity)
		}
		return nil
	})
}

// UpdateItemProps replaces an item's props. Text that is not a JSON object
// leaves the item untouched.
func (o *Orchestrator) UpdateItemProps(ctx context.Context, input *sheet.UpdateItemPropsInput) (*sheet.SheetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if _, err := o.session(ctx, input.SessionID); err != nil {
		return nil, err
	}

	props, err := o.parseProps(ctx, input.SessionID, input.Props)
	if err != nil {
		return nil, err
	}

	return o.mutate(ctx, input.SessionID, true, func(doc *entities.Document) error {
		item, err := itemAt(doc, input.Index)
		if err != nil {
			return err
		}
		item.Props = props
		return nil
	})
}

// RemoveItem deletes an item by position
func (o *Orchestrator) RemoveItem(ctx context.Context, input *sheet.RemoveItemInput) (*sheet.SheetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	return o.mutate(ctx, input.SessionID, true, func(doc *entities.Document) error {
		if _, err := itemAt(doc, input.Index); err != nil {
			return err
		}
		doc.Items = append(doc.Items[:input.Index:input.Index], doc.Items[input.Index+1:]...)
		return nil
	})
}

// parseProps decodes user-typed props, telling the user when they are invalid
func (o *Orchestrator) parseProps(ctx context.Context, sessionID, text string) (entities.Props, error) {
	props, err := entities.ParseProps(text)
	if err != nil {
		o.notice(ctx, sessionID, sheet.NoticeInvalidProps)
		slog.WarnContext(ctx, "Rejected item props",
			"session_id", sessionID,
			"error", err,
		)
		o.reporter.Report(ctx, &rules.LogEntry{
			Level:   rules.LevelWarn,
			Message: "item props parse",
			Stack:   err.Error(),
		})
		return entities.Props{}, errors.Parse(err, "item props")
	}
	return props, nil
}
