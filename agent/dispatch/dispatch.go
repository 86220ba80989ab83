// Package dispatch maps a validated Command to exactly one store operation
// and reports the outcome as a Result. Once a command is recognized nothing
// here returns a Go error: storage failures, missing rows and unknown intents
// all become structured error-status results.
package dispatch

import (
	"context"
	"fmt"

	contractx "github.com/tanpawarit/Relay-A2A-Natural-Language-Agents/agent/contract"
)

type Dispatcher struct {
	domain contractx.Domain
	store  contractx.Store
}

func New(domain contractx.Domain, store contractx.Store) *Dispatcher {
	return &Dispatcher{domain: domain, store: store}
}

func (d *Dispatcher) Execute(ctx context.Context, cmd contractx.Command) contractx.Result {
	switch cmd.Kind {
	case contractx.CommandAdd:
		return d.add(ctx, cmd)
	case contractx.CommandList:
		return d.list(ctx)
	case contractx.CommandDelete:
		return d.delete(ctx, cmd)
	case contractx.CommandUpdate:
		return d.update(ctx, cmd)
	default:
		return contractx.ErrorResult("unknown", "Command not recognized")
	}
}

func (d *Dispatcher) add(ctx context.Context, cmd contractx.Command) contractx.Result {
	action := d.domain.IntentFor(contractx.CommandAdd)

	id, err := d.store.Create(ctx, *cmd.Name, cmd.Secondary)
	if err != nil {
		return contractx.ErrorResult(action, fmt.Sprintf("Command failed: %v", err))
	}

	rec := map[string]any{
		"id":   id,
		"name": *cmd.Name,
	}
	if cmd.Secondary != nil {
		rec[d.domain.Secondary] = *cmd.Secondary
	} else {
		rec[d.domain.Secondary] = nil
	}

	return contractx.Result{
		Status:  contractx.StatusSuccess,
		Action:  action,
		Message: fmt.Sprintf("%s %q added", d.domain.Label, *cmd.Name),
		Payload: map[string]any{d.domain.Noun: rec},
	}
}

func (d *Dispatcher) list(ctx context.Context) contractx.Result {
	action := d.domain.IntentFor(contractx.CommandList)

	rows, err := d.store.List(ctx)
	if err != nil {
		return contractx.ErrorResult(action, fmt.Sprintf("Command failed: %v", err))
	}

	items := make([]any, 0, len(rows))
	for _, row := range rows {
		item := map[string]any{
			"id":         row.ID,
			"name":       row.Name,
			"created_at": row.CreatedAt,
		}
		if row.Secondary != nil {
			item[d.domain.Secondary] = *row.Secondary
		} else {
			item[d.domain.Secondary] = nil
		}
		items = append(items, item)
	}

	return contractx.Result{
		Status:  contractx.StatusSuccess,
		Action:  action,
		Message: fmt.Sprintf("Found %d %s(s)", len(rows), d.domain.Noun),
		Payload: map[string]any{
			d.domain.Plural: items,
			"count":         len(rows),
		},
	}
}

func (d *Dispatcher) delete(ctx context.Context, cmd contractx.Command) contractx.Result {
	action := d.domain.IntentFor(contractx.CommandDelete)

	affected, err := d.store.Delete(ctx, cmd.ID)
	if err != nil {
		return contractx.ErrorResult(action, fmt.Sprintf("Command failed: %v", err))
	}
	if affected == 0 {
		return contractx.ErrorResult(action,
			fmt.Sprintf("No %s found with ID %d", d.domain.Noun, cmd.ID))
	}

	return contractx.Result{
		Status:  contractx.StatusSuccess,
		Action:  action,
		Message: fmt.Sprintf("%s with ID %d deleted", d.domain.Label, cmd.ID),
	}
}

func (d *Dispatcher) update(ctx context.Context, cmd contractx.Command) contractx.Result {
	action := d.domain.IntentFor(contractx.CommandUpdate)

	affected, err := d.store.Update(ctx, cmd.ID, cmd.Name, cmd.Secondary)
	if err != nil {
		return contractx.ErrorResult(action, fmt.Sprintf("Command failed: %v", err))
	}
	if affected == 0 {
		return contractx.ErrorResult(action,
			fmt.Sprintf("No %s found with ID %d or nothing to update", d.domain.Noun, cmd.ID))
	}

	return contractx.Result{
		Status:  contractx.StatusSuccess,
		Action:  action,
		Message: fmt.Sprintf("%s with ID %d updated", d.domain.Label, cmd.ID),
	}
}
