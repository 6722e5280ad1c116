package usecase

import (
	"context"
	"errors"
	"fmt"

	"porter-saathi/internal/assistant"
	"porter-saathi/internal/driver/repository"
)

// ProcessQuery resolves the driver, classifies the query and dispatches to the
// intent's handler. The handler's response is returned unchanged.
func (uc *implUseCase) ProcessQuery(ctx context.Context, req assistant.Request) (assistant.Response, error) {
	now := uc.now()
	if req.Language == "" {
		req.Language = uc.defaultLanguage
	}

	d, err := uc.repo.GetDriver(ctx, req.DriverID)
	if err != nil {
		if errors.Is(err, repository.ErrDriverNotFound) {
			uc.l.Infof(ctx, "assistant.usecase.ProcessQuery: driver %q not found", req.DriverID)
			return textResponse(msgDriverNotFound, nil), nil
		}
		uc.l.Errorf(ctx, "assistant.usecase.ProcessQuery: repo.GetDriver %q: %v", req.DriverID, err)
		return assistant.Response{}, fmt.Errorf("get driver %s: %w", req.DriverID, err)
	}

	out := uc.router.Classify(ctx, req.Query)
	uc.l.Debugf(ctx, "assistant.usecase.ProcessQuery: driver=%s lang=%s intent=%s", d.ID, req.Language, out.Intent)

	handle, ok := uc.handlers[out.Intent]
	if !ok {
		handle = uc.handleUnknown
	}
	return handle(ctx, d, now), nil
}

// RaiseEmergency runs the emergency handler with the caller's location and
// alert type. An unknown driver gets the not-found reply and no alert.
// It bypasses the classifier on purpose, so the alert fires even though a
// phrase like "emergency help needed" would classify as help.
func (uc *implUseCase) RaiseEmergency(ctx context.Context, input assistant.EmergencyInput) (assistant.Response, error) {
	now := uc.now()
	if !input.Timestamp.IsZero() {
		now = input.Timestamp
	}

	d, err := uc.repo.GetDriver(ctx, input.DriverID)
	if err != nil {
		if errors.Is(err, repository.ErrDriverNotFound) {
			uc.l.Infof(ctx, "assistant.usecase.RaiseEmergency: driver %q not found", input.DriverID)
			return textResponse(msgDriverNotFound, nil), nil
		}
		uc.l.Errorf(ctx, "assistant.usecase.RaiseEmergency: repo.GetDriver %q: %v", input.DriverID, err)
		return assistant.Response{}, fmt.Errorf("get driver %s: %w", input.DriverID, err)
	}

	uc.alert(ctx, d, now, input.Location, input.Type)
	return textResponse(msgEmergency, nil), nil
}
