package usecase

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"porter-saathi/internal/assistant"
	"porter-saathi/internal/emergency"
	"porter-saathi/internal/model"
)

var (
	helpSuggestions = map[string]string{
		suggestEarnings:  suggestionEarnings,
		suggestPenalties: suggestionPenalties,
		suggestChallan:   suggestionChallan,
		suggestEmergency: suggestionEmergency,
	}
	earningsSuggestions = map[string]string{
		suggestPenalties:  suggestionPenalties,
		suggestComparison: suggestionComparison,
	}
	unknownSuggestions = map[string]string{
		suggestEarnings:  suggestionEarnings,
		suggestPenalties: suggestionPenalties,
		suggestEmergency: suggestionEmergency,
	}
)

func textResponse(text string, suggestions map[string]string) assistant.Response {
	out := make(map[string]string, len(suggestions))
	for k, v := range suggestions {
		out[k] = v
	}
	return assistant.Response{
		Text:        text,
		Kind:        assistant.KindText,
		Suggestions: out,
	}
}

func (uc *implUseCase) phraseHandler(key string, suggestions map[string]string) handlerFunc {
	return func(ctx context.Context, d model.Driver, now time.Time) assistant.Response {
		return textResponse(uc.kb.Phrase(key), suggestions)
	}
}

// guideHandler replies with intro and one step_<n> suggestion per guide step.
func (uc *implUseCase) guideHandler(guide, intro string) handlerFunc {
	return func(ctx context.Context, d model.Driver, now time.Time) assistant.Response {
		steps, ok := uc.kb.Guide(guide)
		if !ok {
			uc.l.Warnf(ctx, "assistant.usecase.guideHandler: guide %q missing from knowledge base", guide)
		}

		suggestions := make(map[string]string, len(steps))
		for i, step := range steps {
			suggestions[fmt.Sprintf("step_%d", i+1)] = fmt.Sprintf(msgStep, i+1, step)
		}
		return textResponse(intro, suggestions)
	}
}

func (uc *implUseCase) handleEarnings(ctx context.Context, d model.Driver, now time.Time) assistant.Response {
	e, ok := d.EarningsOn(uc.today(now))
	if !ok {
		return textResponse(msgEarningsNoData, earningsSuggestions)
	}
	text := fmt.Sprintf(msgEarnings, e.CompletedTrips, e.TotalEarnings, e.Expenses, e.NetEarnings)
	return textResponse(text, earningsSuggestions)
}

// handlePenalty lists today's penalty reasons ordered by penalty id.
func (uc *implUseCase) handlePenalty(ctx context.Context, d model.Driver, now time.Time) assistant.Response {
	e, ok := d.EarningsOn(uc.today(now))
	if !ok || len(e.Penalties) == 0 {
		return textResponse(msgNoPenalty, nil)
	}

	ids := make([]string, 0, len(e.Penalties))
	for id := range e.Penalties {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	reasons := make([]string, 0, len(ids))
	for _, id := range ids {
		reasons = append(reasons, e.Penalties[id]+".")
	}
	return textResponse(fmt.Sprintf(msgPenalty, len(ids), strings.Join(reasons, " ")), nil)
}

// handleBusiness compares today's net against the same weekday last week.
func (uc *implUseCase) handleBusiness(ctx context.Context, d model.Driver, now time.Time) assistant.Response {
	today := uc.today(now)
	cur, okCur := d.EarningsOn(today)
	prev, okPrev := d.EarningsOn(today.AddDays(weekOffset))
	if !okCur || !okPrev {
		return textResponse(msgBusinessInsufficient, nil)
	}
	if prev.NetEarnings == 0 {
		return textResponse(msgBusinessZeroBase, nil)
	}

	growth := (cur.NetEarnings - prev.NetEarnings) / prev.NetEarnings * 100
	trend := fmt.Sprintf(msgGrowthUp, growth)
	if growth < 0 {
		trend = fmt.Sprintf(msgGrowthDown, math.Abs(growth))
	}
	return textResponse(fmt.Sprintf(msgBusiness, trend, cur.NetEarnings, prev.NetEarnings), nil)
}

func (uc *implUseCase) handleEmergency(ctx context.Context, d model.Driver, now time.Time) assistant.Response {
	uc.alert(ctx, d, now, "", "")
	return textResponse(msgEmergency, nil)
}

func (uc *implUseCase) handleUnknown(ctx context.Context, d model.Driver, now time.Time) assistant.Response {
	return textResponse(msgUnknown, unknownSuggestions)
}

// alert notifies the emergency sink. The call is bounded by the emergency
// timeout and survives cancellation of ctx; failures are logged only.
func (uc *implUseCase) alert(ctx context.Context, d model.Driver, now time.Time, location, alertType string) {
	a := emergency.NewAlert(d.ID, d.Name, alertType, now)
	a.Location = location
	if c := d.EmergencyContact; c != nil {
		a.ContactName = c.Name
		a.ContactPhone = c.Phone
		a.Relationship = c.Relationship
	} else {
		uc.l.Warnf(ctx, "assistant.usecase.alert: driver %s has no emergency contact", d.ID)
	}

	notifyCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), uc.emergencyTimeout)
	defer cancel()

	if err := uc.notifier.Notify(notifyCtx, a); err != nil {
		uc.l.Errorf(ctx, "assistant.usecase.alert: notify %s for driver %s: %v", a.ID, d.ID, err)
		return
	}
	uc.l.Infof(ctx, "assistant.usecase.alert: emergency %s raised for driver %s", a.ID, d.ID)
}
