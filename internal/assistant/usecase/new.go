package usecase

import (
	"context"
	"time"

	"porter-saathi/internal/assistant"
	"porter-saathi/internal/driver/repository"
	"porter-saathi/internal/emergency"
	"porter-saathi/internal/knowledge"
	"porter-saathi/internal/model"
	"porter-saathi/internal/router"
	"porter-saathi/pkg/datemath"
	"porter-saathi/pkg/log"
)

// handlerFunc answers one intent for a resolved driver at a fixed instant.
type handlerFunc func(ctx context.Context, d model.Driver, now time.Time) assistant.Response

// Options tunes the use case. Zero values pick sensible defaults.
type Options struct {
	// Dates resolves relative day expressions and fixes the zone "today" is
	// computed in. Defaults to the local zone.
	Dates *datemath.Parser
	// Clock is read once per call. Defaults to time.Now.
	Clock func() time.Time
	// EmergencyTimeout bounds the notifier call.
	EmergencyTimeout time.Duration
	// DefaultLanguage fills Request.Language when empty.
	DefaultLanguage string
}

type implUseCase struct {
	repo     repository.Repository
	router   router.Router
	kb       *knowledge.Base
	notifier emergency.Notifier
	l        log.Logger

	dates            *datemath.Parser
	now              func() time.Time
	emergencyTimeout time.Duration
	defaultLanguage  string

	handlers map[router.Intent]handlerFunc
}

var _ assistant.UseCase = (*implUseCase)(nil)

// New creates the assistant UseCase.
func New(l log.Logger, repo repository.Repository, rt router.Router, kb *knowledge.Base, notifier emergency.Notifier, opts Options) *implUseCase {
	if opts.Dates == nil {
		opts.Dates, _ = datemath.NewParser("")
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.EmergencyTimeout <= 0 {
		opts.EmergencyTimeout = DefaultEmergencyTimeout
	}
	if opts.DefaultLanguage == "" {
		opts.DefaultLanguage = model.DefaultLanguage
	}
	if notifier == nil {
		notifier = emergency.NewLogNotifier(l)
	}

	uc := &implUseCase{
		repo:             repo,
		router:           rt,
		kb:               kb,
		notifier:         notifier,
		l:                l,
		dates:            opts.Dates,
		now:              opts.Clock,
		emergencyTimeout: opts.EmergencyTimeout,
		defaultLanguage:  opts.DefaultLanguage,
	}

	uc.handlers = map[router.Intent]handlerFunc{
		router.IntentGreeting:   uc.phraseHandler(knowledge.PhraseGreeting, nil),
		router.IntentThanks:     uc.phraseHandler(knowledge.PhraseThanks, nil),
		router.IntentHelp:       uc.phraseHandler(knowledge.PhraseHelp, helpSuggestions),
		router.IntentEarnings:   uc.handleEarnings,
		router.IntentPenalty:    uc.handlePenalty,
		router.IntentChallan:    uc.guideHandler(knowledge.GuideContestChallan, msgChallanIntro),
		router.IntentDigilocker: uc.guideHandler(knowledge.GuideDigilockerUpload, msgDigilockerIntro),
		router.IntentBusiness:   uc.handleBusiness,
		router.IntentEmergency:  uc.handleEmergency,
		router.IntentInsurance:  uc.guideHandler(knowledge.GuideApplyInsurance, msgInsuranceIntro),
		router.IntentUnknown:    uc.handleUnknown,
	}

	return uc
}

// today returns the calendar day of now in the configured zone.
func (uc *implUseCase) today(now time.Time) model.Date {
	return model.DateOf(now.In(uc.dates.Location()))
}
