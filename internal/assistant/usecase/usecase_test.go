package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"porter-saathi/internal/assistant"
	"porter-saathi/internal/assistant/usecase"
	"porter-saathi/internal/driver/repository"
	"porter-saathi/internal/driver/repository/memory"
	"porter-saathi/internal/emergency"
	"porter-saathi/internal/knowledge"
	"porter-saathi/internal/model"
	"porter-saathi/internal/router"
	"porter-saathi/pkg/datemath"
	"porter-saathi/pkg/log"
)

var (
	fixedNow = time.Date(2024, time.May, 8, 10, 30, 0, 0, time.UTC)
	today    = model.DateOf(fixedNow)
)

// spyNotifier records alerts and optionally fails.
type spyNotifier struct {
	mu     sync.Mutex
	alerts []emergency.Alert
	ctxs   []context.Context
	err    error
}

func (s *spyNotifier) Notify(ctx context.Context, a emergency.Alert) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.alerts = append(s.alerts, a)
	s.ctxs = append(s.ctxs, ctx)
	return s.err
}

// faultyRepo fails every call with err.
type faultyRepo struct {
	err error
}

func (r faultyRepo) GetDriver(context.Context, string) (model.Driver, error) {
	return model.Driver{}, r.err
}
func (r faultyRepo) PutDriver(context.Context, model.Driver) error { return r.err }
func (r faultyRepo) SetEarnings(context.Context, repository.SetEarningsOptions) error {
	return r.err
}

// spyRouter counts Classify calls.
type spyRouter struct {
	inner router.Router
	calls int
}

func (s *spyRouter) Classify(ctx context.Context, msg string) router.RouterOutput {
	s.calls++
	return s.inner.Classify(ctx, msg)
}

type fixture struct {
	uc       assistant.UseCase
	repo     repository.Repository
	notifier *spyNotifier
	router   *spyRouter
	clock    *int
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	l := log.NewNop()

	repo := memory.New(l)
	require.NoError(t, repository.Seed(context.Background(), repo, today))

	dates, err := datemath.NewParser("UTC")
	require.NoError(t, err)

	calls := 0
	notifier := &spyNotifier{}
	rt := &spyRouter{inner: router.New(l)}
	uc := usecase.New(l, repo, rt, knowledge.Default(), notifier, usecase.Options{
		Dates: dates,
		Clock: func() time.Time {
			calls++
			return fixedNow
		},
		EmergencyTimeout: time.Second,
	})

	return fixture{uc: uc, repo: repo, notifier: notifier, router: rt, clock: &calls}
}

func (f fixture) ask(t *testing.T, driverID, query string) assistant.Response {
	t.Helper()
	resp, err := f.uc.ProcessQuery(context.Background(), assistant.Request{DriverID: driverID, Query: query})
	require.NoError(t, err)
	assert.Equal(t, assistant.KindText, resp.Kind)
	assert.NotNil(t, resp.Suggestions)
	return resp
}

func (f fixture) setToday(t *testing.T, driverID string, day model.Date, e model.DailyEarnings) {
	t.Helper()
	require.NoError(t, f.repo.SetEarnings(context.Background(), repository.SetEarningsOptions{
		DriverID: driverID,
		Date:     day,
		Earnings: e,
	}))
}

func TestProcessQuery_Phrases(t *testing.T) {
	f := newFixture(t)
	kb := knowledge.Default()

	resp := f.ask(t, "driver123", "Namaste")
	assert.Equal(t, kb.Phrase(knowledge.PhraseGreeting), resp.Text)
	assert.Empty(t, resp.Suggestions)

	resp = f.ask(t, "driver123", "Dhanyavad")
	assert.Equal(t, kb.Phrase(knowledge.PhraseThanks), resp.Text)

	// help outranks challan
	resp = f.ask(t, "driver123", "help with challan")
	assert.Equal(t, kb.Phrase(knowledge.PhraseHelp), resp.Text)
	assert.Equal(t, map[string]string{
		"earnings":  "Aaj maine kitna kamaya?",
		"penalties": "Kya mujhe koi penalty lagi hai?",
		"challan":   "Challan kaise contest karein?",
		"emergency": "Sahayata chahiye",
	}, resp.Suggestions)
}

func TestProcessQuery_Earnings(t *testing.T) {
	f := newFixture(t)

	resp := f.ask(t, "driver123", "Aaj maine kitna kamaya?")
	assert.Equal(t, "Aaj aapne 8 trip complete kiye aur ₹2500.00 kamaye. Aapka kharcha ₹500.00 tha, isliye aapki net kamai hai ₹2000.00.", resp.Text)
	assert.Equal(t, map[string]string{
		"penalties":  "Kya mujhe koi penalty lagi hai?",
		"comparison": "Pichle hafte ke mukable aaj ka performance kaisa raha?",
	}, resp.Suggestions)

	resp = f.ask(t, "driver456", "Aaj maine kitna kamaya?")
	assert.Equal(t, "Aaj ke liye koi earning data uplabdh nahi hai.", resp.Text)
	assert.Len(t, resp.Suggestions, 2)
}

func TestProcessQuery_Penalty(t *testing.T) {
	f := newFixture(t)

	resp := f.ask(t, "driver123", "Kya mujhe koi penalty lagi hai?")
	assert.Equal(t, "Aapko aaj 1 penalty laga hai: Late delivery by 30 minutes.", resp.Text)

	f.setToday(t, "driver123", today, model.DailyEarnings{
		Penalties: map[string]string{"p2": "Wrong drop location", "p1": "Late pickup"},
	})
	resp = f.ask(t, "driver123", "Kya mujhe koi penalty lagi hai?")
	assert.Equal(t, "Aapko aaj 2 penalty laga hai: Late pickup. Wrong drop location.", resp.Text)

	resp = f.ask(t, "driver456", "penalty")
	assert.Equal(t, "Aapko aaj koi penalty nahi lagi hai. Badhai ho!", resp.Text)
}

func TestProcessQuery_Guides(t *testing.T) {
	kb := knowledge.Default()

	tests := []struct {
		name  string
		query string
		guide string
		intro string
	}{
		{"challan", "Challan kaise contest karein?", knowledge.GuideContestChallan, "Main aapko challan contest karne mein madad kar sakta hun. Yeh ek step-by-step process hai:"},
		{"digilocker", "DigiLocker par documents kaise upload karein?", knowledge.GuideDigilockerUpload, "Main aapko DigiLocker par documents upload karne mein madad kar sakta hun. Yeh process kuch steps mein puri hogi:"},
		{"insurance", "Insurance kaise milega?", knowledge.GuideApplyInsurance, "Main aapko vehicle insurance ke liye apply karne mein madad kar sakta hun. Yeh process kuch steps mein puri hogi:"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			resp := f.ask(t, "driver123", tc.query)
			assert.Equal(t, tc.intro, resp.Text)

			steps, ok := kb.Guide(tc.guide)
			require.True(t, ok)
			require.Len(t, resp.Suggestions, len(steps))
			for i, step := range steps {
				key := fmt.Sprintf("step_%d", i+1)
				assert.Equal(t, fmt.Sprintf("Step %d: %s", i+1, step), resp.Suggestions[key])
			}
		})
	}
}

func TestProcessQuery_Business(t *testing.T) {
	t.Run("growth", func(t *testing.T) {
		f := newFixture(t)
		resp := f.ask(t, "driver123", "Mera business kaisa raha?")
		assert.Equal(t, "Aaj aapka business pichle hafte ke mukable 17.65 percent behtar raha. Aaj aapne ₹2000.00 kamaye jabki pichle hafte us din ₹1700.00 kamaye the.", resp.Text)
	})

	t.Run("decline", func(t *testing.T) {
		f := newFixture(t)
		f.setToday(t, "driver123", today, model.DailyEarnings{TotalEarnings: 1000, Expenses: 150, NetEarnings: 850})
		resp := f.ask(t, "driver123", "vyapar")
		assert.Equal(t, "Aaj aapka business pichle hafte ke mukable 50.00 percent kam raha. Aaj aapne ₹850.00 kamaye jabki pichle hafte us din ₹1700.00 kamaye the.", resp.Text)
	})

	t.Run("unchanged counts as behtar", func(t *testing.T) {
		f := newFixture(t)
		f.setToday(t, "driver123", today, model.DailyEarnings{NetEarnings: 1700})
		resp := f.ask(t, "driver123", "business")
		assert.Contains(t, resp.Text, "0.00 percent behtar")
	})

	t.Run("zero week-ago net", func(t *testing.T) {
		f := newFixture(t)
		f.setToday(t, "driver123", today.AddDays(-7), model.DailyEarnings{})
		resp := f.ask(t, "driver123", "business")
		assert.Equal(t, "Pichle hafte ki net kamai shunya thi, isliye tulna sambhav nahi hai.", resp.Text)
	})

	t.Run("insufficient data", func(t *testing.T) {
		f := newFixture(t)
		resp := f.ask(t, "driver456", "business")
		assert.Equal(t, "Main business comparison ke liye paryaapt data nahi dhundh paaya.", resp.Text)
	})
}

func TestProcessQuery_Emergency(t *testing.T) {
	const reply = "Emergency alert bhej diya gaya hai. Aapki location aur details emergency contacts ko bhej di gayi hain. Kripya shant rahein aur madad ka intezar karein. Aapki safety hamari priority hai."

	t.Run("notifies the contact", func(t *testing.T) {
		f := newFixture(t)
		resp := f.ask(t, "driver123", "Emergency!")
		assert.Equal(t, reply, resp.Text)

		require.Len(t, f.notifier.alerts, 1)
		a := f.notifier.alerts[0]
		assert.Equal(t, "driver123", a.DriverID)
		assert.Equal(t, "Rajesh Kumar", a.DriverName)
		assert.Equal(t, "Sunita Devi", a.ContactName)
		assert.Equal(t, "9123456789", a.ContactPhone)
		assert.Equal(t, fixedNow, a.Timestamp)

		_, hasDeadline := f.notifier.ctxs[0].Deadline()
		assert.True(t, hasDeadline, "notifier call must be bounded")
	})

	t.Run("sink failure never fails the reply", func(t *testing.T) {
		f := newFixture(t)
		f.notifier.err = errors.New("broker unreachable")
		resp := f.ask(t, "driver123", "sahayata")
		assert.Equal(t, reply, resp.Text)
		assert.Len(t, f.notifier.alerts, 1)
	})

	t.Run("cancelled request still notifies", func(t *testing.T) {
		f := newFixture(t)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := f.uc.ProcessQuery(ctx, assistant.Request{DriverID: "driver123", Query: "emergency"})
		require.NoError(t, err)
		require.Len(t, f.notifier.ctxs, 1)
		assert.NoError(t, f.notifier.ctxs[0].Err())
	})

	t.Run("raise with location", func(t *testing.T) {
		f := newFixture(t)
		resp, err := f.uc.RaiseEmergency(context.Background(), assistant.EmergencyInput{
			DriverID: "driver456",
			Location: "19.0760,72.8777",
			Type:     "accident",
		})
		require.NoError(t, err)
		assert.Equal(t, reply, resp.Text)
		require.Len(t, f.notifier.alerts, 1)
		assert.Equal(t, "19.0760,72.8777", f.notifier.alerts[0].Location)
		assert.Equal(t, "accident", f.notifier.alerts[0].Type)
		assert.Equal(t, "Ramesh Singh", f.notifier.alerts[0].ContactName)
	})
	t.Run("raise skips the classifier", func(t *testing.T) {
		f := newFixture(t)
		resp := f.ask(t, "driver123", "emergency help needed")
		assert.NotEqual(t, reply, resp.Text, "help wins the classifier, so no alert")
		assert.Empty(t, f.notifier.alerts)

		resp, err := f.uc.RaiseEmergency(context.Background(), assistant.EmergencyInput{DriverID: "driver123"})
		require.NoError(t, err)
		assert.Equal(t, reply, resp.Text)
		assert.Len(t, f.notifier.alerts, 1)
	})
}

func TestProcessQuery_Unknown(t *testing.T) {
	for _, query := range []string{"xyz", "", "   "} {
		t.Run("query "+strconv.Quote(query), func(t *testing.T) {
			f := newFixture(t)
			resp := f.ask(t, "driver123", query)
			assert.Equal(t, "I'm not sure how to help with that. You can ask me about your earnings, penalties, or other assistance.", resp.Text)
			assert.Equal(t, map[string]string{
				"earnings":  "Aaj maine kitna kamaya?",
				"penalties": "Kya mujhe koi penalty lagi hai?",
				"emergency": "Sahayata chahiye",
			}, resp.Suggestions)
		})
	}
}

func TestProcessQuery_UnknownDriver(t *testing.T) {
	f := newFixture(t)

	for _, q := range []string{"emergency", "Aaj maine kitna kamaya?", "Namaste"} {
		resp := f.ask(t, "nobody", q)
		assert.Equal(t, "I couldn't find your driver profile. Please try again later.", resp.Text)
		assert.Empty(t, resp.Suggestions)
	}
	assert.Zero(t, f.router.calls, "classifier must not run for unknown drivers")
	assert.Empty(t, f.notifier.alerts)

	resp, err := f.uc.RaiseEmergency(context.Background(), assistant.EmergencyInput{DriverID: "nobody"})
	require.NoError(t, err)
	assert.Equal(t, "I couldn't find your driver profile. Please try again later.", resp.Text)
	assert.Empty(t, f.notifier.alerts)
}

func TestProcessQuery_StorageFault(t *testing.T) {
	sentinel := errors.New("connection reset")
	notifier := &spyNotifier{}
	uc := usecase.New(log.NewNop(), faultyRepo{err: sentinel}, router.New(log.NewNop()), knowledge.Default(), notifier, usecase.Options{})

	_, err := uc.ProcessQuery(context.Background(), assistant.Request{DriverID: "driver123", Query: "emergency"})
	require.Error(t, err)
	assert.ErrorIs(t, err, sentinel)
	assert.Empty(t, notifier.alerts)

	_, err = uc.RaiseEmergency(context.Background(), assistant.EmergencyInput{DriverID: "driver123"})
	assert.ErrorIs(t, err, sentinel)
}

func TestProcessQuery_ReadsClockOnce(t *testing.T) {
	f := newFixture(t)
	f.ask(t, "driver123", "business")
	assert.Equal(t, 1, *f.clock)
}

func TestDriverRecords(t *testing.T) {
	ctx := context.Background()

	t.Run("get is idempotent", func(t *testing.T) {
		f := newFixture(t)
		a, err := f.uc.GetDriver(ctx, "driver123")
		require.NoError(t, err)
		b, err := f.uc.GetDriver(ctx, "driver123")
		require.NoError(t, err)
		assert.Equal(t, a, b)

		_, err = f.uc.GetDriver(ctx, "nobody")
		assert.ErrorIs(t, err, assistant.ErrDriverNotFound)
	})

	t.Run("put defaults language and validates id", func(t *testing.T) {
		f := newFixture(t)
		d, err := f.uc.PutDriver(ctx, assistant.PutDriverInput{Driver: model.Driver{ID: "driver789", Name: "Suresh Yadav"}})
		require.NoError(t, err)
		assert.Equal(t, model.DefaultLanguage, d.LanguagePreference)

		got, err := f.uc.GetDriver(ctx, "driver789")
		require.NoError(t, err)
		assert.Equal(t, "Suresh Yadav", got.Name)

		_, err = f.uc.PutDriver(ctx, assistant.PutDriverInput{})
		assert.ErrorIs(t, err, assistant.ErrInvalidDriver)
	})

	t.Run("set earnings round trip", func(t *testing.T) {
		f := newFixture(t)
		out, err := f.uc.SetEarnings(ctx, assistant.SetEarningsInput{
			DriverID:       "driver456",
			Day:            "today",
			TotalEarnings:  1800,
			Expenses:       300,
			CompletedTrips: 5,
		})
		require.NoError(t, err)
		assert.Equal(t, today, out.Date)
		assert.Equal(t, 1500.0, out.Earnings.NetEarnings)

		d, err := f.uc.GetDriver(ctx, "driver456")
		require.NoError(t, err)
		assert.Equal(t, out.Earnings, d.Earnings[today])

		resp := f.ask(t, "driver456", "kitna kamaya")
		assert.Equal(t, "Aaj aapne 5 trip complete kiye aur ₹1800.00 kamaye. Aapka kharcha ₹300.00 tha, isliye aapki net kamai hai ₹1500.00.", resp.Text)
	})

	t.Run("explicit net is kept", func(t *testing.T) {
		f := newFixture(t)
		net := 1234.5
		out, err := f.uc.SetEarnings(ctx, assistant.SetEarningsInput{
			DriverID:      "driver456",
			Day:           "2024-05-01",
			TotalEarnings: 2000,
			Expenses:      100,
			NetEarnings:   &net,
		})
		require.NoError(t, err)
		assert.Equal(t, model.Date{Year: 2024, Month: time.May, Day: 1}, out.Date)
		assert.Equal(t, net, out.Earnings.NetEarnings)
	})

	t.Run("relative day", func(t *testing.T) {
		f := newFixture(t)
		out, err := f.uc.SetEarnings(ctx, assistant.SetEarningsInput{DriverID: "driver456", Day: "yesterday"})
		require.NoError(t, err)
		assert.Equal(t, today.AddDays(-1), out.Date)
	})

	t.Run("rejections", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.uc.SetEarnings(ctx, assistant.SetEarningsInput{DriverID: "nobody", Day: "today"})
		assert.ErrorIs(t, err, assistant.ErrDriverNotFound)

		_, err = f.uc.SetEarnings(ctx, assistant.SetEarningsInput{DriverID: "driver123", Day: "someday"})
		assert.ErrorIs(t, err, assistant.ErrInvalidDate)

		_, err = f.uc.SetEarnings(ctx, assistant.SetEarningsInput{DriverID: "driver123", Expenses: -1})
		assert.ErrorIs(t, err, assistant.ErrInvalidEarnings)

		// Expenses above earnings would derive a negative net.
		_, err = f.uc.SetEarnings(ctx, assistant.SetEarningsInput{DriverID: "driver123", TotalEarnings: 100, Expenses: 300})
		assert.ErrorIs(t, err, assistant.ErrInvalidEarnings)

		net := -5.0
		_, err = f.uc.SetEarnings(ctx, assistant.SetEarningsInput{DriverID: "driver123", TotalEarnings: 100, NetEarnings: &net})
		assert.ErrorIs(t, err, assistant.ErrInvalidEarnings)

		d, err := f.uc.GetDriver(ctx, "driver123")
		require.NoError(t, err)
		assert.Equal(t, 2000.0, d.Earnings[today].NetEarnings, "rejected writes must not touch the ledger")
	})
}

func TestCommands(t *testing.T) {
	f := newFixture(t)
	cmds := f.uc.Commands()
	assert.Equal(t, knowledge.Default().Commands(), cmds)
	assert.NotEmpty(t, cmds)
}
