package itinerary

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/mxarte/artweek-backend/internal/event"
)

// ---------- fakes ----------

type fakeRepo struct {
	bySlug      map[string]*Itinerary
	failCreates int
	attempts    int
	createErr   error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{bySlug: make(map[string]*Itinerary)}
}

func (f *fakeRepo) Create(ctx context.Context, it *Itinerary) error {
	f.attempts++
	if f.createErr != nil {
		return f.createErr
	}
	if f.failCreates > 0 {
		f.failCreates--
		return gorm.ErrDuplicatedKey
	}
	stored := *it
	f.bySlug[it.Slug] = &stored
	return nil
}

func (f *fakeRepo) GetBySlug(ctx context.Context, slug string) (*Itinerary, error) {
	it, ok := f.bySlug[slug]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	out := *it
	return &out, nil
}

func (f *fakeRepo) IncrementViews(ctx context.Context, slug string) error {
	if it, ok := f.bySlug[slug]; ok {
		it.Views++
	}
	return nil
}

func (f *fakeRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(f.bySlug)), nil
}

type fakeResolver struct {
	approved map[string]event.Summary
	err      error
}

func (f *fakeResolver) ResolveIdentifiers(ctx context.Context, ids []string) ([]event.Summary, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := []event.Summary{}
	for _, id := range ids {
		if s, ok := f.approved[id]; ok {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

type fakeSubs struct {
	calls   int
	created bool
	err     error
}

func (f *fakeSubs) Subscribe(ctx context.Context, email, source string) (bool, error) {
	f.calls++
	return f.created, f.err
}

type fakeNotifier struct {
	notices []SavedNotice
}

func (f *fakeNotifier) ItinerarySaved(ctx context.Context, notice SavedNotice) {
	f.notices = append(f.notices, notice)
}

func newTestService(repo *fakeRepo, resolver *fakeResolver, subs *fakeSubs, notifier Notifier) *Service {
	if resolver == nil {
		resolver = &fakeResolver{approved: map[string]event.Summary{}}
	}
	if subs == nil {
		subs = &fakeSubs{}
	}
	return NewService(repo, resolver, subs, notifier)
}

// ---------- save ----------

func TestSaveComposesNameAndKeepsEventIDs(t *testing.T) {
	repo := newFakeRepo()
	subs := &fakeSubs{created: true}
	svc := newTestService(repo, nil, subs, nil)

	it, err := svc.Save(context.Background(), &SaveRequest{
		EventIDs: []string{"evt-1", "evt-2"},
		Email:    "a@b.com",
		Name:     "Mike",
		Emoji:    "🎨",
	})
	require.NoError(t, err)

	assert.Equal(t, "🎨 Mike's Itinerary", it.Name)
	assert.Len(t, it.Slug, slugLength)
	assert.Equal(t, []string{"evt-1", "evt-2"}, it.EventIDList())
	assert.Equal(t, "a@b.com", it.Email)
	assert.Equal(t, 1, subs.calls)
}

func TestSaveDeduplicatesEventIDs(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo, nil, nil, nil)

	it, err := svc.Save(context.Background(), &SaveRequest{
		EventIDs: []string{"evt-1", "evt-2", "evt-1", " "},
		Email:    "a@b.com",
		Name:     "Mike",
		Emoji:    "🎨",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"evt-1", "evt-2"}, it.EventIDList())
}

func TestSaveValidationOrder(t *testing.T) {
	svc := newTestService(newFakeRepo(), nil, nil, nil)
	ctx := context.Background()

	// First failing check wins: empty list beats the bad email.
	_, err := svc.Save(ctx, &SaveRequest{EventIDs: nil, Email: "nope", Name: "", Emoji: ""})
	assert.ErrorIs(t, err, ErrNoEvents)

	_, err = svc.Save(ctx, &SaveRequest{EventIDs: []string{"evt-1"}, Email: "nope", Name: "", Emoji: ""})
	assert.ErrorIs(t, err, ErrInvalidEmail)

	_, err = svc.Save(ctx, &SaveRequest{EventIDs: []string{"evt-1"}, Email: "a@b.com", Name: "   ", Emoji: ""})
	assert.ErrorIs(t, err, ErrNameRequired)

	_, err = svc.Save(ctx, &SaveRequest{EventIDs: []string{"evt-1"}, Email: "a@b.com", Name: "Mike", Emoji: " "})
	assert.ErrorIs(t, err, ErrEmojiRequired)
}

func TestSaveRejectionHasNoSideEffects(t *testing.T) {
	repo := newFakeRepo()
	subs := &fakeSubs{}
	notifier := &fakeNotifier{}
	svc := newTestService(repo, nil, subs, notifier)

	_, err := svc.Save(context.Background(), &SaveRequest{
		EventIDs: []string{},
		Email:    "a@b.com",
		Name:     "Mike",
		Emoji:    "🎨",
	})
	assert.ErrorIs(t, err, ErrNoEvents)
	assert.Equal(t, 0, repo.attempts)
	assert.Equal(t, 0, subs.calls)
	assert.Empty(t, notifier.notices)
}

func TestSaveRetriesOnSlugConflict(t *testing.T) {
	repo := newFakeRepo()
	repo.failCreates = 2
	svc := newTestService(repo, nil, nil, nil)

	it, err := svc.Save(context.Background(), &SaveRequest{
		EventIDs: []string{"evt-1"},
		Email:    "a@b.com",
		Name:     "Mike",
		Emoji:    "🎨",
	})
	require.NoError(t, err)
	assert.Equal(t, 3, repo.attempts)
	assert.NotEmpty(t, it.Slug)
}

func TestSaveGivesUpAfterRepeatedConflicts(t *testing.T) {
	repo := newFakeRepo()
	repo.failCreates = slugAttempts + 1
	svc := newTestService(repo, nil, nil, nil)

	_, err := svc.Save(context.Background(), &SaveRequest{
		EventIDs: []string{"evt-1"},
		Email:    "a@b.com",
		Name:     "Mike",
		Emoji:    "🎨",
	})
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
	assert.Equal(t, slugAttempts, repo.attempts)
}

func TestSaveSurfacesPersistenceFailure(t *testing.T) {
	repo := newFakeRepo()
	repo.createErr = errors.New("db down")
	subs := &fakeSubs{}
	svc := newTestService(repo, nil, subs, nil)

	_, err := svc.Save(context.Background(), &SaveRequest{
		EventIDs: []string{"evt-1"},
		Email:    "a@b.com",
		Name:     "Mike",
		Emoji:    "🎨",
	})
	require.Error(t, err)
	assert.Equal(t, 0, subs.calls)
}

func TestSaveSucceedsWhenSubscriberUpsertFails(t *testing.T) {
	repo := newFakeRepo()
	subs := &fakeSubs{err: errors.New("unique index flake")}
	notifier := &fakeNotifier{}
	svc := newTestService(repo, nil, subs, notifier)

	it, err := svc.Save(context.Background(), &SaveRequest{
		EventIDs: []string{"evt-1"},
		Email:    "a@b.com",
		Name:     "Mike",
		Emoji:    "🎨",
	})
	require.NoError(t, err)
	require.Len(t, notifier.notices, 1)
	assert.False(t, notifier.notices[0].NewSubscriber)
	assert.Equal(t, it.Slug, notifier.notices[0].Slug)
}

func TestSaveNotifiesAfterCommit(t *testing.T) {
	repo := newFakeRepo()
	subs := &fakeSubs{created: true}
	notifier := &fakeNotifier{}
	svc := newTestService(repo, nil, subs, notifier)

	it, err := svc.Save(context.Background(), &SaveRequest{
		EventIDs: []string{"evt-2", "evt-1"},
		Email:    "A@B.com ",
		Name:     "  Mike ",
		Emoji:    "🎨",
	})
	require.NoError(t, err)

	require.Len(t, notifier.notices, 1)
	n := notifier.notices[0]
	assert.Equal(t, it.Slug, n.Slug)
	assert.Equal(t, "a@b.com", n.Email)
	assert.Equal(t, "🎨 Mike's Itinerary", n.Name)
	assert.Equal(t, []string{"evt-2", "evt-1"}, n.EventIDs)
	assert.True(t, n.NewSubscriber)
}

func TestSaveWorksWithoutNotifier(t *testing.T) {
	svc := newTestService(newFakeRepo(), nil, nil, nil)

	_, err := svc.Save(context.Background(), &SaveRequest{
		EventIDs: []string{"evt-1"},
		Email:    "a@b.com",
		Name:     "Mike",
		Emoji:    "🎨",
	})
	assert.NoError(t, err)
}

// ---------- resolve ----------

func approvedEvents(t *testing.T) *fakeResolver {
	t.Helper()
	day1 := time.Date(2026, 2, 10, 19, 0, 0, 0, time.UTC)
	day2 := time.Date(2026, 2, 11, 12, 0, 0, 0, time.UTC)
	return &fakeResolver{approved: map[string]event.Summary{
		"evt-1": {ID: "evt-1", Slug: "opening-night-ab12cd", Name: "Opening Night", Venue: "Museo Tamayo", Date: day1},
		"evt-2": {ID: "evt-2", Slug: "studio-walk-ef34gh", Name: "Studio Walk", Venue: "Casa Luis Barragán", Date: day2},
	}}
}

func TestGetBySlugRoundTrip(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo, approvedEvents(t), nil, nil)

	saved, err := svc.Save(context.Background(), &SaveRequest{
		EventIDs: []string{"evt-1", "evt-2"},
		Email:    "a@b.com",
		Name:     "Mike",
		Emoji:    "🎨",
	})
	require.NoError(t, err)

	it, events, err := svc.GetBySlug(context.Background(), saved.Slug)
	require.NoError(t, err)
	assert.Equal(t, "🎨 Mike's Itinerary", it.Name)
	require.Len(t, events, 2)
	assert.Equal(t, "Opening Night", events[0].Name)
	assert.Equal(t, "Studio Walk", events[1].Name)
}

func TestGetBySlugOmitsUnapprovedEvents(t *testing.T) {
	repo := newFakeRepo()
	resolver := &fakeResolver{approved: map[string]event.Summary{
		"evt-1": {ID: "evt-1", Name: "Opening Night"},
	}}
	svc := newTestService(repo, resolver, nil, nil)

	saved, err := svc.Save(context.Background(), &SaveRequest{
		EventIDs: []string{"evt-1", "evt-2"},
		Email:    "a@b.com",
		Name:     "Mike",
		Emoji:    "🎨",
	})
	require.NoError(t, err)

	_, events, err := svc.GetBySlug(context.Background(), saved.Slug)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "evt-1", events[0].ID)
}

func TestGetBySlugCountsEveryResolution(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo, nil, nil, nil)

	saved, err := svc.Save(context.Background(), &SaveRequest{
		EventIDs: []string{"evt-1"},
		Email:    "a@b.com",
		Name:     "Mike",
		Emoji:    "🎨",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), saved.Views)

	it, _, err := svc.GetBySlug(context.Background(), saved.Slug)
	require.NoError(t, err)
	assert.Equal(t, int64(1), it.Views)

	it, _, err = svc.GetBySlug(context.Background(), saved.Slug)
	require.NoError(t, err)
	assert.Equal(t, int64(2), it.Views)
}

func TestGetBySlugNotFound(t *testing.T) {
	svc := newTestService(newFakeRepo(), nil, nil, nil)

	_, _, err := svc.GetBySlug(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPeekDoesNotCountAView(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo, nil, nil, nil)

	saved, err := svc.Save(context.Background(), &SaveRequest{
		EventIDs: []string{"evt-1"},
		Email:    "a@b.com",
		Name:     "Mike",
		Emoji:    "🎨",
	})
	require.NoError(t, err)

	it, err := svc.Peek(context.Background(), saved.Slug)
	require.NoError(t, err)
	assert.Equal(t, int64(0), it.Views)

	_, err = svc.Peek(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}
