package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"timo-intelligence-be/internal/model"
	"timo-intelligence-be/internal/pkg/logger"
	"timo-intelligence-be/internal/store/remotestore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRemote struct {
	mu         sync.Mutex
	configured bool
	fetchDoc   *model.ContentDocument
	fetchErr   error
	putErr     error
	putDelay   time.Duration
	putCalls   int
	lastPut    *model.ContentDocument
}

func (f *fakeRemote) Configured() bool { return f.configured }

func (f *fakeRemote) Fetch(ctx context.Context) (*model.ContentDocument, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	if f.fetchDoc == nil {
		return nil, remotestore.ErrNotFound
	}
	return f.fetchDoc.Clone(), nil
}

func (f *fakeRemote) Put(ctx context.Context, doc *model.ContentDocument) error {
	f.mu.Lock()
	delay := f.putDelay
	f.putCalls++
	f.lastPut = doc.Clone()
	err := f.putErr
	f.mu.Unlock()
	if delay > 0 {
		time.Sleep(delay)
	}
	return err
}

func (f *fakeRemote) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.putCalls
}

type fakeLocal struct {
	mu        sync.Mutex
	doc       *model.ContentDocument
	saveErr   error
	saveCalls int
}

func (f *fakeLocal) Save(ctx context.Context, doc *model.ContentDocument) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.saveCalls++
	if f.saveErr != nil {
		return f.saveErr
	}
	f.doc = doc.Clone()
	return nil
}

func (f *fakeLocal) Load(ctx context.Context) (*model.ContentDocument, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.doc == nil {
		return nil, nil
	}
	return f.doc.Clone(), nil
}

func (f *fakeLocal) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.saveCalls
}

func newTestService(remote *fakeRemote, local *fakeLocal) *contentService {
	svc := NewContentService(remote, local, nil, logger.Noop{}).(*contentService)
	svc.delay = 20 * time.Millisecond
	return svc
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not reached in time")
}

func TestLoadPrefersRemote(t *testing.T) {
	remoteDoc := model.DefaultContent()
	remoteDoc.Hero.Tag = "van de server"
	remote := &fakeRemote{configured: true, fetchDoc: remoteDoc}
	localDoc := model.DefaultContent()
	localDoc.Hero.Tag = "lokaal"
	local := &fakeLocal{doc: localDoc}

	svc := newTestService(remote, local)
	defer svc.Close()
	require.NoError(t, svc.Load(context.Background()))

	assert.Equal(t, "van de server", svc.Document().Hero.Tag)
	assert.NotNil(t, svc.SaveStatus().LastSaved)
}

func TestLoadFallsBackToLocal(t *testing.T) {
	remote := &fakeRemote{configured: true, fetchErr: remotestore.ErrNotFound}
	localDoc := model.DefaultContent()
	localDoc.Hero.Tag = "lokaal"
	local := &fakeLocal{doc: localDoc}

	svc := newTestService(remote, local)
	defer svc.Close()
	require.NoError(t, svc.Load(context.Background()))

	assert.Equal(t, "lokaal", svc.Document().Hero.Tag)
}

func TestLoadFallsBackToDefaults(t *testing.T) {
	remote := &fakeRemote{configured: true, fetchErr: errors.New("connection refused")}
	local := &fakeLocal{}

	svc := newTestService(remote, local)
	defer svc.Close()
	require.NoError(t, svc.Load(context.Background()))

	assert.Equal(t, model.DefaultContent(), svc.Document())
	assert.Nil(t, svc.SaveStatus().LastSaved, "defaults have never been saved")
}

func TestLoadPersistsMigratedDocument(t *testing.T) {
	stale := model.DefaultContent()
	stale.Partners.Description = "verouderde partnertekst"
	remote := &fakeRemote{configured: true, fetchDoc: stale}
	local := &fakeLocal{}

	svc := newTestService(remote, local)
	defer svc.Close()
	require.NoError(t, svc.Load(context.Background()))

	assert.Equal(t, model.DefaultContent().Partners, svc.Document().Partners)
	waitFor(t, func() bool { return local.calls() >= 1 })
}

func TestDocumentSnapshotIsolation(t *testing.T) {
	svc := newTestService(&fakeRemote{}, &fakeLocal{})
	defer svc.Close()
	require.NoError(t, svc.Load(context.Background()))

	before := svc.Document()
	require.NoError(t, svc.UpdateHero("tag", "nieuw"))

	assert.NotEqual(t, "nieuw", before.Hero.Tag)
	assert.Equal(t, "nieuw", svc.Document().Hero.Tag)
}

func TestUpdateUnknownFieldRejected(t *testing.T) {
	svc := newTestService(&fakeRemote{}, &fakeLocal{})
	defer svc.Close()
	require.NoError(t, svc.Load(context.Background()))

	assert.ErrorIs(t, svc.UpdateHero("nope", "x"), ErrUnknownField)
	assert.ErrorIs(t, svc.UpdateAbout("nope", "x"), ErrUnknownField)
	assert.ErrorIs(t, svc.UpdateSolution("fleet", "nope", "x"), ErrUnknownField)
}

func TestUpdateSanitizesValue(t *testing.T) {
	svc := newTestService(&fakeRemote{}, &fakeLocal{})
	defer svc.Close()
	require.NoError(t, svc.Load(context.Background()))

	require.NoError(t, svc.UpdateHero("tag", "hoi<script>alert(1)</script>"))
	assert.Equal(t, "hoi", svc.Document().Hero.Tag)
}

func TestUpdateSolutionIconValidation(t *testing.T) {
	svc := newTestService(&fakeRemote{}, &fakeLocal{})
	defer svc.Close()
	require.NoError(t, svc.Load(context.Background()))

	assert.Error(t, svc.UpdateSolution("fleet", "iconName", "NotAnIcon"))
	require.NoError(t, svc.UpdateSolution("fleet", "iconName", string(model.IconCpu)))
	assert.ErrorIs(t, svc.UpdateSolution("missing", "title", "x"), ErrSolutionNotFound)
}

func TestDebouncedAutosaveCoalesces(t *testing.T) {
	local := &fakeLocal{}
	svc := newTestService(&fakeRemote{}, local)
	defer svc.Close()
	require.NoError(t, svc.Load(context.Background()))

	for i := 0; i < 5; i++ {
		require.NoError(t, svc.UpdateHero("tag", "v"))
		time.Sleep(2 * time.Millisecond)
	}

	waitFor(t, func() bool { return local.calls() >= 1 })
	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, 1, local.calls(), "rapid edits should collapse into one save")
}

func TestDebouncedSaveUsesLatestDocument(t *testing.T) {
	local := &fakeLocal{}
	svc := newTestService(&fakeRemote{}, local)
	defer svc.Close()
	require.NoError(t, svc.Load(context.Background()))

	require.NoError(t, svc.UpdateHero("tag", "eerste"))
	require.NoError(t, svc.UpdateHero("tag", "tweede"))

	waitFor(t, func() bool { return local.calls() >= 1 })
	local.mu.Lock()
	saved := local.doc.Hero.Tag
	local.mu.Unlock()
	assert.Equal(t, "tweede", saved)
}

func TestOverlappingPersistDropped(t *testing.T) {
	remote := &fakeRemote{configured: true, putDelay: 100 * time.Millisecond}
	local := &fakeLocal{}
	svc := newTestService(remote, local)
	defer svc.Close()
	require.NoError(t, svc.Load(context.Background()))

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = svc.ForceSave(context.Background())
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, remote.calls(), "overlapping saves should be dropped, not queued")
}

func TestForceSaveRemoteFailureSavedLocally(t *testing.T) {
	remote := &fakeRemote{configured: true, putErr: errors.New("boom")}
	local := &fakeLocal{}
	svc := newTestService(remote, local)
	defer svc.Close()
	require.NoError(t, svc.Load(context.Background()))

	err := svc.ForceSave(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "saved locally only")

	status := svc.SaveStatus()
	assert.NotNil(t, status.LastSaved, "local save still counts as saved")
	assert.False(t, status.IsSaving)
}

func TestForceSaveNothingSaved(t *testing.T) {
	remote := &fakeRemote{configured: true, putErr: errors.New("remote down")}
	local := &fakeLocal{saveErr: errors.New("disk full")}
	svc := newTestService(remote, local)
	defer svc.Close()
	require.NoError(t, svc.Load(context.Background()))

	err := svc.ForceSave(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not saved anywhere")
	assert.Nil(t, svc.SaveStatus().LastSaved)
}

func TestForceSaveLocalOnlyDeployment(t *testing.T) {
	local := &fakeLocal{}
	svc := newTestService(&fakeRemote{configured: false}, local)
	defer svc.Close()
	require.NoError(t, svc.Load(context.Background()))

	require.NoError(t, svc.ForceSave(context.Background()))
	assert.Equal(t, 1, local.calls())
	assert.Empty(t, svc.SaveStatus().Error)
}

func TestAddAndRemoveSolution(t *testing.T) {
	svc := newTestService(&fakeRemote{}, &fakeLocal{})
	defer svc.Close()
	require.NoError(t, svc.Load(context.Background()))

	before := len(svc.Document().Solutions)

	sol, err := svc.AddSolution()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(sol.Id, "solution-"))
	assert.True(t, model.IsValidIconName(sol.IconName))
	assert.Len(t, svc.Document().Solutions, before+1)

	// Removing an earlier card never renumbers the others.
	require.NoError(t, svc.RemoveSolution("fleet"))
	doc := svc.Document()
	assert.Len(t, doc.Solutions, before)
	ids := make([]string, 0, len(doc.Solutions))
	for _, s := range doc.Solutions {
		ids = append(ids, s.Id)
	}
	assert.Contains(t, ids, sol.Id)
	assert.NotContains(t, ids, "fleet")

	assert.ErrorIs(t, svc.RemoveSolution("fleet"), ErrSolutionNotFound)
}

func TestReplaceDocumentValidates(t *testing.T) {
	svc := newTestService(&fakeRemote{}, &fakeLocal{})
	defer svc.Close()
	require.NoError(t, svc.Load(context.Background()))

	empty := model.DefaultContent()
	empty.Solutions = nil
	assert.Error(t, svc.ReplaceDocument(empty))

	restored := model.DefaultContent()
	restored.Hero.Tag = "hersteld"
	require.NoError(t, svc.ReplaceDocument(restored))
	assert.Equal(t, "hersteld", svc.Document().Hero.Tag)
}
