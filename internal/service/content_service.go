package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"timo-intelligence-be/internal/content"
	"timo-intelligence-be/internal/model"
	"timo-intelligence-be/internal/pkg/logger"
	"timo-intelligence-be/internal/store/remotestore"
	"timo-intelligence-be/pkg/events"
)

// ErrUnknownField rejects edits addressing a field that is not part of
// the content schema.
var ErrUnknownField = errors.New("unknown content field")

// ErrSolutionNotFound rejects edits addressing a solution id that is
// not in the document.
var ErrSolutionNotFound = errors.New("solution not found")

const debounceDelay = 500 * time.Millisecond

// RemoteStore is the upstream content API used as the primary mirror.
type RemoteStore interface {
	Configured() bool
	Fetch(ctx context.Context) (*model.ContentDocument, error)
	Put(ctx context.Context, doc *model.ContentDocument) error
}

// LocalStore is the encrypted fallback/backup store.
type LocalStore interface {
	Save(ctx context.Context, doc *model.ContentDocument) error
	Load(ctx context.Context) (*model.ContentDocument, error)
}

// IContentService is the persistence orchestrator. It exclusively owns
// the authoritative in-memory document; the remote and local stores are
// downstream mirrors once the session is running.
type IContentService interface {
	Load(ctx context.Context) error
	Document() *model.ContentDocument
	SaveStatus() model.SaveStatus

	UpdateHero(field, value string) error
	UpdateAbout(field, value string) error
	UpdatePartners(field, value string) error
	UpdateContact(field, value string) error
	UpdateSolution(id, field, value string) error
	AddSolution() (*model.Solution, error)
	RemoveSolution(id string) error
	ReplaceDocument(doc *model.ContentDocument) error

	ForceSave(ctx context.Context) error
	Close()
}

type contentService struct {
	remote    RemoteStore
	local     LocalStore
	publisher IPublisherService
	log       logger.ILogger

	mu     sync.RWMutex
	doc    *model.ContentDocument
	status model.SaveStatus

	// At most one persist runs at a time; an overlapping request is
	// dropped, not queued. The next debounce cycle retries with the
	// latest document anyway.
	saving atomic.Bool

	debounceMu sync.Mutex
	debounce   *time.Timer
	delay      time.Duration

	loaded bool
}

func NewContentService(
	remote RemoteStore,
	local LocalStore,
	publisher IPublisherService,
	log logger.ILogger,
) IContentService {
	return &contentService{
		remote:    remote,
		local:     local,
		publisher: publisher,
		log:       log,
		doc:       model.DefaultContent(),
		delay:     debounceDelay,
	}
}

// Load resolves the startup document: remote first, then local, then
// factory defaults. Whatever is chosen passes through migration; a
// migrated document is persisted in the background without blocking
// startup.
func (s *contentService) Load(ctx context.Context) error {
	defaults := model.DefaultContent()
	var doc *model.ContentDocument

	if s.remote != nil && s.remote.Configured() {
		remote, err := s.remote.Fetch(ctx)
		switch {
		case err == nil:
			s.log.Info("Content", "Content loaded from remote store", nil)
			doc = remote
		case errors.Is(err, remotestore.ErrNotFound):
			s.log.Info("Content", "No content on remote store yet", nil)
		default:
			s.log.Error("Content", "Failed to load content from remote store", map[string]interface{}{"error": err.Error()})
		}
	}

	if doc == nil {
		local, err := s.local.Load(ctx)
		if err != nil {
			s.log.Warn("Content", "Failed to load content from local store", map[string]interface{}{"error": err.Error()})
		} else if local != nil {
			s.log.Info("Content", "Content loaded from local store", nil)
			doc = local
		}
	}

	fromStore := doc != nil
	if doc == nil {
		s.log.Info("Content", "Using default content", nil)
		doc = defaults
	}

	migrated, changed := content.Migrate(doc, defaults)

	s.mu.Lock()
	s.doc = migrated
	s.status = model.SaveStatus{}
	if fromStore {
		now := time.Now()
		s.status.LastSaved = &now
	}
	s.loaded = true
	s.mu.Unlock()

	s.publishStatus()

	if changed {
		s.log.Info("Content", "Content migrated to current defaults", nil)
		go func() {
			if err := s.persist(context.Background(), false); err != nil {
				s.log.Warn("Content", "Failed to persist migrated content", map[string]interface{}{"error": err.Error()})
			}
		}()
	}
	return nil
}

// Document returns a deep copy of the current document. Earlier
// snapshots are never mutated by later edits.
func (s *contentService) Document() *model.ContentDocument {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.doc.Clone()
}

func (s *contentService) SaveStatus() model.SaveStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}

func (s *contentService) UpdateHero(field, value string) error {
	rule, ok := content.HeroFieldRules[field]
	if !ok {
		return fmt.Errorf("%w: hero.%s", ErrUnknownField, field)
	}
	v := content.ApplyRule(rule, value)

	return s.edit(func(doc *model.ContentDocument) error {
		switch field {
		case "tag":
			doc.Hero.Tag = v
		case "titleLine1":
			doc.Hero.TitleLine1 = v
		case "titleLine2":
			doc.Hero.TitleLine2 = v
		case "description":
			doc.Hero.Description = v
		case "buttonPrimary":
			doc.Hero.ButtonPrimary = v
		case "buttonSecondary":
			doc.Hero.ButtonSecondary = v
		}
		return nil
	})
}

func (s *contentService) UpdateAbout(field, value string) error {
	rule, ok := content.AboutFieldRules[field]
	if !ok {
		return fmt.Errorf("%w: about.%s", ErrUnknownField, field)
	}
	v := content.ApplyRule(rule, value)

	return s.edit(func(doc *model.ContentDocument) error {
		switch field {
		case "tag":
			doc.About.Tag = v
		case "titleLine1":
			doc.About.TitleLine1 = v
		case "titleLine2":
			doc.About.TitleLine2 = v
		case "paragraph1":
			doc.About.Paragraph1 = v
		case "paragraph2":
			doc.About.Paragraph2 = v
		case "paragraph3":
			doc.About.Paragraph3 = v
		case "feature1Title":
			doc.About.Feature1Title = v
		case "feature1Description":
			doc.About.Feature1Description = v
		case "feature2Title":
			doc.About.Feature2Title = v
		case "feature2Description":
			doc.About.Feature2Description = v
		case "imageUrl":
			doc.About.ImageURL = v
		case "imageCaption":
			doc.About.ImageCaption = v
		case "imageSubcaption":
			doc.About.ImageSubcaption = v
		}
		return nil
	})
}

func (s *contentService) UpdatePartners(field, value string) error {
	rule, ok := content.PartnersFieldRules[field]
	if !ok {
		return fmt.Errorf("%w: partners.%s", ErrUnknownField, field)
	}
	v := content.ApplyRule(rule, value)

	return s.edit(func(doc *model.ContentDocument) error {
		switch field {
		case "title":
			doc.Partners.Title = v
		case "subtitle":
			doc.Partners.Subtitle = v
		case "description":
			doc.Partners.Description = v
		case "feature1Title":
			doc.Partners.Feature1Title = v
		case "feature1Description":
			doc.Partners.Feature1Description = v
		case "feature2Title":
			doc.Partners.Feature2Title = v
		case "feature2Description":
			doc.Partners.Feature2Description = v
		case "feature3Title":
			doc.Partners.Feature3Title = v
		case "feature3Description":
			doc.Partners.Feature3Description = v
		}
		return nil
	})
}

func (s *contentService) UpdateContact(field, value string) error {
	rule, ok := content.ContactFieldRules[field]
	if !ok {
		return fmt.Errorf("%w: contact.%s", ErrUnknownField, field)
	}
	v := content.ApplyRule(rule, value)

	return s.edit(func(doc *model.ContentDocument) error {
		switch field {
		case "title":
			doc.Contact.Title = v
		case "introText":
			doc.Contact.IntroText = v
		case "addressStreet":
			doc.Contact.AddressStreet = v
		case "addressPostalCode":
			doc.Contact.AddressPostalCode = v
		case "addressCity":
			doc.Contact.AddressCity = v
		case "addressNote":
			doc.Contact.AddressNote = v
		case "email":
			doc.Contact.Email = v
		case "phone":
			doc.Contact.Phone = v
		case "formTitle":
			doc.Contact.FormTitle = v
		case "buttonText":
			doc.Contact.ButtonText = v
		}
		return nil
	})
}

func (s *contentService) UpdateSolution(id, field, value string) error {
	rule, ok := content.SolutionFieldRules[field]
	if !ok {
		return fmt.Errorf("%w: solutions.%s", ErrUnknownField, field)
	}

	var v string
	if field == "iconName" {
		if !model.IsValidIconName(model.IconName(value)) {
			return fmt.Errorf("unknown icon name: %s", value)
		}
		v = value
	} else {
		v = content.ApplyRule(rule, value)
	}

	return s.edit(func(doc *model.ContentDocument) error {
		idx := -1
		for i := range doc.Solutions {
			if doc.Solutions[i].Id == id {
				idx = i
				break
			}
		}
		if idx == -1 {
			return fmt.Errorf("%w: %s", ErrSolutionNotFound, id)
		}

		sol := &doc.Solutions[idx]
		switch field {
		case "title":
			sol.Title = v
		case "subtitle":
			sol.Subtitle = v
		case "description":
			sol.Description = v
		case "detailTitle":
			sol.DetailTitle = v
		case "detailText":
			sol.DetailText = v
		case "image":
			sol.Image = v
		case "iconName":
			sol.IconName = model.IconName(v)
		}
		return nil
	})
}

// AddSolution appends a new card with placeholder copy. The id embeds
// the creation timestamp and is never reassigned.
func (s *contentService) AddSolution() (*model.Solution, error) {
	title := "Nieuwe Oplossing"
	description := "Beschrijving van de oplossing"
	sol := model.Solution{
		Id:          fmt.Sprintf("solution-%d", time.Now().UnixMilli()),
		Title:       title,
		Subtitle:    "Subtitel",
		Description: description,
		DetailTitle: "Detail Titel",
		DetailText:  "Detail tekst van de oplossing",
		Image:       "https://picsum.photos/id/1/600/400",
		IconName:    content.SelectIconFromText(title, description),
	}

	err := s.edit(func(doc *model.ContentDocument) error {
		doc.Solutions = append(doc.Solutions, sol)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &sol, nil
}

// RemoveSolution deletes one card. Removal shifts positions but never
// changes any surviving solution's id.
func (s *contentService) RemoveSolution(id string) error {
	return s.edit(func(doc *model.ContentDocument) error {
		filtered := doc.Solutions[:0:0]
		found := false
		for _, sol := range doc.Solutions {
			if sol.Id == id {
				found = true
				continue
			}
			filtered = append(filtered, sol)
		}
		if !found {
			return fmt.Errorf("%w: %s", ErrSolutionNotFound, id)
		}
		doc.Solutions = filtered
		return nil
	})
}

// ReplaceDocument overwrites the whole document, e.g. after an
// administrative restore. The candidate still passes the structural gate.
func (s *contentService) ReplaceDocument(doc *model.ContentDocument) error {
	for i := range doc.Solutions {
		if !model.IsValidIconName(doc.Solutions[i].IconName) {
			return fmt.Errorf("unknown icon name: %s", doc.Solutions[i].IconName)
		}
	}
	if len(doc.Solutions) == 0 {
		return errors.New("content document needs at least one solution")
	}

	return s.edit(func(target *model.ContentDocument) error {
		*target = *doc.Clone()
		return nil
	})
}

// ForceSave persists immediately, bypassing the debounce. Failures are
// returned to the caller since they explicitly asked and are waiting.
func (s *contentService) ForceSave(ctx context.Context) error {
	return s.persist(ctx, true)
}

func (s *contentService) Close() {
	s.cancelDebounce()
}

// edit applies fn to a fresh copy of the document, swaps it in, and
// arms the debounced autosave. Readers holding the previous snapshot
// keep an unmodified value.
func (s *contentService) edit(fn func(doc *model.ContentDocument) error) error {
	s.mu.Lock()
	next := s.doc.Clone()
	if err := fn(next); err != nil {
		s.mu.Unlock()
		return err
	}
	s.doc = next
	s.mu.Unlock()

	s.armDebounce()
	return nil
}

// armDebounce (re)starts the single autosave timer. Arming always
// cancels the previous pending timer, so edits reset rather than stack.
func (s *contentService) armDebounce() {
	s.debounceMu.Lock()
	defer s.debounceMu.Unlock()
	if s.debounce != nil {
		s.debounce.Stop()
	}
	s.debounce = time.AfterFunc(s.delay, func() {
		if err := s.persist(context.Background(), false); err != nil {
			s.log.Warn("Content", "Debounced save failed", map[string]interface{}{"error": err.Error()})
		}
	})
}

func (s *contentService) cancelDebounce() {
	s.debounceMu.Lock()
	defer s.debounceMu.Unlock()
	if s.debounce != nil {
		s.debounce.Stop()
		s.debounce = nil
	}
}

// persist is the single write path shared by autosave and forced save.
// It always mirrors to the local store, even when the remote write
// succeeds, so a later remote outage still has a recent local copy.
func (s *contentService) persist(ctx context.Context, showError bool) error {
	if !s.saving.CompareAndSwap(false, true) {
		s.log.Warn("Content", "Save already in progress, dropping duplicate request", nil)
		return nil
	}
	defer s.saving.Store(false)

	s.cancelDebounce()

	s.setStatus(func(st *model.SaveStatus) {
		st.IsSaving = true
		st.Error = ""
	})

	// Latest document at the time the persist actually runs.
	doc := s.Document()

	var remoteErr error
	remoteConfigured := s.remote != nil && s.remote.Configured()
	if remoteConfigured {
		remoteErr = s.remote.Put(ctx, doc)
		if remoteErr != nil {
			s.log.Warn("Content", "Remote save failed, falling back to local store", map[string]interface{}{"error": remoteErr.Error()})
		}
	}

	localErr := s.local.Save(ctx, doc)
	if localErr != nil {
		s.log.Error("Content", "Local save failed", map[string]interface{}{"error": localErr.Error()})
	}

	now := time.Now()
	var statusErr string
	saved := localErr == nil || (remoteConfigured && remoteErr == nil)

	switch {
	case remoteConfigured && remoteErr != nil && localErr == nil:
		statusErr = fmt.Sprintf("remote save failed: %v; saved locally only", remoteErr)
	case remoteConfigured && remoteErr == nil && localErr != nil:
		statusErr = fmt.Sprintf("local backup failed: %v; saved remotely", localErr)
	case !saved:
		if remoteConfigured {
			statusErr = fmt.Sprintf("not saved anywhere: remote: %v; local: %v", remoteErr, localErr)
		} else {
			statusErr = fmt.Sprintf("not saved anywhere: %v", localErr)
		}
	}

	s.setStatus(func(st *model.SaveStatus) {
		st.IsSaving = false
		st.Error = statusErr
		if saved {
			st.LastSaved = &now
		}
	})

	if showError && statusErr != "" {
		return errors.New(statusErr)
	}
	return nil
}

func (s *contentService) setStatus(fn func(st *model.SaveStatus)) {
	s.mu.Lock()
	fn(&s.status)
	s.mu.Unlock()
	s.publishStatus()
}

func (s *contentService) publishStatus() {
	if s.publisher == nil {
		return
	}
	status := s.SaveStatus()
	data := map[string]interface{}{
		"is_saving":  status.IsSaving,
		"last_saved": status.LastSaved,
		"error":      status.Error,
	}
	if err := s.publisher.PublishSaveStatus(events.NewSaveStatusEvent(data)); err != nil {
		s.log.Warn("Content", "Failed to publish save status", map[string]interface{}{"error": err.Error()})
	}
}
