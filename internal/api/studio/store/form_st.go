package studioStore

import (
	"BlogStudio/internal/api/studio"
	"BlogStudio/internal/entity"
	"BlogStudio/pkg/remote"
	"BlogStudio/pkg/utils"
	"bytes"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"strings"
	"sync"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

// Draft mirrors the editor form: free text exactly as typed, comma-separated
// lists kept joined until submission.
type Draft struct {
	Title            string
	Description      string
	Metadata         string
	VideoLinks       string
	Spotlight        bool
	Category         string
	SubCategory      string
	CancerStage      string
	WrittenBy        string
	AdminQuotation   string
	AdminName        string
	AdminDesignation string
}

func emptyDraft() Draft {
	return Draft{CancerStage: studio.StageAny}
}

// FileSelection holds the files staged for the draft. Never persisted; cleared
// on every load and reset.
type FileSelection struct {
	Image      *studio.StagedFile
	AdminPhoto *studio.StagedFile
	BlogImages []studio.StagedFile
}

type FormSnapshot struct {
	Draft      Draft
	Faqs       []entity.FAQ
	Files      FileSelection
	SelectedID string
	Saving     bool
}

type formStore struct {
	log     *logrus.Logger
	remote  remote.IRemote
	utils   utils.IUtils
	status  *StatusBanner
	library libraryReloader

	mu         sync.Mutex
	draft      Draft
	faqs       []entity.FAQ
	files      FileSelection
	selectedID string
	saving     bool

	listenerMu sync.Mutex
	listeners  []DraftListener
}

func newFormStore(log *logrus.Logger, remoteClient remote.IRemote, utilsInstance utils.IUtils, status *StatusBanner) *formStore {
	return &formStore{
		log:    log,
		remote: remoteClient,
		utils:  utilsInstance,
		status: status,
		draft:  emptyDraft(),
		faqs:   []entity.FAQ{{}},
	}
}

func (s *formStore) Subscribe(listener DraftListener) {
	s.listenerMu.Lock()
	defer s.listenerMu.Unlock()
	s.listeners = append(s.listeners, listener)
}

// notify runs outside the store mutex so listeners may take their own locks.
func (s *formStore) notify(d Draft, replaced bool) {
	s.listenerMu.Lock()
	listeners := make([]DraftListener, len(s.listeners))
	copy(listeners, s.listeners)
	s.listenerMu.Unlock()

	event := DraftEvent{Draft: d, Replaced: replaced}
	for _, listener := range listeners {
		listener(event)
	}
}

func (s *formStore) Snapshot() FormSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	faqs := make([]entity.FAQ, len(s.faqs))
	copy(faqs, s.faqs)

	files := FileSelection{
		Image:      s.files.Image,
		AdminPhoto: s.files.AdminPhoto,
		BlogImages: make([]studio.StagedFile, len(s.files.BlogImages)),
	}
	copy(files.BlogImages, s.files.BlogImages)

	return FormSnapshot{
		Draft:      s.draft,
		Faqs:       faqs,
		Files:      files,
		SelectedID: s.selectedID,
		Saving:     s.saving,
	}
}

func (s *formStore) DraftValue() Draft {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft
}

func (s *formStore) Mode() string {
	if s.SelectedID() == "" {
		return studio.ModeCreating
	}
	return studio.ModeEditing
}

func (s *formStore) SelectedID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selectedID
}

// LoadFromEntity replaces the draft wholesale from a fetched blog. Arrays are
// joined back to the comma-separated text the form shows, staged files are
// dropped, and taxonomy selections are left to subscribers to re-derive.
func (s *formStore) LoadFromEntity(e entity.BlogSummary) {
	s.mu.Lock()

	stage := e.CancerStage
	if stage == "" {
		stage = studio.StageAny
	}

	s.draft = Draft{
		Title:       e.Title,
		Description: e.Description,
		Metadata:    s.utils.JoinCommaList(e.Metadata),
		VideoLinks:  s.utils.JoinCommaList(e.VideoLinks),
		Spotlight:   e.Spotlight,
		Category:    e.Category,
		SubCategory: e.SubCategory,
		CancerStage: stage,
		WrittenBy:   e.WrittenBy,
	}
	if e.AdminStatement != nil {
		s.draft.AdminQuotation = e.AdminStatement.Quotation
		s.draft.AdminName = e.AdminStatement.Name
		s.draft.AdminDesignation = e.AdminStatement.Designation
	}

	if len(e.Faqs) > 0 {
		s.faqs = make([]entity.FAQ, len(e.Faqs))
		copy(s.faqs, e.Faqs)
	} else {
		s.faqs = []entity.FAQ{{}}
	}

	s.files = FileSelection{}
	s.selectedID = e.ID

	d := s.draft
	s.mu.Unlock()

	s.notify(d, true)
}

func (s *formStore) Reset() {
	s.mu.Lock()
	s.draft = emptyDraft()
	s.faqs = []entity.FAQ{{}}
	s.files = FileSelection{}
	s.selectedID = ""
	d := s.draft
	s.mu.Unlock()

	s.notify(d, true)
}

func (s *formStore) UpdateField(name, value string) error {
	s.mu.Lock()

	switch name {
	case studio.FieldTitle:
		s.draft.Title = value
	case studio.FieldDescription:
		s.draft.Description = value
	case studio.FieldMetadata:
		s.draft.Metadata = value
	case studio.FieldVideoLinks:
		s.draft.VideoLinks = value
	case studio.FieldCategory:
		s.draft.Category = value
	case studio.FieldSubCategory:
		s.draft.SubCategory = value
	case studio.FieldCancerStage:
		if !isValidCancerStage(value) {
			s.mu.Unlock()
			return studio.ErrInvalidCancerStage
		}
		s.draft.CancerStage = value
	case studio.FieldWrittenBy:
		s.draft.WrittenBy = value
	case studio.FieldAdminQuotation:
		s.draft.AdminQuotation = value
	case studio.FieldAdminName:
		s.draft.AdminName = value
	case studio.FieldAdminDesignation:
		s.draft.AdminDesignation = value
	default:
		s.mu.Unlock()
		return studio.ErrUnknownField
	}

	d := s.draft
	s.mu.Unlock()

	s.notify(d, false)
	return nil
}

func isValidCancerStage(value string) bool {
	switch value {
	case studio.StageAny, studio.StageInTreatment, studio.StageNewlyTreatment, studio.StagePostTreatment:
		return true
	}
	return false
}

func (s *formStore) SetSpotlight(on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft.Spotlight = on
}

func (s *formStore) AddFaq() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.faqs = append(s.faqs, entity.FAQ{})
}

func (s *formStore) UpdateFaq(index int, field, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.faqs) {
		return studio.ErrFaqIndexOutOfRange
	}

	switch field {
	case "question":
		s.faqs[index].Question = value
	case "answer":
		s.faqs[index].Answer = value
	default:
		return studio.ErrUnknownField
	}
	return nil
}

// RemoveFaq drops a slot without a minimum-count guard; the view layer is
// responsible for always keeping at least one slot visible.
func (s *formStore) RemoveFaq(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.faqs) {
		return studio.ErrFaqIndexOutOfRange
	}

	s.faqs = append(s.faqs[:index], s.faqs[index+1:]...)
	return nil
}

func (s *formStore) FaqCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.faqs)
}

func (s *formStore) StageFile(key string, f studio.StagedFile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch key {
	case studio.FileKeyImage:
		s.files.Image = &f
	case studio.FileKeyAdminPhoto:
		s.files.AdminPhoto = &f
	case studio.FileKeyBlogImage:
		s.files.BlogImages = append(s.files.BlogImages, f)
	default:
		return studio.ErrUnknownFileKey
	}
	return nil
}

func (s *formStore) ClearFiles(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch key {
	case studio.FileKeyImage:
		s.files.Image = nil
	case studio.FileKeyAdminPhoto:
		s.files.AdminPhoto = nil
	case studio.FileKeyBlogImage:
		s.files.BlogImages = nil
	default:
		return studio.ErrUnknownFileKey
	}
	return nil
}

// setTaxonomyNames mirrors a taxonomy selection into the draft without firing
// draft listeners; the selection the listeners would re-derive is the caller.
func (s *formStore) setTaxonomyNames(category string, clearSubCategory bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft.Category = category
	if clearSubCategory {
		s.draft.SubCategory = ""
	}
}

func (s *formStore) setSubCategoryName(subCategory string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft.SubCategory = subCategory
}

// ValidateForSubmit runs the pre-submission checks in order and returns the
// first failure only. Field checks always precede file-count checks.
func (s *formStore) ValidateForSubmit() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.validateLocked()
}

func (s *formStore) validateLocked() error {
	if s.draft.Title == "" || s.utils.IsEmptyHTML(s.draft.Description) ||
		s.draft.Category == "" || s.draft.WrittenBy == "" {
		return studio.ErrRequiredFieldsMissing
	}

	if s.selectedID == "" {
		if s.files.Image == nil {
			return studio.ErrMainImageRequired
		}
		if len(s.files.BlogImages) != 2 {
			return studio.ErrTwoBlogImagesRequired
		}
		return nil
	}

	// Editing: gallery is either untouched or replaced in full.
	if len(s.files.BlogImages) > 0 && len(s.files.BlogImages) != 2 {
		return studio.ErrBothBlogImagesNeeded
	}
	return nil
}

func (s *formStore) BuildPayload() (*studio.Payload, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buildPayloadLocked()
}

func (s *formStore) buildPayloadLocked() (*studio.Payload, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	spotlight := "false"
	if s.draft.Spotlight {
		spotlight = "true"
	}

	fields := []struct {
		name  string
		value string
	}{
		{"title", s.draft.Title},
		{"description", s.draft.Description},
		{"metadata", s.draft.Metadata},
		{"videoLinks", s.draft.VideoLinks},
		{"spotlight", spotlight},
		{"category", s.draft.Category},
		{"subCategory", s.draft.SubCategory},
		{"cancerStage", s.draft.CancerStage},
		{"writtenBy", s.draft.WrittenBy},
	}
	for _, field := range fields {
		if err := writer.WriteField(field.name, field.value); err != nil {
			return nil, fmt.Errorf("failed to write %s field: %w", field.name, err)
		}
	}

	cleaned := make([]entity.FAQ, 0, len(s.faqs))
	for _, faq := range s.faqs {
		trimmed := entity.FAQ{
			Question: strings.TrimSpace(faq.Question),
			Answer:   strings.TrimSpace(faq.Answer),
		}
		if trimmed.Question != "" || trimmed.Answer != "" {
			cleaned = append(cleaned, trimmed)
		}
	}
	encodedFaqs, err := jsoniter.MarshalToString(cleaned)
	if err != nil {
		return nil, fmt.Errorf("failed to encode faqs: %w", err)
	}
	if err := writer.WriteField("faqs", encodedFaqs); err != nil {
		return nil, fmt.Errorf("failed to write faqs field: %w", err)
	}

	statement := entity.AdminStatement{
		Quotation:   s.draft.AdminQuotation,
		Name:        s.draft.AdminName,
		Designation: s.draft.AdminDesignation,
	}
	encodedStatement, err := jsoniter.MarshalToString(statement)
	if err != nil {
		return nil, fmt.Errorf("failed to encode admin statement: %w", err)
	}
	if err := writer.WriteField("adminStatement", encodedStatement); err != nil {
		return nil, fmt.Errorf("failed to write adminStatement field: %w", err)
	}

	if s.files.Image != nil {
		if err := writeFilePart(writer, studio.FileKeyImage, *s.files.Image); err != nil {
			return nil, err
		}
	}
	if s.files.AdminPhoto != nil {
		if err := writeFilePart(writer, studio.FileKeyAdminPhoto, *s.files.AdminPhoto); err != nil {
			return nil, err
		}
	}
	for _, file := range s.files.BlogImages {
		if err := writeFilePart(writer, studio.FileKeyBlogImage, file); err != nil {
			return nil, err
		}
	}

	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize payload: %w", err)
	}

	return &studio.Payload{
		ContentType: writer.FormDataContentType(),
		Body:        buf.Bytes(),
	}, nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func writeFilePart(writer *multipart.Writer, field string, file studio.StagedFile) error {
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
		quoteEscaper.Replace(field), quoteEscaper.Replace(file.FileName)))
	if file.ContentType != "" {
		header.Set("Content-Type", file.ContentType)
	}

	part, err := writer.CreatePart(header)
	if err != nil {
		return fmt.Errorf("failed to create %s part: %w", field, err)
	}
	if _, err := part.Write(file.Data); err != nil {
		return fmt.Errorf("failed to write %s part: %w", field, err)
	}
	return nil
}

// Submit validates the draft, posts it to the blog API and, on success,
// resets to creating mode and reloads the library with the current query.
func (s *formStore) Submit(ctx context.Context) error {
	s.status.Clear()

	s.mu.Lock()
	if s.saving {
		s.mu.Unlock()
		s.status.SetError(studio.ErrSaveInFlight.Error())
		return studio.ErrSaveInFlight
	}

	if err := s.validateLocked(); err != nil {
		s.mu.Unlock()
		s.status.SetError(err.Error())
		return err
	}

	payload, err := s.buildPayloadLocked()
	if err != nil {
		s.mu.Unlock()
		s.log.WithFields(logrus.Fields{
			"error": err.Error(),
		}).Error("Failed to build draft payload")
		s.status.SetError("Unable to prepare the blog for saving.")
		return err
	}

	selectedID := s.selectedID
	s.saving = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.saving = false
		s.mu.Unlock()
	}()

	var saved entity.BlogSummary
	if selectedID == "" {
		err = s.remote.PostMultipart(ctx, "/blogs", payload.ContentType, bytes.NewReader(payload.Body), &saved)
	} else {
		err = s.remote.PutMultipart(ctx, "/blogs/"+selectedID, payload.ContentType, bytes.NewReader(payload.Body), &saved)
	}
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"selected_id": selectedID,
			"error":       err.Error(),
		}).Error("Failed to save blog")
		s.status.SetError(err.Error())
		return err
	}

	if selectedID == "" {
		s.status.SetSuccess("Blog created.")
	} else {
		s.status.SetSuccess("Blog updated.")
	}

	s.Reset()

	if err := s.library.Reload(ctx); err != nil {
		s.log.WithFields(logrus.Fields{
			"error": err.Error(),
		}).Warn("Library reload after save failed")
	}

	return nil
}
