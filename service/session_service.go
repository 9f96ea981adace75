package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/pdfchat/pdfchat-be/types"
)

// Sentinel errors for state gating. Handlers map these to conflict
// responses; everything else in the taxonomy keeps its own type.
var (
	ErrEmptyQuestion = types.NewValidationError("question must not be empty")
	ErrNotReady      = types.NewValidationError("documents have not been processed yet")
	ErrBusy          = types.NewValidationError("another question is still being answered")
	ErrProcessing    = types.NewValidationError("documents are being processed")
)

// SessionService owns the single in-memory session: the file set, the
// extracted corpus, the conversation history and the two state
// machines that gate them. Nothing here survives a restart.
type SessionService struct {
	mu sync.Mutex

	fileSet  *FileSetManager
	ingestor *IngestService
	answers  AnswerService

	state   types.IngestionState
	phase   types.SessionPhase
	corpus  []string
	history []types.ChatTurn
}

func NewSessionService(fileSet *FileSetManager, ingestor *IngestService, answers AnswerService) *SessionService {
	return &SessionService{
		fileSet:  fileSet,
		ingestor: ingestor,
		answers:  answers,
		state:    types.IngestionStateEmpty,
		phase:    types.PhaseAwaitingInput,
	}
}

// AddFiles adds candidates to the file set. Any change invalidates the
// current corpus and history: a stale corpus must never answer against
// a changed file set.
func (s *SessionService) AddFiles(candidates []types.UploadedFile) (types.SessionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == types.IngestionStateProcessing {
		return s.snapshotLocked(), ErrProcessing
	}
	if _, changed := s.fileSet.Add(candidates); changed {
		s.resetLocked()
	}
	return s.snapshotLocked(), nil
}

// RemoveFile removes a file by exact name. An absent name is a no-op.
func (s *SessionService) RemoveFile(name string) (types.SessionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == types.IngestionStateProcessing {
		return s.snapshotLocked(), ErrProcessing
	}
	if _, changed := s.fileSet.Remove(name); changed {
		s.resetLocked()
	}
	return s.snapshotLocked(), nil
}

// ReplaceFiles swaps the whole selection, as the uploader does when the
// user picks a new document set.
func (s *SessionService) ReplaceFiles(candidates []types.UploadedFile) (types.SessionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == types.IngestionStateProcessing {
		return s.snapshotLocked(), ErrProcessing
	}
	s.fileSet.Replace(candidates)
	s.resetLocked()
	return s.snapshotLocked(), nil
}

// Process runs ingestion over the current file set. On success the
// corpus is cached, the session becomes ready and the history is
// seeded with the acknowledgment turn. On failure no partial corpus is
// kept and the session is back in a pre-ingestion state.
func (s *SessionService) Process(ctx context.Context) (types.SessionView, error) {
	s.mu.Lock()
	if s.state == types.IngestionStateProcessing {
		s.mu.Unlock()
		return types.SessionView{}, ErrProcessing
	}
	files := s.fileSet.Files()
	if len(files) == 0 {
		s.mu.Unlock()
		return types.SessionView{}, types.NewValidationError("no files selected")
	}
	// a repeat run must not show stale answers
	s.state = types.IngestionStateProcessing
	s.corpus = nil
	s.history = nil
	s.mu.Unlock()

	texts, err := s.ingestor.Ingest(ctx, files)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.state = types.IngestionStateFailed
		s.corpus = nil
		return s.snapshotLocked(), err
	}

	s.corpus = texts
	s.state = types.IngestionStateReady
	s.history = []types.ChatTurn{newTurn(types.RoleAssistant, processedAckMessage(len(files)))}
	log.Printf("Processed %d document(s)", len(files))
	return s.snapshotLocked(), nil
}

// Ask submits one question against the cached corpus. It is rejected
// without touching the history when the question is blank, the session
// is not ready, or a previous ask has not settled yet. On answer
// failure the history is rolled back to its pre-submit snapshot and
// the question text is handed back for the input buffer.
func (s *SessionService) Ask(ctx context.Context, question string) (types.AskResponse, error) {
	s.mu.Lock()
	if strings.TrimSpace(question) == "" {
		s.mu.Unlock()
		return types.AskResponse{}, ErrEmptyQuestion
	}
	if s.state != types.IngestionStateReady {
		s.mu.Unlock()
		return types.AskResponse{}, ErrNotReady
	}
	if s.phase == types.PhaseSubmitting {
		s.mu.Unlock()
		return types.AskResponse{}, ErrBusy
	}

	s.phase = types.PhaseSubmitting
	snapshot := make([]types.ChatTurn, len(s.history))
	copy(snapshot, s.history)

	userTurn := newTurn(types.RoleUser, question)
	s.history = append(s.history, userTurn)
	req := types.AnswerRequest{
		Question: question,
		PDFTexts: s.corpus,
	}
	s.mu.Unlock()

	resp, err := s.answers.GenerateAnswer(ctx, req)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.phase = types.PhaseAwaitingInput
	if err != nil {
		// roll back so the user can retry with the same question
		s.history = snapshot
		log.Printf("Answer failed: %v", err)
		return types.AskResponse{}, err
	}

	answerTurn := newTurn(types.RoleAssistant, resp.Answer)
	s.history = append(s.history, answerTurn)
	return types.AskResponse{
		Question: userTurn,
		Answer:   answerTurn,
	}, nil
}

// Snapshot returns a read-only view of the session.
func (s *SessionService) Snapshot() types.SessionView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *SessionService) snapshotLocked() types.SessionView {
	files := s.fileSet.Files()
	infos := make([]types.FileInfo, 0, len(files))
	for _, file := range files {
		infos = append(infos, types.FileInfo{
			Name: file.Name,
			Size: len(file.Data),
		})
	}
	history := make([]types.ChatTurn, len(s.history))
	copy(history, s.history)
	return types.SessionView{
		Files:   infos,
		State:   s.state,
		Phase:   s.phase,
		History: history,
	}
}

func (s *SessionService) resetLocked() {
	s.state = types.IngestionStateEmpty
	s.corpus = nil
	s.history = nil
}

func processedAckMessage(fileCount int) string {
	plural := ""
	if fileCount > 1 {
		plural = "s"
	}
	return fmt.Sprintf("I've processed your document%s. What would you like to know?", plural)
}

func newTurn(role, content string) types.ChatTurn {
	return types.ChatTurn{
		ID:      uuid.NewString(),
		Role:    role,
		Content: content,
	}
}
