package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdwcare/mdwcare-cli/internal/adapters/driven/extract"
	"github.com/mdwcare/mdwcare-cli/internal/core/domain"
	"github.com/mdwcare/mdwcare-cli/internal/core/services"
)

// memSessionStore keeps the session in memory for tests.
type memSessionStore struct {
	sess *domain.Session
}

func (m *memSessionStore) Load() (*domain.Session, error) {
	if m.sess == nil {
		m.sess = &domain.Session{ID: "test-session"}
	}
	return m.sess, nil
}

func (m *memSessionStore) Save(sess *domain.Session) error {
	m.sess = sess
	return nil
}

func (m *memSessionStore) Clear() error {
	m.sess = nil
	return nil
}

// mockAnswerService answers by question content without external calls.
type mockAnswerService struct {
	record *domain.AnswerRecord
	err    error
}

func (m *mockAnswerService) Ask(_ context.Context, sess *domain.Session, question string) (*domain.AnswerRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	record := m.record
	if record == nil {
		record = &domain.AnswerRecord{Question: question, Answer: "stub answer"}
	}
	sess.LastAnswer = record
	return record, nil
}

// setupTestServices wires fakes into the package-level services.
func setupTestServices() func() {
	oldDoc, oldAnswer, oldSessions := documentService, answerService, sessionStore

	documentService = services.NewDocumentService(extract.DefaultRegistry(), 0, 0)
	answerService = &mockAnswerService{}
	sessionStore = &memSessionStore{}

	return func() {
		documentService, answerService, sessionStore = oldDoc, oldAnswer, oldSessions
	}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return buf.String(), err
}

func writeTextFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

const policyText = "the monthly levy for a migrant domestic worker is 300 dollars"

func TestVersionCmd(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "mdwcare version dev")
}

func TestUploadCmd(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	path := writeTextFile(t, "levy.txt", policyText)
	out, err := execute(t, "upload", path)
	require.NoError(t, err)

	assert.Contains(t, out, "Uploaded levy.txt")
	assert.Contains(t, out, "1 of 3 document slots in use")
}

func TestUploadCmd_SkipsUnsupportedAndDuplicates(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	txt := writeTextFile(t, "levy.txt", policyText)
	epub := writeTextFile(t, "book.epub", policyText)

	out, err := execute(t, "upload", txt, epub)
	require.NoError(t, err)
	assert.Contains(t, out, "Uploaded levy.txt")
	assert.Contains(t, out, "Skipping book.epub")

	out, err = execute(t, "upload", txt)
	require.NoError(t, err)
	assert.Contains(t, out, "Skipping levy.txt: already uploaded")
}

func TestUploadCmd_RejectsTooManyArgs(t *testing.T) {
	_, err := execute(t, "upload", "a.txt", "b.txt", "c.txt", "d.txt")
	assert.Error(t, err)
}

func TestDocsCmd(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(t, "docs")
	require.NoError(t, err)
	assert.Contains(t, out, "No documents uploaded")

	path := writeTextFile(t, "levy.txt", policyText)
	_, err = execute(t, "upload", path)
	require.NoError(t, err)

	out, err = execute(t, "docs")
	require.NoError(t, err)
	assert.Contains(t, out, "levy.txt")
}

func TestDocsRemoveCmd(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	path := writeTextFile(t, "levy.txt", policyText)
	_, err := execute(t, "upload", path)
	require.NoError(t, err)

	out, err := execute(t, "docs", "remove", "levy.txt")
	require.NoError(t, err)
	assert.Contains(t, out, "Removed levy.txt")

	_, err = execute(t, "docs", "remove", "levy.txt")
	assert.Error(t, err)
}

func TestAskCmd(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	answerService = &mockAnswerService{record: &domain.AnswerRecord{
		Question:   "How much is the levy?",
		Answer:     "The levy is 300 dollars.",
		URLs:       []string{"https://www.mom.gov.sg/levy"},
		TokenCount: 42,
		Evidence:   []string{"levy is 300"},
	}}

	out, err := execute(t, "ask", "How much is the levy?")
	require.NoError(t, err)
	assert.Contains(t, out, "The levy is 300 dollars.")
	assert.Contains(t, out, "https://www.mom.gov.sg/levy")
	assert.Contains(t, out, "~42 tokens")
}

func TestAskCmd_UnsafeQuestion(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	answerService = &mockAnswerService{err: domain.ErrUnsafeQuestion}
	out, err := execute(t, "ask", "something inappropriate")
	require.NoError(t, err)
	assert.Contains(t, out, "inappropriate content")
}

func TestAskCmd_OffTopicQuestion(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	answerService = &mockAnswerService{err: domain.ErrOffTopicQuestion}
	out, err := execute(t, "ask", "what is the weather")
	require.NoError(t, err)
	assert.Contains(t, out, "outside MOM domestic worker policies")
}

// resetQuickFlag clears the sticky cobra flag state between tests.
func resetQuickFlag() {
	askQuick = 0
	askCmd.Flags().Lookup("quick").Changed = false
}

func TestAskCmd_QuickList(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	defer resetQuickFlag()

	out, err := execute(t, "ask", "--quick", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "Quick questions:")
	assert.Contains(t, out, quickQuestions[0])
}

func TestAskCmd_QuickQuestion(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	defer resetQuickFlag()

	out, err := execute(t, "ask", "--quick", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "stub answer")
}

func TestAskCmd_QuickOutOfRange(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	defer resetQuickFlag()

	_, err := execute(t, "ask", "--quick", "99")
	assert.Error(t, err)
}

func TestAskCmd_NoQuestion(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := execute(t, "ask")
	assert.Error(t, err)
}

func TestResetCmd(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	path := writeTextFile(t, "levy.txt", policyText)
	_, err := execute(t, "upload", path)
	require.NoError(t, err)

	out, err := execute(t, "reset")
	require.NoError(t, err)
	assert.Contains(t, out, "Session cleared.")

	out, err = execute(t, "docs")
	require.NoError(t, err)
	assert.Contains(t, out, "No documents uploaded")
}

func TestKindFromName(t *testing.T) {
	kind, err := kindFromName("Guide.PDF")
	require.NoError(t, err)
	assert.Equal(t, domain.KindPDF, kind)

	kind, err = kindFromName("notes.docx")
	require.NoError(t, err)
	assert.Equal(t, domain.KindDOCX, kind)

	_, err = kindFromName("image.png")
	assert.ErrorIs(t, err, domain.ErrUnsupportedType)
}
