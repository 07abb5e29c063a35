package testutils

import (
	"notelist-app/notelist/database"
	"notelist-app/notelist/models"
	"notelist-app/notelist/utils/token"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockNoteService mocks the NoteServiceInterface for testing
type MockNoteService struct {
	mock.Mock
}

func (m *MockNoteService) ListNotes(db *database.Database, userID uuid.UUID, notebookID string, filterData map[string]interface{}) ([]models.NoteSummary, error) {
	args := m.Called(db, userID, notebookID, filterData)
	return args.Get(0).([]models.NoteSummary), args.Error(1)
}

func (m *MockNoteService) GetNoteById(db *database.Database, userID uuid.UUID, id string) (models.NoteDetail, error) {
	args := m.Called(db, userID, id)
	return args.Get(0).(models.NoteDetail), args.Error(1)
}

func (m *MockNoteService) CreateNote(db *database.Database, userID uuid.UUID, noteData map[string]interface{}) (models.Note, error) {
	args := m.Called(db, userID, noteData)
	return args.Get(0).(models.Note), args.Error(1)
}

func (m *MockNoteService) UpdateNote(db *database.Database, userID uuid.UUID, id string, noteData map[string]interface{}) (models.Note, error) {
	args := m.Called(db, userID, id, noteData)
	return args.Get(0).(models.Note), args.Error(1)
}

func (m *MockNoteService) DeleteNote(db *database.Database, userID uuid.UUID, id string) error {
	args := m.Called(db, userID, id)
	return args.Error(0)
}

// MockNotebookService mocks the NotebookServiceInterface for testing
type MockNotebookService struct {
	mock.Mock
}

func (m *MockNotebookService) CreateNotebook(db *database.Database, userID uuid.UUID, notebookData map[string]interface{}) (models.Notebook, error) {
	args := m.Called(db, userID, notebookData)
	return args.Get(0).(models.Notebook), args.Error(1)
}

func (m *MockNotebookService) GetNotebookById(db *database.Database, userID uuid.UUID, id string) (models.Notebook, error) {
	args := m.Called(db, userID, id)
	return args.Get(0).(models.Notebook), args.Error(1)
}

func (m *MockNotebookService) UpdateNotebook(db *database.Database, userID uuid.UUID, id string, updatedData map[string]interface{}) (models.Notebook, error) {
	args := m.Called(db, userID, id, updatedData)
	return args.Get(0).(models.Notebook), args.Error(1)
}

func (m *MockNotebookService) DeleteNotebook(db *database.Database, userID uuid.UUID, id string) error {
	args := m.Called(db, userID, id)
	return args.Error(0)
}

func (m *MockNotebookService) ListNotebooksByUser(db *database.Database, userID uuid.UUID) ([]models.Notebook, error) {
	args := m.Called(db, userID)
	return args.Get(0).([]models.Notebook), args.Error(1)
}

// MockTagService mocks the TagServiceInterface for testing
type MockTagService struct {
	mock.Mock
}

func (m *MockTagService) CreateTag(db *database.Database, userID uuid.UUID, tagData map[string]interface{}) (models.Tag, error) {
	args := m.Called(db, userID, tagData)
	return args.Get(0).(models.Tag), args.Error(1)
}

func (m *MockTagService) GetTagById(db *database.Database, userID uuid.UUID, id string) (models.Tag, error) {
	args := m.Called(db, userID, id)
	return args.Get(0).(models.Tag), args.Error(1)
}

func (m *MockTagService) UpdateTag(db *database.Database, userID uuid.UUID, id string, updatedData map[string]interface{}) (models.Tag, error) {
	args := m.Called(db, userID, id, updatedData)
	return args.Get(0).(models.Tag), args.Error(1)
}

func (m *MockTagService) DeleteTag(db *database.Database, userID uuid.UUID, id string) error {
	args := m.Called(db, userID, id)
	return args.Error(0)
}

func (m *MockTagService) ListTags(db *database.Database, userID uuid.UUID, notebookID string) ([]models.Tag, error) {
	args := m.Called(db, userID, notebookID)
	return args.Get(0).([]models.Tag), args.Error(1)
}

// MockUserService mocks the UserServiceInterface for testing
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) CreateUser(db *database.Database, email, password string) (models.User, error) {
	args := m.Called(db, email, password)
	return args.Get(0).(models.User), args.Error(1)
}

func (m *MockUserService) GetUserById(db *database.Database, id uuid.UUID) (models.User, error) {
	args := m.Called(db, id)
	return args.Get(0).(models.User), args.Error(1)
}

// MockAuthService mocks the AuthServiceInterface for testing
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(db *database.Database, email, password string) (string, error) {
	args := m.Called(db, email, password)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) ValidateToken(tokenString string) (*token.JWTClaims, error) {
	args := m.Called(tokenString)
	claims, _ := args.Get(0).(*token.JWTClaims)
	return claims, args.Error(1)
}

func (m *MockAuthService) HashPassword(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) ComparePasswords(hashedPassword, password string) error {
	args := m.Called(hashedPassword, password)
	return args.Error(0)
}

// MockSearchService mocks the SearchServiceInterface for testing
type MockSearchService struct {
	mock.Mock
}

func (m *MockSearchService) Search(db *database.Database, userID uuid.UUID, text string) (models.SearchResult, error) {
	args := m.Called(db, userID, text)
	return args.Get(0).(models.SearchResult), args.Error(1)
}
