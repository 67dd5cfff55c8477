package delivery

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"lawdesk-backend/internal/apperr"
	"lawdesk-backend/internal/document/domain"
)

// stubDocUsecase lets each test script the usecase outcomes.
type stubDocUsecase struct {
	list         func(folderID string) ([]domain.Document, error)
	createFolder func(name, parentID string) (*domain.Document, error)
	upload       func(name, parentID, mimeType string, r io.Reader) (*domain.Document, error)
	deleteFolder func(id string) error
	getFile      func(id string) (*domain.Document, error)
	openContent  func(doc *domain.Document) (io.ReadCloser, error)
}

func (s *stubDocUsecase) List(folderID string) ([]domain.Document, error) {
	return s.list(folderID)
}

func (s *stubDocUsecase) CreateFolder(name, parentID string) (*domain.Document, error) {
	return s.createFolder(name, parentID)
}

func (s *stubDocUsecase) Upload(name, parentID, mimeType string, r io.Reader) (*domain.Document, error) {
	return s.upload(name, parentID, mimeType, r)
}

func (s *stubDocUsecase) RenameFolder(id, name string) (*domain.Document, error) {
	return &domain.Document{ID: id, Name: name, Kind: domain.KindFolder}, nil
}

func (s *stubDocUsecase) RenameFile(id, name string) (*domain.Document, error) {
	return &domain.Document{ID: id, Name: name, Kind: domain.KindFile}, nil
}

func (s *stubDocUsecase) DeleteFolder(id string) error {
	return s.deleteFolder(id)
}

func (s *stubDocUsecase) DeleteFile(id string) error {
	return nil
}

func (s *stubDocUsecase) GetFile(id string) (*domain.Document, error) {
	return s.getFile(id)
}

func (s *stubDocUsecase) OpenContent(doc *domain.Document) (io.ReadCloser, error) {
	return s.openContent(doc)
}

func testRouter(stub *stubDocUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewDocumentHandler(stub, zap.NewNop().Sugar())

	r := gin.New()
	r.GET("/documents", h.List)
	r.POST("/documents/folders", h.CreateFolder)
	r.DELETE("/documents/folders/:id", h.DeleteFolder)
	r.POST("/documents/upload", h.Upload)
	r.GET("/documents/file/:id/download", h.Download)
	return r
}

func TestListDefaultsToRoot(t *testing.T) {
	var gotFolderID string
	stub := &stubDocUsecase{
		list: func(folderID string) ([]domain.Document, error) {
			gotFolderID = folderID
			return []domain.Document{}, nil
		},
	}
	r := testRouter(stub)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/documents", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "root", gotFolderID)
}

func TestCreateFolder(t *testing.T) {
	stub := &stubDocUsecase{
		createFolder: func(name, parentID string) (*domain.Document, error) {
			return &domain.Document{ID: "f1", Name: name, Kind: domain.KindFolder}, nil
		},
	}
	r := testRouter(stub)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/documents/folders", strings.NewReader(`{"name":"Contracts","parentId":"root"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"name":"Contracts"`)
	assert.Contains(t, w.Body.String(), `"type":"folder"`)
}

func TestCreateFolderEmptyName(t *testing.T) {
	stub := &stubDocUsecase{
		createFolder: func(name, parentID string) (*domain.Document, error) {
			return nil, apperr.ErrEmptyName
		},
	}
	r := testRouter(stub)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/documents/folders", strings.NewReader(`{"name":"  ","parentId":"root"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteFolderNotEmpty(t *testing.T) {
	stub := &stubDocUsecase{
		deleteFolder: func(id string) error { return apperr.ErrFolderNotEmpty },
	}
	r := testRouter(stub)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/documents/folders/f1", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "folder with contents")
}

func TestUploadMultipart(t *testing.T) {
	var gotName, gotParent string
	var gotBytes []byte
	stub := &stubDocUsecase{
		upload: func(name, parentID, mimeType string, r io.Reader) (*domain.Document, error) {
			gotName = name
			gotParent = parentID
			data, err := io.ReadAll(r)
			require.NoError(t, err)
			gotBytes = data
			return &domain.Document{ID: "d1", Name: name, Kind: domain.KindFile, Size: int64(len(data))}, nil
		},
	}
	r := testRouter(stub)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", "brief.pdf")
	require.NoError(t, err)
	_, err = part.Write([]byte("pdf bytes"))
	require.NoError(t, err)
	require.NoError(t, mw.WriteField("parentId", "folder-7"))
	require.NoError(t, mw.Close())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/documents/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "brief.pdf", gotName)
	assert.Equal(t, "folder-7", gotParent)
	assert.Equal(t, "pdf bytes", string(gotBytes))
}

func TestUploadWithoutFile(t *testing.T) {
	r := testRouter(&stubDocUsecase{})

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("parentId", "root"))
	require.NoError(t, mw.Close())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/documents/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "No file provided")
}

func TestDownloadStreamsAttachment(t *testing.T) {
	content := "stored file bytes"
	stub := &stubDocUsecase{
		getFile: func(id string) (*domain.Document, error) {
			return &domain.Document{
				ID:       id,
				Name:     "report.pdf",
				Kind:     domain.KindFile,
				MimeType: "application/pdf",
				Size:     int64(len(content)),
			}, nil
		},
		openContent: func(doc *domain.Document) (io.ReadCloser, error) {
			return io.NopCloser(strings.NewReader(content)), nil
		},
	}
	r := testRouter(stub)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/documents/file/d1/download", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `attachment; filename="report.pdf"`, w.Header().Get("Content-Disposition"))
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Equal(t, content, w.Body.String())
}

func TestDownloadDefaultsContentType(t *testing.T) {
	stub := &stubDocUsecase{
		getFile: func(id string) (*domain.Document, error) {
			return &domain.Document{ID: id, Name: "blob.bin", Kind: domain.KindFile, Size: 1}, nil
		},
		openContent: func(doc *domain.Document) (io.ReadCloser, error) {
			return io.NopCloser(strings.NewReader("x")), nil
		},
	}
	r := testRouter(stub)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/documents/file/d1/download", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/octet-stream", w.Header().Get("Content-Type"))
}

func TestDownloadNotFound(t *testing.T) {
	stub := &stubDocUsecase{
		getFile: func(id string) (*domain.Document, error) { return nil, apperr.ErrNotFound },
	}
	r := testRouter(stub)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/documents/file/missing/download", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}
