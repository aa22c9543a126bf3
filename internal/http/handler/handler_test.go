package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"portfolioapi/internal/http/middleware"
	"portfolioapi/internal/model"
	"portfolioapi/internal/service"
	serviceMocks "portfolioapi/internal/service/mocks"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var errStore = fmt.Errorf("%w: profile: connection refused", service.ErrStorageUnavailable)

func sampleDocument() *model.Document {
	return &model.Document{
		Profile:      model.ProfileView{Name: "Ada"},
		Story:        []model.StoryView{{Year: "2001", Title: "Start"}},
		Publications: []model.PublicationView{},
		Ideas:        []model.IdeaView{{Title: "Idea"}},
		Media: model.MediaGroups{
			All:  []model.MediaView{{ID: 1, FileURL: "http://example.com/media/a.jpg"}},
			Home: []model.MediaView{},
		},
	}
}

func newApp(d Deps) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler()})
	app.Use(middleware.RequestID())
	RegisterRoutes(app, d)
	return app
}

func decodeError(t *testing.T, resp *http.Response) errorPayload {
	t.Helper()
	var body errorPayload
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func TestRoot(t *testing.T) {
	app := newApp(Deps{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, ServiceName, body["service"])
	assert.Equal(t, "ok", body["status"])
}

func TestLivenessProbe(t *testing.T) {
	app := newApp(Deps{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/health", nil))
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Cache-Control"), "no-store")
	body, _ := io.ReadAll(resp.Body)
	assert.JSONEq(t, `{"status":"ok"}`, string(body))
}

func TestHealthCheck(t *testing.T) {
	db, dbMock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	app := fiber.New()
	app.Get("/api/ready", HealthCheck(db))

	t.Run("ready", func(t *testing.T) {
		dbMock.ExpectPing()
		dbMock.ExpectQuery("SELECT to_regclass").
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/api/ready", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var body map[string]string
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "ready", body["status"])
	})

	t.Run("not migrated", func(t *testing.T) {
		dbMock.ExpectPing()
		dbMock.ExpectQuery("SELECT to_regclass").
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/api/ready", nil))

		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
		assert.Equal(t, StorageUnavailableDetail, decodeError(t, resp).Detail)
	})

	t.Run("unreachable", func(t *testing.T) {
		dbMock.ExpectPing().WillReturnError(errors.New("db error"))

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/api/ready", nil))

		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
		assert.Equal(t, "STORAGE_UNAVAILABLE", decodeError(t, resp).Code)
	})

	assert.NoError(t, dbMock.ExpectationsWereMet())
}

func TestDocumentEndpoints(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/api/story", `[{"year":"2001","title":"Start","detail":""}]`},
		{"/api/publications", `[]`},
		{"/api/ideas", `[{"title":"Idea","stage":"","summary":"","impact":"","url":"","document_url":"","image_url":""}]`},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			svc := new(serviceMocks.MockContentService)
			svc.On("Build", mock.Anything, "http://example.com").Return(sampleDocument(), nil).Once()
			app := newApp(Deps{Content: svc})

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, tt.path, nil))
			require.NoError(t, err)

			assert.Equal(t, http.StatusOK, resp.StatusCode)
			assert.Equal(t, "0", resp.Header.Get("Expires"))
			body, _ := io.ReadAll(resp.Body)
			assert.JSONEq(t, tt.want, string(body))
			svc.AssertExpectations(t)
		})
	}
}

func TestGetContent(t *testing.T) {
	t.Run("uses configured public base", func(t *testing.T) {
		svc := new(serviceMocks.MockContentService)
		svc.On("Build", mock.Anything, "https://cms.example.org").Return(sampleDocument(), nil).Once()
		app := newApp(Deps{Content: svc, PublicBaseURL: "https://cms.example.org/"})

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/content", nil))
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var doc model.Document
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&doc))
		assert.Equal(t, "Ada", doc.Profile.Name)
		svc.AssertExpectations(t)
	})

	t.Run("storage unavailable", func(t *testing.T) {
		svc := new(serviceMocks.MockContentService)
		svc.On("Build", mock.Anything, mock.Anything).Return(nil, errStore)
		app := newApp(Deps{Content: svc})

		req := httptest.NewRequest(http.MethodGet, "/api/content", nil)
		req.Header.Set(middleware.RequestIDHeader, "rid-1")
		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
		body := decodeError(t, resp)
		assert.Equal(t, StorageUnavailableDetail, body.Detail)
		assert.Equal(t, "rid-1", body.RequestID)
	})

	t.Run("unexpected error", func(t *testing.T) {
		svc := new(serviceMocks.MockContentService)
		svc.On("Build", mock.Anything, mock.Anything).Return(nil, errors.New("bug"))
		app := newApp(Deps{Content: svc})

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/content", nil))
		require.NoError(t, err)

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		assert.NotContains(t, decodeError(t, resp).Detail, "bug")
	})
}

func TestGetMedia(t *testing.T) {
	svc := new(serviceMocks.MockContentService)
	svc.On("Build", mock.Anything, mock.Anything).Return(sampleDocument(), nil)
	app := newApp(Deps{Content: svc})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/media", nil))
	require.NoError(t, err)

	var body map[string]json.RawMessage
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Contains(t, string(body["all"]), "http://example.com/media/a.jpg")
	assert.Equal(t, "[]", string(body["home"]))
}

func TestListBlogs(t *testing.T) {
	t.Run("all", func(t *testing.T) {
		svc := new(serviceMocks.MockContentService)
		svc.On("Blogs", mock.Anything, model.BlogCategory("")).Return([]model.BlogView{}, nil).Once()
		app := newApp(Deps{Content: svc})

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/api/blogs", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		body, _ := io.ReadAll(resp.Body)
		assert.Equal(t, "[]", string(body))
		svc.AssertExpectations(t)
	})

	t.Run("category", func(t *testing.T) {
		svc := new(serviceMocks.MockContentService)
		svc.On("Blogs", mock.Anything, model.BlogInsights).
			Return([]model.BlogView{{ID: 4, Category: "insights", Title: "Notes"}}, nil).Once()
		app := newApp(Deps{Content: svc})

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/api/blogs?category=Insights", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var got []model.BlogView
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
		assert.Equal(t, "Notes", got[0].Title)
	})

	t.Run("unknown category", func(t *testing.T) {
		svc := new(serviceMocks.MockContentService)
		app := newApp(Deps{Content: svc})

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/api/blogs?category=podcasts", nil))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_CATEGORY", decodeError(t, resp).Code)
		svc.AssertNotCalled(t, "Blogs", mock.Anything, mock.Anything)
	})

	t.Run("storage unavailable", func(t *testing.T) {
		svc := new(serviceMocks.MockContentService)
		svc.On("Blogs", mock.Anything, mock.Anything).Return(nil, errStore)
		app := newApp(Deps{Content: svc})

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/api/blogs", nil))

		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	})
}

func TestSubmitContact(t *testing.T) {
	postJSON := func(app *fiber.App, body string) *http.Response {
		req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		require.NoError(t, err)
		return resp
	}

	t.Run("received", func(t *testing.T) {
		svc := new(serviceMocks.MockContactService)
		svc.On("Submit", mock.Anything, service.ContactInput{Name: "Ada", Message: "Hi"}).
			Return(&model.ContactMessage{ID: 1}, nil).Once()
		app := newApp(Deps{Contact: svc})

		resp := postJSON(app, `{"name":" Ada ","message":"Hi"}`)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		body, _ := io.ReadAll(resp.Body)
		assert.JSONEq(t, `{"status":"received"}`, string(body))
		svc.AssertExpectations(t)
	})

	t.Run("empty body", func(t *testing.T) {
		svc := new(serviceMocks.MockContactService)
		svc.On("Submit", mock.Anything, service.ContactInput{}).Return(&model.ContactMessage{ID: 2}, nil).Once()
		app := newApp(Deps{Contact: svc})

		resp := postJSON(app, "")

		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("invalid json", func(t *testing.T) {
		svc := new(serviceMocks.MockContactService)
		app := newApp(Deps{Contact: svc})

		resp := postJSON(app, `{"name":`)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "Invalid JSON payload", decodeError(t, resp).Detail)
		svc.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything)
	})

	t.Run("not an object", func(t *testing.T) {
		svc := new(serviceMocks.MockContactService)
		app := newApp(Deps{Contact: svc})

		resp := postJSON(app, `["a"]`)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "JSON object payload is required", decodeError(t, resp).Detail)
	})

	t.Run("missing fields", func(t *testing.T) {
		svc := new(serviceMocks.MockContactService)
		svc.On("Submit", mock.Anything, mock.Anything).
			Return(nil, &service.MissingFieldsError{Fields: []string{"email", "subject"}})
		app := newApp(Deps{Contact: svc})

		resp := postJSON(app, `{"name":"Ada","message":"Hi"}`)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		body := decodeError(t, resp)
		assert.Equal(t, "MISSING_FIELDS", body.Code)
		assert.Equal(t, "Missing required fields: email, subject", body.Detail)
	})

	t.Run("storage unavailable", func(t *testing.T) {
		svc := new(serviceMocks.MockContactService)
		svc.On("Submit", mock.Anything, mock.Anything).Return(nil, errStore)
		app := newApp(Deps{Contact: svc})

		resp := postJSON(app, `{}`)

		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
		assert.Equal(t, StorageUnavailableDetail, decodeError(t, resp).Detail)
	})

	t.Run("wrong method", func(t *testing.T) {
		app := newApp(Deps{Contact: new(serviceMocks.MockContactService)})

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/contact", nil))
		require.NoError(t, err)

		assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
		assert.Equal(t, "METHOD_NOT_ALLOWED", decodeError(t, resp).Code)
	})
}

func TestErrorHandler_NotFound(t *testing.T) {
	app := newApp(Deps{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/nope", nil))
	require.NoError(t, err)

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	body := decodeError(t, resp)
	assert.Equal(t, "NOT_FOUND", body.Code)
	assert.NotEmpty(t, body.RequestID)
}

func TestSwaggerTarget(t *testing.T) {
	host, scheme := swaggerTarget("api.portfolio.test", "", "http", "localhost:8080")
	assert.Equal(t, "api.portfolio.test", host)
	assert.Equal(t, "http", scheme)

	host, scheme = swaggerTarget("", "https, http", "http", "localhost:8080")
	assert.Equal(t, "localhost:8080", host)
	assert.Equal(t, "https", scheme)
}
