package posts

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"regexp"
	"testing"

	"blog-api/core/store"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (store.Adapter, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	st, err := store.New(gormDB)
	if err != nil {
		t.Fatalf("Failed to create store adapter: %v", err)
	}
	return st, mock
}

func setupTestApp(t *testing.T) (*fiber.App, sqlmock.Sqlmock) {
	app := fiber.New()
	st, mock := setupMockDB(t)
	feature := NewFeature(st, zap.NewNop())
	require.NoError(t, feature.Load(app))
	return app, mock
}

func postColumns() []string {
	return []string{"id", "title", "content", "category", "tags", "createdAt", "updatedAt"}
}

func TestHandleList(t *testing.T) {
	app, mock := setupTestApp(t)

	rows := sqlmock.NewRows(postColumns()).
		AddRow(1, "First", "Body", "tech", "go,web", "2024-01-01 10:00:00.000", "2024-01-01 10:00:00.000").
		AddRow(2, "Second", "Body", "life", "", "2024-01-02 10:00:00.000", "2024-01-02 10:00:00.000")
	mock.ExpectQuery(regexp.QuoteMeta(qSelectPosts)).WillReturnRows(rows)

	resp, err := app.Test(httptest.NewRequest("GET", "/posts", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var list []Post
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	require.Len(t, list, 2)
	assert.Equal(t, []string{"go", "web"}, list[0].Tags)
	assert.Equal(t, []string{}, list[1].Tags)
}

func TestHandleGet(t *testing.T) {
	app, mock := setupTestApp(t)

	rows := sqlmock.NewRows(postColumns()).
		AddRow(5, "Hello", "World", "misc", "x", "2024-01-01 10:00:00.000", "2024-01-01 10:00:00.000")
	mock.ExpectQuery(regexp.QuoteMeta(qSelectPost)).WithArgs(int64(5)).WillReturnRows(rows)

	resp, err := app.Test(httptest.NewRequest("GET", "/posts/5", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var post Post
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&post))
	assert.Equal(t, int64(5), post.ID)
	assert.Equal(t, []string{"x"}, post.Tags)
}

func TestHandleGet_InvalidID(t *testing.T) {
	app, mock := setupTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/posts/12abc", nil))
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHandleGet_NotFound(t *testing.T) {
	app, mock := setupTestApp(t)

	mock.ExpectQuery(regexp.QuoteMeta(qSelectPost)).WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows(postColumns()))

	resp, err := app.Test(httptest.NewRequest("GET", "/posts/99", nil))
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}

func TestHandleSearch(t *testing.T) {
	app, mock := setupTestApp(t)

	rows := sqlmock.NewRows(postColumns()).
		AddRow(1, "Go tips", "Body", "tech", "go", "2024-01-01 10:00:00.000", "2024-01-01 10:00:00.000")
	mock.ExpectQuery(regexp.QuoteMeta(qSearchPosts)).
		WithArgs("%go%", "%go%", "%go%", "%go%").
		WillReturnRows(rows)

	resp, err := app.Test(httptest.NewRequest("GET", "/posts/search?term=go", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var list []Post
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	assert.Len(t, list, 1)
}

func TestHandleCreate(t *testing.T) {
	app, mock := setupTestApp(t)

	mock.ExpectExec(regexp.QuoteMeta(qInsertPost)).
		WithArgs("A", "B", "C", "x,y", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(10, 1))

	body, _ := json.Marshal(map[string]any{
		"title": "A", "content": "B", "category": "C", "tags": []string{"x", "y"},
	})
	req := httptest.NewRequest("POST", "/posts", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 201, resp.StatusCode)

	var post Post
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&post))
	assert.Equal(t, int64(10), post.ID)
	assert.Equal(t, []string{"x", "y"}, post.Tags)
	assert.NotEmpty(t, post.CreatedAt)
	assert.Equal(t, post.CreatedAt, post.UpdatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHandleCreate_MissingField(t *testing.T) {
	app, mock := setupTestApp(t)

	body, _ := json.Marshal(map[string]any{"title": "A", "tags": []string{}})
	req := httptest.NewRequest("POST", "/posts", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
	// No write may be issued for a rejected payload.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHandleCreate_TagsNotAList(t *testing.T) {
	app, mock := setupTestApp(t)

	body, _ := json.Marshal(map[string]any{
		"title": "A", "content": "B", "category": "C", "tags": "x,y",
	})
	req := httptest.NewRequest("POST", "/posts", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHandleReplace(t *testing.T) {
	app, mock := setupTestApp(t)

	rows := sqlmock.NewRows(postColumns()).
		AddRow(3, "Old", "Old", "old", "a", "2024-01-01 10:00:00.000", "2024-01-01 10:00:00.000")
	mock.ExpectQuery(regexp.QuoteMeta(qSelectPost)).WithArgs(int64(3)).WillReturnRows(rows)
	mock.ExpectExec(regexp.QuoteMeta(qUpdatePost)).
		WithArgs("New", "New body", "new", "z", sqlmock.AnyArg(), int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	body, _ := json.Marshal(map[string]any{
		"title": "New", "content": "New body", "category": "new", "tags": []string{"z"},
	})
	req := httptest.NewRequest("PUT", "/posts/3", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var post Post
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&post))
	assert.Equal(t, "New", post.Title)
	// createdAt survives a replace untouched.
	assert.Equal(t, "2024-01-01 10:00:00.000", post.CreatedAt)
	assert.NotEqual(t, "2024-01-01 10:00:00.000", post.UpdatedAt)
}

func TestHandleReplace_MissingFields(t *testing.T) {
	app, mock := setupTestApp(t)

	rows := sqlmock.NewRows(postColumns()).
		AddRow(3, "Old", "Old", "old", "a", "2024-01-01 10:00:00.000", "2024-01-01 10:00:00.000")
	mock.ExpectQuery(regexp.QuoteMeta(qSelectPost)).WithArgs(int64(3)).WillReturnRows(rows)

	body, _ := json.Marshal(map[string]any{"title": "Only title"})
	req := httptest.NewRequest("PUT", "/posts/3", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
	// The stored row must remain untouched: no update statement was expected
	// and none may have been issued.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHandleMerge_TagsOnly(t *testing.T) {
	app, mock := setupTestApp(t)

	rows := sqlmock.NewRows(postColumns()).
		AddRow(7, "A", "B", "C", "x,y", "2024-01-01 10:00:00.000", "2024-01-01 10:00:00.000")
	mock.ExpectQuery(regexp.QuoteMeta(qSelectPost)).WithArgs(int64(7)).WillReturnRows(rows)
	mock.ExpectExec(regexp.QuoteMeta(qUpdatePost)).
		WithArgs("A", "B", "C", "z", sqlmock.AnyArg(), int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	body, _ := json.Marshal(map[string]any{"tags": []string{"z"}})
	req := httptest.NewRequest("PATCH", "/posts/7", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var post Post
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&post))
	assert.Equal(t, []string{"z"}, post.Tags)
	assert.Equal(t, "A", post.Title)
	assert.Equal(t, "B", post.Content)
	assert.Equal(t, "C", post.Category)
	assert.Equal(t, "2024-01-01 10:00:00.000", post.CreatedAt)
	assert.Greater(t, post.UpdatedAt, post.CreatedAt)
}

func TestHandleMerge_EmptyPayload(t *testing.T) {
	app, mock := setupTestApp(t)

	rows := sqlmock.NewRows(postColumns()).
		AddRow(7, "A", "B", "C", "x", "2024-01-01 10:00:00.000", "2024-01-01 10:00:00.000")
	mock.ExpectQuery(regexp.QuoteMeta(qSelectPost)).WithArgs(int64(7)).WillReturnRows(rows)

	req := httptest.NewRequest("PATCH", "/posts/7", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHandleMerge_EmptyTagListClears(t *testing.T) {
	app, mock := setupTestApp(t)

	rows := sqlmock.NewRows(postColumns()).
		AddRow(7, "A", "B", "C", "x,y", "2024-01-01 10:00:00.000", "2024-01-01 10:00:00.000")
	mock.ExpectQuery(regexp.QuoteMeta(qSelectPost)).WithArgs(int64(7)).WillReturnRows(rows)
	mock.ExpectExec(regexp.QuoteMeta(qUpdatePost)).
		WithArgs("A", "B", "C", "", sqlmock.AnyArg(), int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	body, _ := json.Marshal(map[string]any{"tags": []string{}})
	req := httptest.NewRequest("PATCH", "/posts/7", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var post Post
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&post))
	assert.Equal(t, []string{}, post.Tags)
}

func TestHandleDelete(t *testing.T) {
	app, mock := setupTestApp(t)

	mock.ExpectQuery(regexp.QuoteMeta(qPostExists)).WithArgs(int64(4)).
		WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(1))
	mock.ExpectExec(regexp.QuoteMeta(qDeletePost)).WithArgs(int64(4)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	resp, err := app.Test(httptest.NewRequest("DELETE", "/posts/4", nil))
	require.NoError(t, err)
	assert.Equal(t, 204, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHandleDelete_NotFound(t *testing.T) {
	app, mock := setupTestApp(t)

	mock.ExpectQuery(regexp.QuoteMeta(qPostExists)).WithArgs(int64(4)).
		WillReturnRows(sqlmock.NewRows([]string{"1"}))

	resp, err := app.Test(httptest.NewRequest("DELETE", "/posts/4", nil))
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}
