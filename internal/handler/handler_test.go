package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"go-pos-backend/internal/model"
	"go-pos-backend/internal/repository"
	"go-pos-backend/internal/service"
	"go-pos-backend/internal/ws"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestApp wires the full route table over a throwaway sqlite store, the
// same way cmd/api does over Postgres.
func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "pos.db")), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.Product{},
		&model.InventoryChange{},
		&model.Transaction{},
		&model.TransactionItem{},
		&model.User{},
	))

	hub := ws.NewHub() // not running; Publish drops events

	invHandler := NewInventoryHandler(service.NewInventoryService(repository.NewProductRepo(db), hub))
	changeHandler := NewChangeLogHandler(service.NewChangeLogService(repository.NewChangeRepo(db)))
	txHandler := NewTransactionHandler(service.NewTransactionService(repository.NewTransactionRepo(db), hub))
	authHandler := NewAuthHandler(service.NewAuthService(repository.NewUserRepo(db)))
	uploadHandler := NewUploadHandler(service.NewUploadService(t.TempDir()))

	app := fiber.New()
	app.Post("/auth/login", authHandler.Login)
	app.Get("/inventory", invHandler.GetInventory)
	app.Post("/inventory", invHandler.PostInventory)
	app.Delete("/inventory/delete", invHandler.DeleteInventory)
	app.Post("/inventory/delete", invHandler.DeleteInventory)
	app.Put("/inventory/stock", invHandler.UpdateStock)
	app.Put("/inventory/update", invHandler.UpdateInventory)
	app.Get("/inventory_changes", changeHandler.GetChanges)
	app.Post("/inventory_changes", changeHandler.CreateChange)
	app.Get("/transactions", txHandler.GetTransactions)
	app.Post("/transactions", txHandler.CreateTransaction)
	app.Post("/upload", uploadHandler.Upload)
	app.All("/upload", MethodNotAllowed)

	return app, db
}

func jsonRequest(method, path, body string) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

func doJSON(t *testing.T, app *fiber.App, method, path, body string) (int, map[string]interface{}) {
	t.Helper()
	resp, err := app.Test(jsonRequest(method, path, body), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var decoded map[string]interface{}
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}
	return resp.StatusCode, decoded
}

func doJSONList(t *testing.T, app *fiber.App, path string) []map[string]interface{} {
	t.Helper()
	resp, err := app.Test(jsonRequest(http.MethodGet, path, ""), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var list []map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	return list
}
