package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/mstrelkov/jewelstock/internal/hash"
	"github.com/mstrelkov/jewelstock/internal/models"
	"github.com/mstrelkov/jewelstock/internal/repo"
	"github.com/mstrelkov/jewelstock/internal/service"
)

var testJWTSecret = []byte("handlers-test-secret")

// stubPublisher records events instead of talking to a broker.
type stubPublisher struct {
	topics []string
	events []map[string]interface{}
}

func (s *stubPublisher) PublishEvent(ctx context.Context, topic, key string, event interface{}) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	var m map[string]interface{}
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	s.topics = append(s.topics, topic)
	s.events = append(s.events, m)
	return nil
}

func (s *stubPublisher) last(t *testing.T) (string, map[string]interface{}) {
	t.Helper()
	require.NotEmpty(t, s.events, "expected at least one published event")
	return s.topics[len(s.topics)-1], s.events[len(s.events)-1]
}

type testEnv struct {
	T         *testing.T
	E         *echo.Echo
	DB        *gorm.DB
	Repo      *repo.GormRepo
	Publisher *stubPublisher
	Auth      *AuthHandler
	Prices    *PriceHandler
	Inventory *InventoryHandler
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.MetalPrice{}, &models.InventoryItem{}))

	r := &repo.GormRepo{DB: db}
	pub := &stubPublisher{}

	env := &testEnv{
		T:         t,
		E:         echo.New(),
		DB:        db,
		Repo:      r,
		Publisher: pub,
	}
	env.Auth = &AuthHandler{Svc: &service.AuthService{Repo: r, JWTSecret: testJWTSecret, Producer: pub}}
	env.Prices = &PriceHandler{Svc: &service.PriceService{Repo: r, Producer: pub}}
	env.Inventory = &InventoryHandler{Svc: &service.InventoryService{Repo: r, Producer: pub}}

	return env
}

func (env *testEnv) doJSONRequest(method, path string, body interface{}) (*httptest.ResponseRecorder, echo.Context) {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(env.T, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	rec := httptest.NewRecorder()
	c := env.E.NewContext(req, rec)
	return rec, c
}

func (env *testEnv) createUser(t *testing.T, username string, role models.Role) *models.User {
	t.Helper()

	pwHash, err := hash.HashPassword("password")
	require.NoError(t, err)

	user := models.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: pwHash,
		Role:         role,
	}
	require.NoError(t, env.DB.Create(&user).Error)
	return &user
}

func setUserContext(c echo.Context, user *models.User) {
	c.Set("userID", user.ID)
	c.Set("role", user.Role)
}
