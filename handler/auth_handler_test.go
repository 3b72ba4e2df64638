package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"main/middleware"
	"main/repository"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

func init() {
	os.Setenv("GO_ENV", "test")
	gin.SetMode(gin.TestMode)
}

func setupAuthHandlerTest(t *testing.T) (*gin.Engine, func()) {
	t.Helper()

	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		t.Skipf("MongoDB not available: %v", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		t.Skipf("MongoDB not available: %v", err)
	}

	db := client.Database("studyshare_test")
	if err := repository.SetupIndexes(db); err != nil {
		t.Fatalf("Failed to setup indexes: %v", err)
	}

	utils.InitJWT()

	usersRepo := repository.GetUsersRepo(db)
	userService := &usecase.UserService{UsersRepo: usersRepo}

	router := gin.New()
	router.POST("/api/auth/register", func(c *gin.Context) {
		RegistrationHandler(c, userService)
	})
	router.POST("/api/auth/login", func(c *gin.Context) {
		LoginHandler(c, userService, nil)
	})
	router.POST("/api/auth/logout", middleware.AuthMiddleware(usersRepo), LogoutHandler)
	router.GET("/api/auth/me", middleware.AuthMiddleware(usersRepo), MeHandler)

	cleanup := func() {
		if err := db.Drop(context.Background()); err != nil {
			t.Errorf("Failed to drop test database: %v", err)
		}
		if err := client.Disconnect(context.Background()); err != nil {
			t.Errorf("Failed to disconnect from MongoDB: %v", err)
		}
	}
	return router, cleanup
}

func postJSON(router *gin.Engine, path, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	router.ServeHTTP(w, req)
	return w
}

func tokenCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == middleware.AccessTokenCookie {
			return cookie
		}
	}
	t.Fatal("No access token cookie in response")
	return nil
}

func TestAuthFlow(t *testing.T) {
	router, cleanup := setupAuthHandlerTest(t)
	defer cleanup()

	register := `{"name":"Alan","email":"alan@university.edu","university":"Cambridge","password":"enigma-machine"}`

	var cookie *http.Cookie

	t.Run("register", func(t *testing.T) {
		w := postJSON(router, "/api/auth/register", register)
		if w.Code != http.StatusCreated {
			t.Fatalf("Status = %d, want 201: %s", w.Code, w.Body.String())
		}

		cookie = tokenCookie(t, w)
		if !cookie.HttpOnly {
			t.Error("Token cookie must be http-only")
		}
		if strings.Contains(w.Body.String(), "password") {
			t.Error("Password leaked into the response")
		}
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		w := postJSON(router, "/api/auth/register", register)
		if w.Code != http.StatusConflict {
			t.Errorf("Status = %d, want 409: %s", w.Code, w.Body.String())
		}
	})

	t.Run("email is case-insensitive", func(t *testing.T) {
		shouting := strings.Replace(register, "alan@university.edu", "ALAN@university.edu", 1)
		w := postJSON(router, "/api/auth/register", shouting)
		if w.Code != http.StatusConflict {
			t.Errorf("Status = %d, want 409: %s", w.Code, w.Body.String())
		}
	})

	t.Run("login wrong password", func(t *testing.T) {
		w := postJSON(router, "/api/auth/login", `{"email":"alan@university.edu","password":"wrong"}`)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("Status = %d, want 401: %s", w.Code, w.Body.String())
		}
	})

	t.Run("login unknown email", func(t *testing.T) {
		w := postJSON(router, "/api/auth/login", `{"email":"nobody@university.edu","password":"whatever"}`)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("Status = %d, want 401: %s", w.Code, w.Body.String())
		}
	})

	t.Run("login", func(t *testing.T) {
		w := postJSON(router, "/api/auth/login", `{"email":"alan@university.edu","password":"enigma-machine"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("Status = %d, want 200: %s", w.Code, w.Body.String())
		}
		cookie = tokenCookie(t, w)
	})

	t.Run("me", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/api/auth/me", nil)
		req.AddCookie(cookie)
		router.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("Status = %d, want 200: %s", w.Code, w.Body.String())
		}

		var resp struct {
			Data struct {
				User struct {
					Email string `json:"email"`
				} `json:"user"`
			} `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("Failed to parse response: %v", err)
		}
		if resp.Data.User.Email != "alan@university.edu" {
			t.Errorf("Email = %q", resp.Data.User.Email)
		}
	})

	t.Run("logout clears the cookie", func(t *testing.T) {
		w := postJSON(router, "/api/auth/logout", "", cookie)
		if w.Code != http.StatusOK {
			t.Fatalf("Status = %d, want 200: %s", w.Code, w.Body.String())
		}
		cleared := tokenCookie(t, w)
		if cleared.Value != "" || cleared.MaxAge >= 0 {
			t.Errorf("Cookie not cleared: value=%q maxAge=%d", cleared.Value, cleared.MaxAge)
		}
	})
}

func TestRegisterValidation(t *testing.T) {
	router, cleanup := setupAuthHandlerTest(t)
	defer cleanup()

	tests := []struct {
		name string
		body string
	}{
		{"short password", `{"name":"Bob","email":"bob@university.edu","university":"MIT","password":"abc"}`},
		{"bad email", `{"name":"Bob","email":"not-an-email","university":"MIT","password":"long-enough"}`},
		{"missing name", `{"email":"bob@university.edu","university":"MIT","password":"long-enough"}`},
		{"not json", `title=oops`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := postJSON(router, "/api/auth/register", tc.body)
			if w.Code != http.StatusBadRequest {
				t.Errorf("Status = %d, want 400: %s", w.Code, w.Body.String())
			}
		})
	}
}
