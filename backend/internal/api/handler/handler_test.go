package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/CM6156/CoilmasterThailand/backend/config"
	"github.com/CM6156/CoilmasterThailand/backend/internal/api/middleware"
	"github.com/CM6156/CoilmasterThailand/backend/internal/dto"
	"github.com/CM6156/CoilmasterThailand/backend/internal/i18n"
	"github.com/CM6156/CoilmasterThailand/backend/internal/service"
	apperrors "github.com/CM6156/CoilmasterThailand/backend/pkg/errors"
	"github.com/CM6156/CoilmasterThailand/backend/pkg/jwt"
	"github.com/CM6156/CoilmasterThailand/backend/pkg/response"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// ═══════════════════════════════════════════════════════════
// Mock Services
// ═══════════════════════════════════════════════════════════

// ── Mock AuthService ──

type mockAuthService struct {
	loginResult  *dto.LoginResult
	loginErr     error
	loginMeta    dto.SessionMeta
	signupResult *dto.UserResponse
	signupErr    error
	logoutToken  string
	logoutErr    error
}

func (m *mockAuthService) Login(_ context.Context, _ *dto.LoginRequest, meta dto.SessionMeta) (*dto.LoginResult, error) {
	m.loginMeta = meta
	return m.loginResult, m.loginErr
}
func (m *mockAuthService) Signup(_ context.Context, _ *dto.SignupRequest) (*dto.UserResponse, error) {
	return m.signupResult, m.signupErr
}
func (m *mockAuthService) Logout(_ context.Context, token string) error {
	m.logoutToken = token
	return m.logoutErr
}
func (m *mockAuthService) Authenticate(_ context.Context, _ string) (*jwt.Claims, error) {
	return nil, service.ErrSessionInvalid
}

// ── Mock UserService ──

type mockUserService struct {
	profile   *dto.UserResponse
	err       error
	list      []dto.UserResponse
	updatedID string
}

func (m *mockUserService) GetProfile(_ context.Context, _ string) (*dto.UserResponse, error) {
	return m.profile, m.err
}
func (m *mockUserService) List(_ context.Context) ([]dto.UserResponse, error) {
	return m.list, m.err
}
func (m *mockUserService) UpdateProfile(_ context.Context, id string, _ *dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	m.updatedID = id
	return m.profile, m.err
}

// ── Mock CustomerService ──

type mockCustomerService struct {
	list      []dto.CustomerResponse
	created   *dto.CustomerResponse
	err       error
	lastActor string
}

func (m *mockCustomerService) List(_ context.Context) ([]dto.CustomerResponse, error) {
	return m.list, m.err
}
func (m *mockCustomerService) Create(_ context.Context, _ *dto.CreateCustomerRequest, actor string) (*dto.CustomerResponse, error) {
	m.lastActor = actor
	return m.created, m.err
}

// ── Mock ProductService ──

type mockProductService struct {
	list          []dto.ProductResponse
	created       *dto.ProductResponse
	shipping      *dto.ShippingResponse
	err           error
	lastProductID string
}

func (m *mockProductService) List(_ context.Context) ([]dto.ProductResponse, error) {
	return m.list, m.err
}
func (m *mockProductService) Create(_ context.Context, _ *dto.CreateProductRequest, _ string) (*dto.ProductResponse, error) {
	return m.created, m.err
}
func (m *mockProductService) UpdateShipping(_ context.Context, productID string, _ *dto.UpdateShippingRequest) (*dto.ShippingResponse, error) {
	m.lastProductID = productID
	return m.shipping, m.err
}

// ── Mock ProcessService ──

type mockProcessService struct {
	created *dto.ProcessResponse
	err     error
}

func (m *mockProcessService) List(_ context.Context) ([]dto.ProcessResponse, error) {
	return nil, m.err
}
func (m *mockProcessService) Create(_ context.Context, _ *dto.CreateProcessRequest, _ string) (*dto.ProcessResponse, error) {
	return m.created, m.err
}

// ── Mock NotificationService ──

type mockNotificationService struct {
	list    []dto.NotificationResponse
	created *dto.NotificationResponse
	err     error
}

func (m *mockNotificationService) List(_ context.Context) ([]dto.NotificationResponse, error) {
	return m.list, m.err
}
func (m *mockNotificationService) Create(_ context.Context, _ *dto.CreateNotificationRequest) (*dto.NotificationResponse, error) {
	return m.created, m.err
}
func (m *mockNotificationService) NotifyRegistration(context.Context, string, string, string) {}
func (m *mockNotificationService) NotifyStatusChange(context.Context, string, string)         {}

// ── Fake TranslationStore ──
// 处理器测试使用真实的 TranslationService，只替换底层存储

type fakeTranslationStore struct {
	values  map[string]string // "lang:key" → value
	failErr map[i18n.Language]error
}

func newFakeTranslationStore() *fakeTranslationStore {
	return &fakeTranslationStore{values: make(map[string]string), failErr: make(map[i18n.Language]error)}
}

func (f *fakeTranslationStore) ResolveMany(_ context.Context, keys []string, lang i18n.Language) map[string]string {
	out := make(map[string]string, len(keys))
	for _, k := range keys {
		if v, ok := f.values[string(lang)+":"+k]; ok {
			out[k] = v
			continue
		}
		out[k] = k
	}
	return out
}

func (f *fakeTranslationStore) Upsert(_ context.Context, key string, lang i18n.Language, value string) error {
	if err := f.failErr[lang]; err != nil {
		return err
	}
	f.values[string(lang)+":"+key] = value
	return nil
}

// ── Mock ExportService ──

type mockExportService struct {
	buf      *bytes.Buffer
	ics      []byte
	filename string
	err      error
	lang     i18n.Language
}

func (m *mockExportService) ProductsXLSX(_ context.Context, lang i18n.Language) (*bytes.Buffer, string, error) {
	m.lang = lang
	return m.buf, m.filename, m.err
}
func (m *mockExportService) ShippingICS(_ context.Context, lang i18n.Language) ([]byte, string, error) {
	m.lang = lang
	return m.ics, m.filename, m.err
}

// ═══════════════════════════════════════════════════════════
// Test Helpers
// ═══════════════════════════════════════════════════════════

func testFailer() *response.Failer {
	return response.NewFailer(nil, zap.NewNop())
}

func testAuthConfig() config.AuthConfig {
	return config.AuthConfig{
		SessionSecret: "test-secret-key-for-unit-testing-2026",
		SessionTTL:    7 * 24 * time.Hour,
		Cookie:        config.CookieConfig{Secure: true, SameSite: "Lax"},
	}
}

func setAuth(c *gin.Context) {
	c.Set("user_id", "test-user-id")
	c.Set("username", "tester")
	c.Set("role", "admin")
}

// newEngine 注册单个路由，withAuth 时模拟 SessionAuth 注入的上下文
func newEngine(method, path string, withAuth bool, h gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(sessions.Sessions(middleware.SessionName, cookie.NewStore([]byte("test-session-secret-0123456789"))))
	r.Use(middleware.Language(i18n.Korean))
	if withAuth {
		r.Use(func(c *gin.Context) {
			setAuth(c)
			c.Next()
		})
	}
	r.Handle(method, path, h)
	return r
}

func jsonBody(v interface{}) io.Reader {
	b, _ := json.Marshal(v)
	return bytes.NewReader(b)
}

func doJSON(r *gin.Engine, method, path string, body io.Reader) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func parseResponse(w *httptest.ResponseRecorder) response.Response {
	var resp response.Response
	json.Unmarshal(w.Body.Bytes(), &resp)
	return resp
}

func findCookie(w *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// ═══════════════════════════════════════════════════════════
// AuthHandler Tests
// ═══════════════════════════════════════════════════════════

func TestAuthHandler_Login_Success(t *testing.T) {
	mock := &mockAuthService{
		loginResult: &dto.LoginResult{
			Token:     "session-token-value",
			ExpiresIn: 7 * 24 * 3600,
			User:      dto.UserResponse{ID: "user-1", Username: "alice", Role: "user"},
		},
	}
	h := NewAuthHandler(mock, &mockUserService{}, testAuthConfig(), testFailer())
	r := newEngine(http.MethodPost, "/auth/login", false, h.Login)

	w := doJSON(r, http.MethodPost, "/auth/login", jsonBody(dto.LoginRequest{Username: "alice", Password: "secret1"}))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if strings.Contains(w.Body.String(), "session-token-value") {
		t.Error("令牌不应出现在响应体中")
	}
	if !strings.Contains(w.Body.String(), `"username":"alice"`) {
		t.Errorf("响应体应包含用户信息: %s", w.Body.String())
	}

	session := findCookie(w, middleware.SessionCookie)
	if session == nil {
		t.Fatal("expected session-token cookie to be set")
	}
	if session.Value != "session-token-value" || !session.HttpOnly || !session.Secure {
		t.Errorf("session-token cookie 属性不符: %+v", session)
	}
	if session.MaxAge != 7*24*3600 {
		t.Errorf("expected Max-Age 7 days, got %d", session.MaxAge)
	}
	if session.SameSite != http.SameSiteLaxMode {
		t.Errorf("expected SameSite=Lax, got %v", session.SameSite)
	}

	uid := findCookie(w, userIDCookie)
	if uid == nil || uid.Value != "user-1" || uid.HttpOnly {
		t.Errorf("user-id cookie 应可被脚本读取且值为 user-1: %+v", uid)
	}
	if mock.loginMeta.IP == "" {
		t.Error("应记录客户端 IP")
	}
}

func TestAuthHandler_Login_BadJSON(t *testing.T) {
	h := NewAuthHandler(&mockAuthService{}, &mockUserService{}, testAuthConfig(), testFailer())
	r := newEngine(http.MethodPost, "/auth/login", false, h.Login)

	w := doJSON(r, http.MethodPost, "/auth/login", bytes.NewReader([]byte("invalid json")))

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
	if resp := parseResponse(w); resp.Code != service.ErrMissingCredentials.Code {
		t.Errorf("expected code %d, got %d", service.ErrMissingCredentials.Code, resp.Code)
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	mock := &mockAuthService{loginErr: service.ErrInvalidCredentials}
	h := NewAuthHandler(mock, &mockUserService{}, testAuthConfig(), testFailer())
	r := newEngine(http.MethodPost, "/auth/login", false, h.Login)

	w := doJSON(r, http.MethodPost, "/auth/login", jsonBody(dto.LoginRequest{Username: "alice", Password: "wrong"}))

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != service.ErrInvalidCredentials.Code {
		t.Errorf("expected error code %d, got %d", service.ErrInvalidCredentials.Code, resp.Code)
	}
	if findCookie(w, middleware.SessionCookie) != nil {
		t.Error("登录失败时不应设置 Cookie")
	}
}

func TestAuthHandler_Login_InternalErrorHidden(t *testing.T) {
	mock := &mockAuthService{loginErr: errors.New("pq: connection refused")}
	h := NewAuthHandler(mock, &mockUserService{}, testAuthConfig(), testFailer())
	r := newEngine(http.MethodPost, "/auth/login", false, h.Login)

	w := doJSON(r, http.MethodPost, "/auth/login", jsonBody(dto.LoginRequest{Username: "alice", Password: "secret1"}))

	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", w.Code)
	}
	if strings.Contains(w.Body.String(), "connection refused") {
		t.Error("内部错误细节不应返回给客户端")
	}
}

func TestAuthHandler_Signup(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		expect int
	}{
		{"成功", nil, http.StatusCreated},
		{"用户名重复", service.ErrUsernameTaken, http.StatusConflict},
		{"密码过短", service.ErrPasswordTooShort, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &mockAuthService{signupResult: &dto.UserResponse{ID: "u-1", Username: "alice"}, signupErr: tt.err}
			h := NewAuthHandler(mock, &mockUserService{}, testAuthConfig(), testFailer())
			r := newEngine(http.MethodPost, "/auth/signup", false, h.Signup)

			w := doJSON(r, http.MethodPost, "/auth/signup", jsonBody(dto.SignupRequest{Username: "alice", Password: "secret1"}))
			if w.Code != tt.expect {
				t.Errorf("expected %d, got %d", tt.expect, w.Code)
			}
		})
	}
}

func TestAuthHandler_Logout_ClearsCookies(t *testing.T) {
	mock := &mockAuthService{}
	h := NewAuthHandler(mock, &mockUserService{}, testAuthConfig(), testFailer())
	r := newEngine(http.MethodPost, "/auth/logout", false, h.Logout)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: "tok"})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if mock.logoutToken != "tok" {
		t.Errorf("应吊销 Cookie 中的令牌，实际=%q", mock.logoutToken)
	}
	for _, name := range []string{middleware.SessionCookie, userIDCookie} {
		ck := findCookie(w, name)
		if ck == nil || ck.MaxAge >= 0 {
			t.Errorf("%s cookie 应被清除: %+v", name, ck)
		}
	}
}

func TestAuthHandler_Logout_WithoutSession(t *testing.T) {
	h := NewAuthHandler(&mockAuthService{}, &mockUserService{}, testAuthConfig(), testFailer())
	r := newEngine(http.MethodPost, "/auth/logout", false, h.Logout)

	w := doJSON(r, http.MethodPost, "/auth/logout", nil)
	if w.Code != http.StatusOK {
		t.Errorf("已登出时同样应返回 200，实际 %d", w.Code)
	}
}

func TestAuthHandler_Me(t *testing.T) {
	users := &mockUserService{profile: &dto.UserResponse{ID: "test-user-id", Username: "tester"}}
	h := NewAuthHandler(&mockAuthService{}, users, testAuthConfig(), testFailer())

	r := newEngine(http.MethodGet, "/auth/me", true, h.Me)
	w := doJSON(r, http.MethodGet, "/auth/me", nil)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"username":"tester"`) {
		t.Errorf("expected 200 with profile, got %d %s", w.Code, w.Body.String())
	}

	r = newEngine(http.MethodGet, "/auth/me", false, h.Me)
	w = doJSON(r, http.MethodGet, "/auth/me", nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("未认证期望 401，实际 %d", w.Code)
	}
}

// ═══════════════════════════════════════════════════════════
// Domain Handler Tests
// ═══════════════════════════════════════════════════════════

func TestCustomerHandler_Create(t *testing.T) {
	tests := []struct {
		name   string
		body   interface{}
		err    error
		expect int
		code   int
	}{
		{"成功", dto.CreateCustomerRequest{Name: "Acme"}, nil, http.StatusCreated, 0},
		{"名称缺失", map[string]string{}, nil, http.StatusBadRequest, service.ErrCustomerNameRequired.Code},
		{"名称重复", dto.CreateCustomerRequest{Name: "Acme"}, service.ErrCustomerExists, http.StatusConflict, service.ErrCustomerExists.Code},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &mockCustomerService{created: &dto.CustomerResponse{ID: "c-1", Name: "Acme"}, err: tt.err}
			h := NewCustomerHandler(mock, testFailer())
			r := newEngine(http.MethodPost, "/customers", true, h.Create)

			w := doJSON(r, http.MethodPost, "/customers", jsonBody(tt.body))
			if w.Code != tt.expect {
				t.Fatalf("expected %d, got %d", tt.expect, w.Code)
			}
			if resp := parseResponse(w); resp.Code != tt.code {
				t.Errorf("expected code %d, got %d", tt.code, resp.Code)
			}
			if tt.expect == http.StatusCreated && mock.lastActor != "tester" {
				t.Errorf("操作人应为当前用户，实际=%q", mock.lastActor)
			}
		})
	}
}

func TestCustomerHandler_List(t *testing.T) {
	mock := &mockCustomerService{list: []dto.CustomerResponse{{ID: "c-1", Name: "삼성전자", ProductCount: 1}}}
	h := NewCustomerHandler(mock, testFailer())
	r := newEngine(http.MethodGet, "/customers", true, h.List)

	w := doJSON(r, http.MethodGet, "/customers", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body struct {
		Data struct {
			List []dto.CustomerResponse `json:"list"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if len(body.Data.List) != 1 || body.Data.List[0].Name != "삼성전자" {
		t.Errorf("列表内容不符: %+v", body.Data.List)
	}
}

func TestProductHandler_UpdateShipping(t *testing.T) {
	mock := &mockProductService{shipping: &dto.ShippingResponse{Status: "in_transit"}}
	h := NewProductHandler(mock, testFailer())
	r := newEngine(http.MethodPut, "/products/:id/shipping", true, h.UpdateShipping)

	w := doJSON(r, http.MethodPut, "/products/p-1/shipping", jsonBody(dto.UpdateShippingRequest{Status: "in_transit"}))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if mock.lastProductID != "p-1" {
		t.Errorf("expected product p-1, got %q", mock.lastProductID)
	}

	mock.err = service.ErrProductNotFound
	w = doJSON(r, http.MethodPut, "/products/missing/shipping", jsonBody(dto.UpdateShippingRequest{Status: "arrived"}))
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

func TestProcessHandler_Create_DuplicateOrder(t *testing.T) {
	mock := &mockProcessService{err: service.ErrProcessOrderExists}
	h := NewProcessHandler(mock, testFailer())
	r := newEngine(http.MethodPost, "/processes", true, h.Create)

	w := doJSON(r, http.MethodPost, "/processes", jsonBody(dto.CreateProcessRequest{Name: "Cut", ProductID: "p-1", ProcessOrder: 1}))
	if w.Code != http.StatusConflict {
		t.Errorf("expected 409, got %d", w.Code)
	}
}

func TestNotificationHandler(t *testing.T) {
	mock := &mockNotificationService{
		list:    []dto.NotificationResponse{{ID: "n-1", Message: "hello", Type: "info"}},
		created: &dto.NotificationResponse{ID: "n-2", Message: "hi", Type: "info"},
	}
	h := NewNotificationHandler(mock, testFailer())

	r := newEngine(http.MethodGet, "/notifications", true, h.List)
	if w := doJSON(r, http.MethodGet, "/notifications", nil); w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}

	r = newEngine(http.MethodPost, "/notifications", true, h.Create)
	w := doJSON(r, http.MethodPost, "/notifications", jsonBody(map[string]string{}))
	if w.Code != http.StatusBadRequest {
		t.Errorf("空消息期望 400，实际 %d", w.Code)
	}
	w = doJSON(r, http.MethodPost, "/notifications", jsonBody(dto.CreateNotificationRequest{Message: "hi"}))
	if w.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", w.Code)
	}
}

func TestCostHandler_Calculate(t *testing.T) {
	h := NewCostHandler(testFailer())
	r := newEngine(http.MethodPost, "/costs/calculate", true, h.Calculate)

	body := strings.NewReader(`{"labor_cost":1000,"equipment_cost":"500","material_cost":300,"daily_production":10}`)
	w := doJSON(r, http.MethodPost, "/costs/calculate", body)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var out struct {
		Data dto.CostCalculateResponse `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	if out.Data.ManufacturingCost != 180 {
		t.Errorf("expected 180, got %v", out.Data.ManufacturingCost)
	}

	w = doJSON(r, http.MethodPost, "/costs/calculate", strings.NewReader(`{"labor_cost":"abc","daily_production":0}`))
	if w.Code != http.StatusOK {
		t.Errorf("非数字输入按 0 处理，期望 200，实际 %d", w.Code)
	}
}

// ═══════════════════════════════════════════════════════════
// TranslationHandler Tests
// ═══════════════════════════════════════════════════════════

type mapResponse struct {
	Code    int               `json:"code"`
	Message string            `json:"message"`
	Data    map[string]string `json:"data"`
}

func parseMapResponse(t *testing.T, w *httptest.ResponseRecorder) mapResponse {
	t.Helper()
	var resp mapResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("解析响应失败: %v, body=%s", err, w.Body.String())
	}
	return resp
}

func TestTranslationHandler_Get(t *testing.T) {
	store := newFakeTranslationStore()
	store.values["en:home"] = "Home"
	h := NewTranslationHandler(service.NewTranslationService(store), testFailer())
	r := newEngine(http.MethodPost, "/translations", false, h.Get)

	w := doJSON(r, http.MethodPost, "/translations", strings.NewReader(`{"keys":["home","missing"],"language":"en"}`))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	resp := parseMapResponse(t, w)
	if len(resp.Data) != 2 || resp.Data["home"] != "Home" || resp.Data["missing"] != "missing" {
		t.Errorf("data 应直接是 {key: text}，实际: %s", w.Body.String())
	}

	w = doJSON(r, http.MethodPost, "/translations", strings.NewReader(`{"keys":["home"],"language":"fr"}`))
	if w.Code != http.StatusBadRequest {
		t.Errorf("不支持的语言期望 400，实际 %d", w.Code)
	}
	if resp := parseResponse(w); resp.Code != i18n.ErrInvalidLanguage.Code {
		t.Errorf("expected code %d, got %d", i18n.ErrInvalidLanguage.Code, resp.Code)
	}
}

func TestTranslationHandler_Get_KeysRequired(t *testing.T) {
	h := NewTranslationHandler(service.NewTranslationService(newFakeTranslationStore()), testFailer())
	r := newEngine(http.MethodPost, "/translations", false, h.Get)

	tests := []struct {
		name string
		body string
	}{
		{"缺少 keys", `{"language":"en"}`},
		{"keys 不是数组", `{"keys":"home","language":"en"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(r, http.MethodPost, "/translations", strings.NewReader(tt.body))
			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", w.Code)
			}
			resp := parseResponse(w)
			if resp.Code != service.ErrTranslationKeysRequired.Code {
				t.Errorf("expected code %d, got %d", service.ErrTranslationKeysRequired.Code, resp.Code)
			}
			if resp.Message != "번역 키 배열이 필요합니다" {
				t.Errorf("提示不符: %q", resp.Message)
			}
		})
	}
}

func TestTranslationHandler_Upsert(t *testing.T) {
	store := newFakeTranslationStore()
	h := NewTranslationHandler(service.NewTranslationService(store), testFailer())
	r := newEngine(http.MethodPut, "/translations", true, h.Upsert)

	w := doJSON(r, http.MethodPut, "/translations", strings.NewReader(`{"key":"home","values":{"ko":"홈","th":"หน้าแรก","en":"Home"}}`))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	resp := parseMapResponse(t, w)
	for _, lang := range []string{"ko", "th", "en"} {
		if resp.Data[lang] != "ok" {
			t.Errorf("%s 期望 ok，实际 %q", lang, resp.Data[lang])
		}
	}
	if store.values["th:home"] != "หน้าแรก" || store.values["en:home"] != "Home" {
		t.Errorf("三种语言都应写入: %v", store.values)
	}
}

func TestTranslationHandler_Upsert_PartialValues(t *testing.T) {
	store := newFakeTranslationStore()
	store.failErr[i18n.Thai] = i18n.ErrEmptyValue
	h := NewTranslationHandler(service.NewTranslationService(store), testFailer())
	r := newEngine(http.MethodPut, "/translations", true, h.Upsert)

	w := doJSON(r, http.MethodPut, "/translations", strings.NewReader(`{"key":"arrived","values":{"en":"Arrived","th":"<b></b>"}}`))
	if w.Code != http.StatusOK {
		t.Fatalf("部分成功期望 200，实际 %d", w.Code)
	}
	resp := parseMapResponse(t, w)
	if len(resp.Data) != 2 {
		t.Fatalf("只应返回提供的语言: %v", resp.Data)
	}
	if resp.Data["en"] != "ok" {
		t.Errorf("en 期望 ok，实际 %q", resp.Data["en"])
	}
	if resp.Data["th"] != i18n.ErrEmptyValue.Message {
		t.Errorf("th 应返回错误提示，实际 %q", resp.Data["th"])
	}
	if _, ok := store.values["ko:arrived"]; ok {
		t.Error("未提供的 ko 不应写入")
	}
}

func TestTranslationHandler_Upsert_Errors(t *testing.T) {
	store := newFakeTranslationStore()
	h := NewTranslationHandler(service.NewTranslationService(store), testFailer())
	r := newEngine(http.MethodPut, "/translations", true, h.Upsert)

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantCode   int
	}{
		{"没有任何值", `{"key":"home","values":{}}`, http.StatusBadRequest, service.ErrTranslationValuesRequired.Code},
		{"缺少 values", `{"key":"home"}`, http.StatusBadRequest, service.ErrTranslationValuesRequired.Code},
		{"缺少 key", `{"values":{"en":"Home"}}`, http.StatusBadRequest, i18n.ErrEmptyKey.Code},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(r, http.MethodPut, "/translations", strings.NewReader(tt.body))
			if w.Code != tt.wantStatus {
				t.Fatalf("expected %d, got %d", tt.wantStatus, w.Code)
			}
			if resp := parseResponse(w); resp.Code != tt.wantCode {
				t.Errorf("expected code %d, got %d", tt.wantCode, resp.Code)
			}
		})
	}

	// 全部语言写入失败时按错误类别返回，不暴露细节
	store.failErr[i18n.English] = apperrors.ErrInternal.Wrap(errors.New("write failed"))
	w := doJSON(r, http.MethodPut, "/translations", strings.NewReader(`{"key":"home","values":{"en":"Home"}}`))
	if w.Code != http.StatusInternalServerError {
		t.Errorf("全部失败期望 500，实际 %d", w.Code)
	}
	if strings.Contains(w.Body.String(), "write failed") {
		t.Errorf("不应暴露内部错误: %s", w.Body.String())
	}
}

func TestTranslationHandler_SetLanguage(t *testing.T) {
	h := NewTranslationHandler(service.NewTranslationService(newFakeTranslationStore()), testFailer())
	r := newEngine(http.MethodPut, "/i18n/language", false, h.SetLanguage)

	w := doJSON(r, http.MethodPut, "/i18n/language", jsonBody(dto.SetLanguageRequest{Language: "th"}))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if findCookie(w, middleware.SessionName) == nil {
		t.Error("语言选择应写入会话 Cookie")
	}

	w = doJSON(r, http.MethodPut, "/i18n/language", jsonBody(dto.SetLanguageRequest{Language: "ja"}))
	if w.Code != http.StatusBadRequest {
		t.Errorf("不支持的语言期望 400，实际 %d", w.Code)
	}
	if resp := parseResponse(w); resp.Code != i18n.ErrInvalidLanguage.Code {
		t.Errorf("expected code %d, got %d", i18n.ErrInvalidLanguage.Code, resp.Code)
	}
}

// ═══════════════════════════════════════════════════════════
// ExportHandler Tests
// ═══════════════════════════════════════════════════════════

func TestExportHandler_Products(t *testing.T) {
	mock := &mockExportService{buf: bytes.NewBufferString("xlsx-bytes"), filename: "products_20261016.xlsx"}
	h := NewExportHandler(mock, testFailer())
	r := newEngine(http.MethodGet, "/export/products", true, h.Products)

	w := doJSON(r, http.MethodGet, "/export/products?lang=th", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != contentTypeXLSX {
		t.Errorf("unexpected Content-Type %q", ct)
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "products_20261016.xlsx") {
		t.Errorf("unexpected Content-Disposition %q", cd)
	}
	if mock.lang != i18n.Thai {
		t.Errorf("应按请求语言导出，实际=%s", mock.lang)
	}
	if w.Body.String() != "xlsx-bytes" {
		t.Errorf("unexpected body %q", w.Body.String())
	}
}

func TestExportHandler_Shipping(t *testing.T) {
	mock := &mockExportService{ics: []byte("BEGIN:VCALENDAR"), filename: "shipping_20261016.ics"}
	h := NewExportHandler(mock, testFailer())
	r := newEngine(http.MethodGet, "/export/shipping.ics", true, h.Shipping)

	w := doJSON(r, http.MethodGet, "/export/shipping.ics", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.HasPrefix(w.Header().Get("Content-Type"), "text/calendar") {
		t.Errorf("unexpected Content-Type %q", w.Header().Get("Content-Type"))
	}

	mock.err = service.ErrExportGenerateFail
	w = doJSON(r, http.MethodGet, "/export/shipping.ics", nil)
	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", w.Code)
	}
}

// ═══════════════════════════════════════════════════════════
// UserHandler Tests
// ═══════════════════════════════════════════════════════════

func TestUserHandler_UpdateMe(t *testing.T) {
	mock := &mockUserService{profile: &dto.UserResponse{ID: "test-user-id", Nickname: "앨리스"}}
	h := NewUserHandler(mock, testFailer())
	r := newEngine(http.MethodPut, "/users/me", true, h.UpdateMe)

	nick := "앨리스"
	w := doJSON(r, http.MethodPut, "/users/me", jsonBody(dto.UpdateProfileRequest{Nickname: &nick}))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if mock.updatedID != "test-user-id" {
		t.Errorf("应修改当前用户，实际=%q", mock.updatedID)
	}

	mock.err = service.ErrEmailTaken
	w = doJSON(r, http.MethodPut, "/users/me", jsonBody(dto.UpdateProfileRequest{Nickname: &nick}))
	if w.Code != http.StatusConflict {
		t.Errorf("expected 409, got %d", w.Code)
	}
}

func TestBind_BodyTooLarge(t *testing.T) {
	h := NewCustomerHandler(&mockCustomerService{}, testFailer())
	r := gin.New()
	r.Use(middleware.BodyLimit(16))
	r.Use(func(c *gin.Context) { setAuth(c); c.Next() })
	r.POST("/customers", h.Create)

	w := doJSON(r, http.MethodPost, "/customers", strings.NewReader(`{"name":"`+strings.Repeat("a", 64)+`"}`))
	if resp := parseResponse(w); resp.Code != apperrors.ErrBodyTooLarge.Code {
		t.Errorf("expected code %d, got %d", apperrors.ErrBodyTooLarge.Code, resp.Code)
	}
}
