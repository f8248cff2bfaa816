package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Marcellinus08/UMKM-Tasikmalaya/internal/auth"
	"github.com/Marcellinus08/UMKM-Tasikmalaya/internal/domain/model"
	"github.com/Marcellinus08/UMKM-Tasikmalaya/internal/infrastructure/maps"
	"github.com/Marcellinus08/UMKM-Tasikmalaya/internal/logger"
	"github.com/Marcellinus08/UMKM-Tasikmalaya/internal/usecase"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var sampleUMKM = []model.UMKM{
	{ID: 1, Name: "Warung Nasi Ibu Ani", Category: "Kuliner", District: "Tawang", Lat: -7.3287, Lng: 108.2145},
	{ID: 2, Name: "Batik Tasik Kreasi", Category: "Fashion", District: "Cihideung", Lat: -7.3301, Lng: 108.2210},
}

type stubUMKMUseCase struct {
	listErr   error
	lastQuery model.UMKMListQuery
	lastInput *model.UMKMInput
}

func (s *stubUMKMUseCase) List(ctx context.Context, query model.UMKMListQuery) (*model.PaginatedUMKM, error) {
	s.lastQuery = query
	if s.listErr != nil {
		return nil, s.listErr
	}
	return &model.PaginatedUMKM{
		Data:       sampleUMKM,
		Pagination: model.Pagination{Page: max(query.Page, 1), Limit: max(query.Limit, len(sampleUMKM)), Total: 2, TotalPages: 1},
	}, nil
}

func (s *stubUMKMUseCase) GetDetail(ctx context.Context, id int64) (*model.UMKMDetail, error) {
	if id != 1 {
		return nil, fmt.Errorf("umkm %d: %w", id, model.ErrUMKMNotFound)
	}
	return &model.UMKMDetail{UMKM: sampleUMKM[0], IsOpen: true}, nil
}

func (s *stubUMKMUseCase) Nearby(ctx context.Context, origin model.LatLng, radiusKm float64, limit int) ([]model.NearbyUMKM, error) {
	return []model.NearbyUMKM{{UMKM: sampleUMKM[0], DistanceKm: 0}}, nil
}

func (s *stubUMKMUseCase) Create(ctx context.Context, input *model.UMKMInput) (*model.UMKM, error) {
	s.lastInput = input
	if err := input.Validate(); err != nil {
		return nil, err
	}
	return &model.UMKM{ID: 3, Name: input.Name}, nil
}

func (s *stubUMKMUseCase) Update(ctx context.Context, id int64, input *model.UMKMInput) (*model.UMKM, error) {
	s.lastInput = input
	return &model.UMKM{ID: id, Name: input.Name}, nil
}

type stubAdminUseCase struct {
	issuer *auth.TokenIssuer
}

func (s *stubAdminUseCase) Login(ctx context.Context, password string) (*usecase.TokenResult, error) {
	if password != "admin123" {
		return nil, model.ErrUnauthorized
	}
	token, exp, err := s.issuer.IssueAdmin()
	return &usecase.TokenResult{Token: token, Role: auth.RoleAdmin, ExpiresAt: exp}, err
}

func (s *stubAdminUseCase) VerifyEditPassword(ctx context.Context, id int64, password string) (*usecase.TokenResult, error) {
	if password != "rahasia" {
		return nil, model.ErrUnauthorized
	}
	token, exp, err := s.issuer.IssueEditor(id)
	return &usecase.TokenResult{Token: token, Role: auth.RoleEditor, UMKMID: id, ExpiresAt: exp}, err
}

type stubImageUseCase struct {
	calls int
	err   error
}

func (s *stubImageUseCase) UploadImage(ctx context.Context, id int64, filename string, data []byte) (*usecase.ImageUploadResult, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	url := fmt.Sprintf("https://cdn.test/umkm/%d-1.png", id)
	return &usecase.ImageUploadResult{ImageURL: url, Data: &model.UMKM{ID: id, Image: &url}}, nil
}

type stubStatsUseCase struct{}

func (stubStatsUseCase) Dashboard(ctx context.Context) (*model.DashboardStats, error) {
	return &model.DashboardStats{TotalUMKM: 2, TotalCategories: 2, TotalDistricts: 2, PopularCategory: "Fashion"}, nil
}

func (stubStatsUseCase) Statistics(ctx context.Context) (*model.Statistics, error) {
	return nil, errors.New("backend down")
}

func (stubStatsUseCase) Categories(ctx context.Context) ([]model.CategoryInfo, error) {
	return []model.CategoryInfo{{Name: "Fashion", Count: 1}, {Name: "Kuliner", Count: 1}}, nil
}

type stubMapUseCase struct {
	lastQuery model.MarkerQuery
}

func (s *stubMapUseCase) Markers(ctx context.Context, query model.MarkerQuery) (*model.MarkerResponse, error) {
	s.lastQuery = query
	return &model.MarkerResponse{Mode: model.MarkerModeCategory, Markers: []model.Marker{}}, nil
}

func (s *stubMapUseCase) TileLayer(style string, dark bool) model.TileLayer {
	return maps.ResolveTileLayer(style, dark)
}

func (s *stubMapUseCase) TileStyles() []model.TileStyle {
	return maps.TileStyles()
}

type stubNavigationUseCase struct{}

func (stubNavigationUseCase) Route(ctx context.Context, req model.RouteRequest) (*model.Route, error) {
	return &model.Route{
		Coordinates: [][2]float64{{req.From.Lat, req.From.Lng}, {req.To.Lat, req.To.Lng}},
		Fallback:    true,
		Source:      model.RouteSourceStraightLine,
	}, nil
}

type stubContactUseCase struct{}

func (stubContactUseCase) Submit(ctx context.Context, req *model.ContactRequest) (*model.ContactResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	msg := req.ToMessage()
	msg.ID = 1
	return &model.ContactResponse{Success: true, Message: model.ContactSuccessMessage, Data: msg}, nil
}

func (stubContactUseCase) List(ctx context.Context) ([]model.ContactMessage, error) {
	return []model.ContactMessage{}, nil
}

type stubHealth struct{ err error }

func (s stubHealth) HealthCheck(ctx context.Context) error { return s.err }

type testServer struct {
	router *gin.Engine
	issuer *auth.TokenIssuer
	umkm   *stubUMKMUseCase
	image  *stubImageUseCase
	maps   *stubMapUseCase
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	issuer, err := auth.NewTokenIssuer("handler-secret", time.Hour)
	require.NoError(t, err)

	s := &testServer{
		issuer: issuer,
		umkm:   &stubUMKMUseCase{},
		image:  &stubImageUseCase{},
		maps:   &stubMapUseCase{},
	}
	lggr := logger.Test(t)
	admin := &stubAdminUseCase{issuer: issuer}
	s.router = NewRouter(Handlers{
		Health:     NewHealthHandler(stubHealth{}),
		UMKM:       NewUMKMHandler(s.umkm, admin, lggr),
		Image:      NewImageHandler(s.image),
		Stats:      NewStatsHandler(stubStatsUseCase{}),
		Map:        NewMapHandler(s.maps),
		Navigation: NewNavigationHandler(stubNavigationUseCase{}),
		Contact:    NewContactHandler(stubContactUseCase{}),
		Admin:      NewAdminHandler(admin),
	}, issuer, "*", lggr)
	return s
}

func (s *testServer) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func TestUMKMHandler_List(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/api/umkm?category=Kuliner&search=nasi", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var plain []model.UMKM
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &plain))
	assert.Len(t, plain, 2)
	assert.False(t, s.umkm.lastQuery.Paginated)
	assert.Equal(t, "Kuliner", s.umkm.lastQuery.Category)
	assert.Equal(t, "nasi", s.umkm.lastQuery.Search)

	w = s.do(t, http.MethodGet, "/api/umkm?page=2&limit=9&sort=name", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var paged model.PaginatedUMKM
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &paged))
	assert.Equal(t, 2, paged.Pagination.Page)
	assert.Equal(t, model.UMKMListQuery{Page: 2, Limit: 9, Sort: "name", Paginated: true}, s.umkm.lastQuery)

	w = s.do(t, http.MethodGet, "/api/umkm?limit=3", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	plain = nil
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &plain))
	assert.False(t, s.umkm.lastQuery.Paginated)

	w = s.do(t, http.MethodGet, "/api/umkm?page=1", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, model.UMKMListQuery{Page: 1, Limit: model.DefaultLimit, Paginated: true}, s.umkm.lastQuery)

	w = s.do(t, http.MethodGet, "/api/umkm?bbox=108.2,-7.4,108.3,-7.3", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, s.umkm.lastQuery.Bounds)
	assert.Equal(t, 108.2, s.umkm.lastQuery.Bounds.MinLng)

	w = s.do(t, http.MethodGet, "/api/umkm?bbox=1,2,3", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, http.MethodGet, "/api/umkm?page=abc", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUMKMHandler_ListDegradesToEmpty(t *testing.T) {
	s := newTestServer(t)
	s.umkm.listErr = errors.New("supabase unreachable")

	w := s.do(t, http.MethodGet, "/api/umkm", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	w = s.do(t, http.MethodGet, "/api/umkm?page=1", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var paged model.PaginatedUMKM
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &paged))
	assert.Empty(t, paged.Data)
	assert.Equal(t, 0, paged.Pagination.Total)
}

func TestUMKMHandler_GetDetail(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/api/umkm/1", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"isOpen":true`)
	assert.Contains(t, w.Body.String(), `"no":1`)

	w = s.do(t, http.MethodGet, "/api/umkm/9", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = s.do(t, http.MethodGet, "/api/umkm/abc", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUMKMHandler_Nearby(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/api/umkm/nearby?lat=-7.33&lng=108.22&radius=1", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = s.do(t, http.MethodGet, "/api/umkm/nearby", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, http.MethodGet, "/api/umkm/nearby?lat=-7.33&lng=108.22&radius=x", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	for _, radius := range []string{"NaN", "Inf", "-Inf"} {
		w = s.do(t, http.MethodGet, "/api/umkm/nearby?lat=-7.33&lng=108.22&radius="+radius, "", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code, radius)
	}

	w = s.do(t, http.MethodGet, "/api/umkm?bbox=NaN,NaN,NaN,NaN", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdminFlow(t *testing.T) {
	s := newTestServer(t)
	input := model.UMKMInput{Name: "Toko Baru", Category: "Kuliner", District: "Tawang", Address: "Jl. Baru"}

	w := s.do(t, http.MethodPost, "/api/umkm", "", input)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = s.do(t, http.MethodPost, "/api/admin/login", "", passwordRequest{Password: "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = s.do(t, http.MethodPost, "/api/admin/login", "", passwordRequest{Password: "admin123"})
	require.Equal(t, http.StatusOK, w.Code)
	var login struct {
		Data usecase.TokenResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &login))
	require.NotEmpty(t, login.Data.Token)

	w = s.do(t, http.MethodPost, "/api/umkm", login.Data.Token, input)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"Toko Baru"`)

	w = s.do(t, http.MethodPost, "/api/umkm", login.Data.Token, model.UMKMInput{Name: "x"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, http.MethodGet, "/api/contact", login.Data.Token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestEditTokenFlow(t *testing.T) {
	s := newTestServer(t)
	input := model.UMKMInput{Name: "Batik Baru", Category: "Fashion", District: "Cihideung", Address: "Jl. HZ"}

	w := s.do(t, http.MethodPost, "/api/umkm/2/verify-password", "", passwordRequest{Password: "salah"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = s.do(t, http.MethodPost, "/api/umkm/2/verify-password", "", passwordRequest{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, http.MethodPost, "/api/umkm/2/verify-password", "", passwordRequest{Password: "rahasia"})
	require.Equal(t, http.StatusOK, w.Code)
	var verify struct {
		Data usecase.TokenResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &verify))
	token := verify.Data.Token

	w = s.do(t, http.MethodPut, "/api/umkm/2", token, input)
	assert.Equal(t, http.StatusOK, w.Code)

	w = s.do(t, http.MethodPut, "/api/umkm/1", token, input)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = s.do(t, http.MethodPost, "/api/umkm", token, input)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = s.do(t, http.MethodGet, "/api/contact", token, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func multipartUpload(t *testing.T, id string, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	if id != "" {
		require.NoError(t, mw.WriteField("id", id))
	}
	if content != nil {
		fw, err := mw.CreateFormFile("file", filename)
		require.NoError(t, err)
		_, err = fw.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return body, mw.FormDataContentType()
}

func (s *testServer) upload(t *testing.T, token, id, filename string, content []byte) *httptest.ResponseRecorder {
	t.Helper()
	body, contentType := multipartUpload(t, id, filename, content)
	req := httptest.NewRequest(http.MethodPost, "/api/umkm/update-image", body)
	req.Header.Set("Content-Type", contentType)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func TestImageHandler_UpdateImage(t *testing.T) {
	s := newTestServer(t)
	png := append([]byte("\x89PNG\r\n\x1a\n"), make([]byte, 16)...)
	editToken, _, err := s.issuer.IssueEditor(2)
	require.NoError(t, err)

	w := s.upload(t, "", "2", "a.png", png)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = s.upload(t, editToken, "2", "a.png", png)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"message":"Gambar berhasil diupload"`)
	assert.Contains(t, w.Body.String(), `"imageUrl":"https://cdn.test/umkm/2-1.png"`)

	w = s.upload(t, editToken, "1", "a.png", png)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = s.upload(t, editToken, "", "a.png", png)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), msgImageMissing)

	w = s.upload(t, editToken, "2", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), msgImageMissing)

	assert.Equal(t, 1, s.image.calls)
}

func TestImageHandler_ErrorMapping(t *testing.T) {
	tests := []struct {
		err      error
		wantCode int
		wantMsg  string
	}{
		{model.ErrNotAnImage, http.StatusBadRequest, msgNotAnImage},
		{model.ErrImageTooLarge, http.StatusBadRequest, msgImageTooLarge},
		{fmt.Errorf("%w: bucket full", model.ErrUploadFailed), http.StatusInternalServerError, "Gagal mengupload gambar"},
		{fmt.Errorf("%w: timeout", model.ErrSaveFailed), http.StatusInternalServerError, "Gagal menyimpan ke database"},
		{fmt.Errorf("umkm 2: %w", model.ErrUMKMNotFound), http.StatusNotFound, "UMKM tidak ditemukan"},
	}
	for _, tt := range tests {
		t.Run(tt.wantMsg, func(t *testing.T) {
			s := newTestServer(t)
			s.image.err = tt.err
			adminToken, _, err := s.issuer.IssueAdmin()
			require.NoError(t, err)

			w := s.upload(t, adminToken, "2", "a.txt", []byte("hello"))
			assert.Equal(t, tt.wantCode, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantMsg)
		})
	}
}

func TestImageHandler_TooLargeBody(t *testing.T) {
	s := newTestServer(t)
	adminToken, _, err := s.issuer.IssueAdmin()
	require.NoError(t, err)

	big := make([]byte, model.MaxImageSize+maxFormOverhead+1)
	w := s.upload(t, adminToken, "2", "big.png", big)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), msgImageTooLarge)
	assert.Zero(t, s.image.calls)
}

func TestContactHandler(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/api/contact", "", model.ContactRequest{
		FullName: "Siti", Email: "siti@example.com", Subject: "Halo", Message: "Pesan",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), model.ContactSuccessMessage)

	w = s.do(t, http.MethodPost, "/api/contact", "", model.ContactRequest{FullName: "Siti"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, model.ContactRequiredMessage, body["error"])

	w = s.do(t, http.MethodGet, "/api/contact", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestStatsHandlers(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/api/dashboard", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"popularCategory":"Fashion"`)

	w = s.do(t, http.MethodGet, "/api/statistics", "", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	w = s.do(t, http.MethodGet, "/api/categories", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"Kuliner"`)
}

func TestMapHandlers(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/api/map/markers?category=Kuliner&selected=3&navLat=-7.3&navLng=108.2", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Kuliner", s.maps.lastQuery.Category)
	assert.Equal(t, int64(3), s.maps.lastQuery.SelectedID)
	require.NotNil(t, s.maps.lastQuery.NavigationTarget)
	assert.Nil(t, s.maps.lastQuery.SelectedLocation)

	w = s.do(t, http.MethodGet, "/api/map/markers?lat=abc&lng=1", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, http.MethodGet, "/api/map/tiles?style=voyager&dark=true", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var tiles struct {
		Layer  model.TileLayer   `json:"layer"`
		Styles []model.TileStyle `json:"styles"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tiles))
	assert.Equal(t, "voyager", tiles.Layer.Style)
	assert.True(t, tiles.Layer.Dark)
	assert.Len(t, tiles.Styles, 5)
}

func TestNavigationHandler(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/api/navigation/route?fromLat=-7.33&fromLng=108.21&toLat=-7.32&toLng=108.22", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"fallback":true`)

	w = s.do(t, http.MethodGet, "/api/navigation/route?fromLat=-7.33&fromLng=108.21", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, http.MethodGet, "/api/navigation/route?fromLat=95&fromLng=108.21&toLat=-7.32&toLng=108.22", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHealthAndMiddleware(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/api/health", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Trace-ID"))
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))

	unhealthy := NewHealthHandler(stubHealth{err: errors.New("db down")})
	r := gin.New()
	r.GET("/h", unhealthy.Health)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/h", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "unhealthy"))
}

func TestImageHandler_UploadFailureShowsCause(t *testing.T) {
	for _, err := range []error{
		fmt.Errorf("%w: bucket full", model.ErrUploadFailed),
		fmt.Errorf("%w: %w", model.ErrUploadFailed, errors.New("bucket full")),
	} {
		s := newTestServer(t)
		s.image.err = err
		adminToken, _, issueErr := s.issuer.IssueAdmin()
		require.NoError(t, issueErr)

		w := s.upload(t, adminToken, "2", "a.png", []byte("hello"))
		require.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":"Gagal mengupload gambar: bucket full"}`, w.Body.String())
	}
}
