package router_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"people-pets-api/internal/adapters/storage"
	"people-pets-api/internal/adapters/storage/sqlite"
	"people-pets-api/internal/config"
	"people-pets-api/internal/router"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type backend struct {
	name string
	open func(t *testing.T) *storage.Store
}

func backends() []backend {
	return []backend{
		{"memory", func(t *testing.T) *storage.Store { return storage.NewMemory() }},
		{"sqlite", func(t *testing.T) *storage.Store {
			db, err := sqlite.OpenMemory(context.Background())
			require.NoError(t, err)
			s := storage.NewSQL(config.StoreSQLite, db, sqlite.Dialect{})
			t.Cleanup(func() { _ = s.Close() })
			return s
		}},
	}
}

func newServer(t *testing.T, store *storage.Store) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(router.NewRouter(router.Options{Store: store}))
	t.Cleanup(ts.Close)
	return ts
}

// doReq no sigue redirecciones para poder verificar los 301.
func doReq(t *testing.T, baseURL, method, path string, body any) (*http.Response, []byte) {
	t.Helper()

	var rdr io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		rdr = strings.NewReader(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		rdr = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	require.NoError(t, err)
	if rdr != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	client := &http.Client{
		CheckRedirect: func(*http.Request, []*http.Request) error { return http.ErrUseLastResponse },
	}
	resp, err := client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, raw
}

func decodeMap(t *testing.T, raw []byte) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(raw, &out), "body=%s", raw)
	return out
}

func createPerson(t *testing.T, baseURL string, payload map[string]any) int64 {
	t.Helper()
	resp, body := doReq(t, baseURL, http.MethodPost, "/people/", payload)
	require.Equal(t, http.StatusOK, resp.StatusCode, "body=%s", body)
	return int64(decodeMap(t, body)["id"].(float64))
}

func createPet(t *testing.T, baseURL string, payload map[string]any) int64 {
	t.Helper()
	resp, body := doReq(t, baseURL, http.MethodPost, "/pets/", payload)
	require.Equal(t, http.StatusOK, resp.StatusCode, "body=%s", body)
	return int64(decodeMap(t, body)["id"].(float64))
}

func TestHTTP_EndToEnd_PeopleAndPets(t *testing.T) {
	for _, b := range backends() {
		t.Run(b.name, func(t *testing.T) {
			ts := newServer(t, b.open(t))

			// 1) Crear persona
			resp, body := doReq(t, ts.URL, http.MethodPost, "/people/", map[string]any{
				"first_name": "Jesse", "last_name": "Sublett", "age": 67,
			})
			require.Equal(t, http.StatusOK, resp.StatusCode, "body=%s", body)
			assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
			assert.JSONEq(t, `{"id":1,"first_name":"Jesse","last_name":"Sublett","age":67}`, string(body))

			// 2) Crear mascota; el dueño viene embebido
			resp, body = doReq(t, ts.URL, http.MethodPost, "/pets/", map[string]any{
				"name": "Iggy", "age": 5, "owner": 1,
			})
			require.Equal(t, http.StatusOK, resp.StatusCode, "body=%s", body)
			assert.JSONEq(t, `{"id":1,"name":"Iggy","age":5,
				"owner":{"id":1,"first_name":"Jesse","last_name":"Sublett","age":67}}`, string(body))

			// 3) La persona lista sus mascotas con owner como id
			resp, body = doReq(t, ts.URL, http.MethodGet, "/people/1/", nil)
			require.Equal(t, http.StatusOK, resp.StatusCode)
			assert.JSONEq(t, `{"person":{"id":1,"first_name":"Jesse","last_name":"Sublett","age":67,
				"pets":[{"id":1,"name":"Iggy","age":5,"owner":1}]}}`, string(body))

			resp, body = doReq(t, ts.URL, http.MethodGet, "/people/", nil)
			require.Equal(t, http.StatusOK, resp.StatusCode)
			assert.JSONEq(t, `{"people":[{"id":1,"first_name":"Jesse","last_name":"Sublett","age":67,
				"pets":[{"id":1,"name":"Iggy","age":5,"owner":1}]}]}`, string(body))

			resp, body = doReq(t, ts.URL, http.MethodGet, "/pets/1/", nil)
			require.Equal(t, http.StatusOK, resp.StatusCode)
			assert.JSONEq(t, `{"pet":{"id":1,"name":"Iggy","age":5,
				"owner":{"id":1,"first_name":"Jesse","last_name":"Sublett","age":67}}}`, string(body))

			resp, body = doReq(t, ts.URL, http.MethodGet, "/pets/", nil)
			require.Equal(t, http.StatusOK, resp.StatusCode)
			assert.JSONEq(t, `{"pets":[{"id":1,"name":"Iggy","age":5,
				"owner":{"id":1,"first_name":"Jesse","last_name":"Sublett","age":67}}]}`, string(body))
		})
	}
}

func TestHTTP_PartialUpdates(t *testing.T) {
	for _, b := range backends() {
		t.Run(b.name, func(t *testing.T) {
			ts := newServer(t, b.open(t))
			jesse := createPerson(t, ts.URL, map[string]any{"first_name": "Jesse", "last_name": "Sublett", "age": 67})
			ann := createPerson(t, ts.URL, map[string]any{"first_name": "Ann", "last_name": "Lee"})
			iggy := createPet(t, ts.URL, map[string]any{"name": "Iggy", "age": 5, "owner": jesse})

			// PUT de instancia: solo cambia lo enviado
			resp, body := doReq(t, ts.URL, http.MethodPut, "/people/1/", map[string]any{"first_name": "JESSE"})
			require.Equal(t, http.StatusOK, resp.StatusCode, "body=%s", body)
			assert.JSONEq(t, `{"id":1,"first_name":"JESSE","last_name":"Sublett","age":67}`, string(body))

			// PUT de colección: id en el body; las keys desconocidas se ignoran
			resp, body = doReq(t, ts.URL, http.MethodPut, "/people/", map[string]any{"id": ann, "age": 30, "pets": []any{}})
			require.Equal(t, http.StatusOK, resp.StatusCode, "body=%s", body)
			assert.JSONEq(t, `{"id":2,"first_name":"Ann","last_name":"Lee","age":30}`, string(body))

			// body vacío: no cambia nada y devuelve el registro
			resp, body = doReq(t, ts.URL, http.MethodPut, "/people/1/", map[string]any{})
			require.Equal(t, http.StatusOK, resp.StatusCode, "body=%s", body)
			assert.Equal(t, "JESSE", decodeMap(t, body)["first_name"])

			// mover la mascota de dueño
			resp, body = doReq(t, ts.URL, http.MethodPut, "/pets/", map[string]any{"id": iggy, "owner": ann})
			require.Equal(t, http.StatusOK, resp.StatusCode, "body=%s", body)
			assert.JSONEq(t, `{"id":1,"name":"Iggy","age":5,
				"owner":{"id":2,"first_name":"Ann","last_name":"Lee","age":30}}`, string(body))

			resp, body = doReq(t, ts.URL, http.MethodPut, "/pets/1/", map[string]any{"age": 6})
			require.Equal(t, http.StatusOK, resp.StatusCode, "body=%s", body)
			assert.Equal(t, float64(6), decodeMap(t, body)["age"])
			assert.Equal(t, "Iggy", decodeMap(t, body)["name"])

			_, body = doReq(t, ts.URL, http.MethodGet, "/people/1/", nil)
			assert.JSONEq(t, `{"person":{"id":1,"first_name":"JESSE","last_name":"Sublett","age":67,"pets":[]}}`, string(body))
		})
	}
}

func TestHTTP_ValidationErrors(t *testing.T) {
	ts := newServer(t, storage.NewMemory())
	createPerson(t, ts.URL, map[string]any{"first_name": "Jesse", "last_name": "Sublett"})

	cases := []struct {
		name   string
		method string
		path   string
		body   any
		want   string
	}{
		{
			"missing required fields", http.MethodPost, "/people/", map[string]any{},
			`{"error":"validation failed","fields":[
				{"field":"first_name","message":"this field is required"},
				{"field":"last_name","message":"this field is required"}]}`,
		},
		{
			"name too long", http.MethodPost, "/people/",
			map[string]any{"first_name": strings.Repeat("a", 33), "last_name": "x"},
			`{"error":"validation failed","fields":[
				{"field":"first_name","message":"ensure this field has no more than 32 characters"}]}`,
		},
		{
			"wrong types are all reported", http.MethodPost, "/people/",
			`{"first_name": 1, "last_name": "x", "age": "old"}`,
			`{"error":"validation failed","fields":[
				{"field":"age","message":"must be an integer"},
				{"field":"first_name","message":"must be a string"}]}`,
		},
		{
			"null is rejected", http.MethodPut, "/people/1/", `{"age": null}`,
			`{"error":"validation failed","fields":[{"field":"age","message":"this field may not be null"}]}`,
		},
		{
			"blank patch", http.MethodPut, "/people/1/", map[string]any{"last_name": "   "},
			`{"error":"validation failed","fields":[{"field":"last_name","message":"this field may not be blank"}]}`,
		},
		{
			"collection put without id", http.MethodPut, "/people/", map[string]any{"age": 3},
			`{"error":"validation failed","fields":[{"field":"id","message":"this field is required"}]}`,
		},
		{
			"type errors and missing fields together", http.MethodPost, "/people/", `{"age":"x"}`,
			`{"error":"validation failed","fields":[
				{"field":"age","message":"must be an integer"},
				{"field":"first_name","message":"this field is required"},
				{"field":"last_name","message":"this field is required"}]}`,
		},
		{
			"age above int32", http.MethodPost, "/people/",
			map[string]any{"first_name": "A", "last_name": "B", "age": 3000000000},
			`{"error":"validation failed","fields":[
				{"field":"age","message":"ensure this value is less than or equal to 2147483647"}]}`,
		},
		{
			"pet age out of range", http.MethodPost, "/pets/",
			map[string]any{"name": "Iggy", "owner": 1, "age": int64(1) << 62},
			`{"error":"validation failed","fields":[
				{"field":"age","message":"ensure this value is less than or equal to 2147483647"}]}`,
		},
		{
			"patch age below int32", http.MethodPut, "/people/1/", map[string]any{"age": -3000000000},
			`{"error":"validation failed","fields":[
				{"field":"age","message":"ensure this value is greater than or equal to -2147483648"}]}`,
		},
		{
			"collection put reports id with other fields", http.MethodPut, "/pets/", map[string]any{"name": ""},
			`{"error":"validation failed","fields":[
				{"field":"name","message":"this field may not be blank"},
				{"field":"id","message":"this field is required"}]}`,
		},
		{
			"malformed json", http.MethodPost, "/people/", `{"first_name":`,
			`{"error":"invalid json"}`,
		},
		{
			"not an object", http.MethodPost, "/pets/", `[1,2]`,
			`{"error":"invalid json"}`,
		},
		{
			"pet without owner", http.MethodPost, "/pets/", map[string]any{"name": "Iggy"},
			`{"error":"validation failed","fields":[{"field":"owner","message":"this field is required"}]}`,
		},
		{
			"unknown owner", http.MethodPost, "/pets/", map[string]any{"name": "Iggy", "owner": 99},
			`{"error":"validation failed","fields":[{"field":"owner","message":"invalid pk \"99\" - person does not exist"}]}`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp, body := doReq(t, ts.URL, tc.method, tc.path, tc.body)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			assert.JSONEq(t, tc.want, string(body))
		})
	}

	// nada de lo anterior se persistió
	_, body := doReq(t, ts.URL, http.MethodGet, "/pets/", nil)
	assert.JSONEq(t, `{"pets":[]}`, string(body))
}

func TestHTTP_NotFound(t *testing.T) {
	ts := newServer(t, storage.NewMemory())

	cases := []struct {
		name   string
		method string
		path   string
		body   any
		want   string
	}{
		{"unknown person", http.MethodGet, "/people/99/", nil, `{"error":"person does not exist"}`},
		{"update unknown person", http.MethodPut, "/people/99/", map[string]any{"age": 1}, `{"error":"person does not exist"}`},
		{"collection update unknown person", http.MethodPut, "/people/", map[string]any{"id": 99}, `{"error":"person does not exist"}`},
		{"unknown pet", http.MethodGet, "/pets/99/", nil, `{"error":"pet does not exist"}`},
		{"update unknown pet by path", http.MethodPut, "/pets/99/", map[string]any{"age": 2}, `{"error":"pet does not exist"}`},
		{"update unknown pet", http.MethodPut, "/pets/", map[string]any{"id": 99, "name": "x"}, `{"error":"pet does not exist"}`},
		{"non numeric id", http.MethodGet, "/people/abc/", nil, `{"error":"not found"}`},
		{"unknown path", http.MethodGet, "/owners/", nil, `{"error":"not found"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp, body := doReq(t, ts.URL, tc.method, tc.path, tc.body)
			assert.Equal(t, http.StatusNotFound, resp.StatusCode)
			assert.JSONEq(t, tc.want, string(body))
		})
	}
}

func TestHTTP_AppendSlashRedirect(t *testing.T) {
	ts := newServer(t, storage.NewMemory())

	cases := []struct {
		method   string
		path     string
		location string
	}{
		{http.MethodGet, "/people", "/people/"},
		{http.MethodGet, "/people/1", "/people/1/"},
		{http.MethodPut, "/pets/3?x=1", "/pets/3/?x=1"},
	}
	for _, tc := range cases {
		resp, _ := doReq(t, ts.URL, tc.method, tc.path, nil)
		assert.Equal(t, http.StatusMovedPermanently, resp.StatusCode, tc.path)
		assert.Equal(t, tc.location, resp.Header.Get("Location"), tc.path)
	}
}

func TestHTTP_MethodNotAllowed(t *testing.T) {
	ts := newServer(t, storage.NewMemory())

	cases := []struct {
		method string
		path   string
		allow  string
	}{
		{http.MethodPost, "/", "GET"},
		{http.MethodDelete, "/people/", "GET, POST, PUT"},
		{http.MethodPatch, "/people/1/", "GET, PUT"},
		{http.MethodDelete, "/pets/1/", "GET, PUT"},
	}
	for _, tc := range cases {
		resp, body := doReq(t, ts.URL, tc.method, tc.path, nil)
		assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode, tc.path)
		assert.Equal(t, tc.allow, resp.Header.Get("Allow"), tc.path)
		assert.JSONEq(t, `{"error":"method not allowed"}`, string(body))
	}
}

func TestHTTP_IndexAndHealth(t *testing.T) {
	ts := newServer(t, nil)

	resp, body := doReq(t, ts.URL, http.MethodGet, "/", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"endpoints":["people/","pets/"]}`, string(body))

	resp, body = doReq(t, ts.URL, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", string(body))

	resp, body = doReq(t, ts.URL, http.MethodGet, "/swagger/doc.json", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `"/people/"`)
}

func TestHTTP_DeletingPersonRemovesPets(t *testing.T) {
	for _, b := range backends() {
		t.Run(b.name, func(t *testing.T) {
			store := b.open(t)
			ts := newServer(t, store)

			jesse := createPerson(t, ts.URL, map[string]any{"first_name": "Jesse", "last_name": "Sublett"})
			ann := createPerson(t, ts.URL, map[string]any{"first_name": "Ann", "last_name": "Lee"})
			createPet(t, ts.URL, map[string]any{"name": "Iggy", "owner": jesse})
			createPet(t, ts.URL, map[string]any{"name": "Rex", "owner": ann})

			require.NoError(t, store.People.Delete(context.Background(), jesse))

			resp, _ := doReq(t, ts.URL, http.MethodGet, "/pets/1/", nil)
			assert.Equal(t, http.StatusNotFound, resp.StatusCode)

			_, body := doReq(t, ts.URL, http.MethodGet, "/pets/", nil)
			assert.JSONEq(t, `{"pets":[{"id":2,"name":"Rex","age":0,
				"owner":{"id":2,"first_name":"Ann","last_name":"Lee","age":0}}]}`, string(body))
		})
	}
}

func TestHTTP_PetUpdateWithUnknownOwner(t *testing.T) {
	for _, b := range backends() {
		t.Run(b.name, func(t *testing.T) {
			ts := newServer(t, b.open(t))
			jesse := createPerson(t, ts.URL, map[string]any{"first_name": "Jesse", "last_name": "Sublett", "age": 67})
			createPet(t, ts.URL, map[string]any{"name": "Iggy", "age": 5, "owner": jesse})

			for _, req := range []struct {
				path string
				body map[string]any
			}{
				{"/pets/1/", map[string]any{"owner": 99, "name": "Ghost"}},
				{"/pets/", map[string]any{"id": 1, "owner": 99, "name": "Ghost"}},
			} {
				resp, body := doReq(t, ts.URL, http.MethodPut, req.path, req.body)
				assert.Equal(t, http.StatusBadRequest, resp.StatusCode, req.path)
				assert.JSONEq(t, `{"error":"validation failed","fields":[
					{"field":"owner","message":"invalid pk \"99\" - person does not exist"}]}`, string(body))
			}

			// la mascota quedó como estaba
			_, body := doReq(t, ts.URL, http.MethodGet, "/pets/1/", nil)
			assert.JSONEq(t, `{"pet":{"id":1,"name":"Iggy","age":5,
				"owner":{"id":1,"first_name":"Jesse","last_name":"Sublett","age":67}}}`, string(body))
		})
	}
}

func TestHTTP_BodyTooLarge(t *testing.T) {
	h := router.NewRouter(router.Options{})
	big := `{"first_name":"` + strings.Repeat("a", 2<<20) + `","last_name":"x"}`

	for _, target := range []string{"/people/", "/pets/"} {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(big))
		req.Header.Set("Content-Type", "application/json")

		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code, target)
		assert.JSONEq(t, `{"error":"request body too large"}`, rec.Body.String())
	}

	// y no se creó nada
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/people/", nil))
	assert.JSONEq(t, `{"people":[]}`, rec.Body.String())
}
