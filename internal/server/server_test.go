package server

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/ae-qualify/internal/autofill"
	"github.com/jonathan/ae-qualify/internal/extraction"
	"github.com/jonathan/ae-qualify/internal/store"
	"github.com/jonathan/ae-qualify/internal/types"
)

func newTestServer(t *testing.T) (*httptest.Server, *store.Store) {
	t.Helper()
	st := store.New(types.NewDashboardState())
	filler := autofill.New(st, extraction.NewMockExtractor())
	srv := New(Config{Port: 0}, st, filler)

	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts, st
}

func doJSON(t *testing.T, method, url string, body any) *http.Response {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func TestHealth(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, err := http.Get(ts.URL + "/health")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	decodeBody(t, resp, &body)
	assert.Equal(t, "ok", body["status"])
}

func TestGetStateDefaults(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, err := http.Get(ts.URL + "/state")
	require.NoError(t, err)

	var state types.DashboardState
	decodeBody(t, resp, &state)
	assert.Equal(t, types.FormTypeSF330, state.ActiveForm)
	require.Len(t, state.Projects, 1)
	assert.Equal(t, types.DefaultProjectID, state.Projects[0].ID)
}

func TestSetActiveForm(t *testing.T) {
	ts, st := newTestServer(t)

	resp := doJSON(t, http.MethodPut, ts.URL+"/state/active-form", map[string]string{"form": "SF254"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
	assert.Equal(t, types.FormTypeSF254, st.Snapshot().ActiveForm)

	resp = doJSON(t, http.MethodPut, ts.URL+"/state/active-form", map[string]string{"form": "SF999"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestProjectLifecycle(t *testing.T) {
	ts, st := newTestServer(t)

	resp := doJSON(t, http.MethodPost, ts.URL+"/projects", map[string]string{
		"name":        "Federal HQ Reno",
		"description": "Courthouse effort",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created types.Project
	decodeBody(t, resp, &created)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Federal HQ Reno", created.Name)
	assert.Equal(t, created.ID, st.Snapshot().ActiveProjectID, "new project becomes active")

	resp = doJSON(t, http.MethodPut, ts.URL+"/projects/"+created.ID, map[string]string{
		"name": "Federal HQ Renovation",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var updated types.Project
	decodeBody(t, resp, &updated)
	assert.Equal(t, "Federal HQ Renovation", updated.Name)

	resp = doJSON(t, http.MethodDelete, ts.URL+"/projects/"+created.ID, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
	require.Len(t, st.Snapshot().Projects, 1)
}

func TestDeleteLastProjectConflicts(t *testing.T) {
	ts, _ := newTestServer(t)

	resp := doJSON(t, http.MethodDelete, ts.URL+"/projects/"+types.DefaultProjectID, nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()
}

func TestUnknownProjectReturns404(t *testing.T) {
	ts, _ := newTestServer(t)

	resp := doJSON(t, http.MethodPut, ts.URL+"/projects/no-such-id", map[string]string{"name": "X"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, http.MethodDelete, ts.URL+"/assets/no-such-id", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestPatchForm(t *testing.T) {
	ts, st := newTestServer(t)

	resp := doJSON(t, http.MethodPut, ts.URL+"/forms/SF252", map[string]any{
		"contractNumber": "GS-00P-00-CYD-0009",
		"contractAmount": 500000,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var form types.SF252Data
	decodeBody(t, resp, &form)
	assert.Equal(t, "GS-00P-00-CYD-0009", form.ContractNumber)
	assert.Equal(t, float64(500000), form.ContractAmount)

	assert.Equal(t, "GS-00P-00-CYD-0009", st.Snapshot().FormData.SF252.ContractNumber)
}

func TestPatchFormUnknownKind(t *testing.T) {
	ts, _ := newTestServer(t)

	resp := doJSON(t, http.MethodPut, ts.URL+"/forms/SF999", map[string]string{"firmName": "X"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestKeyPersonnelEndpoints(t *testing.T) {
	ts, st := newTestServer(t)

	resp := doJSON(t, http.MethodPost, ts.URL+"/forms/SF330_PART_I/key-personnel", map[string]any{
		"name":  "Sarah Mitchell",
		"title": "Principal Architect",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var person types.KeyPersonnel
	decodeBody(t, resp, &person)
	require.NotEmpty(t, person.ID, "server mints an id when the client omits one")

	require.Len(t, st.Snapshot().FormData.SF330PartI.KeyPersonnel, 1)

	resp = doJSON(t, http.MethodDelete, ts.URL+"/forms/SF330_PART_I/key-personnel/"+person.ID, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
	assert.Empty(t, st.Snapshot().FormData.SF330PartI.KeyPersonnel)
}

func TestEmployeeByDisciplineUpdate(t *testing.T) {
	ts, _ := newTestServer(t)

	resp := doJSON(t, http.MethodPost, ts.URL+"/forms/SF330_PART_II/employees-by-discipline", map[string]any{
		"functionCode":  "02",
		"discipline":    "Architect",
		"employeeCount": 10,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var row types.EmployeeByDiscipline
	decodeBody(t, resp, &row)

	resp = doJSON(t, http.MethodPut, ts.URL+"/forms/SF330_PART_II/employees-by-discipline/"+row.ID, map[string]any{
		"functionCode":  "02",
		"discipline":    "Architect",
		"employeeCount": 24,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var updated types.EmployeeByDiscipline
	decodeBody(t, resp, &updated)
	assert.Equal(t, 24, updated.EmployeeCount)
	assert.Equal(t, row.ID, updated.ID, "path id wins over any body id")

	resp = doJSON(t, http.MethodPut, ts.URL+"/forms/SF330_PART_II/employees-by-discipline/no-such-row", map[string]any{
		"employeeCount": 1,
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestProgressEndpoint(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, err := http.Get(ts.URL + "/progress/SF252")
	require.NoError(t, err)
	var before map[string]any
	decodeBody(t, resp, &before)
	assert.Equal(t, float64(0), before["percentage"])
	assert.Equal(t, float64(15), before["totalRequiredFields"])

	doJSON(t, http.MethodPut, ts.URL+"/forms/SF252", map[string]any{
		"contractNumber": "GS-01",
	}).Body.Close()

	resp, err = http.Get(ts.URL + "/progress/SF252")
	require.NoError(t, err)
	var after map[string]any
	decodeBody(t, resp, &after)
	assert.Equal(t, float64(1), after["filledFields"], "one filled field moves the count by one")

	resp, err = http.Get(ts.URL + "/progress/SF330_PART_I")
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "progress is reported per form surface, not per part")
	resp.Body.Close()
}

func TestAllProgressEndpoint(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, err := http.Get(ts.URL + "/progress")
	require.NoError(t, err)

	var reports map[string]map[string]any
	decodeBody(t, resp, &reports)
	require.Len(t, reports, 4)
	assert.Contains(t, reports, "SF330")
	assert.Contains(t, reports, "SF252")
}

func TestUploadMergesExtraction(t *testing.T) {
	ts, st := newTestServer(t)

	resp := postUpload(t, ts.URL, map[string]string{}, "resume.txt", "Sarah Mitchell, Principal Architect")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body uploadResponse
	decodeBody(t, resp, &body)
	require.Len(t, body.Results, 1)
	assert.Equal(t, 1, body.Succeeded)
	assert.Equal(t, "SF330_PART_I", body.Results[0].Target)
	assert.NotEmpty(t, body.Results[0].AssetID)

	state := st.Snapshot()
	require.Len(t, state.UploadedAssets, 1)
	assert.NotEmpty(t, state.FormData.SF330PartI.KeyPersonnel, "resume extraction fills Section E")
	assert.False(t, state.IsLoading, "loading flag lowered after the batch")
}

func TestUploadRejectsBadExtension(t *testing.T) {
	ts, st := newTestServer(t)

	resp := postUpload(t, ts.URL, map[string]string{}, "malware.exe", "binary")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body uploadResponse
	decodeBody(t, resp, &body)
	require.Len(t, body.Results, 1)
	assert.Equal(t, 1, body.Failed)
	assert.NotEmpty(t, body.Results[0].Error)
	assert.Empty(t, st.Snapshot().UploadedAssets, "rejected files never reach the store")
}

func TestUploadForcedTarget(t *testing.T) {
	ts, st := newTestServer(t)

	resp := postUpload(t, ts.URL, map[string]string{"target": "SF255"}, "resume.txt", "Sarah Mitchell")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body uploadResponse
	decodeBody(t, resp, &body)
	require.Len(t, body.Results, 1)
	assert.Equal(t, "SF255", body.Results[0].Target)

	assert.Empty(t, st.Snapshot().FormData.SF330PartI.KeyPersonnel,
		"a forced target keeps the default route untouched")
}

func TestExportHTML(t *testing.T) {
	ts, _ := newTestServer(t)

	doJSON(t, http.MethodPut, ts.URL+"/forms/SF254", map[string]any{
		"firmName": "Mitchell & Associates",
	}).Body.Close()

	resp, err := http.Get(ts.URL + "/export/SF254?format=html")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")

	html := readAll(t, resp)
	assert.Contains(t, html, "Architect-Engineer and Related Services Questionnaire")
	assert.Contains(t, html, "Mitchell &amp; Associates")
}

func readAll(t *testing.T, resp *http.Response) string {
	t.Helper()
	var buf bytes.Buffer
	_, err := buf.ReadFrom(resp.Body)
	require.NoError(t, err)
	return buf.String()
}

func postUpload(t *testing.T, base string, fields map[string]string, fileName, content string) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	fw, err := mw.CreateFormFile("files", fileName)
	require.NoError(t, err)
	_, err = fw.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req, err := http.NewRequest(http.MethodPost, base+"/assets/upload", &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}
