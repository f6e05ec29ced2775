package httpresp

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func serveList[T any](data []T) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/list", func(c *gin.Context) {
		List(c, data)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/list", nil))
	return w
}

func TestListEnvelope(t *testing.T) {
	w := serveList([]string{"a", "b", "c"})

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var body struct {
		Data  []string `json:"data"`
		Count int      `json:"count"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Count != 3 || len(body.Data) != 3 {
		t.Fatalf("envelope = %+v, want 3 items with count 3", body)
	}
}

func TestListNilSliceEncodesAsEmptyArray(t *testing.T) {
	w := serveList[string](nil)

	var body struct {
		Data  json.RawMessage `json:"data"`
		Count int             `json:"count"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if string(body.Data) != "[]" {
		t.Fatalf("data = %s, want []", body.Data)
	}
	if body.Count != 0 {
		t.Fatalf("count = %d, want 0", body.Count)
	}
}
